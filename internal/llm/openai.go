package llm

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"virtualdoctor/pkg"
)

// Default OpenAI model names used when no override is configured.
const (
	DefaultOpenAIChatModel   = "gpt-4o-mini"
	DefaultOpenAIVisionModel = "gpt-4o"
)

// OpenAIClient calls the OpenAI API. It is the alternative backend behind
// the same Client interface as the Gemini implementation.
type OpenAIClient struct {
	client      *openai.Client
	chatModel   string
	visionModel string
}

// NewOpenAIClient constructs an OpenAI-backed client. Empty model names
// fall back to sensible defaults.
func NewOpenAIClient(apiKey, chatModel, visionModel string) (*OpenAIClient, error) {
	if apiKey == "" {
		return nil, errors.New("openai api key is required")
	}
	if chatModel == "" {
		chatModel = DefaultOpenAIChatModel
	}
	if visionModel == "" {
		visionModel = DefaultOpenAIVisionModel
	}
	return &OpenAIClient{
		client:      openai.NewClient(apiKey),
		chatModel:   chatModel,
		visionModel: visionModel,
	}, nil
}

// Generate sends the composed request to the OpenAI chat completion API and
// returns the assistant's response.
func (c *OpenAIClient) Generate(ctx context.Context, req Request) (string, error) {
	var (
		model string
		msgs  []openai.ChatCompletionMessage
	)
	if req.SystemInstruction != "" {
		msgs = append(msgs, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.SystemInstruction,
		})
	}

	switch req.Variant {
	case VariantMultimodal:
		if req.Image == nil {
			return "", errors.New("multimodal request without image")
		}
		model = c.visionModel
		dataURL := fmt.Sprintf("data:%s;base64,%s",
			req.Image.MIMEType, base64.StdEncoding.EncodeToString(req.Image.Data))
		msgs = append(msgs, openai.ChatCompletionMessage{
			Role: openai.ChatMessageRoleUser,
			MultiContent: []openai.ChatMessagePart{
				{Type: openai.ChatMessagePartTypeText, Text: req.Message},
				{Type: openai.ChatMessagePartTypeImageURL, ImageURL: &openai.ChatMessageImageURL{URL: dataURL}},
			},
		})
	default:
		model = c.chatModel
		for _, m := range req.History {
			role := openai.ChatMessageRoleUser
			if m.Role == pkg.RoleModel {
				role = openai.ChatMessageRoleAssistant
			}
			msgs = append(msgs, openai.ChatCompletionMessage{Role: role, Content: m.Text})
		}
		msgs = append(msgs, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: req.Message})
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       model,
		Messages:    msgs,
		Temperature: 0.2,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("empty response from model")
	}
	return resp.Choices[0].Message.Content, nil
}

// FindFacilities asks the model for medical facilities in the given city.
func (c *OpenAIClient) FindFacilities(ctx context.Context, city string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.chatModel,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleUser,
				Content: fmt.Sprintf(
					"List at least 5 hospitals and clinics in %s, Ethiopia, one per line, with their names and areas.",
					city,
				),
			},
		},
		Temperature: 0.2,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("empty response from model")
	}
	return resp.Choices[0].Message.Content, nil
}
