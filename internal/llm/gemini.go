package llm

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"

	"virtualdoctor/pkg"
)

// Default Gemini model names. The multimodal model handles inline image
// parts; the search model powers facility lookup.
const (
	DefaultGeminiTextModel       = "gemini-3-flash-preview"
	DefaultGeminiMultimodalModel = "gemini-2.5-flash-image"
	DefaultGeminiSearchModel     = "gemini-2.5-flash"
)

// GeminiClient calls the Gemini API for chat and facility lookup.
type GeminiClient struct {
	client          *genai.Client
	textModel       string
	multimodalModel string
	searchModel     string
}

// NewGeminiClient constructs a Gemini-backed client. Empty model names fall
// back to the defaults above.
func NewGeminiClient(ctx context.Context, apiKey, textModel, multimodalModel, searchModel string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	if textModel == "" {
		textModel = DefaultGeminiTextModel
	}
	if multimodalModel == "" {
		multimodalModel = DefaultGeminiMultimodalModel
	}
	if searchModel == "" {
		searchModel = DefaultGeminiSearchModel
	}
	return &GeminiClient{
		client:          client,
		textModel:       textModel,
		multimodalModel: multimodalModel,
		searchModel:     searchModel,
	}, nil
}

// Generate sends the composed request to the Gemini API and returns the
// reply text.
func (c *GeminiClient) Generate(ctx context.Context, req Request) (string, error) {
	config := &genai.GenerateContentConfig{}
	if req.SystemInstruction != "" {
		config.SystemInstruction = genai.NewContentFromText(req.SystemInstruction, genai.RoleUser)
	}

	var model string
	var contents []*genai.Content
	switch req.Variant {
	case VariantMultimodal:
		if req.Image == nil {
			return "", errors.New("multimodal request without image")
		}
		model = c.multimodalModel
		parts := []*genai.Part{
			genai.NewPartFromText(req.Message),
			genai.NewPartFromBytes(req.Image.Data, req.Image.MIMEType),
		}
		contents = []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}
	default:
		model = c.textModel
		contents = make([]*genai.Content, 0, len(req.History)+1)
		for _, m := range req.History {
			contents = append(contents, genai.NewContentFromText(m.Text, geminiRole(m.Role)))
		}
		contents = append(contents, genai.NewContentFromText(req.Message, genai.RoleUser))
	}

	resp, err := c.client.Models.GenerateContent(ctx, model, contents, config)
	if err != nil {
		return "", err
	}
	text := resp.Text()
	if text == "" {
		return "", errors.New("empty response from model")
	}
	return text, nil
}

// FindFacilities asks Gemini for medical facilities in the given city.
func (c *GeminiClient) FindFacilities(ctx context.Context, city string) (string, error) {
	prompt := fmt.Sprintf(
		"Search for hospitals and clinics in %s, Ethiopia. Return a list of at least 5 facilities, one per line, with their names and areas.",
		city,
	)
	contents := []*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)}
	resp, err := c.client.Models.GenerateContent(ctx, c.searchModel, contents, nil)
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}

func geminiRole(r pkg.Role) genai.Role {
	if r == pkg.RoleModel {
		return genai.RoleModel
	}
	return genai.RoleUser
}
