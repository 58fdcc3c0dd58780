package llm

import (
	"context"

	"virtualdoctor/pkg"
)

// ModelVariant selects which class of model a request targets.
type ModelVariant string

const (
	// VariantText is a multi-turn chat completion over the running history.
	VariantText ModelVariant = "text"
	// VariantMultimodal is a single-shot call carrying an image in place of
	// the running history.
	VariantMultimodal ModelVariant = "multimodal"
)

// Request is a fully composed inference request. It is built fresh per send
// and never mutated afterwards; History is a snapshot taken at send time so
// unrelated appends cannot leak into an in-flight request's context.
type Request struct {
	Key               pkg.SessionKey
	Variant           ModelVariant
	SystemInstruction string
	// History holds the prior turns. Populated for the text variant only.
	History []pkg.ChatMessage
	// Message is the latest user input.
	Message string
	// Image is the attached payload. Populated for the multimodal variant only.
	Image *pkg.ImageAttachment
}

// Client defines the methods the core requires from a generative backend.
// Implementations are the only network-facing components and must never
// touch the session store.
type Client interface {
	// Generate runs one inference call and returns the model's reply text.
	Generate(ctx context.Context, req Request) (string, error)
	// FindFacilities asks the backend for hospitals and clinics in a city
	// and returns the reply as plain text, one facility per line.
	FindFacilities(ctx context.Context, city string) (string, error)
}
