package core

import (
	"fmt"

	"virtualdoctor/internal/directory"
	"virtualdoctor/internal/llm"
	"virtualdoctor/pkg"
)

// Settings is the ambient personalization state shared by all contexts.
type Settings struct {
	Language    string
	PatientName string
}

// Composer builds the inference request for a send: the persona for the
// session's context, the model variant, and either the running history or
// a single-shot image payload.
//
// The variant rule is strict: if and only if an image is attached to this
// send, the multimodal model is selected and the image replaces the
// running history. Image analysis is a one-off inference, not a dialogue
// turn.
type Composer struct{}

// Compose builds the request for one send. history must be the session's
// history snapshot from before the current user message was appended.
func (Composer) Compose(key pkg.SessionKey, text string, image *pkg.ImageAttachment, history []pkg.ChatMessage, s Settings) (llm.Request, error) {
	instruction, err := persona(key, s)
	if err != nil {
		return llm.Request{}, err
	}

	req := llm.Request{
		Key:               key,
		SystemInstruction: instruction,
	}
	if image != nil {
		req.Variant = llm.VariantMultimodal
		req.Image = image
		req.Message = text
		if req.Message == "" {
			req.Message = defaultImagingMessage
		}
		return req, nil
	}

	req.Variant = llm.VariantText
	req.History = history
	req.Message = text
	return req, nil
}

func persona(key pkg.SessionKey, s Settings) (string, error) {
	switch key.Kind() {
	case pkg.KindGeneral:
		return fmt.Sprintf(generalPrompt, s.Language, s.PatientName), nil
	case pkg.KindTriage:
		return fmt.Sprintf(triagePrompt, s.Language), nil
	case pkg.KindSpecialist:
		sp, ok := directory.SpecialistByID(key.ID())
		if !ok {
			return "", fmt.Errorf("unknown specialist %q", key.ID())
		}
		return fmt.Sprintf(specialistPrompt, sp.Name, sp.Type, sp.Personality, s.Language), nil
	case pkg.KindImaging:
		return imagingPrompt, nil
	case pkg.KindDispatch:
		return dispatchPrompt, nil
	case pkg.KindDoctor:
		doc, ok := directory.DoctorByID(key.ID())
		if !ok {
			return "", fmt.Errorf("unknown doctor %q", key.ID())
		}
		return fmt.Sprintf(doctorPrompt, doc.Name, doc.Specialty), nil
	case pkg.KindPharmacy:
		return fmt.Sprintf(pharmacyPrompt, s.Language), nil
	default:
		return "", fmt.Errorf("unknown session kind %q", key.Kind())
	}
}
