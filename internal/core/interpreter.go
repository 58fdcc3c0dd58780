package core

import (
	"strings"
	"time"

	"virtualdoctor/pkg"
)

// HandoffDelay is how long the caller should wait before acting on a
// specialist handoff, so the model's own reply can be read first.
const HandoffDelay = 2 * time.Second

// triggerInput is everything a rule may inspect after a successful send.
type triggerInput struct {
	key      pkg.SessionKey
	userText string
	reply    string
	image    *pkg.ImageAttachment
}

type rule struct {
	name    string
	matches func(in triggerInput) bool
	emit    func(in triggerInput) pkg.WorkflowEvent
}

// Triggers key off the raw user text (or, for imaging, image presence)
// rather than the model reply, so that firing stays deterministic under
// model nondeterminism. Rules are evaluated in order and at most one
// fires per send.
var rules = []rule{
	{
		name: "triage skin referral",
		matches: func(in triggerInput) bool {
			return in.key == pkg.SessionTriage &&
				strings.Contains(strings.ToLower(in.userText), "skin")
		},
		emit: func(triggerInput) pkg.WorkflowEvent {
			return pkg.SpecialistHandoff{SpecialistID: "skin", Delay: HandoffDelay}
		},
	},
	{
		name: "imaging analysis complete",
		matches: func(in triggerInput) bool {
			return in.key == pkg.SessionImaging && in.image != nil
		},
		emit: func(in triggerInput) pkg.WorkflowEvent {
			return pkg.ImagingResultReady{AnalysisText: in.reply, Image: in.image}
		},
	},
	{
		name: "dispatch confirmation",
		matches: func(in triggerInput) bool {
			if in.key != pkg.SessionDispatch {
				return false
			}
			text := strings.ToLower(in.userText)
			return strings.Contains(text, "confirm") || strings.Contains(text, "yes")
		},
		emit: func(triggerInput) pkg.WorkflowEvent {
			return pkg.DispatchTriggered{}
		},
	},
	{
		name: "pharmacy prescription code",
		matches: func(in triggerInput) bool {
			return in.key == pkg.SessionPharmacy && isPrescriptionCode(in.userText)
		},
		emit: func(in triggerInput) pkg.WorkflowEvent {
			return pkg.PrescriptionVerified{Code: in.userText}
		},
	},
}

// Interpreter inspects a completed send for workflow triggers.
type Interpreter struct{}

// Interpret runs the rule table and returns the emitted events. The first
// matching rule wins.
func (Interpreter) Interpret(key pkg.SessionKey, userText, reply string, image *pkg.ImageAttachment) []pkg.WorkflowEvent {
	in := triggerInput{key: key, userText: userText, reply: reply, image: image}
	for _, r := range rules {
		if r.matches(in) {
			return []pkg.WorkflowEvent{r.emit(in)}
		}
	}
	return nil
}

// isPrescriptionCode reports whether s is exactly six decimal digits.
func isPrescriptionCode(s string) bool {
	if len(s) != 6 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
