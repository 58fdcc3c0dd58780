package pkg

import (
	"fmt"
	"strings"
	"time"
)

// Role describes who authored a chat message. There are only two roles:
// the patient ("user") and the generative model ("model").
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// ChatMessage is a single turn in a conversation. Messages are immutable
// once created; ordering is insertion order within a session. Timestamp is
// a preformatted wall-clock label (HH:MM) for display and carries no
// ordering authority.
type ChatMessage struct {
	Role      Role   `json:"role"`
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"`
}

// NewChatMessage stamps a message with the current wall-clock time.
func NewChatMessage(role Role, text string) ChatMessage {
	return ChatMessage{Role: role, Text: text, Timestamp: time.Now().Format("15:04")}
}

// SessionKind discriminates the conversation contexts the portal offers.
type SessionKind string

const (
	KindGeneral    SessionKind = "general"
	KindTriage     SessionKind = "triage"
	KindSpecialist SessionKind = "specialist"
	KindImaging    SessionKind = "imaging"
	KindDispatch   SessionKind = "dispatch"
	KindDoctor     SessionKind = "doctor"
	KindPharmacy   SessionKind = "pharmacy"
)

// SessionKey identifies one conversation. Keys are stable strings; equal
// keys denote the same conversation. Addressed contexts (a specific
// specialist or directory doctor) carry their identifier after a colon,
// e.g. "specialist:skin" or "doctor:doc-3".
type SessionKey string

const (
	SessionGeneral  SessionKey = "general"
	SessionTriage   SessionKey = "triage"
	SessionImaging  SessionKey = "imaging"
	SessionDispatch SessionKey = "dispatch"
	SessionPharmacy SessionKey = "pharmacy"
)

// SpecialistSession returns the key for a specialist consultation.
func SpecialistSession(specialistID string) SessionKey {
	return SessionKey("specialist:" + specialistID)
}

// DoctorSession returns the key for a directory doctor chat.
func DoctorSession(doctorID string) SessionKey {
	return SessionKey("doctor:" + doctorID)
}

// ParseSessionKey validates a raw key string from the caller boundary.
func ParseSessionKey(raw string) (SessionKey, error) {
	switch SessionKey(raw) {
	case SessionGeneral, SessionTriage, SessionImaging, SessionDispatch, SessionPharmacy:
		return SessionKey(raw), nil
	}
	kind, id, ok := strings.Cut(raw, ":")
	if ok && id != "" && (kind == string(KindSpecialist) || kind == string(KindDoctor)) {
		return SessionKey(raw), nil
	}
	return "", fmt.Errorf("invalid session key %q", raw)
}

// Kind reports which context family the key belongs to.
func (k SessionKey) Kind() SessionKind {
	kind, _, _ := strings.Cut(string(k), ":")
	return SessionKind(kind)
}

// ID returns the addressed identifier for specialist and doctor keys, and
// the empty string for the fixed contexts.
func (k SessionKey) ID() string {
	_, id, _ := strings.Cut(string(k), ":")
	return id
}

// ImageAttachment is an image supplied by the caller alongside a message.
// Data is the decoded payload; the core performs no file I/O.
type ImageAttachment struct {
	Data     []byte `json:"data"`
	MIMEType string `json:"mime_type"`
}

// WorkflowEvent is a structured signal emitted by the orchestrator for the
// surrounding application to act on. The set of variants is closed; the
// orchestrator never performs the transition itself.
type WorkflowEvent interface {
	EventName() string
}

// SpecialistHandoff asks the caller to switch the active context to the
// named specialist. Delay is how long the caller should wait before acting
// so the model's own reply can be read first.
type SpecialistHandoff struct {
	SpecialistID string        `json:"specialist_id"`
	Delay        time.Duration `json:"delay"`
}

func (SpecialistHandoff) EventName() string { return "specialist_handoff" }

// PrescriptionVerified reports that the user presented a well-formed
// prescription code in the pharmacy context.
type PrescriptionVerified struct {
	Code string `json:"code"`
}

func (PrescriptionVerified) EventName() string { return "prescription_verified" }

// DispatchTriggered reports that the user confirmed an emergency dispatch.
type DispatchTriggered struct{}

func (DispatchTriggered) EventName() string { return "dispatch_triggered" }

// ImagingResultReady carries a completed image analysis back to the caller
// together with the image it was produced from.
type ImagingResultReady struct {
	AnalysisText string           `json:"analysis_text"`
	Image        *ImageAttachment `json:"-"`
}

func (ImagingResultReady) EventName() string { return "imaging_result_ready" }
