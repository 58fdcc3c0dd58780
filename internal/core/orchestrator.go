package core

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"virtualdoctor/internal/llm"
	"virtualdoctor/internal/session"
	"virtualdoctor/pkg"
)

// Orchestrator is the public entry point of the chat core. Every send runs
// the same sequence: resolve the session, claim its in-flight slot, append
// the user message, compose the request from a pre-send history snapshot,
// call the gateway, append the reply to the originating session, and run
// the trigger rules.
//
// Concurrency model: no global lock across sessions. Each session admits
// at most one outstanding gateway call (a second send returns
// session.ErrSessionBusy); sends to different keys run in parallel. The
// session key captured here at send time is the only thing that decides
// where the reply lands, so a reply can never be misattributed when the
// caller navigates away mid-flight.
type Orchestrator struct {
	store    *session.Store
	client   llm.Client
	composer Composer
	interp   Interpreter
	log      zerolog.Logger

	mu       sync.RWMutex
	settings Settings
}

// SendResult is what a successful send returns to the caller: the updated
// session history and any workflow events the caller should act on.
type SendResult struct {
	History []pkg.ChatMessage
	Events  []pkg.WorkflowEvent
}

// NewOrchestrator wires the orchestrator with its session store and
// gateway client.
func NewOrchestrator(store *session.Store, client llm.Client, log zerolog.Logger) *Orchestrator {
	return &Orchestrator{
		store:    store,
		client:   client,
		log:      log,
		settings: Settings{Language: "English", PatientName: "Guest"},
	}
}

// UpdateSettings replaces the ambient personalization state. Empty fields
// keep their current value.
func (o *Orchestrator) UpdateSettings(s Settings) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if s.Language != "" {
		o.settings.Language = s.Language
	}
	if s.PatientName != "" {
		o.settings.PatientName = s.PatientName
	}
}

// Settings returns the current ambient settings.
func (o *Orchestrator) Settings() Settings {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.settings
}

// History returns a snapshot of the session's history.
func (o *Orchestrator) History(key pkg.SessionKey) []pkg.ChatMessage {
	return o.store.History(key)
}

// SendMessage submits one user message (plus optional image) to the
// session identified by key. The caller supplies the key by resolving its
// own navigation state; this method never infers it.
func (o *Orchestrator) SendMessage(ctx context.Context, key pkg.SessionKey, text string, image *pkg.ImageAttachment) (*SendResult, error) {
	if strings.TrimSpace(text) == "" && image == nil {
		return nil, ErrEmptyInput
	}
	if err := o.store.BeginFlight(key); err != nil {
		return nil, err
	}

	started := time.Now()

	// Snapshot before the user message counts as history: the multimodal
	// variant drops it entirely and the text variant sends it alongside
	// the fresh message.
	prior := o.store.History(key)
	o.store.Append(key, pkg.NewChatMessage(pkg.RoleUser, text))

	req, err := o.composer.Compose(key, text, image, prior, o.Settings())
	if err != nil {
		o.store.EndFlight(key)
		return nil, err
	}

	reply, err := o.client.Generate(ctx, req)
	if err != nil {
		o.store.EndFlight(key)
		o.log.Error().Str("session", string(key)).Dur("elapsed", time.Since(started)).Err(err).Msg("inference failed")
		return nil, &InferenceError{Err: err}
	}

	// Appended to the originating key, never to whatever the caller is
	// currently displaying.
	o.store.Append(key, pkg.NewChatMessage(pkg.RoleModel, reply))
	events := o.interp.Interpret(key, text, reply, image)
	o.store.EndFlight(key)

	o.log.Info().
		Str("session", string(key)).
		Str("variant", string(req.Variant)).
		Dur("elapsed", time.Since(started)).
		Int("events", len(events)).
		Msg("message handled")

	return &SendResult{History: o.store.History(key), Events: events}, nil
}
