// Package dispatch simulates the portal's delivery side effects: the
// ambulance sent after an emergency confirmation and the drone delivery
// started by a verified prescription. Runs are in-process timers, not real
// integrations; callers poll Status or wait on Done.
package dispatch

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Kind distinguishes the two simulated vehicles.
type Kind string

const (
	KindAmbulance Kind = "ambulance"
	KindDrone     Kind = "drone"
)

// Status of a run.
type Status string

const (
	StatusEnRoute   Status = "en_route"
	StatusCompleted Status = "completed"
)

// Ticket identifies one simulated run.
type Ticket struct {
	ID        string        `json:"id"`
	Kind      Kind          `json:"kind"`
	Reference string        `json:"reference"`
	StartedAt time.Time     `json:"started_at"`
	ETA       time.Duration `json:"eta"`
}

type run struct {
	ticket    Ticket
	done      chan struct{}
	completed bool
}

// Simulator owns all active and finished runs.
type Simulator struct {
	log zerolog.Logger

	// Travel times, overridable before starting runs (tests shorten them).
	AmbulanceETA time.Duration
	DroneETA     time.Duration

	mu   sync.Mutex
	runs map[string]*run
}

// NewSimulator constructs a simulator with the portal's travel times: the
// ambulance takes 10 seconds, the drone 8.
func NewSimulator(log zerolog.Logger) *Simulator {
	return &Simulator{
		log:          log,
		AmbulanceETA: 10 * time.Second,
		DroneETA:     8 * time.Second,
		runs:         make(map[string]*run),
	}
}

// StartAmbulance begins an ambulance run toward the given location.
func (s *Simulator) StartAmbulance(location string) Ticket {
	return s.start(KindAmbulance, location, s.AmbulanceETA)
}

// StartDroneDelivery begins a drone delivery for a verified prescription
// code.
func (s *Simulator) StartDroneDelivery(code string) Ticket {
	return s.start(KindDrone, code, s.DroneETA)
}

func (s *Simulator) start(kind Kind, ref string, eta time.Duration) Ticket {
	t := Ticket{
		ID:        uuid.NewString(),
		Kind:      kind,
		Reference: ref,
		StartedAt: time.Now(),
		ETA:       eta,
	}
	r := &run{ticket: t, done: make(chan struct{})}

	s.mu.Lock()
	s.runs[t.ID] = r
	s.mu.Unlock()

	s.log.Info().Str("ticket", t.ID).Str("kind", string(kind)).Dur("eta", eta).Msg("dispatch started")

	time.AfterFunc(eta, func() {
		s.mu.Lock()
		r.completed = true
		s.mu.Unlock()
		close(r.done)
		s.log.Info().Str("ticket", t.ID).Str("kind", string(kind)).Msg("dispatch completed")
	})
	return t
}

// Status reports the run's ticket and current status. ok is false for
// unknown tickets.
func (s *Simulator) Status(id string) (Ticket, Status, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.runs[id]
	if !ok {
		return Ticket{}, "", false
	}
	if r.completed {
		return r.ticket, StatusCompleted, true
	}
	return r.ticket, StatusEnRoute, true
}

// Done returns a channel closed when the run completes. ok is false for
// unknown tickets.
func (s *Simulator) Done(id string) (<-chan struct{}, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.runs[id]
	if !ok {
		return nil, false
	}
	return r.done, true
}
