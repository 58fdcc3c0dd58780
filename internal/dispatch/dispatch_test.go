package dispatch

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSimulator() *Simulator {
	s := NewSimulator(zerolog.Nop())
	s.AmbulanceETA = 20 * time.Millisecond
	s.DroneETA = 10 * time.Millisecond
	return s
}

func TestAmbulanceRunLifecycle(t *testing.T) {
	s := newTestSimulator()

	ticket := s.StartAmbulance("Bole, Addis Ababa")
	assert.NotEmpty(t, ticket.ID)
	assert.Equal(t, KindAmbulance, ticket.Kind)
	assert.Equal(t, "Bole, Addis Ababa", ticket.Reference)

	_, status, ok := s.Status(ticket.ID)
	require.True(t, ok)
	assert.Equal(t, StatusEnRoute, status)

	done, ok := s.Done(ticket.ID)
	require.True(t, ok)
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("run did not complete")
	}

	_, status, ok = s.Status(ticket.ID)
	require.True(t, ok)
	assert.Equal(t, StatusCompleted, status)
}

func TestDroneDeliveryCompletes(t *testing.T) {
	s := newTestSimulator()

	ticket := s.StartDroneDelivery("123456")
	assert.Equal(t, KindDrone, ticket.Kind)
	assert.Equal(t, "123456", ticket.Reference)

	done, ok := s.Done(ticket.ID)
	require.True(t, ok)
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("delivery did not complete")
	}
}

func TestUnknownTicket(t *testing.T) {
	s := newTestSimulator()
	_, _, ok := s.Status("nope")
	assert.False(t, ok)
	_, ok = s.Done("nope")
	assert.False(t, ok)
}

func TestRunsAreIndependent(t *testing.T) {
	s := newTestSimulator()
	s.DroneETA = time.Hour

	fast := s.StartAmbulance("Piazza")
	slow := s.StartDroneDelivery("654321")

	done, _ := s.Done(fast.ID)
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("ambulance did not complete")
	}

	_, status, ok := s.Status(slow.ID)
	require.True(t, ok)
	assert.Equal(t, StatusEnRoute, status)
}
