package llm

import (
	"context"
	"sync"
)

// MockClient implements Client for testing. It records every request it
// receives and replays scripted replies. When Gate is set, Generate blocks
// until the gate is closed or the context is cancelled, which lets tests
// hold a request in flight deliberately.
type MockClient struct {
	mu       sync.Mutex
	requests []Request

	Reply      string
	ReplyFunc  func(Request) string
	Err        error
	Facilities string
	Gate       chan struct{}
}

// Generate records the request and returns the scripted reply or error.
func (m *MockClient) Generate(ctx context.Context, req Request) (string, error) {
	m.mu.Lock()
	m.requests = append(m.requests, req)
	gate := m.Gate
	m.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return "", m.Err
	}
	if m.ReplyFunc != nil {
		return m.ReplyFunc(req), nil
	}
	if m.Reply != "" {
		return m.Reply, nil
	}
	return "mock reply", nil
}

// FindFacilities returns the scripted facility text.
func (m *MockClient) FindFacilities(_ context.Context, _ string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return "", m.Err
	}
	return m.Facilities, nil
}

// Requests returns a copy of every request seen so far.
func (m *MockClient) Requests() []Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Request, len(m.requests))
	copy(out, m.requests)
	return out
}

// LastRequest returns the most recent request, or nil when none were made.
func (m *MockClient) LastRequest() *Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.requests) == 0 {
		return nil
	}
	req := m.requests[len(m.requests)-1]
	return &req
}
