// internal/player/mock.go
package player

import (
	"sync"
	"time"
)

// Mock is a test double for Player. It records every Apply call and lets
// tests inject sink events.
type Mock struct {
	mu       sync.Mutex
	applied  []Desired
	position time.Duration
	duration time.Duration
	events   chan Event
	closed   bool
}

// NewMock creates a new mock sink for testing.
func NewMock() *Mock {
	return &Mock{events: make(chan Event, 16)}
}

func (m *Mock) Apply(d Desired) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.applied = append(m.applied, d)
}

func (m *Mock) Events() <-chan Event { return m.events }

func (m *Mock) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

func (m *Mock) Position() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.position
}

func (m *Mock) Duration() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.duration
}

// Test helpers

// Applied returns a copy of every desired state applied so far.
func (m *Mock) Applied() []Desired {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Desired, len(m.applied))
	copy(out, m.applied)
	return out
}

// Last returns the most recently applied desired state.
func (m *Mock) Last() Desired {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.applied) == 0 {
		return Desired{}
	}
	return m.applied[len(m.applied)-1]
}

// Reset forgets recorded Apply calls.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.applied = nil
}

// Closed reports whether Close was called.
func (m *Mock) Closed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

func (m *Mock) SetPosition(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.position = d
}

func (m *Mock) SetDuration(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.duration = d
}

// Finish simulates the natural end of the track loaded under token.
func (m *Mock) Finish(token uint64) {
	m.send(Event{Kind: EventFinished, Token: token, URL: m.Last().URL})
}

// Fail simulates a load or decode failure for token.
func (m *Mock) Fail(token uint64, err error) {
	m.send(Event{Kind: EventFailed, Token: token, URL: m.Last().URL, Err: err})
}

func (m *Mock) send(e Event) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return
	}
	m.events <- e
}
