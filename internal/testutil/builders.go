package testutil

import (
	"time"

	"github.com/akyairhashvil/studytimer/internal/models"
	"github.com/akyairhashvil/studytimer/internal/timer"
)

// StateBuilder provides fluent API for creating timer states.
type StateBuilder struct {
	state timer.State
}

func NewState() *StateBuilder {
	return &StateBuilder{state: timer.Initial(timer.ModeStudy)}
}

func (b *StateBuilder) WithMode(m timer.Mode) *StateBuilder {
	b.state.Mode = m
	return b
}

// WithDuration sets the duration and refills remaining to match.
func (b *StateBuilder) WithDuration(seconds int) *StateBuilder {
	b.state.DurationSeconds = seconds
	b.state.RemainingSeconds = seconds
	return b
}

func (b *StateBuilder) WithRemaining(seconds int) *StateBuilder {
	b.state.RemainingSeconds = seconds
	return b
}

func (b *StateBuilder) Running() *StateBuilder {
	b.state.Running = true
	return b
}

func (b *StateBuilder) Build() timer.State {
	return b.state
}

// SessionBuilder provides fluent API for creating session records.
type SessionBuilder struct {
	session models.Session
}

func NewSession() *SessionBuilder {
	return &SessionBuilder{
		session: models.Session{
			Mode:            string(timer.ModeStudy),
			DurationSeconds: 25 * 60,
			CompletedAt:     time.Now(),
		},
	}
}

func (b *SessionBuilder) WithID(id string) *SessionBuilder {
	b.session.ID = id
	return b
}

func (b *SessionBuilder) WithMode(m timer.Mode) *SessionBuilder {
	b.session.Mode = string(m)
	return b
}

func (b *SessionBuilder) WithDuration(seconds int) *SessionBuilder {
	b.session.DurationSeconds = seconds
	return b
}

func (b *SessionBuilder) CompletedAt(t time.Time) *SessionBuilder {
	b.session.CompletedAt = t
	return b
}

func (b *SessionBuilder) Build() models.Session {
	return b.session
}
