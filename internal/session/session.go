// Package session keeps the most recent schedule a caller computed or
// imported, so it can be exported or refreshed later.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/iwvelando/mortgage-payoff/pkg/datetime"
	"github.com/iwvelando/mortgage-payoff/pkg/mortgage"
)

// Sources of a session's schedule.
const (
	SourceCalculated = "calculated"
	SourceImported   = "imported"
)

// ErrNotFound is returned when a session ID is unknown or has expired.
var ErrNotFound = errors.New("session not found")

// Session is the current schedule owned by one caller. Inputs is nil for an
// imported schedule; Summary is nil until a schedule has been stored.
type Session struct {
	ID        string                  `json:"id"`
	Inputs    *mortgage.Inputs        `json:"inputs,omitempty"`
	Schedule  []mortgage.PaymentRow   `json:"schedule"`
	Summary   *mortgage.PayoffSummary `json:"summary,omitempty"`
	Source    string                  `json:"source,omitempty"`
	UpdatedAt time.Time               `json:"updatedAt"`
}

// Store persists sessions by ID.
type Store interface {
	Get(ctx context.Context, id string) (*Session, error)
	Save(ctx context.Context, s *Session) error
	Delete(ctx context.Context, id string) error
}

// NewID returns a random session identifier.
func NewID() string {
	return uuid.NewString()
}

// New returns an empty session with a fresh ID.
func New(now time.Time) *Session {
	return &Session{ID: NewID(), Schedule: []mortgage.PaymentRow{}, UpdatedAt: now.UTC()}
}

// Apply replaces the session contents with a calculated result.
func (s *Session) Apply(result mortgage.Result, now time.Time) {
	inputs := result.Inputs
	summary := result.Summary
	s.Inputs = &inputs
	s.Schedule = cloneRows(result.Schedule)
	s.Summary = &summary
	s.Source = SourceCalculated
	s.UpdatedAt = now.UTC()
}

// Load replaces the session contents with an imported schedule. The summary
// is derived from the rows; an empty schedule pays off at now.
func (s *Session) Load(rows []mortgage.PaymentRow, now time.Time) {
	summary := mortgage.Summarize(rows, datetime.Truncate(now))
	s.Inputs = nil
	s.Schedule = cloneRows(rows)
	s.Summary = &summary
	s.Source = SourceImported
	s.UpdatedAt = now.UTC()
}

func cloneRows(rows []mortgage.PaymentRow) []mortgage.PaymentRow {
	out := make([]mortgage.PaymentRow, len(rows))
	copy(out, rows)
	return out
}
