package relay

import (
	"sync"
	"time"
)

// Outcome classifies a handled submission.
type Outcome string

const (
	OutcomeSent          Outcome = "sent"
	OutcomeBot           Outcome = "bot"
	OutcomeInvalid       Outcome = "invalid"
	OutcomeFailed        Outcome = "failed"
	OutcomeMisconfigured Outcome = "misconfigured"
)

const recentLimit = 10

// publicError is the category served for a failed delivery. The cause
// itself only goes to the log.
func (o Outcome) publicError() string {
	switch o {
	case OutcomeFailed:
		return "mail transport failed"
	case OutcomeMisconfigured:
		return "mail configuration missing"
	default:
		return ""
	}
}

// Delivery records one handled submission.
type Delivery struct {
	At      time.Time `json:"at"`
	Outcome Outcome   `json:"outcome"`
	Company string    `json:"company,omitempty"`
}

// Status is served at /api/status.
type Status struct {
	StartedAt time.Time  `json:"startedAt"`
	Sent      int        `json:"sent"`
	Rejected  int        `json:"rejected"`
	Failed    int        `json:"failed"`
	LastError string     `json:"lastError,omitempty"` // category only, never the cause
	Recent    []Delivery `json:"recent,omitempty"`
}

// Stats accumulates handler outcomes. Safe for concurrent use.
type Stats struct {
	mu     sync.Mutex
	status Status
}

// NewStats returns Stats stamped with the given start time.
func NewStats(started time.Time) *Stats {
	return &Stats{status: Status{StartedAt: started}}
}

func (s *Stats) record(d Delivery) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch d.Outcome {
	case OutcomeSent:
		s.status.Sent++
	case OutcomeBot, OutcomeInvalid:
		s.status.Rejected++
	default:
		s.status.Failed++
	}
	if e := d.Outcome.publicError(); e != "" {
		s.status.LastError = e
	}
	s.status.Recent = append(s.status.Recent, d)
	if n := len(s.status.Recent); n > recentLimit {
		s.status.Recent = append([]Delivery(nil), s.status.Recent[n-recentLimit:]...)
	}
}

// Snapshot returns a copy of the accumulated status.
func (s *Stats) Snapshot() Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.status
	if len(s.status.Recent) > 0 {
		snap.Recent = make([]Delivery, len(s.status.Recent))
		copy(snap.Recent, s.status.Recent)
	}
	return snap
}
