package domain

import "time"

// SessionStatus represents the lifecycle state of an interview session.
type SessionStatus string

const (
	StatusScheduled  SessionStatus = "SCHEDULED"
	StatusInProgress SessionStatus = "IN_PROGRESS"
	StatusCompleted  SessionStatus = "COMPLETED"
	StatusCancelled  SessionStatus = "CANCELLED"
)

// IsTerminal reports whether no further transition is allowed from s.
func (s SessionStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// InterviewSession is a single timed practice run owned by one user.
// Invariant: at most one IN_PROGRESS session may exist per user.
type InterviewSession struct {
	ID        string        `json:"id"`
	UserID    string        `json:"user_id"`
	Username  string        `json:"username"`
	StartTime time.Time     `json:"start_time"`
	EndTime   *time.Time    `json:"end_time,omitempty"`
	Status    SessionStatus `json:"status"`
}

// DurationMinutes returns the session length in whole minutes, truncated.
// For an active session the duration is measured against now.
func (s *InterviewSession) DurationMinutes(now time.Time) int64 {
	end := now
	if s.EndTime != nil {
		end = *s.EndTime
	}
	return int64(end.Sub(s.StartTime).Minutes())
}
