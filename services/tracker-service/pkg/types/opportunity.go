package types

import "time"

// Opportunity is an ingested record, passed through as stored. Hackathons carry an
// extra "category" field: open, closed or upcoming.
type Opportunity map[string]any

type CalendarEvent struct {
	ID        string            `json:"id"`
	Title     string            `json:"title"`
	Start     time.Time         `json:"start"`
	End       time.Time         `json:"end"`
	Type      string            `json:"type"`
	Details   map[string]string `json:"details"`
	DaysUntil *int              `json:"daysUntil,omitempty"`
}

type CalendarResponse struct {
	Events []CalendarEvent `json:"events"`
}

type HealthResponse struct {
	Status    string    `json:"status"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}
