package model

import "time"

type CalendarEventType string

const (
	CalendarEventInterest    CalendarEventType = "interest"
	CalendarEventApplication CalendarEventType = "application"
)

// CalendarEvent is derived from interests and job applications; it is never stored.
type CalendarEvent struct {
	ID        string
	Title     string
	Start     time.Time
	End       time.Time
	Type      CalendarEventType
	Details   map[string]string
	DaysUntil *int
}
