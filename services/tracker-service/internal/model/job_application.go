package model

import (
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type ApplicationStatus string

const (
	ApplicationStatusApplied   ApplicationStatus = "applied"
	ApplicationStatusInterview ApplicationStatus = "interview"
	ApplicationStatusRejected  ApplicationStatus = "rejected"
	ApplicationStatusAccepted  ApplicationStatus = "accepted"
	ApplicationStatusPending   ApplicationStatus = "pending"
)

var ErrInvalidApplicationStatus = errors.New("status must be one of applied, interview, rejected, accepted, pending")

func ParseApplicationStatus(s string) (ApplicationStatus, error) {
	switch st := ApplicationStatus(strings.ToLower(strings.TrimSpace(s))); st {
	case ApplicationStatusApplied,
		ApplicationStatusInterview,
		ApplicationStatusRejected,
		ApplicationStatusAccepted,
		ApplicationStatusPending:
		return st, nil
	default:
		return "", ErrInvalidApplicationStatus
	}
}

// JobApplication is a user's tracked application, unique per user by JobID.
type JobApplication struct {
	ID              bson.ObjectID     `bson:"_id,omitempty"`
	JobID           string            `bson:"job_id"`
	JobTitle        string            `bson:"job_title"`
	Company         string            `bson:"company"`
	ApplicationDate time.Time         `bson:"application_date"`
	Notes           string            `bson:"notes"`
	Status          ApplicationStatus `bson:"status"`
	SourceURL       string            `bson:"source_url,omitempty"`
	AddedAt         time.Time         `bson:"added_at"`
}

func (a JobApplication) Key() string {
	return a.JobID
}

type JobApplicationSet = KeyedCollection[string, JobApplication]

func NewJobApplicationSet(items []JobApplication) *JobApplicationSet {
	return NewKeyedCollection[string](items)
}
