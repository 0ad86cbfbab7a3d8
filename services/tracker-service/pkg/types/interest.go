package types

import "time"

type Interest struct {
	OpportunityID   string     `json:"opportunityId"`
	OpportunityType string     `json:"opportunityType"`
	OpportunityName string     `json:"opportunityName"`
	Platform        string     `json:"platform"`
	Link            string     `json:"link"`
	Deadline        *time.Time `json:"deadline,omitempty"`
	AddedAt         time.Time  `json:"addedAt"`
}

// ToggleInterestRequest adds the interest when absent and removes it when present.
// Deadline accepts RFC 3339, YYYY-MM-DDTHH:MM:SS or YYYY-MM-DD.
type ToggleInterestRequest struct {
	OpportunityID   string `json:"opportunityId"   validate:"required"`
	OpportunityType string `json:"opportunityType" validate:"required"`
	OpportunityName string `json:"opportunityName"`
	Platform        string `json:"platform"`
	Link            string `json:"link"`
	Deadline        string `json:"deadline"`
}

type ToggleInterestResponse struct {
	Success      bool   `json:"success"`
	IsInterested bool   `json:"isInterested"`
	Message      string `json:"message"`
}

type ListInterestsResponse struct {
	Interests []Interest `json:"interests"`
}

type CheckInterestResponse struct {
	IsInterested bool `json:"isInterested"`
}
