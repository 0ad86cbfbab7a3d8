package types

import "time"

type JobApplication struct {
	JobID           string    `json:"jobId"`
	JobTitle        string    `json:"jobTitle"`
	Company         string    `json:"company"`
	ApplicationDate time.Time `json:"applicationDate"`
	Notes           string    `json:"notes"`
	Status          string    `json:"status"`
	SourceURL       string    `json:"sourceUrl,omitempty"`
	AddedAt         time.Time `json:"addedAt"`
}

type CreateJobApplicationRequest struct {
	JobID           string `json:"jobId"           validate:"required"`
	JobTitle        string `json:"jobTitle"        validate:"required"`
	Company         string `json:"company"         validate:"required"`
	ApplicationDate string `json:"applicationDate" validate:"required"`
	Notes           string `json:"notes"`
	Status          string `json:"status"          validate:"omitempty,oneof=applied interview rejected accepted pending"`
	SourceURL       string `json:"sourceUrl"       validate:"omitempty,url"`
}

// UpdateJobApplicationRequest leaves nil fields untouched. An empty applicationDate or
// status is treated as absent.
type UpdateJobApplicationRequest struct {
	ApplicationDate *string `json:"applicationDate,omitempty"`
	Notes           *string `json:"notes,omitempty"`
	Status          *string `json:"status,omitempty"`
}

type JobApplicationResponse struct {
	Success     bool           `json:"success"`
	Message     string         `json:"message"`
	Application JobApplication `json:"application"`
}

type ListJobApplicationsResponse struct {
	Applications []JobApplication `json:"applications"`
}

type DeleteJobApplicationResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
