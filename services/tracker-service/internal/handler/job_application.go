package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/vasapolrittideah/opportunity-tracker-api/services/tracker-service/internal/model"
	"github.com/vasapolrittideah/opportunity-tracker-api/services/tracker-service/internal/usecase"
	trackertypes "github.com/vasapolrittideah/opportunity-tracker-api/services/tracker-service/pkg/types"
	"github.com/vasapolrittideah/opportunity-tracker-api/shared/utilities"
)

type jobApplicationHTTPHandler struct {
	requestDecoder
	jobApplicationUsecase usecase.JobApplicationUsecase
}

func (h *jobApplicationHTTPHandler) CreateJobApplication(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r, h.logger)
	if !ok {
		return
	}

	var req trackertypes.CreateJobApplicationRequest
	if !h.decode(w, r, &req) {
		return
	}

	applicationDate, err := model.ParseDate(req.ApplicationDate)
	if err != nil {
		utilities.WriteError(w, h.logger, http.StatusBadRequest, "Invalid application date")
		return
	}

	var status model.ApplicationStatus
	if req.Status != "" {
		if status, err = model.ParseApplicationStatus(req.Status); err != nil {
			utilities.WriteError(w, h.logger, http.StatusBadRequest, "Invalid status")
			return
		}
	}

	application, err := h.jobApplicationUsecase.CreateJobApplication(r.Context(), userID, usecase.CreateJobApplicationParams{
		JobID:           req.JobID,
		JobTitle:        req.JobTitle,
		Company:         req.Company,
		ApplicationDate: applicationDate,
		Notes:           req.Notes,
		Status:          status,
		SourceURL:       req.SourceURL,
	})
	if err != nil {
		h.writeError(w, err, "failed to create job application")
		return
	}

	utilities.WriteJSON(w, h.logger, http.StatusCreated, trackertypes.JobApplicationResponse{
		Success:     true,
		Message:     "Job application added successfully",
		Application: toJobApplication(application),
	})
}

func (h *jobApplicationHTTPHandler) ListJobApplications(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r, h.logger)
	if !ok {
		return
	}

	applications, err := h.jobApplicationUsecase.ListJobApplications(r.Context(), userID)
	if err != nil {
		h.writeError(w, err, "failed to list job applications")
		return
	}

	utilities.WriteJSON(w, h.logger, http.StatusOK, trackertypes.ListJobApplicationsResponse{
		Applications: toJobApplications(applications),
	})
}

func (h *jobApplicationHTTPHandler) UpdateJobApplication(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r, h.logger)
	if !ok {
		return
	}

	var req trackertypes.UpdateJobApplicationRequest
	if !h.decode(w, r, &req) {
		return
	}

	// Empty applicationDate or status means "leave unchanged".
	var params usecase.UpdateJobApplicationParams
	if req.ApplicationDate != nil && strings.TrimSpace(*req.ApplicationDate) != "" {
		applicationDate, err := model.ParseDate(*req.ApplicationDate)
		if err != nil {
			utilities.WriteError(w, h.logger, http.StatusBadRequest, "Invalid application date")
			return
		}
		params.ApplicationDate = &applicationDate
	}
	if req.Status != nil && strings.TrimSpace(*req.Status) != "" {
		status, err := model.ParseApplicationStatus(*req.Status)
		if err != nil {
			utilities.WriteError(w, h.logger, http.StatusBadRequest, "Invalid status")
			return
		}
		params.Status = &status
	}
	params.Notes = req.Notes

	application, err := h.jobApplicationUsecase.UpdateJobApplication(r.Context(), userID, chi.URLParam(r, "jobId"), params)
	if err != nil {
		h.writeError(w, err, "failed to update job application")
		return
	}

	utilities.WriteJSON(w, h.logger, http.StatusOK, trackertypes.JobApplicationResponse{
		Success:     true,
		Message:     "Job application updated successfully",
		Application: toJobApplication(application),
	})
}

func (h *jobApplicationHTTPHandler) DeleteJobApplication(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r, h.logger)
	if !ok {
		return
	}

	if err := h.jobApplicationUsecase.DeleteJobApplication(r.Context(), userID, chi.URLParam(r, "jobId")); err != nil {
		h.writeError(w, err, "failed to delete job application")
		return
	}

	utilities.WriteJSON(w, h.logger, http.StatusOK, trackertypes.DeleteJobApplicationResponse{
		Success: true,
		Message: "Job application deleted successfully",
	})
}

func (h *jobApplicationHTTPHandler) writeError(w http.ResponseWriter, err error, msg string) {
	switch {
	case errors.Is(err, usecase.ErrUserNotFound):
		utilities.WriteError(w, h.logger, http.StatusNotFound, "User not found")
	case errors.Is(err, usecase.ErrJobApplicationNotFound):
		utilities.WriteError(w, h.logger, http.StatusNotFound, "Job application not found")
	case errors.Is(err, usecase.ErrJobApplicationExists):
		utilities.WriteError(w, h.logger, http.StatusConflict, "Job application already exists")
	default:
		writeInternalError(w, h.logger, err, msg)
	}
}
