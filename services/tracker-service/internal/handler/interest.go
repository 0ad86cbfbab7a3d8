package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/vasapolrittideah/opportunity-tracker-api/services/tracker-service/internal/model"
	"github.com/vasapolrittideah/opportunity-tracker-api/services/tracker-service/internal/usecase"
	trackertypes "github.com/vasapolrittideah/opportunity-tracker-api/services/tracker-service/pkg/types"
	"github.com/vasapolrittideah/opportunity-tracker-api/shared/utilities"
)

type interestHTTPHandler struct {
	requestDecoder
	interestUsecase usecase.InterestUsecase
}

func (h *interestHTTPHandler) ToggleInterest(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r, h.logger)
	if !ok {
		return
	}

	var req trackertypes.ToggleInterestRequest
	if !h.decode(w, r, &req) {
		return
	}

	opportunityType, err := model.ParseOpportunityType(req.OpportunityType)
	if err != nil {
		utilities.WriteError(w, h.logger, http.StatusBadRequest, "Invalid opportunity type")
		return
	}

	var deadline *time.Time
	if strings.TrimSpace(req.Deadline) != "" {
		parsed, err := model.ParseDate(req.Deadline)
		if err != nil {
			utilities.WriteError(w, h.logger, http.StatusBadRequest, "Invalid deadline")
			return
		}
		deadline = &parsed
	}

	isInterested, err := h.interestUsecase.ToggleInterest(r.Context(), userID, usecase.ToggleInterestParams{
		OpportunityID:   req.OpportunityID,
		OpportunityType: opportunityType,
		OpportunityName: req.OpportunityName,
		Platform:        req.Platform,
		Link:            req.Link,
		Deadline:        deadline,
	})
	if err != nil {
		h.writeError(w, err, "failed to toggle interest")
		return
	}

	message := "Removed from interests"
	if isInterested {
		message = "Added to interests"
	}

	utilities.WriteJSON(w, h.logger, http.StatusOK, trackertypes.ToggleInterestResponse{
		Success:      true,
		IsInterested: isInterested,
		Message:      message,
	})
}

func (h *interestHTTPHandler) ListInterests(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r, h.logger)
	if !ok {
		return
	}

	interests, err := h.interestUsecase.ListInterests(r.Context(), userID)
	if err != nil {
		h.writeError(w, err, "failed to list interests")
		return
	}

	utilities.WriteJSON(w, h.logger, http.StatusOK, trackertypes.ListInterestsResponse{
		Interests: toInterests(interests),
	})
}

func (h *interestHTTPHandler) CheckInterest(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r, h.logger)
	if !ok {
		return
	}

	opportunityType, err := model.ParseOpportunityType(chi.URLParam(r, "opportunityType"))
	if err != nil {
		utilities.WriteError(w, h.logger, http.StatusBadRequest, "Invalid opportunity type")
		return
	}

	isInterested, err := h.interestUsecase.IsInterested(r.Context(), userID, model.InterestKey{
		OpportunityID:   chi.URLParam(r, "opportunityId"),
		OpportunityType: opportunityType,
	})
	if err != nil {
		h.writeError(w, err, "failed to check interest")
		return
	}

	utilities.WriteJSON(w, h.logger, http.StatusOK, trackertypes.CheckInterestResponse{IsInterested: isInterested})
}

func (h *interestHTTPHandler) writeError(w http.ResponseWriter, err error, msg string) {
	switch {
	case errors.Is(err, usecase.ErrUserNotFound):
		utilities.WriteError(w, h.logger, http.StatusNotFound, "User not found")
	default:
		writeInternalError(w, h.logger, err, msg)
	}
}
