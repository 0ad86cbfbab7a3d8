package handler

import (
	"net/http"

	"github.com/vasapolrittideah/opportunity-tracker-api/services/tracker-service/internal/usecase"
	"github.com/vasapolrittideah/opportunity-tracker-api/shared/utilities"
)

type opportunityHTTPHandler struct {
	requestDecoder
	opportunityUsecase usecase.OpportunityUsecase
}

func (h *opportunityHTTPHandler) ListHackathons(w http.ResponseWriter, r *http.Request) {
	hackathons, err := h.opportunityUsecase.ListHackathons(r.Context())
	if err != nil {
		writeInternalError(w, h.logger, err, "failed to list hackathons")
		return
	}

	utilities.WriteJSON(w, h.logger, http.StatusOK, toOpportunities(hackathons))
}

func (h *opportunityHTTPHandler) ListContests(w http.ResponseWriter, r *http.Request) {
	contests, err := h.opportunityUsecase.ListContests(r.Context())
	if err != nil {
		writeInternalError(w, h.logger, err, "failed to list contests")
		return
	}

	utilities.WriteJSON(w, h.logger, http.StatusOK, toOpportunities(contests))
}

func (h *opportunityHTTPHandler) ListJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.opportunityUsecase.ListJobs(r.Context())
	if err != nil {
		writeInternalError(w, h.logger, err, "failed to list jobs")
		return
	}

	utilities.WriteJSON(w, h.logger, http.StatusOK, toOpportunities(jobs))
}
