package handler

import (
	"errors"
	"net/http"

	"github.com/vasapolrittideah/opportunity-tracker-api/services/tracker-service/internal/usecase"
	trackertypes "github.com/vasapolrittideah/opportunity-tracker-api/services/tracker-service/pkg/types"
	"github.com/vasapolrittideah/opportunity-tracker-api/shared/utilities"
)

type calendarHTTPHandler struct {
	requestDecoder
	calendarUsecase usecase.CalendarUsecase
}

func (h *calendarHTTPHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r, h.logger)
	if !ok {
		return
	}

	events, err := h.calendarUsecase.ListEvents(r.Context(), userID)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			utilities.WriteError(w, h.logger, http.StatusNotFound, "User not found")
			return
		}

		writeInternalError(w, h.logger, err, "failed to list calendar events")
		return
	}

	utilities.WriteJSON(w, h.logger, http.StatusOK, trackertypes.CalendarResponse{Events: toCalendarEvents(events)})
}
