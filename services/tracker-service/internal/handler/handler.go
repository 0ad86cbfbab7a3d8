package handler

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/vasapolrittideah/opportunity-tracker-api/shared/interceptor"
	"github.com/vasapolrittideah/opportunity-tracker-api/shared/utilities"
	"github.com/vasapolrittideah/opportunity-tracker-api/shared/validator"
)

const internalErrorMessage = "Internal server error"

// requestDecoder decodes and validates JSON bodies, answering 400 itself on failure.
type requestDecoder struct {
	logger    *zerolog.Logger
	validator *validator.Validator
}

func (d requestDecoder) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := utilities.DecodeJSON(w, r, dst); err != nil {
		utilities.WriteError(w, d.logger, http.StatusBadRequest, err.Error())
		return false
	}

	if err := d.validator.Struct(dst); err != nil {
		var verr *validator.ValidationError
		if errors.As(err, &verr) {
			utilities.WriteJSON(w, d.logger, http.StatusBadRequest, utilities.ErrorResponse{
				Error:   verr.Error(),
				Details: verr.Fields,
			})
			return false
		}

		d.logger.Error().Err(err).Msg("failed to validate request")
		utilities.WriteError(w, d.logger, http.StatusInternalServerError, internalErrorMessage)
		return false
	}

	return true
}

// requireUserID returns the authenticated user id, answering 401 when it is missing.
func requireUserID(w http.ResponseWriter, r *http.Request, logger *zerolog.Logger) (string, bool) {
	userID, ok := interceptor.UserIDFromContext(r.Context())
	if !ok {
		utilities.WriteError(w, logger, http.StatusUnauthorized, "Access token required")
		return "", false
	}

	return userID, true
}

func writeInternalError(w http.ResponseWriter, logger *zerolog.Logger, err error, msg string) {
	logger.Error().Err(err).Msg(msg)
	utilities.WriteError(w, logger, http.StatusInternalServerError, internalErrorMessage)
}
