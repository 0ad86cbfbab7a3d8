package utilities

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/rs/zerolog"
)

const maxBodyBytes = 1 << 20

var ErrEmptyBody = errors.New("request body is empty")

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Error   string            `json:"error"`
	Details map[string]string `json:"details,omitempty"`
	Message string            `json:"message,omitempty"`
}

// WriteJSON writes v with the given status code.
func WriteJSON(w http.ResponseWriter, logger *zerolog.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil && logger != nil {
		logger.Error().Err(err).Msg("failed to encode response")
	}
}

// WriteError writes an ErrorResponse with msg.
func WriteError(w http.ResponseWriter, logger *zerolog.Logger, status int, msg string) {
	WriteJSON(w, logger, status, ErrorResponse{Error: msg})
}

// DecodeJSON decodes a size-limited JSON body into dst, rejecting trailing data.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrEmptyBody
		}
		return fmt.Errorf("invalid JSON body: %w", err)
	}

	if dec.More() {
		return errors.New("invalid JSON body: unexpected trailing data")
	}

	return nil
}
