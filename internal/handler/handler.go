package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"dealmap/internal/model"

	"github.com/rs/zerolog"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Response is already partially written; nothing useful to do.
		return
	}
}

// writeError writes an error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, code, message string, logger zerolog.Logger) {
	logger.Error().Str("error", message).Int("status", status).Msg("handler error")
	writeJSON(w, status, model.ErrorResponse{Error: code, Message: message})
}

// writeServiceError maps a service error onto an HTTP status using the
// domain error taxonomy: validation codes map to 400, not-found codes to
// 404, transition conflicts to 409, everything else to 500.
func writeServiceError(w http.ResponseWriter, err error, logger zerolog.Logger) {
	var domainErr *model.DomainError
	if !errors.As(err, &domainErr) {
		writeError(w, http.StatusInternalServerError, model.ErrCodeInternalError, "internal server error", logger)
		return
	}

	status := http.StatusInternalServerError
	switch domainErr.Code {
	case model.ErrCodeMissingField,
		model.ErrCodeEmptyCart,
		model.ErrCodeInvalidQuantity,
		model.ErrCodeInvalidPrice,
		model.ErrCodeInvalidJSON:
		status = http.StatusBadRequest
	case model.ErrCodeVenueNotFound,
		model.ErrCodeProductNotFound,
		model.ErrCodeProductWrongVenue,
		model.ErrCodeOrderNotFound:
		status = http.StatusNotFound
	case model.ErrCodeInvalidTransition:
		status = http.StatusConflict
	case model.ErrCodeUnauthorised:
		status = http.StatusUnauthorized
	}

	writeError(w, status, domainErr.Code, domainErr.Message, logger)
}
