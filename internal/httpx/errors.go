package httpx

import (
	"errors"
	"net/http"

	"bbws/internal/apperr"
)

// WriteError maps an application error to its status code and envelope.
// Storage and unexpected failures are logged; their text never reaches the
// client.
func WriteError(w http.ResponseWriter, r *http.Request, err error, notFoundMessage string) {
	switch {
	case errors.Is(err, apperr.ErrInvalidIdentifier):
		JSONError(w, r, http.StatusBadRequest, "INVALID_IDENTIFIER", "Invalid BBID", nil)
	case errors.Is(err, apperr.ErrInvalidQuery):
		var details []ErrorDetail
		var qe *apperr.QueryError
		if errors.As(err, &qe) {
			for _, f := range qe.Fields {
				details = append(details, ErrorDetail{Field: f.Field, Message: f.Message})
			}
		}
		JSONError(w, r, http.StatusBadRequest, "INVALID_QUERY", "Invalid query parameters", details)
	case errors.Is(err, apperr.ErrEntityNotFound):
		if notFoundMessage == "" {
			notFoundMessage = "Entity not found"
		}
		JSONError(w, r, http.StatusNotFound, "NOT_FOUND", notFoundMessage, nil)
	case errors.Is(err, apperr.ErrStorageUnavailable):
		LoggerFrom(r).Error("storage unavailable", "error", err.Error())
		JSONError(w, r, http.StatusBadGateway, "STORAGE_UNAVAILABLE", "Storage unavailable", nil)
	default:
		LoggerFrom(r).Error("unhandled error", "error", err.Error())
		JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
	}
}
