// Package handlers implements the HTTP controllers of the catalog API.
package handlers

import (
	"errors"
	"io"
	"net/http"

	"moviehub/database"
	"moviehub/logging"
	"moviehub/models"

	"github.com/goccy/go-json"
)

// respondJSON sends a JSON response with proper headers
func respondJSON(w http.ResponseWriter, status int, response *models.APIResponse) {
	data, err := json.Marshal(response)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

func respondData(w http.ResponseWriter, status int, data any) {
	respondJSON(w, status, &models.APIResponse{Success: true, Data: data})
}

func respondList[T any](w http.ResponseWriter, items []T) {
	count := len(items)
	respondJSON(w, http.StatusOK, &models.APIResponse{Success: true, Data: items, Count: &count})
}

func respondMessage(w http.ResponseWriter, message string) {
	respondJSON(w, http.StatusOK, &models.APIResponse{Success: true, Message: message})
}

// WriteError sends a failure envelope with the given status and message.
func WriteError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, &models.APIResponse{Success: false, Error: message})
}

// respondError maps err onto the failure envelope. Storage failures are
// logged and reported generically.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	var validationErr *models.ValidationError
	var notFoundErr *models.NotFoundError
	var storageErr *database.StorageError
	var tooLarge *http.MaxBytesError

	switch {
	case errors.As(err, &validationErr):
		WriteError(w, http.StatusBadRequest, validationErr.Message)
	case errors.As(err, &tooLarge):
		WriteError(w, http.StatusRequestEntityTooLarge, "Request body too large")
	case errors.As(err, &notFoundErr):
		WriteError(w, http.StatusNotFound, notFoundErr.Error())
	case errors.As(err, &storageErr):
		logging.Error().Err(err).Str("method", r.Method).Str("path", r.URL.Path).Msg("Storage failure")
		WriteError(w, http.StatusInternalServerError, "Internal server error")
	default:
		logging.Error().Err(err).Str("method", r.Method).Str("path", r.URL.Path).Msg("Request failed")
		WriteError(w, http.StatusInternalServerError, err.Error())
	}
}

// maxBodyBytes bounds JSON request bodies.
const maxBodyBytes = 1 << 20

// decodeBody decodes the request body into dst. An empty body leaves dst
// untouched so required-field validation reports what is missing.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	if r.Body == nil {
		return nil
	}

	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return tooLarge
		}
		return &models.ValidationError{Message: "Invalid request body"}
	}
	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, dst); err != nil {
		return &models.ValidationError{Message: "Invalid request body"}
	}
	return nil
}
