package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"gitlab.com/codearena.net/internal/static/errs"
)

type ErrorMessage struct {
	Message    string `json:"message"`
	StatusCode int    `json:"status_code"`
}

func WriteError(w http.ResponseWriter, err ErrorMessage) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(err.StatusCode)
	_ = json.NewEncoder(w).Encode(err)
}

func WriteSuccess(w http.ResponseWriter, data interface{}) {
	WriteJSON(w, http.StatusOK, data)
}

func WriteJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// WriteServiceError maps a service error onto its HTTP status
func WriteServiceError(w http.ResponseWriter, err error) {
	WriteError(w, ErrorMessage{
		Message:    err.Error(),
		StatusCode: StatusFromError(err),
	})
}

// StatusFromError classifies err. Not-found is checked before load
// failures since a LoadError may wrap one.
func StatusFromError(err error) int {
	var loadErr *errs.LoadError
	switch {
	case errors.Is(err, errs.Unauthenticated),
		errors.Is(err, errs.InvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, errs.EmailDomainNotAllowed):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrUnsupportedLanguage),
		errors.Is(err, errs.ErrEmptySource),
		errors.Is(err, errs.EmailRequired),
		errors.Is(err, errs.InvalidRegistration):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrProblemNotFound),
		errors.Is(err, errs.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrRunInFlight),
		errors.Is(err, errs.UserNameTaken):
		return http.StatusConflict
	case errors.As(err, &loadErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
