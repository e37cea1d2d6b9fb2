package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"gitlab.com/codearena.net/internal/domain"
	"gitlab.com/codearena.net/internal/handlers/response"
)

// maxBodyBytes bounds request bodies; submitted sources are small
const maxBodyBytes = 1 << 20

// RequireSession returns the session JWTMiddleware stored, or writes 401
func RequireSession(w http.ResponseWriter, r *http.Request) (domain.Session, bool) {
	session, ok := domain.SessionFrom(r.Context())
	if !ok || !session.Valid() {
		response.WriteError(w, response.ErrorMessage{
			Message:    "unauthenticated",
			StatusCode: http.StatusUnauthorized,
		})
		return domain.Session{}, false
	}
	return session, true
}

// DecodeJSON reads the request body into v or writes 400
func DecodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(v); err != nil {
		response.WriteError(w, response.ErrorMessage{
			Message:    "Invalid request",
			StatusCode: http.StatusBadRequest,
		})
		return false
	}
	return true
}

// PathUUID parses the named route variable or writes 400
func PathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	raw := mux.Vars(r)[name]
	id, err := uuid.Parse(raw)
	if err != nil {
		response.WriteError(w, response.ErrorMessage{
			Message:    fmt.Sprintf("Invalid %s", name),
			StatusCode: http.StatusBadRequest,
		})
		return uuid.Nil, false
	}
	return id, true
}

// ParseLanguage validates a language parameter or writes 400
func ParseLanguage(w http.ResponseWriter, raw string) (domain.Language, bool) {
	language, err := domain.ParseLanguage(raw)
	if err != nil {
		response.WriteError(w, response.ErrorMessage{
			Message:    err.Error(),
			StatusCode: http.StatusBadRequest,
		})
		return "", false
	}
	return language, true
}
