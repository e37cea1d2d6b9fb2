package profile

import (
	"net/http"

	"github.com/gorilla/mux"

	"gitlab.com/codearena.net/internal/core/ports/primary"
	"gitlab.com/codearena.net/internal/core/services/user"
	"gitlab.com/codearena.net/internal/handlers"
	"gitlab.com/codearena.net/internal/handlers/response"
)

type ProfileHandler struct {
	userService user.IUserService
	logger      primary.Logger
}

func NewProfileHandler(userService user.IUserService, logger primary.Logger) *ProfileHandler {
	return &ProfileHandler{
		userService: userService,
		logger:      logger,
	}
}

func (h *ProfileHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/profile", h.GetProfile).Methods("GET")
}

func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	session, ok := handlers.RequireSession(w, r)
	if !ok {
		return
	}

	usr, err := h.userService.Profile(r.Context(), session)
	if err != nil {
		h.logger.Error("Failed to get profile", "userId", session.UserID, "error", err)
		response.WriteServiceError(w, err)
		return
	}

	response.WriteSuccess(w, usr)
}
