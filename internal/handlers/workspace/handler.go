package workspace

import (
	"net/http"

	"github.com/gorilla/mux"

	"gitlab.com/codearena.net/internal/core/ports/primary"
	"gitlab.com/codearena.net/internal/core/services/workspace"
	"gitlab.com/codearena.net/internal/domain"
	"gitlab.com/codearena.net/internal/handlers"
	"gitlab.com/codearena.net/internal/handlers/response"
)

// WorkspaceHandler serves editor state, language options and submission history
type WorkspaceHandler struct {
	workspaceService workspace.IWorkspaceService
	logger           primary.Logger
}

func NewWorkspaceHandler(workspaceService workspace.IWorkspaceService, logger primary.Logger) *WorkspaceHandler {
	return &WorkspaceHandler{
		workspaceService: workspaceService,
		logger:           logger,
	}
}

func (h *WorkspaceHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/languages", h.GetLanguages).Methods("GET")
	router.HandleFunc("/problems/{problemId}/workspace", h.GetWorkspace).Methods("GET")
	router.HandleFunc("/problems/{problemId}/submissions", h.GetSubmissions).Methods("GET")
}

func (h *WorkspaceHandler) GetLanguages(w http.ResponseWriter, r *http.Request) {
	response.WriteSuccess(w, map[string][]domain.LanguageSpec{"languages": h.workspaceService.Languages()})
}

// GetWorkspace defaults to C++ when no language is given
func (h *WorkspaceHandler) GetWorkspace(w http.ResponseWriter, r *http.Request) {
	session, ok := handlers.RequireSession(w, r)
	if !ok {
		return
	}
	problemID, ok := handlers.PathUUID(w, r, "problemId")
	if !ok {
		return
	}

	rawLanguage := r.URL.Query().Get("language")
	if rawLanguage == "" {
		rawLanguage = string(domain.LanguageCpp)
	}
	language, ok := handlers.ParseLanguage(w, rawLanguage)
	if !ok {
		return
	}

	ws, err := h.workspaceService.Open(r.Context(), session, problemID, language)
	if err != nil {
		h.logger.Error("Failed to open workspace", "problemId", problemID, "error", err)
		response.WriteServiceError(w, err)
		return
	}

	response.WriteSuccess(w, ws)
}

func (h *WorkspaceHandler) GetSubmissions(w http.ResponseWriter, r *http.Request) {
	problemID, ok := handlers.PathUUID(w, r, "problemId")
	if !ok {
		return
	}

	records, err := h.workspaceService.Submissions(r.Context(), problemID)
	if err != nil {
		h.logger.Error("Failed to get submissions", "problemId", problemID, "error", err)
		response.WriteServiceError(w, err)
		return
	}

	response.WriteSuccess(w, map[string][]*domain.SubmissionRecord{"submissions": records})
}
