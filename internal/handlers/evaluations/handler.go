package evaluations

import (
	"net/http"

	"github.com/gorilla/mux"

	"gitlab.com/codearena.net/internal/core/ports/primary"
	"gitlab.com/codearena.net/internal/core/services/evaluation"
	"gitlab.com/codearena.net/internal/handlers"
	"gitlab.com/codearena.net/internal/handlers/response"
)

// EvaluationHandler handles evaluation API requests
type EvaluationHandler struct {
	evaluationService evaluation.IEvaluationService
	logger            primary.Logger
}

var _ evaluation.IEvaluationService = &evaluation.EvaluationService{}

// NewEvaluationHandler creates a new evaluation handler
func NewEvaluationHandler(evaluationService evaluation.IEvaluationService, logger primary.Logger) *EvaluationHandler {
	return &EvaluationHandler{
		evaluationService: evaluationService,
		logger:            logger,
	}
}

// RegisterRoutes registers the API routes for EvaluationHandler on an authenticated router
func (h *EvaluationHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/problems/{problemId}/evaluations", h.EvaluateProblem).Methods("POST")
	router.HandleFunc("/evaluations", h.Evaluate).Methods("POST")
}

// EvaluateProblem runs code against the problem's stored test cases
func (h *EvaluationHandler) EvaluateProblem(w http.ResponseWriter, r *http.Request) {
	session, ok := handlers.RequireSession(w, r)
	if !ok {
		return
	}
	problemID, ok := handlers.PathUUID(w, r, "problemId")
	if !ok {
		return
	}

	var req EvaluateProblemRequest
	if !handlers.DecodeJSON(w, r, &req) {
		return
	}
	language, ok := handlers.ParseLanguage(w, req.Language)
	if !ok {
		return
	}

	result, err := h.evaluationService.EvaluateProblem(r.Context(), session, problemID, language, req.Code)
	if err != nil {
		h.logger.Error("Failed to evaluate problem", "problemId", problemID, "error", err)
		response.WriteServiceError(w, err)
		return
	}

	response.WriteSuccess(w, newEvaluationResponse(result))
}

// Evaluate runs code against test cases supplied in the request. The verdict
// is not recorded against the problem.
func (h *EvaluationHandler) Evaluate(w http.ResponseWriter, r *http.Request) {
	session, ok := handlers.RequireSession(w, r)
	if !ok {
		return
	}

	var req EvaluateRequest
	if !handlers.DecodeJSON(w, r, &req) {
		return
	}
	language, ok := handlers.ParseLanguage(w, req.Language)
	if !ok {
		return
	}

	result, err := h.evaluationService.Evaluate(r.Context(), session, evaluation.Request{
		ProblemID: req.ProblemID,
		Language:  language,
		Source:    req.Code,
		TestCases: req.testCases(),
		DryRun:    true,
	})
	if err != nil {
		h.logger.Error("Failed to evaluate", "problemId", req.ProblemID, "error", err)
		response.WriteServiceError(w, err)
		return
	}

	response.WriteSuccess(w, newEvaluationResponse(result))
}
