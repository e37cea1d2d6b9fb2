package evaluations

import (
	"github.com/google/uuid"

	"gitlab.com/codearena.net/internal/domain"
)

// EvaluateProblemRequest runs code against the stored test cases of a problem
type EvaluateProblemRequest struct {
	Language string `json:"language"`
	Code     string `json:"code"`
}

// TestCaseRequest is one caller-supplied test case
type TestCaseRequest struct {
	Input  string `json:"input"`
	Output string `json:"output"`
}

// EvaluateRequest runs code against caller-supplied test cases
type EvaluateRequest struct {
	ProblemID uuid.UUID         `json:"problem_id"`
	Language  string            `json:"language"`
	Code      string            `json:"code"`
	TestCases []TestCaseRequest `json:"test_cases"`
}

func (r EvaluateRequest) testCases() []domain.TestCase {
	tcs := make([]domain.TestCase, 0, len(r.TestCases))
	for _, tc := range r.TestCases {
		tcs = append(tcs, domain.TestCase{Input: tc.Input, ExpectedOutput: tc.Output})
	}
	return tcs
}

type CaseResultResponse struct {
	Index          int    `json:"index"`
	Input          string `json:"input"`
	Expected       string `json:"expected"`
	Output         string `json:"output"`
	Passed         bool   `json:"passed"`
	ExecutionError string `json:"execution_error,omitempty"`
}

type PersistenceResponse struct {
	Status  domain.PersistenceStatus `json:"status"`
	Warning string                   `json:"warning,omitempty"`
}

// EvaluationResponse is returned with 200 even when persisting failed
type EvaluationResponse struct {
	Results     []CaseResultResponse `json:"results"`
	Verdict     domain.Verdict       `json:"verdict"`
	NoTestCases bool                 `json:"no_test_cases"`
	Output      string               `json:"output"`
	Persistence PersistenceResponse  `json:"persistence"`
}

func newEvaluationResponse(result *domain.EvaluationResult) EvaluationResponse {
	resp := EvaluationResponse{
		Results:     make([]CaseResultResponse, 0, len(result.Results)),
		Verdict:     result.Verdict,
		NoTestCases: result.NoTestCases,
		Output:      result.Summary(),
		Persistence: PersistenceResponse{
			Status:  result.Persistence.Status,
			Warning: result.Persistence.Warning,
		},
	}
	for i, r := range result.Results {
		resp.Results = append(resp.Results, CaseResultResponse{
			Index:          i + 1,
			Input:          r.Input,
			Expected:       r.Expected,
			Output:         r.ActualOutput,
			Passed:         r.Passed,
			ExecutionError: r.ExecutionError,
		})
	}
	return resp
}
