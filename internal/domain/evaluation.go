package domain

import (
	"fmt"
	"strings"
)

// ExecutionErrorPrefix starts the actual output of a case whose execution failed.
const ExecutionErrorPrefix = "Error executing code: "

// NoTestCasesMessage is rendered instead of per-case blocks when a problem has no test cases.
const NoTestCasesMessage = "No test cases available"

// TestCaseResult represents the result of a single test case execution
type TestCaseResult struct {
	Input          string `json:"input"`
	Expected       string `json:"expected"`
	ActualOutput   string `json:"output"`
	Passed         bool   `json:"passed"`
	ExecutionError string `json:"execution_error,omitempty"`
}

// PersistenceStatus is the terminal persistence state of an evaluation run.
type PersistenceStatus string

const (
	PersistenceStatusPersisted     PersistenceStatus = "persisted"
	PersistenceStatusPersistFailed PersistenceStatus = "persist_failed"
	PersistenceStatusSkipped       PersistenceStatus = "skipped"
)

// PersistenceOutcome reports what happened to the verdict after aggregation.
// A failed outcome never invalidates Results or Verdict.
type PersistenceOutcome struct {
	Status  PersistenceStatus `json:"status"`
	Warning string            `json:"warning,omitempty"`
	Err     error             `json:"-"`
}

// EvaluationResult is what an evaluation run hands back to its caller.
type EvaluationResult struct {
	Results     []TestCaseResult   `json:"results"`
	Verdict     Verdict            `json:"verdict"`
	NoTestCases bool               `json:"no_test_cases"`
	Persistence PersistenceOutcome `json:"persistence"`
}

// Summary renders the run as the plain-text block shown in the output pane.
func (e *EvaluationResult) Summary() string {
	if e.NoTestCases {
		return NoTestCasesMessage
	}
	blocks := make([]string, 0, len(e.Results))
	for i, r := range e.Results {
		state := "Failed"
		if r.Passed {
			state = "Passed"
		}
		blocks = append(blocks, fmt.Sprintf("Test Case %d:\n%s\nExpected: %s\nOutput: %s", i+1, state, r.Expected, r.ActualOutput))
	}
	return strings.Join(blocks, "\n\n")
}

// PassedCount returns the number of passing cases.
func (e *EvaluationResult) PassedCount() int {
	n := 0
	for _, r := range e.Results {
		if r.Passed {
			n++
		}
	}
	return n
}
