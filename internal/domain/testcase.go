package domain

import "github.com/google/uuid"

// TestCase represents a test case for code execution
type TestCase struct {
	ID             uuid.UUID `json:"id" db:"id"`
	Input          string    `json:"input" db:"input"`
	ExpectedOutput string    `json:"output" db:"expected_output"`
	IsHidden       bool      `json:"is_hidden" db:"is_hidden"`
}
