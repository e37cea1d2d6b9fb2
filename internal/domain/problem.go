package domain

import (
	"time"

	"github.com/google/uuid"
)

// Problem is a programming problem together with its ordered test cases
type Problem struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	Title       string     `json:"title" db:"title"`
	Description string     `json:"description" db:"description"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	TestCases   []TestCase `json:"test_cases" db:"-"`
}

// VisibleTestCases returns the cases that may be shown to the submitter.
func (p *Problem) VisibleTestCases() []TestCase {
	visible := make([]TestCase, 0, len(p.TestCases))
	for _, tc := range p.TestCases {
		if !tc.IsHidden {
			visible = append(visible, tc)
		}
	}
	return visible
}
