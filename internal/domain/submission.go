package domain

import (
	"time"

	"github.com/google/uuid"
)

// SubmissionRecord is one stored evaluation run of a user's code
type SubmissionRecord struct {
	ID        uuid.UUID `json:"id" db:"id"`
	ProblemID uuid.UUID `json:"problem_id" db:"problem_id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	UserName  string    `json:"user_name" db:"user_name"`
	Language  Language  `json:"language" db:"language"`
	Code      string    `json:"code" db:"code"`
	Status    Verdict   `json:"status" db:"status"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// NewSubmissionRecord creates a record stamped with the current time
func NewSubmissionRecord(problemID, userID uuid.UUID, language Language, code string, status Verdict) *SubmissionRecord {
	return &SubmissionRecord{
		ID:        uuid.New(),
		ProblemID: problemID,
		UserID:    userID,
		Language:  language,
		Code:      code,
		Status:    status,
		CreatedAt: time.Now(),
	}
}

// UserCode is the latest code a user saved for a problem in one language.
type UserCode struct {
	ProblemID uuid.UUID `json:"problem_id" db:"problem_id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	Language  Language  `json:"language" db:"language"`
	Code      string    `json:"code" db:"code"`
	Status    Verdict   `json:"status" db:"status"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

type SubmissionTable struct {
	ID        string
	ProblemID string
	UserID    string
	Language  string
	Code      string
	Status    string
	CreatedAt string
}

func GetSubmissionTable() SubmissionTable {
	return SubmissionTable{
		ID:        "id",
		ProblemID: "problem_id",
		UserID:    "user_id",
		Language:  "language",
		Code:      "code",
		Status:    "status",
		CreatedAt: "created_at",
	}
}

func (SubmissionTable) TableName() string {
	return "submissions"
}
