package secondary

import (
	"context"

	"gitlab.com/codearena.net/internal/domain"
)

// ExecutionOutput is what a successful run printed.
type ExecutionOutput struct {
	Stdout string
}

type CodeExecutor interface {
	// Execute runs source once with stdin. Any failure to produce output is
	// returned as an error, preferably *errs.ExecutionError.
	Execute(ctx context.Context, language domain.Language, source string, stdin string) (*ExecutionOutput, error)
}
