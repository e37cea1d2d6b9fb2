// Package executor talks to the remote compiler service that runs submissions.
package executor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"gitlab.com/codearena.net/internal/config"
	"gitlab.com/codearena.net/internal/core/ports/primary"
	"gitlab.com/codearena.net/internal/core/ports/secondary"
	"gitlab.com/codearena.net/internal/domain"
	"gitlab.com/codearena.net/internal/static/errs"
)

var _ secondary.CodeExecutor = (*Client)(nil)

const (
	runPath           = "/run"
	accessTokenHeader = "Access-Token"
	// maxResponseBytes caps how much program output is read back
	maxResponseBytes = 8 << 20
)

type runRequest struct {
	Language string `json:"language"`
	Code     string `json:"code"`
	Input    string `json:"input"`
}

type runResponse struct {
	Output string `json:"output"`
	Error  string `json:"error"`
}

// Client executes code through the compiler service HTTP API
type Client struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client
	logger      primary.Logger
}

// NewClient creates a compiler client from config
func NewClient(cfg *config.ExecutorConfig, logger primary.Logger) *Client {
	return &Client{
		baseURL:     strings.TrimSuffix(cfg.Url, "/"),
		accessToken: cfg.AccessToken,
		httpClient:  &http.Client{Timeout: cfg.Timeout},
		logger:      logger,
	}
}

// Execute runs source once with stdin and returns what it printed
func (c *Client) Execute(ctx context.Context, language domain.Language, source string, stdin string) (*secondary.ExecutionOutput, error) {
	if !language.Valid() {
		return nil, errs.NewExecutionError(errs.ErrUnsupportedLanguage, "unsupported language %q", string(language))
	}

	body, err := json.Marshal(runRequest{
		Language: language.Spec().Target,
		Code:     source,
		Input:    stdin,
	})
	if err != nil {
		return nil, errs.NewExecutionError(err, "failed to encode run request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+runPath, bytes.NewReader(body))
	if err != nil {
		return nil, errs.NewExecutionError(err, "failed to build run request")
	}
	req.Header.Set("Content-Type", "application/json")
	if c.accessToken != "" {
		req.Header.Set(accessTokenHeader, c.accessToken)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("Compiler request failed", "language", language, "error", err)
		return nil, errs.NewExecutionError(err, "compiler service unreachable: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, errs.NewExecutionError(err, "failed to read compiler response: %v", err)
	}

	c.logger.Debug("Compiler responded",
		"language", language,
		"status", resp.StatusCode,
		"duration", time.Since(start))

	var decoded runResponse
	decodeErr := json.Unmarshal(raw, &decoded)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		reason := decoded.Error
		if decodeErr != nil || reason == "" {
			reason = strings.TrimSpace(string(raw))
		}
		if reason == "" {
			reason = fmt.Sprintf("compiler service returned %d", resp.StatusCode)
		}
		return nil, &errs.ExecutionError{Reason: reason}
	}

	if decodeErr != nil {
		return nil, errs.NewExecutionError(decodeErr, "malformed compiler response")
	}

	return &secondary.ExecutionOutput{Stdout: decoded.Output}, nil
}
