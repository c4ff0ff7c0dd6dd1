// Package generate holds the seam to the test-generation agent: prompt
// construction, the model backend, and writing the generated test file
// into the scaffolded project.
package generate

import (
	"context"
	"errors"

	"github.com/testpilot-io/testpilot/config"
)

var (
	// ErrPromptTooLong is returned when the prompt exceeds the configured limit.
	ErrPromptTooLong = errors.New("prompt exceeds maximum length")

	// ErrURLTooLong is returned when the target URL exceeds the configured limit.
	ErrURLTooLong = errors.New("url exceeds maximum length")

	// ErrEmptyResponse is returned when the model produces no usable code.
	ErrEmptyResponse = errors.New("model returned no generated code")
)

// Request describes a single test-generation call.
type Request struct {
	Prompt    string
	URL       string
	Language  config.Language
	Framework config.Framework
}

// Generator defines the interface for generating browser test code.
// Implementations can use different backends (AWS Bedrock, local
// templates, canned test doubles).
type Generator interface {
	// Generate creates test code for the request's prompt and target URL.
	Generate(ctx context.Context, req Request) ([]byte, error)
}

// ValidationConfig holds the length limits applied to prompt inputs.
type ValidationConfig struct {
	MaxPromptLength int
	MaxURLLength    int
}

// DefaultValidationConfig returns the default validation configuration.
func DefaultValidationConfig() *ValidationConfig {
	return &ValidationConfig{
		MaxPromptLength: 5000,
		MaxURLLength:    2048,
	}
}
