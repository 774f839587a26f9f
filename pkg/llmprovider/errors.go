package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"campus-task-assistant/pkg/gemini"
	"campus-task-assistant/pkg/openaicompat"
)

var (
	// ErrAllProvidersFailed indicates all providers failed to generate content
	ErrAllProvidersFailed = errors.New("all providers failed")

	// ErrNoProvidersConfigured indicates no providers are enabled
	ErrNoProvidersConfigured = errors.New("no providers configured")

	// ErrInvalidRequest indicates the request is malformed
	ErrInvalidRequest = errors.New("invalid request")

	// ErrProviderTimeout indicates a provider request timed out
	ErrProviderTimeout = errors.New("provider timeout")

	// ErrProviderRateLimited indicates rate limit exceeded
	ErrProviderRateLimited = errors.New("provider rate limited")

	// ErrProviderAuth indicates the provider rejected the credentials
	ErrProviderAuth = errors.New("provider authentication failed")
)

// ProviderError wraps provider-specific errors
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// Classify tags a client error with ErrProviderRateLimited or ErrProviderAuth
// based on the HTTP status it carries. Other errors are returned unchanged.
func Classify(err error) error {
	if err == nil {
		return nil
	}

	switch statusCode(err) {
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: %w", ErrProviderRateLimited, err)
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %w", ErrProviderAuth, err)
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", ErrProviderTimeout, err)
	}
	return err
}

// IsPermanent reports whether retrying the same provider cannot help.
func IsPermanent(err error) bool {
	return errors.Is(err, ErrProviderRateLimited) || errors.Is(err, ErrProviderAuth)
}

func statusCode(err error) int {
	var gErr *gemini.APIError
	if errors.As(err, &gErr) {
		return gErr.StatusCode
	}
	var oErr *openaicompat.APIError
	if errors.As(err, &oErr) {
		return oErr.StatusCode
	}
	return 0
}
