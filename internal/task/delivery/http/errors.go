package http

import (
	"context"
	"errors"
	"net/http"

	"campus-task-assistant/internal/task"
	pkgErrors "campus-task-assistant/pkg/errors"
	"campus-task-assistant/pkg/llmprovider"
)

var (
	errWrongBody           = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid request body")
	errWrongQuery          = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	errMissingID           = pkgErrors.NewHTTPError(http.StatusBadRequest, "id is required")
	errEmptyInput          = pkgErrors.NewHTTPError(http.StatusBadRequest, "Input text is required")
	errEmptyOrganization   = pkgErrors.NewHTTPError(http.StatusBadRequest, "organization_id is required")
	errParseFailed         = pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, "Failed to parse task")
	errDateNotRecognized   = pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, "Could not understand the date, please clarify")
	errRateLimited         = pkgErrors.NewHTTPError(http.StatusTooManyRequests, "Too many requests, please slow down")
	errUpstreamRateLimited = pkgErrors.NewHTTPError(http.StatusTooManyRequests, "Task parser is busy, please try again later")
	errUpstreamAuth        = pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "Task parser is not configured correctly")
	errUpstream            = pkgErrors.NewHTTPError(http.StatusBadGateway, "Task parser is temporarily unavailable")
	errUpstreamTimeout     = pkgErrors.NewHTTPError(http.StatusGatewayTimeout, "Task parser timed out")
	errTaskNotFound        = pkgErrors.NewHTTPError(http.StatusNotFound, "task not found")
)

// mapError translates use case errors into HTTP errors. Unknown errors are 500.
func (h *handler) mapError(err error) error {
	var pErr *llmprovider.ProviderError

	switch {
	case errors.Is(err, task.ErrEmptyInput):
		return errEmptyInput
	case errors.Is(err, task.ErrEmptyOrganization):
		return errEmptyOrganization
	case errors.Is(err, task.ErrParseFailed):
		return errParseFailed
	case errors.Is(err, task.ErrDateNotRecognized):
		return errDateNotRecognized
	case errors.Is(err, task.ErrRateLimited):
		return errRateLimited
	case errors.Is(err, task.ErrUpstreamRateLimited):
		return errUpstreamRateLimited
	case errors.Is(err, task.ErrUpstreamAuth):
		return errUpstreamAuth
	case errors.Is(err, task.ErrTaskNotFound):
		return errTaskNotFound
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, llmprovider.ErrProviderTimeout):
		return errUpstreamTimeout
	case errors.Is(err, llmprovider.ErrAllProvidersFailed), errors.As(err, &pErr):
		return errUpstream
	default:
		return pkgErrors.ErrInternalServerError
	}
}
