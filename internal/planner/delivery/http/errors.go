package http

import (
	"errors"
	"net/http"

	"quicktask/internal/planner"
	"quicktask/internal/planner/repository"
	pkgErrors "quicktask/pkg/errors"
)

var (
	errAIUnavailable   = pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "The AI planner is unavailable right now, please try again")
	errInvalidPrompt   = pkgErrors.NewHTTPError(http.StatusBadRequest, "Missing or invalid prompt.")
	errNoTasks         = pkgErrors.NewHTTPError(http.StatusBadRequest, "No tasks provided")
	errMissingTasks    = pkgErrors.NewHTTPError(http.StatusBadRequest, "Missing or invalid tasks array.")
	errDuplicateTaskID = pkgErrors.NewHTTPError(http.StatusConflict, "A task with this id already exists")
	errInvalidTaskBody = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid task payload.")
	errMissingOption   = pkgErrors.NewHTTPError(http.StatusBadRequest, "option is not defined")
	errInvalidOption   = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid option provided")
	errTaskIDRequired  = pkgErrors.NewHTTPError(http.StatusBadRequest, "Task id is required")
	errTaskNotFound    = pkgErrors.NewHTTPError(http.StatusNotFound, "Task not found")
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	var httpErr *pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	var batchErr *planner.BatchValidationError
	if errors.As(err, &batchErr) {
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Validation failed").WithDetails(batchErr.Messages())
	}

	var validationErr *planner.ValidationError
	if errors.As(err, &validationErr) {
		return pkgErrors.NewHTTPError(http.StatusBadRequest, validationErr.Error())
	}

	switch {
	case errors.Is(err, planner.ErrLLMCallFailed):
		return errAIUnavailable
	case errors.Is(err, planner.ErrEmptyPrompt):
		return errInvalidPrompt
	case errors.Is(err, planner.ErrNoTasksProvided):
		return errNoTasks
	case errors.Is(err, planner.ErrMissingTasks):
		return errMissingTasks
	case errors.Is(err, planner.ErrUnauthenticated):
		return pkgErrors.ErrUnauthorized
	case errors.Is(err, repository.ErrDuplicateTaskID):
		return errDuplicateTaskID
	case errors.Is(err, repository.ErrTaskNotFound):
		return errTaskNotFound
	case errors.Is(err, planner.ErrTaskIDRequired):
		return errTaskIDRequired
	case errors.Is(err, planner.ErrInvalidDeleteOption):
		return errInvalidOption
	default:
		return pkgErrors.ErrInternalServerError
	}
}
