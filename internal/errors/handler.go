package errors

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"runtime"
	"runtime/debug"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

// ErrorHandler provides centralized error handling
type ErrorHandler struct {
	logger       *slog.Logger
	includeStack bool
}

// NewErrorHandler creates a new error handler
func NewErrorHandler(logger *slog.Logger, includeStack bool) *ErrorHandler {
	return &ErrorHandler{
		logger:       logger.With(slog.String("component", "error_handler")),
		includeStack: includeStack,
	}
}

// HandleError converts any error to RFC 7807 format and responds
func (h *ErrorHandler) HandleError(w http.ResponseWriter, r *http.Request, err error) {
	if err == nil {
		return
	}

	reqID := middleware.GetReqID(r.Context())

	h.logger.ErrorContext(r.Context(), "request failed",
		slog.String("error", err.Error()),
		slog.String("request_id", reqID),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
	)

	problem := h.ErrorToProblem(err, r)
	problem.WithExtension("trace_id", reqID)

	if h.includeStack {
		problem.WithExtension("stack", getStackTrace())
	}

	render.Render(w, r, problem)
}

// ErrorToProblem converts an error to RFC 7807 Problem Details. Each kind in
// the pipeline's error taxonomy maps to a distinct problem type so callers
// can show a distinct user-facing message per kind.
func (h *ErrorHandler) ErrorToProblem(err error, r *http.Request) *ProblemDetails {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return NewProblemDetails(
			http.StatusGatewayTimeout,
			TypeTimeout,
			"Request Timeout",
			"The request took too long to process and was cancelled",
			r.URL.Path,
		)
	}

	var schemaErr *SchemaError
	if errors.As(err, &schemaErr) {
		return NewProblemDetails(
			http.StatusBadRequest,
			TypeSchema,
			"Missing Required Columns",
			schemaErr.Error(),
			r.URL.Path,
		).WithExtension("missing_columns", schemaErr.Missing)
	}

	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		return NewProblemDetails(
			http.StatusBadRequest,
			TypeParse,
			"Unparseable Field",
			parseErr.Error(),
			r.URL.Path,
		).WithExtension("row", parseErr.Row).WithExtension("column", parseErr.Column)
	}

	if errors.Is(err, ErrInsufficientData) {
		return NewProblemDetails(
			http.StatusUnprocessableEntity,
			TypeInsufficientData,
			"Insufficient Data",
			"The dataset has no dated rows to forecast from",
			r.URL.Path,
		)
	}

	var notFoundErr *NotFoundError
	if errors.As(err, &notFoundErr) {
		return NewProblemDetails(
			http.StatusNotFound,
			TypeNotFound,
			"Resource Not Found",
			notFoundErr.Error(),
			r.URL.Path,
		).WithExtension("resource", notFoundErr.Resource)
	}

	var tooLargeErr *PayloadTooLargeError
	if errors.As(err, &tooLargeErr) {
		return NewProblemDetails(
			http.StatusRequestEntityTooLarge,
			TypePayloadTooLarge,
			"Payload Too Large",
			tooLargeErr.Error(),
			r.URL.Path,
		).WithExtension("limit_bytes", tooLargeErr.Limit)
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		switch appErr.Type {
		case ErrTypeValidation:
			return NewProblemDetails(
				http.StatusBadRequest,
				TypeValidation,
				"Validation Failed",
				appErr.Message,
				r.URL.Path,
			)
		case ErrTypeNotFound:
			return NewProblemDetails(
				http.StatusNotFound,
				TypeNotFound,
				"Resource Not Found",
				appErr.Message,
				r.URL.Path,
			)
		case ErrTypeStorage:
			return NewProblemDetails(
				http.StatusInternalServerError,
				TypeStorage,
				"Artifact Storage Error",
				appErr.Message,
				r.URL.Path,
			)
		}
	}

	return NewProblemDetails(
		http.StatusInternalServerError,
		TypeInternal,
		"Internal Server Error",
		"An unexpected error occurred while processing your request",
		r.URL.Path,
	)
}

// HandlePanic recovers from panics and returns RFC 7807 error
func (h *ErrorHandler) HandlePanic(w http.ResponseWriter, r *http.Request, recovered interface{}) {
	reqID := middleware.GetReqID(r.Context())

	h.logger.ErrorContext(r.Context(), "panic recovered",
		slog.Any("panic", recovered),
		slog.String("request_id", reqID),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.String("stack", string(debug.Stack())),
	)

	problem := NewProblemDetails(
		http.StatusInternalServerError,
		TypeInternal,
		"Internal Server Error",
		"An unexpected error occurred",
		r.URL.Path,
	).WithExtension("trace_id", reqID)

	if h.includeStack {
		problem.WithExtension("stack", getStackTrace())
	}

	render.Render(w, r, problem)
}

// NotFound returns a standard 404 error
func (h *ErrorHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	problem := NewProblemDetails(
		http.StatusNotFound,
		TypeNotFound,
		"Not Found",
		"The requested resource was not found",
		r.URL.Path,
	).WithExtension("trace_id", middleware.GetReqID(r.Context()))

	render.Render(w, r, problem)
}

// getStackTrace returns the current stack trace
func getStackTrace() string {
	buf := make([]byte, 1024*8)
	n := runtime.Stack(buf, false)
	return string(buf[:n])
}
