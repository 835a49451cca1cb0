package api

import (
	stderrors "errors"
	"net/http"

	"github.com/vytor/seasonrank/internal/errors"
	"github.com/vytor/seasonrank/internal/logger"
)

// handleError centralizes error handling for HTTP responses. Every error is
// rendered as {"error":{"code","message"}}.
func handleError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromContext(r.Context())

	var appErr *errors.AppError
	if !stderrors.As(err, &appErr) {
		// Wrap unknown errors as internal errors
		appErr = errors.NewInternalError(err)
	}

	if appErr.Status >= 500 {
		log.WithError(err).Error("server error: %s", appErr.Code)
	} else if appErr.Status >= 400 {
		log.Warn("client error: %v", appErr)
	} else {
		log.Debug("error: %v", appErr)
	}

	writeJSON(w, r, appErr.Status, map[string]any{
		"error": map[string]any{
			"code":    appErr.Code,
			"message": appErr.Message,
		},
	})
}

func errNotFoundRoute(r *http.Request) error {
	return &errors.AppError{
		Code:    errors.ErrCodeNotFound,
		Message: "no route for " + r.Method + " " + r.URL.Path,
		Status:  http.StatusNotFound,
	}
}

func errMethodNotAllowed(r *http.Request) error {
	return &errors.AppError{
		Code:    errors.ErrCodeBadRequest,
		Message: "method " + r.Method + " not allowed",
		Status:  http.StatusMethodNotAllowed,
	}
}

func errRequired(field string) error {
	return errors.NewValidationError(field, "is required")
}
