package http

import (
	"errors"
	"log/slog"
	"net/http"

	"loan-tracker/internal/domain/apperr"

	"github.com/labstack/echo/v4"
)

// writeError maps the domain error taxonomy onto a status code. serverMsg
// is the public message for 5xx responses; the underlying text goes in cause.
func writeError(c echo.Context, err error, serverMsg string) error {
	var (
		ve *apperr.ValidationError
		nf *apperr.NotFoundError
		se *apperr.StoreError
	)
	switch {
	case errors.As(err, &ve):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: ve.Message, Details: ve.Fields})
	case errors.As(err, &nf):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: nf.Error()})
	}

	cause := err.Error()
	if errors.As(err, &se) {
		cause = se.Err.Error()
	}
	slog.ErrorContext(c.Request().Context(), serverMsg,
		"method", c.Request().Method,
		"path", c.Path(),
		"err", err,
	)
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: serverMsg, Cause: cause})
}

func invalidBody(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
}

func validationFailed(c echo.Context, err error) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   "validation failed",
		Details: ToFieldErrors(err),
	})
}
