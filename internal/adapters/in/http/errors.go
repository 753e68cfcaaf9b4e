package http

import (
	"errors"
	"fmt"
	"net/http"

	"pharmadmin/internal/adapters/in/http/api"
	"pharmadmin/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusFor maps an error kind onto an HTTP status. parseStatus is used for
// decode failures, which are the client's concern for some routes and the
// backend's for others.
func statusFor(err error, parseStatus int) int {
	switch errs.KindOf(err) {
	case errs.KindNotFound:
		return http.StatusNotFound
	case errs.KindAlreadyTerminal:
		return http.StatusConflict
	case errs.KindParseError:
		return parseStatus
	case errs.KindNetworkError:
		return http.StatusBadGateway
	case errs.KindInvalidInput:
		return http.StatusBadRequest
	case errs.KindUnknown:
	}
	return http.StatusInternalServerError
}

func (s *Server) writeError(ctx echo.Context, err error) error {
	return s.writeErrorWithParseStatus(ctx, err, http.StatusBadGateway)
}

func (s *Server) writeErrorWithParseStatus(ctx echo.Context, err error, parseStatus int) error {
	status := statusFor(err, parseStatus)
	message := err.Error()
	if status == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "Request failed",
			"path", ctx.Path(), "error", err)
		message = http.StatusText(status)
	}
	return ctx.JSON(status, api.Error{Code: status, Message: message})
}

// ErrorHandler renders errors that escape the handlers, such as routing
// and parameter binding failures, as api.Error bodies.
func ErrorHandler(err error, ctx echo.Context) {
	if ctx.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := http.StatusText(status)

	var he *echo.HTTPError
	if errors.As(err, &he) {
		status = he.Code
		message = fmt.Sprint(he.Message)
	}

	var writeErr error
	if ctx.Request().Method == http.MethodHead {
		writeErr = ctx.NoContent(status)
	} else {
		writeErr = ctx.JSON(status, api.Error{Code: status, Message: message})
	}
	if writeErr != nil {
		ctx.Logger().Error(writeErr)
	}
}
