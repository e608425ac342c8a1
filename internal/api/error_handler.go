// File: internal/api/error_handler.go
package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"hotel-booking/internal/dto"
	"hotel-booking/internal/service"
)

// NewHTTPErrorHandler 將服務錯誤轉為對應的狀態碼，未知錯誤只記錄不外洩
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err)
		if code == http.StatusInternalServerError {
			log.Error().
				Err(err).
				Str("method", c.Request().Method).
				Str("path", c.Path()).
				Msg("unhandled error")
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, dto.HTTPError{Message: msg})
	}
}

var statusByError = []struct {
	err  error
	code int
}{
	{service.ErrDuplicateEmail, http.StatusBadRequest},
	{service.ErrInvalidCredentials, http.StatusUnauthorized},
	{service.ErrUserNotFound, http.StatusUnauthorized},
	{service.ErrTokenExpired, http.StatusUnauthorized},
	{service.ErrTokenInvalid, http.StatusUnauthorized},
	{service.ErrDuplicateRoomNumber, http.StatusBadRequest},
	{service.ErrRoomNotFound, http.StatusNotFound},
	{service.ErrRoomNotAvailable, http.StatusBadRequest},
	{service.ErrRoomBusy, http.StatusConflict},
	{service.ErrBookingNotFound, http.StatusNotFound},
	{service.ErrInvalidDateRange, http.StatusBadRequest},
	{service.ErrForbidden, http.StatusForbidden},
}

func resolveError(err error) (int, string) {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		if he.Internal != nil && he.Code >= http.StatusInternalServerError {
			return he.Code, http.StatusText(he.Code)
		}
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	for _, m := range statusByError {
		if errors.Is(err, m.err) {
			return m.code, m.err.Error()
		}
	}
	return http.StatusInternalServerError, "internal server error"
}
