package api

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"hotel-booking/internal/service"
)

func TestHTTPErrorHandler(t *testing.T) {
	cases := []struct {
		err  error
		code int
		msg  string
	}{
		{service.ErrDuplicateEmail, http.StatusBadRequest, "user already exists"},
		{service.ErrInvalidCredentials, http.StatusUnauthorized, "invalid credentials"},
		{service.ErrTokenExpired, http.StatusUnauthorized, "token has expired"},
		{fmt.Errorf("%w: sig", service.ErrTokenInvalid), http.StatusUnauthorized, "invalid token"},
		{service.ErrDuplicateRoomNumber, http.StatusBadRequest, "room already exists"},
		{service.ErrRoomNotFound, http.StatusNotFound, "room not found"},
		{service.ErrRoomNotAvailable, http.StatusBadRequest, "room is not available for these dates"},
		{service.ErrRoomBusy, http.StatusConflict, "room is being booked, try again"},
		{service.ErrBookingNotFound, http.StatusNotFound, "booking not found"},
		{service.ErrForbidden, http.StatusForbidden, "admin privileges required"},
		{service.ErrInvalidDateRange, http.StatusBadRequest, "check_in_date must be before check_out_date"},
		{echo.NewHTTPError(http.StatusUnauthorized, "missing token"), http.StatusUnauthorized, "missing token"},
		{echo.ErrNotFound, http.StatusNotFound, "Not Found"},
	}

	e := echo.New()
	h := NewHTTPErrorHandler(zerolog.Nop())
	for _, tc := range cases {
		t.Run(tc.msg, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
			h(tc.err, c)
			require.Equal(t, tc.code, rec.Code)
			require.JSONEq(t, fmt.Sprintf(`{"message":%q}`, tc.msg), rec.Body.String())
		})
	}
}

func TestHTTPErrorHandlerUnexpected(t *testing.T) {
	var buf bytes.Buffer
	e := echo.New()
	h := NewHTTPErrorHandler(zerolog.New(&buf))

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/book_room", nil), rec)
	h(errors.New("pq: connection reset"), c)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.JSONEq(t, `{"message":"internal server error"}`, rec.Body.String())
	require.Contains(t, buf.String(), "connection reset")
	require.Contains(t, buf.String(), "unhandled error")
}

func TestHTTPErrorHandlerCommittedAndHead(t *testing.T) {
	e := echo.New()
	h := NewHTTPErrorHandler(zerolog.Nop())

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	_ = c.String(http.StatusOK, "done")
	h(service.ErrRoomNotFound, c)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "done", rec.Body.String())

	rec = httptest.NewRecorder()
	c = e.NewContext(httptest.NewRequest(http.MethodHead, "/", nil), rec)
	h(service.ErrRoomNotFound, c)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Empty(t, rec.Body.String())
}
