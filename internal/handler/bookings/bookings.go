// File: internal/handler/bookings/bookings.go
package bookings

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"hotel-booking/internal/dto"
	"hotel-booking/internal/middleware"
	"hotel-booking/internal/model"
)

type ledger interface {
	Create(ctx context.Context, roomNumber int, r model.DateRange, userID uuid.UUID) (*model.Booking, error)
	Update(ctx context.Context, id int, r model.DateRange) (*model.Booking, error)
	Cancel(ctx context.Context, id int, caller *model.User) (*model.Booking, error)
}

func parseRange(in, out string) (model.DateRange, error) {
	checkIn, err := model.ParseDate(in)
	if err != nil {
		return model.DateRange{}, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	checkOut, err := model.ParseDate(out)
	if err != nil {
		return model.DateRange{}, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return model.DateRange{CheckIn: checkIn, CheckOut: checkOut}, nil
}

func bookingIDParam(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("booking_id"))
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid booking_id")
	}
	return id, nil
}

func currentUser(c echo.Context) (*model.User, error) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing token")
	}
	return user, nil
}

// BookRoomHandler 為目前使用者訂房
// @Summary     訂房
// @Description 期間與同房既有訂單重疊時回傳 400，同房正在被其他請求訂房時回傳 409
// @Tags        bookings
// @Accept      json
// @Produce     json
// @Param       body body     dto.BookRoomRequest true "訂房資料"
// @Success     200  {object} dto.BookRoomResponse
// @Failure     400  {object} dto.HTTPError
// @Failure     401  {object} dto.HTTPError
// @Failure     404  {object} dto.HTTPError
// @Failure     409  {object} dto.HTTPError
// @Security    BearerAuth
// @Router      /book_room [post]
func BookRoomHandler(l ledger) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := currentUser(c)
		if err != nil {
			return err
		}
		var req dto.BookRoomRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: fmt.Sprintf("無效的請求資料: %v", err)})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: err.Error()})
		}
		r, err := parseRange(req.CheckInDate, req.CheckOutDate)
		if err != nil {
			return err
		}

		b, err := l.Create(c.Request().Context(), req.RoomNumber, r, user.UID)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, dto.BookRoomResponse{
			Msg:          "Room successfully booked",
			BookingID:    b.ID,
			RoomNumber:   b.RoomNumber,
			CheckInDate:  model.FormatDate(b.CheckIn),
			CheckOutDate: model.FormatDate(b.CheckOut),
		})
	}
}

// UpdateBookingHandler 修改訂單日期（管理員）
// @Summary     修改訂單
// @Tags        admin
// @Accept      json
// @Produce     json
// @Param       booking_id path     int                      true "訂單編號"
// @Param       body       body     dto.BookingUpdateRequest true "新日期"
// @Success     200        {object} dto.BookingResponse
// @Failure     400        {object} dto.HTTPError
// @Failure     404        {object} dto.HTTPError
// @Security    BearerAuth
// @Router      /admin/bookings/{booking_id} [put]
func UpdateBookingHandler(l ledger) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := bookingIDParam(c)
		if err != nil {
			return err
		}
		var req dto.BookingUpdateRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: fmt.Sprintf("無效的請求資料: %v", err)})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: err.Error()})
		}
		r, err := parseRange(req.CheckInDate, req.CheckOutDate)
		if err != nil {
			return err
		}

		b, err := l.Update(c.Request().Context(), id, r)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, dto.BookingResponse{Message: "Booking updated", BookingID: b.ID})
	}
}

// CancelBookingHandler 取消訂單，限訂單擁有者或管理員
// @Summary     取消訂單
// @Tags        bookings
// @Produce     json
// @Param       booking_id path     int true "訂單編號"
// @Success     200        {object} dto.BookingResponse
// @Failure     401        {object} dto.HTTPError
// @Failure     403        {object} dto.HTTPError
// @Failure     404        {object} dto.HTTPError
// @Security    BearerAuth
// @Router      /admin/bookings/{booking_id} [delete]
func CancelBookingHandler(l ledger) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := currentUser(c)
		if err != nil {
			return err
		}
		id, err := bookingIDParam(c)
		if err != nil {
			return err
		}

		b, err := l.Cancel(c.Request().Context(), id, user)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, dto.BookingResponse{Message: "Booking canceled", BookingID: b.ID})
	}
}
