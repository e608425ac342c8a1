// File: internal/handler/rooms/rooms.go
package rooms

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"hotel-booking/internal/dto"
	"hotel-booking/internal/model"
)

type catalog interface {
	ListRooms(ctx context.Context, f model.RoomFilter) ([]model.Room, error)
	AvailableRooms(ctx context.Context, r model.DateRange) ([]model.Room, error)
	CreateRoom(ctx context.Context, room *model.Room) (uuid.UUID, error)
	UpdateRoom(ctx context.Context, number int, room *model.Room) (*model.Room, error)
	DeleteRoom(ctx context.Context, number int) (int64, error)
}

// ListRoomsHandler 列出房間
// @Summary     房間列表
// @Description 可依最高價格與人數篩選，sort_by_price=true 時依價格遞增
// @Tags        rooms
// @Produce     json
// @Param       price            query int  false "最高價格"
// @Param       number_of_places query int  false "人數"
// @Param       sort_by_price    query bool false "依價格排序"
// @Success     200 {array}  model.Room
// @Failure     400 {object} dto.HTTPError
// @Router      /rooms [get]
func ListRoomsHandler(cat catalog) echo.HandlerFunc {
	return func(c echo.Context) error {
		var (
			q             dto.RoomsQuery
			price, places int
		)
		err := echo.QueryParamsBinder(c).
			Int("price", &price).
			Int("number_of_places", &places).
			Bool("sort_by_price", &q.SortByPrice).
			BindError()
		if err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "無效的查詢參數"})
		}
		if c.QueryParam("price") != "" {
			q.Price = &price
		}
		if c.QueryParam("number_of_places") != "" {
			q.NumberOfPlaces = &places
		}
		if err := c.Validate(&q); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: err.Error()})
		}

		rooms, err := cat.ListRooms(c.Request().Context(), q.Filter())
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, rooms)
	}
}

// AvailableRoomsHandler 列出指定期間可訂的房間
// @Summary     可訂房間
// @Description check_in 必須早於 check_out，退房日當天視為可入住
// @Tags        rooms
// @Produce     json
// @Param       check_in  query string true "入住日 YYYY-MM-DD"
// @Param       check_out query string true "退房日 YYYY-MM-DD"
// @Success     200 {array}  model.Room
// @Failure     400 {object} dto.HTTPError
// @Router      /available_rooms [get]
func AvailableRoomsHandler(cat catalog) echo.HandlerFunc {
	return func(c echo.Context) error {
		q := dto.AvailableRoomsQuery{
			CheckIn:  c.QueryParam("check_in"),
			CheckOut: c.QueryParam("check_out"),
		}
		if err := c.Validate(&q); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: err.Error()})
		}
		r, err := parseRange(q.CheckIn, q.CheckOut)
		if err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: err.Error()})
		}

		rooms, err := cat.AvailableRooms(c.Request().Context(), r)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, rooms)
	}
}

func parseRange(in, out string) (model.DateRange, error) {
	checkIn, err := model.ParseDate(in)
	if err != nil {
		return model.DateRange{}, err
	}
	checkOut, err := model.ParseDate(out)
	if err != nil {
		return model.DateRange{}, err
	}
	return model.DateRange{CheckIn: checkIn, CheckOut: checkOut}, nil
}
