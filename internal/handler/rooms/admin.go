// File: internal/handler/rooms/admin.go
package rooms

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"hotel-booking/internal/dto"
)

func roomNumberParam(c echo.Context) (int, error) {
	n, err := strconv.Atoi(c.Param("room_number"))
	if err != nil || n <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid room_number")
	}
	return n, nil
}

func bindRoom(c echo.Context) (*dto.RoomRequest, error) {
	var req dto.RoomRequest
	if err := c.Bind(&req); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("無效的請求資料: %v", err))
	}
	if err := c.Validate(&req); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return &req, nil
}

// CreateRoomHandler 新增房間（管理員）
// @Summary     新增房間
// @Tags        admin
// @Accept      json
// @Produce     json
// @Param       body body     dto.RoomRequest true "房間資料"
// @Success     200  {object} dto.RoomCreatedResponse
// @Failure     400  {object} dto.HTTPError
// @Failure     401  {object} dto.HTTPError
// @Failure     403  {object} dto.HTTPError
// @Security    BearerAuth
// @Router      /admin/rooms [post]
func CreateRoomHandler(cat catalog) echo.HandlerFunc {
	return func(c echo.Context) error {
		req, err := bindRoom(c)
		if err != nil {
			return err
		}
		uid, err := cat.CreateRoom(c.Request().Context(), req.Model())
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, dto.RoomCreatedResponse{Message: "Room created successfully", RoomUID: uid})
	}
}

// UpdateRoomHandler 整筆更新房間（管理員）
// @Summary     更新房間
// @Description 所有欄位都會被覆寫，包含房號
// @Tags        admin
// @Accept      json
// @Produce     json
// @Param       room_number path     int             true "房號"
// @Param       body        body     dto.RoomRequest true "房間資料"
// @Success     200         {object} dto.RoomUpdatedResponse
// @Failure     400         {object} dto.HTTPError
// @Failure     404         {object} dto.HTTPError
// @Security    BearerAuth
// @Router      /admin/rooms/{room_number} [put]
func UpdateRoomHandler(cat catalog) echo.HandlerFunc {
	return func(c echo.Context) error {
		number, err := roomNumberParam(c)
		if err != nil {
			return err
		}
		req, err := bindRoom(c)
		if err != nil {
			return err
		}
		room, err := cat.UpdateRoom(c.Request().Context(), number, req.Model())
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, dto.RoomUpdatedResponse{Message: "Room updated", RoomID: room.UID})
	}
}

// DeleteRoomHandler 刪除房間及其所有訂單（管理員）
// @Summary     刪除房間
// @Tags        admin
// @Produce     json
// @Param       room_number path     int true "房號"
// @Success     200         {object} dto.MessageResponse
// @Failure     404         {object} dto.HTTPError
// @Security    BearerAuth
// @Router      /admin/rooms/{room_number} [delete]
func DeleteRoomHandler(cat catalog, log zerolog.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		number, err := roomNumberParam(c)
		if err != nil {
			return err
		}
		removed, err := cat.DeleteRoom(c.Request().Context(), number)
		if err != nil {
			return err
		}
		log.Info().Int("room_number", number).Int64("bookings_removed", removed).Msg("room deleted")
		return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Room and related bookings deleted"})
	}
}
