// File: internal/handler/auth/register.go
package auth

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"hotel-booking/internal/dto"
)

type registrar interface {
	Register(ctx context.Context, email, password string) (uuid.UUID, error)
}

// RegisterHandler 註冊一般使用者
// @Summary     註冊使用者
// @Description 以 email 與密碼建立帳號，email 不可重複
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body     dto.RegisterRequest true "註冊資料"
// @Success     200  {object} dto.RegisterResponse
// @Failure     400  {object} dto.HTTPError
// @Failure     500  {object} dto.HTTPError
// @Router      /register [post]
func RegisterHandler(creds registrar) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.RegisterRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: fmt.Sprintf("無效的請求資料: %v", err)})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: err.Error()})
		}

		uid, err := creds.Register(c.Request().Context(), req.Email, req.Password)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, dto.RegisterResponse{Message: "User registered successfully", UserUID: uid})
	}
}
