// File: internal/handler/auth/login.go
package auth

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"hotel-booking/internal/dto"
	"hotel-booking/internal/model"
	"hotel-booking/internal/service"
)

type authenticator interface {
	Authenticate(ctx context.Context, email, password string) (*model.User, error)
}

type tokenIssuer interface {
	Issue(userID uuid.UUID, user service.UserClaims, ttl time.Duration) (string, error)
}

// LoginHandler 使用 Email/Password 驗證並回傳 JWT
// @Summary     登入使用者
// @Description 驗證帳號密碼，回傳 bearer 存取令牌
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body     dto.LoginRequest true "登入資料"
// @Success     200  {object} dto.LoginResponse
// @Failure     400  {object} dto.HTTPError
// @Failure     401  {object} dto.HTTPError
// @Failure     500  {object} dto.HTTPError
// @Router      /login [post]
func LoginHandler(creds authenticator, tokens tokenIssuer) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: fmt.Sprintf("無效的請求資料: %v", err)})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: err.Error()})
		}

		user, err := creds.Authenticate(c.Request().Context(), req.Email, req.Password)
		if err != nil {
			return err
		}

		// ttl 0 使用設定的預設值
		token, err := tokens.Issue(user.UID, service.UserClaims{Email: user.Email, Role: user.Role}, 0)
		if err != nil {
			return fmt.Errorf("issue token: %w", err)
		}
		return c.JSON(http.StatusOK, dto.LoginResponse{AccessToken: token, TokenType: "bearer"})
	}
}
