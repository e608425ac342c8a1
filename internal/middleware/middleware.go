package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"hotel-booking/internal/model"
	"hotel-booking/internal/service"
)

const (
	ContextUserKey   = "user"
	ContextClaimsKey = "claims"
)

type TokenValidator interface {
	Validate(token string) (*service.CustomClaims, error)
}

type UserLookup interface {
	Lookup(ctx context.Context, uid uuid.UUID) (*model.User, error)
}

func extractClaims(c echo.Context, tokens TokenValidator) (*service.CustomClaims, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing token")
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header format")
	}
	claims, err := tokens.Validate(strings.TrimSpace(parts[1]))
	if err != nil {
		return nil, err
	}
	return claims, nil
}

// RequireAuth 驗證 bearer token 並從資料庫載入使用者
func RequireAuth(tokens TokenValidator, users UserLookup) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := extractClaims(c, tokens)
			if err != nil {
				return err
			}
			uid, err := claims.UserID()
			if err != nil {
				return fmt.Errorf("%w: %w", service.ErrTokenInvalid, err)
			}
			user, err := users.Lookup(c.Request().Context(), uid)
			if err != nil {
				return err
			}
			c.Set(ContextClaimsKey, claims)
			c.Set(ContextUserKey, user)
			return next(c)
		}
	}
}

// RequireAdmin 以資料庫中的角色判斷，不信任 token 內的 role
func RequireAdmin(tokens TokenValidator, users UserLookup) echo.MiddlewareFunc {
	auth := RequireAuth(tokens, users)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return auth(func(c echo.Context) error {
			user, ok := CurrentUser(c)
			if !ok || !user.IsAdmin() {
				return service.ErrForbidden
			}
			return next(c)
		})
	}
}

// CurrentUser 取得 RequireAuth 放入 context 的使用者
func CurrentUser(c echo.Context) (*model.User, bool) {
	u, ok := c.Get(ContextUserKey).(*model.User)
	return u, ok && u != nil
}
