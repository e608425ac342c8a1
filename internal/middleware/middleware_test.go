package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"hotel-booking/internal/config"
	"hotel-booking/internal/model"
	"hotel-booking/internal/service"
)

type fakeUsers map[uuid.UUID]*model.User

func (f fakeUsers) Lookup(_ context.Context, uid uuid.UUID) (*model.User, error) {
	if u, ok := f[uid]; ok {
		return u, nil
	}
	return nil, service.ErrUserNotFound
}

func newTokens(t *testing.T) *service.TokenService {
	t.Helper()
	s, err := service.NewTokenService(config.AuthConfig{JWTSecret: "testsecret", JWTAlgorithm: "HS256", AccessTokenTTL: time.Minute})
	require.NoError(t, err)
	return s
}

func issue(t *testing.T, s *service.TokenService, u *model.User) string {
	t.Helper()
	tok, err := s.Issue(u.UID, service.UserClaims{Email: u.Email, Role: u.Role}, 0)
	require.NoError(t, err)
	return tok
}

func newContext(auth string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func requireStatus(t *testing.T, err error, code int) {
	t.Helper()
	var he *echo.HTTPError
	require.True(t, errors.As(err, &he), "want *echo.HTTPError, got %v", err)
	require.Equal(t, code, he.Code)
}

func TestExtractClaims(t *testing.T) {
	tokens := newTokens(t)

	ctx, _ := newContext("")
	_, err := extractClaims(ctx, tokens)
	requireStatus(t, err, http.StatusUnauthorized)

	ctx, _ = newContext("BadHeader")
	_, err = extractClaims(ctx, tokens)
	requireStatus(t, err, http.StatusUnauthorized)

	ctx, _ = newContext("Basic abc")
	_, err = extractClaims(ctx, tokens)
	requireStatus(t, err, http.StatusUnauthorized)

	ctx, _ = newContext("Bearer invalid")
	_, err = extractClaims(ctx, tokens)
	require.ErrorIs(t, err, service.ErrTokenInvalid)

	u := &model.User{UID: uuid.New(), Email: "a@b.c", Role: model.RoleAdmin}
	ctx, _ = newContext("bearer " + issue(t, tokens, u))
	claims, err := extractClaims(ctx, tokens)
	require.NoError(t, err)
	require.Equal(t, u.UID.String(), claims.Subject)
	require.Equal(t, model.RoleAdmin, claims.User.Role)
}

func TestRequireAuth(t *testing.T) {
	tokens := newTokens(t)
	u := &model.User{UID: uuid.New(), Email: "u@b.c", Role: model.RoleUser}
	users := fakeUsers{u.UID: u}

	ctx, rec := newContext("Bearer " + issue(t, tokens, u))
	called := false
	h := RequireAuth(tokens, users)(func(c echo.Context) error {
		called = true
		got, ok := CurrentUser(c)
		require.True(t, ok)
		require.Same(t, u, got)
		require.NotNil(t, c.Get(ContextClaimsKey))
		return c.String(http.StatusOK, "ok")
	})
	require.NoError(t, h(ctx))
	require.True(t, called)
	require.Equal(t, http.StatusOK, rec.Code)

	// token 有效但使用者已不存在
	ghost := &model.User{UID: uuid.New()}
	ctx, _ = newContext("Bearer " + issue(t, tokens, ghost))
	err := RequireAuth(tokens, users)(func(echo.Context) error { t.Fatal("next called"); return nil })(ctx)
	require.ErrorIs(t, err, service.ErrUserNotFound)

	ctx, _ = newContext("")
	err = RequireAuth(tokens, users)(func(echo.Context) error { return nil })(ctx)
	requireStatus(t, err, http.StatusUnauthorized)
}

func TestRequireAdmin(t *testing.T) {
	tokens := newTokens(t)
	admin := &model.User{UID: uuid.New(), Role: model.RoleAdmin}
	user := &model.User{UID: uuid.New(), Role: model.RoleUser}
	users := fakeUsers{admin.UID: admin, user.UID: user}

	next := func(c echo.Context) error { return c.NoContent(http.StatusNoContent) }

	ctx, rec := newContext("Bearer " + issue(t, tokens, admin))
	require.NoError(t, RequireAdmin(tokens, users)(next)(ctx))
	require.Equal(t, http.StatusNoContent, rec.Code)

	ctx, _ = newContext("Bearer " + issue(t, tokens, user))
	require.ErrorIs(t, RequireAdmin(tokens, users)(next)(ctx), service.ErrForbidden)

	// token 宣稱 admin 但資料庫角色為 user
	forged, err := tokens.Issue(user.UID, service.UserClaims{Role: model.RoleAdmin}, 0)
	require.NoError(t, err)
	ctx, _ = newContext("Bearer " + forged)
	require.ErrorIs(t, RequireAdmin(tokens, users)(next)(ctx), service.ErrForbidden)

	ctx, _ = newContext("")
	requireStatus(t, RequireAdmin(tokens, users)(next)(ctx), http.StatusUnauthorized)
}

func TestCurrentUserMissing(t *testing.T) {
	ctx, _ := newContext("")
	_, ok := CurrentUser(ctx)
	require.False(t, ok)
}
