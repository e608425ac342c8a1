// File: internal/service/credentials.go
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"hotel-booking/internal/database"
	"hotel-booking/internal/model"
	"hotel-booking/internal/store"
)

// 測試可覆寫
var (
	getUserByEmail = store.GetUserByEmail
	getUserByUID   = store.GetUserByUID
	createUser     = store.CreateUser
	newUID         = uuid.New
)

// Credentials 負責註冊與登入驗證
type Credentials struct {
	db   database.DB
	cost int
}

func NewCredentials(db database.DB, cost int) *Credentials {
	return &Credentials{db: db, cost: cost}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register 以 user 角色建立帳號並回傳 uid
func (s *Credentials) Register(ctx context.Context, email, password string) (uuid.UUID, error) {
	u, err := s.create(ctx, email, password, model.RoleUser)
	if err != nil {
		return uuid.Nil, err
	}
	return u.UID, nil
}

// CreateAdmin 建立管理員帳號
func (s *Credentials) CreateAdmin(ctx context.Context, email, password string) (*model.User, error) {
	return s.create(ctx, email, password, model.RoleAdmin)
}

func (s *Credentials) create(ctx context.Context, email, password, role string) (*model.User, error) {
	email = normalizeEmail(email)

	_, err := getUserByEmail(ctx, s.db, email)
	switch {
	case err == nil:
		return nil, ErrDuplicateEmail
	case !errors.Is(err, store.ErrNotFound):
		return nil, err
	}

	hash, err := HashPassword(password, s.cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u, err := createUser(ctx, s.db, &model.User{
		UID:          newUID(),
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	})
	if errors.Is(err, store.ErrConflict) {
		return nil, ErrDuplicateEmail
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

// Authenticate 查無帳號與密碼錯誤都回傳 ErrInvalidCredentials
func (s *Credentials) Authenticate(ctx context.Context, email, password string) (*model.User, error) {
	u, err := getUserByEmail(ctx, s.db, normalizeEmail(email))
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if err := ComparePassword(u.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// Lookup 依 token subject 取得使用者
func (s *Credentials) Lookup(ctx context.Context, uid uuid.UUID) (*model.User, error) {
	u, err := getUserByUID(ctx, s.db, uid)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}
