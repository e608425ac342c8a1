package store

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"hotel-booking/internal/database"
)

var (
	ErrNotFound = errors.New("record not found")
	ErrConflict = errors.New("record already exists")
)

// wrap 將 driver 錯誤轉為 store 的哨兵錯誤並加上函式名稱
func wrap(op string, err error) error {
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	case database.IsUniqueViolation(err):
		return fmt.Errorf("%s: %w: %w", op, ErrConflict, err)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
