package api

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCustomValidator(t *testing.T) {
	cv := NewValidator()
	type req struct {
		Email      string `validate:"required,email"`
		Password   string `validate:"required,min=8"`
		RoomNumber int    `validate:"gt=0"`
		CheckIn    string `validate:"required,datetime=2006-01-02"`
	}

	require.NoError(t, cv.Validate(&req{Email: "a@b.cd", Password: "12345678", RoomNumber: 1, CheckIn: "2025-01-01"}))

	err := cv.Validate(&req{Email: "bad", Password: "short", CheckIn: "01/01/2025"})
	require.EqualError(t, err,
		"email must be a valid email; password must be at least 8; room_number must be greater than 0; check_in must be a date in YYYY-MM-DD format")

	err = cv.Validate(&req{})
	require.ErrorContains(t, err, "email is required")

	require.Error(t, cv.Validate("not a struct"))
}

func TestToSnake(t *testing.T) {
	require.Equal(t, "room_number", toSnake("RoomNumber"))
	require.Equal(t, "price", toSnake("Price"))
	require.Equal(t, "email", toSnake("email"))
}
