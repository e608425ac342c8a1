package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-03-01")
	require.NoError(t, err)
	require.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), d)
	require.Equal(t, "2025-03-01", FormatDate(d))

	_, err = ParseDate("01/03/2025")
	require.Error(t, err)
	_, err = ParseDate("2025-02-30")
	require.Error(t, err)
}

func TestDateRangeValid(t *testing.T) {
	a := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	b := a.AddDate(0, 0, 1)
	require.True(t, DateRange{CheckIn: a, CheckOut: b}.Valid())
	require.False(t, DateRange{CheckIn: b, CheckOut: a}.Valid())
	require.False(t, DateRange{CheckIn: a, CheckOut: a}.Valid())
}

func TestUserIsAdmin(t *testing.T) {
	require.True(t, (&User{Role: RoleAdmin}).IsAdmin())
	require.False(t, (&User{Role: RoleUser}).IsAdmin())
}
