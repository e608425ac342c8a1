package service

import "errors"

var (
	ErrDuplicateEmail      = errors.New("user already exists")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrUserNotFound        = errors.New("user not found")
	ErrTokenExpired        = errors.New("token has expired")
	ErrTokenInvalid        = errors.New("invalid token")
	ErrDuplicateRoomNumber = errors.New("room already exists")
	ErrRoomNotFound        = errors.New("room not found")
	ErrRoomNotAvailable    = errors.New("room is not available for these dates")
	ErrRoomBusy            = errors.New("room is being booked, try again")
	ErrBookingNotFound     = errors.New("booking not found")
	ErrInvalidDateRange    = errors.New("check_in_date must be before check_out_date")
	ErrForbidden           = errors.New("admin privileges required")
)
