// File: internal/store/bookings.go
package store

import (
	"context"

	"hotel-booking/internal/database"
	"hotel-booking/internal/model"
)

const bookingColumns = `id, room_uid, room_number, check_in_date, check_out_date, user_id`

// HasOverlap 檢查房間在 r 內是否已有訂單，excludeID > 0 時排除該筆訂單
func HasOverlap(ctx context.Context, q database.Querier, roomNumber int, r model.DateRange, excludeID int) (bool, error) {
	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS (
		     SELECT 1 FROM bookings
		     WHERE room_number = $1
		       AND check_in_date < $3
		       AND check_out_date > $2
		       AND id <> $4
		 )`,
		roomNumber,
		r.CheckIn,
		r.CheckOut,
		excludeID,
	).Scan(&exists)
	if err != nil {
		return false, wrap("HasOverlap", err)
	}
	return exists, nil
}

func CreateBooking(ctx context.Context, q database.Querier, b *model.Booking) (*model.Booking, error) {
	row := q.QueryRow(ctx,
		`INSERT INTO bookings (room_uid, room_number, check_in_date, check_out_date, user_id)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		b.RoomUID,
		b.RoomNumber,
		b.CheckIn,
		b.CheckOut,
		b.UserID,
	)
	if err := row.Scan(&b.ID); err != nil {
		return nil, wrap("CreateBooking", err)
	}
	return b, nil
}

func GetBookingByID(ctx context.Context, q database.Querier, id int) (*model.Booking, error) {
	b := &model.Booking{}
	err := q.QueryRow(ctx,
		`SELECT `+bookingColumns+` FROM bookings WHERE id = $1`,
		id,
	).Scan(&b.ID, &b.RoomUID, &b.RoomNumber, &b.CheckIn, &b.CheckOut, &b.UserID)
	if err != nil {
		return nil, wrap("GetBookingByID", err)
	}
	return b, nil
}

func UpdateBookingDates(ctx context.Context, q database.Querier, id int, r model.DateRange) error {
	_, err := q.Exec(ctx,
		`UPDATE bookings SET check_in_date = $1, check_out_date = $2 WHERE id = $3`,
		r.CheckIn,
		r.CheckOut,
		id,
	)
	if err != nil {
		return wrap("UpdateBookingDates", err)
	}
	return nil
}

func DeleteBooking(ctx context.Context, q database.Querier, id int) error {
	_, err := q.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return wrap("DeleteBooking", err)
	}
	return nil
}

// DeleteBookingsByRoomNumber 回傳刪除的筆數
func DeleteBookingsByRoomNumber(ctx context.Context, q database.Querier, roomNumber int) (int64, error) {
	tag, err := q.Exec(ctx, `DELETE FROM bookings WHERE room_number = $1`, roomNumber)
	if err != nil {
		return 0, wrap("DeleteBookingsByRoomNumber", err)
	}
	return tag.RowsAffected(), nil
}

// RenumberBookings 房號變更時同步更新訂單上的房號
func RenumberBookings(ctx context.Context, q database.Querier, from, to int) error {
	_, err := q.Exec(ctx,
		`UPDATE bookings SET room_number = $1 WHERE room_number = $2`,
		to,
		from,
	)
	if err != nil {
		return wrap("RenumberBookings", err)
	}
	return nil
}
