// File: internal/store/rooms.go
package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"hotel-booking/internal/database"
	"hotel-booking/internal/model"
)

const roomColumns = `room_uid, room_number, room_name, room_price, number_of_places, type_of_room`

func scanRoom(row interface{ Scan(...any) error }) (*model.Room, error) {
	r := &model.Room{}
	if err := row.Scan(&r.UID, &r.Number, &r.Name, &r.Price, &r.NumberOfPlaces, &r.Type); err != nil {
		return nil, err
	}
	return r, nil
}

func collectRooms(rows pgx.Rows) ([]model.Room, error) {
	defer rows.Close()
	rooms := []model.Room{}
	for rows.Next() {
		r, err := scanRoom(rows)
		if err != nil {
			return nil, err
		}
		rooms = append(rooms, *r)
	}
	return rooms, rows.Err()
}

// ListRooms 依條件列出房間，未要求依價格排序時以房號排序
func ListRooms(ctx context.Context, q database.Querier, f model.RoomFilter) ([]model.Room, error) {
	var (
		where []string
		args  []any
	)
	if f.MaxPrice != nil {
		args = append(args, *f.MaxPrice)
		where = append(where, fmt.Sprintf("room_price <= $%d", len(args)))
	}
	if f.Places != nil {
		args = append(args, *f.Places)
		where = append(where, fmt.Sprintf("number_of_places = $%d", len(args)))
	}

	sql := `SELECT ` + roomColumns + ` FROM rooms`
	if len(where) > 0 {
		sql += ` WHERE ` + strings.Join(where, " AND ")
	}
	if f.SortByPrice {
		sql += ` ORDER BY room_price, room_number`
	} else {
		sql += ` ORDER BY room_number`
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, wrap("ListRooms", err)
	}
	rooms, err := collectRooms(rows)
	if err != nil {
		return nil, wrap("ListRooms", err)
	}
	return rooms, nil
}

// ListAvailableRooms 回傳在 [checkIn, checkOut) 內沒有任何重疊訂單的房間
func ListAvailableRooms(ctx context.Context, q database.Querier, r model.DateRange) ([]model.Room, error) {
	rows, err := q.Query(ctx,
		`SELECT `+roomColumns+` FROM rooms r
		 WHERE NOT EXISTS (
		     SELECT 1 FROM bookings b
		     WHERE b.room_number = r.room_number
		       AND b.check_in_date < $2
		       AND b.check_out_date > $1
		 )
		 ORDER BY room_number`,
		r.CheckIn,
		r.CheckOut,
	)
	if err != nil {
		return nil, wrap("ListAvailableRooms", err)
	}
	rooms, err := collectRooms(rows)
	if err != nil {
		return nil, wrap("ListAvailableRooms", err)
	}
	return rooms, nil
}

func GetRoomByNumber(ctx context.Context, q database.Querier, number int) (*model.Room, error) {
	r, err := scanRoom(q.QueryRow(ctx,
		`SELECT `+roomColumns+` FROM rooms WHERE room_number = $1`,
		number,
	))
	if err != nil {
		return nil, wrap("GetRoomByNumber", err)
	}
	return r, nil
}

func CreateRoom(ctx context.Context, q database.Querier, r *model.Room) error {
	_, err := q.Exec(ctx,
		`INSERT INTO rooms (`+roomColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		r.UID,
		r.Number,
		r.Name,
		r.Price,
		r.NumberOfPlaces,
		r.Type,
	)
	if err != nil {
		return wrap("CreateRoom", err)
	}
	return nil
}

// UpdateRoom 以 r 的內容整筆覆寫 room_uid 對應的房間
func UpdateRoom(ctx context.Context, q database.Querier, uid uuid.UUID, r *model.Room) error {
	tag, err := q.Exec(ctx,
		`UPDATE rooms
		 SET room_number = $1, room_name = $2, room_price = $3,
		     number_of_places = $4, type_of_room = $5
		 WHERE room_uid = $6`,
		r.Number,
		r.Name,
		r.Price,
		r.NumberOfPlaces,
		r.Type,
		uid,
	)
	if err != nil {
		return wrap("UpdateRoom", err)
	}
	if tag.RowsAffected() == 0 {
		return wrap("UpdateRoom", pgx.ErrNoRows)
	}
	return nil
}

func DeleteRoom(ctx context.Context, q database.Querier, number int) error {
	tag, err := q.Exec(ctx,
		`DELETE FROM rooms WHERE room_number = $1`,
		number,
	)
	if err != nil {
		return wrap("DeleteRoom", err)
	}
	if tag.RowsAffected() == 0 {
		return wrap("DeleteRoom", pgx.ErrNoRows)
	}
	return nil
}
