// File: internal/service/catalog.go
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"hotel-booking/internal/database"
	"hotel-booking/internal/model"
	"hotel-booking/internal/store"
)

// 測試可覆寫
var (
	listRooms                  = store.ListRooms
	listAvailableRooms         = store.ListAvailableRooms
	getRoomByNumber            = store.GetRoomByNumber
	createRoom                 = store.CreateRoom
	updateRoom                 = store.UpdateRoom
	deleteRoom                 = store.DeleteRoom
	deleteBookingsByRoomNumber = store.DeleteBookingsByRoomNumber
	renumberBookings           = store.RenumberBookings
	withTx                     = database.WithTx
)

// Catalog 管理房間資料
type Catalog struct {
	db database.DB
}

func NewCatalog(db database.DB) *Catalog {
	return &Catalog{db: db}
}

func (s *Catalog) ListRooms(ctx context.Context, f model.RoomFilter) ([]model.Room, error) {
	return listRooms(ctx, s.db, f)
}

// AvailableRooms 回傳在 r 期間沒有任何訂單的房間
func (s *Catalog) AvailableRooms(ctx context.Context, r model.DateRange) ([]model.Room, error) {
	if !r.Valid() {
		return nil, ErrInvalidDateRange
	}
	return listAvailableRooms(ctx, s.db, r)
}

// CreateRoom 新增房間並回傳 room_uid
func (s *Catalog) CreateRoom(ctx context.Context, room *model.Room) (uuid.UUID, error) {
	_, err := getRoomByNumber(ctx, s.db, room.Number)
	switch {
	case err == nil:
		return uuid.Nil, ErrDuplicateRoomNumber
	case !errors.Is(err, store.ErrNotFound):
		return uuid.Nil, err
	}

	room.UID = newUID()
	if err := createRoom(ctx, s.db, room); err != nil {
		if errors.Is(err, store.ErrConflict) {
			return uuid.Nil, ErrDuplicateRoomNumber
		}
		return uuid.Nil, err
	}
	return room.UID, nil
}

// UpdateRoom 整筆覆寫 number 對應的房間，房號變更時一併搬移訂單
func (s *Catalog) UpdateRoom(ctx context.Context, number int, room *model.Room) (*model.Room, error) {
	err := withTx(ctx, s.db, pgx.TxOptions{}, func(q database.Querier) error {
		current, err := getRoomByNumber(ctx, q, number)
		if errors.Is(err, store.ErrNotFound) {
			return ErrRoomNotFound
		}
		if err != nil {
			return err
		}

		room.UID = current.UID
		if err := updateRoom(ctx, q, current.UID, room); err != nil {
			if errors.Is(err, store.ErrConflict) {
				return ErrDuplicateRoomNumber
			}
			return err
		}
		if room.Number != number {
			return renumberBookings(ctx, q, number, room.Number)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return room, nil
}

// DeleteRoom 刪除房間及其所有訂單，回傳刪除的訂單數
func (s *Catalog) DeleteRoom(ctx context.Context, number int) (int64, error) {
	var removed int64
	err := withTx(ctx, s.db, pgx.TxOptions{}, func(q database.Querier) error {
		if _, err := getRoomByNumber(ctx, q, number); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrRoomNotFound
			}
			return err
		}

		n, err := deleteBookingsByRoomNumber(ctx, q, number)
		if err != nil {
			return err
		}
		removed = n
		return deleteRoom(ctx, q, number)
	})
	if err != nil {
		return 0, err
	}
	return removed, nil
}
