package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"hotel-booking/internal/cache"
	"hotel-booking/internal/database"
	"hotel-booking/internal/store"
)

func restoreGlobals() {
	bcryptGenerateFromPassword = bcrypt.GenerateFromPassword
	bcryptCompareHashAndPassword = bcrypt.CompareHashAndPassword
	getUserByEmail = store.GetUserByEmail
	getUserByUID = store.GetUserByUID
	createUser = store.CreateUser
	newUID = uuid.New
	listRooms = store.ListRooms
	listAvailableRooms = store.ListAvailableRooms
	getRoomByNumber = store.GetRoomByNumber
	createRoom = store.CreateRoom
	updateRoom = store.UpdateRoom
	deleteRoom = store.DeleteRoom
	deleteBookingsByRoomNumber = store.DeleteBookingsByRoomNumber
	renumberBookings = store.RenumberBookings
	withTx = database.WithTx
	hasOverlap = store.HasOverlap
	createBooking = store.CreateBooking
	getBookingByID = store.GetBookingByID
	updateBookingDates = store.UpdateBookingDates
	deleteBooking = store.DeleteBooking
	acquireLock = cache.AcquireLock
	timeNow = time.Now
}

// fakeTxDB 回傳可 commit 的 FakeTx，store 呼叫已由函式變數替換
func fakeTxDB() *database.FakeDB {
	return &database.FakeDB{BeginTxFn: func(context.Context, pgx.TxOptions) (pgx.Tx, error) {
		return &database.FakeTx{}, nil
	}}
}

func day(d int) time.Time {
	return time.Date(2025, 3, d, 0, 0, 0, 0, time.UTC)
}
