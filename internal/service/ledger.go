// File: internal/service/ledger.go
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"hotel-booking/internal/cache"
	"hotel-booking/internal/database"
	"hotel-booking/internal/metrics"
	"hotel-booking/internal/model"
	"hotel-booking/internal/store"
)

// 測試可覆寫
var (
	createBooking      = store.CreateBooking
	getBookingByID     = store.GetBookingByID
	updateBookingDates = store.UpdateBookingDates
	deleteBooking      = store.DeleteBooking
	acquireLock        = cache.AcquireLock
	timeNow            = time.Now
)

const maxTxAttempts = 3

// Publisher 接收訂單異動事件
type Publisher interface {
	Publish(BookingEvent)
}

// Ledger 負責建立、修改與取消訂單
type Ledger struct {
	db      database.DB
	cache   cache.Cache
	lockTTL time.Duration
	events  Publisher
	log     zerolog.Logger
}

// NewLedger c 為 nil 時不使用 Redis 鎖，events 為 nil 時不發送事件
func NewLedger(db database.DB, c cache.Cache, lockTTL time.Duration, events Publisher, log zerolog.Logger) *Ledger {
	return &Ledger{db: db, cache: c, lockTTL: lockTTL, events: events, log: log}
}

// Create 在房間鎖與 SERIALIZABLE 交易內檢查空房並新增訂單
func (l *Ledger) Create(ctx context.Context, roomNumber int, r model.DateRange, userID uuid.UUID) (*model.Booking, error) {
	if !r.Valid() {
		return nil, ErrInvalidDateRange
	}

	release, err := acquireLock(ctx, l.cache, cache.RoomLockKey(roomNumber), l.lockTTL)
	if errors.Is(err, cache.ErrLockHeld) {
		metrics.BookingConflictsTotal.WithLabelValues("busy").Inc()
		return nil, ErrRoomBusy
	}
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := release(context.WithoutCancel(ctx)); err != nil {
			l.log.Warn().Err(err).Int("room_number", roomNumber).Msg("release booking lock")
		}
	}()

	var booking *model.Booking
	err = l.serializable(ctx, func(q database.Querier) error {
		room, err := getRoomByNumber(ctx, q, roomNumber)
		if errors.Is(err, store.ErrNotFound) {
			return ErrRoomNotFound
		}
		if err != nil {
			return err
		}

		free, err := IsFree(ctx, q, roomNumber, r)
		if err != nil {
			return err
		}
		if !free {
			return ErrRoomNotAvailable
		}

		booking, err = createBooking(ctx, q, &model.Booking{
			RoomUID:    room.UID,
			RoomNumber: roomNumber,
			CheckIn:    r.CheckIn,
			CheckOut:   r.CheckOut,
			UserID:     userID,
		})
		return err
	})
	if errors.Is(err, ErrRoomNotAvailable) {
		metrics.BookingConflictsTotal.WithLabelValues("overlap").Inc()
	}
	if err != nil {
		return nil, err
	}

	metrics.BookingsCreatedTotal.Inc()
	l.publish(EventCreated, booking)
	return booking, nil
}

// Update 修改訂單日期，新區間不得與同房其他訂單重疊
func (l *Ledger) Update(ctx context.Context, id int, r model.DateRange) (*model.Booking, error) {
	if !r.Valid() {
		return nil, ErrInvalidDateRange
	}

	var booking *model.Booking
	err := l.serializable(ctx, func(q database.Querier) error {
		b, err := getBookingByID(ctx, q, id)
		if errors.Is(err, store.ErrNotFound) {
			return ErrBookingNotFound
		}
		if err != nil {
			return err
		}

		taken, err := hasOverlap(ctx, q, b.RoomNumber, r, b.ID)
		if err != nil {
			return err
		}
		if taken {
			return ErrRoomNotAvailable
		}

		if err := updateBookingDates(ctx, q, b.ID, r); err != nil {
			return err
		}
		b.CheckIn, b.CheckOut = r.CheckIn, r.CheckOut
		booking = b
		return nil
	})
	if errors.Is(err, ErrRoomNotAvailable) {
		metrics.BookingConflictsTotal.WithLabelValues("overlap").Inc()
	}
	if err != nil {
		return nil, err
	}

	l.publish(EventUpdated, booking)
	return booking, nil
}

// Cancel 刪除訂單，僅限訂單擁有者或管理員
func (l *Ledger) Cancel(ctx context.Context, id int, caller *model.User) (*model.Booking, error) {
	var booking *model.Booking
	err := withTx(ctx, l.db, pgx.TxOptions{}, func(q database.Querier) error {
		b, err := getBookingByID(ctx, q, id)
		if errors.Is(err, store.ErrNotFound) {
			return ErrBookingNotFound
		}
		if err != nil {
			return err
		}
		if b.UserID != caller.UID && !caller.IsAdmin() {
			return ErrForbidden
		}
		if err := deleteBooking(ctx, q, b.ID); err != nil {
			return err
		}
		booking = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	l.publish(EventCancelled, booking)
	return booking, nil
}

// serializable 遇到 40001 時重跑整個交易，重試用盡視為房間已被訂走
func (l *Ledger) serializable(ctx context.Context, fn func(q database.Querier) error) error {
	opts := pgx.TxOptions{IsoLevel: pgx.Serializable}
	for attempt := 1; attempt <= maxTxAttempts; attempt++ {
		err := withTx(ctx, l.db, opts, fn)
		if !database.IsSerializationFailure(err) {
			return err
		}
		l.log.Debug().Int("attempt", attempt).Msg("serialization failure, retrying")
	}
	metrics.BookingConflictsTotal.WithLabelValues("serialization").Inc()
	return ErrRoomNotAvailable
}

func (l *Ledger) publish(kind EventKind, b *model.Booking) {
	if l.events == nil {
		return
	}
	l.events.Publish(BookingEvent{Kind: kind, Booking: *b, At: timeNow()})
}
