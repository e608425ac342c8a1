// File: internal/service/events.go
package service

import (
	"time"

	"github.com/rs/zerolog"

	"hotel-booking/internal/metrics"
	"hotel-booking/internal/model"
	"hotel-booking/internal/worker"
)

type EventKind string

const (
	EventCreated   EventKind = "created"
	EventUpdated   EventKind = "updated"
	EventCancelled EventKind = "cancelled"
)

type BookingEvent struct {
	Kind    EventKind
	Booking model.Booking
	At      time.Time
}

// Notifier 在 worker pool 上非同步處理訂單事件
type Notifier struct {
	pool worker.Pool
	log  zerolog.Logger
}

func NewNotifier(pool worker.Pool, log zerolog.Logger) *Notifier {
	return &Notifier{pool: pool, log: log}
}

// Publish 不會阻塞，佇列已滿時丟棄事件
func (n *Notifier) Publish(ev BookingEvent) {
	if n.pool.TrySubmit(func() { n.handle(ev) }) {
		return
	}
	metrics.BookingEventsTotal.WithLabelValues("dropped").Inc()
	n.log.Warn().
		Str("kind", string(ev.Kind)).
		Int("booking_id", ev.Booking.ID).
		Msg("booking event dropped")
}

func (n *Notifier) handle(ev BookingEvent) {
	metrics.BookingEventsTotal.WithLabelValues(string(ev.Kind)).Inc()
	n.log.Info().
		Str("kind", string(ev.Kind)).
		Int("booking_id", ev.Booking.ID).
		Int("room_number", ev.Booking.RoomNumber).
		Str("check_in_date", model.FormatDate(ev.Booking.CheckIn)).
		Str("check_out_date", model.FormatDate(ev.Booking.CheckOut)).
		Str("user_id", ev.Booking.UserID.String()).
		Time("at", ev.At).
		Msg("booking event")
}
