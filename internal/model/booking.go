// File: internal/model/booking.go
package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DateLayout 為 API 與資料庫共用的日期格式
const DateLayout = "2006-01-02"

type Booking struct {
	ID         int       `db:"id" json:"booking_id"`
	RoomUID    uuid.UUID `db:"room_uid" json:"room_uid"`
	RoomNumber int       `db:"room_number" json:"room_number"`
	CheckIn    time.Time `db:"check_in_date" json:"check_in_date"`
	CheckOut   time.Time `db:"check_out_date" json:"check_out_date"`
	UserID     uuid.UUID `db:"user_id" json:"user_id"`
}

// DateRange 為半開區間 [CheckIn, CheckOut)
type DateRange struct {
	CheckIn  time.Time
	CheckOut time.Time
}

// Valid 檢查 CheckIn 早於 CheckOut
func (r DateRange) Valid() bool {
	return r.CheckIn.Before(r.CheckOut)
}

// ParseDate 解析 YYYY-MM-DD，結果為 UTC 午夜
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
