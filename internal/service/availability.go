// File: internal/service/availability.go
package service

import (
	"context"

	"hotel-booking/internal/database"
	"hotel-booking/internal/model"
	"hotel-booking/internal/store"
)

var hasOverlap = store.HasOverlap

// IsFree 判斷房間在 r 期間是否沒有任何訂單，區間為半開，退房日等於入住日不算重疊
func IsFree(ctx context.Context, q database.Querier, roomNumber int, r model.DateRange) (bool, error) {
	taken, err := hasOverlap(ctx, q, roomNumber, r, 0)
	if err != nil {
		return false, err
	}
	return !taken, nil
}
