// File: internal/model/room.go
package model

import "github.com/google/uuid"

type Room struct {
	UID            uuid.UUID `db:"room_uid" json:"room_uid"`
	Number         int       `db:"room_number" json:"room_number"`
	Name           string    `db:"room_name" json:"room_name"`
	Price          int       `db:"room_price" json:"room_price"`
	NumberOfPlaces int       `db:"number_of_places" json:"number_of_places"`
	Type           string    `db:"type_of_room" json:"type_of_room"`
}

// RoomFilter 為房間列表的查詢條件，nil 表示不限制
type RoomFilter struct {
	MaxPrice    *int
	Places      *int
	SortByPrice bool
}
