// File: internal/dto/room.go
package dto

import (
	"github.com/google/uuid"

	"hotel-booking/internal/model"
)

// RoomsQuery GET /rooms 查詢參數，未帶入的條件為 nil
type RoomsQuery struct {
	Price          *int `validate:"omitempty,gte=0"`
	NumberOfPlaces *int `validate:"omitempty,gt=0"`
	SortByPrice    bool
}

func (q RoomsQuery) Filter() model.RoomFilter {
	return model.RoomFilter{MaxPrice: q.Price, Places: q.NumberOfPlaces, SortByPrice: q.SortByPrice}
}

// AvailableRoomsQuery GET /available_rooms 查詢參數
type AvailableRoomsQuery struct {
	CheckIn  string `query:"check_in" validate:"required,datetime=2006-01-02"`
	CheckOut string `query:"check_out" validate:"required,datetime=2006-01-02"`
}

// swagger:model dto.RoomRequest
type RoomRequest struct {
	RoomNumber     int    `json:"room_number" validate:"gt=0" example:"101"`
	RoomName       string `json:"room_name" validate:"required" example:"Sea view"`
	RoomPrice      int    `json:"room_price" validate:"gte=0" example:"120"`
	NumberOfPlaces int    `json:"number_of_places" validate:"gt=0" example:"2"`
	TypeOfRoom     string `json:"type_of_room" validate:"required" example:"double"`
}

func (r RoomRequest) Model() *model.Room {
	return &model.Room{
		Number:         r.RoomNumber,
		Name:           r.RoomName,
		Price:          r.RoomPrice,
		NumberOfPlaces: r.NumberOfPlaces,
		Type:           r.TypeOfRoom,
	}
}

// swagger:model dto.RoomCreatedResponse
type RoomCreatedResponse struct {
	Message string    `json:"message" example:"Room created successfully"`
	RoomUID uuid.UUID `json:"room_uid"`
}

// swagger:model dto.RoomUpdatedResponse
type RoomUpdatedResponse struct {
	Message string    `json:"message" example:"Room updated"`
	RoomID  uuid.UUID `json:"room_id"`
}

// swagger:model dto.MessageResponse
type MessageResponse struct {
	Message string `json:"message" example:"Room and related bookings deleted"`
}
