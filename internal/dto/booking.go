// File: internal/dto/booking.go
package dto

// swagger:model dto.BookRoomRequest
type BookRoomRequest struct {
	RoomNumber   int    `json:"room_number" validate:"gt=0" example:"101"`
	CheckInDate  string `json:"check_in_date" validate:"required,datetime=2006-01-02" example:"2025-03-01"`
	CheckOutDate string `json:"check_out_date" validate:"required,datetime=2006-01-02" example:"2025-03-05"`
}

// swagger:model dto.BookRoomResponse
type BookRoomResponse struct {
	Msg          string `json:"msg" example:"Room successfully booked"`
	BookingID    int    `json:"booking_id" example:"1"`
	RoomNumber   int    `json:"room_number" example:"101"`
	CheckInDate  string `json:"check_in_date" example:"2025-03-01"`
	CheckOutDate string `json:"check_out_date" example:"2025-03-05"`
}

// swagger:model dto.BookingUpdateRequest
type BookingUpdateRequest struct {
	CheckInDate  string `json:"check_in_date" validate:"required,datetime=2006-01-02" example:"2025-03-02"`
	CheckOutDate string `json:"check_out_date" validate:"required,datetime=2006-01-02" example:"2025-03-06"`
}

// swagger:model dto.BookingResponse
type BookingResponse struct {
	Message   string `json:"message" example:"Booking updated"`
	BookingID int    `json:"booking_id" example:"1"`
}
