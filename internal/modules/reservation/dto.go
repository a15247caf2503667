package reservation

type CreateRoomRequest struct {
	Name string `json:"name" binding:"required"`
}

type CreateBookingRequest struct {
	RoomName  string `json:"room_name" binding:"required"`
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

type UpdateBookingRequest struct {
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
	Date      string `json:"date" binding:"required"`
}
