package reservation

import "errors"

var (
	ErrNotFound         = errors.New("not found")
	ErrForbidden        = errors.New("only the creator can delete the room")
	ErrRoomHasBookings  = errors.New("cannot delete room with existing bookings")
	ErrInvalidDate      = errors.New("invalid date format, must be YYYY-MM-DD")
	ErrStoreUnavailable = errors.New("store unavailable")
)
