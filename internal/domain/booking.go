package domain

// Booking is a single reservation of a room for a time range. ID is the
// externally generated 12-character identifier; it is distinct from the
// opaque storage key of the booking document and is the only identity used
// for lookups.
type Booking struct {
	ID        string `json:"id"`
	RoomName  string `json:"room_name"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	BookedBy  string `json:"booked_by"`
}
