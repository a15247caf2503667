package domain

// Room is a bookable named space. The name doubles as the storage key of the
// room document, so name uniqueness is structural. CreatorID is the opaque
// user id of the creating user; only that user may delete the room.
type Room struct {
	Name      string `json:"name"`
	CreatorID string `json:"creator_user_id"`
}

// Day is a per-room partition keyed by calendar date (YYYY-MM-DD). Days are
// created lazily by the first booking on that date and are never retracted.
type Day struct {
	Date string `json:"date"`
}
