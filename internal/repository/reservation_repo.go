package repository

import (
	"context"

	"roomreserve/internal/docstore"
	"roomreserve/internal/domain"
)

const (
	roomsCollection    = "rooms"
	daysCollection     = "days"
	bookingsCollection = "bookings"
)

// BookingRecord is a booking together with its location in the hierarchy:
// the room and day partitions it lives under and the opaque storage key of
// its document. The storage key is never the booking's logical identity.
type BookingRecord struct {
	RoomName   string
	Date       string
	StorageKey string
	Booking    domain.Booking
}

// ReservationRepository is the typed access layer over the three-level
// rooms/days/bookings hierarchy. Every operation that reaches a day or a
// booking goes through its parent path; no operation crosses rooms.
type ReservationRepository struct {
	store *docstore.Store
}

func NewReservationRepository(store *docstore.Store) *ReservationRepository {
	return &ReservationRepository{store: store}
}

func (r *ReservationRepository) roomDoc(name string) docstore.Doc {
	return r.store.Collection(roomsCollection).Doc(name)
}

func (r *ReservationRepository) dayDoc(roomName, date string) docstore.Doc {
	return r.roomDoc(roomName).Collection(daysCollection).Doc(date)
}

func (r *ReservationRepository) bookings(roomName, date string) docstore.Collection {
	return r.dayDoc(roomName, date).Collection(bookingsCollection)
}

// CreateRoom writes the room document under its name. An existing room of
// the same name is silently overwritten (last writer wins); no existence
// check is made before the write.
func (r *ReservationRepository) CreateRoom(ctx context.Context, creatorID, name string) error {
	return r.roomDoc(name).Set(ctx, domain.Room{Name: name, CreatorID: creatorID})
}

func (r *ReservationRepository) GetRoom(ctx context.Context, name string) (*domain.Room, error) {
	var room domain.Room
	if err := r.roomDoc(name).Get(ctx, &room); err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *ReservationRepository) ListRooms(ctx context.Context) ([]domain.Room, error) {
	snaps, err := r.store.Collection(roomsCollection).List(ctx)
	if err != nil {
		return nil, err
	}
	rooms := make([]domain.Room, 0, len(snaps))
	for _, snap := range snaps {
		var room domain.Room
		if err := snap.Decode(&room); err != nil {
			return nil, err
		}
		rooms = append(rooms, room)
	}
	return rooms, nil
}

// EnsureDay creates the day partition if absent. Calling it twice for the
// same (room, date) yields the same single day document.
func (r *ReservationRepository) EnsureDay(ctx context.Context, roomName, date string) error {
	day := r.dayDoc(roomName, date)
	exists, err := day.Exists(ctx)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return day.Set(ctx, domain.Day{Date: date})
}

// ListDays returns the date keys of every day partition under the room.
func (r *ReservationRepository) ListDays(ctx context.Context, roomName string) ([]string, error) {
	snaps, err := r.roomDoc(roomName).Collection(daysCollection).List(ctx)
	if err != nil {
		return nil, err
	}
	dates := make([]string, 0, len(snaps))
	for _, snap := range snaps {
		dates = append(dates, snap.Key)
	}
	return dates, nil
}

// CreateBooking appends the booking under the (lazily created) day. The
// document key is store-generated and opaque; the booking's external id
// travels in its fields.
func (r *ReservationRepository) CreateBooking(ctx context.Context, roomName, date string, b domain.Booking) error {
	if err := r.EnsureDay(ctx, roomName, date); err != nil {
		return err
	}
	_, err := r.bookings(roomName, date).Add(ctx, b)
	return err
}

// ListBookings returns every booking under (room, date) with its location.
func (r *ReservationRepository) ListBookings(ctx context.Context, roomName, date string) ([]BookingRecord, error) {
	snaps, err := r.bookings(roomName, date).List(ctx)
	if err != nil {
		return nil, err
	}
	records := make([]BookingRecord, 0, len(snaps))
	for _, snap := range snaps {
		var b domain.Booking
		if err := snap.Decode(&b); err != nil {
			return nil, err
		}
		records = append(records, BookingRecord{
			RoomName:   roomName,
			Date:       date,
			StorageKey: snap.Key,
			Booking:    b,
		})
	}
	return records, nil
}

// DeleteRoom removes the room document only. Day documents beneath it are
// not cascaded; callers are expected to have verified the room holds no
// bookings.
func (r *ReservationRepository) DeleteRoom(ctx context.Context, name string) error {
	return r.roomDoc(name).Delete(ctx)
}

func (r *ReservationRepository) DeleteBooking(ctx context.Context, roomName, date, storageKey string) error {
	return r.bookings(roomName, date).Doc(storageKey).Delete(ctx)
}

// UpdateBooking merges fields into the booking document where it lives. The
// record is not re-parented even when the fields change its logical date.
func (r *ReservationRepository) UpdateBooking(ctx context.Context, roomName, date, storageKey string, fields map[string]any) error {
	return r.bookings(roomName, date).Doc(storageKey).Update(ctx, fields)
}
