package reservation

import (
	"context"
	"errors"
	"fmt"

	"roomreserve/internal/docstore"
	"roomreserve/internal/domain"
	"roomreserve/internal/pkg/ids"
)

// Service sequences the store, the scan-based queries and the deletion guard
// into the caller-facing reservation operations.
//
// There is no in-process locking here; the store is the only point of
// concurrency control, and it guarantees per-document atomicity only. Room
// creation overwrites without checking, day creation is check-then-create,
// and nothing rejects overlapping time slots, so concurrent callers can
// interleave on all three. Callers get exactly what they wrote last.
type Service struct {
	store ReservationStore
	newID func() string
}

func NewService(store ReservationStore) *Service {
	return &Service{
		store: store,
		newID: ids.NewBookingID,
	}
}

// CreateRoom creates (or unconditionally replaces) the room named name, owned
// by creatorID. Failures are converted to a message, never propagated.
func (s *Service) CreateRoom(ctx context.Context, creatorID, name string) (bool, string) {
	if err := s.store.CreateRoom(ctx, creatorID, name); err != nil {
		return false, fmt.Sprintf("Failed to create room: '%s'. Error: %v", name, err)
	}
	return true, fmt.Sprintf("Successfully created room: '%s'.", name)
}

// CreateBooking mints a fresh external id and appends the booking under the
// room's day partition, creating the day if this is the first booking on that
// date. No overlap check is made against existing bookings: two bookings for
// the same slot both succeed. Failures are converted to a message.
func (s *Service) CreateBooking(ctx context.Context, req CreateBookingRequest, bookedBy string) (*domain.Booking, bool, string) {
	b := domain.Booking{
		ID:        s.newID(),
		RoomName:  req.RoomName,
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		BookedBy:  bookedBy,
	}
	if err := s.store.CreateBooking(ctx, req.RoomName, req.Date, b); err != nil {
		return nil, false, fmt.Sprintf("Failed to add booking: %v", err)
	}
	return &b, true, "Booking added successfully."
}

// DeleteBookingByID locates the booking by external id and deletes it where
// it lives. A scan that completes without a match is ErrNotFound.
func (s *Service) DeleteBookingByID(ctx context.Context, id string) error {
	record, err := s.FindBookingByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.store.DeleteBooking(ctx, record.RoomName, record.Date, record.StorageKey); err != nil {
		return storeErr(err)
	}
	return nil
}

// UpdateBooking rewrites start, end and date on the existing record. The
// record is not moved to another day partition even when the new date differs
// from the one it is filed under; it stays reachable by date only through its
// original partition.
func (s *Service) UpdateBooking(ctx context.Context, id string, req UpdateBookingRequest) (*domain.Booking, error) {
	record, err := s.FindBookingByID(ctx, id)
	if err != nil {
		return nil, err
	}

	fields := map[string]any{
		"start_time": req.StartTime,
		"end_time":   req.EndTime,
		"date":       req.Date,
	}
	if err := s.store.UpdateBooking(ctx, record.RoomName, record.Date, record.StorageKey, fields); err != nil {
		return nil, storeErr(err)
	}

	updated := record.Booking
	updated.StartTime = req.StartTime
	updated.EndTime = req.EndTime
	updated.Date = req.Date
	return &updated, nil
}

// DeleteRoom deletes the room named name on behalf of requestingUserID.
// Order of checks: the room must exist, the requester must be its creator,
// and no day under it may hold a booking. Only the room document is deleted;
// its (booking-free) day documents are left behind.
func (s *Service) DeleteRoom(ctx context.Context, name, requestingUserID string) error {
	room, err := s.store.GetRoom(ctx, name)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return ErrNotFound
		}
		return storeErr(err)
	}
	if room.CreatorID != requestingUserID {
		return ErrForbidden
	}

	hasBookings, err := s.roomHasAnyBooking(ctx, name)
	if err != nil {
		return err
	}
	if hasBookings {
		return ErrRoomHasBookings
	}

	if err := s.store.DeleteRoom(ctx, name); err != nil {
		return storeErr(err)
	}
	return nil
}

// roomHasAnyBooking scans the room's days and stops at the first booking
// found. One witness is enough.
func (s *Service) roomHasAnyBooking(ctx context.Context, roomName string) (bool, error) {
	dates, err := s.store.ListDays(ctx, roomName)
	if err != nil {
		return false, storeErr(err)
	}
	for _, date := range dates {
		records, err := s.store.ListBookings(ctx, roomName, date)
		if err != nil {
			return false, storeErr(err)
		}
		if len(records) > 0 {
			return true, nil
		}
	}
	return false, nil
}
