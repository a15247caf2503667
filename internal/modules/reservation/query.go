package reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"roomreserve/internal/docstore"
	"roomreserve/internal/domain"
	"roomreserve/internal/repository"
)

// The only indexed path into a booking is (room, date, storage key), while
// callers look things up by booking id, user id, or room+user. Everything in
// this file reconciles the two by scanning the hierarchy.

// FindBookingByID locates a booking by its external id with a full scan over
// every room, day and booking. The first match wins and the scan stops; ids
// are globally unique by construction, so at most one match exists.
func (s *Service) FindBookingByID(ctx context.Context, id string) (*repository.BookingRecord, error) {
	rooms, err := s.store.ListRooms(ctx)
	if err != nil {
		return nil, storeErr(err)
	}
	for _, room := range rooms {
		dates, err := s.store.ListDays(ctx, room.Name)
		if err != nil {
			return nil, storeErr(err)
		}
		for _, date := range dates {
			records, err := s.store.ListBookings(ctx, room.Name, date)
			if err != nil {
				return nil, storeErr(err)
			}
			for _, record := range records {
				if record.Booking.ID == id {
					return &record, nil
				}
			}
		}
	}
	return nil, ErrNotFound
}

// BookingsForUser returns every booking made by the user, across all rooms
// and days. Cost is linear in the total number of bookings.
func (s *Service) BookingsForUser(ctx context.Context, userID string) ([]domain.Booking, error) {
	rooms, err := s.store.ListRooms(ctx)
	if err != nil {
		return nil, storeErr(err)
	}
	out := []domain.Booking{}
	for _, room := range rooms {
		bookings, err := s.bookingsInRoomForUser(ctx, room.Name, userID)
		if err != nil {
			return nil, err
		}
		out = append(out, bookings...)
	}
	return out, nil
}

// BookingsForRoomAndUser scans one room's days for the user's bookings. An
// absent room yields an empty result, not an error.
func (s *Service) BookingsForRoomAndUser(ctx context.Context, roomName, userID string) ([]domain.Booking, error) {
	_, err := s.store.GetRoom(ctx, roomName)
	if errors.Is(err, docstore.ErrNotFound) {
		return []domain.Booking{}, nil
	}
	if err != nil {
		return nil, storeErr(err)
	}
	return s.bookingsInRoomForUser(ctx, roomName, userID)
}

func (s *Service) bookingsInRoomForUser(ctx context.Context, roomName, userID string) ([]domain.Booking, error) {
	dates, err := s.store.ListDays(ctx, roomName)
	if err != nil {
		return nil, storeErr(err)
	}
	out := []domain.Booking{}
	for _, date := range dates {
		records, err := s.store.ListBookings(ctx, roomName, date)
		if err != nil {
			return nil, storeErr(err)
		}
		for _, record := range records {
			if record.Booking.BookedBy == userID {
				out = append(out, record.Booking)
			}
		}
	}
	return out, nil
}

// BookingsOnDate returns all bookings across rooms on the given date. This is
// the one query aligned with the partition scheme: each room's day is a point
// lookup. The date must be exactly YYYY-MM-DD; anything else fails before any
// store access.
func (s *Service) BookingsOnDate(ctx context.Context, dateStr string) ([]domain.Booking, error) {
	day, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return nil, ErrInvalidDate
	}
	key := day.Format("2006-01-02")

	rooms, err := s.store.ListRooms(ctx)
	if err != nil {
		return nil, storeErr(err)
	}
	out := []domain.Booking{}
	for _, room := range rooms {
		records, err := s.store.ListBookings(ctx, room.Name, key)
		if err != nil {
			return nil, storeErr(err)
		}
		for _, record := range records {
			out = append(out, record.Booking)
		}
	}
	return out, nil
}

// DatesWithBookings collects the date keys of every day partition across all
// rooms, for the date picker. Duplicates across rooms are preserved.
func (s *Service) DatesWithBookings(ctx context.Context) ([]string, error) {
	rooms, err := s.store.ListRooms(ctx)
	if err != nil {
		return nil, storeErr(err)
	}
	dates := []string{}
	for _, room := range rooms {
		roomDates, err := s.store.ListDays(ctx, room.Name)
		if err != nil {
			return nil, storeErr(err)
		}
		dates = append(dates, roomDates...)
	}
	return dates, nil
}

func (s *Service) ListRooms(ctx context.Context) ([]domain.Room, error) {
	rooms, err := s.store.ListRooms(ctx)
	if err != nil {
		return nil, storeErr(err)
	}
	return rooms, nil
}

func storeErr(err error) error {
	return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
}
