package reservation

import (
	"context"

	"roomreserve/internal/domain"
	"roomreserve/internal/repository"
)

// ReservationStore is the hierarchy access the service runs against.
type ReservationStore interface {
	CreateRoom(ctx context.Context, creatorID, name string) error
	GetRoom(ctx context.Context, name string) (*domain.Room, error)
	ListRooms(ctx context.Context) ([]domain.Room, error)
	EnsureDay(ctx context.Context, roomName, date string) error
	ListDays(ctx context.Context, roomName string) ([]string, error)
	CreateBooking(ctx context.Context, roomName, date string, b domain.Booking) error
	ListBookings(ctx context.Context, roomName, date string) ([]repository.BookingRecord, error)
	DeleteRoom(ctx context.Context, name string) error
	DeleteBooking(ctx context.Context, roomName, date, storageKey string) error
	UpdateBooking(ctx context.Context, roomName, date, storageKey string, fields map[string]any) error
}

// UserProfiles provides the lazily created user profile for the index page.
type UserProfiles interface {
	GetOrCreate(ctx context.Context, userID string) (*domain.User, error)
}
