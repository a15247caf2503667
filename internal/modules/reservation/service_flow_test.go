package reservation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"

	"roomreserve/internal/docstore"
	"roomreserve/internal/repository"
)

// Flow tests run the service against the real repository over an in-memory
// sqlite document store.

func newFlowService(t *testing.T) *Service {
	t.Helper()
	db, err := gorm.Open(
		gormsqlite.New(gormsqlite.Config{DriverName: "sqlite", DSN: ":memory:"}),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)},
	)
	require.NoError(t, err)
	// a second pooled connection would get its own empty :memory: database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	store, err := docstore.New(db)
	require.NoError(t, err)
	return NewService(repository.NewReservationRepository(store))
}

func makeBooking(t *testing.T, s *Service, room, date, start, end, user string) string {
	t.Helper()
	booking, ok, msg := s.CreateBooking(context.Background(), CreateBookingRequest{
		RoomName: room, Date: date, StartTime: start, EndTime: end,
	}, user)
	require.True(t, ok, msg)
	return booking.ID
}

func TestFlow_CreateThenFindByID(t *testing.T) {
	s := newFlowService(t)
	ctx := context.Background()

	ok, _ := s.CreateRoom(ctx, "alice", "Oak")
	require.True(t, ok)

	id := makeBooking(t, s, "Oak", "2024-05-01", "09:00", "10:00", "alice")

	got, err := s.FindBookingByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Oak", got.Booking.RoomName)
	assert.Equal(t, "2024-05-01", got.Booking.Date)
	assert.Equal(t, "09:00", got.Booking.StartTime)
	assert.Equal(t, "10:00", got.Booking.EndTime)
	assert.Equal(t, "alice", got.Booking.BookedBy)

	onDate, err := s.BookingsOnDate(ctx, "2024-05-01")
	require.NoError(t, err)
	require.Len(t, onDate, 1)
	assert.Equal(t, id, onDate[0].ID)

	mine, err := s.BookingsForUser(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, id, mine[0].ID)
}

func TestFlow_DeleteBookingThenGone(t *testing.T) {
	s := newFlowService(t)
	ctx := context.Background()

	s.CreateRoom(ctx, "alice", "Oak")
	id := makeBooking(t, s, "Oak", "2024-05-01", "09:00", "10:00", "alice")

	require.NoError(t, s.DeleteBookingByID(ctx, id))

	_, err := s.FindBookingByID(ctx, id)
	assert.ErrorIs(t, err, ErrNotFound)

	err = s.DeleteBookingByID(ctx, id)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFlow_DeleteRoomGuards(t *testing.T) {
	s := newFlowService(t)
	ctx := context.Background()

	s.CreateRoom(ctx, "alice", "Oak")
	id := makeBooking(t, s, "Oak", "2024-05-01", "09:00", "10:00", "bob")

	// blocked while any booking exists, and the room survives
	err := s.DeleteRoom(ctx, "Oak", "alice")
	assert.ErrorIs(t, err, ErrRoomHasBookings)
	rooms, err := s.ListRooms(ctx)
	require.NoError(t, err)
	assert.Len(t, rooms, 1)

	require.NoError(t, s.DeleteBookingByID(ctx, id))

	// empty room: non-creator still forbidden
	err = s.DeleteRoom(ctx, "Oak", "bob")
	assert.ErrorIs(t, err, ErrForbidden)

	// creator succeeds and the room is gone
	require.NoError(t, s.DeleteRoom(ctx, "Oak", "alice"))
	err = s.DeleteRoom(ctx, "Oak", "alice")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFlow_UpdateBookingKeepsPartition(t *testing.T) {
	s := newFlowService(t)
	ctx := context.Background()

	s.CreateRoom(ctx, "alice", "Oak")
	id := makeBooking(t, s, "Oak", "2024-05-01", "09:00", "10:00", "alice")

	updated, err := s.UpdateBooking(ctx, id, UpdateBookingRequest{
		StartTime: "14:00", EndTime: "15:00", Date: "2024-06-01",
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-06-01", updated.Date)

	// still found by id (the scan does not care about partitions)
	got, err := s.FindBookingByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "2024-06-01", got.Booking.Date)
	assert.Equal(t, "14:00", got.Booking.StartTime)

	// but by date it is only reachable through its original partition
	oldDay, err := s.BookingsOnDate(ctx, "2024-05-01")
	require.NoError(t, err)
	assert.Len(t, oldDay, 1)
	newDay, err := s.BookingsOnDate(ctx, "2024-06-01")
	require.NoError(t, err)
	assert.Empty(t, newDay)
}

func TestFlow_DoubleBookingAccepted(t *testing.T) {
	s := newFlowService(t)
	ctx := context.Background()

	s.CreateRoom(ctx, "alice", "Oak")
	id1 := makeBooking(t, s, "Oak", "2024-05-01", "09:00", "10:00", "alice")
	id2 := makeBooking(t, s, "Oak", "2024-05-01", "09:00", "10:00", "bob")

	assert.NotEqual(t, id1, id2)

	onDate, err := s.BookingsOnDate(ctx, "2024-05-01")
	require.NoError(t, err)
	assert.Len(t, onDate, 2)
}

func TestFlow_BookingsForRoomAndUser(t *testing.T) {
	s := newFlowService(t)
	ctx := context.Background()

	s.CreateRoom(ctx, "alice", "Oak")
	s.CreateRoom(ctx, "alice", "Pine")
	makeBooking(t, s, "Oak", "2024-05-01", "09:00", "10:00", "alice")
	makeBooking(t, s, "Oak", "2024-05-02", "11:00", "12:00", "bob")
	makeBooking(t, s, "Pine", "2024-05-01", "09:00", "10:00", "alice")

	oakAlice, err := s.BookingsForRoomAndUser(ctx, "Oak", "alice")
	require.NoError(t, err)
	require.Len(t, oakAlice, 1)
	assert.Equal(t, "Oak", oakAlice[0].RoomName)

	dates, err := s.DatesWithBookings(ctx)
	require.NoError(t, err)
	// 2024-05-01 appears once per room holding it
	assert.ElementsMatch(t, []string{"2024-05-01", "2024-05-02", "2024-05-01"}, dates)
}

func TestFlow_CreateRoomOverwrites(t *testing.T) {
	s := newFlowService(t)
	ctx := context.Background()

	s.CreateRoom(ctx, "alice", "Oak")
	ok, msg := s.CreateRoom(ctx, "bob", "Oak")
	assert.True(t, ok, msg)

	rooms, err := s.ListRooms(ctx)
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	assert.Equal(t, "bob", rooms[0].CreatorID)
}
