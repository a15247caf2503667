package repository

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
	"roomreserve/internal/domain"
)

func newTestUserRepo(t *testing.T) *UserRepository {
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
	return NewUserRepository(store)
}

func TestGetOrCreate_CreatesPlaceholderProfile(t *testing.T) {
	repo := newTestUserRepo(t)
	ctx := context.Background()

	user, err := repo.GetOrCreate(ctx, "uid-1")
	require.NoError(t, err)
	assert.Equal(t, "John Doe", user.Name)
	assert.Empty(t, user.AddressList)

	again, err := repo.GetOrCreate(ctx, "uid-1")
	require.NoError(t, err)
	assert.Equal(t, user, again)
}

func TestCredentials_RoundTrip(t *testing.T) {
	repo := newTestUserRepo(t)
	ctx := context.Background()

	cred := domain.Credential{UserID: "uid-1", Email: "Alice@Example.com", PasswordHash: "hash"}
	require.NoError(t, repo.CreateCredential(ctx, cred))

	// lookup is case-insensitive on email
	got, err := repo.GetCredential(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "uid-1", got.UserID)

	_, err = repo.GetCredential(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, docstore.ErrNotFound)
}
