package store_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/campusnav/internal/store"
)

// stepClock returns a clock that advances one second per call.
func stepClock() func() time.Time {
	t := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	return func() time.Time {
		t = t.Add(time.Second)
		return t
	}
}

func setupTestDB(t *testing.T) *store.DB {
	t.Helper()
	db, err := store.OpenDB(context.Background(), ":memory:", store.WithClock(stepClock()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return db
}

func TestCreateUserAndAuthenticate(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)

	u, err := db.CreateUser(ctx, " alice ", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username)

	_, err = db.CreateUser(ctx, "alice", "other")
	assert.ErrorIs(t, err, store.ErrUserExists)

	got, err := db.Authenticate(ctx, "alice", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, u.Username, got.Username)
	assert.True(t, u.CreatedAt.Equal(got.CreatedAt))

	_, err = db.Authenticate(ctx, "alice", "wrong")
	assert.ErrorIs(t, err, store.ErrInvalidCredentials)
	_, err = db.Authenticate(ctx, "bob", "s3cret")
	assert.ErrorIs(t, err, store.ErrInvalidCredentials)
}

func TestCreateUser_Validation(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)

	_, err := db.CreateUser(ctx, "", "pw")
	assert.ErrorIs(t, err, store.ErrEmptyField)
	_, err = db.CreateUser(ctx, "carol", "")
	assert.ErrorIs(t, err, store.ErrEmptyField)
}

func TestPasswordIsHashed(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	_, err := db.CreateUser(ctx, "alice", "s3cret")
	require.NoError(t, err)

	var hash []byte
	require.NoError(t, db.Conn().QueryRowContext(ctx,
		"SELECT password_hash FROM users WHERE username = ?", "alice").Scan(&hash))
	assert.NotEqual(t, "s3cret", string(hash))
	assert.Contains(t, string(hash), "$2a$")
}

func TestSaveAndListRoutes(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	_, err := db.CreateUser(ctx, "alice", "pw")
	require.NoError(t, err)

	first, err := db.SaveRoute(ctx, store.SavedRoute{
		Username: "alice", Source: "Front Gate", Destination: "Lab",
		RouteText: "Front Gate -> Library -> Lab", Cost: 6,
	})
	require.NoError(t, err)
	_, err = uuid.Parse(first.ID)
	assert.NoError(t, err, "route IDs are UUIDs")

	second, err := db.SaveRoute(ctx, store.SavedRoute{
		Username: "alice", Source: "Front Gate", Destination: "Research Block",
		RouteText: "Front Gate -> Library -> Research Block", Cost: 5,
	})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	routes, err := db.ListRoutes(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, routes, 2)
	assert.Equal(t, second.ID, routes[0].ID, "newest first")
	assert.Equal(t, first.ID, routes[1].ID)
	assert.Equal(t, "Front Gate -> Library -> Lab", routes[1].RouteText)
	assert.Equal(t, 6.0, routes[1].Cost)
	assert.True(t, routes[1].SavedAt.Equal(first.SavedAt))

	none, err := db.ListRoutes(ctx, "bob")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestSaveRoute_Errors(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)

	_, err := db.SaveRoute(ctx, store.SavedRoute{
		Username: "ghost", Source: "A", Destination: "B", RouteText: "A -> B", Cost: 1,
	})
	assert.ErrorIs(t, err, store.ErrUnknownUser)

	_, err = db.SaveRoute(ctx, store.SavedRoute{Username: "ghost"})
	assert.ErrorIs(t, err, store.ErrEmptyField)
}

func TestOpenDB_FilePersists(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nav.db")

	db, err := store.OpenDB(ctx, path)
	require.NoError(t, err)
	_, err = db.CreateUser(ctx, "alice", "pw")
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = store.OpenDB(ctx, path)
	require.NoError(t, err)
	defer db.Close()
	_, err = db.Authenticate(ctx, "alice", "pw")
	assert.NoError(t, err)
}
