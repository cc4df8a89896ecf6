package db_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"ulascansenturk/room-temperature-service/config"
	"ulascansenturk/room-temperature-service/internal/apperrors"
	"ulascansenturk/room-temperature-service/internal/db"
	"ulascansenturk/room-temperature-service/internal/db/memstore"
)

func TestOpenMemory(t *testing.T) {
	store, err := db.Open(&config.Config{DBDriver: config.DriverMemory})
	require.NoError(t, err)

	assert.IsType(t, &memstore.Store{}, store.Repository)
	assert.Nil(t, store.DB)
	assert.NoError(t, store.Close())
}

func TestOpenSQLiteCreatesSchema(t *testing.T) {
	conf := &config.Config{
		DBDriver:        config.DriverSQLite,
		SQLitePath:      filepath.Join(t.TempDir(), "rooms.db"),
		RoomUniqueNames: true,
	}

	store, err := db.Open(conf)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	ctx := context.Background()
	require.NoError(t, store.Repository.Ping(ctx))

	room, err := store.Repository.CreateRoom(ctx, "Kitchen")
	require.NoError(t, err)
	require.NoError(t, store.Repository.AddReading(ctx, room.ID, 21, time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)))

	_, err = store.Repository.CreateRoom(ctx, "Kitchen")
	assert.ErrorIs(t, err, apperrors.ErrConflict)

	assert.True(t, store.DB.Migrator().HasTable("rooms"))
	assert.True(t, store.DB.Migrator().HasTable("temperatures"))
}

func TestOpenUnsupportedDriver(t *testing.T) {
	_, err := db.Open(&config.Config{DBDriver: "oracle"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "oracle")
}
