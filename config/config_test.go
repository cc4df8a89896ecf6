package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"ulascansenturk/room-temperature-service/config"
)

func TestLoadConfigDefaults(t *testing.T) {
	// Empty variables count as unset.
	t.Setenv("DATABASE_DRIVER", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")
	t.Setenv("HTTP_TIMEOUT", "")

	conf, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, config.DriverPostgres, conf.DBDriver)
	assert.Equal(t, []string{"*"}, conf.CORSAllowedOrigins)
	assert.Equal(t, 30*time.Second, conf.HTTPTimeoutDuration())
	assert.False(t, conf.RoomUniqueNames)
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("SERVICE_NAME", "rooms")
	t.Setenv("DATABASE_DRIVER", " SQLite ")
	t.Setenv("SQLITE_PATH", "/tmp/rooms.db")
	t.Setenv("ROOM_UNIQUE_NAMES", "true")
	t.Setenv("HTTP_TIMEOUT", "7")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.example, http://b.example,,")

	conf, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "rooms", conf.ServiceName)
	assert.Equal(t, config.DriverSQLite, conf.DBDriver)
	assert.Equal(t, "/tmp/rooms.db", conf.SQLitePath)
	assert.True(t, conf.RoomUniqueNames)
	assert.Equal(t, 7*time.Second, conf.HTTPTimeoutDuration())
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, conf.CORSAllowedOrigins)
}

func TestLoadConfigRejectsUnknownDriver(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "oracle")

	_, err := config.LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "oracle")
}

func TestPostgresDSN(t *testing.T) {
	conf := &config.Config{
		DBHost:     "db",
		DBPort:     "5432",
		DBUser:     "rooms",
		DBPassword: "secret",
		DBName:     "temperatures",
	}
	assert.Equal(t, "host=db port=5432 user=rooms password=secret dbname=temperatures sslmode=disable", conf.PostgresDSN())

	conf.DBURL = "postgres://rooms:secret@db:5432/temperatures"
	assert.Equal(t, "postgres://rooms:secret@db:5432/temperatures", conf.PostgresDSN())
}
