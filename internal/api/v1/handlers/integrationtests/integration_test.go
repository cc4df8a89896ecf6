package integration_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	pgTestContainers "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"ulascansenturk/room-temperature-service/config"
	"ulascansenturk/room-temperature-service/internal/api/v1/handlers"
	"ulascansenturk/room-temperature-service/internal/db"
	"ulascansenturk/room-temperature-service/internal/metrics"
	"ulascansenturk/room-temperature-service/internal/service"
)

var (
	postgresContainer *pgTestContainers.PostgresContainer
	sharedStore       *db.Store
)

const (
	dbName     = "test_api_database"
	dbUser     = "test_user"
	dbPassword = "test_password"
)

func init() {
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
}

func SetupPostgres(t *testing.T) (*db.Store, func()) {
	if sharedStore != nil {
		resetTables(t, sharedStore)
		return sharedStore, func() {}
	}

	log.Info().Msg("Setting up new PostgreSQL container")

	ctx := context.Background()

	var err error
	postgresContainer, err = pgTestContainers.Run(ctx,
		"postgres:13.3",
		pgTestContainers.WithDatabase(dbName),
		pgTestContainers.WithUsername(dbUser),
		pgTestContainers.WithPassword(dbPassword),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	require.NoError(t, err)

	host, err := postgresContainer.Host(ctx)
	require.NoError(t, err)

	endpoint, err := postgresContainer.Endpoint(ctx, "")
	require.NoError(t, err)

	parts := strings.Split(endpoint, ":")
	port := parts[1]

	sharedStore, err = db.Open(&config.Config{
		DBDriver:        config.DriverPostgres,
		DBHost:          host,
		DBPort:          port,
		DBUser:          dbUser,
		DBPassword:      dbPassword,
		DBName:          dbName,
		RoomUniqueNames: true,
	})
	require.NoError(t, err)
	log.Info().Msgf("Connected to database: %s on %s:%s", dbName, host, port)

	require.NoError(t, sharedStore.Repository.Ping(ctx))

	return sharedStore, func() {
		_ = sharedStore.Close()
		sharedStore = nil

		if postgresContainer != nil {
			log.Info().Msg("Terminating PostgreSQL container")
			if err := postgresContainer.Terminate(context.Background()); err != nil {
				log.Error().Err(err).Msg("Failed to terminate PostgreSQL container")
			}
		}
	}
}

func resetTables(t *testing.T, store *db.Store) {
	err := store.DB.Exec("TRUNCATE TABLE temperatures, rooms RESTART IDENTITY CASCADE").Error
	require.NoError(t, err)
}

type testServer struct {
	router http.Handler
	store  *db.Store
}

func setupTest(t *testing.T) *testServer {
	store, _ := SetupPostgres(t)

	statsService := service.NewStatsService(store.Repository)
	roomHandler := handlers.NewRoomHandler(statsService, metrics.New("integration"), 10*time.Second)

	return &testServer{
		router: handlers.NewRouter(roomHandler, handlers.RouterOptions{Logger: log.Logger}),
		store:  store,
	}
}

func (ts *testServer) do(t *testing.T, method, target, body string, out interface{}) int {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	ts.router.ServeHTTP(w, req)

	if out != nil {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), out), w.Body.String())
	}

	return w.Code
}

func (ts *testServer) createRoom(t *testing.T, name string) uint {
	t.Helper()

	var created handlers.CreateRoomResponse
	code := ts.do(t, http.MethodPost, "/api/room", fmt.Sprintf(`{"name":%q}`, name), &created)
	require.Equal(t, http.StatusCreated, code)

	return created.ID
}

func (ts *testServer) addReading(t *testing.T, roomID uint, temperature float64, date string) {
	t.Helper()

	body := fmt.Sprintf(`{"room":%d,"temperature":%v,"date":%q}`, roomID, temperature, date)
	code := ts.do(t, http.MethodPost, "/api/temperature", body, nil)
	require.Equal(t, http.StatusCreated, code)
}

func TestRoomTemperatureService(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container backed integration test in short mode")
	}

	_, cleanup := SetupPostgres(t)
	defer cleanup()

	t.Run("KitchenStatistics", func(t *testing.T) {
		ts := setupTest(t)

		kitchen := ts.createRoom(t, "Kitchen")
		assert.Equal(t, uint(1), kitchen)

		ts.addReading(t, kitchen, 20, "03-01-2024 08:00:00")
		ts.addReading(t, kitchen, 22, "03-01-2024 18:00:00")
		ts.addReading(t, kitchen, 24, "03-02-2024 09:00:00")

		var stat handlers.RoomStatResponse
		code := ts.do(t, http.MethodGet, fmt.Sprintf("/api/room/%d", kitchen), "", &stat)
		require.Equal(t, http.StatusOK, code)
		assert.Equal(t, "Kitchen", stat.Name)
		assert.Equal(t, 2, stat.Days)
		assert.Equal(t, 22.5, stat.Average)

		var daily handlers.DailyAveragesResponse
		code = ts.do(t, http.MethodGet, fmt.Sprintf("/api/room/%d/daily", kitchen), "", &daily)
		require.Equal(t, http.StatusOK, code)
		assert.Equal(t, []handlers.DailyTemperature{
			{Date: "2024-03-01", Average: 21},
			{Date: "2024-03-02", Average: 24},
		}, daily.Temperatures)
	})

	t.Run("GlobalAverageWeighsDaysEqually", func(t *testing.T) {
		ts := setupTest(t)

		kitchen := ts.createRoom(t, "Kitchen")
		office := ts.createRoom(t, "Office")

		ts.addReading(t, kitchen, 10, "03-01-2024 08:00:00")
		ts.addReading(t, kitchen, 20, "03-02-2024 08:00:00")
		ts.addReading(t, office, 20, "03-02-2024 09:00:00")
		ts.addReading(t, office, 20, "03-02-2024 10:00:00")

		var global handlers.GlobalStatResponse
		code := ts.do(t, http.MethodGet, "/api/average", "", &global)
		require.Equal(t, http.StatusOK, code)
		assert.Equal(t, 2, global.Days)
		assert.Equal(t, 15.0, global.Average)
	})

	t.Run("TermAnchoredOnLatestReadingOfAnyRoom", func(t *testing.T) {
		ts := setupTest(t)

		kitchen := ts.createRoom(t, "Kitchen")
		office := ts.createRoom(t, "Office")

		ts.addReading(t, kitchen, 18, "03-12-2024 08:00:00")
		ts.addReading(t, kitchen, 20, "03-14-2024 08:00:00")
		ts.addReading(t, kitchen, 30, "03-15-2024 08:00:00")
		ts.addReading(t, office, 19, "03-20-2024 08:00:00")

		var series handlers.TermSeriesResponse
		code := ts.do(t, http.MethodGet, fmt.Sprintf("/api/room/%d?term=week", kitchen), "", &series)
		require.Equal(t, http.StatusOK, code)
		assert.Equal(t, "week", series.Term)
		assert.Equal(t, []handlers.DailyTemperature{
			{Date: "2024-03-14", Average: 20},
			{Date: "2024-03-15", Average: 30},
		}, series.Temperatures)
		assert.Equal(t, 25.0, series.Average)

		var apiErr handlers.ErrorResponse
		code = ts.do(t, http.MethodGet, fmt.Sprintf("/api/room/%d?term=year", kitchen), "", &apiErr)
		assert.Equal(t, http.StatusBadRequest, code)
	})

	t.Run("ErrorsSurfaceAsStatusCodes", func(t *testing.T) {
		ts := setupTest(t)

		var apiErr handlers.ErrorResponse

		code := ts.do(t, http.MethodGet, "/api/average", "", &apiErr)
		assert.Equal(t, http.StatusNotFound, code)
		assert.Equal(t, "NO_DATA", apiErr.Errors[0].Code)

		code = ts.do(t, http.MethodGet, "/api/room/42", "", &apiErr)
		assert.Equal(t, http.StatusNotFound, code)
		assert.Equal(t, "NOT_FOUND", apiErr.Errors[0].Code)

		code = ts.do(t, http.MethodPost, "/api/temperature", `{"room":42,"temperature":20}`, &apiErr)
		assert.Equal(t, http.StatusConflict, code)
		assert.Equal(t, "CONSTRAINT_VIOLATION", apiErr.Errors[0].Code)

		ts.createRoom(t, "Kitchen")
		code = ts.do(t, http.MethodPost, "/api/room", `{"name":"Kitchen"}`, &apiErr)
		assert.Equal(t, http.StatusConflict, code)
		assert.Equal(t, "CONFLICT", apiErr.Errors[0].Code)
	})

	t.Run("DeletingRoomCascadesToReadings", func(t *testing.T) {
		ts := setupTest(t)

		kitchen := ts.createRoom(t, "Kitchen")
		ts.addReading(t, kitchen, 21, "03-01-2024 08:00:00")

		require.NoError(t, ts.store.DB.Exec("DELETE FROM rooms WHERE id = ?", kitchen).Error)

		var count int64
		require.NoError(t, ts.store.DB.Table("temperatures").Count(&count).Error)
		assert.Zero(t, count)
	})
}
