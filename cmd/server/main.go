package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"ulascansenturk/room-temperature-service/config"
	"ulascansenturk/room-temperature-service/internal/api/v1/handlers"
	"ulascansenturk/room-temperature-service/internal/db"
	"ulascansenturk/room-temperature-service/internal/metrics"
	"ulascansenturk/room-temperature-service/internal/service"
)

const shutdownDuration = 30 * time.Second

func main() {
	conf, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	logLevel, err := zerolog.ParseLevel(conf.LogLevel)
	if err != nil || conf.LogLevel == "" {
		logLevel = zerolog.InfoLevel
	}
	logger := zerolog.New(os.Stdout).
		Level(logLevel).
		With().
		Str("service_name", conf.ServiceName).
		Timestamp().
		Logger()
	log.Logger = logger
	zerolog.DefaultContextLogger = &logger

	ctx, mainCtxStop := context.WithCancel(context.Background())

	store, err := db.Open(conf)
	if err != nil {
		logger.Fatal().Err(err).Str("driver", conf.DBDriver).Msg("failed to initialize database")
	}
	logger.Info().Str("driver", conf.DBDriver).Bool("unique_room_names", conf.RoomUniqueNames).Msg("store ready")

	statsService := service.NewStatsService(store.Repository)
	m := metrics.New(conf.ServiceName)

	roomHandler := handlers.NewRoomHandler(statsService, m, conf.HTTPTimeoutDuration())
	router := handlers.NewRouter(roomHandler, handlers.RouterOptions{
		Logger:         logger,
		Metrics:        m,
		AllowedOrigins: conf.CORSAllowedOrigins,
	})

	httpServer := &http.Server{
		Addr:              conf.ServerAddress,
		Handler:           router,
		ReadHeaderTimeout: conf.HTTPTimeoutDuration(),
	}

	handleSignals(ctx, mainCtxStop, func(shutdownCtx context.Context) {
		shutdownErr := httpServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			log.Fatal().Err(shutdownErr).Msg("server shutdown failed")
		}

		if closeErr := store.Close(); closeErr != nil {
			log.Error().Err(closeErr).Msg("failed to close store")
		}
	})

	log.Info().Msgf("started server on %s", conf.ServerAddress)

	serverErr := httpServer.ListenAndServe()
	if serverErr != nil && !errors.Is(serverErr, http.ErrServerClosed) {
		log.Err(serverErr).Msg("server stopped")
		mainCtxStop()
	}
	<-ctx.Done()
}

// handleSignals runs callback with a context bounded by shutdownDuration once a termination
// signal arrives.
func handleSignals(ctx context.Context, cancelCtx context.CancelFunc, callback func(shutdownCtx context.Context)) {
	sig := make(chan os.Signal, 1)

	signal.Notify(sig, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sig

		shutdownCtx, cancel := context.WithTimeout(ctx, shutdownDuration)

		go func() {
			<-shutdownCtx.Done()

			if shutdownCtx.Err() == context.DeadlineExceeded {
				panic("graceful shutdown timed out.. forcing exit.")
			}
		}()

		callback(shutdownCtx)

		cancel()
		cancelCtx()
	}()
}
