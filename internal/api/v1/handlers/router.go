package handlers

import (
	"fmt"
	"net/http"

	ghandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"ulascansenturk/room-temperature-service/internal/metrics"
)

type RouterOptions struct {
	Logger         zerolog.Logger
	Metrics        *metrics.Metrics
	AllowedOrigins []string
}

type recoveryLogger struct {
	logger zerolog.Logger
}

func (l recoveryLogger) Println(v ...interface{}) {
	l.logger.Error().Msg(fmt.Sprint(v...))
}

func NewRouter(h *RoomHandler, opts RouterOptions) http.Handler {
	logged := requestLogger(opts.Logger)
	measured := instrument(opts.Metrics)

	// Use only applies to matched routes, so the fallbacks are wrapped by hand.
	r := mux.NewRouter()
	r.NotFoundHandler = logged(measured(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respondWithError(w, http.StatusNotFound, "not found")
	})))
	r.MethodNotAllowedHandler = logged(measured(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respondWithError(w, http.StatusMethodNotAllowed, "method not allowed")
	})))

	r.Use(logged, measured)

	r.HandleFunc("/", h.Home).Methods(http.MethodGet)
	r.HandleFunc("/health", h.Health).Methods(http.MethodGet)
	if opts.Metrics != nil {
		r.Handle("/metrics", opts.Metrics.Handler()).Methods(http.MethodGet)
	}

	r.HandleFunc("/api/room", h.CreateRoom).Methods(http.MethodPost)
	r.HandleFunc("/api/temperature", h.AddTemperature).Methods(http.MethodPost)
	r.HandleFunc("/api/room/{room_id}", h.GetRoom).Methods(http.MethodGet)
	r.HandleFunc("/api/room/{room_id}/daily", h.GetRoomDaily).Methods(http.MethodGet)
	r.HandleFunc("/api/average", h.GetGlobalAverage).Methods(http.MethodGet)

	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", requestIDHeader},
		ExposedHeaders: []string{requestIDHeader},
	})

	var handler http.Handler = r
	handler = c.Handler(handler)
	handler = ghandlers.ProxyHeaders(handler)
	handler = ghandlers.RecoveryHandler(
		ghandlers.RecoveryLogger(recoveryLogger{logger: opts.Logger}),
	)(handler)

	return handler
}
