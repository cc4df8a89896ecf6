package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
	"ulascansenturk/room-temperature-service/internal/metrics"
	"ulascansenturk/room-temperature-service/internal/service"
)

const welcomePage = "<h1>Welcome to rooms temperature control</h1>"

type RoomHandler struct {
	statsService service.StatsService
	metrics      *metrics.Metrics
	timeout      time.Duration
	now          func() time.Time
}

func NewRoomHandler(statsService service.StatsService, m *metrics.Metrics, timeout time.Duration) *RoomHandler {
	return &RoomHandler{
		statsService: statsService,
		metrics:      m,
		timeout:      timeout,
		now:          time.Now,
	}
}

func (h *RoomHandler) Home(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(welcomePage)); err != nil {
		log.Ctx(r.Context()).Error().Err(err).Msg("failed to write response")
	}
}

func (h *RoomHandler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	var req CreateRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if req.Name == nil {
		respondWithError(w, http.StatusBadRequest, "field 'name' is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	room, err := h.statsService.CreateRoom(ctx, *req.Name)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	h.metrics.RoomCreated()

	respondWithJSON(w, http.StatusCreated, CreateRoomResponse{
		ID:      room.ID,
		Message: fmt.Sprintf("Room %s created.", room.Name),
	})
}

func (h *RoomHandler) AddTemperature(w http.ResponseWriter, r *http.Request) {
	var req AddTemperatureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if req.Temperature == nil {
		respondWithError(w, http.StatusBadRequest, "field 'temperature' is required")
		return
	}
	if req.Room == nil {
		respondWithError(w, http.StatusBadRequest, "field 'room' is required")
		return
	}

	at, parsed := parseReadingDate(req.Date, h.now)
	if !parsed && req.Date != "" {
		log.Ctx(r.Context()).Debug().Str("date", req.Date).Msg("unparsable reading date, using current time")
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	if err := h.statsService.RecordReading(ctx, *req.Room, *req.Temperature, at); err != nil {
		h.metrics.ReadingRecorded(false)
		respondWithServiceError(w, r, err)
		return
	}

	h.metrics.ReadingRecorded(true)

	respondWithJSON(w, http.StatusCreated, MessageResponse{Message: "Temperature added."})
}

// GetRoom serves the all-time statistics of a room, or its term series when the term query
// parameter is present.
func (h *RoomHandler) GetRoom(w http.ResponseWriter, r *http.Request) {
	roomID, ok := roomIDFromPath(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	if r.URL.Query().Has("term") {
		series, err := h.statsService.TermSeries(ctx, roomID, r.URL.Query().Get("term"))
		if err != nil {
			respondWithServiceError(w, r, err)
			return
		}

		respondWithJSON(w, http.StatusOK, TermSeriesResponse{
			Name:         series.Name,
			Term:         series.Window.Name,
			Temperatures: dailyTemperatures(series.Days),
			Average:      round2(series.Average),
		})
		return
	}

	stat, err := h.statsService.RoomStat(ctx, roomID)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, RoomStatResponse{
		Name:    stat.Name,
		Average: round2(stat.Average),
		Days:    stat.Days,
	})
}

func (h *RoomHandler) GetRoomDaily(w http.ResponseWriter, r *http.Request) {
	roomID, ok := roomIDFromPath(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	daily, err := h.statsService.DailyAverages(ctx, roomID)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, DailyAveragesResponse{
		Name:         daily.Name,
		Temperatures: dailyTemperatures(daily.Days),
	})
}

func (h *RoomHandler) GetGlobalAverage(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	stat, err := h.statsService.GlobalStat(ctx)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, GlobalStatResponse{
		Average: round2(stat.Average),
		Days:    stat.Days,
	})
}

func (h *RoomHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	if err := h.statsService.Health(ctx); err != nil {
		log.Ctx(r.Context()).Warn().Err(err).Msg("health check failed")
		respondWithError(w, http.StatusServiceUnavailable, "store unavailable: "+err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

func roomIDFromPath(w http.ResponseWriter, r *http.Request) (uint, bool) {
	raw := mux.Vars(r)["room_id"]

	id, err := strconv.ParseUint(raw, 10, 0)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, fmt.Sprintf("invalid room id %q", raw))
		return 0, false
	}

	return uint(id), true
}
