package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"ulascansenturk/room-temperature-service/internal/aggregation"
	"ulascansenturk/room-temperature-service/internal/db/readingstore"
)

type RoomStat struct {
	RoomID  uint
	Name    string
	Days    int
	Average float64
}

type TermSeries struct {
	RoomID  uint
	Name    string
	Window  aggregation.Window
	Days    []aggregation.DailyAverage
	Average float64
}

type RoomDaily struct {
	RoomID uint
	Name   string
	Days   []aggregation.DailyAverage
}

type GlobalStat struct {
	Days    int
	Average float64
}

type StatsService interface {
	CreateRoom(ctx context.Context, name string) (*readingstore.Room, error)
	RecordReading(ctx context.Context, roomID uint, temperature float64, at time.Time) error
	DailyAverages(ctx context.Context, roomID uint) (RoomDaily, error)
	RoomStat(ctx context.Context, roomID uint) (RoomStat, error)
	TermSeries(ctx context.Context, roomID uint, window string) (TermSeries, error)
	GlobalStat(ctx context.Context) (GlobalStat, error)
	Health(ctx context.Context) error
}

type statsService struct {
	repo readingstore.Repository
}

func NewStatsService(repo readingstore.Repository) StatsService {
	return &statsService{
		repo: repo,
	}
}

func (s *statsService) CreateRoom(ctx context.Context, name string) (*readingstore.Room, error) {
	room, err := s.repo.CreateRoom(ctx, name)
	if err != nil {
		return nil, err
	}

	log.Ctx(ctx).Info().Uint("room_id", room.ID).Str("name", room.Name).Msg("room created")

	return room, nil
}

func (s *statsService) RecordReading(ctx context.Context, roomID uint, temperature float64, at time.Time) error {
	return s.repo.AddReading(ctx, roomID, temperature, at.UTC())
}

func (s *statsService) DailyAverages(ctx context.Context, roomID uint) (RoomDaily, error) {
	room, err := s.repo.GetRoom(ctx, roomID)
	if err != nil {
		return RoomDaily{}, err
	}

	days, err := s.roomDays(ctx, roomID)
	if err != nil {
		return RoomDaily{}, err
	}

	return RoomDaily{RoomID: room.ID, Name: room.Name, Days: days}, nil
}

func (s *statsService) RoomStat(ctx context.Context, roomID uint) (RoomStat, error) {
	room, err := s.repo.GetRoom(ctx, roomID)
	if err != nil {
		return RoomStat{}, err
	}

	days, err := s.roomDays(ctx, roomID)
	if err != nil {
		return RoomStat{}, err
	}

	summary, err := aggregation.Rollup(days)
	if err != nil {
		return RoomStat{}, fmt.Errorf("room %d: %w", roomID, err)
	}

	return RoomStat{
		RoomID:  room.ID,
		Name:    room.Name,
		Days:    summary.Days,
		Average: summary.Average,
	}, nil
}

// TermSeries anchors the window on the newest reading of the whole store, not of the room.
func (s *statsService) TermSeries(ctx context.Context, roomID uint, window string) (TermSeries, error) {
	w, err := aggregation.ResolveWindow(window)
	if err != nil {
		return TermSeries{}, err
	}

	room, err := s.repo.GetRoom(ctx, roomID)
	if err != nil {
		return TermSeries{}, err
	}

	latest, ok, err := s.repo.LatestReadingDate(ctx)
	if err != nil {
		return TermSeries{}, err
	}
	if !ok {
		return TermSeries{}, fmt.Errorf("room %d %s: %w", roomID, w.Name, aggregation.ErrNoData)
	}

	days, err := s.roomDays(ctx, roomID)
	if err != nil {
		return TermSeries{}, err
	}

	kept := aggregation.Trailing(days, latest, w)
	summary, err := aggregation.Rollup(kept)
	if err != nil {
		return TermSeries{}, fmt.Errorf("room %d %s: %w", roomID, w.Name, err)
	}

	return TermSeries{
		RoomID:  room.ID,
		Name:    room.Name,
		Window:  w,
		Days:    kept,
		Average: summary.Average,
	}, nil
}

func (s *statsService) GlobalStat(ctx context.Context) (GlobalStat, error) {
	days, err := s.repo.DailyAverages(ctx, readingstore.DailyFilter{})
	if err != nil {
		return GlobalStat{}, err
	}

	summary, err := aggregation.Rollup(days)
	if err != nil {
		return GlobalStat{}, fmt.Errorf("global: %w", err)
	}

	return GlobalStat{
		Days:    summary.Days,
		Average: summary.Average,
	}, nil
}

func (s *statsService) roomDays(ctx context.Context, roomID uint) ([]aggregation.DailyAverage, error) {
	return s.repo.DailyAverages(ctx, readingstore.DailyFilter{RoomID: &roomID, PerRoom: true})
}

func (s *statsService) Health(ctx context.Context) error {
	return s.repo.Ping(ctx)
}
