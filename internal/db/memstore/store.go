// Package memstore keeps rooms and readings in process memory. It satisfies
// readingstore.Repository so the service can run without a database.
package memstore

import (
	"context"
	"fmt"
	"sync"
	"time"

	"ulascansenturk/room-temperature-service/internal/aggregation"
	"ulascansenturk/room-temperature-service/internal/apperrors"
	"ulascansenturk/room-temperature-service/internal/db/readingstore"
)

type Store struct {
	mu          sync.RWMutex
	rooms       map[uint]readingstore.Room
	samples     []aggregation.Sample
	nextID      uint
	uniqueNames bool
}

func New(uniqueNames bool) *Store {
	return &Store{
		rooms:       make(map[uint]readingstore.Room),
		nextID:      1,
		uniqueNames: uniqueNames,
	}
}

func (s *Store) CreateRoom(_ context.Context, name string) (*readingstore.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.uniqueNames {
		for _, r := range s.rooms {
			if r.Name == name {
				return nil, fmt.Errorf("create room %q: %w", name, apperrors.ErrConflict)
			}
		}
	}

	room := readingstore.Room{ID: s.nextID, Name: name}
	s.rooms[room.ID] = room
	s.nextID++

	return &room, nil
}

func (s *Store) GetRoom(_ context.Context, id uint) (*readingstore.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	room, ok := s.rooms[id]
	if !ok {
		return nil, fmt.Errorf("get room %d: %w", id, apperrors.ErrNotFound)
	}

	return &room, nil
}

func (s *Store) AddReading(_ context.Context, roomID uint, temperature float64, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.rooms[roomID]; !ok {
		return fmt.Errorf("add reading for room %d: %w: %w", roomID, apperrors.ErrStore, apperrors.ErrConstraint)
	}

	s.samples = append(s.samples, aggregation.Sample{
		RoomID:      roomID,
		Temperature: temperature,
		TakenAt:     at.UTC(),
	})

	return nil
}

func (s *Store) DailyAverages(_ context.Context, filter readingstore.DailyFilter) ([]aggregation.DailyAverage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	samples := s.samples
	if filter.RoomID != nil {
		samples = make([]aggregation.Sample, 0, len(s.samples))
		for _, sample := range s.samples {
			if sample.RoomID == *filter.RoomID {
				samples = append(samples, sample)
			}
		}
	}

	return aggregation.GroupDaily(samples, filter.PerRoom), nil
}

func (s *Store) LatestReadingDate(_ context.Context) (time.Time, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.samples) == 0 {
		return time.Time{}, false, nil
	}

	latest := s.samples[0].TakenAt
	for _, sample := range s.samples[1:] {
		if sample.TakenAt.After(latest) {
			latest = sample.TakenAt
		}
	}

	return aggregation.Day(latest), true, nil
}

func (s *Store) Ping(_ context.Context) error {
	return nil
}

var _ readingstore.Repository = (*Store)(nil)
