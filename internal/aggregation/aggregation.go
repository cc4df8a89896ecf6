// Package aggregation holds the store independent stages used to turn readings into
// statistics: daily grouping, rollup and trailing window selection.
package aggregation

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"ulascansenturk/room-temperature-service/internal/apperrors"
)

var (
	ErrNoData        = fmt.Errorf("average over an empty set: %w", apperrors.ErrNoData)
	ErrUnknownWindow = errors.New("unknown window")
)

// Sample is one temperature observation as seen by the aggregation stages.
type Sample struct {
	RoomID      uint
	Temperature float64
	TakenAt     time.Time
}

// DailyAverage is the mean temperature of one calendar day. RoomID is zero when the
// average spans every room.
type DailyAverage struct {
	RoomID  uint
	Date    time.Time
	Average float64
}

type Summary struct {
	Days    int
	Average float64
}

type Window struct {
	Name string
	Days int
}

var windows = map[string]Window{
	"week":  {Name: "week", Days: 7},
	"month": {Name: "month", Days: 30},
}

// Day truncates t to its UTC calendar date.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ResolveWindow(name string) (Window, error) {
	w, ok := windows[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Window{}, fmt.Errorf("%w %q, expected week or month: %w", ErrUnknownWindow, name, apperrors.ErrInvalidInput)
	}

	return w, nil
}

// GroupDaily groups samples by calendar day, and by room when perRoom is set, and averages
// each group. The result is ordered by room then date.
func GroupDaily(samples []Sample, perRoom bool) []DailyAverage {
	type key struct {
		room uint
		day  time.Time
	}
	type acc struct {
		sum   float64
		count int
	}

	groups := make(map[key]*acc)
	for _, s := range samples {
		k := key{day: Day(s.TakenAt)}
		if perRoom {
			k.room = s.RoomID
		}

		a, ok := groups[k]
		if !ok {
			a = &acc{}
			groups[k] = a
		}
		a.sum += s.Temperature
		a.count++
	}

	days := make([]DailyAverage, 0, len(groups))
	for k, a := range groups {
		days = append(days, DailyAverage{
			RoomID:  k.room,
			Date:    k.day,
			Average: a.sum / float64(a.count),
		})
	}
	SortDaily(days)

	return days
}

func SortDaily(days []DailyAverage) {
	sort.Slice(days, func(i, j int) bool {
		if days[i].RoomID != days[j].RoomID {
			return days[i].RoomID < days[j].RoomID
		}
		return days[i].Date.Before(days[j].Date)
	})
}

// Rollup counts the days and averages their daily means, so every day weighs the same
// regardless of how many readings it holds.
func Rollup(days []DailyAverage) (Summary, error) {
	if len(days) == 0 {
		return Summary{}, ErrNoData
	}

	var sum float64
	for _, d := range days {
		sum += d.Average
	}

	return Summary{
		Days:    len(days),
		Average: sum / float64(len(days)),
	}, nil
}

// Trailing keeps the days strictly after Day(latest) minus the window length.
func Trailing(days []DailyAverage, latest time.Time, w Window) []DailyAverage {
	cutoff := Day(latest).AddDate(0, 0, -w.Days)

	kept := make([]DailyAverage, 0, len(days))
	for _, d := range days {
		if Day(d.Date).After(cutoff) {
			kept = append(kept, d)
		}
	}

	return kept
}
