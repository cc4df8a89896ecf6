package readingstore

import (
	"fmt"
	"time"

	"ulascansenturk/room-temperature-service/internal/aggregation"
)

// Postgres hands DATE() and MAX() results back as time.Time, SQLite as text.
var dayLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02T15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
	time.RFC3339Nano,
}

// calendarDay scans a nullable date or timestamp column and keeps its UTC calendar date.
type calendarDay struct {
	Time  time.Time
	Valid bool
}

func (d *calendarDay) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		d.Time, d.Valid = time.Time{}, false
		return nil
	case time.Time:
		d.Time, d.Valid = aggregation.Day(v), true
		return nil
	case []byte:
		return d.parse(string(v))
	case string:
		return d.parse(v)
	default:
		return fmt.Errorf("unsupported date value of type %T", value)
	}
}

func (d *calendarDay) parse(s string) error {
	for _, layout := range dayLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time, d.Valid = aggregation.Day(t), true
			return nil
		}
	}

	return fmt.Errorf("unparsable date value %q", s)
}
