package readingstore

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"ulascansenturk/room-temperature-service/internal/aggregation"
	"ulascansenturk/room-temperature-service/internal/apperrors"
)

type Repository interface {
	CreateRoom(ctx context.Context, name string) (*Room, error)
	GetRoom(ctx context.Context, id uint) (*Room, error)
	AddReading(ctx context.Context, roomID uint, temperature float64, at time.Time) error
	DailyAverages(ctx context.Context, filter DailyFilter) ([]aggregation.DailyAverage, error)
	// LatestReadingDate reports the calendar date of the newest reading across every room.
	LatestReadingDate(ctx context.Context) (time.Time, bool, error)
	Ping(ctx context.Context) error
}

type ReadingSQLRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &ReadingSQLRepository{db: db}
}

// Migrate creates the tables once at startup. With uniqueNames a unique index is added on
// rooms.name.
func Migrate(db *gorm.DB, uniqueNames bool) error {
	if err := db.AutoMigrate(&Room{}, &Reading{}); err != nil {
		return errors.Wrap(err, "auto migrate")
	}

	if uniqueNames {
		if err := db.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_rooms_name ON rooms (name)").Error; err != nil {
			return errors.Wrap(err, "create unique room name index")
		}
	}

	return nil
}

func (r *ReadingSQLRepository) CreateRoom(ctx context.Context, name string) (*Room, error) {
	room := Room{Name: name}

	err := r.db.WithContext(ctx).Create(&room).Error
	if err != nil {
		return nil, translate(err, "create room %q", name)
	}

	return &room, nil
}

func (r *ReadingSQLRepository) GetRoom(ctx context.Context, id uint) (*Room, error) {
	var room Room
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&room).Error
	if err != nil {
		return nil, translate(err, "get room %d", id)
	}

	return &room, nil
}

func (r *ReadingSQLRepository) AddReading(ctx context.Context, roomID uint, temperature float64, at time.Time) error {
	reading := Reading{
		RoomID:      roomID,
		Temperature: temperature,
		Date:        at.UTC(),
	}

	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&reading).Error
	if err != nil {
		return translate(err, "add reading for room %d", roomID)
	}

	return nil
}

func (r *ReadingSQLRepository) DailyAverages(ctx context.Context, filter DailyFilter) ([]aggregation.DailyAverage, error) {
	query := r.db.WithContext(ctx).Model(&Reading{})

	if filter.PerRoom {
		query = query.
			Select("room_id, DATE(date) AS day, AVG(temperature) AS average").
			Group("room_id").
			Group("DATE(date)").
			Order("room_id").
			Order("day")
	} else {
		query = query.
			Select("DATE(date) AS day, AVG(temperature) AS average").
			Group("DATE(date)").
			Order("day")
	}

	if filter.RoomID != nil {
		query = query.Where("room_id = ?", *filter.RoomID)
	}

	rows, err := query.Rows()
	if err != nil {
		return nil, translate(err, "query daily averages")
	}
	defer rows.Close()

	days := make([]aggregation.DailyAverage, 0)
	for rows.Next() {
		var (
			d   aggregation.DailyAverage
			day calendarDay
		)

		if filter.PerRoom {
			err = rows.Scan(&d.RoomID, &day, &d.Average)
		} else {
			err = rows.Scan(&day, &d.Average)
		}
		if err != nil {
			return nil, translate(err, "scan daily average")
		}

		d.Date = day.Time
		days = append(days, d)
	}

	if err := rows.Err(); err != nil {
		return nil, translate(err, "iterate daily averages")
	}

	return days, nil
}

func (r *ReadingSQLRepository) LatestReadingDate(ctx context.Context) (time.Time, bool, error) {
	var latest calendarDay

	row := r.db.WithContext(ctx).Model(&Reading{}).Select("MAX(date)").Row()
	if err := row.Scan(&latest); err != nil {
		return time.Time{}, false, translate(err, "query latest reading date")
	}

	return latest.Time, latest.Valid, nil
}

func (r *ReadingSQLRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return translate(err, "get sql handle")
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		return translate(err, "ping")
	}

	return nil
}

// translate classifies driver and gorm errors into application error kinds.
func translate(err error, format string, args ...interface{}) error {
	msg := fmt.Sprintf(format, args...)

	switch {
	case stderrors.Is(err, gorm.ErrRecordNotFound), stderrors.Is(err, sql.ErrNoRows):
		return errors.Wrap(apperrors.ErrNotFound, msg)
	case stderrors.Is(err, gorm.ErrDuplicatedKey):
		return errors.Wrap(fmt.Errorf("%w: %w", apperrors.ErrConflict, err), msg)
	case stderrors.Is(err, gorm.ErrForeignKeyViolated):
		return errors.Wrap(fmt.Errorf("%w: %w: %w", apperrors.ErrStore, apperrors.ErrConstraint, err), msg)
	default:
		return errors.Wrap(fmt.Errorf("%w: %w", apperrors.ErrStore, err), msg)
	}
}
