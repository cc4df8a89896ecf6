// Package db opens the reading store selected by configuration and creates its schema.
package db

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"ulascansenturk/room-temperature-service/config"
	"ulascansenturk/room-temperature-service/internal/db/memstore"
	"ulascansenturk/room-temperature-service/internal/db/readingstore"
)

// Store is an opened reading store. Close releases the underlying connection pool.
type Store struct {
	Repository readingstore.Repository
	DB         *gorm.DB
}

func Open(conf *config.Config) (*Store, error) {
	if conf.DBDriver == config.DriverMemory {
		return &Store{Repository: memstore.New(conf.RoomUniqueNames)}, nil
	}

	dialector, err := dialectorFor(conf)
	if err != nil {
		return nil, err
	}

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", conf.DBDriver, err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}

	if conf.DBDriver == config.DriverSQLite {
		// SQLite serialises writers.
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxIdleConns(25)
		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetConnMaxLifetime(5 * time.Minute)
		sqlDB.SetConnMaxIdleTime(3 * time.Minute)
	}

	if err := readingstore.Migrate(gormDB, conf.RoomUniqueNames); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &Store{
		Repository: readingstore.NewRepository(gormDB),
		DB:         gormDB,
	}, nil
}

func (s *Store) Close() error {
	if s.DB == nil {
		return nil
	}

	sqlDB, err := s.DB.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}

func dialectorFor(conf *config.Config) (gorm.Dialector, error) {
	switch conf.DBDriver {
	case config.DriverPostgres:
		return postgres.Open(conf.PostgresDSN()), nil
	case config.DriverSQLite:
		return sqlite.Open(fmt.Sprintf("file:%s?_foreign_keys=1", conf.SQLitePath)), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", conf.DBDriver)
	}
}
