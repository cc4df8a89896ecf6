package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMemory   = "memory"
)

type Config struct {
	ServiceName   string
	ServerAddress string

	DBDriver   string
	DBURL      string
	DBName     string
	DBPassword string
	DBUser     string
	DBPort     string
	DBHost     string
	SQLitePath string

	RoomUniqueNames bool

	Env         string
	LogLevel    string
	HTTPTimeout int32

	CORSAllowedOrigins []string
}

func LoadConfig() (*Config, error) {
	v := viper.New()

	v.SetDefault("SERVICE_NAME", "room-temperature-service")

	v.SetDefault("SERVER_ADDRESS", "0.0.0.0:5000")
	v.SetDefault("DATABASE_DRIVER", DriverPostgres)
	v.SetDefault("DATABASE_PORT", "5432")
	v.SetDefault("SQLITE_PATH", "rooms.db")
	v.SetDefault("ROOM_UNIQUE_NAMES", false)
	v.SetDefault("HTTP_TIMEOUT", 30)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	v.AutomaticEnv()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Warn().Msg("No .env file found, using environment variables only")
		} else {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		log.Info().Str("file", v.ConfigFileUsed()).Msg("Config file loaded")
	}

	config := &Config{
		ServiceName:        v.GetString("SERVICE_NAME"),
		ServerAddress:      v.GetString("SERVER_ADDRESS"),
		DBDriver:           strings.ToLower(strings.TrimSpace(v.GetString("DATABASE_DRIVER"))),
		DBURL:              v.GetString("DATABASE_URL"),
		DBName:             v.GetString("DATABASE_NAME"),
		DBPassword:         v.GetString("DATABASE_PASSWORD"),
		DBUser:             v.GetString("DATABASE_USER"),
		DBPort:             v.GetString("DATABASE_PORT"),
		DBHost:             v.GetString("DATABASE_HOST"),
		SQLitePath:         v.GetString("SQLITE_PATH"),
		RoomUniqueNames:    v.GetBool("ROOM_UNIQUE_NAMES"),
		Env:                v.GetString("ENV"),
		LogLevel:           v.GetString("LOG_LEVEL"),
		HTTPTimeout:        v.GetInt32("HTTP_TIMEOUT"),
		CORSAllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
	}

	switch config.DBDriver {
	case DriverPostgres, DriverSQLite, DriverMemory:
	default:
		return nil, fmt.Errorf("unsupported DATABASE_DRIVER %q", config.DBDriver)
	}

	return config, nil
}

func (c *Config) HTTPTimeoutDuration() time.Duration {
	return time.Duration(c.HTTPTimeout) * time.Second
}

// PostgresDSN prefers DATABASE_URL over the discrete connection keys.
func (c *Config) PostgresDSN() string {
	if c.DBURL != "" {
		return c.DBURL
	}

	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName,
	)
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
