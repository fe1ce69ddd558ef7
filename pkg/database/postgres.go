package database

import (
	"fmt"
	"net/url"
	"time"

	"driverStamps/pkg/config"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// InitPostgres opens the hosted backend. The initial ping is skipped so the
// process boots on placeholder credentials; the first query surfaces any
// connection problem instead.
func InitPostgres(cfg *config.Config) (*gorm.DB, error) {
	dsn, err := BuildDSN(cfg.Backend)
	if err != nil {
		return nil, err
	}

	level := gormlogger.Warn
	if cfg.App.Environment == "production" {
		level = gormlogger.Error
	}

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		DisableAutomaticPing: true,
		Logger:               gormlogger.Default.LogMode(level),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open backend: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql db: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.Backend.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Backend.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Backend.ConnMaxLifetime)

	return db, nil
}

// BuildDSN places the API key into the backend URL as the connection password.
func BuildDSN(cfg config.BackendConfig) (string, error) {
	u, err := url.Parse(cfg.URL)
	if err != nil {
		return "", fmt.Errorf("invalid backend url: %w", err)
	}
	if u.Scheme != "postgres" && u.Scheme != "postgresql" {
		return "", fmt.Errorf("invalid backend url scheme %q", u.Scheme)
	}

	user := "postgres"
	if u.User != nil && u.User.Username() != "" {
		user = u.User.Username()
	}
	u.User = url.UserPassword(user, cfg.APIKey)

	q := u.Query()
	if q.Get("sslmode") == "" && cfg.SSLMode != "" {
		q.Set("sslmode", cfg.SSLMode)
	}
	u.RawQuery = q.Encode()

	return u.String(), nil
}

// Close releases the pool behind db.
func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}
