package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	// Placeholders keep the process bootable without credentials; any real query
	// against them fails at runtime.
	PlaceholderBackendURL    = "postgres://postgres@placeholder.supabase.co:5432/postgres"
	PlaceholderBackendAPIKey = "placeholder-key"
)

type Config struct {
	App     AppConfig
	Server  ServerConfig
	Backend BackendConfig
	Console ConsoleConfig
}

type AppConfig struct {
	Name        string
	Version     string
	Environment string
	Timezone    string
}

type ServerConfig struct {
	Port           string
	RequestTimeout time.Duration
	AllowOrigins   []string
}

type BackendConfig struct {
	URL             string
	APIKey          string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type ConsoleConfig struct {
	SearchDebounce  time.Duration
	MinQueryLength  int
	ResultLimit     int
	SuccessReset    time.Duration
	HistoryLimit    int
	RecentLimit     int
	SessionCapacity int
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Driver Stamp Console"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
			Timezone:    getEnv("APP_TIMEZONE", "America/Mexico_City"),
		},
		Server: ServerConfig{
			Port:           getEnv("PORT", "8080"),
			RequestTimeout: getEnvDuration("SERVER_REQUEST_TIMEOUT_MS", 10*time.Second, time.Millisecond),
			AllowOrigins:   []string{getEnv("SERVER_ALLOW_ORIGIN", "http://localhost:8080")},
		},
		Backend: BackendConfig{
			URL:             getEnv("BACKEND_URL", PlaceholderBackendURL),
			APIKey:          getEnv("BACKEND_API_KEY", PlaceholderBackendAPIKey),
			SSLMode:         getEnv("BACKEND_SSL_MODE", "require"),
			MaxOpenConns:    getEnvInt("BACKEND_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    getEnvInt("BACKEND_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getEnvDuration("BACKEND_CONN_MAX_LIFETIME", 300*time.Second, time.Second),
		},
		Console: ConsoleConfig{
			SearchDebounce:  getEnvDuration("CONSOLE_SEARCH_DEBOUNCE_MS", 500*time.Millisecond, time.Millisecond),
			MinQueryLength:  getEnvInt("CONSOLE_MIN_QUERY_LENGTH", 3),
			ResultLimit:     getEnvInt("CONSOLE_RESULT_LIMIT", 5),
			SuccessReset:    getEnvDuration("CONSOLE_SUCCESS_RESET_MS", 2*time.Second, time.Millisecond),
			HistoryLimit:    getEnvInt("CONSOLE_HISTORY_LIMIT", 20),
			RecentLimit:     getEnvInt("CONSOLE_RECENT_LIMIT", 5),
			SessionCapacity: getEnvInt("CONSOLE_SESSION_CAPACITY", 256),
		},
	}

	return cfg, nil
}

// Location resolves the configured timezone, falling back to the host zone.
func (c AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}

	return loc
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil && i > 0 {
			return i
		}
	}

	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration, unit time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil && i > 0 {
			return time.Duration(i) * unit
		}
	}

	return defaultVal
}
