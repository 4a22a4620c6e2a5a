package utils

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	StoreDriverFile     = "file"
	StoreDriverPostgres = "postgres"
	StoreDriverSQLite   = "sqlite"
)

type Config struct {
	App      AppConfig
	Store    StoreConfig
	Database DatabaseConfig
}

type AppConfig struct {
	Name            string
	Port            string `validate:"required"`
	Debug           bool
	LogPath         string
	StaticDir       string
	CORSOrigin      string
	ShutdownTimeout time.Duration
}

type StoreConfig struct {
	Driver      string `validate:"oneof=file postgres sqlite"`
	ReviewsFile string
	SQLitePath  string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

// LoadEnvFile loads the given dotenv files into the process environment.
// Missing files are skipped.
func LoadEnvFile(filenames ...string) error {
	if len(filenames) == 0 {
		filenames = []string{".env"}
	}

	for _, name := range filenames {
		if err := godotenv.Load(name); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load env file %s: %w", name, err)
		}
	}

	return nil
}

// LoadConfig reads configuration from the environment (and any flags bound
// to v) on top of the defaults below.
func LoadConfig(v *viper.Viper) (*Config, error) {
	v.SetDefault("APP_NAME", "game-reviews")
	v.SetDefault("PORT", "3000")
	v.SetDefault("DEBUG", false)
	v.SetDefault("LOG_PATH", "logs/")
	v.SetDefault("STATIC_DIR", "public")
	v.SetDefault("CORS_ORIGIN", "*")
	v.SetDefault("SHUTDOWN_TIMEOUT", 10*time.Second)
	v.SetDefault("STORE_DRIVER", StoreDriverFile)
	v.SetDefault("REVIEWS_FILE", "./reviews.json")
	v.SetDefault("SQLITE_PATH", "reviews.db")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_MAX_CONNS", 10)

	v.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:            v.GetString("APP_NAME"),
			Port:            v.GetString("PORT"),
			Debug:           v.GetBool("DEBUG"),
			LogPath:         v.GetString("LOG_PATH"),
			StaticDir:       v.GetString("STATIC_DIR"),
			CORSOrigin:      v.GetString("CORS_ORIGIN"),
			ShutdownTimeout: v.GetDuration("SHUTDOWN_TIMEOUT"),
		},
		Store: StoreConfig{
			Driver:      v.GetString("STORE_DRIVER"),
			ReviewsFile: v.GetString("REVIEWS_FILE"),
			SQLitePath:  v.GetString("SQLITE_PATH"),
		},
		Database: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			Name:     v.GetString("DB_NAME"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASS"),
			MaxConns: v.GetInt32("DB_MAX_CONNS"),
		},
	}

	if errs := ValidateStruct(config); len(errs) > 0 {
		return nil, fmt.Errorf("invalid config: %s", FormatValidationErrors(errs))
	}

	return config, nil
}
