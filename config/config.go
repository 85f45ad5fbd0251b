package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/vnkhanh/study-assistant-backend/models"
)

type Config struct {
	Port        string
	Env         string
	CORSOrigins []string
	MaxUploadMB int64

	DB       DBConfig
	Supabase SupabaseConfig
}

type DBConfig struct {
	Driver     string // postgres | sqlite | bolt
	Host       string
	Port       string
	User       string
	Password   string
	Name       string
	TimeZone   string
	SQLitePath string
	BoltPath   string
}

type SupabaseConfig struct {
	URL    string
	Key    string
	Bucket string
}

// Enabled reports whether uploads should be archived.
func (s SupabaseConfig) Enabled() bool {
	return s.URL != "" && s.Key != ""
}

// Load reads the configuration from the environment. Call godotenv first to pick up .env.
func Load() Config {
	return Config{
		Port:        getEnv("PORT", "8080"),
		Env:         getEnv("APP_ENV", "development"),
		CORSOrigins: splitList(getEnv("CORS_ORIGINS", "*")),
		MaxUploadMB: getEnvInt("MAX_UPLOAD_MB", 20),
		DB: DBConfig{
			Driver:     strings.ToLower(getEnv("DB_DRIVER", "postgres")),
			Host:       os.Getenv("DB_HOST"),
			Port:       os.Getenv("DB_PORT"),
			User:       os.Getenv("DB_USER"),
			Password:   os.Getenv("DB_PASSWORD"),
			Name:       os.Getenv("DB_NAME"),
			TimeZone:   getEnv("DB_TIMEZONE", "UTC"),
			SQLitePath: getEnv("SQLITE_PATH", "study.db"),
			BoltPath:   getEnv("BOLT_PATH", "data/study.bolt"),
		},
		Supabase: SupabaseConfig{
			URL:    os.Getenv("SUPABASE_URL"),
			Key:    os.Getenv("SUPABASE_KEY"),
			Bucket: getEnv("SUPABASE_BUCKET", "uploads"),
		},
	}
}

func (c DBConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=%s",
		c.Host, c.User, c.Password, c.Name, c.Port, c.TimeZone,
	)
}

func (c DBConfig) dialector() (gorm.Dialector, error) {
	switch c.Driver {
	case "postgres", "":
		return postgres.Open(c.DSN()), nil
	case "sqlite":
		return sqlite.Open(c.SQLitePath), nil
	case "bolt":
		return nil, fmt.Errorf("DB_DRIVER bolt is not served by gorm")
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", c.Driver)
	}
}

// UsesGorm reports whether the driver is a SQL database behind gorm.
func (c DBConfig) UsesGorm() bool {
	return c.Driver != "bolt"
}

// OpenDB connects, sets up pooling and migrates the record table.
func OpenDB(c DBConfig, logLevel logger.LogLevel) (*gorm.DB, error) {
	dialector, err := c.dialector()
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("cannot connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("cannot get sql.DB from gorm: %w", err)
	}
	if c.Driver == "sqlite" {
		// one writer keeps sqlite from returning SQLITE_BUSY
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
	}
	sqlDB.SetConnMaxLifetime(time.Hour)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(&models.Record{}); err != nil {
		return nil, fmt.Errorf("autoMigrate: %w", err)
	}
	return db, nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int64) int64 {
	v, err := strconv.ParseInt(strings.TrimSpace(os.Getenv(key)), 10, 64)
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
