package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "APP_ENV", "CORS_ORIGINS", "MAX_UPLOAD_MB", "DB_DRIVER", "DB_TIMEZONE", "SQLITE_PATH", "BOLT_PATH", "SUPABASE_URL", "SUPABASE_KEY", "SUPABASE_BUCKET"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, int64(20), cfg.MaxUploadMB)
	assert.Equal(t, "postgres", cfg.DB.Driver)
	assert.Equal(t, "UTC", cfg.DB.TimeZone)
	assert.Equal(t, "data/study.bolt", cfg.DB.BoltPath)
	assert.Equal(t, "uploads", cfg.Supabase.Bucket)
	assert.False(t, cfg.Supabase.Enabled())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("CORS_ORIGINS", "http://localhost:5173, https://study.example ,")
	t.Setenv("MAX_UPLOAD_MB", "5")
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "5432")
	t.Setenv("DB_USER", "u")
	t.Setenv("DB_PASSWORD", "p")
	t.Setenv("DB_NAME", "study")
	t.Setenv("DB_TIMEZONE", "Asia/Ho_Chi_Minh")
	t.Setenv("SUPABASE_URL", "https://x.supabase.co")
	t.Setenv("SUPABASE_KEY", "key")

	cfg := Load()
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, []string{"http://localhost:5173", "https://study.example"}, cfg.CORSOrigins)
	assert.Equal(t, int64(5), cfg.MaxUploadMB)
	assert.Equal(t, "sqlite", cfg.DB.Driver)
	assert.True(t, cfg.Supabase.Enabled())
	assert.Equal(t,
		"host=db user=u password=p dbname=study port=5432 sslmode=disable TimeZone=Asia/Ho_Chi_Minh",
		cfg.DB.DSN())
}

func TestLoad_InvalidUploadLimitFallsBack(t *testing.T) {
	t.Setenv("MAX_UPLOAD_MB", "lots")
	assert.Equal(t, int64(20), Load().MaxUploadMB)
}

func TestOpenDB_SQLite(t *testing.T) {
	db, err := OpenDB(DBConfig{Driver: "sqlite", SQLitePath: ":memory:"}, logger.Silent)
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	defer sqlDB.Close()

	assert.True(t, db.Migrator().HasTable("records"))
}

func TestOpenDB_UnknownDriver(t *testing.T) {
	_, err := OpenDB(DBConfig{Driver: "oracle"}, logger.Silent)
	assert.Error(t, err)
}

func TestDBConfig_UsesGorm(t *testing.T) {
	assert.True(t, DBConfig{Driver: "postgres"}.UsesGorm())
	assert.True(t, DBConfig{Driver: "sqlite"}.UsesGorm())
	assert.False(t, DBConfig{Driver: "bolt"}.UsesGorm())

	_, err := OpenDB(DBConfig{Driver: "bolt"}, logger.Silent)
	assert.Error(t, err)
}
