package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `
[database]
host = "localhost"
user = "postgres"
dbname = "barbershop"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, 300, cfg.Redis.TTL)
	assert.Equal(t, "UTC", cfg.Booking.Timezone)
	assert.Empty(t, cfg.Redis.Address)
}

func TestLoad_Values(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[database]
host = "db"
port = 6432
user = "app"
password = "secret"
dbname = "barbershop"

[redis]
address = "redis:6379"
ttl = 60

[booking]
min_notice_minutes = 30
advance_booking_days = 14
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, "redis:6379", cfg.Redis.Address)
	assert.Equal(t, 60, cfg.Redis.TTL)
	assert.Equal(t, 30, cfg.Booking.MinNoticeMinutes)
	assert.Equal(t, 14, cfg.Booking.AdvanceBookingDays)
	assert.Equal(t, "host=db port=6432 user=app password=secret dbname=barbershop sslmode=disable", cfg.Database.DSN())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DB_HOST", "pg.internal")
	t.Setenv("DB_PASSWORD", "from-env")
	t.Setenv("REDIS_ADDRESS", "cache:6379")
	t.Setenv("LOG_LEVEL", "debug")

	path := writeConfig(t, `
[database]
host = "localhost"
dbname = "barbershop"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "pg.internal", cfg.Database.Host)
	assert.Equal(t, "from-env", cfg.Database.Password)
	assert.Equal(t, "cache:6379", cfg.Redis.Address)
	assert.Equal(t, "debug", cfg.Logs.Level)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, ErrReadConfig)

	_, err = Load(writeConfig(t, `[database]
host = "localhost"
`))
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = Load(writeConfig(t, `[database]
host = "localhost"
dbname = "x"

[booking]
timezone = "Mars/Olympus"
`))
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = Load(writeConfig(t, `not toml at all ===`))
	assert.ErrorIs(t, err, ErrReadConfig)
}
