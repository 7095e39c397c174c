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

const minimal = `
[database]
host = "localhost"
user = "scheduler"
password = "secret"
dbname = "scheduler"
`

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimal))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, 1, cfg.Business.HorizonMonths)
	assert.Equal(t, 60, cfg.Jobs.CompletionInterval)
	assert.Equal(t, LockBackendPostgres, cfg.Locks.Backend)
	assert.Equal(t, "log", cfg.Notifier.Transport)

	hour, minute, err := cfg.Jobs.ReminderAt()
	require.NoError(t, err)
	assert.Equal(t, 7, hour)
	assert.Equal(t, 0, minute)

	assert.Equal(t, "host=localhost port=5432 user=scheduler password=secret dbname=scheduler sslmode=disable", cfg.Database.DSN())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PASSWORD", "from-env")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092")

	cfg, err := Load(writeConfig(t, minimal))
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "from-env", cfg.Database.Password)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Notifier.KafkaBrokers)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unknown driver", minimal + "driver = \"mysql\"\n"},
		{"bad timezone", minimal + "[business]\ntimezone = \"Mars/Olympus\"\n"},
		{"bad reminder time", minimal + "[jobs]\nreminder_time = \"25:00\"\n"},
		{"redis without address", minimal + "[locks]\nbackend = \"redis\"\n"},
		{"unknown lock backend", minimal + "[locks]\nbackend = \"zookeeper\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
