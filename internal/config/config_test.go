package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	req := require.New(t)
	t.Setenv("ENV_FILE", "")

	cfg, err := Load()

	req.NoError(err)
	req.Equal(8080, cfg.App.Port)
	req.False(cfg.Redis.Enabled)
	req.Equal("campusride:", cfg.Redis.ChannelPrefix)
	req.Equal(64, cfg.Realtime.SubscriberBuffer)
	req.Equal([]string{"*"}, cfg.Security.CORSAllowedOrigins)
	req.Equal("0.0.0.0:8080", cfg.App.Addr())
}

func TestLoad_FromEnvironment(t *testing.T) {
	req := require.New(t)
	t.Setenv("APP_PORT", "9090")
	t.Setenv("REDIS_ENABLED", "true")
	t.Setenv("REDIS_PORT", "6380")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000, https://ride.example.edu")
	t.Setenv("DASHBOARD_CACHE_TTL", "30s")

	cfg, err := Load()

	req.NoError(err)
	req.Equal(9090, cfg.App.Port)
	req.True(cfg.Redis.Enabled)
	req.Equal(6380, cfg.Redis.CacheConfig().Port)
	req.Equal([]string{"http://localhost:3000", "https://ride.example.edu"}, cfg.Security.CORSAllowedOrigins)
	req.Equal(30*time.Second, cfg.Realtime.DashboardTTL)
}

func TestLoad_EnvFile(t *testing.T) {
	req := require.New(t)
	path := filepath.Join(t.TempDir(), "test.env")
	req.NoError(os.WriteFile(path, []byte("WEBSOCKET_PATH=/live\n"), 0o600))
	t.Setenv("ENV_FILE", path)
	t.Cleanup(func() { os.Unsetenv("WEBSOCKET_PATH") })

	cfg, err := Load()

	req.NoError(err)
	req.Equal("/live", cfg.WebSocket.Path)
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	req := require.New(t)
	t.Setenv("REALTIME_SUBSCRIBER_BUFFER", "0")

	_, err := Load()

	req.Error(err)
}
