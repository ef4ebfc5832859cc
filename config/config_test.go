package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, 10*time.Minute, cfg.AccessTokenTTL)
	assert.Equal(t, 720*time.Hour, cfg.RefreshTokenTTL)
	assert.Equal(t, 100, cfg.FakeUserAmount)
	assert.Equal(t, 200, cfg.FakePostAmount)
	assert.Equal(t, 400, cfg.FakeCommentAmount)
	assert.Equal(t, 30*time.Minute, cfg.RefreshInterval)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoad_FileThenEnv(t *testing.T) {
	t.Chdir(t.TempDir())

	path := writeFile(t, `
port = "9000"
logLevel = "debug"
accessTokenTTL = "5m"
fakeUserAmount = 10
corsAllowedOrigins = ["https://app.example.com"]
`)

	t.Setenv("FAKE_USER_AMOUNT", "25")
	t.Setenv("REFRESH_INTERVAL", "0s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Addr())
	assert.Equal(t, "debug", cfg.Level().String())
	assert.Equal(t, 5*time.Minute, cfg.AccessTokenTTL)
	assert.Equal(t, 25, cfg.FakeUserAmount)
	assert.Equal(t, time.Duration(0), cfg.RefreshInterval)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORSAllowedOrigins)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("FAKE_POST_AMOUNT=7\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("FAKE_POST_AMOUNT") })

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.FakePostAmount)
}

func TestLoad_Errors(t *testing.T) {
	t.Chdir(t.TempDir())

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
		assert.Error(t, err)
	})

	t.Run("bad int", func(t *testing.T) {
		t.Setenv("FAKE_USER_AMOUNT", "many")
		_, err := Load("")
		assert.ErrorContains(t, err, "FAKE_USER_AMOUNT")
	})

	t.Run("bad duration", func(t *testing.T) {
		t.Setenv("ACCESS_TOKEN_TTL", "soon")
		_, err := Load("")
		assert.ErrorContains(t, err, "ACCESS_TOKEN_TTL")
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		valid  bool
	}{
		{"defaults", func(*Config) {}, true},
		{"empty secret", func(c *Config) { c.AccessTokenSecret = "" }, false},
		{"same secrets", func(c *Config) { c.RefreshTokenSecret = c.AccessTokenSecret }, false},
		{"zero ttl", func(c *Config) { c.AccessTokenTTL = 0 }, false},
		{"negative amount", func(c *Config) { c.FakeCommentAmount = -1 }, false},
		{"negative interval", func(c *Config) { c.RefreshInterval = -time.Second }, false},
		{"zero interval", func(c *Config) { c.RefreshInterval = 0 }, true},
		{"unknown env", func(c *Config) { c.AppEnv = "staging" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)

			err := cfg.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
