package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigDir(t *testing.T, public, private string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "public.yaml"), []byte(public), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "private.yaml"), []byte(private), 0o600))
	return dir
}

const validPrivate = `
jwt_key: "test-secret"
pg:
  host: localhost
  port: 5432
  user: authgate
  password: pass
  dbname: authgate
`

func TestMustLoad(t *testing.T) {
	dir := writeConfigDir(t, `
addr: ":9090"
jwt_ttl_hours: 24
bcrypt_cost: 4
secure_cookies: true
allowed_origins:
  - "http://localhost:8081"
`, validPrivate)

	cfg := MustLoad(dir)

	assert.Equal(t, ":9090", cfg.Public.Addr)
	assert.Equal(t, 24*time.Hour, cfg.JwtTTL())
	assert.Equal(t, 4, cfg.Public.BcryptCost)
	assert.True(t, cfg.Public.SecureCookies)
	assert.Equal(t, []string{"http://localhost:8081"}, cfg.Public.AllowedOrigins)
	assert.Equal(t, "test-secret", cfg.JwtKey())
	assert.Equal(t, "localhost", cfg.Private.Pg.Host)
	assert.Equal(t, 5432, cfg.Private.Pg.Port)
}

func TestMustLoadDefaults(t *testing.T) {
	dir := writeConfigDir(t, "{}\n", validPrivate)

	cfg := MustLoad(dir)

	assert.Equal(t, ":8080", cfg.Public.Addr)
	assert.Equal(t, 30*24*time.Hour, cfg.JwtTTL(), "token validity defaults to 30 days")
	assert.Equal(t, "info", cfg.Public.LogLevel)
}

func TestMustLoadMissingJwtKey(t *testing.T) {
	dir := writeConfigDir(t, "{}\n", `
pg:
  host: localhost
  port: 5432
  user: authgate
  password: pass
  dbname: authgate
`)

	assert.Panics(t, func() { MustLoad(dir) }, "absent signing key must be startup-fatal")
}

func TestMustLoadMissingFile(t *testing.T) {
	assert.Panics(t, func() { MustLoad(t.TempDir()) })
}
