package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
api:
  environment: production
  port: "9000"
  jwt_signing_key: secret
  allowed_cors_domains: ["https://starevents.example"]
gin:
  mode: release
postgres:
  host: db
  user: u
  password: p
  dbname: events
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	conf, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, "9000", conf.API.Port)
	assert.Equal(t, 24*time.Hour, conf.API.JWTTTL)
	assert.Equal(t, []string{"https://starevents.example"}, conf.API.AllowedCORSDomains)
	assert.Equal(t, "release", conf.Gin.Mode)
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=events sslmode=disable", conf.Postgres.DSN())
	assert.Equal(t, 60*time.Second, conf.Redis.CacheTTL)
	assert.Equal(t, "info", conf.Log.Level)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("API_PORT", "7000")
	t.Setenv("POSTGRES_HOST", "pg.internal")

	conf, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, "7000", conf.API.Port)
	assert.Equal(t, "pg.internal", conf.Postgres.Host)
}

func TestLoad_MissingSigningKeyInProduction(t *testing.T) {
	body := `
api:
  environment: production
gin:
  mode: release
postgres:
  host: db
`
	_, err := Load(writeConfig(t, body))
	assert.ErrorContains(t, err, "jwt_signing_key")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}
