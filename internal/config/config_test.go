package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o600))
	return dir
}

func TestLoadConfig_ファイルの値を読み込む(t *testing.T) {
	dir := writeConfig(t, `
server:
  port: ":9000"
database:
  host: "db"
  port: 5433
  user: "u"
  password: "p"
  name: "cards"
oracle:
  model: "test-model"
  timeout: "5s"
  max_retries: 4
tracks:
  default_page_count: 20
`)

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Server.Port)
	assert.Equal(t, "test-model", cfg.Oracle.Model)
	assert.Equal(t, 5*time.Second, cfg.Oracle.Timeout)
	assert.Equal(t, 4, cfg.Oracle.MaxRetries)
	assert.Equal(t, 20, cfg.Tracks.DefaultPageCount)
	assert.Equal(t, DefaultTracksMaxPageCount, cfg.Tracks.MaxPageCount)
	assert.Equal(t, "host=db port=5433 user=u password=p dbname=cards sslmode=disable", cfg.Database.DSN())
}

func TestLoadConfig_環境変数で上書きする(t *testing.T) {
	dir := writeConfig(t, `
database:
  host: "db"
`)
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("PORT", "8081")
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/cards?sslmode=disable")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "sk-test", cfg.Oracle.APIKey)
	assert.Equal(t, ":8081", cfg.Server.Port)
	assert.Equal(t, "postgres://u:p@localhost:5432/cards?sslmode=disable", cfg.Database.DSN())
}

func TestLoadConfig_ファイルが無い場合はデフォルト(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, DefaultServerPort, cfg.Server.Port)
	assert.Equal(t, DefaultOracleModel, cfg.Oracle.Model)
	assert.Equal(t, DefaultOracleTimeout, cfg.Oracle.Timeout)
	assert.Equal(t, DefaultOracleMaxRetries, cfg.Oracle.MaxRetries)
	assert.Equal(t, DefaultTracksPageCount, cfg.Tracks.DefaultPageCount)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.Empty(t, cfg.Oracle.APIKey)
}
