package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "regexfa.yaml")
	data := `
log_level: debug
export:
  format: mermaid
  hide_labels: true
server:
  addr: ":9090"
  redis_addr: "localhost:6379"
  cache_ttl: 30s
  max_dfa_states: 500
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "mermaid", cfg.Export.Format)
	assert.True(t, cfg.Export.HideLabels)
	assert.Equal(t, "dot", cfg.Export.Renderer, "defaults survive partial files")
	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, "localhost:6379", cfg.Server.RedisAddr)
	assert.Equal(t, 30*time.Second, cfg.Server.CacheTTL.Duration)
	assert.Equal(t, 256, cfg.Server.MaxPatternLength)
	assert.Equal(t, 500, cfg.Server.MaxDFAStates)
}

func TestLoadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "regexfa.json")
	data := `{"export": {"format": "json"}, "server": {"cache_ttl": "1h", "max_dfa_states": 64}}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Export.Format)
	assert.Equal(t, time.Hour, cfg.Server.CacheTTL.Duration)
	assert.Equal(t, 64, cfg.Server.MaxDFAStates)
}

func TestLoadInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  cache_ttl: soon\n"), 0o644))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestExampleFileMatchesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "..", "regexfa.example.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
