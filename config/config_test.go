package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	content := `port: 8080
scheduler:
  algorithms: [sjf, priority]
log:
  level: debug
tracing:
  enabled: true
  output: trace.txt
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, []string{"sjf", "priority"}, cfg.Algorithms)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.TracingEnabled)
	assert.Equal(t, "trace.txt", cfg.TracingOutput)
	assert.Equal(t, "cpu-scheduler", cfg.ServiceName)
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, 9095, cfg.Port)
	assert.Equal(t, []string{"fcfs", "sjf", "priority"}, cfg.Algorithms)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.TracingEnabled)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("SCHEDULER_PORT", "7000")
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, 7000, cfg.Port)
}

func TestLoad_InvalidPort(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("port: -1\n"), 0644))
	_, err := Load(dir)
	assert.Error(t, err)
}
