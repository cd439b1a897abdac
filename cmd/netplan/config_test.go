package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rhartert/netplan/network"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name string, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_Missing(t *testing.T) {
	cfg, err := loadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)

	assert.Equal(t, defaultConfig(), cfg)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "min-cost", cfg.Engine.DuplicateLinks)
	assert.Nil(t, cfg.Engine.GlobalPacketSize)
	require.NotNil(t, cfg.Log.Compress)
	assert.True(t, *cfg.Log.Compress)
}

func TestLoadConfig(t *testing.T) {
	path := writeFile(t, "netplan.toml", `
[engine]
global_packet_size = 1500
duplicate_links = "reject"

[log]
level = "debug"
file = "logs/netplan.log"
max_backups = 2
compress = false

[metrics]
textfile = "netplan.prom"
`)

	cfg, err := loadConfig(path)
	require.NoError(t, err)

	require.NotNil(t, cfg.Engine.GlobalPacketSize)
	assert.Equal(t, 1500.0, *cfg.Engine.GlobalPacketSize)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "logs/netplan.log", cfg.Log.File)
	assert.Equal(t, 2, cfg.Log.MaxBackups)
	assert.Equal(t, 100, cfg.Log.MaxSizeMB, "unset values get defaults")
	assert.False(t, *cfg.Log.Compress)
	assert.Equal(t, "netplan.prom", cfg.Metrics.Textfile)

	pcfg, err := cfg.plannerConfig()
	require.NoError(t, err)
	assert.Equal(t, network.RejectDuplicates, pcfg.DuplicateLinks)
	assert.Equal(t, 1500.0, *pcfg.GlobalPacketSize)
}

func TestLoadConfig_Errors(t *testing.T) {
	testCases := []struct {
		desc    string
		content string
	}{
		{"malformed toml", "[engine\nduplicate_links = "},
		{"unknown duplicate policy", "[engine]\nduplicate_links = \"last-wins\""},
		{"negative packet size", "[engine]\nglobal_packet_size = -1"},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			_, err := loadConfig(writeFile(t, "netplan.toml", tc.content))
			assert.Error(t, err)
		})
	}
}

func TestSetupLogger(t *testing.T) {
	var stderr bytes.Buffer
	logger, closer, err := setupLogger(LogConfig{Level: "warn"}, &stderr)
	require.NoError(t, err)
	defer closer.Close()

	logger.Info("hidden")
	logger.Warn("shown")

	assert.NotContains(t, stderr.String(), "hidden")
	assert.Contains(t, stderr.String(), "shown")
	assert.Equal(t, log.WarnLevel, logger.GetLevel())
}

func TestSetupLogger_File(t *testing.T) {
	var stderr bytes.Buffer
	path := filepath.Join(t.TempDir(), "logs", "netplan.log")
	cfg := defaultConfig().Log
	cfg.File = path

	logger, closer, err := setupLogger(cfg, &stderr)
	require.NoError(t, err)
	logger.Info("to both outputs")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to both outputs")
	assert.Contains(t, stderr.String(), "to both outputs")
}

func TestSetupLogger_InvalidLevel(t *testing.T) {
	_, _, err := setupLogger(LogConfig{Level: "loud"}, &bytes.Buffer{})
	assert.Error(t, err)
}
