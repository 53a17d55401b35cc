package app

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg, err := NewConfig(nil)
	require.NoError(t, err)

	assert.Empty(t, cfg.Demos)
	assert.Equal(t, os.TempDir(), cfg.TempDirBase)
	assert.Equal(t, 3, cfg.FileCount)
	assert.Equal(t, "/bin/sh", cfg.Interpreter)
	assert.Empty(t, cfg.ReportFormat)
	assert.False(t, cfg.KeepArtifacts)
}

func TestNewConfigAppliesOptions(t *testing.T) {
	cfg, err := NewConfig([]string{DemoScopedFile, DemoTempDir},
		WithTempDirBase("/scratch"),
		WithFileCount(5),
		WithInterpreter("/bin/bash"),
		WithReportFormat(ReportFormatYAML),
		WithKeepArtifacts(true),
		WithDebug(true),
		WithVersion("1.2.3"),
	)
	require.NoError(t, err)

	assert.Equal(t, []string{DemoScopedFile, DemoTempDir}, cfg.Demos)
	assert.Equal(t, "/scratch", cfg.TempDirBase)
	assert.Equal(t, 5, cfg.FileCount)
	assert.Equal(t, "/bin/bash", cfg.Interpreter)
	assert.Equal(t, ReportFormatYAML, cfg.ReportFormat)
	assert.True(t, cfg.KeepArtifacts)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "1.2.3", cfg.Version)
}

func TestNewConfigEmptyOverridesKeepDefaults(t *testing.T) {
	cfg, err := NewConfig(nil, WithTempDirBase(""), WithInterpreter(""))
	require.NoError(t, err)

	assert.Equal(t, os.TempDir(), cfg.TempDirBase)
	assert.Equal(t, "/bin/sh", cfg.Interpreter)
}

func TestNewConfigRejectsInvalidFileCount(t *testing.T) {
	_, err := NewConfig(nil, WithFileCount(0))
	assert.Error(t, err)
}

func TestNewConfigRejectsUnknownReportFormat(t *testing.T) {
	_, err := NewConfig(nil, WithReportFormat("json"))
	assert.ErrorContains(t, err, "unsupported report format")
}
