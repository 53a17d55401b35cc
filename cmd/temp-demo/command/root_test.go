package command

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/shini4i/temp-demo/internal/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecuteRunsAppWithFlags(t *testing.T) {
	var receivedConfig app.Config

	opts := Options{
		Version:     "test-version",
		TempDirBase: os.TempDir(),
		InitLogging: func(bool) {},
		RunApp: func(cfg app.Config) error {
			receivedConfig = cfg
			return nil
		},
	}

	args := []string{
		"run", "scoped-file", "temp-dir",
		"--files", "5",
		"--temp-dir", "/scratch",
		"--shell", "/bin/bash",
		"--report", "yaml",
		"--keep",
		"--debug",
	}

	err := Execute(opts, args)
	require.NoError(t, err)

	assert.Equal(t, []string{"scoped-file", "temp-dir"}, receivedConfig.Demos)
	assert.Equal(t, 5, receivedConfig.FileCount)
	assert.Equal(t, "/scratch", receivedConfig.TempDirBase)
	assert.Equal(t, "/bin/bash", receivedConfig.Interpreter)
	assert.Equal(t, app.ReportFormatYAML, receivedConfig.ReportFormat)
	assert.True(t, receivedConfig.KeepArtifacts)
	assert.True(t, receivedConfig.Debug)
	assert.Equal(t, "test-version", receivedConfig.Version)
}

func TestExecuteUsesOptionDefaults(t *testing.T) {
	var receivedConfig app.Config

	opts := Options{
		Version:     "test-version",
		TempDirBase: "/base",
		InitLogging: func(bool) {},
		RunApp: func(cfg app.Config) error {
			receivedConfig = cfg
			return nil
		},
	}

	err := Execute(opts, []string{"run"})
	require.NoError(t, err)

	assert.Empty(t, receivedConfig.Demos)
	assert.Equal(t, "/base", receivedConfig.TempDirBase)
	assert.Equal(t, 3, receivedConfig.FileCount)
	assert.Equal(t, "/bin/sh", receivedConfig.Interpreter)
	assert.False(t, receivedConfig.KeepArtifacts)
}

func TestExecuteRejectsUnknownReportFormat(t *testing.T) {
	opts := Options{
		Version:     "test-version",
		TempDirBase: os.TempDir(),
		InitLogging: func(bool) {},
		RunApp: func(app.Config) error {
			t.Fatal("run handler must not be called")
			return nil
		},
	}

	err := Execute(opts, []string{"run", "--report", "json"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported report format")
}

func TestExecutePropagatesRunError(t *testing.T) {
	expected := errors.New("run failed")

	opts := Options{
		Version:     "test-version",
		TempDirBase: os.TempDir(),
		InitLogging: func(bool) {},
		RunApp: func(app.Config) error {
			return expected
		},
	}

	err := Execute(opts, []string{"run"})
	assert.ErrorIs(t, err, expected)
}

func TestListCommandPrintsCatalog(t *testing.T) {
	opts := Options{
		Version:     "test-version",
		TempDirBase: os.TempDir(),
		InitLogging: func(bool) {},
	}

	root := newRootCommand(opts)

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"list"})

	require.NoError(t, root.Execute())

	for _, info := range app.DemoCatalog() {
		assert.Contains(t, out.String(), info.Name)
		assert.Contains(t, out.String(), info.Description)
	}
}

func TestCleanCommandInvokesSweep(t *testing.T) {
	var receivedConfig app.Config

	opts := Options{
		Version:     "test-version",
		TempDirBase: "/base",
		InitLogging: func(bool) {},
		RunSweep: func(cfg app.Config) error {
			receivedConfig = cfg
			return nil
		},
	}

	err := Execute(opts, []string{"clean", "--temp-dir", "/scratch"})
	require.NoError(t, err)

	assert.Equal(t, "/scratch", receivedConfig.TempDirBase)
}

func TestCleanCommandRequiresHandler(t *testing.T) {
	opts := Options{
		Version:     "test-version",
		TempDirBase: "/base",
		InitLogging: func(bool) {},
	}

	err := Execute(opts, []string{"clean"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no sweep handler provided")
}
