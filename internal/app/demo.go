package app

import (
	"errors"

	"github.com/shini4i/temp-demo/internal/models"
)

// Demo names, in execution order.
const (
	DemoScopedFile    = "scoped-file"
	DemoManualFile    = "manual-file"
	DemoTempDir       = "temp-dir"
	DemoScript        = "script"
	DemoDeferredClean = "deferred-delete"
)

var (
	// ErrVerify indicates that content read back from a temporary file did not
	// match what was written.
	ErrVerify = errors.New("content verification failed")

	// ErrScript indicates that the temporary script could not be spawned or
	// exited with a non-zero status.
	ErrScript = errors.New("temporary script execution failed")

	// ErrUnknownDemo indicates a requested demonstration name is not registered.
	ErrUnknownDemo = errors.New("unknown demonstration")
)

// Demo is a single self-contained temporary file demonstration.
type Demo interface {
	Name() string
	Description() string
	Run() (models.DemoResult, error)
}

// DemoInfo describes a registered demonstration.
type DemoInfo struct {
	Name        string
	Description string
}

// DemoCatalog lists all demonstrations in execution order.
func DemoCatalog() []DemoInfo {
	return []DemoInfo{
		{DemoScopedFile, "Temporary file with scope-bound cleanup"},
		{DemoManualFile, "Temporary file with guarded manual cleanup"},
		{DemoTempDir, "Temporary directory with generated files"},
		{DemoScript, "Temporary executable script spawned with arguments"},
		{DemoDeferredClean, "Temporary file with deferred explicit deletion"},
	}
}

// DemoNames returns the names of all registered demonstrations in order.
func DemoNames() []string {
	catalog := DemoCatalog()
	names := make([]string, 0, len(catalog))
	for _, info := range catalog {
		names = append(names, info.Name)
	}
	return names
}
