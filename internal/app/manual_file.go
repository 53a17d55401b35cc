package app

import (
	"os"
	"strings"

	"github.com/op/go-logging"
	"github.com/shini4i/temp-demo/internal/helpers"
	"github.com/shini4i/temp-demo/internal/models"
	"github.com/shini4i/temp-demo/internal/ports"
	"github.com/spf13/afero"
)

const manualFileContent = "Manual cleanup example\n"

// ManualFileDemo creates a temporary file that is not removed by its creator:
// the initial handle is closed immediately, the file is reopened for writing
// and again for reading, and deletion happens in a deferred cleanup guarded by
// an existence check so that repeated attempts stay safe.
type ManualFileDemo struct {
	FS          afero.Fs
	FileReader  ports.FileReader
	Log         *logging.Logger
	TempDirBase string
	Keep        bool
}

func (d ManualFileDemo) Name() string { return DemoManualFile }

func (d ManualFileDemo) Description() string {
	return "Temporary file with guarded manual cleanup"
}

// Run exercises the create/close/reopen cycle with existence-guarded deletion.
func (d ManualFileDemo) Run() (result models.DemoResult, err error) {
	result.Name = d.Name()

	file, err := afero.TempFile(d.FS, d.TempDirBase, "temp-demo-*.txt")
	if err != nil {
		return result, err
	}
	path := file.Name()

	if err = file.Close(); err != nil {
		return result, err
	}

	defer func() {
		if d.Keep {
			return
		}
		removed, removeErr := helpers.RemoveIfExists(d.FS, path)
		if err == nil && removeErr != nil {
			err = removeErr
		}
		if removed {
			d.Log.Infof(itemPrintPattern, "Manually cleaned up")
		}
	}()

	d.Log.Infof(itemPrintPattern, "Created: "+cyan(path))
	result.AddStep("created temp file, closed initial handle", path, "")

	writer, err := d.FS.OpenFile(path, os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return result, err
	}

	if _, err = writer.WriteString(manualFileContent); err != nil {
		writer.Close()
		return result, err
	}

	if err = writer.Close(); err != nil {
		return result, err
	}
	result.AddStep("reopened for write", path, manualFileContent)

	content := d.FileReader.ReadFile(path)

	diff, err := verifyContent(d.FS, path, []byte(manualFileContent))
	if err != nil {
		if diff != "" {
			d.Log.Error(diff)
		}
		return result, err
	}

	if len(content) > 0 {
		d.Log.Infof(itemPrintPattern, "Content: "+strings.TrimSpace(string(content)))
	}
	result.AddStep("reopened for read, verified content", path, "")
	result.AddStep("deleted in guarded cleanup", path, "")

	return result, nil
}
