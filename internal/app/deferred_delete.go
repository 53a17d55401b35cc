package app

import (
	"fmt"

	"github.com/op/go-logging"
	"github.com/shini4i/temp-demo/internal/helpers"
	"github.com/shini4i/temp-demo/internal/models"
	"github.com/spf13/afero"
)

var binaryContent = []byte("Binary data example\n")

// DeferredDeleteDemo creates a temporary file that survives its creating
// handle, reports its existence, then deletes it explicitly and reports the
// existence check flipping to false.
type DeferredDeleteDemo struct {
	FS          afero.Fs
	Log         *logging.Logger
	TempDirBase string
	Keep        bool
}

func (d DeferredDeleteDemo) Name() string { return DemoDeferredClean }

func (d DeferredDeleteDemo) Description() string {
	return "Temporary file with deferred explicit deletion"
}

// Run exercises the create/write/close/check/delete/check sequence.
func (d DeferredDeleteDemo) Run() (models.DemoResult, error) {
	result := models.DemoResult{Name: d.Name()}

	file, err := afero.TempFile(d.FS, d.TempDirBase, "temp-demo-*.bin")
	if err != nil {
		return result, err
	}
	path := file.Name()

	if _, err := file.Write(binaryContent); err != nil {
		file.Close()
		return result, err
	}

	if err := file.Close(); err != nil {
		return result, err
	}

	exists, err := helpers.Exists(d.FS, path)
	if err != nil {
		return result, err
	}

	d.Log.Infof(itemPrintPattern, fmt.Sprintf("File persists: %t", exists))
	result.AddStep("wrote binary content, closed handle", path, fmt.Sprintf("exists=%t", exists))

	if d.Keep {
		return result, nil
	}

	if err := d.FS.Remove(path); err != nil {
		return result, err
	}

	exists, err = helpers.Exists(d.FS, path)
	if err != nil {
		return result, err
	}

	d.Log.Infof(itemPrintPattern, fmt.Sprintf("After removal: %t", exists))
	result.AddStep("deleted explicitly", path, fmt.Sprintf("exists=%t", exists))

	return result, nil
}
