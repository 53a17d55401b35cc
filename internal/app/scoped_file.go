package app

import (
	"os"
	"strings"

	"github.com/op/go-logging"
	"github.com/shini4i/temp-demo/internal/models"
	"github.com/spf13/afero"
)

const scopedFileContent = "Sample data\nLine 1\nLine 2\n"

// ScopedFileDemo creates a temporary file whose removal is bound to the
// enclosing scope: the deferred cleanup fires on every exit path, including
// errors, without any explicit call at the end of the happy path.
type ScopedFileDemo struct {
	FS          afero.Fs
	Log         *logging.Logger
	TempDirBase string
	Keep        bool
}

func (d ScopedFileDemo) Name() string { return DemoScopedFile }

func (d ScopedFileDemo) Description() string {
	return "Temporary file with scope-bound cleanup"
}

// Run writes known content to a scoped temp file and verifies the read-back.
func (d ScopedFileDemo) Run() (result models.DemoResult, err error) {
	result.Name = d.Name()

	file, err := afero.TempFile(d.FS, d.TempDirBase, "temp-demo-*.txt")
	if err != nil {
		return result, err
	}
	path := file.Name()

	defer func() {
		if d.Keep {
			return
		}
		if removeErr := d.FS.Remove(path); err == nil && removeErr != nil && !os.IsNotExist(removeErr) {
			err = removeErr
		}
	}()

	d.Log.Infof(itemPrintPattern, "Created: "+cyan(path))
	result.AddStep("created scoped temp file", path, "")

	if _, err = file.WriteString(scopedFileContent); err != nil {
		file.Close()
		return result, err
	}

	if err = file.Close(); err != nil {
		return result, err
	}
	result.AddStep("wrote content", path, scopedFileContent)

	diff, err := verifyContent(d.FS, path, []byte(scopedFileContent))
	if err != nil {
		if diff != "" {
			d.Log.Error(diff)
		}
		return result, err
	}

	d.Log.Infof(itemPrintPattern, "Content: "+strings.ReplaceAll(strings.TrimSpace(scopedFileContent), "\n", " / "))
	d.Log.Infof(itemPrintPattern, "Cleaned up on scope exit")
	result.AddStep("verified read-back", path, "")
	result.AddStep("removed on scope exit", path, "")

	return result, nil
}
