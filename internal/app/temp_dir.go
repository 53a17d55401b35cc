package app

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/op/go-logging"
	"github.com/shini4i/temp-demo/internal/helpers"
	"github.com/shini4i/temp-demo/internal/models"
	"github.com/spf13/afero"
)

// TempDirDemo creates a temporary directory, populates it with a fixed count
// of deterministically named files, and lists them. The directory and all of
// its contents are removed together when the scope exits.
type TempDirDemo struct {
	FS          afero.Fs
	Log         *logging.Logger
	TempDirBase string
	FileCount   int
	Keep        bool
}

func (d TempDirDemo) Name() string { return DemoTempDir }

func (d TempDirDemo) Description() string {
	return "Temporary directory with generated files"
}

// Run populates and enumerates the temporary directory.
func (d TempDirDemo) Run() (result models.DemoResult, err error) {
	result.Name = d.Name()

	tmpDir, err := afero.TempDir(d.FS, d.TempDirBase, "temp-demo-dir-")
	if err != nil {
		return result, err
	}

	defer func() {
		if d.Keep {
			return
		}
		if removeErr := (afero.Afero{Fs: d.FS}).RemoveAll(tmpDir); err == nil && removeErr != nil {
			err = removeErr
		}
	}()

	d.Log.Infof(itemPrintPattern, "Created: "+cyan(tmpDir))
	result.AddStep("created temp directory", tmpDir, "")

	for i := 0; i < d.FileCount; i++ {
		filePath := filepath.Join(tmpDir, fmt.Sprintf("file%d.txt", i))
		content := fmt.Sprintf("File %d content\n", i)
		if err = helpers.WriteToFile(d.FS, filePath, []byte(content)); err != nil {
			return result, err
		}
	}
	result.AddStep(fmt.Sprintf("wrote %d files", d.FileCount), tmpDir, "")

	entries, err := afero.ReadDir(d.FS, tmpDir)
	if err != nil {
		return result, err
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}

	d.Log.Infof(itemPrintPattern, "Files created: "+strings.Join(names, " "))
	d.Log.Infof(itemPrintPattern, "Directory cleaned up on scope exit")
	result.AddStep("listed entries", tmpDir, strings.Join(names, " "))
	result.AddStep("directory removed on scope exit", tmpDir, "")

	return result, nil
}
