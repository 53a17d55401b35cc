package app

import (
	"fmt"
	"strings"

	"github.com/op/go-logging"
	"github.com/shini4i/temp-demo/internal/helpers"
	"github.com/shini4i/temp-demo/internal/models"
	"github.com/shini4i/temp-demo/internal/ports"
	"github.com/spf13/afero"
)

const scriptBody = `#!/bin/sh
echo "Temporary script running with args: $1 $2"
`

// scriptArgs are the literal positional arguments passed to the spawned script.
var scriptArgs = []string{"arg1", "arg2"}

// ScriptDemo writes a self-contained shell script to a temporary file, marks
// it executable, spawns it through the configured interpreter, and captures
// its standard output. The script file is deleted in a guarded deferred
// cleanup. Requires a filesystem the interpreter can actually see.
type ScriptDemo struct {
	FS          afero.Fs
	CmdRunner   ports.CmdRunner
	Log         *logging.Logger
	TempDirBase string
	Interpreter string
	Keep        bool
}

func (d ScriptDemo) Name() string { return DemoScript }

func (d ScriptDemo) Description() string {
	return "Temporary executable script spawned with arguments"
}

// Run writes, spawns, and cleans up the temporary script.
func (d ScriptDemo) Run() (result models.DemoResult, err error) {
	result.Name = d.Name()

	file, err := afero.TempFile(d.FS, d.TempDirBase, "temp-demo-script-*.sh")
	if err != nil {
		return result, err
	}
	path := file.Name()

	defer func() {
		if d.Keep {
			return
		}
		_, removeErr := helpers.RemoveIfExists(d.FS, path)
		if err == nil && removeErr != nil {
			err = removeErr
		}
	}()

	if _, err = file.WriteString(scriptBody); err != nil {
		file.Close()
		return result, err
	}

	if err = file.Close(); err != nil {
		return result, err
	}

	if err = d.FS.Chmod(path, 0o755); err != nil {
		return result, err
	}

	d.Log.Infof(itemPrintPattern, "Created: "+cyan(path))
	result.AddStep("wrote executable script", path, "")

	scriptResult, err := d.spawn(path)
	if err != nil {
		return result, err
	}

	d.Log.Infof(itemPrintPattern, strings.TrimSpace(scriptResult.Stdout))
	result.AddStep("spawned script", path, strings.TrimSpace(scriptResult.Stdout))
	result.AddStep("deleted in guarded cleanup", path, "")

	return result, nil
}

// spawn runs the script synchronously and captures its output.
func (d ScriptDemo) spawn(path string) (models.ScriptResult, error) {
	stdout, stderr, err := d.CmdRunner.Run(d.Interpreter, append([]string{path}, scriptArgs...)...)
	if err != nil {
		return models.ScriptResult{Stdout: stdout, Stderr: stderr, ExitCode: 1},
			fmt.Errorf("%w: %v: %s", ErrScript, err, strings.TrimSpace(stderr))
	}

	return models.ScriptResult{Stdout: stdout, Stderr: stderr}, nil
}
