package app

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/op/go-logging"
	"github.com/shini4i/temp-demo/cmd/temp-demo/utils"
	"github.com/shini4i/temp-demo/internal/helpers"
	"github.com/shini4i/temp-demo/internal/models"
	"github.com/shini4i/temp-demo/internal/ports"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Dependencies aggregates runtime collaborators required by App.
type Dependencies struct {
	FS         afero.Fs
	CmdRunner  ports.CmdRunner
	FileReader ports.FileReader
	Globber    ports.Globber
	Logger     *logging.Logger
	Out        io.Writer
}

// App orchestrates the demonstration run end to end.
type App struct {
	cfg        Config
	fs         afero.Fs
	cmdRunner  ports.CmdRunner
	fileReader ports.FileReader
	globber    ports.Globber
	logger     *logging.Logger
	out        io.Writer
}

// New constructs an App using the supplied configuration and dependencies.
func New(cfg Config, deps Dependencies) (*App, error) {
	if cfg.TempDirBase == "" {
		return nil, errors.New("temp directory base must be provided")
	}

	if deps.FS == nil {
		deps.FS = afero.NewOsFs()
	}
	if deps.CmdRunner == nil {
		deps.CmdRunner = &utils.RealCmdRunner{}
	}
	if deps.FileReader == nil {
		deps.FileReader = utils.OsFileReader{}
	}
	if deps.Globber == nil {
		deps.Globber = utils.CustomGlobber{}
	}
	if deps.Logger == nil {
		return nil, errors.New("logger must be provided")
	}
	if deps.Out == nil {
		deps.Out = os.Stdout
	}

	return &App{
		cfg:        cfg,
		fs:         deps.FS,
		cmdRunner:  deps.CmdRunner,
		fileReader: deps.FileReader,
		globber:    deps.Globber,
		logger:     deps.Logger,
		out:        deps.Out,
	}, nil
}

// Run executes the selected demonstrations and returns any terminal error.
func (a *App) Run() error {
	demos, err := a.selectDemos(a.cfg.Demos)
	if err != nil {
		return err
	}

	a.logger.Infof("===> Running temp-demo version [%s]", cyan(a.cfg.Version))

	report := models.RunReport{Version: a.cfg.Version}

	for _, demo := range demos {
		a.logger.Infof("%s %s", green(checkMark), demo.Description())

		result, err := demo.Run()
		if err != nil {
			a.logger.Errorf("%s demonstration [%s] failed: %s", red("✗"), demo.Name(), err)
			return err
		}

		report.Demos = append(report.Demos, result)
	}

	a.logger.Infof("%s All demonstrations completed", green(checkMark))

	return a.writeReport(report)
}

// Sweep removes leftover artifacts from the temp base and reports the count.
func (a *App) Sweep() (int, error) {
	sweeper := Sweeper{
		FS:          a.fs,
		Globber:     a.globber,
		Log:         a.logger,
		TempDirBase: a.cfg.TempDirBase,
	}

	removed, err := sweeper.Sweep()
	if err != nil {
		return removed, err
	}

	if removed == 0 {
		a.logger.Info("No leftover artifacts found")
	} else {
		a.logger.Infof("Removed %s leftover artifacts", yellow(removed))
	}

	return removed, nil
}

// demos builds the full demonstration set wired with the App's collaborators.
func (a *App) demos() []Demo {
	return []Demo{
		ScopedFileDemo{FS: a.fs, Log: a.logger, TempDirBase: a.cfg.TempDirBase, Keep: a.cfg.KeepArtifacts},
		ManualFileDemo{FS: a.fs, FileReader: a.fileReader, Log: a.logger, TempDirBase: a.cfg.TempDirBase, Keep: a.cfg.KeepArtifacts},
		TempDirDemo{FS: a.fs, Log: a.logger, TempDirBase: a.cfg.TempDirBase, FileCount: a.cfg.FileCount, Keep: a.cfg.KeepArtifacts},
		ScriptDemo{FS: a.fs, CmdRunner: a.cmdRunner, Log: a.logger, TempDirBase: a.cfg.TempDirBase, Interpreter: a.cfg.Interpreter, Keep: a.cfg.KeepArtifacts},
		DeferredDeleteDemo{FS: a.fs, Log: a.logger, TempDirBase: a.cfg.TempDirBase, Keep: a.cfg.KeepArtifacts},
	}
}

// selectDemos filters the registry by the requested names, preserving the
// registry order. An empty selection means all demonstrations.
func (a *App) selectDemos(names []string) ([]Demo, error) {
	all := a.demos()

	if len(names) == 0 {
		return all, nil
	}

	registered := DemoNames()
	for _, name := range names {
		if !helpers.Contains(registered, name) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownDemo, name)
		}
	}

	var selected []Demo
	for _, demo := range all {
		if helpers.Contains(names, demo.Name()) {
			selected = append(selected, demo)
		}
	}

	return selected, nil
}

// writeReport emits the machine-readable run report when one was requested.
func (a *App) writeReport(report models.RunReport) error {
	if a.cfg.ReportFormat != ReportFormatYAML {
		return nil
	}

	encoded, err := yaml.Marshal(report)
	if err != nil {
		return err
	}

	_, err = a.out.Write(encoded)
	return err
}
