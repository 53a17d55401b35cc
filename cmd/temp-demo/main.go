package main

import (
	"os"

	"github.com/op/go-logging"
	"github.com/shini4i/temp-demo/cmd/temp-demo/command"
	"github.com/shini4i/temp-demo/internal/app"
	"github.com/shini4i/temp-demo/internal/helpers"
)

var version = "local"

var logger = logging.MustGetLogger("temp-demo")

var logFormat = logging.MustStringFormatter(
	`%{color}%{message}%{color:reset}`,
)

// loggingInit sets up the logging backend with the provided level.
func loggingInit(level logging.Level) {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	backendFormatter := logging.NewBackendFormatter(backend, logFormat)
	backendLeveled := logging.AddModuleLevel(backendFormatter)
	backendLeveled.SetLevel(level, "")
	logging.SetBackend(backendLeveled)
}

func runApp(cfg app.Config) error {
	application, err := app.New(cfg, app.Dependencies{Logger: logger})
	if err != nil {
		return err
	}
	return application.Run()
}

func runSweep(cfg app.Config) error {
	application, err := app.New(cfg, app.Dependencies{Logger: logger})
	if err != nil {
		return err
	}
	_, err = application.Sweep()
	return err
}

func main() {
	opts := command.Options{
		Version:     version,
		TempDirBase: helpers.GetEnv("TEMP_DEMO_TEMP_DIR", os.TempDir()),
		RunApp:      runApp,
		RunSweep:    runSweep,
		InitLogging: func(debug bool) {
			if debug {
				loggingInit(logging.DEBUG)
			} else {
				loggingInit(logging.INFO)
			}
		},
	}

	if err := command.Execute(opts, nil); err != nil {
		os.Exit(1)
	}
}
