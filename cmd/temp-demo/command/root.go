package command

import (
	"errors"
	"fmt"

	"github.com/shini4i/temp-demo/internal/app"
	"github.com/shini4i/temp-demo/internal/helpers"
	"github.com/spf13/cobra"
)

// Options describes the collaborators and defaults required to build the CLI.
type Options struct {
	Version     string
	TempDirBase string
	RunApp      func(app.Config) error
	RunSweep    func(app.Config) error
	InitLogging func(debug bool)
}

// Execute builds and runs the Cobra command tree using the supplied options.
func Execute(opts Options, args []string) error {
	root := newRootCommand(opts)

	if args != nil {
		root.SetArgs(args)
	}

	return root.Execute()
}

// newRootCommand builds the root Cobra command with global flags and hooks.
func newRootCommand(opts Options) *cobra.Command {
	var debug bool

	root := &cobra.Command{
		Use:          "temp-demo",
		Short:        "Demonstrate temporary file lifecycle patterns",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.InitLogging != nil {
				opts.InitLogging(debug)
			}
		},
	}

	root.Version = opts.Version
	root.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable debug mode")

	root.AddCommand(newRunCommand(opts, func() bool { return debug }))
	root.AddCommand(newListCommand())
	root.AddCommand(newCleanCommand(opts, func() bool { return debug }))

	return root
}

// newRunCommand constructs the run subcommand executing the demonstrations.
func newRunCommand(opts Options, debug func() bool) *cobra.Command {
	flags := loadRunDefaults()

	cmd := &cobra.Command{
		Use:   "run [demo...]",
		Short: "Run all or selected demonstrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.NewConfig(args, flags.configOptions(opts, debug())...)
			if err != nil {
				return err
			}

			if opts.RunApp == nil {
				return errors.New("no run handler provided")
			}

			return opts.RunApp(cfg)
		},
	}

	cmd.Flags().IntVar(&flags.files, "files", 3, "Number of files generated in the temp directory demo")
	cmd.Flags().StringVar(&flags.tempDir, "temp-dir", flags.tempDir, "Base directory for temporary artifacts")
	cmd.Flags().StringVar(&flags.shell, "shell", flags.shell, "Interpreter used to spawn the temporary script")
	cmd.Flags().StringVar(&flags.report, "report", "", "Emit a machine-readable run report (yaml)")
	cmd.Flags().BoolVar(&flags.keep, "keep", false, "Keep artifacts instead of cleaning them up")

	return cmd
}

// newListCommand constructs the list subcommand printing the demo catalog.
func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available demonstrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, info := range app.DemoCatalog() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-16s %s\n", info.Name, info.Description)
			}
			return nil
		},
	}
}

// newCleanCommand constructs the clean subcommand sweeping leftover artifacts.
func newCleanCommand(opts Options, debug func() bool) *cobra.Command {
	var tempDir string

	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove leftover demonstration artifacts",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.NewConfig(nil,
				app.WithTempDirBase(firstNonEmpty(tempDir, opts.TempDirBase)),
				app.WithDebug(debug()),
				app.WithVersion(opts.Version),
			)
			if err != nil {
				return err
			}

			if opts.RunSweep == nil {
				return errors.New("no sweep handler provided")
			}

			return opts.RunSweep(cfg)
		},
	}

	cmd.Flags().StringVar(&tempDir, "temp-dir", "", "Base directory for temporary artifacts")

	return cmd
}

type runFlags struct {
	files   int
	tempDir string
	shell   string
	report  string
	keep    bool
}

func loadRunDefaults() runFlags {
	return runFlags{
		files:   3,
		tempDir: helpers.GetEnv("TEMP_DEMO_TEMP_DIR", ""),
		shell:   helpers.GetEnv("TEMP_DEMO_SHELL", ""),
	}
}

func (f runFlags) configOptions(opts Options, debugEnabled bool) []app.ConfigOption {
	return []app.ConfigOption{
		app.WithTempDirBase(firstNonEmpty(f.tempDir, opts.TempDirBase)),
		app.WithFileCount(f.files),
		app.WithInterpreter(f.shell),
		app.WithReportFormat(f.report),
		app.WithKeepArtifacts(f.keep),
		app.WithDebug(debugEnabled),
		app.WithVersion(opts.Version),
	}
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}
