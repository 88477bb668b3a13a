package main

import (
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/wayneeseguin/lumen/pkg/lumen"
)

// Scenario names accepted by --scenario.
const (
	scenarioAll     = "all"
	scenarioDefault = "default"
	scenarioCustom  = "custom"
	scenarioDynamic = "dynamic"
)

type options struct {
	configFile  string
	envFile     string
	scenario    string
	level       string
	outputs     string
	file        string
	noColor     bool
	unsafe      bool
	processSafe bool
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "lumen-demo",
		Short: "Demonstrate the lumen logger",
		Long: `Runs the lumen logger through three scenarios:

  default  initialize with the default configuration and log at every level
  custom   log to the console and a file at DEBUG level
  dynamic  raise the threshold to ERROR and turn colors off at runtime

Settings come from --config, then LUMEN_* environment variables (a .env file
is loaded if present), then flags.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadEnvFile(opts.envFile)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, opts)
			if err != nil {
				return err
			}
			return run(cmd.OutOrStdout(), cmd.ErrOrStderr(), opts.scenario, cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.configFile, "config", "", "YAML configuration file")
	flags.StringVar(&opts.envFile, "env-file", ".env", "dotenv file with LUMEN_* variables")
	flags.StringVar(&opts.scenario, "scenario", scenarioAll, "scenario to run: all, default, custom or dynamic")
	flags.StringVar(&opts.level, "level", "debug", "minimum level for the custom scenario")
	flags.StringVar(&opts.outputs, "outputs", "console,file", "sinks for the custom scenario")
	flags.StringVar(&opts.file, "file", "app.log", "log file for the custom scenario")
	flags.BoolVar(&opts.noColor, "no-color", false, "disable console colors")
	flags.BoolVar(&opts.unsafe, "unsafe", false, "skip the logger's internal locking")
	flags.BoolVar(&opts.processSafe, "process-safe", false, "lock the log file around every write")

	return cmd
}

// loadEnvFile loads path into the environment. A missing file is fine.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if os.IsNotExist(errors.Cause(err)) {
			return nil
		}
		return errors.Wrapf(err, "load %s", path)
	}
	return nil
}

// resolveConfig builds the custom scenario's configuration. Flags win over
// the environment, which wins over the config file.
func resolveConfig(cmd *cobra.Command, opts *options) (lumen.Config, error) {
	cfg := lumen.Config{
		Level:         lumen.LevelDebug,
		Outputs:       lumen.OutputConsole | lumen.OutputFile,
		FilePath:      "app.log",
		ColorsEnabled: true,
		ThreadSafe:    true,
	}

	if opts.configFile != "" {
		fileCfg, err := lumen.LoadConfigFile(opts.configFile)
		if err != nil {
			return cfg, err
		}
		cfg = fileCfg
	}

	cfg, err := lumen.ConfigFromEnv(cfg)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("level") {
		level, err := lumen.ParseLevel(opts.level)
		if err != nil {
			return cfg, err
		}
		cfg.Level = level
	}
	if flags.Changed("outputs") {
		outputs, err := lumen.ParseOutputs(opts.outputs)
		if err != nil {
			return cfg, err
		}
		cfg.Outputs = outputs
	}
	if flags.Changed("file") {
		cfg.FilePath = opts.file
	}
	if opts.noColor {
		cfg.ColorsEnabled = false
	}
	if opts.unsafe {
		cfg.ThreadSafe = false
	}
	if opts.processSafe {
		cfg.ProcessSafe = true
	}

	return cfg, cfg.Validate()
}

func run(stdout, stderr io.Writer, scenario string, cfg lumen.Config) error {
	logger, err := lumen.New(lumen.WithConsole(stdout, stderr))
	if err != nil {
		return err
	}

	switch scenario {
	case scenarioAll:
		if err := runDefault(stdout, logger, cfg); err != nil {
			return err
		}
		if err := runCustom(stdout, logger, cfg, true); err != nil {
			return err
		}
	case scenarioDefault:
		return runDefault(stdout, logger, cfg)
	case scenarioCustom:
		return runCustom(stdout, logger, cfg, false)
	case scenarioDynamic:
		return runCustom(stdout, logger, cfg, true)
	default:
		return errors.Errorf("unknown scenario %q", scenario)
	}

	if cfg.Outputs.Has(lumen.OutputFile) && cfg.FilePath != "" {
		fmt.Fprintf(stdout, "\nLog example completed, please check %s\n", cfg.FilePath)
	}
	return nil
}

// runDefault initializes with the logger's starting configuration, which
// is lumen.DefaultConfig. Only the color and locking switches carry over.
func runDefault(stdout io.Writer, logger *lumen.Logger, cfg lumen.Config) error {
	fmt.Fprintln(stdout, "=== Example 1: Default Configuration ===")

	logger.EnableColors(cfg.ColorsEnabled)
	if err := logger.Init(nil); err != nil {
		return errors.Wrap(err, "log initialization failed")
	}
	defer logger.Cleanup()

	logger.Infof("Application started")
	logger.Debugf("Debug info: value = %d", 42)
	logger.Warnf("Warning message")
	logger.Errorf("Error message: %s", "something went wrong")
	logger.Infof("Application running...")
	return nil
}

func runCustom(stdout io.Writer, logger *lumen.Logger, cfg lumen.Config, dynamic bool) error {
	fmt.Fprintln(stdout, "\n=== Example 2: Custom Configuration ===")

	if err := logger.Init(&cfg); err != nil {
		return errors.Wrap(err, "log initialization failed")
	}
	defer logger.Cleanup()

	logger.Infof("Started with custom configuration")
	logger.Debugf("Debug mode enabled")
	logger.Warnf("This is a warning")
	logger.Errorf("This is an error")

	if !dynamic {
		return nil
	}

	fmt.Fprintln(stdout, "\n=== Example 3: Dynamic Configuration ===")
	logger.SetLevel(lumen.LevelError)
	logger.Debugf("This debug message will not be shown")
	logger.Infof("This info message will not be shown")
	logger.Errorf("Only error level will be shown")

	logger.EnableColors(false)
	logger.Errorf("Colors disabled")
	return nil
}
