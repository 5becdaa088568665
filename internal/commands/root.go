// internal/commands/root.go
package benchpage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mwiater/benchpage/internal/appconfig"
	"github.com/mwiater/benchpage/internal/benchdata"
	"github.com/mwiater/benchpage/internal/logging"
	"github.com/mwiater/benchpage/internal/report"
	"github.com/mwiater/benchpage/internal/tui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const usageLine = "Usage: benchpage <filename>"

// ErrUsage is returned when the command is not given exactly one input file.
var ErrUsage = errors.New("expected exactly one input file")

var (
	cfgFile       string
	currentConfig *appconfig.Config
	appVersion    = "dev"
	appCommit     = "none"
	appDate       = "unknown"

	exit = os.Exit
)

// rootCmd renders the latest Rust benchmark run of a history file as index.html.
var rootCmd = &cobra.Command{
	Use:   "benchpage <filename>",
	Short: "Render the latest Rust benchmark run as a static HTML page",
	Long: `Read a benchmark history script (window.BENCHMARK_DATA = {...};), print the
decoded data, and write index.html in the current directory with the key
generation and signing timings of the most recent run, in milliseconds.`,
	Args:          exactlyOneFile,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := ensureConfigLoaded(); err != nil {
			return err
		}

		for _, name := range []string{"debug", "summary", "noColor"} {
			if !cmd.Flags().Changed(name) {
				val := viper.GetBool(name)
				_ = cmd.Flags().Set(name, strconv.FormatBool(val))
			}
		}
		if !cmd.Flags().Changed("logFile") {
			_ = cmd.Flags().Set("logFile", viper.GetString("logFile"))
		}

		var cfg appconfig.Config
		if err := viper.Unmarshal(&cfg); err != nil {
			return fmt.Errorf("unmarshal config: %w", err)
		}
		cfg.ConfigPath = viper.ConfigFileUsed()
		currentConfig = &cfg

		if !cfg.ColorEnabled() {
			tui.DisableColor()
		}
		if err := logging.Init(cfg.LogFilePath(), cfg.Debug); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		if cfg.Debug {
			appconfig.ShowConfig(cmd.ErrOrStderr(), cfg.ConfigPath, cfg)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := report.Options{
			InputPath:  args[0],
			OutputPath: report.OutputFile,
			Summary:    currentConfig != nil && currentConfig.Summary,
		}
		if err := report.Generate(opts, cmd.OutOrStdout()); err != nil {
			tui.Failure(cmd.OutOrStdout(), benchdata.Diagnostic(err))
			logging.LogEvent("generate failed: %v", err)
			return reportedError{err}
		}
		return nil
	},
}

// Execute runs the root command and exits with status 1 on any failure.
// This is called by main.main().
func Execute() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", appVersion, appCommit, appDate)

	err := rootCmd.Execute()
	_ = logging.Close()
	if err != nil {
		var reported reportedError
		if !errors.Is(err, ErrUsage) && !errors.As(err, &reported) {
			tui.Failure(rootCmd.OutOrStdout(), "Error: "+err.Error())
		}
		exit(1)
	}
}

// reportedError marks a failure whose diagnostic was already printed.
type reportedError struct {
	err error
}

func (e reportedError) Error() string { return e.err.Error() }

func (e reportedError) Unwrap() error { return e.err }

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default ./benchpage.json)")

	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging to stderr")
	rootCmd.PersistentFlags().Bool("summary", false, "print a terminal summary after writing the page")
	rootCmd.PersistentFlags().Bool("noColor", false, "disable colored status output")
	rootCmd.PersistentFlags().String("logFile", "", "append log output to this file")

	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("summary", rootCmd.PersistentFlags().Lookup("summary"))
	_ = viper.BindPFlag("noColor", rootCmd.PersistentFlags().Lookup("noColor"))
	_ = viper.BindPFlag("logFile", rootCmd.PersistentFlags().Lookup("logFile"))
}

// exactlyOneFile prints the usage line when the argument count is wrong.
func exactlyOneFile(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		fmt.Fprintln(cmd.OutOrStdout(), usageLine)
		return ErrUsage
	}
	return nil
}

// initConfig points viper at the config file and environment.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(appconfig.DefaultConfigName)
		viper.SetConfigType("json")
	}
	viper.SetEnvPrefix(appconfig.EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
}

// ensureConfigLoaded loads .env and the config file. Both are optional.
func ensureConfigLoaded() error {
	_ = godotenv.Load()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load config: %w", err)
	}
	return nil
}

// GetConfig returns the loaded application configuration for other packages.
func GetConfig() *appconfig.Config {
	return currentConfig
}

// SetVersionInfo allows the main package to inject build-time variables.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}
