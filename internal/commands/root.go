// internal/commands/root.go
package linegrep

import (
	"fmt"
	"os"
	"strconv"

	"github.com/k0kubun/pp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mwiater/linegrep/internal/appconfig"
	"github.com/mwiater/linegrep/internal/logging"
	"github.com/mwiater/linegrep/internal/runner"
)

var (
	cfgFile       string
	currentConfig *appconfig.Config
	appVersion    = "dev"
	appCommit     = "none"
	appDate       = "unknown"
)

// rootCmd represents the base command: it searches a file for a query and
// prints every matching line to stdout.
var rootCmd = &cobra.Command{
	Use:   "linegrep <query> <file>",
	Short: "linegrep — print every line of a file containing a query string",
	Long: `linegrep searches a plain-text file for a query string and prints every
line containing it, in file order. Setting the IGNORE_CASE environment
variable (to any value, including empty) makes the search case-insensitive,
as does the --ignore-case flag.`,
	Args:              cobra.ArbitraryArgs,
	SilenceUsage:      true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		fileCfg, err := appconfig.Load(cfgFile)
		if err != nil {
			return err
		}

		for name, val := range map[string]bool{
			"ignore-case":  fileCfg.IgnoreCase,
			"line-numbers": fileCfg.LineNumbers,
			"color":        fileCfg.Color,
			"debug":        fileCfg.Debug,
		} {
			if !cmd.Flags().Changed(name) {
				_ = cmd.Flags().Set(name, strconv.FormatBool(val))
			}
		}
		if !cmd.Flags().Changed("logFile") {
			_ = cmd.Flags().Set("logFile", fileCfg.LogFile)
		}

		cfg := appconfig.Config{
			IgnoreCase:  viper.GetBool("ignoreCase"),
			LineNumbers: viper.GetBool("lineNumbers"),
			Color:       viper.GetBool("color"),
			Debug:       viper.GetBool("debug"),
			LogFile:     viper.GetString("logFile"),
			ConfigPath:  fileCfg.ConfigPath,
		}
		currentConfig = &cfg

		if err := logging.Init(cfg.LogFilePath()); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		resolved, err := appconfig.Resolve(append([]string{cmd.Root().Name()}, args...), os.LookupEnv)
		if err != nil {
			return err
		}

		cfg := *GetConfig()
		cfg.Query = resolved.Query
		cfg.FilePath = resolved.FilePath
		cfg.IgnoreCase = cfg.IgnoreCase || resolved.IgnoreCase

		if cfg.Debug {
			pp.Fprintln(cmd.ErrOrStderr(), cfg)
		}
		logging.LogEvent("searching %s for %q", cfg.FilePath, cfg.Query)

		return runner.Run(cfg, cmd.OutOrStdout())
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", appVersion, appCommit, appDate)

	defer logging.Close()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", appconfig.DefaultConfigPath, "config file (e.g., config/config.json)")

	rootCmd.PersistentFlags().BoolP("ignore-case", "i", false, "match case-insensitively")
	rootCmd.PersistentFlags().BoolP("line-numbers", "n", false, "prefix each match with its line number")
	rootCmd.PersistentFlags().Bool("color", false, "highlight query occurrences in matches")
	rootCmd.PersistentFlags().Bool("debug", false, "dump the resolved configuration before running")
	rootCmd.PersistentFlags().String("logFile", "", "append run events to this file")

	_ = viper.BindPFlag("ignoreCase", rootCmd.PersistentFlags().Lookup("ignore-case"))
	_ = viper.BindPFlag("lineNumbers", rootCmd.PersistentFlags().Lookup("line-numbers"))
	_ = viper.BindPFlag("color", rootCmd.PersistentFlags().Lookup("color"))
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("logFile", rootCmd.PersistentFlags().Lookup("logFile"))
}

// GetConfig returns the loaded application configuration for other packages.
func GetConfig() *appconfig.Config {
	if currentConfig == nil {
		return &appconfig.Config{}
	}
	return currentConfig
}

// DebugEnabled returns true if debug mode is enabled.
func DebugEnabled() bool { return viper.GetBool("debug") }

// SetVersionInfo allows the main package to inject build-time variables.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}
