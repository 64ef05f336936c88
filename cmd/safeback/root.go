package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/safeback/pkg/safeback"
	"github.com/arthur-debert/safeback/pkg/safeback/config"
)

var (
	flagConfig   string
	flagRoot     string
	flagUser     string
	flagLogFile  string
	flagLogLevel string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "safeback",
	Short: "Safe point-in-time backup, restore, and deletion of files",
	Long: `safeback keeps timestamped backup copies of individual files inside a
single working directory. Every file name is validated against path
traversal before anything touches the filesystem, and each successful
operation is appended to an audit record.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default is .safeback.yaml in the working directory)")
	rootCmd.PersistentFlags().StringVar(&flagRoot, "root", "", "working directory (default: current directory)")
	rootCmd.PersistentFlags().StringVar(&flagUser, "user", "", "acting user recorded in the audit log (default: OS account)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "audit log file name inside the working directory")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "diagnostic log level (trace, debug, info, warn, error)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(newBackupCommand())
	rootCmd.AddCommand(newRestoreCommand())
	rootCmd.AddCommand(newDeleteCommand())
	rootCmd.AddCommand(newShellCommand())
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  `Print the version number of safeback`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("safeback version %s (commit: %s, built: %s)\n", version, commit, date)
	},
}

// newService resolves config and flags into a ready Service.
func newService() (*safeback.Service, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	if flagRoot != "" {
		cfg.Root = flagRoot
	}
	if flagUser != "" {
		cfg.User = flagUser
	}
	if flagLogFile != "" {
		cfg.LogFile = flagLogFile
	}
	if flagLogLevel != "" {
		cfg.LogLevel = flagLogLevel
	}

	level, err := safeback.LogLevelFromString(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	return safeback.New(cfg.Root,
		safeback.WithLogger(safeback.NewLogger(os.Stderr, level)),
		safeback.WithUser(cfg.User),
		safeback.WithAuditFile(cfg.LogFile),
	)
}
