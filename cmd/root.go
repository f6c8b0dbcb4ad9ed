package cmd

import (
	"fmt"
	"os"

	"clipstash/pkg/errors"
	"clipstash/pkg/logger"

	"github.com/spf13/cobra"
)

const unknownValue = "unknown"

var (
	Version   string
	BuildTime string
	GitCommit string
)

var storePathFlag string
var assumeYesFlag bool
var logLevel string

var rootCmd = &cobra.Command{
	Use:   "clipstash",
	Short: "Multi-clipboard snippet manager",
	Long: `clipstash stores named snippets of text from the system clipboard and
copies them back on demand. Snippets persist in a local JSON file; an
optional SQLite history records every operation.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Set log level: explicit flag takes precedence over env var
		level := logLevel
		if !cmd.Flags().Changed("log-level") {
			if envLevel := os.Getenv("CLIPSTASH_LOG_LEVEL"); envLevel != "" {
				level = envLevel
			}
		}
		logger.SetLevel(level)
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		ver := Version
		if ver == "" {
			ver = "dev"
		}
		bt := BuildTime
		if bt == "" {
			bt = unknownValue
		}
		gc := GitCommit
		if gc == "" {
			gc = unknownValue
		}

		fmt.Printf("clipstash version %s\n", ver)
		fmt.Printf("Built: %s\n", bt)
		fmt.Printf("Git commit: %s\n", gc)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		exitCode := errors.HandleReturn(err)
		os.Exit(int(exitCode))
	}
}

func init() {
	RegisterCommands(rootCmd)

	rootCmd.PersistentFlags().StringVar(&storePathFlag, "store", "", "Path to the snippet store file (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&assumeYesFlag, "yes", "y", false, "Skip confirmation prompts")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error, fatal, panic)")
}
