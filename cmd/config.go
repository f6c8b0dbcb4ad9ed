package cmd

import (
	"fmt"
	"os"

	"clipstash/pkg/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage clipstash configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		fmt.Println("Current Configuration:")
		fmt.Println("======================")
		fmt.Printf("Store path: %s\n", cfg.StorePath())
		fmt.Printf("History: %s\n", func() string {
			if cfg.HistoryEnabled() {
				return "enabled"
			}
			return "disabled"
		}())
		fmt.Printf("History path: %s\n", cfg.HistoryPath())

		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the effective configuration to the config file",
	Long: `Write the currently effective configuration to the config file so it can
be edited. Existing files are only replaced after confirmation.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.GetConfigPath()
		if err != nil {
			return err
		}

		if _, err := os.Stat(path); err == nil {
			confirmed, err := ConfirmPrompt(fmt.Sprintf("Config file %s exists. Overwrite", path))
			if err != nil {
				return err
			}
			if !confirmed {
				fmt.Println("Config file left untouched.")
				return nil
			}
		}

		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if err := config.Save(cfg); err != nil {
			return err
		}

		fmt.Printf("Wrote %s\n", path)
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show configuration file path",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.GetConfigPath()
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	},
}
