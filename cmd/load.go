package cmd

import (
	"fmt"

	"clipstash/pkg/completions"
	"clipstash/pkg/errors"

	"github.com/spf13/cobra"
)

var loadCmd = &cobra.Command{
	Use:   "load [key]",
	Short: "Copy a stored snippet back to the clipboard",
	Example: `  # Copy the snippet stored under 'shell-alias'
  clipstash load shell-alias

  # Prompt for the key
  clipstash load`,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completions.CompleteKeys,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, cleanup, err := newService()
		if err != nil {
			return err
		}
		defer cleanup()

		key, err := resolveKey(args)
		if err != nil {
			return errors.NewWithError(errors.ExitCodeGeneral, "failed to read key", err)
		}

		if err := svc.Load(key); err != nil {
			return err
		}

		fmt.Printf("Copied '%s' to the clipboard.\n", key)
		return nil
	},
}
