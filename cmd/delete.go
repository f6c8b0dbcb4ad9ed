package cmd

import (
	"fmt"

	"clipstash/pkg/completions"
	"clipstash/pkg/errors"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:     "delete [key]",
	Aliases: []string{"rm"},
	Short:   "Delete a stored snippet",
	Example: `  # Delete the snippet stored under 'shell-alias'
  clipstash delete shell-alias

  # Prompt for the key
  clipstash delete`,
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

		if err := svc.Delete(key); err != nil {
			return err
		}

		fmt.Printf("Deleted '%s'.\n", key)
		return nil
	},
}
