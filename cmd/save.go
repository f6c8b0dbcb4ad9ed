package cmd

import (
	"fmt"

	"clipstash/pkg/completions"
	"clipstash/pkg/errors"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var saveCmd = &cobra.Command{
	Use:   "save [key]",
	Short: "Save the current clipboard contents under a key",
	Long: `Save the current clipboard contents under a key. When the key is omitted
you are prompted for one. Saving to an existing key asks for confirmation
before overwriting (skip with --yes).`,
	Example: `  # Save under a key given on the command line
  clipstash save shell-alias

  # Prompt for the key
  clipstash save

  # Overwrite without asking
  clipstash save shell-alias --yes`,
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

		err = svc.Save(key, func(k string) (bool, error) {
			return ConfirmPrompt(fmt.Sprintf("A key named '%s' already exists. Overwrite", k))
		})
		if errors.IsExitCode(err, errors.ExitCodeCancellation) {
			yellow := color.New(color.FgYellow)
			_, _ = yellow.Println("Save canceled, stored value is unchanged.")
			return nil
		}
		if err != nil {
			return err
		}

		fmt.Printf("Saved clipboard contents under '%s'.\n", key)
		return nil
	},
}
