package cmd

import (
	"fmt"
	"os"

	"clipstash/pkg/errors"
	"clipstash/pkg/filter"

	"github.com/spf13/cobra"
)

var (
	listFormat    string
	listFilter    string
	listMatchMode string
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List all stored snippets",
	Long:    `List every stored key/value pair, one per line, keys sorted.`,
	Example: `  # Plain listing
  clipstash list

  # Machine-readable output
  clipstash list --format json

  # Only keys containing 'alias'
  clipstash list --filter alias

  # Fuzzy key matching
  clipstash list --filter sla --match fuzzy`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, cleanup, err := newService()
		if err != nil {
			return err
		}
		defer cleanup()

		writer := NewOutputWriter(listFormat)

		if listFilter == "" && !writer.IsStructured() {
			if svc.Store().Len() == 0 {
				fmt.Println("No snippets stored.")
				return nil
			}
			return svc.List(os.Stdout)
		}

		keys := svc.Store().Keys()
		if listFilter != "" {
			mode, err := filter.ParseMode(listMatchMode)
			if err != nil {
				return errors.ValidationError(err.Error())
			}
			sf, err := filter.NewStringFilter(listFilter, mode)
			if err != nil {
				return errors.ValidationError(err.Error())
			}
			keys = sf.Keys(keys)
		}

		items := svc.Store().Items()
		if writer.IsStructured() {
			matched := make(map[string]string, len(keys))
			for _, k := range keys {
				matched[k] = items[k]
			}
			return writer.Write(matched)
		}

		if len(keys) == 0 {
			fmt.Println("No snippets matched.")
			return nil
		}
		for _, k := range keys {
			fmt.Printf("%s\t%s\n", k, items[k])
		}
		return nil
	},
}

func init() {
	listCmd.Flags().StringVar(&listFormat, "format", "table", fmt.Sprintf("Output format %v", ValidFormats()))
	listCmd.Flags().StringVar(&listFilter, "filter", "", "Only list keys matching this pattern")
	listCmd.Flags().StringVar(&listMatchMode, "match", "contains", "Pattern matching mode (exact, contains, regex, fuzzy)")
}
