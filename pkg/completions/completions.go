// Package completions provides shell completion for stored snippet keys.
package completions

import (
	"strings"

	"clipstash/pkg/config"
	"clipstash/pkg/history"
	"clipstash/pkg/store"

	"github.com/spf13/cobra"
)

// CompleteKeys completes the key positional argument from the current store.
func CompleteKeys(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	cfg, err := config.Load()
	if err != nil {
		return []string{}, cobra.ShellCompDirectiveNoFileComp
	}

	st, err := store.Load(cfg.StorePath())
	if err != nil {
		return []string{}, cobra.ShellCompDirectiveNoFileComp
	}

	return filterPrefix(st.Keys(), toComplete), cobra.ShellCompDirectiveNoFileComp
}

// CompleteOps completes the --op flag of the history commands.
func CompleteOps(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	ops := []string{history.OpSave, history.OpLoad, history.OpDelete}
	return filterPrefix(ops, toComplete), cobra.ShellCompDirectiveNoFileComp
}

func filterPrefix(candidates []string, prefix string) []string {
	if prefix == "" {
		return candidates
	}
	matched := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if strings.HasPrefix(c, prefix) {
			matched = append(matched, c)
		}
	}
	return matched
}
