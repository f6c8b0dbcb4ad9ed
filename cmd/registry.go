package cmd

import "github.com/spf13/cobra"

func RegisterCommands(root *cobra.Command) {
	root.AddCommand(versionCmd)

	root.AddCommand(saveCmd)
	root.AddCommand(loadCmd)
	root.AddCommand(listCmd)
	root.AddCommand(deleteCmd)
	root.AddCommand(historyCmd)
	root.AddCommand(configCmd)

	historyCmd.AddCommand(
		historyListCmd,
		historyClearCmd,
	)

	configCmd.AddCommand(
		configShowCmd,
		configInitCmd,
		configPathCmd,
	)
}
