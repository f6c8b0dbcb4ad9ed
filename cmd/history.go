package cmd

import (
	"fmt"

	"clipstash/pkg/completions"
	"clipstash/pkg/history"

	"github.com/spf13/cobra"
)

var (
	historyLimit  int
	historyKey    string
	historyOp     string
	historyFormat string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect the operation history",
	Long: `Inspect the log of save, load and delete operations. History lives in a
local SQLite database and can be disabled with history.enabled: false in the
config file or CLIPSTASH_HISTORY=false.`,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded operations, newest first",
	Example: `  # Last 20 operations
  clipstash history list

  # Everything recorded for one key
  clipstash history list --key shell-alias --limit 0

  # Only deletes
  clipstash history list --op delete`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rec, err := openHistory()
		if err != nil {
			return err
		}
		defer rec.Close()

		events, err := rec.List(history.Filter{
			Op:    historyOp,
			Key:   historyKey,
			Limit: historyLimit,
		})
		if err != nil {
			return err
		}

		writer := NewOutputWriter(historyFormat)
		if writer.IsStructured() {
			return writer.Write(events)
		}

		if len(events) == 0 {
			fmt.Println("No history recorded.")
			return nil
		}
		for _, e := range events {
			fmt.Printf("%s  %-6s  %-20s  %d bytes\n",
				e.CreatedAt.Format("2006-01-02 15:04:05"), e.Op, e.Key, e.Size)
		}
		return nil
	},
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all recorded operations",
	RunE: func(cmd *cobra.Command, args []string) error {
		confirmed, err := ConfirmPrompt("Delete the entire operation history")
		if err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("History left untouched.")
			return nil
		}

		rec, err := openHistory()
		if err != nil {
			return err
		}
		defer rec.Close()

		if err := rec.Clear(); err != nil {
			return err
		}
		fmt.Println("History cleared.")
		return nil
	},
}

func init() {
	historyListCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of events to show (0 for all)")
	historyListCmd.Flags().StringVar(&historyKey, "key", "", "Only show events for this key")
	historyListCmd.Flags().StringVar(&historyOp, "op", "", "Only show events for this operation (save, load, delete)")
	historyListCmd.Flags().StringVar(&historyFormat, "format", "table", fmt.Sprintf("Output format %v", ValidFormats()))
	_ = historyListCmd.RegisterFlagCompletionFunc("op", completions.CompleteOps)
}
