package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/runecast/history"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent casts",
	Long: `Show recent casts from the history database, newest first, with all-time totals.

Example:
  runecast history --limit 20`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 10, "number of casts to show")
}

func runHistory(cmd *cobra.Command, args []string) error {
	if cfg.HistoryDB == "" {
		return fmt.Errorf("no history database configured")
	}
	store, err := history.Open(cfg.HistoryDB)
	if err != nil {
		return err
	}
	defer store.Close()

	records, err := store.Recent(historyLimit)
	if err != nil {
		return err
	}
	sum, err := store.Summary()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderHistory(records, sum))
	return nil
}
