package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"cng-analyzer/internal/report"
	"cng-analyzer/internal/usagelog"
)

func newHistoryCmd(e *env) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List analyses recorded in the usage log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if limit < 0 {
				return fmt.Errorf("limit must be >= 0, got %d", limit)
			}
			entries, err := usagelog.ReadAll(e.cfg.LogFile)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No analyses logged in %s\n", e.cfg.LogFile)
				return nil
			}
			if limit > 0 && limit < len(entries) {
				entries = entries[len(entries)-limit:]
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, tabPadding, ' ', 0)
			fmt.Fprintln(w, "Date\tDistance\tPetrol/km\tCNG/km\tMonthly Savings\tPayback")
			fmt.Fprintln(w, "----\t--------\t---------\t------\t---------------\t-------")
			for _, en := range entries {
				fmt.Fprintf(w, "%s\t%g km\t%s\t%s\t%s\t%s\n",
					en.Date.Format(usagelog.DateLayout),
					en.DistancePerMonth,
					report.Currency(en.PetrolCostPerKm),
					report.Currency(en.CNGCostPerKm),
					report.GroupedCurrency(en.MonthlySavings),
					report.PaybackText(en.Payback),
				)
			}
			return w.Flush()
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "show only the most recent N rows (0 = all)")

	return cmd
}
