package cli

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"cng-analyzer/internal/analysis"
	"cng-analyzer/internal/data"
	"cng-analyzer/internal/report"
)

func newRankCmd(e *env) *cobra.Command {
	var scenariosPath string

	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Rank several vehicles by how fast a CNG conversion pays back",
		Long: `Loads named scenarios from a YAML or JSON file and ranks them fastest
payback first. Fields a scenario omits take the configured defaults.
Ranked scenarios are not written to the usage log.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if scenariosPath == "" {
				return errors.New("--scenarios is required")
			}
			scenarios, err := data.LoadScenarios(scenariosPath, e.cfg.Defaults.ToModel())
			if err != nil {
				return err
			}
			ranked := analysis.Rank(scenarios)
			e.logger.Debug().Int("scenarios", len(ranked)).Msg("ranked")
			return printRanking(cmd, ranked, analysis.Summarize(ranked))
		},
	}
	cmd.Flags().StringVar(&scenariosPath, "scenarios", "", "YAML or JSON file listing named scenarios")

	return cmd
}

func printRanking(cmd *cobra.Command, ranked []analysis.Ranked, sum analysis.Summary) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, tabPadding, ' ', 0)

	fmt.Fprintln(w, "Rank\tName\tMonthly Savings\tPayback\tRecommendation")
	fmt.Fprintln(w, "----\t----\t---------------\t-------\t--------------")
	for _, r := range ranked {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			r.Rank,
			r.Name,
			report.GroupedCurrency(r.Result.MonthlySavings),
			report.PaybackText(r.Result.Payback),
			r.Recommendation,
		)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out)
	fmt.Fprintf(out, "%d scenarios, %d with payback\n", sum.Count, sum.WithPayback)
	fmt.Fprintf(out, "Total monthly savings: %s\n", report.GroupedCurrency(sum.TotalSavings))
	fmt.Fprintf(out, "Fleet payback: %s\n", report.PaybackText(sum.FleetPayback))
	return nil
}
