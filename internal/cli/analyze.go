package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"cng-analyzer/internal/chart"
	"cng-analyzer/internal/export"
	"cng-analyzer/internal/logging"
	"cng-analyzer/internal/model"
	"cng-analyzer/internal/pipeline"
	"cng-analyzer/internal/report"
	"cng-analyzer/internal/usagelog"
)

// LoggedMessage confirms that the usage log was written.
const LoggedMessage = "Your input and results have been logged."

type analyzeFlags struct {
	scenario    model.Scenario
	pdf         string
	xlsx        string
	chartsDir   string
	chartFormat string
	noLog       bool
}

func newAnalyzeCmd(e *env) *cobra.Command {
	var f analyzeFlags
	d := model.DefaultScenario()

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze one vehicle's petrol and CNG running costs",
		Long: `Computes cost per km for each fuel, the monthly savings from CNG and the
number of months the conversion takes to pay back. Unset flags take the
configured defaults. Each run is appended to the usage log unless --no-log is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAnalyze(cmd, e, f)
		},
	}

	fl := cmd.Flags()
	fl.Float64Var(&f.scenario.PetrolPrice, "petrol-price", d.PetrolPrice, "petrol price per litre (NGN)")
	fl.Float64Var(&f.scenario.CNGPrice, "cng-price", d.CNGPrice, "CNG price per standard cubic metre (NGN/SCM)")
	fl.Float64Var(&f.scenario.DistancePerMonth, "distance", d.DistancePerMonth, "distance driven per month (km)")
	fl.Float64Var(&f.scenario.PetrolConsumption, "petrol-consumption", d.PetrolConsumption, "petrol consumption (L/100km)")
	fl.Float64Var(&f.scenario.CNGConsumption, "cng-consumption", d.CNGConsumption, "CNG consumption (SCM/100km)")
	fl.Float64Var(&f.scenario.ConversionCost, "conversion-cost", d.ConversionCost, "one-off conversion cost (NGN)")
	fl.StringVar(&f.pdf, "pdf", "", "write the PDF report to this file")
	fl.StringVar(&f.xlsx, "xlsx", "", "write the Excel report to this file")
	fl.StringVar(&f.chartsDir, "charts", "", "render the charts into this directory")
	fl.StringVar(&f.chartFormat, "chart-format", string(chart.FormatSVG), "chart image format (svg or png)")
	fl.BoolVar(&f.noLog, "no-log", false, "do not append this run to the usage log")

	return cmd
}

func runAnalyze(cmd *cobra.Command, e *env, f analyzeFlags) error {
	s := scenarioFromFlags(cmd, f.scenario, e.cfg.Defaults.ToModel())
	if err := s.Validate(); err != nil {
		return err
	}
	format, err := chart.ParseFormat(f.chartFormat)
	if err != nil {
		return err
	}

	var log pipeline.Logger
	if !f.noLog {
		log = usagelog.NewAppender(e.cfg.LogFile)
	}
	engine := pipeline.New(log, nil, logging.Component(e.logger, "pipeline"))

	out, runErr := engine.Run(s)
	w := cmd.OutOrStdout()
	if err := printOutcome(w, out); err != nil {
		return err
	}
	if runErr != nil {
		return runErr
	}
	if out.Logged {
		fmt.Fprintln(w, LoggedMessage)
	}

	if f.pdf != "" {
		if err := writeExport(w, f.pdf, out.Result, export.PDF); err != nil {
			return err
		}
	}
	if f.xlsx != "" {
		if err := writeExport(w, f.xlsx, out.Result, export.XLSX); err != nil {
			return err
		}
	}
	if f.chartsDir != "" {
		if err := writeCharts(w, f.chartsDir, format, out.Charts); err != nil {
			return err
		}
	}
	return nil
}

// scenarioFromFlags takes each field from its flag when set and from defaults otherwise.
func scenarioFromFlags(cmd *cobra.Command, flags, defaults model.Scenario) model.Scenario {
	s := defaults
	pick := func(name string, dst *float64, v float64) {
		if cmd.Flags().Changed(name) {
			*dst = v
		}
	}
	pick("petrol-price", &s.PetrolPrice, flags.PetrolPrice)
	pick("cng-price", &s.CNGPrice, flags.CNGPrice)
	pick("distance", &s.DistancePerMonth, flags.DistancePerMonth)
	pick("petrol-consumption", &s.PetrolConsumption, flags.PetrolConsumption)
	pick("cng-consumption", &s.CNGConsumption, flags.CNGConsumption)
	pick("conversion-cost", &s.ConversionCost, flags.ConversionCost)
	return s
}

func printOutcome(w io.Writer, out *pipeline.Outcome) error {
	fmt.Fprintln(w, report.Title)
	fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 0, 0, tabPadding, ' ', 0)
	for _, m := range out.Metrics {
		fmt.Fprintf(tw, "%s\t%s\n", m.Label, m.Value)
	}
	if out.Result.Payback.IsNone() {
		fmt.Fprintf(tw, "Payback Period\t%s\n", report.PaybackText(out.Result.Payback))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "[%s] %s\n", out.Advice.Tier, out.Advice.Message)
	if out.Advice.Warning != "" {
		fmt.Fprintf(w, "Warning: %s\n", out.Advice.Warning)
	}
	return nil
}

func writeExport(w io.Writer, path string, r model.Result, encode func(model.Result) ([]byte, error)) error {
	b, err := encode(r)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	fmt.Fprintf(w, "Wrote %s\n", path)
	return nil
}

func writeCharts(w io.Writer, dir string, format chart.Format, charts []chart.Config) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create charts dir: %w", err)
	}
	for _, c := range charts {
		var buf bytes.Buffer
		if err := chart.Render(c, format, &buf); err != nil {
			return fmt.Errorf("render %s chart: %w", c.Kind, err)
		}
		path := filepath.Join(dir, fmt.Sprintf("%s.%s", c.Kind, format))
		if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		fmt.Fprintf(w, "Wrote %s\n", path)
	}
	return nil
}
