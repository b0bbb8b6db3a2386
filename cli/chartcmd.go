package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/aledsdavies/rescode/core/chart"
	"github.com/aledsdavies/rescode/core/formatter"
)

func newChartCmd(a *app) *cobra.Command {
	var (
		series    string
		from, to  int
		tolerance float64
		out       string
	)

	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Print or export the color codes of an E-series",
		Long: `List every value of an E-series over a range of decades with its
4-band color code. Decade 0 covers 1 Ω to 9.1 Ω, decade 3 covers 1 kΩ to 9.1 kΩ.

With --out the chart is written as an xlsx workbook with colored cells.`,
		Example: `  rescode chart --series E6 --from 2 --to 3
  rescode chart --series E24 --out e24.xlsx`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := chart.ParseSeries(series)
			if err != nil {
				return &CLIError{Type: "input", Message: err.Error(), Hint: "use E6, E12 or E24"}
			}
			rows, err := chart.Build(s, from, to, tolerance)
			if err != nil {
				return err
			}

			if out == "" {
				return a.printChart(rows)
			}
			return a.writeChart(out, s, rows)
		},
	}

	cmd.Flags().StringVar(&series, "series", a.cfg.ChartSeries, "E-series: E6, E12 or E24")
	cmd.Flags().IntVar(&from, "from", 0, "First decade")
	cmd.Flags().IntVar(&to, "to", 6, "Last decade")
	cmd.Flags().Float64Var(&tolerance, "tolerance", 5, "Tolerance band in percent")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Write an xlsx workbook to this file")
	return cmd
}

func (a *app) printChart(rows []chart.Row) error {
	useColor := a.useColor()
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	for _, r := range rows {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\n", r.Text, formatter.Strip(r.Bands, useColor), formatter.FormatCode(r.Bands))
	}
	return tw.Flush()
}

func (a *app) writeChart(path string, s chart.Series, rows []chart.Row) error {
	f, err := os.Create(path)
	if err != nil {
		return &CLIError{Type: "chart", Message: "cannot create workbook", Details: err.Error()}
	}

	err = chart.WriteXLSX(f, fmt.Sprintf("%s resistors", s), rows)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("write chart %s: %w", path, err)
	}

	_, _ = fmt.Fprintf(a.out, "Wrote %d values to %s\n", len(rows), path)
	return nil
}
