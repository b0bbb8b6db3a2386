package main

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/aledsdavies/rescode/core/colorcode"
	"github.com/aledsdavies/rescode/core/formatter"
	"github.com/aledsdavies/rescode/core/report"
	"github.com/aledsdavies/rescode/runtime/parser"
)

func newEncodeCmd(a *app) *cobra.Command {
	var (
		lines   int
		raw     bool
		jsonOut bool
	)

	cmd := &cobra.Command{
		Use:   "encode [value...]",
		Short: "Show the color bands of resistance values",
		Long: `Parse resistance values such as 4k7, 330 or 2.2M+-5 and show their color bands.

A unit suffix (u, m, k, M, G) may stand in for the decimal point. The
tolerance follows a sign (+, -, +- or ±) and defaults to 5%.`,
		Example: `  rescode encode 4k7 2.2M+-5
  rescode encode --lines 5 470k+-1
  echo 330 | rescode encode
  rescode encode --json 4k7 10k > parts.jsonl`,
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := a.inputValues(args)
			if err != nil {
				return err
			}

			if raw && jsonOut {
				return &CLIError{Type: "input", Message: "--raw and --json cannot be combined"}
			}

			logger := a.logger()
			for i, value := range values {
				if i > 0 && !raw && !jsonOut {
					_, _ = fmt.Fprintln(a.out)
				}
				if err := a.encodeValue(logger, value, lines, raw, jsonOut); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&lines, "lines", 0, "Number of bands (4-6); 0 uses the typed digit count")
	cmd.Flags().BoolVar(&raw, "raw", false, "Print color names in emission order (tolerance first)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print one JSON report per value (a parts list for verify)")
	return cmd
}

func (a *app) encodeValue(logger *slog.Logger, value string, lines int, raw, jsonOut bool) error {
	p := parser.New(value, a.parserOpts(logger)...)
	spec, err := p.Parse()
	for _, e := range p.DebugEvents() {
		logger.Debug("parser event", "event", e.Event, "pos", e.Pos, "context", e.Context)
	}
	if err != nil {
		return err
	}
	if lines != 0 {
		spec = spec.WithLines(lines)
	}

	if raw {
		colors, err := colorcode.Encode(spec)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(a.out, formatter.FormatCode(colors))
		return nil
	}

	bands, err := colorcode.Bands(spec)
	if err != nil {
		return err
	}
	if jsonOut {
		return json.NewEncoder(a.out).Encode(report.New(version, spec, bands))
	}
	return DisplaySpec(a.out, spec, bands, a.language(), a.useColor())
}
