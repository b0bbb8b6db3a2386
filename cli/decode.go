package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aledsdavies/rescode/core/colorcode"
)

func newDecodeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "decode [color...]",
		Short: "Read a resistance from its color bands",
		Long: `Decode color bands given left to right: digit bands, multiplier, tolerance.

Without arguments each line of stdin is decoded as one resistor.`,
		Example: `  rescode decode yellow violet red gold
  printf 'brown black red brown\n' | rescode decode`,
		RunE: func(cmd *cobra.Command, args []string) error {
			codes := [][]string{args}
			if len(args) == 0 || (len(args) == 1 && args[0] == "-") {
				lines, err := a.inputValues(args)
				if err != nil {
					return err
				}
				codes = codes[:0]
				for _, line := range lines {
					codes = append(codes, strings.FieldsFunc(line, func(r rune) bool {
						return r == ' ' || r == ',' || r == '\t'
					}))
				}
			}

			for i, names := range codes {
				if i > 0 {
					_, _ = fmt.Fprintln(a.out)
				}
				if err := a.decodeNames(names); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func (a *app) decodeNames(names []string) error {
	colors, err := colorcode.ParseColors(names)
	if err != nil {
		return err
	}
	spec, err := colorcode.Decode(colors)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintln(a.out, spec)
	return DisplaySpec(a.out, spec, colors, a.language(), a.useColor())
}
