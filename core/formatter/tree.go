package formatter

import (
	"fmt"
	"io"

	"github.com/aledsdavies/rescode/core/colorcode"
	"github.com/aledsdavies/rescode/core/units"
)

// FormatTree renders a spec and its bands as a tree, one band per line:
//
//	4.7k±5% (4 bands):
//	├─ yellow  digit       4
//	├─ violet  digit       7
//	├─ red     multiplier  ×100
//	└─ gold    tolerance   ±5%
func FormatTree(w io.Writer, spec colorcode.Spec, colors []colorcode.Color, useColor bool) error {
	bands, err := colorcode.Describe(colors)
	if err != nil {
		return err
	}

	header := fmt.Sprintf("%s%s±%s%%", units.Format(spec.Resistance), units.Ohm, trimFloat(spec.Tolerance))
	_, _ = fmt.Fprintf(w, "%s (%d bands):\n", Colorize(header, ColorCyan, useColor), len(bands))

	for i, b := range bands {
		prefix := "├─ "
		if i == len(bands)-1 {
			prefix = "└─ "
		}
		role := Colorize(fmt.Sprintf("%-10s", b.Role), ColorGray, useColor)
		_, _ = fmt.Fprintf(w, "%s%s %-7s %s  %s\n", prefix, Swatch(b.Color, useColor), b.Color, role, FormatBand(b))
	}
	return nil
}
