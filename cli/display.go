package main

import (
	"fmt"
	"io"
	"strconv"

	"golang.org/x/text/language"

	"github.com/aledsdavies/rescode/core/colorcode"
	"github.com/aledsdavies/rescode/core/formatter"
	"github.com/aledsdavies/rescode/core/units"
)

// DisplaySpec renders a localized heading and the band tree
func DisplaySpec(w io.Writer, spec colorcode.Spec, bands []colorcode.Color, tag language.Tag, useColor bool) error {
	_, _ = fmt.Fprintf(w, "%s ±%s%%\n", units.Human(spec.Resistance, tag), strconv.FormatFloat(spec.Tolerance, 'f', -1, 64))
	return formatter.FormatTree(w, spec, bands, useColor)
}
