// Package report is the JSON form of a resistor and its color code. A parts
// list is a file of reports, one JSON object per line, that can be checked
// against its own band colors.
package report

import (
	"fmt"
	"slices"

	"github.com/aledsdavies/rescode/core/colorcode"
	"github.com/aledsdavies/rescode/core/formatter"
)

// Report is one resistor of a parts list.
type Report struct {
	Version    string   `json:"version,omitempty"` // semver of the writer
	Value      string   `json:"value"`
	Resistance float64  `json:"resistance"`
	Tolerance  float64  `json:"tolerance"`
	Lines      int      `json:"lines"`
	Bands      []string `json:"bands"` // physical order
}

// New describes spec and its bands in physical order.
func New(version string, spec colorcode.Spec, bands []colorcode.Color) Report {
	names := make([]string, len(bands))
	for i, c := range bands {
		names[i] = c.String()
	}
	return Report{
		Version:    version,
		Value:      spec.String(),
		Resistance: spec.Resistance,
		Tolerance:  spec.Tolerance,
		Lines:      spec.Lines,
		Bands:      names,
	}
}

// Spec returns the electrical specification the report claims.
func (r Report) Spec() colorcode.Spec {
	return colorcode.Spec{Resistance: r.Resistance, Tolerance: r.Tolerance, Lines: r.Lines}
}

// MismatchError reports bands that do not show the claimed value.
type MismatchError struct {
	Spec colorcode.Spec
	Want []colorcode.Color // bands of Spec
	Got  []colorcode.Color // bands listed in the report
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%s is %s, report lists %s", e.Spec, formatter.FormatCode(e.Want), formatter.FormatCode(e.Got))
}

// Check verifies that the listed bands are the color code of the claimed
// value. The value must be encodable with the listed band count.
func (r Report) Check() error {
	got, err := colorcode.ParseColors(r.Bands)
	if err != nil {
		return err
	}

	spec := r.Spec()
	want, err := colorcode.Bands(spec)
	if err != nil {
		return err
	}
	if !slices.Equal(want, got) {
		return &MismatchError{Spec: spec, Want: want, Got: got}
	}
	return nil
}
