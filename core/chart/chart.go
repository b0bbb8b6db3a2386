package chart

import (
	"fmt"

	"github.com/aledsdavies/rescode/core/colorcode"
	"github.com/aledsdavies/rescode/core/units"
)

// Lines is the band count used for charts: two digit bands cover every
// E6, E12 and E24 value.
const Lines = 4

// Row is one chart entry.
type Row struct {
	Decade int    // value lies in [10^Decade, 10^(Decade+1))
	Text   string // compact value, "4.7k"
	Spec   colorcode.Spec
	Bands  []colorcode.Color // physical order
}

// Build returns every series value from decade fromExp to toExp inclusive.
// Decade 0 covers 1 Ω to 9.1 Ω and decade 3 covers 1 kΩ to 9.1 kΩ; the
// encodable range is -1..9.
func Build(series Series, fromExp, toExp int, tolerance float64) ([]Row, error) {
	values := series.Values()
	if values == nil {
		return nil, fmt.Errorf("unknown series %v", series)
	}
	if fromExp > toExp {
		return nil, fmt.Errorf("decade range %d..%d is empty", fromExp, toExp)
	}

	rows := make([]Row, 0, len(values)*(toExp-fromExp+1))
	for decade := fromExp; decade <= toExp; decade++ {
		for _, v := range values {
			spec := colorcode.Spec{
				Resistance: units.Scale(v, 1, decade),
				Tolerance:  tolerance,
				Lines:      Lines,
			}
			bands, err := colorcode.Bands(spec)
			if err != nil {
				return nil, fmt.Errorf("decade %d value %d: %w", decade, v, err)
			}
			rows = append(rows, Row{
				Decade: decade,
				Text:   units.Format(spec.Resistance),
				Spec:   spec,
				Bands:  bands,
			})
		}
	}
	return rows, nil
}
