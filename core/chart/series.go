// Package chart builds E-series color code charts and exports them as
// spreadsheets.
package chart

import (
	"fmt"
	"strings"
)

// Series is one of the IEC 60063 preferred number series.
type Series int

const (
	E6 Series = iota
	E12
	E24
)

// seriesValues holds the two-digit values of each series per decade.
var seriesValues = [...][]uint64{
	E6:  {10, 15, 22, 33, 47, 68},
	E12: {10, 12, 15, 18, 22, 27, 33, 39, 47, 56, 68, 82},
	E24: {10, 11, 12, 13, 15, 16, 18, 20, 22, 24, 27, 30, 33, 36, 39, 43, 47, 51, 56, 62, 68, 75, 82, 91},
}

func (s Series) String() string {
	switch s {
	case E6:
		return "E6"
	case E12:
		return "E12"
	case E24:
		return "E24"
	default:
		return fmt.Sprintf("Series(%d)", int(s))
	}
}

// Values returns the two-digit significands of the series.
func (s Series) Values() []uint64 {
	if s < E6 || s > E24 {
		return nil
	}
	return append([]uint64(nil), seriesValues[s]...)
}

// ParseSeries accepts "E6", "E12" or "E24", case-insensitively.
func ParseSeries(name string) (Series, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "E6":
		return E6, nil
	case "E12":
		return E12, nil
	case "E24":
		return E24, nil
	default:
		return 0, fmt.Errorf("unknown series %q (want E6, E12 or E24)", name)
	}
}
