package chart

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/aledsdavies/rescode/core/colorcode"
)

func TestParseSeries(t *testing.T) {
	tests := []struct {
		input string
		want  Series
	}{
		{"E6", E6},
		{"e12", E12},
		{" E24 ", E24},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSeries(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, mustParse(t, got.String()))
		})
	}

	_, err := ParseSeries("E96")
	assert.Error(t, err)
}

func mustParse(t *testing.T, name string) Series {
	t.Helper()
	s, err := ParseSeries(name)
	require.NoError(t, err)
	return s
}

func TestSeriesValues(t *testing.T) {
	assert.Len(t, E6.Values(), 6)
	assert.Len(t, E12.Values(), 12)
	assert.Len(t, E24.Values(), 24)
	assert.Nil(t, Series(9).Values())

	// Values returns a copy.
	v := E6.Values()
	v[0] = 99
	assert.Equal(t, uint64(10), E6.Values()[0])
}

func TestBuild(t *testing.T) {
	rows, err := Build(E6, 3, 3, 5)
	require.NoError(t, err)
	require.Len(t, rows, 6)

	texts := make([]string, len(rows))
	for i, r := range rows {
		texts[i] = r.Text
	}
	assert.Equal(t, []string{"1k", "1.5k", "2.2k", "3.3k", "4.7k", "6.8k"}, texts)

	fourK7 := rows[4]
	assert.Equal(t, 3, fourK7.Decade)
	assert.Equal(t, colorcode.Spec{Resistance: 4700, Tolerance: 5, Lines: 4}, fourK7.Spec)
	assert.Equal(t, []colorcode.Color{colorcode.Yellow, colorcode.Violet, colorcode.Red, colorcode.Gold}, fourK7.Bands)
}

func TestBuildDecadeRange(t *testing.T) {
	rows, err := Build(E12, -1, 9, 1)
	require.NoError(t, err)
	assert.Len(t, rows, 12*11)

	first := rows[0]
	assert.Equal(t, 0.1, first.Spec.Resistance)
	assert.Equal(t, colorcode.Silver, first.Bands[2])

	last := rows[len(rows)-1]
	assert.Equal(t, 8.2e9, last.Spec.Resistance)
	assert.Equal(t, colorcode.Grey, last.Bands[2])

	for _, r := range rows {
		decoded, err := colorcode.Decode(r.Bands)
		require.NoError(t, err)
		assert.Equal(t, r.Spec, decoded)
	}
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name      string
		series    Series
		from, to  int
		tolerance float64
	}{
		{"empty range", E12, 4, 3, 5},
		{"below silver", E12, -2, 0, 5},
		{"above grey", E12, 9, 10, 5},
		{"non-standard tolerance", E12, 0, 1, 20},
		{"unknown series", Series(5), 0, 1, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(tt.series, tt.from, tt.to, tt.tolerance)
			assert.Error(t, err)
		})
	}
}

func TestWriteXLSX(t *testing.T) {
	rows, err := Build(E6, 2, 3, 5)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, "E6 resistors", rows))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, []string{SheetName}, f.GetSheetList())

	cell := func(name string) string {
		v, err := f.GetCellValue(SheetName, name)
		require.NoError(t, err)
		return v
	}

	assert.Equal(t, "E6 resistors", cell("A1"))
	assert.Equal(t, "Value", cell("A2"))
	assert.Equal(t, "Tolerance", cell("F2"))

	// Row 3 is 100 Ω, row 13 is 4.7 kΩ.
	assert.Equal(t, "100Ω", cell("A3"))
	assert.Equal(t, "4.7kΩ", cell("A13"))
	assert.Equal(t, "4700", cell("B13"))
	assert.Equal(t, "yellow", cell("C13"))
	assert.Equal(t, "violet", cell("D13"))
	assert.Equal(t, "red", cell("E13"))
	assert.Equal(t, "gold", cell("F13"))

	// Equal colors share a style, different colors do not.
	goldA, err := f.GetCellStyle(SheetName, "F3")
	require.NoError(t, err)
	goldB, err := f.GetCellStyle(SheetName, "F13")
	require.NoError(t, err)
	yellow, err := f.GetCellStyle(SheetName, "C13")
	require.NoError(t, err)
	assert.Equal(t, goldA, goldB)
	assert.NotEqual(t, goldA, yellow)
}

func TestTextColor(t *testing.T) {
	assert.Equal(t, "FFFFFF", textColor(colorcode.Black))
	assert.Equal(t, "FFFFFF", textColor(colorcode.Brown))
	assert.Equal(t, "000000", textColor(colorcode.Yellow))
	assert.Equal(t, "000000", textColor(colorcode.White))
}
