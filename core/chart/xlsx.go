package chart

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/aledsdavies/rescode/core/colorcode"
	"github.com/aledsdavies/rescode/core/units"
)

// SheetName is the worksheet that holds the chart.
const SheetName = "Chart"

// header row labels; band columns follow.
var header = []string{"Value", "Ohms", "Band 1", "Band 2", "Multiplier", "Tolerance"}

// WriteXLSX writes rows as a workbook with a merged title row, a header
// row and one row per value. Band cells are filled with the band color.
func WriteXLSX(w io.Writer, title string, rows []Row) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	endCol, err := excelize.ColumnNumberToName(len(header))
	if err != nil {
		return err
	}

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("title style: %w", err)
	}
	if err := f.MergeCell(SheetName, "A1", endCol+"1"); err != nil {
		return fmt.Errorf("merge title: %w", err)
	}
	if err := f.SetCellValue(SheetName, "A1", title); err != nil {
		return err
	}
	if err := f.SetCellStyle(SheetName, "A1", endCol+"1", titleStyle); err != nil {
		return err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}
	for i, label := range header {
		cell, err := excelize.CoordinatesToCellName(i+1, 2)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(SheetName, cell, label); err != nil {
			return err
		}
		if err := f.SetCellStyle(SheetName, cell, cell, headerStyle); err != nil {
			return err
		}
	}

	styles := newBandStyles(f)
	for i, row := range rows {
		rowNum := i + 3

		if err := f.SetCellValue(SheetName, fmt.Sprintf("A%d", rowNum), row.Text+units.Ohm); err != nil {
			return err
		}
		if err := f.SetCellValue(SheetName, fmt.Sprintf("B%d", rowNum), row.Spec.Resistance); err != nil {
			return err
		}

		for j, c := range row.Bands {
			cell, err := excelize.CoordinatesToCellName(j+3, rowNum)
			if err != nil {
				return err
			}
			style, err := styles.get(c)
			if err != nil {
				return fmt.Errorf("band style %s: %w", c, err)
			}
			if err := f.SetCellValue(SheetName, cell, c.String()); err != nil {
				return err
			}
			if err := f.SetCellStyle(SheetName, cell, cell, style); err != nil {
				return err
			}
		}
	}

	if err := f.SetColWidth(SheetName, "A", "B", 14); err != nil {
		return err
	}
	if err := f.SetColWidth(SheetName, "C", endCol, 12); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// bandStyles creates one fill style per band color on first use.
type bandStyles struct {
	f   *excelize.File
	ids map[colorcode.Color]int
}

func newBandStyles(f *excelize.File) *bandStyles {
	return &bandStyles{f: f, ids: make(map[colorcode.Color]int)}
}

func (s *bandStyles) get(c colorcode.Color) (int, error) {
	if id, ok := s.ids[c]; ok {
		return id, nil
	}

	id, err := s.f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#" + c.Hex()}},
		Font:      &excelize.Font{Color: "#" + textColor(c)},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return 0, err
	}
	s.ids[c] = id
	return id, nil
}

// textColor picks black or white text for readability on c.
func textColor(c colorcode.Color) string {
	r, g, b := c.RGB()
	luma := 299*int(r) + 587*int(g) + 114*int(b)
	if luma < 128*1000 {
		return "FFFFFF"
	}
	return "000000"
}
