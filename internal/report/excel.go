package report

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/Nicolo-Giunta-Unicam/gNt-Hotel-Manager/internal/model"
)

// WriteMonthXLSX renders a month grid as a spreadsheet and writes it to
// dir/<prefix>_<YYYY-MM>.xlsx, returning the file path.
func WriteMonthXLSX(grid model.MonthGrid, kind SheetKind, year int, month time.Month, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("report: create export dir: %w", err)
	}
	prefix := "ore"
	if kind == SheetPresenze {
		prefix = "presenze"
	}
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.xlsx", prefix, model.MonthKey(year, month)))

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"F5F0E8"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return "", err
	}
	weekendStyle, err := f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"F0F0F8"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return "", err
	}

	// Title rows
	_ = f.SetCellValue(sheet, "A1", fmt.Sprintf("%s — gNt Hotel Manager", kind.title()))
	_ = f.SetCellValue(sheet, "A2", MonthLabel(year, month))

	// Header row: day, weekday, one column per worker snapshot
	const headerRow = 4
	_ = f.SetCellValue(sheet, cell(0, headerRow), "G")
	_ = f.SetCellValue(sheet, cell(1, headerRow), "Gg")
	for i, w := range grid.Workers {
		_ = f.SetCellValue(sheet, cell(i+2, headerRow), w.DisplayName())
	}
	last := cell(len(grid.Workers)+1, headerRow)
	_ = f.SetCellStyle(sheet, cell(0, headerRow), last, headerStyle)

	// Day rows
	for di, day := range grid.Days {
		row := headerRow + 1 + di
		_ = f.SetCellValue(sheet, cell(0, row), day.Day)
		_ = f.SetCellValue(sheet, cell(1, row), dayName(year, month, day.Day))
		for wi, v := range day.Values {
			_ = f.SetCellValue(sheet, cell(wi+2, row), v)
		}
		if isWeekend(year, month, day.Day) {
			_ = f.SetCellStyle(sheet, cell(0, row), cell(len(grid.Workers)+1, row), weekendStyle)
		}
	}

	// Totals row (hours sheets only)
	if kind == SheetOre {
		row := headerRow + 1 + len(grid.Days)
		_ = f.SetCellValue(sheet, cell(0, row), "TOTALE")
		for wi, t := range grid.Totals() {
			_ = f.SetCellValue(sheet, cell(wi+2, row), fmt.Sprintf("%sh / %dR", t.Hours.StringFixed(1), t.RestDays))
		}
		_ = f.SetCellStyle(sheet, cell(0, row), cell(len(grid.Workers)+1, row), headerStyle)
	}

	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("report: write xlsx: %w", err)
	}
	return path, nil
}

// cell converts 0-based column + 1-based row to an A1 reference.
func cell(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col+1, row)
	return name
}
