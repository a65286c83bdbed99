package report

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/Nicolo-Giunta-Unicam/gNt-Hotel-Manager/internal/model"
)

// SheetKind selects which grid flavor a sheet renders.
type SheetKind int

const (
	SheetOre SheetKind = iota
	SheetPresenze
)

func (k SheetKind) title() string {
	if k == SheetPresenze {
		return "Previsione Presenze"
	}
	return "Ore Lavorate"
}

// WriteMonthPDF renders a month grid as a landscape A4 table and writes it
// to dir/<prefix>_<YYYY-MM>.pdf, returning the file path. Hours sheets get a
// totals row ("12.5h / 4R" per column); presence sheets do not.
func WriteMonthPDF(grid model.MonthGrid, kind SheetKind, year int, month time.Month, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("report: create export dir: %w", err)
	}
	prefix := "ore"
	if kind == SheetPresenze {
		prefix = "presenze"
	}
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.pdf", prefix, model.MonthKey(year, month)))

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 20

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetTextColor(139, 105, 20)
	pdf.CellFormat(contentW, 8, fmt.Sprintf("%s — gNt Hotel Manager", kind.title()), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(120, 120, 120)
	pdf.CellFormat(contentW, 5, MonthLabel(year, month), "", 1, "L", false, 0, "")
	pdf.Ln(3)

	// ── Column layout ─────────────────────────────────────────────────────────
	dayW := 10.0
	nameW := 14.0
	workerW := (contentW - dayW - nameW) / float64(max(len(grid.Workers), 1))

	rowH := 5.2
	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetFillColor(245, 240, 232)
	pdf.SetTextColor(60, 60, 60)
	pdf.CellFormat(dayW, rowH, "G", "1", 0, "C", true, 0, "")
	pdf.CellFormat(nameW, rowH, "Gg", "1", 0, "C", true, 0, "")
	for _, w := range grid.Workers {
		pdf.CellFormat(workerW, rowH, w.DisplayName(), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	// ── Day rows ──────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "", 8)
	for _, day := range grid.Days {
		weekend := isWeekend(year, month, day.Day)
		if weekend {
			pdf.SetFillColor(240, 240, 248)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}
		pdf.SetTextColor(30, 30, 30)
		pdf.CellFormat(dayW, rowH, fmt.Sprintf("%d", day.Day), "1", 0, "C", true, 0, "")
		pdf.SetTextColor(120, 120, 120)
		pdf.CellFormat(nameW, rowH, dayName(year, month, day.Day), "1", 0, "C", true, 0, "")
		for _, v := range day.Values {
			switch v {
			case model.CellRest:
				pdf.SetTextColor(204, 0, 0)
			case model.CellSick:
				pdf.SetTextColor(184, 134, 11)
			case "":
				pdf.SetTextColor(170, 170, 170)
			default:
				pdf.SetTextColor(26, 106, 26)
			}
			pdf.CellFormat(workerW, rowH, v, "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
	}

	// ── Totals (hours sheets only) ────────────────────────────────────────────
	if kind == SheetOre {
		totals := grid.Totals()
		pdf.SetFont("Helvetica", "B", 8)
		pdf.SetFillColor(245, 240, 232)
		pdf.SetTextColor(139, 105, 20)
		pdf.CellFormat(dayW+nameW, rowH, "TOTALE", "1", 0, "L", true, 0, "")
		for _, t := range totals {
			pdf.CellFormat(workerW, rowH, fmt.Sprintf("%sh / %dR", t.Hours.StringFixed(1), t.RestDays), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("report: write pdf: %w", err)
	}
	return path, nil
}
