package model

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Hours-grid cell markers. Anything else is either empty or a numeric string
// (decimals allowed, e.g. "5.5"). Values are stored verbatim; validation is
// deferred to aggregation, which simply skips what it cannot parse.
const (
	CellRest = "R" // riposo
	CellSick = "M" // malattia
)

// CellPresent marks attendance in a presence grid.
const CellPresent = "X"

var (
	ErrCellOutOfRange = errors.New("cella fuori griglia")
	ErrWorkerInGrid   = errors.New("lavoratore già presente nel mese")
	ErrWorkerNotFound = errors.New("lavoratore non trovato")
)

// GridWorker is the identity snapshot captured into a grid at synthesis or
// add time. Later roster edits do not retroactively rename these entries.
// Presence grids leave Surname empty.
type GridWorker struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Surname  string `json:"surname,omitempty"`
	Nickname string `json:"nickname"`
}

// DisplayName mirrors Worker.DisplayName for snapshot entries.
func (w GridWorker) DisplayName() string {
	if w.Nickname != "" {
		return w.Nickname
	}
	return w.Name
}

// GridDay is one calendar day row. len(Values) == len(grid.Workers) always.
type GridDay struct {
	Day    int      `json:"day"`
	Values []string `json:"values"`
}

// MonthGrid is the day × worker matrix shared by the hours and presence
// modules. The row-length invariant (every day has exactly one cell per
// worker column) must hold after every mutation, so worker columns are
// only ever added or removed across all days at once.
type MonthGrid struct {
	Workers []GridWorker `json:"workers"`
	Days    []GridDay    `json:"days"`
}

// ColumnTotal aggregates one worker column of an hours grid.
type ColumnTotal struct {
	Hours    decimal.Decimal
	RestDays int
}

// MonthKey formats the store key of an hours grid, e.g. "2024-03".
func MonthKey(year int, month time.Month) string {
	return fmt.Sprintf("%04d-%02d", year, int(month))
}

// DaysInMonth returns the number of calendar days of year/month.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// NewMonthGrid synthesizes an empty grid for year/month with one column per
// worker, snapshotting the identity fields. withSurname is false for
// presence grids.
func NewMonthGrid(year int, month time.Month, workers []Worker, withSurname bool) MonthGrid {
	snaps := make([]GridWorker, len(workers))
	for i, w := range workers {
		snaps[i] = GridWorker{ID: w.ID, Name: w.Name, Nickname: w.Nickname}
		if withSurname {
			snaps[i].Surname = w.Surname
		}
	}
	n := DaysInMonth(year, month)
	days := make([]GridDay, n)
	for i := range days {
		days[i] = GridDay{Day: i + 1, Values: make([]string, len(snaps))}
	}
	return MonthGrid{Workers: snaps, Days: days}
}

func (g *MonthGrid) checkCell(dayIdx, workerIdx int) error {
	if dayIdx < 0 || dayIdx >= len(g.Days) || workerIdx < 0 || workerIdx >= len(g.Workers) {
		return ErrCellOutOfRange
	}
	return nil
}

// SetCell writes an hours-grid cell. The raw value is trimmed and
// uppercased ("r" → "R") and stored verbatim; no numeric check here.
func (g *MonthGrid) SetCell(dayIdx, workerIdx int, raw string) error {
	if err := g.checkCell(dayIdx, workerIdx); err != nil {
		return err
	}
	g.Days[dayIdx].Values[workerIdx] = strings.ToUpper(strings.TrimSpace(raw))
	return nil
}

// Cell returns the current value of a cell.
func (g *MonthGrid) Cell(dayIdx, workerIdx int) (string, error) {
	if err := g.checkCell(dayIdx, workerIdx); err != nil {
		return "", err
	}
	return g.Days[dayIdx].Values[workerIdx], nil
}

// TogglePresence cycles a presence cell "" → "X" → "R" → "" and returns the
// new value. Any unexpected stored value resets to "".
func (g *MonthGrid) TogglePresence(dayIdx, workerIdx int) (string, error) {
	if err := g.checkCell(dayIdx, workerIdx); err != nil {
		return "", err
	}
	var next string
	switch g.Days[dayIdx].Values[workerIdx] {
	case "":
		next = CellPresent
	case CellPresent:
		next = CellRest
	default:
		next = ""
	}
	g.Days[dayIdx].Values[workerIdx] = next
	return next, nil
}

// HasWorker reports whether a worker id already owns a column.
func (g *MonthGrid) HasWorker(id string) bool {
	return g.WorkerIndex(id) >= 0
}

// WorkerIndex returns the column index of a worker id, or -1. Workers may
// occupy different indices in different months.
func (g *MonthGrid) WorkerIndex(id string) int {
	for i, w := range g.Workers {
		if w.ID == id {
			return i
		}
	}
	return -1
}

// AddWorker appends a new column: the snapshot joins Workers and every day
// row gains one empty cell, keeping the row-length invariant.
func (g *MonthGrid) AddWorker(w GridWorker) error {
	if g.HasWorker(w.ID) {
		return ErrWorkerInGrid
	}
	g.Workers = append(g.Workers, w)
	for i := range g.Days {
		g.Days[i].Values = append(g.Days[i].Values, "")
	}
	return nil
}

// RemoveWorker drops column idx from Workers and from every day row.
func (g *MonthGrid) RemoveWorker(idx int) error {
	if idx < 0 || idx >= len(g.Workers) {
		return ErrWorkerNotFound
	}
	g.Workers = append(g.Workers[:idx], g.Workers[idx+1:]...)
	for i := range g.Days {
		v := g.Days[i].Values
		g.Days[i].Values = append(v[:idx], v[idx+1:]...)
	}
	return nil
}

// Totals sums each hours column: numeric cells add to Hours (rounded to one
// decimal), "R" cells count as rest days. "M" and any other non-numeric
// value contribute nothing.
func (g *MonthGrid) Totals() []ColumnTotal {
	totals := make([]ColumnTotal, len(g.Workers))
	for wi := range g.Workers {
		sum := decimal.Zero
		rest := 0
		for _, day := range g.Days {
			if wi >= len(day.Values) {
				continue
			}
			v := day.Values[wi]
			if v == CellRest {
				rest++
				continue
			}
			if v == "" {
				continue
			}
			if d, err := decimal.NewFromString(v); err == nil {
				sum = sum.Add(d)
			}
		}
		totals[wi] = ColumnTotal{Hours: sum.Round(1), RestDays: rest}
	}
	return totals
}
