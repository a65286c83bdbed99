package report

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/Nicolo-Giunta-Unicam/gNt-Hotel-Manager/internal/model"
)

func sampleGrid(t *testing.T) model.MonthGrid {
	t.Helper()
	g := model.NewMonthGrid(2024, time.March, []model.Worker{
		{ID: "w1", Name: "Maria", Surname: "Rossi", Nickname: "Mari", Active: true},
		{ID: "w2", Name: "Luca", Surname: "Bianchi", Active: true},
	}, true)
	require.NoError(t, g.SetCell(0, 0, "8"))
	require.NoError(t, g.SetCell(1, 0, "R"))
	require.NoError(t, g.SetCell(2, 1, "M"))
	return g
}

func TestMonthLabel(t *testing.T) {
	assert.Equal(t, "Marzo 2024", MonthLabel(2024, time.March))
	assert.Equal(t, "Dicembre 2023", MonthLabel(2023, time.December))
}

func TestDayName(t *testing.T) {
	// 2024-03-01 was a Friday
	assert.Equal(t, "Ven", dayName(2024, time.March, 1))
	assert.Equal(t, "Sab", dayName(2024, time.March, 2))
	assert.Equal(t, "Dom", dayName(2024, time.March, 3))
}

func TestIsWeekend(t *testing.T) {
	assert.False(t, isWeekend(2024, time.March, 1))
	assert.True(t, isWeekend(2024, time.March, 2))
	assert.True(t, isWeekend(2024, time.March, 3))
	assert.False(t, isWeekend(2024, time.March, 4))
}

func TestWriteMonthPDF(t *testing.T) {
	dir := t.TempDir()

	path, err := WriteMonthPDF(sampleGrid(t), SheetOre, 2024, time.March, dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "ore_2024-03.pdf"), path)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestWriteMonthPDF_Presenze(t *testing.T) {
	dir := t.TempDir()

	path, err := WriteMonthPDF(sampleGrid(t), SheetPresenze, 2024, time.March, dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "presenze_2024-03.pdf"), path)
}

func TestWriteMonthXLSX(t *testing.T) {
	dir := t.TempDir()
	grid := sampleGrid(t)

	path, err := WriteMonthXLSX(grid, SheetOre, 2024, time.March, dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "ore_2024-03.xlsx"), path)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	sheet := f.GetSheetName(0)

	v, err := f.GetCellValue(sheet, "C4")
	require.NoError(t, err)
	assert.Equal(t, "Mari", v, "nickname wins as display name")

	v, err = f.GetCellValue(sheet, "C5")
	require.NoError(t, err)
	assert.Equal(t, "8", v)

	// Totals row sits under the 31 day rows
	v, err = f.GetCellValue(sheet, "A36")
	require.NoError(t, err)
	assert.Equal(t, "TOTALE", v)
	v, err = f.GetCellValue(sheet, "C36")
	require.NoError(t, err)
	assert.Equal(t, "8.0h / 1R", v)
}

func TestWriteMonthXLSX_PresenzeHasNoTotals(t *testing.T) {
	dir := t.TempDir()

	path, err := WriteMonthXLSX(sampleGrid(t), SheetPresenze, 2024, time.March, dir)
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	sheet := f.GetSheetName(0)

	v, err := f.GetCellValue(sheet, "A36")
	require.NoError(t, err)
	assert.Equal(t, "", v)
}
