// Package report renders monthly grids as printable sheets (PDF and XLSX),
// with the Italian labels the dashboard uses.
package report

import (
	"fmt"
	"time"
)

var months = []string{
	"Gennaio", "Febbraio", "Marzo", "Aprile", "Maggio", "Giugno",
	"Luglio", "Agosto", "Settembre", "Ottobre", "Novembre", "Dicembre",
}

var weekdays = []string{"Dom", "Lun", "Mar", "Mer", "Gio", "Ven", "Sab"}

// MonthLabel returns e.g. "Marzo 2024".
func MonthLabel(year int, month time.Month) string {
	return fmt.Sprintf("%s %d", months[int(month)-1], year)
}

// dayName returns the short Italian weekday of a date.
func dayName(year int, month time.Month, day int) string {
	return weekdays[time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Weekday()]
}

// isWeekend marks Saturday and Sunday rows for shading.
func isWeekend(year int, month time.Month, day int) bool {
	wd := time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
