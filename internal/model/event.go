package model

// CalendarEvent is an entry on the shared calendar, bound to one day.
type CalendarEvent struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Date  string `json:"date"`           // YYYY-MM-DD
	Time  string `json:"time,omitempty"` // HH:MM
	Notes string `json:"notes,omitempty"`
}
