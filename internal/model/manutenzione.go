package model

import "time"

// Maintenance priorities.
const (
	PriorityUrgente = "urgente"
	PriorityNormale = "normale"
	PriorityBassa   = "bassa"
)

// Manutenzione is a maintenance ticket.
type Manutenzione struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Room        string    `json:"room,omitempty"`
	Deadline    string    `json:"deadline,omitempty"` // YYYY-MM-DD
	Priority    string    `json:"priority"`
	Done        bool      `json:"done"`
	CreatedAt   time.Time `json:"createdAt"`
}
