package model

import "time"

// OrderItem is one line of a supplier order. Qty is free text ("2 casse").
type OrderItem struct {
	Name string `json:"name"`
	Qty  string `json:"qty,omitempty"`
}

// Order is a supplier order. Supplier is a plain name; new names join the
// append-only "suppliers" set when the order is saved.
type Order struct {
	ID        string      `json:"id"`
	Supplier  string      `json:"supplier"`
	Date      string      `json:"date"`               // YYYY-MM-DD
	Deadline  string      `json:"deadline,omitempty"` // YYYY-MM-DD
	Items     []OrderItem `json:"items"`
	Notes     string      `json:"notes,omitempty"`
	Completed bool        `json:"completed"`
	CreatedAt time.Time   `json:"createdAt"`
}
