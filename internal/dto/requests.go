package dto

// ─── Auth ────────────────────────────────────────────────────────────────────

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest carries a new account. Role is checked against
// model.Roles by the auth service.
type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name"     validate:"required"`
	Role     string `json:"role"     validate:"required"`
}

// ─── Workers ─────────────────────────────────────────────────────────────────

type WorkerRequest struct {
	Name          string `json:"name"    validate:"required"`
	Surname       string `json:"surname" validate:"required"`
	Nickname      string `json:"nickname"`
	Contract      string `json:"contract"`
	ContractStart string `json:"contractStart"`
	ContractEnd   string `json:"contractEnd"`
	Active        bool   `json:"active"`
}

// ─── Orders ──────────────────────────────────────────────────────────────────

type OrderItemInput struct {
	Name string `json:"name"`
	Qty  string `json:"qty"`
}

// OrderRequest carries either an existing supplier name or a new one;
// NewSupplier wins and joins the supplier set on save.
type OrderRequest struct {
	Supplier    string           `json:"supplier"`
	NewSupplier string           `json:"newSupplier"`
	Date        string           `json:"date" validate:"required"`
	Deadline    string           `json:"deadline"`
	Items       []OrderItemInput `json:"items"`
	Notes       string           `json:"notes"`
}

// ─── Maintenance ─────────────────────────────────────────────────────────────

type ManutenzioneRequest struct {
	Description string `json:"description" validate:"required"`
	Room        string `json:"room"`
	Deadline    string `json:"deadline"`
	Priority    string `json:"priority" validate:"required,oneof=urgente normale bassa"`
}

// ─── Calendar ────────────────────────────────────────────────────────────────

type EventRequest struct {
	Title string `json:"title" validate:"required"`
	Date  string `json:"date"  validate:"required"`
	Time  string `json:"time"`
	Notes string `json:"notes"`
}
