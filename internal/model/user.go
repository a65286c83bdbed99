package model

// User roles. Only admin and governante may open the management screens;
// the other roles stay authenticated but see a restricted placeholder.
const (
	RoleAdmin      = "admin"
	RoleGovernante = "governante"
	RoleCameriere  = "cameriere"
	RoleFornitore  = "fornitore"
)

// Roles lists every accepted role, in registration-form order.
var Roles = []string{RoleAdmin, RoleGovernante, RoleCameriere, RoleFornitore}

// User is an account in the "users" collection. Passwords are stored and
// compared in plaintext; the wire contract fixes the stored shape.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Name     string `json:"name"`
}

// DefaultAdmin is the account seeded into an empty users collection.
// The fixed id "1" keeps pre-existing remote data compatible.
func DefaultAdmin() User {
	return User{ID: "1", Username: "admin", Password: "admin123", Role: RoleAdmin, Name: "Amministratore"}
}
