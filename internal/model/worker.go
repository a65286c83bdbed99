package model

// ContractTypes are the contract labels offered by the roster form.
var ContractTypes = []string{
	"Tempo indeterminato",
	"Tempo determinato",
	"Part-time",
	"Stagionale",
	"Collaborazione",
}

// Worker is a staff member on the roster. Active only controls visibility in
// "available to add" pickers; historical grid columns keep their snapshot.
type Worker struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Surname       string `json:"surname"`
	Nickname      string `json:"nickname,omitempty"`
	Contract      string `json:"contract"`
	ContractStart string `json:"contractStart,omitempty"` // YYYY-MM-DD
	ContractEnd   string `json:"contractEnd,omitempty"`   // YYYY-MM-DD
	Active        bool   `json:"active"`
}

// DisplayName prefers the nickname, as the grids and pickers render it.
func (w Worker) DisplayName() string {
	if w.Nickname != "" {
		return w.Nickname
	}
	return w.Name
}
