package table

import "fmt"

const (
	preferencesVersion = "v1"
	anonymousUser      = "anonymous"
)

// Scope identifica a quién pertenecen unas preferencias: tabla, usuario y cliente.
type Scope struct {
	Feature   string
	UserID    string
	ClienteID string
}

// Key llave de almacenamiento: <feature>:columns:v1:<userId|anonymous>:<clienteId>.
func (s Scope) Key() string {
	user := s.UserID
	if user == "" {
		user = anonymousUser
	}
	return fmt.Sprintf("%s:columns:%s:%s:%s", s.Feature, preferencesVersion, user, s.ClienteID)
}
