package entity

// Roles válidos en los tokens emitidos por el backend de autenticación.
const (
	RoleAdmin   = "admin"   // administra todos los clientes y sus campos
	RoleAsesor  = "asesor"  // registra ventas y contactos de su cliente
	RoleLectura = "lectura" // solo consulta y exporta
)

// Usuario identidad autenticada que opera sobre el tablero.
// No se persiste aquí: llega en el JWT.
type Usuario struct {
	ID        string
	ClienteID string // vacío para usuarios de plataforma
	Role      string
}

// EsAdmin indica si el usuario puede operar sobre cualquier cliente.
func (u Usuario) EsAdmin() bool {
	return u.Role == RoleAdmin
}
