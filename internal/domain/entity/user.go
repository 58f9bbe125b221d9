package entity

// Role es el nivel de permisos de un usuario; es inmutable una vez creado.
type Role string

// Roles válidos para User.
const (
	RoleSuperAdmin Role = "SUPERADMIN"
	RoleOwner      Role = "OWNER"
	RoleAdmin      Role = "ADMIN"
	RoleSales      Role = "SALES"
)

// Roles lista todos los roles en orden de jerarquía.
var Roles = []Role{RoleSuperAdmin, RoleOwner, RoleAdmin, RoleSales}

// Valid indica si el rol es uno de los conocidos.
func (r Role) Valid() bool {
	switch r {
	case RoleSuperAdmin, RoleOwner, RoleAdmin, RoleSales:
		return true
	}
	return false
}

// User representa un actor del sistema. Password guarda el hash bcrypt;
// los backups antiguos pueden traer texto plano y se hashean al importar.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Role     Role   `json:"role"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
	Active   bool   `json:"active"`
}
