package entity

import "time"

// Roles de usuario.
const (
	RoleAdmin     = "admin"
	RoleContador  = "contador"
	RoleBodeguero = "bodeguero"
)

// User usuario de la aplicación.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
