package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin       = "admin"
	RoleAlmacenista = "almacenista"
)

// User representa un usuario del sistema (personal del almacén).
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Nombre       string
	Role         string // admin, almacenista
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
