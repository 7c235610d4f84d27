package entity

import "time"

// Papéis de usuário.
const (
	RoleAdmin     = "admin"
	RoleAtendente = "atendente"
)

// User é um usuário do sistema.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         string // admin | atendente
	Status       string // active | inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
