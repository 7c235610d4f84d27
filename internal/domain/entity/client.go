package entity

import "time"

// Client é um cliente do negócio (somente leitura para o núcleo transacional).
type Client struct {
	ID        string
	Name      string
	Phone     string
	Email     string
	Document  string // CPF/CNPJ
	Address   string
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
