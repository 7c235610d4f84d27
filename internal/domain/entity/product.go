package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa um produto do catálogo com seu saldo de estoque atual.
// Stock nunca é menor que zero e só é alterado pelo razão de estoque
// (StockMovement); nenhum outro caminho escreve nessa coluna.
type Product struct {
	ID        string
	Name      string
	Unit      string // un, kg, m, l...
	Stock     decimal.Decimal
	Cost      decimal.Decimal
	Price     decimal.Decimal
	ImageURL  string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
