package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Direções de movimentação de estoque.
const (
	DirectionIn  = "entrada"
	DirectionOut = "saida"
)

// Origens de movimentação.
const (
	OriginManual           = "manual"
	OriginService          = "servico"
	OriginQuote            = "orcamento"
	OriginSystemAdjustment = "ajuste_sistema"
)

// StockMovement é uma linha imutável do razão de estoque: registra uma
// movimentação com os saldos anterior e resultante do produto.
// Nunca é alterada nem removida depois de criada (trilha de auditoria).
// Invariante: CurrentStock = PreviousStock ± Quantity conforme a direção,
// com CurrentStock >= 0.
type StockMovement struct {
	ID            string
	ProductID     string
	Direction     string // entrada | saida
	Quantity      decimal.Decimal
	PreviousStock decimal.Decimal
	CurrentStock  decimal.Decimal
	Description   string
	Origin        string  // manual | servico | orcamento | ajuste_sistema
	ReferenceID   *string // ex.: id do serviço realizado que originou a saída
	CreatedBy     string
	CreatedAt     time.Time
}
