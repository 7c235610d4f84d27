package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos e status de lançamento financeiro.
const (
	FinanceTypeIn  = "in"
	FinanceTypeOut = "out"

	FinanceStatusPaid    = "paid"
	FinanceStatusPending = "pending"
)

// FinanceMovement é um lançamento financeiro. Quando originado por um serviço
// realizado, ServiceRealizedID aponta para ele; existe no máximo um lançamento
// por serviço (garantido pelo fluxo de faturamento, não por constraint).
type FinanceMovement struct {
	ID                string
	Title             string
	Category          string
	Date              time.Time
	Value             decimal.Decimal
	Status            string
	Type              string
	ServiceRealizedID *string
	CreatedAt         time.Time
}
