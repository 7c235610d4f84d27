package dto

import "github.com/shopspring/decimal"

// FinanceMovementDTO lançamento financeiro na resposta.
type FinanceMovementDTO struct {
	ID                string          `json:"id"`
	Title             string          `json:"title"`
	Category          string          `json:"category"`
	Date              string          `json:"date"`
	Value             decimal.Decimal `json:"value"`
	Status            string          `json:"status"`
	Type              string          `json:"type"`
	ServiceRealizedID *string         `json:"service_realized_id,omitempty"`
	CreatedAt         string          `json:"created_at"`
}
