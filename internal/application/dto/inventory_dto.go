package dto

import "github.com/shopspring/decimal"

// MovementItemRequest um item do lote de movimentação.
type MovementItemRequest struct {
	ProductID   string          `json:"product_id"`
	Quantity    decimal.Decimal `json:"quantity"`
	Description string          `json:"description"`
}

// ApplyMovementsRequest lote de movimentações em uma direção.
type ApplyMovementsRequest struct {
	Items       []MovementItemRequest `json:"items"`
	Direction   string                `json:"direction"` // entrada | saida
	Origin      string                `json:"origin"`    // manual | servico | orcamento | ajuste_sistema
	ReferenceID string                `json:"reference_id"`
}

// MovementOutcomeDTO resultado por produto afetado.
type MovementOutcomeDTO struct {
	ProductID     string          `json:"product_id"`
	ProductName   string          `json:"product_name"`
	PreviousStock decimal.Decimal `json:"previous_stock"`
	Quantity      decimal.Decimal `json:"quantity"`
	CurrentStock  decimal.Decimal `json:"current_stock"`
}

// ApplyMovementsResponse envelope de resposta do razão de estoque.
type ApplyMovementsResponse struct {
	Response
	Outcomes []MovementOutcomeDTO `json:"outcomes"`
}

// StockMovementDTO linha do razão para listagens.
type StockMovementDTO struct {
	ID            string          `json:"id"`
	ProductID     string          `json:"product_id"`
	Direction     string          `json:"direction"`
	Quantity      decimal.Decimal `json:"quantity"`
	PreviousStock decimal.Decimal `json:"previous_stock"`
	CurrentStock  decimal.Decimal `json:"current_stock"`
	Description   string          `json:"description"`
	Origin        string          `json:"origin"`
	ReferenceID   *string         `json:"reference_id,omitempty"`
	CreatedBy     string          `json:"created_by,omitempty"`
	CreatedAt     string          `json:"created_at"`
}
