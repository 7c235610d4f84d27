package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// FulfillmentItemRequest um produto consumido pelo serviço.
type FulfillmentItemRequest struct {
	ProductID string          `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
}

// SaveFulfillmentRequest payload de criação/edição de um serviço realizado.
// Na edição o conjunto de itens substitui o anterior por completo.
type SaveFulfillmentRequest struct {
	ClientID     *string                  `json:"client_id"`
	ClientName   string                   `json:"client_name"`
	ServiceID    *string                  `json:"service_id"`
	ServiceValue decimal.Decimal          `json:"service_value"`
	ServiceCost  decimal.Decimal          `json:"service_cost"`
	Description  string                   `json:"description"`
	ServiceDate  time.Time                `json:"service_date"`
	Status       string                   `json:"status"` // scheduled | in_progress | completed
	Notes        string                   `json:"notes"`
	Items        []FulfillmentItemRequest `json:"items"`
}

// FulfillmentItemDTO item na resposta.
type FulfillmentItemDTO struct {
	ID         string          `json:"id"`
	ProductID  string          `json:"product_id"`
	Quantity   decimal.Decimal `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	UnitCost   decimal.Decimal `json:"unit_cost"`
	TotalPrice decimal.Decimal `json:"total_price"`
	TotalCost  decimal.Decimal `json:"total_cost"`
}

// FulfillmentDTO registro de serviço realizado na resposta.
type FulfillmentDTO struct {
	ID            string          `json:"id"`
	ClientID      *string         `json:"client_id,omitempty"`
	ClientName    string          `json:"client_name"`
	ServiceID     *string         `json:"service_id,omitempty"`
	Description   string          `json:"description"`
	ServiceDate   time.Time       `json:"service_date"`
	Status        string          `json:"status"`
	ServiceValue  decimal.Decimal `json:"service_value"`
	ServiceCost   decimal.Decimal `json:"service_cost"`
	ProductsValue decimal.Decimal `json:"products_value"`
	ProductsCost  decimal.Decimal `json:"products_cost"`
	TotalValue    decimal.Decimal `json:"total_value"`
	TotalCost     decimal.Decimal `json:"total_cost"`
	Notes         string          `json:"notes"`
}

// FulfillmentResponse envelope das operações de serviço realizado.
type FulfillmentResponse struct {
	Response
	Record        *FulfillmentDTO      `json:"record,omitempty"`
	Items         []FulfillmentItemDTO `json:"items,omitempty"`
	AlreadyBilled bool                 `json:"already_billed,omitempty"`
}
