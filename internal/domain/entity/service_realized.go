package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status de um serviço realizado.
const (
	StatusScheduled  = "scheduled"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

// ServiceRealized registra um serviço prestado (ou agendado) a um cliente,
// com os produtos consumidos e os totais calculados a partir deles.
type ServiceRealized struct {
	ID            string
	ClientID      *string
	ClientName    string
	ServiceID     *string // referência opcional ao catálogo de serviços
	Description   string
	ServiceDate   time.Time
	Status        string
	ServiceValue  decimal.Decimal
	ServiceCost   decimal.Decimal
	ProductsValue decimal.Decimal
	ProductsCost  decimal.Decimal
	TotalValue    decimal.Decimal
	TotalCost     decimal.Decimal
	Notes         string
	CreatedBy     string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ServiceRealizedItem é um produto consumido por um serviço realizado.
type ServiceRealizedItem struct {
	ID                string
	ServiceRealizedID string
	ProductID         string
	Quantity          decimal.Decimal
	UnitPrice         decimal.Decimal
	UnitCost          decimal.Decimal
	TotalPrice        decimal.Decimal
	TotalCost         decimal.Decimal
}
