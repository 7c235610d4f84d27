package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CatalogService é um serviço oferecido no catálogo, com valor e custo
// declarados. Serve de base para o serviço realizado, que pode sobrescrevê-los.
type CatalogService struct {
	ID          string
	Name        string
	Description string
	Value       decimal.Decimal
	Cost        decimal.Decimal
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
