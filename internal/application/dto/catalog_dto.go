package dto

import "github.com/shopspring/decimal"

// CreateProductRequest payload de criação de produto. InitialStock, quando
// positivo, entra no razão como "entrada" com origem ajuste_sistema.
type CreateProductRequest struct {
	Name         string          `json:"name"`
	Unit         string          `json:"unit"`
	Cost         decimal.Decimal `json:"cost"`
	Price        decimal.Decimal `json:"price"`
	ImageURL     string          `json:"image_url"`
	InitialStock decimal.Decimal `json:"initial_stock"`
}

// UpdateProductRequest payload de edição de produto (estoque não incluso:
// saldo só muda pelo razão).
type UpdateProductRequest struct {
	Name     string          `json:"name"`
	Unit     string          `json:"unit"`
	Cost     decimal.Decimal `json:"cost"`
	Price    decimal.Decimal `json:"price"`
	ImageURL string          `json:"image_url"`
	Active   *bool           `json:"active"`
}

// AdjustStockRequest correção manual de saldo de um produto.
type AdjustStockRequest struct {
	Direction   string          `json:"direction"` // entrada | saida
	Quantity    decimal.Decimal `json:"quantity"`
	Description string          `json:"description"`
}

// SaveClientRequest payload de criação/edição de cliente.
type SaveClientRequest struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Document string `json:"document"`
	Address  string `json:"address"`
	Notes    string `json:"notes"`
}

// SaveCatalogServiceRequest payload de criação/edição de serviço do catálogo.
type SaveCatalogServiceRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Value       decimal.Decimal `json:"value"`
	Cost        decimal.Decimal `json:"cost"`
}

// ProductDTO produto na resposta.
type ProductDTO struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Unit      string          `json:"unit"`
	Stock     decimal.Decimal `json:"stock"`
	Cost      decimal.Decimal `json:"cost"`
	Price     decimal.Decimal `json:"price"`
	ImageURL  string          `json:"image_url"`
	Active    bool            `json:"active"`
	CreatedAt string          `json:"created_at"`
	UpdatedAt string          `json:"updated_at"`
}

// ClientDTO cliente na resposta.
type ClientDTO struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Document string `json:"document"`
	Address  string `json:"address"`
	Notes    string `json:"notes"`
}

// CatalogServiceDTO serviço do catálogo na resposta.
type CatalogServiceDTO struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Value       decimal.Decimal `json:"value"`
	Cost        decimal.Decimal `json:"cost"`
	Active      bool            `json:"active"`
}
