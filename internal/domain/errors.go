package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Erros de domínio (sem dependências de infraestrutura).
var (
	ErrNotFound           = errors.New("recurso não encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrInsufficientStock  = errors.New("estoque insuficiente")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUserNotFound       = errors.New("usuário não encontrado")
	ErrEmailAlreadyExists = errors.New("e-mail já cadastrado")
	ErrUnauthorized       = errors.New("não autorizado")
)

// InsufficientStockError detalha o produto, o saldo disponível e a quantidade
// solicitada quando uma saída excederia o estoque.
type InsufficientStockError struct {
	ProductID   string
	ProductName string
	Available   decimal.Decimal
	Requested   decimal.Decimal
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("estoque insuficiente para %q (%s): disponível %s, solicitado %s",
		e.ProductName, e.ProductID, e.Available.String(), e.Requested.String())
}

// Unwrap permite errors.Is(err, ErrInsufficientStock).
func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }

// ProductNotFoundError identifica qual produto de um lote não existe.
type ProductNotFoundError struct {
	ProductID string
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("produto %s não encontrado", e.ProductID)
}

func (e *ProductNotFoundError) Unwrap() error { return ErrNotFound }
