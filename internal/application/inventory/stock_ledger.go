package inventory

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gestorpro/gestor-api/internal/domain"
	"github.com/gestorpro/gestor-api/internal/domain/entity"
)

// MovementInput um item do lote, antes de coalescer.
type MovementInput struct {
	ProductID   string
	Quantity    decimal.Decimal
	Description string
}

// ApplyMovementsInput lote de movimentações em uma direção/origem.
type ApplyMovementsInput struct {
	Items       []MovementInput
	Direction   string // entity.DirectionIn | entity.DirectionOut
	Origin      string // entity.OriginManual | OriginService | OriginQuote | OriginSystemAdjustment
	ReferenceID string // opcional: id do registro que originou o lote
	Actor       string // opcional: usuário responsável
}

// MovementOutcome resultado por produto afetado.
type MovementOutcome struct {
	ProductID     string
	ProductName   string
	PreviousStock decimal.Decimal
	Quantity      decimal.Decimal
	CurrentStock  decimal.Decimal
}

// StockLedger aplica movimentações de estoque de forma atômica por chamada:
// bloqueia a linha de cada produto, impede saldo negativo e grava uma linha de
// auditoria em stock_movements por produto. O lote é tudo-ou-nada.
type StockLedger struct {
	txRunner TxRunner
}

// NewStockLedger constrói o razão de estoque.
func NewStockLedger(txRunner TxRunner) *StockLedger {
	return &StockLedger{txRunner: txRunner}
}

type coalescedItem struct {
	quantity    decimal.Decimal
	description string
}

// ApplyMovements valida, coalesce e aplica o lote em transação própria.
// Lote que coalesce para vazio é sucesso sem efeito, sem abrir transação.
func (l *StockLedger) ApplyMovements(ctx context.Context, in ApplyMovementsInput) ([]MovementOutcome, error) {
	items, order, err := coalesce(in)
	if err != nil {
		return nil, err
	}
	if len(order) == 0 {
		return nil, nil
	}
	var outcomes []MovementOutcome
	err = l.txRunner.Run(ctx, func(r Repos) error {
		out, err := apply(ctx, r, items, order, in)
		if err != nil {
			return err
		}
		outcomes = out
		return nil
	})
	if err != nil {
		return nil, err
	}
	return outcomes, nil
}

// ApplyMovementsInTx aplica o lote usando repositórios da transação do
// chamador. Nunca faz commit nem rollback: falhas apenas propagam para o dono
// da transação decidir.
func (l *StockLedger) ApplyMovementsInTx(ctx context.Context, r Repos, in ApplyMovementsInput) ([]MovementOutcome, error) {
	items, order, err := coalesce(in)
	if err != nil {
		return nil, err
	}
	if len(order) == 0 {
		return nil, nil
	}
	return apply(ctx, r, items, order, in)
}

// coalesce valida direção/origem, descarta quantidades não positivas e soma as
// restantes por produto. Devolve os ids em ordem crescente: a ordem canônica de
// lock evita deadlock entre lotes concorrentes que se sobrepõem.
func coalesce(in ApplyMovementsInput) (map[string]coalescedItem, []string, error) {
	if in.Direction != entity.DirectionIn && in.Direction != entity.DirectionOut {
		return nil, nil, domain.ErrInvalidInput
	}
	switch in.Origin {
	case entity.OriginManual, entity.OriginService, entity.OriginQuote, entity.OriginSystemAdjustment:
	default:
		return nil, nil, domain.ErrInvalidInput
	}

	items := make(map[string]coalescedItem)
	for _, it := range in.Items {
		if !it.Quantity.GreaterThan(decimal.Zero) {
			continue
		}
		if it.ProductID == "" {
			return nil, nil, domain.ErrInvalidInput
		}
		acc := items[it.ProductID]
		acc.quantity = acc.quantity.Add(it.Quantity)
		if acc.description == "" {
			acc.description = it.Description
		}
		items[it.ProductID] = acc
	}

	order := make([]string, 0, len(items))
	for id := range items {
		order = append(order, id)
	}
	sort.Strings(order)
	return items, order, nil
}

// apply processa os produtos na ordem canônica: lock da linha, verificação de
// saldo, atualização do estoque e uma linha no razão por produto. Qualquer
// falha interrompe o lote inteiro.
func apply(ctx context.Context, r Repos, items map[string]coalescedItem, order []string, in ApplyMovementsInput) ([]MovementOutcome, error) {
	now := time.Now()
	var refID *string
	if in.ReferenceID != "" {
		ref := in.ReferenceID
		refID = &ref
	}

	outcomes := make([]MovementOutcome, 0, len(order))
	for _, productID := range order {
		it := items[productID]

		product, err := r.Products.GetForUpdate(ctx, productID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, &domain.ProductNotFoundError{ProductID: productID}
		}

		previous := product.Stock
		var current decimal.Decimal
		if in.Direction == entity.DirectionOut {
			if previous.LessThan(it.quantity) {
				return nil, &domain.InsufficientStockError{
					ProductID:   productID,
					ProductName: product.Name,
					Available:   previous,
					Requested:   it.quantity,
				}
			}
			current = previous.Sub(it.quantity)
		} else {
			current = previous.Add(it.quantity)
		}

		if err := r.Products.UpdateStock(ctx, productID, current); err != nil {
			return nil, err
		}

		movement := &entity.StockMovement{
			ID:            uuid.New().String(),
			ProductID:     productID,
			Direction:     in.Direction,
			Quantity:      it.quantity,
			PreviousStock: previous,
			CurrentStock:  current,
			Description:   it.description,
			Origin:        in.Origin,
			ReferenceID:   refID,
			CreatedBy:     in.Actor,
			CreatedAt:     now,
		}
		if err := r.Movements.Create(ctx, movement); err != nil {
			return nil, err
		}

		outcomes = append(outcomes, MovementOutcome{
			ProductID:     productID,
			ProductName:   product.Name,
			PreviousStock: previous,
			Quantity:      it.quantity,
			CurrentStock:  current,
		})
	}
	return outcomes, nil
}
