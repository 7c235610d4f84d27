package postgres

import (
	"context"
	"fmt"

	"github.com/gestorpro/gestor-api/internal/domain/entity"
	"github.com/gestorpro/gestor-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo implementação do razão de estoque sobre PostgreSQL
// (usável com pool ou tx). Append-only: só insere e lê.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create persiste uma linha do razão.
func (r *StockMovementRepo) Create(ctx context.Context, movement *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements
			(id, product_id, direction, quantity, previous_stock, current_stock,
			 description, origin, reference_id, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	createdBy := (*string)(nil)
	if movement.CreatedBy != "" {
		createdBy = &movement.CreatedBy
	}
	_, err := r.q.Exec(ctx, query,
		movement.ID, movement.ProductID, movement.Direction, movement.Quantity,
		movement.PreviousStock, movement.CurrentStock, movement.Description,
		movement.Origin, movement.ReferenceID, createdBy, movement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create stock movement: %w", err)
	}
	return nil
}

// ListByProduct lista as movimentações de um produto, mais recentes primeiro.
func (r *StockMovementRepo) ListByProduct(ctx context.Context, productID string, limit, offset int) ([]*entity.StockMovement, error) {
	query := `
		SELECT id, product_id, direction, quantity, previous_stock, current_stock,
		       description, origin, reference_id, created_by, created_at
		FROM stock_movements
		WHERE product_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, productID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stock movements: %w", err)
	}
	defer rows.Close()

	var list []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		var createdBy *string
		if err := rows.Scan(&m.ID, &m.ProductID, &m.Direction, &m.Quantity,
			&m.PreviousStock, &m.CurrentStock, &m.Description, &m.Origin,
			&m.ReferenceID, &createdBy, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan stock movement: %w", err)
		}
		if createdBy != nil {
			m.CreatedBy = *createdBy
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
