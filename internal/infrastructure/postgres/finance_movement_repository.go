package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/gestorpro/gestor-api/internal/domain/entity"
	"github.com/gestorpro/gestor-api/internal/domain/repository"
)

var _ repository.FinanceMovementRepository = (*FinanceMovementRepo)(nil)

// FinanceMovementRepo implementação de FinanceMovementRepository sobre
// PostgreSQL (usável com pool ou tx).
type FinanceMovementRepo struct {
	q Querier
}

// NewFinanceMovementRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewFinanceMovementRepository(q Querier) *FinanceMovementRepo {
	return &FinanceMovementRepo{q: q}
}

// Create persiste um lançamento financeiro.
func (r *FinanceMovementRepo) Create(ctx context.Context, movement *entity.FinanceMovement) error {
	query := `
		INSERT INTO finance_movements
			(id, title, category, date, value, status, type, service_realized_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		movement.ID, movement.Title, movement.Category, movement.Date,
		movement.Value, movement.Status, movement.Type,
		movement.ServiceRealizedID, movement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create finance movement: %w", err)
	}
	return nil
}

// GetByServiceRealizedID obtém o lançamento vinculado a um serviço; (nil, nil)
// se não houver. Base da verificação de idempotência do faturamento.
func (r *FinanceMovementRepo) GetByServiceRealizedID(ctx context.Context, serviceRealizedID string) (*entity.FinanceMovement, error) {
	query := `
		SELECT id, title, category, date, value, status, type, service_realized_id, created_at
		FROM finance_movements
		WHERE service_realized_id = $1
		LIMIT 1`
	var m entity.FinanceMovement
	err := r.q.QueryRow(ctx, query, serviceRealizedID).Scan(
		&m.ID, &m.Title, &m.Category, &m.Date, &m.Value, &m.Status, &m.Type,
		&m.ServiceRealizedID, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get finance movement: %w", err)
	}
	return &m, nil
}

// DeleteByServiceRealizedID remove o lançamento vinculado ao serviço (se houver).
func (r *FinanceMovementRepo) DeleteByServiceRealizedID(ctx context.Context, serviceRealizedID string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM finance_movements WHERE service_realized_id = $1`, serviceRealizedID)
	if err != nil {
		return fmt.Errorf("delete finance movement: %w", err)
	}
	return nil
}

// List lista lançamentos em um intervalo de datas, mais recentes primeiro.
func (r *FinanceMovementRepo) List(ctx context.Context, from, to *time.Time, limit, offset int) ([]*entity.FinanceMovement, error) {
	query := `
		SELECT id, title, category, date, value, status, type, service_realized_id, created_at
		FROM finance_movements WHERE 1=1`
	args := []any{}
	pos := 1
	if from != nil {
		query += fmt.Sprintf(" AND date >= $%d", pos)
		args = append(args, *from)
		pos++
	}
	if to != nil {
		query += fmt.Sprintf(" AND date <= $%d", pos)
		args = append(args, *to)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY date DESC, created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list finance movements: %w", err)
	}
	defer rows.Close()

	var list []*entity.FinanceMovement
	for rows.Next() {
		var m entity.FinanceMovement
		if err := rows.Scan(&m.ID, &m.Title, &m.Category, &m.Date, &m.Value,
			&m.Status, &m.Type, &m.ServiceRealizedID, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan finance movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
