package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/gestorpro/gestor-api/internal/domain"
	"github.com/gestorpro/gestor-api/internal/domain/entity"
	"github.com/gestorpro/gestor-api/internal/domain/repository"
)

var _ repository.CatalogServiceRepository = (*CatalogServiceRepo)(nil)

// CatalogServiceRepo implementação do catálogo de serviços sobre PostgreSQL
// (usável com pool ou tx).
type CatalogServiceRepo struct {
	q Querier
}

// NewCatalogServiceRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewCatalogServiceRepository(q Querier) *CatalogServiceRepo {
	return &CatalogServiceRepo{q: q}
}

// Create persiste um serviço do catálogo.
func (r *CatalogServiceRepo) Create(ctx context.Context, svc *entity.CatalogService) error {
	query := `
		INSERT INTO catalog_services (id, name, description, value, cost, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		svc.ID, svc.Name, svc.Description, svc.Value, svc.Cost, svc.Active,
		svc.CreatedAt, svc.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create catalog service: %w", err)
	}
	return nil
}

// GetByID obtém um serviço do catálogo; (nil, nil) se não existir.
func (r *CatalogServiceRepo) GetByID(ctx context.Context, id string) (*entity.CatalogService, error) {
	query := `
		SELECT id, name, description, value, cost, active, created_at, updated_at
		FROM catalog_services WHERE id = $1`
	var s entity.CatalogService
	err := r.q.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.Name, &s.Description, &s.Value, &s.Cost, &s.Active,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get catalog service: %w", err)
	}
	return &s, nil
}

// Update grava os dados do serviço do catálogo.
func (r *CatalogServiceRepo) Update(ctx context.Context, svc *entity.CatalogService) error {
	query := `
		UPDATE catalog_services
		SET name = $2, description = $3, value = $4, cost = $5, updated_at = $6
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		svc.ID, svc.Name, svc.Description, svc.Value, svc.Cost, svc.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update catalog service: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista o catálogo ordenado por nome.
func (r *CatalogServiceRepo) List(ctx context.Context, limit, offset int) ([]*entity.CatalogService, error) {
	query := `
		SELECT id, name, description, value, cost, active, created_at, updated_at
		FROM catalog_services ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list catalog services: %w", err)
	}
	defer rows.Close()

	var list []*entity.CatalogService
	for rows.Next() {
		var s entity.CatalogService
		if err := rows.Scan(&s.ID, &s.Name, &s.Description, &s.Value, &s.Cost,
			&s.Active, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan catalog service: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Deactivate marca o serviço como inativo.
func (r *CatalogServiceRepo) Deactivate(ctx context.Context, id string) error {
	query := `UPDATE catalog_services SET active = false, updated_at = now() WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deactivate catalog service: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
