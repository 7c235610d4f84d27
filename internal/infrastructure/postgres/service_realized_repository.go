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

var _ repository.ServiceRealizedRepository = (*ServiceRealizedRepo)(nil)

// ServiceRealizedRepo implementação de ServiceRealizedRepository sobre
// PostgreSQL (usável com pool ou tx).
type ServiceRealizedRepo struct {
	q Querier
}

// NewServiceRealizedRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewServiceRealizedRepository(q Querier) *ServiceRealizedRepo {
	return &ServiceRealizedRepo{q: q}
}

const serviceColumns = `id, client_id, client_name, service_id, description, service_date,
	status, service_value, service_cost, products_value, products_cost,
	total_value, total_cost, notes, created_by, created_at, updated_at`

func scanService(row pgx.Row) (*entity.ServiceRealized, error) {
	var s entity.ServiceRealized
	var createdBy *string
	err := row.Scan(&s.ID, &s.ClientID, &s.ClientName, &s.ServiceID, &s.Description,
		&s.ServiceDate, &s.Status, &s.ServiceValue, &s.ServiceCost,
		&s.ProductsValue, &s.ProductsCost, &s.TotalValue, &s.TotalCost,
		&s.Notes, &createdBy, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan service realized: %w", err)
	}
	if createdBy != nil {
		s.CreatedBy = *createdBy
	}
	return &s, nil
}

// Create persiste o registro de serviço realizado.
func (r *ServiceRealizedRepo) Create(ctx context.Context, svc *entity.ServiceRealized) error {
	query := `
		INSERT INTO services_realized
			(id, client_id, client_name, service_id, description, service_date,
			 status, service_value, service_cost, products_value, products_cost,
			 total_value, total_cost, notes, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	createdBy := (*string)(nil)
	if svc.CreatedBy != "" {
		createdBy = &svc.CreatedBy
	}
	_, err := r.q.Exec(ctx, query,
		svc.ID, svc.ClientID, svc.ClientName, svc.ServiceID, svc.Description,
		svc.ServiceDate, svc.Status, svc.ServiceValue, svc.ServiceCost,
		svc.ProductsValue, svc.ProductsCost, svc.TotalValue, svc.TotalCost,
		svc.Notes, createdBy, svc.CreatedAt, svc.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create service realized: %w", err)
	}
	return nil
}

// GetByID obtém um serviço realizado; (nil, nil) se não existir.
func (r *ServiceRealizedRepo) GetByID(ctx context.Context, id string) (*entity.ServiceRealized, error) {
	query := `SELECT ` + serviceColumns + ` FROM services_realized WHERE id = $1`
	return scanService(r.q.QueryRow(ctx, query, id))
}

// GetForUpdate obtém o serviço bloqueando a linha (SELECT ... FOR UPDATE).
func (r *ServiceRealizedRepo) GetForUpdate(ctx context.Context, id string) (*entity.ServiceRealized, error) {
	query := `SELECT ` + serviceColumns + ` FROM services_realized WHERE id = $1 FOR UPDATE`
	return scanService(r.q.QueryRow(ctx, query, id))
}

// Update substitui os campos do registro.
func (r *ServiceRealizedRepo) Update(ctx context.Context, svc *entity.ServiceRealized) error {
	query := `
		UPDATE services_realized
		SET client_id = $2, client_name = $3, service_id = $4, description = $5,
		    service_date = $6, status = $7, service_value = $8, service_cost = $9,
		    products_value = $10, products_cost = $11, total_value = $12,
		    total_cost = $13, notes = $14, updated_at = $15
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		svc.ID, svc.ClientID, svc.ClientName, svc.ServiceID, svc.Description,
		svc.ServiceDate, svc.Status, svc.ServiceValue, svc.ServiceCost,
		svc.ProductsValue, svc.ProductsCost, svc.TotalValue, svc.TotalCost,
		svc.Notes, svc.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update service realized: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateStatus grava só o status.
func (r *ServiceRealizedRepo) UpdateStatus(ctx context.Context, id, status string) error {
	query := `UPDATE services_realized SET status = $2, updated_at = now() WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("update status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete remove o registro (itens e financeiro são removidos antes pelo caso de uso).
func (r *ServiceRealizedRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM services_realized WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete service realized: %w", err)
	}
	return nil
}

// List lista serviços realizados, mais recentes primeiro.
func (r *ServiceRealizedRepo) List(ctx context.Context, limit, offset int) ([]*entity.ServiceRealized, error) {
	query := `SELECT ` + serviceColumns + ` FROM services_realized
		ORDER BY service_date DESC, created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list services realized: %w", err)
	}
	defer rows.Close()

	var list []*entity.ServiceRealized
	for rows.Next() {
		var s entity.ServiceRealized
		var createdBy *string
		if err := rows.Scan(&s.ID, &s.ClientID, &s.ClientName, &s.ServiceID, &s.Description,
			&s.ServiceDate, &s.Status, &s.ServiceValue, &s.ServiceCost,
			&s.ProductsValue, &s.ProductsCost, &s.TotalValue, &s.TotalCost,
			&s.Notes, &createdBy, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan service realized: %w", err)
		}
		if createdBy != nil {
			s.CreatedBy = *createdBy
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// CreateItem persiste um item do serviço.
func (r *ServiceRealizedRepo) CreateItem(ctx context.Context, item *entity.ServiceRealizedItem) error {
	query := `
		INSERT INTO service_realized_items
			(id, service_realized_id, product_id, quantity, unit_price, unit_cost, total_price, total_cost)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		item.ID, item.ServiceRealizedID, item.ProductID, item.Quantity,
		item.UnitPrice, item.UnitCost, item.TotalPrice, item.TotalCost,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("create service item: %w", err)
	}
	return nil
}

// ListItems lista os itens de um serviço realizado.
func (r *ServiceRealizedRepo) ListItems(ctx context.Context, serviceRealizedID string) ([]*entity.ServiceRealizedItem, error) {
	query := `
		SELECT id, service_realized_id, product_id, quantity, unit_price, unit_cost, total_price, total_cost
		FROM service_realized_items
		WHERE service_realized_id = $1
		ORDER BY product_id`
	rows, err := r.q.Query(ctx, query, serviceRealizedID)
	if err != nil {
		return nil, fmt.Errorf("list service items: %w", err)
	}
	defer rows.Close()

	var list []*entity.ServiceRealizedItem
	for rows.Next() {
		var it entity.ServiceRealizedItem
		if err := rows.Scan(&it.ID, &it.ServiceRealizedID, &it.ProductID, &it.Quantity,
			&it.UnitPrice, &it.UnitCost, &it.TotalPrice, &it.TotalCost); err != nil {
			return nil, fmt.Errorf("scan service item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// DeleteItems remove todos os itens de um serviço (substituição integral na edição).
func (r *ServiceRealizedRepo) DeleteItems(ctx context.Context, serviceRealizedID string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM service_realized_items WHERE service_realized_id = $1`, serviceRealizedID)
	if err != nil {
		return fmt.Errorf("delete service items: %w", err)
	}
	return nil
}
