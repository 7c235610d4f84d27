package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/gestorpro/gestor-api/internal/domain/entity"
	"github.com/gestorpro/gestor-api/internal/domain/repository"
	"github.com/gestorpro/gestor-api/pkg/strutil"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo implementação de ClientRepository sobre PostgreSQL
// (usável com pool ou tx).
type ClientRepo struct {
	q Querier
}

// NewClientRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

// Create persiste um cliente.
func (r *ClientRepo) Create(ctx context.Context, client *entity.Client) error {
	query := `
		INSERT INTO clients (id, name, name_search, phone, email, document, address, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		client.ID, client.Name, strutil.Normalize(client.Name), client.Phone,
		client.Email, client.Document, client.Address, client.Notes,
		client.CreatedAt, client.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create client: %w", err)
	}
	return nil
}

// GetByID obtém um cliente; (nil, nil) se não existir.
func (r *ClientRepo) GetByID(ctx context.Context, id string) (*entity.Client, error) {
	query := `
		SELECT id, name, phone, email, document, address, notes, created_at, updated_at
		FROM clients WHERE id = $1`
	var c entity.Client
	err := r.q.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.Phone, &c.Email, &c.Document, &c.Address, &c.Notes,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return &c, nil
}

// Update grava os dados do cliente.
func (r *ClientRepo) Update(ctx context.Context, client *entity.Client) error {
	query := `
		UPDATE clients
		SET name = $2, name_search = $3, phone = $4, email = $5, document = $6,
		    address = $7, notes = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		client.ID, client.Name, strutil.Normalize(client.Name), client.Phone,
		client.Email, client.Document, client.Address, client.Notes, client.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update client: %w", err)
	}
	return nil
}

// List lista clientes por nome (busca normalizada) com paginação.
func (r *ClientRepo) List(ctx context.Context, search string, limit, offset int) ([]*entity.Client, error) {
	query := `
		SELECT id, name, phone, email, document, address, notes, created_at, updated_at
		FROM clients`
	args := []any{}
	pos := 1
	if search != "" {
		query += fmt.Sprintf(" WHERE name_search LIKE $%d", pos)
		args = append(args, "%"+strutil.Normalize(search)+"%")
		pos++
	}
	query += fmt.Sprintf(" ORDER BY name LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()

	var list []*entity.Client
	for rows.Next() {
		var c entity.Client
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.Email, &c.Document,
			&c.Address, &c.Notes, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Delete remove um cliente.
func (r *ClientRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	return nil
}
