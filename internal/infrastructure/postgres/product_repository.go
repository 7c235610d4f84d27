package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/gestorpro/gestor-api/internal/domain"
	"github.com/gestorpro/gestor-api/internal/domain/entity"
	"github.com/gestorpro/gestor-api/internal/domain/repository"
	"github.com/gestorpro/gestor-api/pkg/strutil"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementação de ProductRepository sobre PostgreSQL
// (usável com pool ou tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, name, unit, stock, cost, price, image_url, active, created_at, updated_at`

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(&p.ID, &p.Name, &p.Unit, &p.Stock, &p.Cost, &p.Price, &p.ImageURL, &p.Active, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan product: %w", err)
	}
	return &p, nil
}

// Create persiste um produto novo. name_search guarda o nome normalizado para
// busca insensível a acentuação.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (id, name, name_search, unit, stock, cost, price, image_url, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.Name, strutil.Normalize(product.Name), product.Unit,
		product.Stock, product.Cost, product.Price, product.ImageURL, product.Active,
		product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create product: %w", err)
	}
	return nil
}

// GetByID obtém um produto por id; (nil, nil) se não existir.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	return scanProduct(r.q.QueryRow(ctx, query, id))
}

// GetForUpdate obtém o produto bloqueando a linha (SELECT ... FOR UPDATE).
// Escritores concorrentes do mesmo produto ficam serializados até o fim da
// transação dona do lock.
func (r *ProductRepo) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 FOR UPDATE`
	return scanProduct(r.q.QueryRow(ctx, query, id))
}

// UpdateStock grava o saldo calculado pelo razão de estoque.
func (r *ProductRepo) UpdateStock(ctx context.Context, id string, stock decimal.Decimal) error {
	query := `UPDATE products SET stock = $2, updated_at = now() WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, id, stock)
	if err != nil {
		return fmt.Errorf("update stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Update grava os dados cadastrais (estoque fica de fora).
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE products
		SET name = $2, name_search = $3, unit = $4, cost = $5, price = $6,
		    image_url = $7, active = $8, updated_at = $9
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		product.ID, product.Name, strutil.Normalize(product.Name), product.Unit,
		product.Cost, product.Price, product.ImageURL, product.Active, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista produtos por nome (busca normalizada) com paginação.
func (r *ProductRepo) List(ctx context.Context, search string, limit, offset int) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products`
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
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Unit, &p.Stock, &p.Cost, &p.Price, &p.ImageURL, &p.Active, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Deactivate marca o produto como inativo (soft delete: o razão aponta pra ele).
func (r *ProductRepo) Deactivate(ctx context.Context, id string) error {
	query := `UPDATE products SET active = false, updated_at = now() WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deactivate product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
