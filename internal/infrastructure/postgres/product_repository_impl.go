package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/oksasatya/go-catalog-service/internal/domain/entity"
	"github.com/oksasatya/go-catalog-service/internal/domain/repository"
	"github.com/oksasatya/go-catalog-service/pkg/apperrors"
	"github.com/oksasatya/go-catalog-service/pkg/pagination"
)

type ProductRepository struct {
	pool *pgxpool.Pool
}

func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

const productColumns = `id, name, description, price::text, stock, sku, created_at, updated_at, version`

// sort field -> column. The service has already whitelisted the fields; this
// map keeps identifiers out of string interpolation entirely.
var productSortColumns = map[string]string{
	"name":      "name",
	"price":     "price",
	"stock":     "stock",
	"createdAt": "created_at",
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var (
		id        int64
		name      string
		desc      *string
		priceText string
		stock     int
		sku       string
		createdAt time.Time
		updatedAt time.Time
		version   int64
	)
	if err := row.Scan(&id, &name, &desc, &priceText, &stock, &sku, &createdAt, &updatedAt, &version); err != nil {
		return nil, err
	}
	price, err := decimal.NewFromString(priceText)
	if err != nil {
		return nil, fmt.Errorf("parse price %q: %w", priceText, err)
	}
	return entity.RestoreProduct(id, name, desc, price, stock, sku, createdAt, updatedAt, version), nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id int64) (*entity.Product, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+productColumns+`
		FROM products
		WHERE id = $1
	`, id)
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("product with id: %d not found", id)
		}
		return nil, err
	}
	return p, nil
}

func (r *ProductRepository) FindAll(ctx context.Context, page pagination.Request) ([]*entity.Product, int64, error) {
	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM products`).Scan(&total); err != nil {
		return nil, 0, err
	}
	q := `SELECT ` + productColumns + ` FROM products` + orderClause(page.Sort) + ` LIMIT $1 OFFSET $2`
	return r.queryPage(ctx, q, total, page.Size, page.Offset())
}

func (r *ProductRepository) SearchByName(ctx context.Context, query string, page pagination.Request) ([]*entity.Product, int64, error) {
	pattern := "%" + escapeLike(query) + "%"
	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM products WHERE name ILIKE $1`, pattern).Scan(&total); err != nil {
		return nil, 0, err
	}
	q := `SELECT ` + productColumns + ` FROM products WHERE name ILIKE $3` + orderClause(page.Sort) + ` LIMIT $1 OFFSET $2`
	return r.queryPage(ctx, q, total, page.Size, page.Offset(), pattern)
}

func (r *ProductRepository) queryPage(ctx context.Context, q string, total int64, limit, offset int, extra ...any) ([]*entity.Product, int64, error) {
	args := append([]any{limit, offset}, extra...)
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var products []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, 0, err
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

func (r *ProductRepository) ExistsBySKU(ctx context.Context, sku string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM products WHERE sku = upper($1))
	`, sku).Scan(&exists)
	return exists, err
}

func (r *ProductRepository) Save(ctx context.Context, p *entity.Product) (*entity.Product, error) {
	if p.ID() == 0 {
		return r.insert(ctx, p)
	}
	return r.update(ctx, p)
}

func (r *ProductRepository) insert(ctx context.Context, p *entity.Product) (*entity.Product, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO products (name, description, price, stock, sku)
		VALUES ($1, $2, $3::numeric, $4, $5)
		RETURNING `+productColumns+`
	`, p.Name(), p.Description(), p.Price().String(), p.Stock(), p.SKU())
	saved, err := scanProduct(row)
	if err != nil {
		return nil, translateUnique(err)
	}
	return saved, nil
}

// update guards against concurrent writers with the version counter: no row
// matches when the version moved, and the write is reported as a conflict.
func (r *ProductRepository) update(ctx context.Context, p *entity.Product) (*entity.Product, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE products
		SET name = $1, description = $2, price = $3::numeric, stock = $4,
		    updated_at = now(), version = version + 1
		WHERE id = $5 AND version = $6
		RETURNING `+productColumns+`
	`, p.Name(), p.Description(), p.Price().String(), p.Stock(), p.ID(), p.Version())
	saved, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.Internal(ErrVersionConflict)
		}
		return nil, translateUnique(err)
	}
	return saved, nil
}

func (r *ProductRepository) DeleteByID(ctx context.Context, id int64) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return apperrors.NotFound("product with id: %d not found", id)
	}
	return nil
}

func orderClause(orders []pagination.Order) string {
	if len(orders) == 0 {
		return " ORDER BY id"
	}
	parts := make([]string, 0, len(orders))
	for _, o := range orders {
		col, ok := productSortColumns[o.Field]
		if !ok {
			continue
		}
		if o.Desc {
			col += " DESC"
		}
		parts = append(parts, col)
	}
	if len(parts) == 0 {
		return " ORDER BY id"
	}
	return " ORDER BY " + strings.Join(parts, ", ")
}

func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	return strings.ReplaceAll(s, `_`, `\_`)
}

var _ repository.ProductRepository = (*ProductRepository)(nil)
