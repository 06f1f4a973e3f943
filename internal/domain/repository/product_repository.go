package repository

import (
	"context"

	"github.com/oksasatya/go-catalog-service/internal/domain/entity"
	"github.com/oksasatya/go-catalog-service/pkg/pagination"
)

// ProductRepository defines the persistence capabilities of the catalog.
// FindByID returns apperrors.NotFound when no row matches; Save surfaces a
// unique-index collision as apperrors.Duplicate("sku").
type ProductRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.Product, error)
	// FindAll returns one page plus the total row count. Sort fields are
	// already whitelisted by the service.
	FindAll(ctx context.Context, page pagination.Request) ([]*entity.Product, int64, error)
	// SearchByName matches by case-insensitive substring containment.
	SearchByName(ctx context.Context, query string, page pagination.Request) ([]*entity.Product, int64, error)
	ExistsBySKU(ctx context.Context, sku string) (bool, error)
	// Save inserts when the product has no identity and updates otherwise,
	// returning the persisted state.
	Save(ctx context.Context, p *entity.Product) (*entity.Product, error)
	DeleteByID(ctx context.Context, id int64) error
}
