package application

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-catalog-service/internal/domain/entity"
	repo "github.com/oksasatya/go-catalog-service/internal/domain/repository"
	"github.com/oksasatya/go-catalog-service/pkg/apperrors"
	"github.com/oksasatya/go-catalog-service/pkg/pagination"
)

// sortableFields is the whitelist for getAll/search sorting. Anything else
// is rejected before the query reaches the store.
var sortableFields = map[string]struct{}{
	"name":      {},
	"price":     {},
	"stock":     {},
	"createdAt": {},
}

type CatalogService struct {
	Repo   repo.ProductRepository
	Logger *logrus.Logger
}

func NewCatalogService(r repo.ProductRepository, logger *logrus.Logger) *CatalogService {
	return &CatalogService{Repo: r, Logger: logger}
}

type CreateProductInput struct {
	Name        string
	Description *string
	Price       decimal.Decimal
	Stock       int
	SKU         string
}

type UpdateProductInput struct {
	Name        string
	Description *string
	Price       decimal.Decimal
	Stock       int
}

type ProductResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description *string         `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	SKU         string          `json:"sku"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func toProductResponse(p *entity.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID(),
		Name:        p.Name(),
		Description: p.Description(),
		Price:       p.Price(),
		Stock:       p.Stock(),
		SKU:         p.SKU(),
		CreatedAt:   p.CreatedAt(),
		UpdatedAt:   p.UpdatedAt(),
	}
}

// CreateProduct persists a new product. SKU uniqueness is pre-checked for a
// clean duplicate error before the entity is built; the store's unique index
// stays the safety net behind it.
func (s *CatalogService) CreateProduct(ctx context.Context, in CreateProductInput) (ProductResponse, error) {
	exists, err := s.Repo.ExistsBySKU(ctx, strings.TrimSpace(in.SKU))
	if err != nil {
		return ProductResponse{}, err
	}
	if exists {
		return ProductResponse{}, apperrors.Duplicate("sku")
	}
	p, err := entity.NewProduct(in.Name, in.Description, in.Price, in.Stock, in.SKU)
	if err != nil {
		return ProductResponse{}, err
	}
	saved, err := s.Repo.Save(ctx, p)
	if err != nil {
		return ProductResponse{}, err
	}
	return toProductResponse(saved), nil
}

func (s *CatalogService) GetByID(ctx context.Context, id int64) (ProductResponse, error) {
	p, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return ProductResponse{}, err
	}
	return toProductResponse(p), nil
}

func (s *CatalogService) GetAll(ctx context.Context, page pagination.Request) (pagination.Page[ProductResponse], error) {
	if err := validateSort(page.Sort); err != nil {
		return pagination.Page[ProductResponse]{}, err
	}
	products, total, err := s.Repo.FindAll(ctx, page)
	if err != nil {
		return pagination.Page[ProductResponse]{}, err
	}
	return mapPage(products, page, total), nil
}

// SearchByName matches products whose name contains the query,
// case-insensitively. The query is trimmed and must be 2..120 characters.
func (s *CatalogService) SearchByName(ctx context.Context, query string, page pagination.Request) (pagination.Page[ProductResponse], error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return pagination.Page[ProductResponse]{}, apperrors.InvalidArgument("query is blank")
	}
	if n := len([]rune(query)); n < 2 || n > 120 {
		return pagination.Page[ProductResponse]{}, apperrors.InvalidArgument("query length should be between 2 and 120")
	}
	if err := validateSort(page.Sort); err != nil {
		return pagination.Page[ProductResponse]{}, err
	}
	products, total, err := s.Repo.SearchByName(ctx, query, page)
	if err != nil {
		return pagination.Page[ProductResponse]{}, err
	}
	return mapPage(products, page, total), nil
}

// UpdateProduct applies each field through the entity's validating setters,
// so any invalid field aborts the update before a persistence call happens.
func (s *CatalogService) UpdateProduct(ctx context.Context, id int64, in UpdateProductInput) (ProductResponse, error) {
	p, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return ProductResponse{}, err
	}
	if err := p.SetName(in.Name); err != nil {
		return ProductResponse{}, err
	}
	p.SetDescription(in.Description)
	if err := p.SetPrice(in.Price); err != nil {
		return ProductResponse{}, err
	}
	if err := p.SetStock(in.Stock); err != nil {
		return ProductResponse{}, err
	}
	saved, err := s.Repo.Save(ctx, p)
	if err != nil {
		return ProductResponse{}, err
	}
	return toProductResponse(saved), nil
}

// DeleteProduct fetches first so delete is only attempted on existing rows.
func (s *CatalogService) DeleteProduct(ctx context.Context, id int64) error {
	if _, err := s.Repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.Repo.DeleteByID(ctx, id)
}

func validateSort(orders []pagination.Order) error {
	for _, o := range orders {
		if _, ok := sortableFields[o.Field]; !ok {
			return apperrors.InvalidArgument("invalid sort parameter: %s", o.Field)
		}
	}
	return nil
}

func mapPage(products []*entity.Product, req pagination.Request, total int64) pagination.Page[ProductResponse] {
	content := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		content = append(content, toProductResponse(p))
	}
	return pagination.NewPage(content, req, total)
}
