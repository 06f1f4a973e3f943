package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/oksasatya/go-catalog-service/pkg/apperrors"
)

// Product is the aggregate root for the catalog domain.
//
// All fields are unexported so an invalid instance can never be constructed
// or mutated from outside: every write goes through a validating setter, and
// a failed setter leaves the previous state untouched.
type Product struct {
	id          int64
	name        string
	description *string
	price       decimal.Decimal
	stock       int
	sku         string
	createdAt   time.Time
	updatedAt   time.Time
	version     int64
}

// NewProduct validates the full input and returns a product ready to be
// persisted. SKU is stored trimmed and upper-cased; description is free text
// and passes through unvalidated.
func NewProduct(name string, description *string, price decimal.Decimal, stock int, sku string) (*Product, error) {
	p := &Product{}
	if err := p.SetName(name); err != nil {
		return nil, err
	}
	if err := p.SetPrice(price); err != nil {
		return nil, err
	}
	if err := p.SetStock(stock); err != nil {
		return nil, err
	}
	if err := p.setSKU(sku); err != nil {
		return nil, err
	}
	p.description = description
	return p, nil
}

// RestoreProduct rehydrates a product from the store. The store is trusted
// to only hold rows that passed validation on the way in.
func RestoreProduct(id int64, name string, description *string, price decimal.Decimal, stock int, sku string, createdAt, updatedAt time.Time, version int64) *Product {
	return &Product{
		id:          id,
		name:        name,
		description: description,
		price:       price,
		stock:       stock,
		sku:         sku,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
		version:     version,
	}
}

func (p *Product) ID() int64              { return p.id }
func (p *Product) Name() string           { return p.name }
func (p *Product) Description() *string   { return p.description }
func (p *Product) Price() decimal.Decimal { return p.price }
func (p *Product) Stock() int             { return p.stock }
func (p *Product) SKU() string            { return p.sku }
func (p *Product) CreatedAt() time.Time   { return p.createdAt }
func (p *Product) UpdatedAt() time.Time   { return p.updatedAt }
func (p *Product) Version() int64         { return p.version }

func (p *Product) SetName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return apperrors.InvalidArgument("product name is blank")
	}
	p.name = name
	return nil
}

func (p *Product) SetDescription(description *string) {
	p.description = description
}

func (p *Product) SetPrice(price decimal.Decimal) error {
	if price.Cmp(decimal.Zero) <= 0 {
		return apperrors.InvalidArgument("price must be greater than 0")
	}
	p.price = price
	return nil
}

func (p *Product) SetStock(stock int) error {
	if stock < 0 {
		return apperrors.InvalidArgument("stock must not be negative")
	}
	p.stock = stock
	return nil
}

func (p *Product) setSKU(sku string) error {
	sku = strings.TrimSpace(sku)
	if sku == "" {
		return apperrors.InvalidArgument("sku is blank")
	}
	p.sku = strings.ToUpper(sku)
	return nil
}
