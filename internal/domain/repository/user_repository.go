package repository

import (
	"context"

	"github.com/oksasatya/go-catalog-service/internal/domain/entity"
)

// UserRepository defines the persistence capabilities the auth service
// needs. Lookups by email are case-insensitive.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	// Save inserts the user together with its role assignments and returns
	// the persisted state (identity and timestamps stamped by the store).
	Save(ctx context.Context, u *entity.User) (*entity.User, error)
}

// RoleRepository looks up roles seeded out-of-band.
type RoleRepository interface {
	FindByName(ctx context.Context, name string) (entity.Role, error)
}
