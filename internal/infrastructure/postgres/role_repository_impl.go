package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/go-catalog-service/internal/domain/entity"
	"github.com/oksasatya/go-catalog-service/internal/domain/repository"
	"github.com/oksasatya/go-catalog-service/pkg/apperrors"
)

type RoleRepository struct {
	pool *pgxpool.Pool
}

func NewRoleRepository(pool *pgxpool.Pool) *RoleRepository {
	return &RoleRepository{pool: pool}
}

func (r *RoleRepository) FindByName(ctx context.Context, name string) (entity.Role, error) {
	var (
		id     int64
		dbName string
	)
	err := r.pool.QueryRow(ctx, `SELECT id, name FROM roles WHERE name = $1`, name).Scan(&id, &dbName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Role{}, apperrors.NotFound("role %s not found", name)
		}
		return entity.Role{}, err
	}
	return entity.RestoreRole(id, dbName), nil
}

var _ repository.RoleRepository = (*RoleRepository)(nil)
