package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/go-catalog-service/internal/domain/entity"
	"github.com/oksasatya/go-catalog-service/internal/domain/repository"
	"github.com/oksasatya/go-catalog-service/pkg/apperrors"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var (
		id           int64
		dbEmail      string
		username     string
		passwordHash string
		enabled      bool
		createdAt    time.Time
		updatedAt    time.Time
	)
	err := r.pool.QueryRow(ctx, `
		SELECT id, email, username, password_hash, enabled, created_at, updated_at
		FROM users
		WHERE lower(email) = lower($1)
	`, email).Scan(&id, &dbEmail, &username, &passwordHash, &enabled, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("user not found")
		}
		return nil, err
	}

	roles, err := r.rolesOf(ctx, id)
	if err != nil {
		return nil, err
	}
	return entity.RestoreUser(id, dbEmail, username, passwordHash, enabled, createdAt, updatedAt, roles), nil
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM users WHERE lower(email) = lower($1))
	`, email).Scan(&exists)
	return exists, err
}

func (r *UserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM users WHERE lower(username) = lower($1))
	`, username).Scan(&exists)
	return exists, err
}

// Save inserts the user and its role assignments in one transaction. The
// unique indexes on email and username are the safety net behind the
// service-level pre-checks.
func (r *UserRepository) Save(ctx context.Context, u *entity.User) (*entity.User, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var (
		id        int64
		createdAt time.Time
		updatedAt time.Time
	)
	err = tx.QueryRow(ctx, `
		INSERT INTO users (email, username, password_hash, enabled)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`, u.Email(), u.Username(), u.PasswordHash(), u.Enabled()).Scan(&id, &createdAt, &updatedAt)
	if err != nil {
		return nil, translateUnique(err)
	}

	roles := u.Roles()
	for _, role := range roles {
		if _, err := tx.Exec(ctx, `
			INSERT INTO user_roles (user_id, role_id)
			VALUES ($1, $2)
			ON CONFLICT (user_id, role_id) DO NOTHING
		`, id, role.ID()); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return entity.RestoreUser(id, u.Email(), u.Username(), u.PasswordHash(), u.Enabled(), createdAt, updatedAt, roles), nil
}

func (r *UserRepository) rolesOf(ctx context.Context, userID int64) ([]entity.Role, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT r.id, r.name
		FROM roles r
		JOIN user_roles ur ON ur.role_id = r.id
		WHERE ur.user_id = $1
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roles []entity.Role
	for rows.Next() {
		var (
			id   int64
			name string
		)
		if err := rows.Scan(&id, &name); err != nil {
			return nil, err
		}
		roles = append(roles, entity.RestoreRole(id, name))
	}
	return roles, rows.Err()
}

var _ repository.UserRepository = (*UserRepository)(nil)
