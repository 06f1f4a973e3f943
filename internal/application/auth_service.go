package application

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-catalog-service/internal/domain/entity"
	repo "github.com/oksasatya/go-catalog-service/internal/domain/repository"
	"github.com/oksasatya/go-catalog-service/pkg/apperrors"
)

type AuthService struct {
	Users  repo.UserRepository
	Roles  repo.RoleRepository
	Hasher PasswordHasher
	Logger *logrus.Logger
}

func NewAuthService(users repo.UserRepository, roles repo.RoleRepository, hasher PasswordHasher, logger *logrus.Logger) *AuthService {
	return &AuthService{Users: users, Roles: roles, Hasher: hasher, Logger: logger}
}

type RegisterInput struct {
	Email    string
	Username string
	Password string
}

type Credentials struct {
	Email    string
	Password string
}

type RegisterResponse struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

type LoginResponse struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
	Roles     []string  `json:"roles"`
}

// Register creates an enabled account carrying the default user role.
// Email uniqueness is checked before username uniqueness, so when both
// collide the email conflict wins. A missing seed role is a configuration
// failure, never a client error.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (RegisterResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	username := strings.TrimSpace(in.Username)

	exists, err := s.Users.ExistsByEmail(ctx, email)
	if err != nil {
		return RegisterResponse{}, err
	}
	if exists {
		return RegisterResponse{}, apperrors.Duplicate("email")
	}
	exists, err = s.Users.ExistsByUsername(ctx, username)
	if err != nil {
		return RegisterResponse{}, err
	}
	if exists {
		return RegisterResponse{}, apperrors.Duplicate("username")
	}

	role, err := s.Roles.FindByName(ctx, entity.RoleUser)
	if err != nil {
		return RegisterResponse{}, apperrors.Internal(fmt.Errorf("missing seed role %s: %w", entity.RoleUser, err))
	}

	hash, err := s.Hasher.Hash(in.Password)
	if err != nil {
		return RegisterResponse{}, apperrors.Internal(err)
	}
	u, err := entity.NewUser(email, username, hash, true)
	if err != nil {
		return RegisterResponse{}, err
	}
	u.AddRole(role)

	saved, err := s.Users.Save(ctx, u)
	if err != nil {
		return RegisterResponse{}, err
	}
	s.Logger.WithFields(logrus.Fields{
		"user_id": saved.ID(),
		"email":   MaskEmail(saved.Email()),
	}).Info("REGISTER_SUCCESS")

	return RegisterResponse{
		ID:        saved.ID(),
		Email:     saved.Email(),
		Username:  saved.Username(),
		CreatedAt: saved.CreatedAt(),
	}, nil
}

// Login verifies credentials against the stored hash. An unknown email and a
// wrong password fail identically so the caller learns nothing about which
// field was wrong; a disabled account is reported as such. Every path emits
// one audit line with the masked email and never the password.
func (s *AuthService) Login(ctx context.Context, creds Credentials) (LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(creds.Email))

	u, err := s.Users.FindByEmail(ctx, email)
	if err != nil {
		// Only an absent user reads as bad credentials; store failures
		// propagate unchanged.
		if apperrors.KindOf(err) != apperrors.KindNotFound {
			return LoginResponse{}, err
		}
		s.auditFail(email, "INVALID_CREDENTIALS")
		return LoginResponse{}, apperrors.InvalidCredentials()
	}
	if !u.Enabled() {
		s.auditFail(email, "ACCOUNT_DISABLED")
		return LoginResponse{}, apperrors.AccountDisabled()
	}
	if !s.Hasher.Verify(creds.Password, u.PasswordHash()) {
		s.auditFail(email, "INVALID_CREDENTIALS")
		return LoginResponse{}, apperrors.InvalidCredentials()
	}

	roles := u.Roles()
	names := make([]string, 0, len(roles))
	for _, r := range roles {
		names = append(names, r.Name())
	}
	sort.Strings(names)

	s.Logger.WithFields(logrus.Fields{
		"user_id": u.ID(),
		"email":   MaskEmail(email),
		"roles":   names,
	}).Info("LOGIN_SUCCESS")

	return LoginResponse{
		ID:        u.ID(),
		Email:     u.Email(),
		Username:  u.Username(),
		CreatedAt: u.CreatedAt(),
		Roles:     names,
	}, nil
}

func (s *AuthService) auditFail(email, reason string) {
	s.Logger.WithFields(logrus.Fields{
		"reason": reason,
		"email":  MaskEmail(email),
	}).Warn("LOGIN_FAIL")
}
