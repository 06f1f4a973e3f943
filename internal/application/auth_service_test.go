package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-catalog-service/internal/domain/entity"
	"github.com/oksasatya/go-catalog-service/pkg/apperrors"
)

// -------- test fakes --------

type fakeUserRepo struct {
	byEmail   map[string]*entity.User
	usernames map[string]bool
	saved     []*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*entity.User), usernames: make(map[string]bool)}
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, apperrors.NotFound("user with email %s not found", email)
	}
	return u, nil
}

func (f *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, ok := f.byEmail[email]
	return ok, nil
}

func (f *fakeUserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return f.usernames[username], nil
}

func (f *fakeUserRepo) Save(ctx context.Context, u *entity.User) (*entity.User, error) {
	now := time.Now()
	saved := entity.RestoreUser(int64(len(f.byEmail)+1), u.Email(), u.Username(), u.PasswordHash(), u.Enabled(), now, now, u.Roles())
	f.byEmail[saved.Email()] = saved
	f.usernames[saved.Username()] = true
	f.saved = append(f.saved, saved)
	return saved, nil
}

// failingUserRepo simulates a store outage: every call fails the same way.
type failingUserRepo struct{ err error }

func (f failingUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return nil, f.err
}

func (f failingUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return false, f.err
}

func (f failingUserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return false, f.err
}

func (f failingUserRepo) Save(ctx context.Context, u *entity.User) (*entity.User, error) {
	return nil, f.err
}

type fakeRoleRepo struct {
	byName map[string]entity.Role
}

func seededRoles(names ...string) *fakeRoleRepo {
	f := &fakeRoleRepo{byName: make(map[string]entity.Role)}
	for i, name := range names {
		f.byName[name] = entity.RestoreRole(int64(i+1), name)
	}
	return f
}

func (f *fakeRoleRepo) FindByName(ctx context.Context, name string) (entity.Role, error) {
	r, ok := f.byName[name]
	if !ok {
		return entity.Role{}, apperrors.NotFound("role %s not found", name)
	}
	return r, nil
}

type fakeHasher struct{}

func (fakeHasher) Hash(plain string) (string, error) { return "hashed:" + plain, nil }

func (fakeHasher) Verify(plain, hash string) bool { return "hashed:"+plain == hash }

// -------- helpers --------

func newAuth(users *fakeUserRepo, roles *fakeRoleRepo) *AuthService {
	return NewAuthService(users, roles, fakeHasher{}, testLogger())
}

func registerUser(t *testing.T, svc *AuthService, email, username, password string) RegisterResponse {
	t.Helper()
	res, err := svc.Register(context.Background(), RegisterInput{
		Email: email, Username: username, Password: password,
	})
	require.NoError(t, err)
	return res
}

// -------- tests --------

func TestAuthService_Register(t *testing.T) {
	users := newFakeUserRepo()
	svc := newAuth(users, seededRoles(entity.RoleUser))

	res := registerUser(t, svc, "  John@Example.COM ", " john ", "secret-password")

	assert.NotZero(t, res.ID)
	assert.Equal(t, "john@example.com", res.Email, "email is normalized before storage")
	assert.Equal(t, "john", res.Username)

	require.Len(t, users.saved, 1)
	saved := users.saved[0]
	assert.True(t, saved.Enabled(), "registered accounts are enabled")
	assert.Equal(t, "hashed:secret-password", saved.PasswordHash())
	assert.True(t, saved.HasRole(entity.RestoreRole(1, entity.RoleUser)))
}

func TestAuthService_Register_duplicateEmail(t *testing.T) {
	users := newFakeUserRepo()
	svc := newAuth(users, seededRoles(entity.RoleUser))
	registerUser(t, svc, "john@example.com", "john", "secret-password")

	_, err := svc.Register(context.Background(), RegisterInput{
		Email: "John@Example.com", Username: "other", Password: "secret-password",
	})
	assert.Equal(t, apperrors.KindDuplicateValue, apperrors.KindOf(err))
	assert.Equal(t, map[string][]string{"email": {"already exists"}}, apperrors.DetailsOf(err))
}

func TestAuthService_Register_duplicateUsername(t *testing.T) {
	users := newFakeUserRepo()
	svc := newAuth(users, seededRoles(entity.RoleUser))
	registerUser(t, svc, "john@example.com", "john", "secret-password")

	_, err := svc.Register(context.Background(), RegisterInput{
		Email: "jane@example.com", Username: "john", Password: "secret-password",
	})
	assert.Equal(t, apperrors.KindDuplicateValue, apperrors.KindOf(err))
	assert.Equal(t, map[string][]string{"username": {"already exists"}}, apperrors.DetailsOf(err))
}

func TestAuthService_Register_emailConflictWinsOverUsername(t *testing.T) {
	users := newFakeUserRepo()
	svc := newAuth(users, seededRoles(entity.RoleUser))
	registerUser(t, svc, "john@example.com", "john", "secret-password")

	_, err := svc.Register(context.Background(), RegisterInput{
		Email: "john@example.com", Username: "john", Password: "secret-password",
	})
	assert.Equal(t, map[string][]string{"email": {"already exists"}}, apperrors.DetailsOf(err))
}

func TestAuthService_Register_missingSeedRole(t *testing.T) {
	users := newFakeUserRepo()
	svc := newAuth(users, seededRoles())

	_, err := svc.Register(context.Background(), RegisterInput{
		Email: "john@example.com", Username: "john", Password: "secret-password",
	})
	assert.Equal(t, apperrors.KindInternal, apperrors.KindOf(err))
	assert.Empty(t, users.saved)
}

func TestAuthService_Login(t *testing.T) {
	users := newFakeUserRepo()
	svc := newAuth(users, seededRoles(entity.RoleUser))
	registerUser(t, svc, "john@example.com", "john", "secret-password")

	res, err := svc.Login(context.Background(), Credentials{
		Email: "  John@Example.COM ", Password: "secret-password",
	})
	require.NoError(t, err)
	assert.Equal(t, "john@example.com", res.Email)
	assert.Equal(t, "john", res.Username)
	assert.Equal(t, []string{entity.RoleUser}, res.Roles)
}

func TestAuthService_Login_rolesSorted(t *testing.T) {
	users := newFakeUserRepo()
	stored, err := entity.NewUser("admin@example.com", "admin", "hashed:secret-password", true)
	require.NoError(t, err)
	stored.AddRole(entity.RestoreRole(1, entity.RoleUser))
	stored.AddRole(entity.RestoreRole(2, "ROLE_ADMIN"))
	_, err = users.Save(context.Background(), stored)
	require.NoError(t, err)

	res, err := newAuth(users, seededRoles()).Login(context.Background(), Credentials{
		Email: "admin@example.com", Password: "secret-password",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"ROLE_ADMIN", entity.RoleUser}, res.Roles)
}

func TestAuthService_Login_unknownEmailAndWrongPasswordFailAlike(t *testing.T) {
	users := newFakeUserRepo()
	svc := newAuth(users, seededRoles(entity.RoleUser))
	registerUser(t, svc, "john@example.com", "john", "secret-password")

	_, errUnknown := svc.Login(context.Background(), Credentials{
		Email: "nobody@example.com", Password: "secret-password",
	})
	_, errWrongPwd := svc.Login(context.Background(), Credentials{
		Email: "john@example.com", Password: "not-the-password",
	})

	assert.Equal(t, apperrors.KindInvalidCredentials, apperrors.KindOf(errUnknown))
	assert.Equal(t, apperrors.KindInvalidCredentials, apperrors.KindOf(errWrongPwd))
	assert.Equal(t, errUnknown.Error(), errWrongPwd.Error(), "both failures read identically")
}

func TestAuthService_Login_storeFailureIsNotBadCredentials(t *testing.T) {
	outage := errors.New("pgx: connection refused")
	svc := NewAuthService(failingUserRepo{err: outage}, seededRoles(), fakeHasher{}, testLogger())

	_, err := svc.Login(context.Background(), Credentials{
		Email: "john@example.com", Password: "secret-password",
	})
	assert.Equal(t, apperrors.KindInternal, apperrors.KindOf(err))
	assert.ErrorIs(t, err, outage, "the store failure propagates unchanged")
}

func TestAuthService_Login_disabledAccount(t *testing.T) {
	users := newFakeUserRepo()
	stored, err := entity.NewUser("john@example.com", "john", "hashed:secret-password", false)
	require.NoError(t, err)
	_, err = users.Save(context.Background(), stored)
	require.NoError(t, err)

	_, err = newAuth(users, seededRoles()).Login(context.Background(), Credentials{
		Email: "john@example.com", Password: "secret-password",
	})
	assert.Equal(t, apperrors.KindAccountDisabled, apperrors.KindOf(err),
		"the disabled state is reported even with correct credentials")
}
