package entity

import (
	"strings"
	"time"

	"github.com/oksasatya/go-catalog-service/pkg/apperrors"
)

// User is the aggregate root for the account domain. The password is stored
// as an opaque one-way hash; the entity never sees a plaintext password.
type User struct {
	id           int64
	email        string
	username     string
	passwordHash string
	enabled      bool
	createdAt    time.Time
	updatedAt    time.Time
	roles        map[string]Role
}

// NewUser validates and normalizes the full input: email is trimmed and
// lower-cased, username and passwordHash are trimmed. Accounts are disabled
// unless the caller enables them explicitly.
func NewUser(email, username, passwordHash string, enabled bool) (*User, error) {
	u := &User{roles: make(map[string]Role)}
	if err := u.SetEmail(email); err != nil {
		return nil, err
	}
	if err := u.SetUsername(username); err != nil {
		return nil, err
	}
	if err := u.SetPasswordHash(passwordHash); err != nil {
		return nil, err
	}
	u.enabled = enabled
	return u, nil
}

// RestoreUser rehydrates a user from the store.
func RestoreUser(id int64, email, username, passwordHash string, enabled bool, createdAt, updatedAt time.Time, roles []Role) *User {
	u := &User{
		id:           id,
		email:        email,
		username:     username,
		passwordHash: passwordHash,
		enabled:      enabled,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
		roles:        make(map[string]Role, len(roles)),
	}
	for _, r := range roles {
		u.roles[r.Name()] = r
	}
	return u
}

func (u *User) ID() int64            { return u.id }
func (u *User) Email() string        { return u.email }
func (u *User) Username() string     { return u.username }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) Enabled() bool        { return u.enabled }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }

func (u *User) SetEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return apperrors.InvalidArgument("user email is blank")
	}
	u.email = strings.ToLower(email)
	return nil
}

func (u *User) SetUsername(username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return apperrors.InvalidArgument("username is blank")
	}
	u.username = username
	return nil
}

func (u *User) SetPasswordHash(passwordHash string) error {
	passwordHash = strings.TrimSpace(passwordHash)
	if passwordHash == "" {
		return apperrors.InvalidArgument("password hash is blank")
	}
	u.passwordHash = passwordHash
	return nil
}

func (u *User) SetEnabled(enabled bool) { u.enabled = enabled }

// AddRole and RemoveRole are idempotent set operations keyed by role name.
func (u *User) AddRole(r Role) {
	if u.roles == nil {
		u.roles = make(map[string]Role)
	}
	u.roles[r.Name()] = r
}

func (u *User) RemoveRole(r Role) { delete(u.roles, r.Name()) }

func (u *User) HasRole(r Role) bool {
	_, ok := u.roles[r.Name()]
	return ok
}

// Roles returns the role set in unspecified order.
func (u *User) Roles() []Role {
	out := make([]Role, 0, len(u.roles))
	for _, r := range u.roles {
		out = append(out, r)
	}
	return out
}

// Equal compares by identity once both sides have one, falling back to email
// equality for not-yet-persisted instances.
func (u *User) Equal(other *User) bool {
	if other == nil {
		return false
	}
	if u.id != 0 && other.id != 0 {
		return u.id == other.id
	}
	return u.email == other.email
}
