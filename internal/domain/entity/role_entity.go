package entity

import (
	"strings"

	"github.com/oksasatya/go-catalog-service/pkg/apperrors"
)

// RolePrefix marks a string as a role name. Seed data and NewRole both
// enforce it.
const RolePrefix = "ROLE_"

// RoleUser is the default role attached to every registered account.
const RoleUser = RolePrefix + "USER"

// Role is a value type: two roles with the same name are interchangeable
// regardless of identity, so equality and set membership key on the name.
type Role struct {
	id   int64
	name string
}

func NewRole(name string) (Role, error) {
	if strings.TrimSpace(name) == "" {
		return Role{}, apperrors.InvalidArgument("role name is blank")
	}
	if !strings.HasPrefix(name, RolePrefix) {
		return Role{}, apperrors.InvalidArgument("role name must start with %q", RolePrefix)
	}
	return Role{name: name}, nil
}

// RestoreRole rehydrates a seeded role from the store.
func RestoreRole(id int64, name string) Role {
	return Role{id: id, name: name}
}

func (r Role) ID() int64    { return r.id }
func (r Role) Name() string { return r.name }

func (r Role) Equal(other Role) bool { return r.name == other.name }
