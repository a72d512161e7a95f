package customer

import (
	"errors"
	"fmt"
	"strings"

	"quickcourier/internal/core/domain/model/kernel"
	"quickcourier/internal/pkg/errs"
	"quickcourier/internal/pkg/guard"
)

// ErrUserIsNotConstructed is returned when a User instance was not created
// through NewUser or RestoreUser.
var ErrUserIsNotConstructed = errors.New(
	"User must be created via NewUser or RestoreUser",
)

// Role identifies what a user account is allowed to do.
type Role int

const (
	// RoleUnknown is the zero value and never valid.
	RoleUnknown Role = iota
	// RoleCustomer may place and manage their own orders.
	RoleCustomer
	// RoleAdmin manages catalog and shipping configuration.
	RoleAdmin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleCustomer: "CUSTOMER",
		RoleAdmin:    "ADMIN",
	}
}

// RoleFromString parses the persisted representation of a role.
func RoleFromString(s string) (Role, error) {
	for role, str := range getRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause(
		"role", fmt.Errorf("%q is not a valid role", s))
}

// Validate checks the role is one of the defined values.
func (r Role) Validate() error {
	if _, ok := getRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"role", fmt.Errorf("%d is not a valid role", int(r)))
	}
	return nil
}

// String returns the persisted representation of the role.
func (r Role) String() string {
	if s, ok := getRoleStrings()[r]; ok {
		return s
	}
	return fmt.Sprintf("Role(%d)", int(r))
}

// User is an account that orders are placed for. Only active users with the
// CUSTOMER role may place orders.
type User struct {
	id       kernel.UUID
	email    string
	name     string
	role     Role
	isActive bool

	guard guard.ConstructorGuard
}

// NewUser creates an active user account.
func NewUser(email, name string, role Role) (*User, error) {
	return RestoreUser(kernel.NewUUID(), email, name, role, true)
}

// RestoreUser reconstructs a user from persistence, validating every field.
func RestoreUser(id kernel.UUID, email, name string, role Role, isActive bool) (*User, error) {
	u := &User{
		id:       id,
		isActive: isActive,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		id.Validate(),
		u.setEmail(email),
		u.setName(name),
		u.setRole(role),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// Validate ensures the user was created through a constructor.
func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Email returns the user's email address.
func (u *User) Email() string {
	return u.email
}

// Name returns the user's display name.
func (u *User) Name() string {
	return u.name
}

// Role returns the user's role.
func (u *User) Role() Role {
	return u.role
}

// IsActive reports whether the account is enabled.
func (u *User) IsActive() bool {
	return u.isActive
}

// CanPlaceOrders reports whether this account may create orders: the account
// must be active and carry the CUSTOMER role.
func (u *User) CanPlaceOrders() bool {
	return u.isActive && u.role == RoleCustomer
}

func (u *User) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidErrorWithCause(
			"email", fmt.Errorf("%q is not an email address", email))
	}
	u.email = email
	return nil
}

func (u *User) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	u.name = name
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}
