package customer

import (
	"errors"

	"quickcourier/internal/core/domain/model/kernel"
	"quickcourier/internal/pkg/errs"
	"quickcourier/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when an Address instance was not
// created through NewAddress or RestoreAddress.
var ErrAddressIsNotConstructed = errors.New(
	"Address must be created via NewAddress or RestoreAddress",
)

// Address is a delivery destination owned by a user. Its zone is what
// zone-scoped shipping rules match against.
type Address struct {
	id     kernel.UUID
	userID kernel.UUID
	street string
	city   string
	zone   string

	guard guard.ConstructorGuard
}

// NewAddress creates an address belonging to the given user.
func NewAddress(userID kernel.UUID, street, city, zone string) (*Address, error) {
	return RestoreAddress(kernel.NewUUID(), userID, street, city, zone)
}

// RestoreAddress reconstructs an address from persistence, validating every
// field.
func RestoreAddress(id, userID kernel.UUID, street, city, zone string) (*Address, error) {
	a := &Address{
		id:     id,
		userID: userID,
		city:   city,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		id.Validate(),
		userID.Validate(),
		a.setStreet(street),
		a.setZone(zone),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// Validate ensures the address was created through a constructor.
func (a *Address) Validate() error {
	if a == nil {
		return ErrAddressIsNotConstructed
	}
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// ID returns the address's unique identifier.
func (a *Address) ID() kernel.UUID {
	return a.id
}

// UserID returns the owning user's identifier.
func (a *Address) UserID() kernel.UUID {
	return a.userID
}

// Street returns the street line of the address.
func (a *Address) Street() string {
	return a.street
}

// City returns the city of the address.
func (a *Address) City() string {
	return a.city
}

// Zone returns the delivery zone the address falls in.
func (a *Address) Zone() string {
	return a.zone
}

// BelongsTo reports whether the address is owned by the given user.
func (a *Address) BelongsTo(userID kernel.UUID) bool {
	return a.userID == userID
}

func (a *Address) setStreet(street string) error {
	if street == "" {
		return errs.NewValueIsRequiredError("street")
	}
	a.street = street
	return nil
}

func (a *Address) setZone(zone string) error {
	if zone == "" {
		return errs.NewValueIsRequiredError("zone")
	}
	a.zone = zone
	return nil
}
