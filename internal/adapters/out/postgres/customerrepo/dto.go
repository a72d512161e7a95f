// Package customerrepo implements user and address persistence over GORM.
// The pricing engine only reads these records; they are authored through
// account management outside this service.
package customerrepo

import (
	"quickcourier/internal/core/domain/model/customer"
	"quickcourier/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// UserDTO represents the database structure for persisting user accounts.
type UserDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email    string    `gorm:"uniqueIndex;size:255"`
	Name     string    `gorm:"size:255"`
	Role     string    `gorm:"size:16"`
	IsActive bool
}

// TableName overrides GORM's default naming to use "users".
func (UserDTO) TableName() string {
	return "users"
}

// AddressDTO represents the database structure for persisting delivery
// addresses.
type AddressDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID uuid.UUID `gorm:"type:uuid;index"`
	Street string    `gorm:"size:255"`
	City   string    `gorm:"size:128"`
	Zone   string    `gorm:"size:64;index"`
}

// TableName overrides GORM's default naming to use "addresses".
func (AddressDTO) TableName() string {
	return "addresses"
}

func userFromDomain(u *customer.User) UserDTO {
	return UserDTO{
		ID:       u.ID().Bytes(),
		Email:    u.Email(),
		Name:     u.Name(),
		Role:     u.Role().String(),
		IsActive: u.IsActive(),
	}
}

func userToDomain(dto UserDTO) (*customer.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	role, err := customer.RoleFromString(dto.Role)
	if err != nil {
		return nil, err
	}

	return customer.RestoreUser(id, dto.Email, dto.Name, role, dto.IsActive)
}

func addressFromDomain(a *customer.Address) AddressDTO {
	return AddressDTO{
		ID:     a.ID().Bytes(),
		UserID: a.UserID().Bytes(),
		Street: a.Street(),
		City:   a.City(),
		Zone:   a.Zone(),
	}
}

func addressToDomain(dto AddressDTO) (*customer.Address, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	return customer.RestoreAddress(id, userID, dto.Street, dto.City, dto.Zone)
}
