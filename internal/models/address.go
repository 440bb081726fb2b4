package models

import "time"

const MaxAddressesPerUser = 5

type Address struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"-"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Address     string    `json:"address"`
	Address2    string    `json:"address2"`
	Area        string    `json:"area"`
	State       string    `json:"state"`
	Country     string    `json:"country"`
	ZipCode     string    `json:"zipCode"`
	PhoneNumber string    `json:"phoneNumber"`
	IsDefault   bool      `json:"isDefault"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}

type CreateAddressRequest struct {
	FirstName   string `json:"firstName" validate:"required,max=100"`
	LastName    string `json:"lastName" validate:"required,max=100"`
	Address     string `json:"address" validate:"required,max=255"`
	Address2    string `json:"address2" validate:"max=255"`
	Area        string `json:"area" validate:"max=100"`
	State       string `json:"state" validate:"max=100"`
	Country     string `json:"country" validate:"max=100"`
	ZipCode     string `json:"zipCode" validate:"max=20"`
	PhoneNumber string `json:"phoneNumber" validate:"max=30"`
	IsDefault   bool   `json:"isDefault"`
}

// UpdateAddressRequest: names and the first address line only apply when non-blank,
// the remaining fields whenever they are present.
type UpdateAddressRequest struct {
	FirstName   *string `json:"firstName" validate:"omitempty,max=100"`
	LastName    *string `json:"lastName" validate:"omitempty,max=100"`
	Address     *string `json:"address" validate:"omitempty,max=255"`
	Address2    *string `json:"address2" validate:"omitempty,max=255"`
	Area        *string `json:"area" validate:"omitempty,max=100"`
	State       *string `json:"state" validate:"omitempty,max=100"`
	Country     *string `json:"country" validate:"omitempty,max=100"`
	ZipCode     *string `json:"zipCode" validate:"omitempty,max=20"`
	PhoneNumber *string `json:"phoneNumber" validate:"omitempty,max=30"`
	IsDefault   *bool   `json:"isDefault"`
}
