package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aaravmahajanofficial/apparel-commerce-backend/internal/api/middleware"
	appErrors "github.com/aaravmahajanofficial/apparel-commerce-backend/internal/errors"
	"github.com/aaravmahajanofficial/apparel-commerce-backend/internal/models"
	repository "github.com/aaravmahajanofficial/apparel-commerce-backend/internal/repositories"
	"github.com/aaravmahajanofficial/apparel-commerce-backend/internal/utils"
)

type AddressService interface {
	ListAddresses(ctx context.Context, userID int64) ([]*models.Address, error)
	CreateAddress(ctx context.Context, userID int64, req *models.CreateAddressRequest) (*models.Address, error)
	UpdateAddress(ctx context.Context, userID, id int64, req *models.UpdateAddressRequest) (*models.Address, error)
	DeleteAddress(ctx context.Context, userID, id int64) error
}

type addressService struct {
	addresses repository.AddressRepository
	users     repository.UserRepository
	tx        repository.Transactor
}

func NewAddressService(addresses repository.AddressRepository, users repository.UserRepository, tx repository.Transactor) AddressService {
	return &addressService{addresses: addresses, users: users, tx: tx}
}

func (s *addressService) ListAddresses(ctx context.Context, userID int64) ([]*models.Address, error) {

	addresses, err := s.addresses.ListAddresses(ctx, userID)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to list addresses").WithError(err)
	}

	return addresses, nil
}

// CreateAddress holds a lock on the user row so the cap and the single default
// survive concurrent requests from the same user.
func (s *addressService) CreateAddress(ctx context.Context, userID int64, req *models.CreateAddressRequest) (*models.Address, error) {

	address := &models.Address{
		UserID:      userID,
		FirstName:   utils.Sanitize(req.FirstName),
		LastName:    utils.Sanitize(req.LastName),
		Address:     utils.Sanitize(req.Address),
		Address2:    utils.Sanitize(req.Address2),
		Area:        utils.Sanitize(req.Area),
		State:       utils.Sanitize(req.State),
		Country:     utils.Sanitize(req.Country),
		ZipCode:     utils.Sanitize(req.ZipCode),
		PhoneNumber: utils.Sanitize(req.PhoneNumber),
		IsDefault:   req.IsDefault,
	}

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {

		if err := s.users.LockUser(ctx, userID); err != nil {
			return appErrors.DatabaseError("Failed to lock user").WithError(err)
		}

		count, err := s.addresses.CountAddresses(ctx, userID)
		if err != nil {
			return appErrors.DatabaseError("Failed to count addresses").WithError(err)
		}

		if count >= models.MaxAddressesPerUser {
			return appErrors.ConflictError(fmt.Sprintf("User has reached the maximum number of addresses (%d)", models.MaxAddressesPerUser))
		}

		if address.IsDefault {
			if err := s.addresses.ClearDefault(ctx, userID, 0); err != nil {
				return appErrors.DatabaseError("Failed to update default address").WithError(err)
			}
		}

		if err := s.addresses.CreateAddress(ctx, address); err != nil {
			return appErrors.DatabaseError("Failed to create address").WithError(err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	middleware.LoggerFromContext(ctx).Info("Address created", slog.Int64("addressId", address.ID))

	return address, nil
}

// UpdateAddress treats a missing address and one owned by someone else the same way.
func (s *addressService) UpdateAddress(ctx context.Context, userID, id int64, req *models.UpdateAddressRequest) (*models.Address, error) {

	var address *models.Address

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {

		if err := s.users.LockUser(ctx, userID); err != nil {
			return appErrors.DatabaseError("Failed to lock user").WithError(err)
		}

		current, err := s.addresses.GetUserAddress(ctx, id, userID)
		if err != nil {
			if isNotFound(err) {
				return appErrors.NotFoundError("Address not found")
			}
			return appErrors.DatabaseError("Failed to load address").WithError(err)
		}

		applyAddressUpdate(current, req)

		if req.IsDefault != nil && *req.IsDefault {
			if err := s.addresses.ClearDefault(ctx, userID, id); err != nil {
				return appErrors.DatabaseError("Failed to update default address").WithError(err)
			}
		}

		if err := s.addresses.UpdateAddress(ctx, current); err != nil {
			if isNotFound(err) {
				return appErrors.NotFoundError("Address not found")
			}
			return appErrors.DatabaseError("Failed to update address").WithError(err)
		}

		address = current
		return nil
	})
	if err != nil {
		return nil, err
	}

	return address, nil
}

func (s *addressService) DeleteAddress(ctx context.Context, userID, id int64) error {

	if err := s.addresses.DeleteAddress(ctx, id, userID); err != nil {
		switch {
		case isNotFound(err):
			return appErrors.NotFoundError("Address not found")
		case hasPQCode(err, pqForeignKeyViolation):
			return appErrors.ConflictError("Address is used by existing orders").WithError(err)
		default:
			return appErrors.DatabaseError("Failed to delete address").WithError(err)
		}
	}

	return nil
}

func applyAddressUpdate(address *models.Address, req *models.UpdateAddressRequest) {

	// names and the first line are required columns, blanks are ignored
	setIfNotBlank := func(dst *string, src *string) {
		if src != nil && strings.TrimSpace(*src) != "" {
			*dst = utils.Sanitize(*src)
		}
	}
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = utils.Sanitize(*src)
		}
	}

	setIfNotBlank(&address.FirstName, req.FirstName)
	setIfNotBlank(&address.LastName, req.LastName)
	setIfNotBlank(&address.Address, req.Address)
	set(&address.Address2, req.Address2)
	set(&address.Area, req.Area)
	set(&address.State, req.State)
	set(&address.Country, req.Country)
	set(&address.ZipCode, req.ZipCode)
	set(&address.PhoneNumber, req.PhoneNumber)

	if req.IsDefault != nil {
		address.IsDefault = *req.IsDefault
	}
}
