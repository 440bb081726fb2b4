package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/apparel-commerce-backend/internal/models"
	service "github.com/aaravmahajanofficial/apparel-commerce-backend/internal/services"
	"github.com/aaravmahajanofficial/apparel-commerce-backend/internal/utils"
	"github.com/aaravmahajanofficial/apparel-commerce-backend/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type AddressHandler struct {
	addressService service.AddressService
	validator      *validator.Validate
}

func NewAddressHandler(addressService service.AddressService) *AddressHandler {
	return &AddressHandler{addressService: addressService, validator: validator.New()}
}

// ListAddresses godoc
//
//	@Summary	List the caller's addresses
//	@Tags		Addresses
//	@Produce	json
//	@Success	200	{array}		models.Address			"Addresses ordered by id"
//	@Failure	403	{object}	response.ErrorResponse	"Authentication required"
//	@Security	BearerAuth
//	@Router		/account/address/list [get]
func (h *AddressHandler) ListAddresses() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		user, _, ok := currentUser(w, r)
		if !ok {
			return
		}

		addresses, err := h.addressService.ListAddresses(r.Context(), user.ID)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, addresses)
	}
}

// CreateAddress godoc
//
//	@Summary		Add an address
//	@Description	A user holds at most five addresses. A new default replaces the previous one.
//	@Tags			Addresses
//	@Accept			json
//	@Produce		json
//	@Param			address	body		models.CreateAddressRequest	true	"Address"
//	@Success		200		{object}	models.Address				"Address created"
//	@Failure		400		{object}	response.ErrorResponse		"Validation error"
//	@Failure		409		{object}	response.ErrorResponse		"Address limit reached"
//	@Security		BearerAuth
//	@Router			/account/address/create [post]
func (h *AddressHandler) CreateAddress() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		user, logger, ok := currentUser(w, r)
		if !ok {
			return
		}

		var req models.CreateAddressRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid create address input")
			return
		}

		address, err := h.addressService.CreateAddress(r.Context(), user.ID, &req)
		if err != nil {
			logger.Warn("Failed to create address", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, address)
	}
}

// UpdateAddress godoc
//
//	@Summary	Edit an address
//	@Tags		Addresses
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int							true	"Address ID"
//	@Param		address	body		models.UpdateAddressRequest	true	"Fields to change"
//	@Success	200		{object}	models.Address				"Address updated"
//	@Failure	404		{object}	response.ErrorResponse		"Address not found"
//	@Security	BearerAuth
//	@Router		/account/address/edit/{id} [put]
func (h *AddressHandler) UpdateAddress() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		user, logger, ok := currentUser(w, r)
		if !ok {
			return
		}

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		var req models.UpdateAddressRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid update address input", slog.Int64("addressId", id))
			return
		}

		address, err := h.addressService.UpdateAddress(r.Context(), user.ID, id, &req)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, address)
	}
}

// DeleteAddress godoc
//
//	@Summary	Delete an address
//	@Tags		Addresses
//	@Param		id	path	int	true	"Address ID"
//	@Success	204	"Address deleted"
//	@Failure	404	{object}	response.ErrorResponse	"Address not found"
//	@Failure	409	{object}	response.ErrorResponse	"Address used by orders"
//	@Security	BearerAuth
//	@Router		/account/address/delete/{id} [delete]
func (h *AddressHandler) DeleteAddress() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		user, _, ok := currentUser(w, r)
		if !ok {
			return
		}

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		if err := h.addressService.DeleteAddress(r.Context(), user.ID, id); err != nil {
			response.Error(w, err)
			return
		}

		response.NoContent(w)
	}
}
