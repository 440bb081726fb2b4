package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aaravmahajanofficial/apparel-commerce-backend/internal/models"
	"github.com/aaravmahajanofficial/apparel-commerce-backend/internal/utils"
)

type AddressRepository interface {
	CreateAddress(ctx context.Context, address *models.Address) error
	GetAddressByID(ctx context.Context, id int64) (*models.Address, error)
	GetUserAddress(ctx context.Context, id, userID int64) (*models.Address, error)
	UpdateAddress(ctx context.Context, address *models.Address) error
	DeleteAddress(ctx context.Context, id, userID int64) error
	ListAddresses(ctx context.Context, userID int64) ([]*models.Address, error)
	CountAddresses(ctx context.Context, userID int64) (int, error)
	ClearDefault(ctx context.Context, userID, exceptID int64) error
}

type addressRepository struct {
	DB *sql.DB
}

func NewAddressRepo(db *sql.DB) AddressRepository {
	return &addressRepository{DB: db}
}

const addressColumns = `id, user_id, first_name, last_name, address, address2, area, state, country, zip_code, phone_number, is_default`

func (r *addressRepository) CreateAddress(ctx context.Context, address *models.Address) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO addresses (user_id, first_name, last_name, address, address2, area, state, country, zip_code, phone_number, is_default)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`

	err := conn(ctx, r.DB).QueryRowContext(dbCtx, query,
		address.UserID, address.FirstName, address.LastName, address.Address, address.Address2,
		address.Area, address.State, address.Country, address.ZipCode, address.PhoneNumber, address.IsDefault,
	).Scan(&address.ID)
	if err != nil {
		return fmt.Errorf("inserting address: %w", err)
	}

	return nil
}

func (r *addressRepository) GetAddressByID(ctx context.Context, id int64) (*models.Address, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + addressColumns + ` FROM addresses WHERE id = $1`

	return scanAddress(conn(ctx, r.DB).QueryRowContext(dbCtx, query, id))
}

// GetUserAddress returns sql.ErrNoRows both for a missing address and for one owned by another user.
func (r *addressRepository) GetUserAddress(ctx context.Context, id, userID int64) (*models.Address, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + addressColumns + ` FROM addresses WHERE id = $1 AND user_id = $2`

	return scanAddress(conn(ctx, r.DB).QueryRowContext(dbCtx, query, id, userID))
}

func (r *addressRepository) UpdateAddress(ctx context.Context, address *models.Address) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE addresses
		SET first_name = $1, last_name = $2, address = $3, address2 = $4, area = $5, state = $6,
		    country = $7, zip_code = $8, phone_number = $9, is_default = $10, updated_at = NOW()
		WHERE id = $11 AND user_id = $12`

	result, err := conn(ctx, r.DB).ExecContext(dbCtx, query,
		address.FirstName, address.LastName, address.Address, address.Address2, address.Area, address.State,
		address.Country, address.ZipCode, address.PhoneNumber, address.IsDefault, address.ID, address.UserID,
	)
	if err != nil {
		return fmt.Errorf("updating address %d: %w", address.ID, err)
	}

	return expectAffected(result)
}

func (r *addressRepository) DeleteAddress(ctx context.Context, id, userID int64) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := conn(ctx, r.DB).ExecContext(dbCtx, `DELETE FROM addresses WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("deleting address %d: %w", id, err)
	}

	return expectAffected(result)
}

func (r *addressRepository) ListAddresses(ctx context.Context, userID int64) ([]*models.Address, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + addressColumns + ` FROM addresses WHERE user_id = $1 ORDER BY id ASC`

	rows, err := conn(ctx, r.DB).QueryContext(dbCtx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing addresses: %w", err)
	}
	defer rows.Close()

	addresses := []*models.Address{}

	for rows.Next() {
		address := &models.Address{}
		if err := rows.Scan(&address.ID, &address.UserID, &address.FirstName, &address.LastName, &address.Address,
			&address.Address2, &address.Area, &address.State, &address.Country, &address.ZipCode,
			&address.PhoneNumber, &address.IsDefault); err != nil {
			return nil, fmt.Errorf("scanning address: %w", err)
		}
		addresses = append(addresses, address)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating addresses: %w", err)
	}

	return addresses, nil
}

func (r *addressRepository) CountAddresses(ctx context.Context, userID int64) (int, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var count int

	if err := conn(ctx, r.DB).QueryRowContext(dbCtx, `SELECT COUNT(*) FROM addresses WHERE user_id = $1`, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting addresses: %w", err)
	}

	return count, nil
}

// ClearDefault un-flags the user's current default address, leaving exceptID untouched.
func (r *addressRepository) ClearDefault(ctx context.Context, userID, exceptID int64) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `UPDATE addresses SET is_default = FALSE, updated_at = NOW() WHERE user_id = $1 AND is_default AND id <> $2`

	if _, err := conn(ctx, r.DB).ExecContext(dbCtx, query, userID, exceptID); err != nil {
		return fmt.Errorf("clearing default address: %w", err)
	}

	return nil
}

func scanAddress(row *sql.Row) (*models.Address, error) {

	address := &models.Address{}

	err := row.Scan(&address.ID, &address.UserID, &address.FirstName, &address.LastName, &address.Address,
		&address.Address2, &address.Area, &address.State, &address.Country, &address.ZipCode,
		&address.PhoneNumber, &address.IsDefault)
	if err != nil {
		return nil, fmt.Errorf("querying address: %w", err)
	}

	return address, nil
}

// expectAffected turns an update or delete that matched nothing into sql.ErrNoRows.
func expectAffected(result sql.Result) error {

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading affected rows: %w", err)
	}

	if affected == 0 {
		return sql.ErrNoRows
	}

	return nil
}
