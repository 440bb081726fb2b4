package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aaravmahajanofficial/apparel-commerce-backend/internal/models"
	"github.com/aaravmahajanofficial/apparel-commerce-backend/internal/utils"
	"github.com/lib/pq"
)

type CollectionRepository interface {
	CreateCollection(ctx context.Context, collection *models.Collection) error
	GetCollectionByID(ctx context.Context, id int64) (*models.Collection, error)
	GetCollectionsByIDs(ctx context.Context, ids []int64) ([]*models.Collection, error)
	ListCollections(ctx context.Context, onlyRoot bool) ([]*models.Collection, error)
	ListSubcollections(ctx context.Context, parentID int64) ([]*models.Collection, error)
	UpdateCollection(ctx context.Context, collection *models.Collection) error
	DeleteCollection(ctx context.Context, id int64) error
	AddProduct(ctx context.Context, collectionID, productID int64) error
	RemoveProduct(ctx context.Context, collectionID, productID int64) error
	ClearProducts(ctx context.Context, collectionID int64) error
}

type collectionRepository struct {
	DB *sql.DB
}

func NewCollectionRepo(db *sql.DB) CollectionRepository {
	return &collectionRepository{DB: db}
}

func (r *collectionRepository) CreateCollection(ctx context.Context, collection *models.Collection) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO collections (name, parent_collection_id, linked_at)
		VALUES ($1, $2::BIGINT, CASE WHEN $2::BIGINT IS NULL THEN NULL ELSE NOW() END)
		RETURNING id, created_at`

	err := conn(ctx, r.DB).QueryRowContext(dbCtx, query, collection.Name, collection.ParentCollectionID).
		Scan(&collection.ID, &collection.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting collection: %w", err)
	}

	collection.ProductIDs = []int64{}
	collection.Subcollections = []models.Subcollection{}

	return nil
}

// GetCollectionByID locks the row when called inside a transaction so hierarchy
// changes to the same collection are serialized.
func (r *collectionRepository) GetCollectionByID(ctx context.Context, id int64) (*models.Collection, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT id, name, parent_collection_id, created_at FROM collections WHERE id = $1`
	if inTransaction(ctx) {
		query += ` FOR UPDATE`
	}

	collection := &models.Collection{}

	err := conn(ctx, r.DB).QueryRowContext(dbCtx, query, id).
		Scan(&collection.ID, &collection.Name, &collection.ParentCollectionID, &collection.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("querying collection %d: %w", id, err)
	}

	if err := r.attachMembers(ctx, []*models.Collection{collection}); err != nil {
		return nil, err
	}

	return collection, nil
}

// GetCollectionsByIDs returns the existing collections among ids without their members.
// Inside a transaction the rows are locked in ascending id order, the same order the
// hierarchy operations use.
func (r *collectionRepository) GetCollectionsByIDs(ctx context.Context, ids []int64) ([]*models.Collection, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT id, name, parent_collection_id, created_at FROM collections WHERE id = ANY($1) ORDER BY id`
	if inTransaction(ctx) {
		query += ` FOR UPDATE`
	}

	rows, err := conn(ctx, r.DB).QueryContext(dbCtx, query, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("querying collections by ids: %w", err)
	}
	defer rows.Close()

	return collectCollections(rows)
}

func (r *collectionRepository) ListCollections(ctx context.Context, onlyRoot bool) ([]*models.Collection, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT id, name, parent_collection_id, created_at FROM collections`
	if onlyRoot {
		query += ` WHERE parent_collection_id IS NULL`
	}
	query += ` ORDER BY id`

	rows, err := conn(ctx, r.DB).QueryContext(dbCtx, query)
	if err != nil {
		return nil, fmt.Errorf("listing collections: %w", err)
	}
	defer rows.Close()

	collections, err := collectCollections(rows)
	if err != nil {
		return nil, err
	}

	if err := r.attachMembers(ctx, collections); err != nil {
		return nil, err
	}

	return collections, nil
}

// ListSubcollections returns the children of parentID in the order they were attached.
func (r *collectionRepository) ListSubcollections(ctx context.Context, parentID int64) ([]*models.Collection, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, name, parent_collection_id, created_at
		FROM collections
		WHERE parent_collection_id = $1
		ORDER BY linked_at, id`

	rows, err := conn(ctx, r.DB).QueryContext(dbCtx, query, parentID)
	if err != nil {
		return nil, fmt.Errorf("listing subcollections of %d: %w", parentID, err)
	}
	defer rows.Close()

	collections, err := collectCollections(rows)
	if err != nil {
		return nil, err
	}

	if err := r.attachMembers(ctx, collections); err != nil {
		return nil, err
	}

	return collections, nil
}

// UpdateCollection persists the name and parent link. linked_at is reset whenever
// the parent changes so children keep their attach order.
func (r *collectionRepository) UpdateCollection(ctx context.Context, collection *models.Collection) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE collections
		SET name = $1,
		    linked_at = CASE
		        WHEN $2::BIGINT IS NULL THEN NULL
		        WHEN parent_collection_id IS DISTINCT FROM $2::BIGINT THEN NOW()
		        ELSE linked_at
		    END,
		    parent_collection_id = $2::BIGINT
		WHERE id = $3`

	result, err := conn(ctx, r.DB).ExecContext(dbCtx, query, collection.Name, collection.ParentCollectionID, collection.ID)
	if err != nil {
		return fmt.Errorf("updating collection %d: %w", collection.ID, err)
	}

	return expectAffected(result)
}

// DeleteCollection removes the collection and its children. Member products are unlinked, never deleted.
func (r *collectionRepository) DeleteCollection(ctx context.Context, id int64) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	db := conn(ctx, r.DB)

	unlink := `
		DELETE FROM collection_products
		WHERE collection_id = $1
		   OR collection_id IN (SELECT id FROM collections WHERE parent_collection_id = $1)`

	if _, err := db.ExecContext(dbCtx, unlink, id); err != nil {
		return fmt.Errorf("unlinking products of collection %d: %w", id, err)
	}

	if _, err := db.ExecContext(dbCtx, `DELETE FROM collections WHERE parent_collection_id = $1`, id); err != nil {
		return fmt.Errorf("deleting subcollections of %d: %w", id, err)
	}

	result, err := db.ExecContext(dbCtx, `DELETE FROM collections WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting collection %d: %w", id, err)
	}

	return expectAffected(result)
}

func (r *collectionRepository) AddProduct(ctx context.Context, collectionID, productID int64) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `INSERT INTO collection_products (collection_id, product_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`

	if _, err := conn(ctx, r.DB).ExecContext(dbCtx, query, collectionID, productID); err != nil {
		return fmt.Errorf("adding product %d to collection %d: %w", productID, collectionID, err)
	}

	return nil
}

func (r *collectionRepository) RemoveProduct(ctx context.Context, collectionID, productID int64) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `DELETE FROM collection_products WHERE collection_id = $1 AND product_id = $2`

	if _, err := conn(ctx, r.DB).ExecContext(dbCtx, query, collectionID, productID); err != nil {
		return fmt.Errorf("removing product %d from collection %d: %w", productID, collectionID, err)
	}

	return nil
}

func (r *collectionRepository) ClearProducts(ctx context.Context, collectionID int64) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	if _, err := conn(ctx, r.DB).ExecContext(dbCtx, `DELETE FROM collection_products WHERE collection_id = $1`, collectionID); err != nil {
		return fmt.Errorf("clearing products of collection %d: %w", collectionID, err)
	}

	return nil
}

// attachMembers fills ProductIDs and Subcollections for a batch of collections.
func (r *collectionRepository) attachMembers(ctx context.Context, collections []*models.Collection) error {

	if len(collections) == 0 {
		return nil
	}

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	db := conn(ctx, r.DB)

	byID := make(map[int64]*models.Collection, len(collections))
	ids := make([]int64, 0, len(collections))

	for _, collection := range collections {
		collection.ProductIDs = []int64{}
		collection.Subcollections = []models.Subcollection{}
		byID[collection.ID] = collection
		ids = append(ids, collection.ID)
	}

	productRows, err := db.QueryContext(dbCtx,
		`SELECT collection_id, product_id FROM collection_products WHERE collection_id = ANY($1) ORDER BY position`,
		pq.Array(ids))
	if err != nil {
		return fmt.Errorf("querying collection products: %w", err)
	}
	defer productRows.Close()

	for productRows.Next() {
		var collectionID, productID int64
		if err := productRows.Scan(&collectionID, &productID); err != nil {
			return fmt.Errorf("scanning collection product: %w", err)
		}
		if collection, ok := byID[collectionID]; ok {
			collection.ProductIDs = append(collection.ProductIDs, productID)
		}
	}

	if err := productRows.Err(); err != nil {
		return fmt.Errorf("iterating collection products: %w", err)
	}

	childRows, err := db.QueryContext(dbCtx,
		`SELECT id, name, parent_collection_id FROM collections WHERE parent_collection_id = ANY($1) ORDER BY linked_at, id`,
		pq.Array(ids))
	if err != nil {
		return fmt.Errorf("querying subcollections: %w", err)
	}
	defer childRows.Close()

	for childRows.Next() {
		var child models.Subcollection
		var parentID int64
		if err := childRows.Scan(&child.ID, &child.Name, &parentID); err != nil {
			return fmt.Errorf("scanning subcollection: %w", err)
		}
		if collection, ok := byID[parentID]; ok {
			collection.Subcollections = append(collection.Subcollections, child)
		}
	}

	if err := childRows.Err(); err != nil {
		return fmt.Errorf("iterating subcollections: %w", err)
	}

	return nil
}

func collectCollections(rows *sql.Rows) ([]*models.Collection, error) {

	collections := []*models.Collection{}

	for rows.Next() {
		collection := &models.Collection{}
		if err := rows.Scan(&collection.ID, &collection.Name, &collection.ParentCollectionID, &collection.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning collection: %w", err)
		}
		collections = append(collections, collection)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating collections: %w", err)
	}

	return collections, nil
}
