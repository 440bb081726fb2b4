package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/aaravmahajanofficial/apparel-commerce-backend/internal/models"
	"github.com/aaravmahajanofficial/apparel-commerce-backend/internal/utils"
	"github.com/lib/pq"
)

type ProductRepository interface {
	CreateProduct(ctx context.Context, product *models.Product) error
	GetProductByID(ctx context.Context, id int64) (*models.Product, error)
	GetProductsByIDs(ctx context.Context, ids []int64) ([]*models.Product, error)
	ProductExists(ctx context.Context, id int64) (bool, error)
	UpdateProduct(ctx context.Context, product *models.Product) error
	SoftDeleteProduct(ctx context.Context, id int64) error
	ReplaceImages(ctx context.Context, productID int64, images []models.ProductImage) error
	ReplaceCollections(ctx context.Context, productID int64, collectionIDs []int64) error
	ListProducts(ctx context.Context, filter models.ProductFilter) ([]*models.Product, int, error)
	ListProductsByCollection(ctx context.Context, collectionID int64) ([]*models.Product, error)
}

type productRepository struct {
	DB *sql.DB
}

func NewProductRepo(db *sql.DB) ProductRepository {
	return &productRepository{DB: db}
}

const productColumns = `p.id, p.name, p.description, p.note, p.fabric_details, p.type, p.gender, p.price, p.sizes, p.deleted_at, p.created_at, p.updated_at`

func (r *productRepository) CreateProduct(ctx context.Context, product *models.Product) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO products (name, description, note, fabric_details, type, gender, price, sizes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at`

	err := conn(ctx, r.DB).QueryRowContext(dbCtx, query,
		product.Name, product.Description, product.Note, product.FabricDetails,
		product.Type, product.Gender, product.Price, pq.Array(sizesToStrings(product.Sizes)),
	).Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		return fmt.Errorf("inserting product: %w", err)
	}

	return nil
}

// GetProductByID returns only active products, with images and collection memberships.
func (r *productRepository) GetProductByID(ctx context.Context, id int64) (*models.Product, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + productColumns + ` FROM products p WHERE p.id = $1 AND p.deleted_at IS NULL`

	product, err := scanProduct(conn(ctx, r.DB).QueryRowContext(dbCtx, query, id))
	if err != nil {
		return nil, fmt.Errorf("querying product %d: %w", id, err)
	}

	if err := r.attachDetails(ctx, []*models.Product{product}); err != nil {
		return nil, err
	}

	return product, nil
}

// GetProductsByIDs returns the active products among ids, without images.
func (r *productRepository) GetProductsByIDs(ctx context.Context, ids []int64) ([]*models.Product, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + productColumns + ` FROM products p WHERE p.id = ANY($1) AND p.deleted_at IS NULL ORDER BY p.id`

	rows, err := conn(ctx, r.DB).QueryContext(dbCtx, query, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("querying products by ids: %w", err)
	}
	defer rows.Close()

	return collectProducts(rows)
}

// ProductExists also reports soft-deleted products.
func (r *productRepository) ProductExists(ctx context.Context, id int64) (bool, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var exists bool

	if err := conn(ctx, r.DB).QueryRowContext(dbCtx, `SELECT EXISTS (SELECT 1 FROM products WHERE id = $1)`, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("checking product %d: %w", id, err)
	}

	return exists, nil
}

func (r *productRepository) UpdateProduct(ctx context.Context, product *models.Product) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE products
		SET name = $1, description = $2, note = $3, fabric_details = $4, type = $5, gender = $6,
		    price = $7, sizes = $8, updated_at = NOW()
		WHERE id = $9 AND deleted_at IS NULL
		RETURNING updated_at`

	err := conn(ctx, r.DB).QueryRowContext(dbCtx, query,
		product.Name, product.Description, product.Note, product.FabricDetails, product.Type,
		product.Gender, product.Price, pq.Array(sizesToStrings(product.Sizes)), product.ID,
	).Scan(&product.UpdatedAt)
	if err != nil {
		return fmt.Errorf("updating product %d: %w", product.ID, err)
	}

	return nil
}

// SoftDeleteProduct stamps deleted_at and unlinks the product from every collection.
// Order lines keep referencing the row.
func (r *productRepository) SoftDeleteProduct(ctx context.Context, id int64) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	db := conn(ctx, r.DB)

	result, err := db.ExecContext(dbCtx, `UPDATE products SET deleted_at = NOW(), updated_at = NOW() WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		return fmt.Errorf("deleting product %d: %w", id, err)
	}

	if err := expectAffected(result); err != nil {
		return err
	}

	if _, err := db.ExecContext(dbCtx, `DELETE FROM collection_products WHERE product_id = $1`, id); err != nil {
		return fmt.Errorf("unlinking product %d from collections: %w", id, err)
	}

	return nil
}

func (r *productRepository) ReplaceImages(ctx context.Context, productID int64, images []models.ProductImage) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	db := conn(ctx, r.DB)

	if _, err := db.ExecContext(dbCtx, `DELETE FROM product_images WHERE product_id = $1`, productID); err != nil {
		return fmt.Errorf("removing images of product %d: %w", productID, err)
	}

	for i := range images {
		err := db.QueryRowContext(dbCtx,
			`INSERT INTO product_images (product_id, url, is_main, position) VALUES ($1, $2, $3, $4) RETURNING id`,
			productID, images[i].URL, images[i].IsMain, i,
		).Scan(&images[i].ID)
		if err != nil {
			return fmt.Errorf("inserting image of product %d: %w", productID, err)
		}
	}

	return nil
}

func (r *productRepository) ReplaceCollections(ctx context.Context, productID int64, collectionIDs []int64) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	db := conn(ctx, r.DB)

	if _, err := db.ExecContext(dbCtx, `DELETE FROM collection_products WHERE product_id = $1`, productID); err != nil {
		return fmt.Errorf("removing collections of product %d: %w", productID, err)
	}

	for _, collectionID := range collectionIDs {
		if _, err := db.ExecContext(dbCtx,
			`INSERT INTO collection_products (collection_id, product_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			collectionID, productID,
		); err != nil {
			return fmt.Errorf("linking product %d to collection %d: %w", productID, collectionID, err)
		}
	}

	return nil
}

func (r *productRepository) ListProducts(ctx context.Context, filter models.ProductFilter) ([]*models.Product, int, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	conditions := []string{"p.deleted_at IS NULL"}
	args := []any{}

	if filter.Name != "" {
		args = append(args, filter.Name)
		conditions = append(conditions, fmt.Sprintf("p.name ILIKE '%%' || $%d || '%%'", len(args)))
	}

	if filter.Type != "" {
		args = append(args, filter.Type)
		conditions = append(conditions, fmt.Sprintf("p.type = $%d", len(args)))
	}

	if filter.MinPrice != nil {
		args = append(args, *filter.MinPrice)
		conditions = append(conditions, fmt.Sprintf("p.price >= $%d", len(args)))
	}

	if filter.MaxPrice != nil {
		args = append(args, *filter.MaxPrice)
		conditions = append(conditions, fmt.Sprintf("p.price <= $%d", len(args)))
	}

	where := " WHERE " + strings.Join(conditions, " AND ")

	db := conn(ctx, r.DB)

	var total int

	if err := db.QueryRowContext(dbCtx, `SELECT COUNT(*) FROM products p`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting products: %w", err)
	}

	pageArgs := append(args, filter.Size, filter.Page*filter.Size)
	query := `SELECT ` + productColumns + ` FROM products p` + where +
		fmt.Sprintf(" ORDER BY p.id LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)

	rows, err := db.QueryContext(dbCtx, query, pageArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("listing products: %w", err)
	}
	defer rows.Close()

	products, err := collectProducts(rows)
	if err != nil {
		return nil, 0, err
	}

	if err := r.attachDetails(ctx, products); err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

// ListProductsByCollection returns the active members of a collection in insertion order.
func (r *productRepository) ListProductsByCollection(ctx context.Context, collectionID int64) ([]*models.Product, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + productColumns + `
		FROM products p
		JOIN collection_products cp ON cp.product_id = p.id
		WHERE cp.collection_id = $1 AND p.deleted_at IS NULL
		ORDER BY cp.position`

	rows, err := conn(ctx, r.DB).QueryContext(dbCtx, query, collectionID)
	if err != nil {
		return nil, fmt.Errorf("listing products of collection %d: %w", collectionID, err)
	}
	defer rows.Close()

	products, err := collectProducts(rows)
	if err != nil {
		return nil, err
	}

	if err := r.attachDetails(ctx, products); err != nil {
		return nil, err
	}

	return products, nil
}

// attachDetails loads images and collection ids for a batch of products with one query each.
func (r *productRepository) attachDetails(ctx context.Context, products []*models.Product) error {

	if len(products) == 0 {
		return nil
	}

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	db := conn(ctx, r.DB)

	byID := make(map[int64]*models.Product, len(products))
	ids := make([]int64, 0, len(products))

	for _, product := range products {
		product.Images = []models.ProductImage{}
		product.CollectionIDs = []int64{}
		byID[product.ID] = product
		ids = append(ids, product.ID)
	}

	imageRows, err := db.QueryContext(dbCtx,
		`SELECT id, product_id, url, is_main FROM product_images WHERE product_id = ANY($1) ORDER BY product_id, position, id`,
		pq.Array(ids))
	if err != nil {
		return fmt.Errorf("querying product images: %w", err)
	}
	defer imageRows.Close()

	for imageRows.Next() {
		var image models.ProductImage
		var productID int64
		if err := imageRows.Scan(&image.ID, &productID, &image.URL, &image.IsMain); err != nil {
			return fmt.Errorf("scanning product image: %w", err)
		}
		if product, ok := byID[productID]; ok {
			product.Images = append(product.Images, image)
		}
	}

	if err := imageRows.Err(); err != nil {
		return fmt.Errorf("iterating product images: %w", err)
	}

	collectionRows, err := db.QueryContext(dbCtx,
		`SELECT product_id, collection_id FROM collection_products WHERE product_id = ANY($1) ORDER BY product_id, collection_id`,
		pq.Array(ids))
	if err != nil {
		return fmt.Errorf("querying product collections: %w", err)
	}
	defer collectionRows.Close()

	for collectionRows.Next() {
		var productID, collectionID int64
		if err := collectionRows.Scan(&productID, &collectionID); err != nil {
			return fmt.Errorf("scanning product collection: %w", err)
		}
		if product, ok := byID[productID]; ok {
			product.CollectionIDs = append(product.CollectionIDs, collectionID)
		}
	}

	if err := collectionRows.Err(); err != nil {
		return fmt.Errorf("iterating product collections: %w", err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (*models.Product, error) {

	product := &models.Product{}
	var sizes pq.StringArray

	err := row.Scan(&product.ID, &product.Name, &product.Description, &product.Note, &product.FabricDetails,
		&product.Type, &product.Gender, &product.Price, &sizes, &product.DeletedAt, &product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		return nil, err
	}

	product.Sizes = make([]models.Size, 0, len(sizes))
	for _, size := range sizes {
		product.Sizes = append(product.Sizes, models.Size(size))
	}

	return product, nil
}

func collectProducts(rows *sql.Rows) ([]*models.Product, error) {

	products := []*models.Product{}

	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning product: %w", err)
		}
		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating products: %w", err)
	}

	return products, nil
}

func sizesToStrings(sizes []models.Size) []string {
	out := make([]string, len(sizes))
	for i, size := range sizes {
		out[i] = string(size)
	}
	return out
}
