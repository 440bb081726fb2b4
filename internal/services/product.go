package service

import (
	"context"
	"log/slog"

	"github.com/aaravmahajanofficial/apparel-commerce-backend/internal/api/middleware"
	appErrors "github.com/aaravmahajanofficial/apparel-commerce-backend/internal/errors"
	"github.com/aaravmahajanofficial/apparel-commerce-backend/internal/models"
	repository "github.com/aaravmahajanofficial/apparel-commerce-backend/internal/repositories"
	"github.com/aaravmahajanofficial/apparel-commerce-backend/internal/utils"
)

type ProductService interface {
	ListProducts(ctx context.Context, filter models.ProductFilter) (*models.PaginatedResponse, error)
	GetProduct(ctx context.Context, id int64) (*models.Product, error)
	CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error)
	UpdateProduct(ctx context.Context, id int64, req *models.UpdateProductRequest) (*models.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
}

type productService struct {
	products    repository.ProductRepository
	collections repository.CollectionRepository
	tx          repository.Transactor
}

func NewProductService(products repository.ProductRepository, collections repository.CollectionRepository, tx repository.Transactor) ProductService {
	return &productService{products: products, collections: collections, tx: tx}
}

func (s *productService) ListProducts(ctx context.Context, filter models.ProductFilter) (*models.PaginatedResponse, error) {

	if filter.MinPrice != nil && filter.MaxPrice != nil && filter.MinPrice.GreaterThan(*filter.MaxPrice) {
		return nil, appErrors.ValidationError("minPrice must not be greater than maxPrice")
	}

	if filter.Size <= 0 {
		filter.Size = models.DefaultPageSize
	}

	products, total, err := s.products.ListProducts(ctx, filter)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to list products").WithError(err)
	}

	return &models.PaginatedResponse{Data: products, Total: total, Page: filter.Page, PageSize: filter.Size}, nil
}

func (s *productService) GetProduct(ctx context.Context, id int64) (*models.Product, error) {

	product, err := s.products.GetProductByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, appErrors.NotFoundError("Product not found")
		}
		return nil, appErrors.DatabaseError("Failed to load product").WithError(err)
	}

	return product, nil
}

func (s *productService) CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error) {

	if err := validateImages(req.Images); err != nil {
		return nil, err
	}

	if req.Price == nil {
		return nil, appErrors.ValidationError("Price is required")
	}

	if req.Price.IsNegative() {
		return nil, appErrors.ValidationError("Price must not be negative")
	}

	product := &models.Product{
		Name:          utils.Sanitize(req.Name),
		Description:   utils.Sanitize(req.Description),
		Note:          utils.SanitizePtr(req.Note),
		FabricDetails: utils.SanitizePtr(req.FabricDetails),
		Type:          req.Type,
		Gender:        req.Gender,
		Price:         req.Price.Round(2),
		Sizes:         models.UniqueSizes(req.Sizes),
		Images:        toImages(req.Images),
	}

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {

		collectionIDs, err := s.resolveCollections(ctx, req.CollectionIDs)
		if err != nil {
			return err
		}

		if err := s.products.CreateProduct(ctx, product); err != nil {
			return appErrors.DatabaseError("Failed to create product").WithError(err)
		}

		if err := s.products.ReplaceImages(ctx, product.ID, product.Images); err != nil {
			return appErrors.DatabaseError("Failed to store product images").WithError(err)
		}

		if err := s.products.ReplaceCollections(ctx, product.ID, collectionIDs); err != nil {
			return appErrors.DatabaseError("Failed to link product collections").WithError(err)
		}

		product.CollectionIDs = collectionIDs
		return nil
	})
	if err != nil {
		return nil, err
	}

	middleware.LoggerFromContext(ctx).Info("Product created", slog.Int64("productId", product.ID))

	return product, nil
}

// UpdateProduct merges the present fields. Sizes only replace the stored list when non-empty.
func (s *productService) UpdateProduct(ctx context.Context, id int64, req *models.UpdateProductRequest) (*models.Product, error) {

	if req.Images != nil {
		if err := validateImages(req.Images); err != nil {
			return nil, err
		}
	}

	if req.Price != nil && req.Price.IsNegative() {
		return nil, appErrors.ValidationError("Price must not be negative")
	}

	var product *models.Product

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {

		current, err := s.products.GetProductByID(ctx, id)
		if err != nil {
			if isNotFound(err) {
				return appErrors.NotFoundError("Product not found")
			}
			return appErrors.DatabaseError("Failed to load product").WithError(err)
		}

		if req.Name != nil {
			current.Name = utils.Sanitize(*req.Name)
		}
		if req.Description != nil {
			current.Description = utils.Sanitize(*req.Description)
		}
		if req.Note != nil {
			current.Note = utils.SanitizePtr(req.Note)
		}
		if req.FabricDetails != nil {
			current.FabricDetails = utils.SanitizePtr(req.FabricDetails)
		}
		if req.Type != nil {
			current.Type = *req.Type
		}
		if req.Gender != nil {
			current.Gender = *req.Gender
		}
		if req.Price != nil {
			current.Price = req.Price.Round(2)
		}
		if len(req.Sizes) > 0 {
			current.Sizes = models.UniqueSizes(req.Sizes)
		}

		if err := s.products.UpdateProduct(ctx, current); err != nil {
			if isNotFound(err) {
				return appErrors.NotFoundError("Product not found")
			}
			return appErrors.DatabaseError("Failed to update product").WithError(err)
		}

		if req.Images != nil {
			current.Images = toImages(req.Images)
			if err := s.products.ReplaceImages(ctx, current.ID, current.Images); err != nil {
				return appErrors.DatabaseError("Failed to store product images").WithError(err)
			}
		}

		if req.CollectionIDs != nil {
			collectionIDs, err := s.resolveCollections(ctx, req.CollectionIDs)
			if err != nil {
				return err
			}
			if err := s.products.ReplaceCollections(ctx, current.ID, collectionIDs); err != nil {
				return appErrors.DatabaseError("Failed to link product collections").WithError(err)
			}
			current.CollectionIDs = collectionIDs
		}

		product = current
		return nil
	})
	if err != nil {
		return nil, err
	}

	return product, nil
}

func (s *productService) DeleteProduct(ctx context.Context, id int64) error {

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		return s.products.SoftDeleteProduct(ctx, id)
	})
	if err != nil {
		if isNotFound(err) {
			return appErrors.NotFoundError("Product not found")
		}
		return appErrors.DatabaseError("Failed to delete product").WithError(err)
	}

	middleware.LoggerFromContext(ctx).Info("Product deleted", slog.Int64("productId", id))

	return nil
}

// resolveCollections checks that every id exists and that the selection never holds
// a collection together with its parent.
func (s *productService) resolveCollections(ctx context.Context, ids []int64) ([]int64, error) {

	unique := dedupeIDs(ids)
	if len(unique) == 0 {
		return unique, nil
	}

	collections, err := s.collections.GetCollectionsByIDs(ctx, unique)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to load collections").WithError(err)
	}

	if len(collections) != len(unique) {
		return nil, appErrors.NotFoundError("One or more collections not found")
	}

	selected := make(map[int64]struct{}, len(collections))
	for _, collection := range collections {
		selected[collection.ID] = struct{}{}
	}

	for _, collection := range collections {
		if !collection.HasParent() {
			continue
		}
		if _, ok := selected[*collection.ParentCollectionID]; ok {
			return nil, appErrors.ConflictError("Cannot add product to both a collection and its subcollection")
		}
	}

	return unique, nil
}

func validateImages(images []models.ProductImageRequest) error {

	mainCount := 0
	for _, image := range images {
		if image.IsMain != nil && *image.IsMain {
			mainCount++
		}
	}

	if mainCount != 1 {
		return appErrors.ValidationError("Exactly one image must be marked as main")
	}

	return nil
}

func toImages(requests []models.ProductImageRequest) []models.ProductImage {

	images := make([]models.ProductImage, 0, len(requests))
	for _, image := range requests {
		images = append(images, models.ProductImage{URL: image.URL, IsMain: image.IsMain != nil && *image.IsMain})
	}

	return images
}
