package service

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/aaravmahajanofficial/apparel-commerce-backend/internal/api/middleware"
	appErrors "github.com/aaravmahajanofficial/apparel-commerce-backend/internal/errors"
	"github.com/aaravmahajanofficial/apparel-commerce-backend/internal/models"
	repository "github.com/aaravmahajanofficial/apparel-commerce-backend/internal/repositories"
	"github.com/aaravmahajanofficial/apparel-commerce-backend/internal/utils"
)

const (
	msgCollectionNotFound     = "Collection not found"
	msgParentNotFound         = "Parent collection not found"
	msgSubcollectionNotFound  = "Subcollection not found"
	msgNestedSubcollection    = "A subcollection cannot have its own subcollections"
	msgParentHasChildren      = "Cannot set a collection with subcollections as a subcollection"
	msgSelfParent             = "A collection cannot be its own subcollection"
	msgAlreadyHasParent       = "Subcollection already has a parent. Remove it first."
	msgNoSubcollections       = "Parent collection doesn't have subcollections"
	msgNotChildOfParent       = "Subcollection does not belong to this parent collection"
	msgProductInSubcollection = "Product is already in a subcollection of this collection"
	msgProductInParent        = "Product is already in the parent collection"
)

// CollectionService maintains the two-level collection tree and its product memberships:
// a subcollection never has children, a product never sits in both a collection and
// its parent or child, and a collection loses its own products when it gains a child.
type CollectionService interface {
	ListCollections(ctx context.Context, onlyRoot bool) ([]*models.Collection, error)
	GetCollection(ctx context.Context, id int64) (*models.Collection, error)
	CreateCollection(ctx context.Context, req *models.CreateCollectionRequest) (*models.Collection, error)
	UpdateCollection(ctx context.Context, id int64, req *models.UpdateCollectionRequest) (*models.Collection, error)
	DeleteCollection(ctx context.Context, id int64) error
	AddProduct(ctx context.Context, collectionID, productID int64) (*models.Collection, error)
	RemoveProduct(ctx context.Context, collectionID, productID int64) error
	ListCollectionProducts(ctx context.Context, collectionID int64) ([]*models.Product, error)
	AddSubcollection(ctx context.Context, parentID, childID int64) (*models.Collection, error)
	RemoveSubcollection(ctx context.Context, parentID, childID int64) error
	ListSubcollections(ctx context.Context, parentID int64) ([]*models.Collection, error)
}

type collectionService struct {
	collections repository.CollectionRepository
	products    repository.ProductRepository
	tx          repository.Transactor
}

func NewCollectionService(collections repository.CollectionRepository, products repository.ProductRepository, tx repository.Transactor) CollectionService {
	return &collectionService{collections: collections, products: products, tx: tx}
}

func (s *collectionService) ListCollections(ctx context.Context, onlyRoot bool) ([]*models.Collection, error) {

	collections, err := s.collections.ListCollections(ctx, onlyRoot)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to list collections").WithError(err)
	}

	return collections, nil
}

func (s *collectionService) GetCollection(ctx context.Context, id int64) (*models.Collection, error) {
	return s.load(ctx, id, msgCollectionNotFound)
}

func (s *collectionService) CreateCollection(ctx context.Context, req *models.CreateCollectionRequest) (*models.Collection, error) {

	name := utils.Sanitize(req.Name)
	if name == "" {
		return nil, appErrors.ValidationError("Collection name must not be blank")
	}

	collection := &models.Collection{Name: name, ParentCollectionID: req.ParentCollectionID}

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {

		if req.ParentCollectionID != nil {
			parent, err := s.load(ctx, *req.ParentCollectionID, msgParentNotFound)
			if err != nil {
				return err
			}

			if parent.HasParent() {
				return appErrors.InvalidHierarchyError(msgNestedSubcollection)
			}

			if err := s.collections.ClearProducts(ctx, parent.ID); err != nil {
				return appErrors.DatabaseError("Failed to clear parent collection products").WithError(err)
			}
		}

		if err := s.collections.CreateCollection(ctx, collection); err != nil {
			return appErrors.DatabaseError("Failed to create collection").WithError(err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	middleware.LoggerFromContext(ctx).Info("Collection created", slog.Int64("collectionId", collection.ID))

	return collection, nil
}

// UpdateCollection renames and reparents. Detaching from a parent goes through RemoveSubcollection.
func (s *collectionService) UpdateCollection(ctx context.Context, id int64, req *models.UpdateCollectionRequest) (*models.Collection, error) {

	var name string
	if req.Name != nil {
		name = utils.Sanitize(*req.Name)
		if name == "" {
			return nil, appErrors.ValidationError("Collection name must not be blank")
		}
	}

	var updated *models.Collection

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {

		ids := []int64{id}
		if req.ParentCollectionID != nil {
			ids = append(ids, *req.ParentCollectionID)
		}

		locked, err := s.lock(ctx, ids...)
		if err != nil {
			return err
		}

		target, ok := locked[id]
		if !ok {
			return appErrors.NotFoundError(msgCollectionNotFound)
		}

		if req.Name != nil {
			target.Name = name
		}

		if pid := req.ParentCollectionID; pid != nil && !target.IsChildOf(*pid) {

			if *pid == id {
				return appErrors.InvalidHierarchyError(msgSelfParent)
			}

			parent, ok := locked[*pid]
			if !ok {
				return appErrors.NotFoundError(msgParentNotFound)
			}

			if parent.HasParent() {
				return appErrors.InvalidHierarchyError(msgNestedSubcollection)
			}

			if target.HasSubcollections() {
				return appErrors.InvalidHierarchyError(msgParentHasChildren)
			}

			if err := s.collections.ClearProducts(ctx, parent.ID); err != nil {
				return appErrors.DatabaseError("Failed to clear parent collection products").WithError(err)
			}

			parentID := *pid
			target.ParentCollectionID = &parentID
		}

		if err := s.collections.UpdateCollection(ctx, target); err != nil {
			return appErrors.DatabaseError("Failed to update collection").WithError(err)
		}

		updated, err = s.load(ctx, id, msgCollectionNotFound)
		return err
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// DeleteCollection removes the collection with its subcollections. Products are only unlinked.
func (s *collectionService) DeleteCollection(ctx context.Context, id int64) error {

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {

		if _, err := s.load(ctx, id, msgCollectionNotFound); err != nil {
			return err
		}

		if err := s.collections.DeleteCollection(ctx, id); err != nil {
			if isNotFound(err) {
				return appErrors.NotFoundError(msgCollectionNotFound)
			}
			return appErrors.DatabaseError("Failed to delete collection").WithError(err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	middleware.LoggerFromContext(ctx).Info("Collection deleted", slog.Int64("collectionId", id))

	return nil
}

// AddProduct links an active product. Adding an existing member is a no-op.
func (s *collectionService) AddProduct(ctx context.Context, collectionID, productID int64) (*models.Collection, error) {

	var updated *models.Collection

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {

		collection, err := s.load(ctx, collectionID, msgCollectionNotFound)
		if err != nil {
			return err
		}

		products, err := s.products.GetProductsByIDs(ctx, []int64{productID})
		if err != nil {
			return appErrors.DatabaseError("Failed to load product").WithError(err)
		}
		if len(products) == 0 {
			return appErrors.NotFoundError("Product not found or has been deleted")
		}

		if collection.HasSubcollections() {
			children, err := s.collections.ListSubcollections(ctx, collectionID)
			if err != nil {
				return appErrors.DatabaseError("Failed to load subcollections").WithError(err)
			}
			for _, child := range children {
				if child.HasProduct(productID) {
					return appErrors.ConflictError(msgProductInSubcollection)
				}
			}
		}

		if collection.HasParent() {
			parent, err := s.load(ctx, *collection.ParentCollectionID, msgParentNotFound)
			if err != nil {
				return err
			}
			if parent.HasProduct(productID) {
				return appErrors.ConflictError(msgProductInParent)
			}
		}

		if err := s.collections.AddProduct(ctx, collectionID, productID); err != nil {
			return appErrors.DatabaseError("Failed to add product to collection").WithError(err)
		}

		updated, err = s.load(ctx, collectionID, msgCollectionNotFound)
		return err
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// RemoveProduct also accepts soft-deleted products. Removing a non-member is a no-op.
func (s *collectionService) RemoveProduct(ctx context.Context, collectionID, productID int64) error {

	if _, err := s.load(ctx, collectionID, msgCollectionNotFound); err != nil {
		return err
	}

	exists, err := s.products.ProductExists(ctx, productID)
	if err != nil {
		return appErrors.DatabaseError("Failed to load product").WithError(err)
	}
	if !exists {
		return appErrors.NotFoundError("Product not found")
	}

	if err := s.collections.RemoveProduct(ctx, collectionID, productID); err != nil {
		return appErrors.DatabaseError("Failed to remove product from collection").WithError(err)
	}

	return nil
}

func (s *collectionService) ListCollectionProducts(ctx context.Context, collectionID int64) ([]*models.Product, error) {

	if _, err := s.load(ctx, collectionID, msgCollectionNotFound); err != nil {
		return nil, err
	}

	products, err := s.products.ListProductsByCollection(ctx, collectionID)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to list collection products").WithError(err)
	}

	return products, nil
}

func (s *collectionService) AddSubcollection(ctx context.Context, parentID, childID int64) (*models.Collection, error) {

	var updated *models.Collection

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {

		locked, err := s.lock(ctx, parentID, childID)
		if err != nil {
			return err
		}

		parent, ok := locked[parentID]
		if !ok {
			return appErrors.NotFoundError(msgParentNotFound)
		}

		child, ok := locked[childID]
		if !ok {
			return appErrors.NotFoundError(msgSubcollectionNotFound)
		}

		switch {
		case parentID == childID:
			return appErrors.InvalidHierarchyError(msgSelfParent)
		case parent.HasParent():
			return appErrors.InvalidHierarchyError(msgNestedSubcollection)
		case child.HasParent():
			return appErrors.InvalidHierarchyError(msgAlreadyHasParent)
		case child.HasSubcollections():
			return appErrors.InvalidHierarchyError(msgParentHasChildren)
		}

		if err := s.checkOverlap(ctx, parent, child); err != nil {
			return err
		}

		if err := s.collections.ClearProducts(ctx, parentID); err != nil {
			return appErrors.DatabaseError("Failed to clear parent collection products").WithError(err)
		}

		child.ParentCollectionID = &parentID
		if err := s.collections.UpdateCollection(ctx, child); err != nil {
			return appErrors.DatabaseError("Failed to link subcollection").WithError(err)
		}

		updated, err = s.load(ctx, parentID, msgParentNotFound)
		return err
	})
	if err != nil {
		return nil, err
	}

	middleware.LoggerFromContext(ctx).Info("Subcollection linked", slog.Int64("parentId", parentID), slog.Int64("subcollectionId", childID))

	return updated, nil
}

func (s *collectionService) RemoveSubcollection(ctx context.Context, parentID, childID int64) error {

	return s.tx.WithinTransaction(ctx, func(ctx context.Context) error {

		locked, err := s.lock(ctx, parentID, childID)
		if err != nil {
			return err
		}

		parent, ok := locked[parentID]
		if !ok {
			return appErrors.NotFoundError(msgParentNotFound)
		}

		child, ok := locked[childID]
		if !ok {
			return appErrors.NotFoundError(msgSubcollectionNotFound)
		}

		if !parent.HasSubcollections() {
			return appErrors.InvalidHierarchyError(msgNoSubcollections)
		}

		if !child.IsChildOf(parentID) {
			return appErrors.InvalidHierarchyError(msgNotChildOfParent)
		}

		child.ParentCollectionID = nil
		if err := s.collections.UpdateCollection(ctx, child); err != nil {
			return appErrors.DatabaseError("Failed to unlink subcollection").WithError(err)
		}

		return nil
	})
}

func (s *collectionService) ListSubcollections(ctx context.Context, parentID int64) ([]*models.Collection, error) {

	parent, err := s.load(ctx, parentID, msgParentNotFound)
	if err != nil {
		return nil, err
	}

	if !parent.HasSubcollections() {
		return nil, appErrors.InvalidHierarchyError(msgNoSubcollections)
	}

	children, err := s.collections.ListSubcollections(ctx, parentID)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to list subcollections").WithError(err)
	}

	return children, nil
}

// checkOverlap rejects linking when parent and child share products, naming every shared product.
func (s *collectionService) checkOverlap(ctx context.Context, parent, child *models.Collection) error {

	var shared []int64
	for _, productID := range child.ProductIDs {
		if parent.HasProduct(productID) {
			shared = append(shared, productID)
		}
	}

	if len(shared) == 0 {
		return nil
	}

	products, err := s.products.GetProductsByIDs(ctx, shared)
	if err != nil {
		return appErrors.DatabaseError("Failed to load products").WithError(err)
	}

	names := make(map[int64]string, len(products))
	for _, product := range products {
		names[product.ID] = product.Name
	}

	labels := make([]string, 0, len(shared))
	for _, productID := range shared {
		if name, ok := names[productID]; ok {
			labels = append(labels, name)
		} else {
			labels = append(labels, fmt.Sprintf("#%d", productID))
		}
	}

	return appErrors.ConflictError(fmt.Sprintf("Products already in both collections: %s", strings.Join(labels, ", ")))
}

func (s *collectionService) load(ctx context.Context, id int64, notFound string) (*models.Collection, error) {

	collection, err := s.collections.GetCollectionByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, appErrors.NotFoundError(notFound)
		}
		return nil, appErrors.DatabaseError("Failed to load collection").WithError(err)
	}

	return collection, nil
}

// lock loads the given collections in ascending id order so that concurrent hierarchy
// changes acquire row locks in the same order. Missing ids are left out of the result.
func (s *collectionService) lock(ctx context.Context, ids ...int64) (map[int64]*models.Collection, error) {

	ordered := dedupeIDs(ids)
	slices.Sort(ordered)

	locked := make(map[int64]*models.Collection, len(ordered))

	for _, id := range ordered {
		collection, err := s.collections.GetCollectionByID(ctx, id)
		if err != nil {
			if isNotFound(err) {
				continue
			}
			return nil, appErrors.DatabaseError("Failed to load collection").WithError(err)
		}
		locked[id] = collection
	}

	return locked, nil
}
