package service_test

import (
	"context"
	"database/sql"
	"slices"
	"time"

	"github.com/aaravmahajanofficial/apparel-commerce-backend/internal/models"
)

// catalogStore is an in-memory stand-in for the collection and product tables,
// used by the hierarchy scenarios that span many repository calls.
type catalogStore struct {
	seq         int64
	collections map[int64]*storedCollection
	members     map[int64][]int64
	products    map[int64]*models.Product
}

type storedCollection struct {
	name     string
	parentID *int64
	linkedAt int64
}

func newCatalogStore() *catalogStore {
	return &catalogStore{
		collections: map[int64]*storedCollection{},
		members:     map[int64][]int64{},
		products:    map[int64]*models.Product{},
	}
}

func (s *catalogStore) next() int64 {
	s.seq++
	return s.seq
}

func (s *catalogStore) addProduct(name string) int64 {
	id := s.next()
	s.products[id] = &models.Product{ID: id, Name: name}
	return id
}

func (s *catalogStore) sortedCollectionIDs() []int64 {
	ids := make([]int64, 0, len(s.collections))
	for id := range s.collections {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

func (s *catalogStore) children(parentID int64) []int64 {
	var ids []int64
	for _, id := range s.sortedCollectionIDs() {
		if p := s.collections[id].parentID; p != nil && *p == parentID {
			ids = append(ids, id)
		}
	}
	slices.SortStableFunc(ids, func(a, b int64) int {
		return int(s.collections[a].linkedAt - s.collections[b].linkedAt)
	})
	return ids
}

func (s *catalogStore) view(id int64) *models.Collection {
	row := s.collections[id]

	collection := &models.Collection{
		ID:             id,
		Name:           row.name,
		ProductIDs:     slices.Clone(s.members[id]),
		Subcollections: []models.Subcollection{},
	}
	if collection.ProductIDs == nil {
		collection.ProductIDs = []int64{}
	}
	if row.parentID != nil {
		parentID := *row.parentID
		collection.ParentCollectionID = &parentID
	}
	for _, childID := range s.children(id) {
		collection.Subcollections = append(collection.Subcollections, models.Subcollection{ID: childID, Name: s.collections[childID].name})
	}

	return collection
}

type fakeCollectionRepo struct{ s *catalogStore }

func (r fakeCollectionRepo) CreateCollection(_ context.Context, collection *models.Collection) error {
	collection.ID = r.s.next()
	row := &storedCollection{name: collection.Name}
	if collection.ParentCollectionID != nil {
		parentID := *collection.ParentCollectionID
		row.parentID = &parentID
		row.linkedAt = r.s.next()
	}
	r.s.collections[collection.ID] = row
	return nil
}

func (r fakeCollectionRepo) GetCollectionByID(_ context.Context, id int64) (*models.Collection, error) {
	if _, ok := r.s.collections[id]; !ok {
		return nil, sql.ErrNoRows
	}
	return r.s.view(id), nil
}

func (r fakeCollectionRepo) GetCollectionsByIDs(_ context.Context, ids []int64) ([]*models.Collection, error) {
	var found []*models.Collection
	for _, id := range ids {
		if _, ok := r.s.collections[id]; ok {
			view := r.s.view(id)
			view.ProductIDs, view.Subcollections = nil, nil
			found = append(found, view)
		}
	}
	return found, nil
}

func (r fakeCollectionRepo) ListCollections(_ context.Context, onlyRoot bool) ([]*models.Collection, error) {
	list := []*models.Collection{}
	for _, id := range r.s.sortedCollectionIDs() {
		if onlyRoot && r.s.collections[id].parentID != nil {
			continue
		}
		list = append(list, r.s.view(id))
	}
	return list, nil
}

func (r fakeCollectionRepo) ListSubcollections(_ context.Context, parentID int64) ([]*models.Collection, error) {
	list := []*models.Collection{}
	for _, id := range r.s.children(parentID) {
		list = append(list, r.s.view(id))
	}
	return list, nil
}

func (r fakeCollectionRepo) UpdateCollection(_ context.Context, collection *models.Collection) error {
	row, ok := r.s.collections[collection.ID]
	if !ok {
		return sql.ErrNoRows
	}

	row.name = collection.Name

	changed := (row.parentID == nil) != (collection.ParentCollectionID == nil) ||
		(row.parentID != nil && *row.parentID != *collection.ParentCollectionID)

	if changed {
		if collection.ParentCollectionID == nil {
			row.parentID = nil
			row.linkedAt = 0
		} else {
			parentID := *collection.ParentCollectionID
			row.parentID = &parentID
			row.linkedAt = r.s.next()
		}
	}

	return nil
}

func (r fakeCollectionRepo) DeleteCollection(_ context.Context, id int64) error {
	if _, ok := r.s.collections[id]; !ok {
		return sql.ErrNoRows
	}
	for _, childID := range r.s.children(id) {
		delete(r.s.members, childID)
		delete(r.s.collections, childID)
	}
	delete(r.s.members, id)
	delete(r.s.collections, id)
	return nil
}

func (r fakeCollectionRepo) AddProduct(_ context.Context, collectionID, productID int64) error {
	if !slices.Contains(r.s.members[collectionID], productID) {
		r.s.members[collectionID] = append(r.s.members[collectionID], productID)
	}
	return nil
}

func (r fakeCollectionRepo) RemoveProduct(_ context.Context, collectionID, productID int64) error {
	r.s.members[collectionID] = slices.DeleteFunc(r.s.members[collectionID], func(id int64) bool { return id == productID })
	return nil
}

func (r fakeCollectionRepo) ClearProducts(_ context.Context, collectionID int64) error {
	delete(r.s.members, collectionID)
	return nil
}

type fakeProductRepo struct{ s *catalogStore }

func (r fakeProductRepo) CreateProduct(_ context.Context, product *models.Product) error {
	product.ID = r.s.next()
	r.s.products[product.ID] = product
	return nil
}

func (r fakeProductRepo) GetProductByID(_ context.Context, id int64) (*models.Product, error) {
	product, ok := r.s.products[id]
	if !ok || product.IsDeleted() {
		return nil, sql.ErrNoRows
	}
	return product, nil
}

func (r fakeProductRepo) GetProductsByIDs(_ context.Context, ids []int64) ([]*models.Product, error) {
	var found []*models.Product
	for _, id := range ids {
		if product, ok := r.s.products[id]; ok && !product.IsDeleted() {
			found = append(found, product)
		}
	}
	return found, nil
}

func (r fakeProductRepo) ProductExists(_ context.Context, id int64) (bool, error) {
	_, ok := r.s.products[id]
	return ok, nil
}

func (r fakeProductRepo) UpdateProduct(context.Context, *models.Product) error { return nil }

// SoftDeleteProduct marks the product deleted and drops its memberships, like the SQL repository.
func (r fakeProductRepo) SoftDeleteProduct(_ context.Context, id int64) error {
	product, ok := r.s.products[id]
	if !ok || product.IsDeleted() {
		return sql.ErrNoRows
	}

	now := time.Now()
	product.DeletedAt = &now

	for collectionID, members := range r.s.members {
		r.s.members[collectionID] = slices.DeleteFunc(members, func(p int64) bool { return p == id })
	}
	return nil
}

func (r fakeProductRepo) ReplaceImages(context.Context, int64, []models.ProductImage) error {
	return nil
}

func (r fakeProductRepo) ReplaceCollections(context.Context, int64, []int64) error { return nil }

func (r fakeProductRepo) ListProducts(context.Context, models.ProductFilter) ([]*models.Product, int, error) {
	return nil, 0, nil
}

func (r fakeProductRepo) ListProductsByCollection(_ context.Context, collectionID int64) ([]*models.Product, error) {
	list := []*models.Product{}
	for _, id := range r.s.members[collectionID] {
		list = append(list, r.s.products[id])
	}
	return list, nil
}
