package models

import (
	"slices"
	"time"
)

// Collection is a node of the two-level catalog tree. ProductIDs keeps the
// insertion order of the memberships, Subcollections the order children were attached.
type Collection struct {
	ID                 int64           `json:"id"`
	Name               string          `json:"name"`
	ProductIDs         []int64         `json:"productIds"`
	Subcollections     []Subcollection `json:"subcollections"`
	ParentCollectionID *int64          `json:"parentCollectionId"`
	CreatedAt          time.Time       `json:"-"`
}

type Subcollection struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func (c *Collection) HasParent() bool {
	return c.ParentCollectionID != nil
}

func (c *Collection) HasSubcollections() bool {
	return len(c.Subcollections) > 0
}

func (c *Collection) HasProduct(productID int64) bool {
	return slices.Contains(c.ProductIDs, productID)
}

func (c *Collection) HasSubcollection(id int64) bool {
	return slices.ContainsFunc(c.Subcollections, func(s Subcollection) bool { return s.ID == id })
}

// IsChildOf reports whether c hangs directly below the collection with the given id.
func (c *Collection) IsChildOf(parentID int64) bool {
	return c.ParentCollectionID != nil && *c.ParentCollectionID == parentID
}

type CreateCollectionRequest struct {
	Name               string `json:"name" validate:"required,max=255"`
	ParentCollectionID *int64 `json:"parentCollectionId" validate:"omitempty,gt=0"`
}

type UpdateCollectionRequest struct {
	Name               *string `json:"name" validate:"omitempty,min=1,max=255"`
	ParentCollectionID *int64  `json:"parentCollectionId" validate:"omitempty,gt=0"`
}
