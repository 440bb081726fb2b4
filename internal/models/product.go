package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type ProductType string

const (
	ProductTypeTee        ProductType = "TEE"
	ProductTypeShirt      ProductType = "SHIRT"
	ProductTypePolo       ProductType = "POLO"
	ProductTypeHoodie     ProductType = "HOODIE"
	ProductTypeSweatshirt ProductType = "SWEATSHIRT"
	ProductTypeJacket     ProductType = "JACKET"
	ProductTypePants      ProductType = "PANTS"
	ProductTypeShorts     ProductType = "SHORTS"
	ProductTypeDress      ProductType = "DRESS"
	ProductTypeSkirt      ProductType = "SKIRT"
	ProductTypeAccessory  ProductType = "ACCESSORY"
)

type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
	GenderBoth   Gender = "BOTH"
)

type Size string

const (
	SizeXS  Size = "XS"
	SizeS   Size = "S"
	SizeM   Size = "M"
	SizeL   Size = "L"
	SizeXL  Size = "XL"
	SizeXXL Size = "XXL"
)

type Product struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Note          *string         `json:"note"`
	FabricDetails *string         `json:"fabricDetails"`
	Type          ProductType     `json:"type"`
	Gender        Gender          `json:"gender"`
	Price         decimal.Decimal `json:"price"`
	Sizes         []Size          `json:"sizes"`
	Images        []ProductImage  `json:"images"`
	CollectionIDs []int64         `json:"collectionIds"`
	DeletedAt     *time.Time      `json:"-"`
	CreatedAt     time.Time       `json:"-"`
	UpdatedAt     time.Time       `json:"-"`
}

func (p *Product) IsDeleted() bool {
	return p.DeletedAt != nil
}

type ProductImage struct {
	ID     int64  `json:"-"`
	URL    string `json:"url"`
	IsMain bool   `json:"isMain"`
}

type ProductImageRequest struct {
	URL    string `json:"url" validate:"required,url"`
	IsMain *bool  `json:"isMain" validate:"required"`
}

type CreateProductRequest struct {
	Name          string                `json:"name" validate:"required,max=255"`
	Description   string                `json:"description" validate:"required"`
	Note          *string               `json:"note"`
	FabricDetails *string               `json:"fabricDetails"`
	Type          ProductType           `json:"type" validate:"required,oneof=TEE SHIRT POLO HOODIE SWEATSHIRT JACKET PANTS SHORTS DRESS SKIRT ACCESSORY"`
	Gender        Gender                `json:"gender" validate:"required,oneof=MALE FEMALE BOTH"`
	Price         *decimal.Decimal      `json:"price" validate:"required"`
	Sizes         []Size                `json:"sizes" validate:"dive,oneof=XS S M L XL XXL"`
	Images        []ProductImageRequest `json:"images" validate:"dive"`
	CollectionIDs []int64               `json:"collectionIds" validate:"dive,gt=0"`
}

// UpdateProductRequest: a nil field leaves the stored value untouched.
// Sizes is only applied when it is non-empty; CollectionIDs replaces the memberships
// whenever it is present, an empty list unlinks the product from every collection.
type UpdateProductRequest struct {
	Name          *string               `json:"name" validate:"omitempty,max=255"`
	Description   *string               `json:"description"`
	Note          *string               `json:"note"`
	FabricDetails *string               `json:"fabricDetails"`
	Type          *ProductType          `json:"type" validate:"omitempty,oneof=TEE SHIRT POLO HOODIE SWEATSHIRT JACKET PANTS SHORTS DRESS SKIRT ACCESSORY"`
	Gender        *Gender               `json:"gender" validate:"omitempty,oneof=MALE FEMALE BOTH"`
	Price         *decimal.Decimal      `json:"price"`
	Sizes         []Size                `json:"sizes" validate:"omitempty,dive,oneof=XS S M L XL XXL"`
	Images        []ProductImageRequest `json:"images" validate:"omitempty,dive"`
	CollectionIDs []int64               `json:"collectionIds" validate:"omitempty,dive,gt=0"`
}

type ProductFilter struct {
	Name     string
	Type     ProductType
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
	Page     int
	Size     int
}

// UniqueSizes drops repeated sizes, keeping the first occurrence order.
func UniqueSizes(sizes []Size) []Size {
	seen := make(map[Size]struct{}, len(sizes))
	unique := make([]Size, 0, len(sizes))

	for _, size := range sizes {
		if _, ok := seen[size]; ok {
			continue
		}
		seen[size] = struct{}{}
		unique = append(unique, size)
	}

	return unique
}
