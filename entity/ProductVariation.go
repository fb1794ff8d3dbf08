package entity

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ProductVariation is a persisted price/quantity override for one option
// combination. VariationTypeOptionIDs holds one option id per variation type,
// in the product's variation-type order (NOT numerically sorted) — this JSON
// string is the match key used by the admin matrix merge.
type ProductVariation struct {
	gorm.Model
	ProductID uint    `gorm:"index" json:"productId"`
	Product   Product `json:"-"`

	VariationTypeOptionIDs datatypes.JSON `json:"variationTypeOptionIds"`

	Quantity *int   `json:"quantity"`
	Price    *int64 `json:"price"`
}
