package entity

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CartItem is one authenticated cart line. VariationTypeOptionIDs is the
// ascending-sorted option-id array; together with (user_id, product_id) it
// is the line identity — adding the same combination again merges quantity.
type CartItem struct {
	gorm.Model
	UserID uint `gorm:"index" json:"userId"`
	User   User `json:"-"`

	ProductID uint    `json:"productId"`
	Product   Product `json:"-"`

	Quantity int `json:"quantity"`

	// unit price snapshotted at add time, never recomputed
	Price int64 `json:"price"`

	VariationTypeOptionIDs datatypes.JSON `json:"variationTypeOptionIds"`
}
