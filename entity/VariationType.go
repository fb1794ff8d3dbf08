package entity

import (
	"gorm.io/gorm"
)

// VariationType is one selectable axis of a product (e.g. "Color").
// Natural order is creation order (ascending id).
type VariationType struct {
	gorm.Model
	ProductID uint    `json:"productId"`
	Product   Product `json:"-"`

	Name string `gorm:"not null" json:"name"`

	Options []VariationTypeOption `json:"options" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
