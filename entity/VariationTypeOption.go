package entity

import (
	"gorm.io/gorm"
)

type VariationTypeOption struct {
	gorm.Model
	VariationTypeID uint          `json:"variationTypeId"`
	VariationType   VariationType `json:"-"`

	Name string `gorm:"not null" json:"name"`

	// overrides the product image when this option is selected
	Image string `json:"image"`
}
