package entity

import (
	"gorm.io/gorm"
)

type Product struct {
	gorm.Model
	Name        string `gorm:"not null" json:"name"`
	Slug        string `gorm:"uniqueIndex;not null" json:"slug"`
	SKU         string `json:"sku"`
	Description string `json:"description"`
	Image       string `json:"image"`

	// base price/quantity; variation rows override per option combination
	Price    int64 `json:"price"`
	Quantity int   `json:"quantity"`

	BrandID    *uint `json:"brandId"`
	Brand      *Brand `json:"brand,omitempty"`
	CategoryID *uint  `json:"categoryId"`
	Category   *Category `json:"category,omitempty"`

	VariationTypes []VariationType    `json:"variationTypes,omitempty" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Variations     []ProductVariation `json:"variations,omitempty" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
