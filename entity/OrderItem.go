package entity

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// OrderItem copies the product fields as they were in the cart at purchase
// time. ProductID is kept for reference only; the product may be edited or
// deleted afterwards without touching the order.
type OrderItem struct {
	gorm.Model
	OrderID uint  `gorm:"index" json:"orderId"`
	Order   Order `json:"-"`

	ProductID uint `json:"productId"`

	Name        string `json:"name"`
	SKU         string `json:"sku"`
	Description string `json:"description"`
	Image       string `json:"image"`

	Quantity int   `json:"quantity"`
	Price    int64 `json:"price"`
	Total    int64 `json:"total"`

	// [{variationTypeId, optionId, typeName, optionName}] as shown in the cart
	Options datatypes.JSON `json:"options"`
}
