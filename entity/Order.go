package entity

import (
	"gorm.io/gorm"
)

const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// Order is an immutable snapshot made at checkout; later product edits must
// not change it.
type Order struct {
	gorm.Model
	OrderNumber string `gorm:"uniqueIndex;not null" json:"orderNumber"`

	UserID uint `gorm:"index" json:"userId"`
	User   User `json:"-"`

	Status string `gorm:"not null;default:pending" json:"status"`

	Subtotal    int64 `json:"subtotal"`
	Tax         int64 `json:"tax"`
	ShippingFee int64 `json:"shippingFee"`
	Total       int64 `json:"total"`

	PaymentMethod string `json:"paymentMethod"`

	BillingName    string `json:"billingName"`
	BillingEmail   string `json:"billingEmail"`
	BillingPhone   string `json:"billingPhone"`
	BillingAddress string `json:"billingAddress"`
	BillingCity    string `json:"billingCity"`
	BillingZip     string `json:"billingZip"`

	ShippingName    string `json:"shippingName"`
	ShippingAddress string `json:"shippingAddress"`
	ShippingCity    string `json:"shippingCity"`
	ShippingZip     string `json:"shippingZip"`

	// preload only on detail endpoints
	Items []OrderItem `json:"items,omitempty"`
}
