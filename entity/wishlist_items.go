package entity

import (
	"gorm.io/gorm"
)

type WishlistItem struct {
	gorm.Model
	UserID uint `gorm:"index:idx_wishlist_user_product,unique" json:"userId"`
	User   User `json:"-"`

	ProductID uint    `gorm:"index:idx_wishlist_user_product,unique" json:"productId"`
	Product   Product `json:"-"`
}
