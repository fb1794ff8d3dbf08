package repository

import (
	"errors"

	"github.com/danish-manzoor/ecommerce-store-sub001/entity"

	"gorm.io/gorm"
)

type WishlistRepository struct {
	DB *gorm.DB
}

func NewWishlistRepository(db *gorm.DB) *WishlistRepository {
	return &WishlistRepository{DB: db}
}

func (r *WishlistRepository) ItemsForUser(userID uint) ([]entity.WishlistItem, error) {
	var items []entity.WishlistItem
	err := r.DB.Where("user_id = ?", userID).Order("id ASC").Find(&items).Error
	return items, err
}

func (r *WishlistRepository) Exists(userID, productID uint) (bool, error) {
	var item entity.WishlistItem
	err := r.DB.Where("user_id = ? AND product_id = ?", userID, productID).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *WishlistRepository) Create(item *entity.WishlistItem) error {
	return r.DB.Create(item).Error
}

func (r *WishlistRepository) Delete(userID, productID uint) error {
	return r.DB.Unscoped().
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&entity.WishlistItem{}).Error
}
