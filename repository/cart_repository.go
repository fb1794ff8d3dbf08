package repository

import (
	"github.com/danish-manzoor/ecommerce-store-sub001/entity"
	"github.com/danish-manzoor/ecommerce-store-sub001/utils"

	"gorm.io/gorm"
)

type CartRepository struct {
	DB *gorm.DB
}

func NewCartRepository(db *gorm.DB) *CartRepository {
	return &CartRepository{DB: db}
}

func (r *CartRepository) ItemsForUser(userID uint) ([]entity.CartItem, error) {
	var items []entity.CartItem
	err := r.DB.Where("user_id = ?", userID).Order("id ASC").Find(&items).Error
	return items, err
}

// FindItem matches a line by (user, product, canonical option key). The key
// comparison happens here rather than in SQL so the stored JSON encoding
// never has to match the driver's byte-for-byte.
func (r *CartRepository) FindItem(userID, productID uint, key string) (*entity.CartItem, error) {
	var candidates []entity.CartItem
	err := r.DB.Where("user_id = ? AND product_id = ?", userID, productID).Find(&candidates).Error
	if err != nil {
		return nil, err
	}
	for i := range candidates {
		ids := utils.ParseIDKey(string(candidates[i].VariationTypeOptionIDs))
		if utils.SortedIDKey(ids) == key {
			return &candidates[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *CartRepository) CreateItem(item *entity.CartItem) error {
	return r.DB.Create(item).Error
}

func (r *CartRepository) SaveItem(item *entity.CartItem) error {
	return r.DB.Save(item).Error
}

func (r *CartRepository) DeleteItem(item *entity.CartItem) error {
	return r.DB.Unscoped().Delete(item).Error
}

func (r *CartRepository) ClearForUser(tx *gorm.DB, userID uint) error {
	return tx.Unscoped().Where("user_id = ?", userID).Delete(&entity.CartItem{}).Error
}
