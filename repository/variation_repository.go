package repository

import (
	"github.com/danish-manzoor/ecommerce-store-sub001/entity"

	"gorm.io/gorm"
)

type VariationRepository struct {
	DB *gorm.DB
}

func NewVariationRepository(db *gorm.DB) *VariationRepository {
	return &VariationRepository{DB: db}
}

// OptionsByIDs batch-loads options with their variation type, for cart line
// labels. Missing ids are absent from the map.
func (r *VariationRepository) OptionsByIDs(ids []uint) (map[uint]entity.VariationTypeOption, error) {
	out := make(map[uint]entity.VariationTypeOption, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var options []entity.VariationTypeOption
	if err := r.DB.Preload("VariationType").Where("id IN ?", ids).Find(&options).Error; err != nil {
		return nil, err
	}
	for _, o := range options {
		out[o.ID] = o
	}
	return out, nil
}

// CountOptionsBelongToProduct validates that every id is an option of one of
// the product's variation types.
func (r *VariationRepository) CountOptionsBelongToProduct(productID uint, optionIDs []uint) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.VariationTypeOption{}).
		Joins("JOIN variation_types ON variation_types.id = variation_type_options.variation_type_id").
		Where("variation_types.product_id = ? AND variation_type_options.id IN ?", productID, optionIDs).
		Count(&count).Error
	return count, err
}

func (r *VariationRepository) VariationsByProduct(productID uint) ([]entity.ProductVariation, error) {
	var rows []entity.ProductVariation
	err := r.DB.Where("product_id = ?", productID).Order("id ASC").Find(&rows).Error
	return rows, err
}

func (r *VariationRepository) CreateVariation(tx *gorm.DB, row *entity.ProductVariation) error {
	return tx.Create(row).Error
}

func (r *VariationRepository) SaveVariation(tx *gorm.DB, row *entity.ProductVariation) error {
	return tx.Save(row).Error
}

func (r *VariationRepository) DeleteVariationsByProduct(tx *gorm.DB, productID uint) error {
	return tx.Where("product_id = ?", productID).Delete(&entity.ProductVariation{}).Error
}

// ReplaceTypes swaps the product's whole variation-type structure. The
// persisted override rows key on the old option ids, so they go with it.
func (r *VariationRepository) ReplaceTypes(tx *gorm.DB, productID uint, types []entity.VariationType) error {
	var typeIDs []uint
	if err := tx.Model(&entity.VariationType{}).Where("product_id = ?", productID).Pluck("id", &typeIDs).Error; err != nil {
		return err
	}
	if len(typeIDs) > 0 {
		if err := tx.Where("variation_type_id IN ?", typeIDs).Delete(&entity.VariationTypeOption{}).Error; err != nil {
			return err
		}
		if err := tx.Where("product_id = ?", productID).Delete(&entity.VariationType{}).Error; err != nil {
			return err
		}
	}
	if err := r.DeleteVariationsByProduct(tx, productID); err != nil {
		return err
	}
	for i := range types {
		types[i].ProductID = productID
		if err := tx.Create(&types[i]).Error; err != nil {
			return err
		}
	}
	return nil
}
