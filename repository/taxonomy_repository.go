package repository

import (
	"github.com/danish-manzoor/ecommerce-store-sub001/entity"

	"gorm.io/gorm"
)

// TaxonomyRepository covers the two flat catalog groupings, brands and
// categories. They are structurally identical so they share one repo.
type TaxonomyRepository struct {
	DB *gorm.DB
}

func NewTaxonomyRepository(db *gorm.DB) *TaxonomyRepository {
	return &TaxonomyRepository{DB: db}
}

func (r *TaxonomyRepository) ListCategories() ([]entity.Category, error) {
	var out []entity.Category
	err := r.DB.Order("name ASC").Find(&out).Error
	return out, err
}

func (r *TaxonomyRepository) CreateCategory(c *entity.Category) error {
	return r.DB.Create(c).Error
}

func (r *TaxonomyRepository) SaveCategory(c *entity.Category) error {
	return r.DB.Save(c).Error
}

func (r *TaxonomyRepository) FindCategory(id uint) (*entity.Category, error) {
	var c entity.Category
	if err := r.DB.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *TaxonomyRepository) DeleteCategory(id uint) error {
	return r.DB.Delete(&entity.Category{}, id).Error
}

func (r *TaxonomyRepository) ListBrands() ([]entity.Brand, error) {
	var out []entity.Brand
	err := r.DB.Order("name ASC").Find(&out).Error
	return out, err
}

func (r *TaxonomyRepository) CreateBrand(b *entity.Brand) error {
	return r.DB.Create(b).Error
}

func (r *TaxonomyRepository) SaveBrand(b *entity.Brand) error {
	return r.DB.Save(b).Error
}

func (r *TaxonomyRepository) FindBrand(id uint) (*entity.Brand, error) {
	var b entity.Brand
	if err := r.DB.First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *TaxonomyRepository) DeleteBrand(id uint) error {
	return r.DB.Delete(&entity.Brand{}, id).Error
}
