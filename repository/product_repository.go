package repository

import (
	"github.com/danish-manzoor/ecommerce-store-sub001/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProductRepository struct {
	DB *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{DB: db}
}

// ProductFilter narrows List; zero values mean "no filter".
type ProductFilter struct {
	CategorySlug string
	BrandSlug    string
	Search       string
	Limit        int
	Offset       int
}

func (r *ProductRepository) List(f ProductFilter) ([]entity.Product, int64, error) {
	q := r.DB.Model(&entity.Product{})
	if f.CategorySlug != "" {
		q = q.Joins("JOIN categories ON categories.id = products.category_id").
			Where("categories.slug = ?", f.CategorySlug)
	}
	if f.BrandSlug != "" {
		q = q.Joins("JOIN brands ON brands.id = products.brand_id").
			Where("brands.slug = ?", f.BrandSlug)
	}
	if f.Search != "" {
		q = q.Where("products.name LIKE ?", "%"+f.Search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if f.Limit > 0 {
		q = q.Limit(f.Limit).Offset(f.Offset)
	}

	var products []entity.Product
	err := q.Preload("Brand").Preload("Category").
		Order("products.id DESC").Find(&products).Error
	return products, total, err
}

// FindBySlug loads the full aggregate for a detail page: variation types with
// their options (both in creation order) plus the persisted override rows.
func (r *ProductRepository) FindBySlug(slug string) (*entity.Product, error) {
	var p entity.Product
	err := r.DB.
		Preload("Brand").
		Preload("Category").
		Preload("VariationTypes", func(db *gorm.DB) *gorm.DB { return db.Order("variation_types.id ASC") }).
		Preload("VariationTypes.Options", func(db *gorm.DB) *gorm.DB { return db.Order("variation_type_options.id ASC") }).
		Preload("Variations").
		Where("slug = ?", slug).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) FindByID(id uint) (*entity.Product, error) {
	var p entity.Product
	err := r.DB.
		Preload("VariationTypes", func(db *gorm.DB) *gorm.DB { return db.Order("variation_types.id ASC") }).
		Preload("VariationTypes.Options", func(db *gorm.DB) *gorm.DB { return db.Order("variation_type_options.id ASC") }).
		Preload("Variations").
		First(&p, id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// FindByIDs batch-loads products for cart hydration. Missing ids are simply
// absent from the result.
func (r *ProductRepository) FindByIDs(ids []uint) (map[uint]entity.Product, error) {
	out := make(map[uint]entity.Product, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var products []entity.Product
	if err := r.DB.Where("id IN ?", ids).Find(&products).Error; err != nil {
		return nil, err
	}
	for _, p := range products {
		out[p.ID] = p
	}
	return out, nil
}

func (r *ProductRepository) Create(p *entity.Product) error {
	return r.DB.Create(p).Error
}

// Save writes the product's own columns; loaded associations are left alone.
func (r *ProductRepository) Save(tx *gorm.DB, p *entity.Product) error {
	return tx.Omit(clause.Associations).Save(p).Error
}

func (r *ProductRepository) Delete(id uint) error {
	return r.DB.Select("VariationTypes", "Variations").Delete(&entity.Product{Model: gorm.Model{ID: id}}).Error
}

func (r *ProductRepository) CountBySlug(slug string, excludeID uint) (int64, error) {
	var count int64
	q := r.DB.Model(&entity.Product{}).Where("slug = ?", slug)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&count).Error
	return count, err
}
