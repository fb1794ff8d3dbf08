package services

import (
	"errors"

	"github.com/danish-manzoor/ecommerce-store-sub001/entity"
	"github.com/danish-manzoor/ecommerce-store-sub001/repository"

	"gorm.io/gorm"
)

// CatalogService serves the storefront browse pages.
type CatalogService struct {
	products *repository.ProductRepository
	taxonomy *repository.TaxonomyRepository
	pricing  PricingEngine
}

func NewCatalogService(products *repository.ProductRepository, taxonomy *repository.TaxonomyRepository) *CatalogService {
	return &CatalogService{products: products, taxonomy: taxonomy, pricing: NewPricingEngine()}
}

func (s *CatalogService) ListProducts(f repository.ProductFilter) ([]entity.Product, int64, error) {
	return s.products.List(f)
}

func (s *CatalogService) Categories() ([]entity.Category, error) {
	return s.taxonomy.ListCategories()
}

func (s *CatalogService) Brands() ([]entity.Brand, error) {
	return s.taxonomy.ListBrands()
}

// ProductDetailView is the product page payload: the aggregate plus the
// default option selection and the price/stock that selection resolves to.
type ProductDetailView struct {
	Product         *entity.Product `json:"product"`
	DefaultOptions  map[uint]uint   `json:"defaultOptions"`
	DefaultPrice    int64           `json:"defaultPrice"`
	DefaultQuantity int             `json:"defaultQuantity"`
}

func (s *CatalogService) ProductDetail(slug string) (*ProductDetailView, error) {
	p, err := s.products.FindBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	defaults := s.pricing.DefaultOptionMap(p)
	selected := make([]uint, 0, len(defaults))
	for _, optionID := range defaults {
		selected = append(selected, optionID)
	}

	return &ProductDetailView{
		Product:         p,
		DefaultOptions:  defaults,
		DefaultPrice:    s.pricing.ResolvePrice(p, selected),
		DefaultQuantity: s.pricing.ResolveQuantity(p, selected),
	}, nil
}

// PriceFor resolves price/stock for an explicit selection, for the product
// page's option switcher.
func (s *CatalogService) PriceFor(slug string, optionIDs []uint) (int64, int, error) {
	p, err := s.products.FindBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, 0, ErrNotFound
		}
		return 0, 0, err
	}
	return s.pricing.ResolvePrice(p, optionIDs), s.pricing.ResolveQuantity(p, optionIDs), nil
}
