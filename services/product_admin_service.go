package services

import (
	"errors"

	"github.com/danish-manzoor/ecommerce-store-sub001/entity"
	"github.com/danish-manzoor/ecommerce-store-sub001/repository"
	"github.com/danish-manzoor/ecommerce-store-sub001/utils"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ProductAdminService backs the admin product screens: CRUD over the product
// aggregate and the variation matrix edit flow.
type ProductAdminService struct {
	DB         *gorm.DB
	Products   *repository.ProductRepository
	Variations *repository.VariationRepository
}

func NewProductAdminService(db *gorm.DB, products *repository.ProductRepository, variations *repository.VariationRepository) *ProductAdminService {
	return &ProductAdminService{DB: db, Products: products, Variations: variations}
}

type VariationOptionIn struct {
	Name  string `json:"name" binding:"required"`
	Image string `json:"image"`
}

type VariationTypeIn struct {
	Name    string              `json:"name" binding:"required"`
	Options []VariationOptionIn `json:"options" binding:"required,min=1"`
}

func variationTypesFromInput(ins []VariationTypeIn) []entity.VariationType {
	out := make([]entity.VariationType, 0, len(ins))
	for _, vt := range ins {
		t := entity.VariationType{Name: vt.Name}
		for _, o := range vt.Options {
			t.Options = append(t.Options, entity.VariationTypeOption{Name: o.Name, Image: o.Image})
		}
		out = append(out, t)
	}
	return out
}

type ProductIn struct {
	Name           string            `json:"name" binding:"required"`
	SKU            string            `json:"sku"`
	Description    string            `json:"description"`
	Image          string            `json:"image"`
	Price          int64             `json:"price" binding:"min=0"`
	Quantity       int               `json:"quantity" binding:"min=0"`
	BrandID        *uint             `json:"brandId"`
	CategoryID     *uint             `json:"categoryId"`
	VariationTypes []VariationTypeIn `json:"variationTypes"`
}

func (s *ProductAdminService) Create(in *ProductIn) (*entity.Product, error) {
	slug := utils.Slugify(in.Name)
	count, err := s.Products.CountBySlug(slug, 0)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrSlugTaken
	}

	p := &entity.Product{
		Name:        in.Name,
		Slug:        slug,
		SKU:         in.SKU,
		Description: in.Description,
		Image:       in.Image,
		Price:       in.Price,
		Quantity:    in.Quantity,
		BrandID:     in.BrandID,
		CategoryID:  in.CategoryID,
	}
	p.VariationTypes = variationTypesFromInput(in.VariationTypes)

	if err := s.Products.Create(p); err != nil {
		return nil, err
	}
	return s.Products.FindByID(p.ID)
}

// Update writes the product's fields. A variationTypes array in the payload
// replaces the whole type/option structure and drops the persisted override
// rows, which key on the old option ids; omitting it leaves the structure
// untouched.
func (s *ProductAdminService) Update(id uint, in *ProductIn) (*entity.Product, error) {
	p, err := s.Products.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	slug := utils.Slugify(in.Name)
	count, err := s.Products.CountBySlug(slug, id)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrSlugTaken
	}

	p.Name = in.Name
	p.Slug = slug
	p.SKU = in.SKU
	p.Description = in.Description
	p.Image = in.Image
	p.Price = in.Price
	p.Quantity = in.Quantity
	p.BrandID = in.BrandID
	p.CategoryID = in.CategoryID

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Products.Save(tx, p); err != nil {
			return err
		}
		if in.VariationTypes == nil {
			return nil
		}
		return s.Variations.ReplaceTypes(tx, id, variationTypesFromInput(in.VariationTypes))
	})
	if err != nil {
		return nil, err
	}
	return s.Products.FindByID(id)
}

func (s *ProductAdminService) Delete(id uint) error {
	if _, err := s.Products.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.Products.Delete(id)
}

// Matrix builds the full combination grid for the product's edit screen,
// with previously saved rows overlaid.
func (s *ProductAdminService) Matrix(productID uint) ([]Combination, error) {
	p, err := s.Products.FindByID(productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	rows, err := s.Variations.VariationsByProduct(productID)
	if err != nil {
		return nil, err
	}
	combos := BuildMatrix(p.VariationTypes, p.Quantity, p.Price)
	return MergeExisting(combos, rows), nil
}

// SaveMatrix upserts the edited combinations. The identity key is recomputed
// server-side from each combination's fields in the product's variation-type
// order; a client-supplied row id alone never decides update-vs-create.
// Combinations missing a field for any type are rejected.
func (s *ProductAdminService) SaveMatrix(productID uint, combos []Combination) error {
	p, err := s.Products.FindByID(productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	existing, err := s.Variations.VariationsByProduct(productID)
	if err != nil {
		return err
	}
	byKey := make(map[string]entity.ProductVariation, len(existing))
	for _, r := range existing {
		byKey[utils.TypeOrderKey(utils.ParseIDKey(string(r.VariationTypeOptionIDs)))] = r
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		for _, c := range combos {
			_, key, ok := combinationKeyForTypes(c, p.VariationTypes)
			if !ok {
				return ErrInvalidOptions
			}
			qty := c.Quantity
			price := c.Price
			if row, found := byKey[key]; found {
				row.Quantity = &qty
				row.Price = &price
				if err := s.Variations.SaveVariation(tx, &row); err != nil {
					return err
				}
				continue
			}
			row := entity.ProductVariation{
				ProductID:              productID,
				VariationTypeOptionIDs: datatypes.JSON(key),
				Quantity:               &qty,
				Price:                  &price,
			}
			if err := s.Variations.CreateVariation(tx, &row); err != nil {
				return err
			}
		}
		return nil
	})
}
