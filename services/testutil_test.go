package services

import (
	"path/filepath"
	"testing"

	"github.com/danish-manzoor/ecommerce-store-sub001/entity"
	"github.com/danish-manzoor/ecommerce-store-sub001/repository"

	"github.com/stretchr/testify/require"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Brand{}, &entity.Category{},
		&entity.Product{}, &entity.VariationType{}, &entity.VariationTypeOption{}, &entity.ProductVariation{},
		&entity.CartItem{}, &entity.WishlistItem{},
		&entity.Order{}, &entity.OrderItem{},
	))
	return db
}

type testRepos struct {
	db       *gorm.DB
	products *repository.ProductRepository
	options  *repository.VariationRepository
	carts    *repository.CartRepository
	wishlist *repository.WishlistRepository
	orders   *repository.OrderRepository
}

func setupRepos(t *testing.T) *testRepos {
	t.Helper()
	db := setupTestDB(t)
	return &testRepos{
		db:       db,
		products: repository.NewProductRepository(db),
		options:  repository.NewVariationRepository(db),
		carts:    repository.NewCartRepository(db),
		wishlist: repository.NewWishlistRepository(db),
		orders:   repository.NewOrderRepository(db),
	}
}

// seedShirt creates a product with Color {Red, Black} and Size {S, L},
// base price 10000, base quantity 50.
func seedShirt(t *testing.T, db *gorm.DB) *entity.Product {
	t.Helper()
	p := &entity.Product{
		Name:     "Shirt",
		Slug:     "shirt",
		SKU:      "SH-01",
		Price:    10000,
		Quantity: 50,
		VariationTypes: []entity.VariationType{
			{
				Name: "Color",
				Options: []entity.VariationTypeOption{
					{Name: "Red"}, {Name: "Black"},
				},
			},
			{
				Name: "Size",
				Options: []entity.VariationTypeOption{
					{Name: "S"}, {Name: "L"},
				},
			},
		},
	}
	require.NoError(t, db.Create(p).Error)

	var loaded entity.Product
	require.NoError(t, db.
		Preload("VariationTypes", func(q *gorm.DB) *gorm.DB { return q.Order("variation_types.id ASC") }).
		Preload("VariationTypes.Options", func(q *gorm.DB) *gorm.DB { return q.Order("variation_type_options.id ASC") }).
		Preload("Variations").
		First(&loaded, p.ID).Error)
	*p = loaded
	return p
}

// option returns the option named name anywhere on the product.
func option(t *testing.T, p *entity.Product, name string) entity.VariationTypeOption {
	t.Helper()
	for _, vt := range p.VariationTypes {
		for _, o := range vt.Options {
			if o.Name == name {
				return o
			}
		}
	}
	t.Fatalf("option %q not found", name)
	return entity.VariationTypeOption{}
}
