package configs

import (
	"github.com/danish-manzoor/ecommerce-store-sub001/entity"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(cfg *Config) {
	var (
		database *gorm.DB
		err      error
	)
	switch cfg.DBDriver {
	case "postgres":
		database, err = gorm.Open(postgres.Open(cfg.DBSource), &gorm.Config{})
	default:
		database, err = gorm.Open(sqlite.Open(cfg.DBSource), &gorm.Config{})
	}
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

func SetupDatabase() {
	db.AutoMigrate(
		&entity.User{},
		&entity.Brand{}, &entity.Category{},
		&entity.Product{}, &entity.VariationType{}, &entity.VariationTypeOption{}, &entity.ProductVariation{},
		&entity.CartItem{}, &entity.WishlistItem{},
		&entity.Order{}, &entity.OrderItem{},
	)
}
