package configs

import (
	"log"

	"github.com/danish-manzoor/ecommerce-store-sub001/entity"

	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin creates the back-office account on first boot.
func SeedAdmin() error {
	db := DB()
	email := getEnv("ADMIN_EMAIL", "")
	pass := getEnv("ADMIN_PASSWORD", "")
	if email == "" || pass == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	admin := entity.User{
		Email:     email,
		Password:  string(hash),
		FirstName: "Admin",
		LastName:  "Seed",
		Role:      "admin",
	}
	return db.Create(&admin).Error
}

// SeedCatalog inserts a small demo catalog so a fresh install has something
// to browse. Idempotent.
func SeedCatalog() error {
	db := DB()

	var count int64
	db.Model(&entity.Product{}).Count(&count)
	if count > 0 {
		return nil
	}

	apparel := entity.Category{Name: "Apparel", Slug: "apparel"}
	if err := db.FirstOrCreate(&apparel, entity.Category{Slug: "apparel"}).Error; err != nil {
		return err
	}
	acme := entity.Brand{Name: "Acme", Slug: "acme"}
	if err := db.FirstOrCreate(&acme, entity.Brand{Slug: "acme"}).Error; err != nil {
		return err
	}

	tee := entity.Product{
		Name:       "Classic Tee",
		Slug:       "classic-tee",
		SKU:        "TEE-001",
		Price:      1999,
		Quantity:   100,
		BrandID:    &acme.ID,
		CategoryID: &apparel.ID,
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
	return db.Create(&tee).Error
}
