package services

import (
	"errors"

	"github.com/danish-manzoor/ecommerce-store-sub001/entity"
	"github.com/danish-manzoor/ecommerce-store-sub001/repository"
	"github.com/danish-manzoor/ecommerce-store-sub001/utils"

	"gorm.io/gorm"
)

// TaxonomyService is the admin CRUD for brands and categories.
type TaxonomyService struct {
	repo *repository.TaxonomyRepository
}

func NewTaxonomyService(repo *repository.TaxonomyRepository) *TaxonomyService {
	return &TaxonomyService{repo: repo}
}

func (s *TaxonomyService) CreateCategory(name string) (*entity.Category, error) {
	c := &entity.Category{Name: name, Slug: utils.Slugify(name)}
	if err := s.repo.CreateCategory(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *TaxonomyService) UpdateCategory(id uint, name string) (*entity.Category, error) {
	c, err := s.repo.FindCategory(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	c.Name = name
	c.Slug = utils.Slugify(name)
	if err := s.repo.SaveCategory(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *TaxonomyService) DeleteCategory(id uint) error {
	if _, err := s.repo.FindCategory(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.repo.DeleteCategory(id)
}

func (s *TaxonomyService) CreateBrand(name string) (*entity.Brand, error) {
	b := &entity.Brand{Name: name, Slug: utils.Slugify(name)}
	if err := s.repo.CreateBrand(b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *TaxonomyService) UpdateBrand(id uint, name string) (*entity.Brand, error) {
	b, err := s.repo.FindBrand(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	b.Name = name
	b.Slug = utils.Slugify(name)
	if err := s.repo.SaveBrand(b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *TaxonomyService) DeleteBrand(id uint) error {
	if _, err := s.repo.FindBrand(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.repo.DeleteBrand(id)
}
