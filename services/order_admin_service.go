package services

import (
	"errors"

	"github.com/danish-manzoor/ecommerce-store-sub001/entity"
	"github.com/danish-manzoor/ecommerce-store-sub001/repository"

	"gorm.io/gorm"
)

// legal forward transitions for an order's status
var statusTransitions = map[string][]string{
	entity.OrderStatusPending:    {entity.OrderStatusProcessing, entity.OrderStatusCancelled},
	entity.OrderStatusProcessing: {entity.OrderStatusShipped, entity.OrderStatusCancelled},
	entity.OrderStatusShipped:    {entity.OrderStatusDelivered},
}

// OrderAdminService serves the back-office order screens. Orders themselves
// are immutable snapshots; only the status moves.
type OrderAdminService struct {
	repo *repository.OrderRepository
}

func NewOrderAdminService(repo *repository.OrderRepository) *OrderAdminService {
	return &OrderAdminService{repo: repo}
}

func (s *OrderAdminService) List(status string, limit, offset int) ([]entity.Order, int64, error) {
	return s.repo.ListAll(status, limit, offset)
}

func (s *OrderAdminService) Detail(orderID uint) (*entity.Order, error) {
	o, err := s.repo.GetByID(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return o, nil
}

func (s *OrderAdminService) UpdateStatus(orderID uint, status string) error {
	o, err := s.repo.GetByID(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	for _, allowed := range statusTransitions[o.Status] {
		if status == allowed {
			return s.repo.UpdateStatus(orderID, status)
		}
	}
	return ErrInvalidStatus
}
