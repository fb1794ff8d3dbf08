package services

import (
	"encoding/json"

	"github.com/danish-manzoor/ecommerce-store-sub001/entity"
	"github.com/danish-manzoor/ecommerce-store-sub001/repository"
	"github.com/danish-manzoor/ecommerce-store-sub001/utils"

	"gorm.io/gorm"
)

const orderNumberPrefix = "ORD"

// TotalsFunc computes tax/shipping/total from the cart subtotal. The default
// charges neither tax nor shipping; swap it to plug in real computation.
type TotalsFunc func(subtotal int64) (tax, shipping, total int64)

func ZeroTotals(subtotal int64) (int64, int64, int64) {
	return 0, 0, subtotal
}

// OrderBroadcaster pushes a freshly placed order to whoever listens (the
// admin websocket feed). A nil broadcaster is fine.
type OrderBroadcaster interface {
	BroadcastOrder(order *entity.Order)
}

// CheckoutService snapshots the cart into an immutable order inside one
// transaction, then clears the cart and the checkout drafts.
type CheckoutService struct {
	DB     *gorm.DB
	Orders *repository.OrderRepository
	Carts  *repository.CartRepository
	Totals TotalsFunc
	Feed   OrderBroadcaster
}

func NewCheckoutService(db *gorm.DB, orders *repository.OrderRepository, carts *repository.CartRepository, feed OrderBroadcaster) *CheckoutService {
	return &CheckoutService{DB: db, Orders: orders, Carts: carts, Totals: ZeroTotals, Feed: feed}
}

// PlaceOrder runs the checkout for an authenticated user.
//
// The empty-cart guard runs before any transaction is opened; a missing
// billing draft is likewise a pre-transaction conflict. Inside the
// transaction the order header, every item snapshot and the cart clear are
// all-or-nothing — on any failure the cart is left exactly as it was so the
// user can retry. Cart lines whose product vanished since they were added
// were already dropped during hydration, so the order is a best-effort
// snapshot of what is still resolvable.
func (s *CheckoutService) PlaceOrder(userID uint, cart *CartService, drafts *DraftStore, paymentMethod string) (*entity.Order, error) {
	lines := cart.Items()
	if len(lines) == 0 {
		return nil, ErrCartEmpty
	}

	billing, ok := drafts.Billing()
	if !ok {
		return nil, ErrNoBillingDraft
	}
	shipping, ok := drafts.Shipping()
	if !ok {
		// no separate shipping step: ship to the billing address
		shipping = ShippingDetails{
			Name:    billing.Name,
			Address: billing.Address,
			City:    billing.City,
			Zip:     billing.Zip,
		}
	}

	var subtotal int64
	for _, l := range lines {
		subtotal += l.Total
	}
	tax, shippingFee, total := s.Totals(subtotal)

	order := &entity.Order{
		OrderNumber:   utils.OrderNumber(orderNumberPrefix),
		UserID:        userID,
		Status:        entity.OrderStatusPending,
		Subtotal:      subtotal,
		Tax:           tax,
		ShippingFee:   shippingFee,
		Total:         total,
		PaymentMethod: paymentMethod,

		BillingName:    billing.Name,
		BillingEmail:   billing.Email,
		BillingPhone:   billing.Phone,
		BillingAddress: billing.Address,
		BillingCity:    billing.City,
		BillingZip:     billing.Zip,

		ShippingName:    shipping.Name,
		ShippingAddress: shipping.Address,
		ShippingCity:    shipping.City,
		ShippingZip:     shipping.Zip,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Orders.CreateOrder(tx, order); err != nil {
			return err
		}
		for _, l := range lines {
			options, err := json.Marshal(l.Options)
			if err != nil {
				return err
			}
			item := &entity.OrderItem{
				OrderID:     order.ID,
				ProductID:   l.ProductID,
				Name:        l.Name,
				SKU:         l.SKU,
				Description: l.Description,
				Image:       l.Image,
				Quantity:    l.Quantity,
				Price:       l.Price,
				Total:       l.Total,
				Options:     options,
			}
			if err := s.Orders.CreateOrderItem(tx, item); err != nil {
				return err
			}
		}
		return s.Carts.ClearForUser(tx, userID)
	})
	if err != nil {
		return nil, err
	}

	drafts.Clear()
	if s.Feed != nil {
		s.Feed.BroadcastOrder(order)
	}
	return order, nil
}
