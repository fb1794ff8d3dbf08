package services

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/danish-manzoor/ecommerce-store-sub001/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBilling() BillingDetails {
	return BillingDetails{
		Name:    "Ada Example",
		Email:   "ada@example.com",
		Phone:   "555-0100",
		Address: "1 Main St",
		City:    "Springfield",
		Zip:     "12345",
	}
}

func checkoutFixture(t *testing.T, r *testRepos) (*CheckoutService, *CartService, *DraftStore) {
	t.Helper()
	svc := NewCheckoutService(r.db, r.orders, r.carts, nil)
	cart := NewCartServiceForUser(1, r.carts, r.products, r.options)
	drafts := NewDraftStore(NewMemoryJar())
	return svc, cart, drafts
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	r := setupRepos(t)
	svc, cart, drafts := checkoutFixture(t, r)
	drafts.PutBilling(testBilling())

	order, err := svc.PlaceOrder(1, cart, drafts, "cod")
	assert.ErrorIs(t, err, ErrCartEmpty)
	assert.Nil(t, order)

	var count int64
	require.NoError(t, r.db.Model(&entity.Order{}).Count(&count).Error)
	assert.Zero(t, count, "no order row for an empty cart")
}

func TestPlaceOrderRequiresBillingDraft(t *testing.T) {
	r := setupRepos(t)
	p := seedShirt(t, r.db)
	svc, cart, drafts := checkoutFixture(t, r)
	require.NoError(t, cart.Add(p.ID, 1, nil))

	_, err := svc.PlaceOrder(1, cart, drafts, "cod")
	assert.ErrorIs(t, err, ErrNoBillingDraft)
}

func TestPlaceOrderSnapshotsCartAndClears(t *testing.T) {
	r := setupRepos(t)
	p := seedShirt(t, r.db)
	red := option(t, p, "Red").ID
	small := option(t, p, "S").ID

	svc, cart, drafts := checkoutFixture(t, r)
	require.NoError(t, cart.Add(p.ID, 2, []uint{red, small}))
	require.NoError(t, cart.Add(p.ID, 1, nil))
	drafts.PutBilling(testBilling())

	order, err := svc.PlaceOrder(1, cart, drafts, "cod")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(order.OrderNumber, "ORD"), "order number %q", order.OrderNumber)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Equal(t, int64(30000), order.Subtotal)
	assert.Equal(t, int64(30000), order.Total, "zero totals add nothing")
	assert.Equal(t, "cod", order.PaymentMethod)

	// no shipping draft: billing address ships
	assert.Equal(t, "Ada Example", order.ShippingName)
	assert.Equal(t, "1 Main St", order.ShippingAddress)

	stored, err := r.orders.GetForUser(1, order.ID)
	require.NoError(t, err)
	require.Len(t, stored.Items, 2)
	for _, it := range stored.Items {
		assert.Equal(t, "Shirt", it.Name)
		assert.Equal(t, "SH-01", it.SKU)
		assert.Equal(t, int64(10000), it.Price)
		assert.Equal(t, it.Price*int64(it.Quantity), it.Total)
	}

	var withOptions entity.OrderItem
	require.NoError(t, r.db.Where("order_id = ? AND quantity = ?", order.ID, 2).First(&withOptions).Error)
	var labels []OptionLabel
	require.NoError(t, json.Unmarshal(withOptions.Options, &labels))
	require.Len(t, labels, 2)

	// cart and drafts are gone
	rows, err := r.carts.ItemsForUser(1)
	require.NoError(t, err)
	assert.Empty(t, rows)
	_, ok := drafts.Billing()
	assert.False(t, ok)
}

func TestPlaceOrderUsesShippingDraftWhenPresent(t *testing.T) {
	r := setupRepos(t)
	p := seedShirt(t, r.db)
	svc, cart, drafts := checkoutFixture(t, r)
	require.NoError(t, cart.Add(p.ID, 1, nil))
	drafts.PutBilling(testBilling())
	drafts.PutShipping(ShippingDetails{Name: "Bo Example", Address: "9 Side St", City: "Shelbyville", Zip: "67890"})

	order, err := svc.PlaceOrder(1, cart, drafts, "card")
	require.NoError(t, err)
	assert.Equal(t, "Bo Example", order.ShippingName)
	assert.Equal(t, "9 Side St", order.ShippingAddress)
	assert.Equal(t, "Ada Example", order.BillingName)
}

func TestPlaceOrderTotalsFuncApplied(t *testing.T) {
	r := setupRepos(t)
	p := seedShirt(t, r.db)
	svc, cart, drafts := checkoutFixture(t, r)
	svc.Totals = func(subtotal int64) (int64, int64, int64) {
		tax := subtotal / 10
		return tax, 500, subtotal + tax + 500
	}
	require.NoError(t, cart.Add(p.ID, 1, nil))
	drafts.PutBilling(testBilling())

	order, err := svc.PlaceOrder(1, cart, drafts, "cod")
	require.NoError(t, err)
	assert.Equal(t, int64(10000), order.Subtotal)
	assert.Equal(t, int64(1000), order.Tax)
	assert.Equal(t, int64(500), order.ShippingFee)
	assert.Equal(t, int64(11500), order.Total)
}

func TestPlaceOrderRollsBackOnItemFailure(t *testing.T) {
	r := setupRepos(t)
	p := seedShirt(t, r.db)
	svc, cart, drafts := checkoutFixture(t, r)
	require.NoError(t, cart.Add(p.ID, 1, nil))
	drafts.PutBilling(testBilling())

	// break item persistence mid-transaction
	require.NoError(t, r.db.Migrator().DropTable(&entity.OrderItem{}))

	_, err := svc.PlaceOrder(1, cart, drafts, "cod")
	require.Error(t, err)

	var orders int64
	require.NoError(t, r.db.Model(&entity.Order{}).Count(&orders).Error)
	assert.Zero(t, orders, "order header rolled back")

	rows, err := r.carts.ItemsForUser(1)
	require.NoError(t, err)
	assert.Len(t, rows, 1, "cart untouched after rollback")

	_, ok := drafts.Billing()
	assert.True(t, ok, "draft kept so the user can retry")
}
