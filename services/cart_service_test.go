package services

import (
	"testing"

	"github.com/danish-manzoor/ecommerce-store-sub001/entity"
	"github.com/danish-manzoor/ecommerce-store-sub001/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func cartsUnderTest(t *testing.T, r *testRepos) map[string]func() *CartService {
	t.Helper()
	jar := NewMemoryJar()
	return map[string]func() *CartService{
		"db": func() *CartService {
			return NewCartServiceForUser(1, r.carts, r.products, r.options)
		},
		"cookie": func() *CartService {
			return NewCartServiceForGuest(jar, r.products, r.options)
		},
	}
}

func TestCartAddMergesSameCombination(t *testing.T) {
	r := setupRepos(t)
	p := seedShirt(t, r.db)
	red := option(t, p, "Red").ID
	small := option(t, p, "S").ID

	for name, newCart := range cartsUnderTest(t, r) {
		t.Run(name, func(t *testing.T) {
			cart := newCart()
			require.NoError(t, cart.Add(p.ID, 1, []uint{red, small}))
			// same combination in reversed selection order
			require.NoError(t, cart.Add(p.ID, 1, []uint{small, red}))

			items := newCart().Items()
			require.Len(t, items, 1)
			assert.Equal(t, 2, items[0].Quantity)
			assert.Equal(t, p.ID, items[0].ProductID)
		})
	}
}

func TestCartDistinctCombinationsStaySeparate(t *testing.T) {
	r := setupRepos(t)
	p := seedShirt(t, r.db)
	red := option(t, p, "Red").ID
	small := option(t, p, "S").ID
	large := option(t, p, "L").ID

	for name, newCart := range cartsUnderTest(t, r) {
		t.Run(name, func(t *testing.T) {
			cart := newCart()
			require.NoError(t, cart.Add(p.ID, 1, []uint{red, small}))
			require.NoError(t, cart.Add(p.ID, 3, []uint{red, large}))

			fresh := newCart()
			assert.Equal(t, 2, fresh.Count())
			assert.Equal(t, 4, fresh.TotalQuantity())
		})
	}
}

func TestCartPriceIsSnapshottedAtAddTime(t *testing.T) {
	r := setupRepos(t)
	p := seedShirt(t, r.db)
	red := option(t, p, "Red").ID
	small := option(t, p, "S").ID

	for name, newCart := range cartsUnderTest(t, r) {
		t.Run(name, func(t *testing.T) {
			cart := newCart()
			require.NoError(t, cart.Clear())
			require.NoError(t, cart.Add(p.ID, 2, []uint{red, small}))

			// product price changes after the add
			require.NoError(t, r.db.Model(&entity.Product{}).Where("id = ?", p.ID).Update("price", 99999).Error)

			items := newCart().Items()
			require.Len(t, items, 1)
			assert.Equal(t, int64(10000), items[0].Price)
			assert.Equal(t, int64(20000), items[0].Total)

			// restore for the other backend
			require.NoError(t, r.db.Model(&entity.Product{}).Where("id = ?", p.ID).Update("price", 10000).Error)
		})
	}
}

func TestCartAddUsesOverridePrice(t *testing.T) {
	r := setupRepos(t)
	p := seedShirt(t, r.db)
	red := option(t, p, "Red").ID
	large := option(t, p, "L").ID

	price := int64(30000)
	require.NoError(t, r.db.Create(&entity.ProductVariation{
		ProductID:              p.ID,
		VariationTypeOptionIDs: datatypes.JSON(utils.TypeOrderKey([]uint{red, large})),
		Price:                  &price,
	}).Error)

	cart := NewCartServiceForGuest(NewMemoryJar(), r.products, r.options)
	require.NoError(t, cart.Add(p.ID, 1, []uint{large, red}))

	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, int64(30000), items[0].Price)
}

func TestCartUpdateQuantityAndRemove(t *testing.T) {
	r := setupRepos(t)
	p := seedShirt(t, r.db)
	red := option(t, p, "Red").ID
	small := option(t, p, "S").ID

	for name, newCart := range cartsUnderTest(t, r) {
		t.Run(name, func(t *testing.T) {
			cart := newCart()
			require.NoError(t, cart.Add(p.ID, 1, []uint{red, small}))

			require.NoError(t, newCart().UpdateQuantity(p.ID, 5, []uint{small, red}))
			items := newCart().Items()
			require.Len(t, items, 1)
			assert.Equal(t, 5, items[0].Quantity)

			// zero quantity removes the line
			require.NoError(t, newCart().UpdateQuantity(p.ID, 0, []uint{red, small}))
			assert.Empty(t, newCart().Items())
		})
	}
}

func TestCartUpdateQuantityUnknownLine(t *testing.T) {
	r := setupRepos(t)
	p := seedShirt(t, r.db)

	cart := NewCartServiceForGuest(NewMemoryJar(), r.products, r.options)
	assert.ErrorIs(t, cart.UpdateQuantity(p.ID, 2, []uint{999}), ErrNotFound)
}

func TestCartAddValidatesProductAndOptions(t *testing.T) {
	r := setupRepos(t)
	p := seedShirt(t, r.db)

	cart := NewCartServiceForGuest(NewMemoryJar(), r.products, r.options)
	assert.ErrorIs(t, cart.Add(9999, 1, nil), ErrNotFound)
	assert.ErrorIs(t, cart.Add(p.ID, 1, []uint{12345}), ErrInvalidOptions)
	assert.ErrorIs(t, cart.Add(p.ID, 0, nil), ErrInvalidQuantity)
}

func TestCartHydrationLabelsAndImages(t *testing.T) {
	r := setupRepos(t)
	p := seedShirt(t, r.db)
	require.NoError(t, r.db.Model(&entity.Product{}).Where("id = ?", p.ID).Update("image", "shirt.jpg").Error)

	red := option(t, p, "Red")
	small := option(t, p, "S")
	require.NoError(t, r.db.Model(&entity.VariationTypeOption{}).Where("id = ?", red.ID).Update("image", "shirt-red.jpg").Error)

	cart := NewCartServiceForGuest(NewMemoryJar(), r.products, r.options)
	require.NoError(t, cart.Add(p.ID, 1, []uint{red.ID, small.ID}))

	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "Shirt", items[0].Name)
	assert.Equal(t, "shirt", items[0].Slug)
	// selected option image overrides the product image
	assert.Equal(t, "shirt-red.jpg", items[0].Image)

	require.Len(t, items[0].Options, 2)
	labels := map[string]string{}
	for _, o := range items[0].Options {
		labels[o.TypeName] = o.OptionName
	}
	assert.Equal(t, map[string]string{"Color": "Red", "Size": "S"}, labels)
}

func TestCartHydrationSkipsDeletedProduct(t *testing.T) {
	r := setupRepos(t)
	p := seedShirt(t, r.db)
	other := &entity.Product{Name: "Mug", Slug: "mug", Price: 500}
	require.NoError(t, r.db.Create(other).Error)

	cart := NewCartServiceForUser(1, r.carts, r.products, r.options)
	require.NoError(t, cart.Add(p.ID, 1, nil))
	require.NoError(t, cart.Add(other.ID, 1, nil))

	require.NoError(t, r.db.Unscoped().Delete(&entity.Product{}, other.ID).Error)

	items := NewCartServiceForUser(1, r.carts, r.products, r.options).Items()
	require.Len(t, items, 1)
	assert.Equal(t, p.ID, items[0].ProductID)
}

func TestCartItemsMemoizedPerInstance(t *testing.T) {
	r := setupRepos(t)
	p := seedShirt(t, r.db)

	cart := NewCartServiceForUser(1, r.carts, r.products, r.options)
	require.NoError(t, cart.Add(p.ID, 1, nil))

	first := cart.Items()
	require.Len(t, first, 1)

	// a write that bypasses this instance is not observed by the memo
	require.NoError(t, r.db.Model(&entity.CartItem{}).Where("user_id = ?", 1).Update("quantity", 9).Error)
	assert.Equal(t, first, cart.Items())

	// a fresh instance sees it
	fresh := NewCartServiceForUser(1, r.carts, r.products, r.options).Items()
	require.Len(t, fresh, 1)
	assert.Equal(t, 9, fresh[0].Quantity)
}

func TestGuestCartIsolatedPerJar(t *testing.T) {
	r := setupRepos(t)
	p := seedShirt(t, r.db)

	jarA := NewMemoryJar()
	jarB := NewMemoryJar()
	require.NoError(t, NewCartServiceForGuest(jarA, r.products, r.options).Add(p.ID, 1, nil))

	assert.Empty(t, NewCartServiceForGuest(jarB, r.products, r.options).Items())
	assert.Len(t, NewCartServiceForGuest(jarA, r.products, r.options).Items(), 1)
}
