package services

import (
	"testing"

	"github.com/danish-manzoor/ecommerce-store-sub001/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wishlistsUnderTest(t *testing.T, r *testRepos) map[string]func() *WishlistService {
	t.Helper()
	jar := NewMemoryJar()
	return map[string]func() *WishlistService{
		"db": func() *WishlistService {
			return NewWishlistServiceForUser(1, r.wishlist, r.products)
		},
		"cookie": func() *WishlistService {
			return NewWishlistServiceForGuest(jar, r.products)
		},
	}
}

func TestWishlistAddIsIdempotent(t *testing.T) {
	r := setupRepos(t)
	p := seedShirt(t, r.db)

	for name, newList := range wishlistsUnderTest(t, r) {
		t.Run(name, func(t *testing.T) {
			list := newList()
			require.NoError(t, list.Add(p.ID))
			require.NoError(t, list.Add(p.ID))

			ids, err := newList().ProductIDs()
			require.NoError(t, err)
			assert.Equal(t, []uint{p.ID}, ids)
		})
	}
}

func TestWishlistRemove(t *testing.T) {
	r := setupRepos(t)
	p := seedShirt(t, r.db)

	for name, newList := range wishlistsUnderTest(t, r) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, newList().Add(p.ID))
			require.NoError(t, newList().Remove(p.ID))

			ids, err := newList().ProductIDs()
			require.NoError(t, err)
			assert.Empty(t, ids)

			// removing again is a no-op
			require.NoError(t, newList().Remove(p.ID))
		})
	}
}

func TestWishlistProductsDropDeleted(t *testing.T) {
	r := setupRepos(t)
	p := seedShirt(t, r.db)
	other := &entity.Product{Name: "Mug", Slug: "mug", Price: 500}
	require.NoError(t, r.db.Create(other).Error)

	list := NewWishlistServiceForUser(1, r.wishlist, r.products)
	require.NoError(t, list.Add(p.ID))
	require.NoError(t, list.Add(other.ID))

	require.NoError(t, r.db.Unscoped().Delete(&entity.Product{}, other.ID).Error)

	products := NewWishlistServiceForUser(1, r.wishlist, r.products).Products()
	require.Len(t, products, 1)
	assert.Equal(t, "Shirt", products[0].Name)
}
