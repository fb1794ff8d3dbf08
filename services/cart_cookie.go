package services

import (
	"encoding/json"
	"fmt"

	"github.com/danish-manzoor/ecommerce-store-sub001/utils"

	"github.com/google/uuid"
)

const (
	cartCookieName     = "cart"
	wishlistCookieName = "wishlist"

	// anonymous carts live for about a year
	cookieMaxAge = 365 * 24 * 60 * 60
)

// cookieCartItem is the wire form of one anonymous cart line inside the cart
// cookie blob, keyed by "{productID}_{sortedOptionIDsJSON}".
type cookieCartItem struct {
	ID        string `json:"id"`
	ProductID uint   `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Price     int64  `json:"price"`
	OptionIDs []uint `json:"option_ids"`
}

func cartCookieKey(productID uint, key string) string {
	return fmt.Sprintf("%d_%s", productID, key)
}

func readCartCookie(jar CookieJar) map[string]cookieCartItem {
	blob, ok := jar.Get(cartCookieName)
	if !ok || blob == "" {
		return map[string]cookieCartItem{}
	}
	var items map[string]cookieCartItem
	if err := json.Unmarshal([]byte(blob), &items); err != nil {
		// a corrupt cookie is treated as an empty cart
		return map[string]cookieCartItem{}
	}
	if items == nil {
		items = map[string]cookieCartItem{}
	}
	return items
}

func writeCartCookie(jar CookieJar, items map[string]cookieCartItem) error {
	blob, err := json.Marshal(items)
	if err != nil {
		return err
	}
	jar.Set(cartCookieName, string(blob), cookieMaxAge)
	return nil
}

func clearCartCookie(jar CookieJar) {
	jar.Set(cartCookieName, "[]", cookieMaxAge)
	jar.Delete(cartCookieName)
}

// cookieCartBackend keeps every anonymous line in one JSON blob and rewrites
// the whole blob on each mutation. Last write wins across concurrent
// requests from the same browser; that is inherent to cookie storage.
type cookieCartBackend struct {
	jar CookieJar
}

func (b *cookieCartBackend) entries() ([]cartEntry, error) {
	items := readCartCookie(b.jar)
	out := make([]cartEntry, 0, len(items))
	for _, it := range items {
		out = append(out, cartEntry{
			ID:        it.ID,
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     it.Price,
			OptionIDs: utils.ParseIDKey(utils.SortedIDKey(it.OptionIDs)),
		})
	}
	sortEntries(out)
	return out, nil
}

func (b *cookieCartBackend) find(productID uint, key string) (*cartEntry, error) {
	items := readCartCookie(b.jar)
	it, ok := items[cartCookieKey(productID, key)]
	if !ok {
		return nil, nil
	}
	return &cartEntry{
		ID:        it.ID,
		ProductID: it.ProductID,
		Quantity:  it.Quantity,
		Price:     it.Price,
		OptionIDs: utils.ParseIDKey(utils.SortedIDKey(it.OptionIDs)),
	}, nil
}

func (b *cookieCartBackend) insert(e cartEntry) error {
	items := readCartCookie(b.jar)
	items[cartCookieKey(e.ProductID, e.key())] = cookieCartItem{
		ID:        uuid.NewString(),
		ProductID: e.ProductID,
		Quantity:  e.Quantity,
		Price:     e.Price,
		OptionIDs: e.OptionIDs,
	}
	return writeCartCookie(b.jar, items)
}

func (b *cookieCartBackend) update(e cartEntry) error {
	items := readCartCookie(b.jar)
	k := cartCookieKey(e.ProductID, e.key())
	it, ok := items[k]
	if !ok {
		return ErrNotFound
	}
	it.Quantity = e.Quantity
	items[k] = it
	return writeCartCookie(b.jar, items)
}

func (b *cookieCartBackend) remove(productID uint, key string) error {
	items := readCartCookie(b.jar)
	delete(items, cartCookieKey(productID, key))
	return writeCartCookie(b.jar, items)
}

func (b *cookieCartBackend) clear() error {
	clearCartCookie(b.jar)
	return nil
}
