package services

import (
	"encoding/json"
	"log"
	"sort"
	"strconv"

	"github.com/danish-manzoor/ecommerce-store-sub001/entity"
	"github.com/danish-manzoor/ecommerce-store-sub001/repository"

	"github.com/google/uuid"
)

// cookieWishlistItem is the wire form of one anonymous wishlist entry, keyed
// by the decimal product id.
type cookieWishlistItem struct {
	ID        string `json:"id"`
	ProductID uint   `json:"product_id"`
}

type wishlistBackend interface {
	productIDs() ([]uint, error)
	has(productID uint) (bool, error)
	add(productID uint) error
	remove(productID uint) error
}

// WishlistService is the membership-only sibling of CartService: same dual
// backend, no quantity or price.
type WishlistService struct {
	backend  wishlistBackend
	products *repository.ProductRepository
}

func NewWishlistServiceForUser(userID uint, repo *repository.WishlistRepository, products *repository.ProductRepository) *WishlistService {
	return &WishlistService{
		backend:  &dbWishlistBackend{userID: userID, repo: repo},
		products: products,
	}
}

func NewWishlistServiceForGuest(jar CookieJar, products *repository.ProductRepository) *WishlistService {
	return &WishlistService{
		backend:  &cookieWishlistBackend{jar: jar},
		products: products,
	}
}

// Add is idempotent: an existing entry for the product is left alone.
func (s *WishlistService) Add(productID uint) error {
	exists, err := s.backend.has(productID)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return s.backend.add(productID)
}

func (s *WishlistService) Remove(productID uint) error {
	return s.backend.remove(productID)
}

func (s *WishlistService) ProductIDs() ([]uint, error) {
	return s.backend.productIDs()
}

// Products hydrates the wishlist with live product records. Deleted products
// drop out; a lookup failure is logged and degrades to an empty list.
func (s *WishlistService) Products() []entity.Product {
	ids, err := s.backend.productIDs()
	if err != nil {
		log.Printf("wishlist read failed: %v", err)
		return []entity.Product{}
	}
	byID, err := s.products.FindByIDs(ids)
	if err != nil {
		log.Printf("wishlist hydration failed: %v", err)
		return []entity.Product{}
	}
	out := make([]entity.Product, 0, len(ids))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			out = append(out, p)
		}
	}
	return out
}

// ---- authenticated backend ----

type dbWishlistBackend struct {
	userID uint
	repo   *repository.WishlistRepository
}

func (b *dbWishlistBackend) productIDs() ([]uint, error) {
	rows, err := b.repo.ItemsForUser(b.userID)
	if err != nil {
		return nil, err
	}
	out := make([]uint, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.ProductID)
	}
	return out, nil
}

func (b *dbWishlistBackend) has(productID uint) (bool, error) {
	return b.repo.Exists(b.userID, productID)
}

func (b *dbWishlistBackend) add(productID uint) error {
	return b.repo.Create(&entity.WishlistItem{UserID: b.userID, ProductID: productID})
}

func (b *dbWishlistBackend) remove(productID uint) error {
	return b.repo.Delete(b.userID, productID)
}

// ---- anonymous backend ----

type cookieWishlistBackend struct {
	jar CookieJar
}

func readWishlistCookie(jar CookieJar) map[string]cookieWishlistItem {
	blob, ok := jar.Get(wishlistCookieName)
	if !ok || blob == "" {
		return map[string]cookieWishlistItem{}
	}
	var items map[string]cookieWishlistItem
	if err := json.Unmarshal([]byte(blob), &items); err != nil {
		return map[string]cookieWishlistItem{}
	}
	if items == nil {
		items = map[string]cookieWishlistItem{}
	}
	return items
}

func writeWishlistCookie(jar CookieJar, items map[string]cookieWishlistItem) error {
	blob, err := json.Marshal(items)
	if err != nil {
		return err
	}
	jar.Set(wishlistCookieName, string(blob), cookieMaxAge)
	return nil
}

func clearWishlistCookie(jar CookieJar) {
	jar.Set(wishlistCookieName, "[]", cookieMaxAge)
	jar.Delete(wishlistCookieName)
}

func (b *cookieWishlistBackend) productIDs() ([]uint, error) {
	items := readWishlistCookie(b.jar)
	out := make([]uint, 0, len(items))
	for _, it := range items {
		out = append(out, it.ProductID)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, nil
}

func (b *cookieWishlistBackend) has(productID uint) (bool, error) {
	items := readWishlistCookie(b.jar)
	_, ok := items[strconv.FormatUint(uint64(productID), 10)]
	return ok, nil
}

func (b *cookieWishlistBackend) add(productID uint) error {
	items := readWishlistCookie(b.jar)
	items[strconv.FormatUint(uint64(productID), 10)] = cookieWishlistItem{
		ID:        uuid.NewString(),
		ProductID: productID,
	}
	return writeWishlistCookie(b.jar, items)
}

func (b *cookieWishlistBackend) remove(productID uint) error {
	items := readWishlistCookie(b.jar)
	delete(items, strconv.FormatUint(uint64(productID), 10))
	return writeWishlistCookie(b.jar, items)
}
