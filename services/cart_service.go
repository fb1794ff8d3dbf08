package services

import (
	"errors"
	"log"
	"sort"
	"strconv"

	"github.com/danish-manzoor/ecommerce-store-sub001/entity"
	"github.com/danish-manzoor/ecommerce-store-sub001/repository"
	"github.com/danish-manzoor/ecommerce-store-sub001/utils"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// cartEntry is the backend-neutral stored form of one cart line. OptionIDs
// are kept ascending-sorted; Price is the unit price snapshotted at add time.
type cartEntry struct {
	ID        string
	ProductID uint
	Quantity  int
	Price     int64
	OptionIDs []uint
}

func (e cartEntry) key() string {
	return utils.SortedIDKey(e.OptionIDs)
}

// cartBackend is the storage side of the cart: authenticated rows in the DB
// or the anonymous cookie blob. Line identity is (product, sorted option-id
// key) in both.
type cartBackend interface {
	entries() ([]cartEntry, error)
	find(productID uint, key string) (*cartEntry, error)
	insert(e cartEntry) error
	update(e cartEntry) error
	remove(productID uint, key string) error
	clear() error
}

// OptionLabel is the display form of one selected option on a cart line.
type OptionLabel struct {
	VariationTypeID uint   `json:"variationTypeId"`
	OptionID        uint   `json:"optionId"`
	TypeName        string `json:"typeName"`
	OptionName      string `json:"optionName"`
}

// CartLine is a hydrated cart item: stored quantity/price plus live product
// and option labels. Price is never recomputed here.
type CartLine struct {
	ID          string        `json:"id"`
	ProductID   uint          `json:"productId"`
	Name        string        `json:"name"`
	Slug        string        `json:"slug"`
	SKU         string        `json:"sku"`
	Description string        `json:"description"`
	Image       string        `json:"image"`
	Quantity    int           `json:"quantity"`
	Price       int64         `json:"price"`
	Total       int64         `json:"total"`
	OptionIDs   []uint        `json:"optionIds"`
	Options     []OptionLabel `json:"options"`
}

// CartService implements the cart contract over either backend. One instance
// lives for one request; Items() memoizes its hydration pass, so construct a
// fresh service per request and never share one across users.
type CartService struct {
	backend  cartBackend
	pricing  PricingEngine
	products *repository.ProductRepository
	options  *repository.VariationRepository

	memo     []CartLine
	hydrated bool
}

// NewCartServiceForUser returns the cart of an authenticated user, backed by
// cart_items rows.
func NewCartServiceForUser(
	userID uint,
	carts *repository.CartRepository,
	products *repository.ProductRepository,
	options *repository.VariationRepository,
) *CartService {
	return &CartService{
		backend:  &dbCartBackend{userID: userID, repo: carts},
		pricing:  NewPricingEngine(),
		products: products,
		options:  options,
	}
}

// NewCartServiceForGuest returns the anonymous cart, backed by a single
// cookie blob in the jar.
func NewCartServiceForGuest(
	jar CookieJar,
	products *repository.ProductRepository,
	options *repository.VariationRepository,
) *CartService {
	return &CartService{
		backend:  &cookieCartBackend{jar: jar},
		pricing:  NewPricingEngine(),
		products: products,
		options:  options,
	}
}

// Add puts quantity of (product, option combination) into the cart. If the
// exact combination is already present the quantities merge; otherwise a new
// line is created with the price resolved now and kept as a snapshot.
func (s *CartService) Add(productID uint, quantity int, optionIDs []uint) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	product, err := s.products.FindByID(productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if len(optionIDs) > 0 {
		count, err := s.options.CountOptionsBelongToProduct(productID, optionIDs)
		if err != nil {
			return err
		}
		if count != int64(len(optionIDs)) {
			return ErrInvalidOptions
		}
	}

	key := utils.SortedIDKey(optionIDs)
	existing, err := s.backend.find(productID, key)
	if err != nil {
		return err
	}
	defer s.invalidate()

	if existing != nil {
		existing.Quantity += quantity
		return s.backend.update(*existing)
	}

	sorted := utils.ParseIDKey(key)
	return s.backend.insert(cartEntry{
		ProductID: productID,
		Quantity:  quantity,
		Price:     s.pricing.ResolvePrice(product, optionIDs),
		OptionIDs: sorted,
	})
}

// UpdateQuantity replaces the quantity of an existing line; zero or less
// removes it.
func (s *CartService) UpdateQuantity(productID uint, quantity int, optionIDs []uint) error {
	if quantity <= 0 {
		return s.Remove(productID, optionIDs)
	}
	key := utils.SortedIDKey(optionIDs)
	existing, err := s.backend.find(productID, key)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}
	existing.Quantity = quantity
	s.invalidate()
	return s.backend.update(*existing)
}

func (s *CartService) Remove(productID uint, optionIDs []uint) error {
	s.invalidate()
	return s.backend.remove(productID, utils.SortedIDKey(optionIDs))
}

func (s *CartService) Clear() error {
	s.invalidate()
	return s.backend.clear()
}

// Items returns the hydrated cart lines. The pass runs at most once per
// service instance; a hydration failure is logged and degrades to an empty
// cart instead of failing the page.
func (s *CartService) Items() []CartLine {
	if s.hydrated {
		return s.memo
	}
	lines, err := s.hydrate()
	if err != nil {
		log.Printf("cart hydration failed: %v", err)
		lines = []CartLine{}
	}
	s.memo = lines
	s.hydrated = true
	return s.memo
}

func (s *CartService) Count() int {
	return len(s.Items())
}

func (s *CartService) TotalQuantity() int {
	var n int
	for _, l := range s.Items() {
		n += l.Quantity
	}
	return n
}

func (s *CartService) TotalPrice() int64 {
	var sum int64
	for _, l := range s.Items() {
		sum += l.Total
	}
	return sum
}

func (s *CartService) invalidate() {
	s.memo = nil
	s.hydrated = false
}

func (s *CartService) hydrate() ([]CartLine, error) {
	raw, err := s.backend.entries()
	if err != nil {
		return nil, err
	}

	productIDs := make([]uint, 0, len(raw))
	var optionIDs []uint
	for _, e := range raw {
		productIDs = append(productIDs, e.ProductID)
		optionIDs = append(optionIDs, e.OptionIDs...)
	}

	products, err := s.products.FindByIDs(productIDs)
	if err != nil {
		return nil, err
	}
	options, err := s.options.OptionsByIDs(optionIDs)
	if err != nil {
		return nil, err
	}

	lines := make([]CartLine, 0, len(raw))
	for _, e := range raw {
		p, ok := products[e.ProductID]
		if !ok {
			// product deleted since it was added; drop the line
			continue
		}
		line := CartLine{
			ID:          e.ID,
			ProductID:   e.ProductID,
			Name:        p.Name,
			Slug:        p.Slug,
			SKU:         p.SKU,
			Description: p.Description,
			Image:       p.Image,
			Quantity:    e.Quantity,
			Price:       e.Price,
			Total:       e.Price * int64(e.Quantity),
			OptionIDs:   e.OptionIDs,
		}
		for _, id := range e.OptionIDs {
			o, ok := options[id]
			if !ok {
				continue
			}
			line.Options = append(line.Options, OptionLabel{
				VariationTypeID: o.VariationTypeID,
				OptionID:        o.ID,
				TypeName:        o.VariationType.Name,
				OptionName:      o.Name,
			})
			// option image wins over the product image when present
			if o.Image != "" && line.Image == p.Image {
				line.Image = o.Image
			}
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// ---- authenticated backend ----

type dbCartBackend struct {
	userID uint
	repo   *repository.CartRepository
}

func (b *dbCartBackend) entries() ([]cartEntry, error) {
	rows, err := b.repo.ItemsForUser(b.userID)
	if err != nil {
		return nil, err
	}
	out := make([]cartEntry, 0, len(rows))
	for _, r := range rows {
		out = append(out, cartEntry{
			ID:        strconv.FormatUint(uint64(r.ID), 10),
			ProductID: r.ProductID,
			Quantity:  r.Quantity,
			Price:     r.Price,
			OptionIDs: utils.ParseIDKey(string(r.VariationTypeOptionIDs)),
		})
	}
	return out, nil
}

func (b *dbCartBackend) find(productID uint, key string) (*cartEntry, error) {
	row, err := b.repo.FindItem(b.userID, productID, key)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cartEntry{
		ID:        strconv.FormatUint(uint64(row.ID), 10),
		ProductID: row.ProductID,
		Quantity:  row.Quantity,
		Price:     row.Price,
		OptionIDs: utils.ParseIDKey(string(row.VariationTypeOptionIDs)),
	}, nil
}

func (b *dbCartBackend) insert(e cartEntry) error {
	return b.repo.CreateItem(&entity.CartItem{
		UserID:                 b.userID,
		ProductID:              e.ProductID,
		Quantity:               e.Quantity,
		Price:                  e.Price,
		VariationTypeOptionIDs: datatypes.JSON(e.key()),
	})
}

func (b *dbCartBackend) update(e cartEntry) error {
	row, err := b.repo.FindItem(b.userID, e.ProductID, e.key())
	if err != nil {
		return err
	}
	row.Quantity = e.Quantity
	return b.repo.SaveItem(row)
}

func (b *dbCartBackend) remove(productID uint, key string) error {
	row, err := b.repo.FindItem(b.userID, productID, key)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	return b.repo.DeleteItem(row)
}

func (b *dbCartBackend) clear() error {
	return b.repo.ClearForUser(b.repo.DB, b.userID)
}

// sortEntries gives both backends the same deterministic listing order.
func sortEntries(entries []cartEntry) {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].ProductID != entries[j].ProductID {
			return entries[i].ProductID < entries[j].ProductID
		}
		return entries[i].key() < entries[j].key()
	})
}
