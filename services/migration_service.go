package services

import (
	"errors"

	"github.com/danish-manzoor/ecommerce-store-sub001/entity"
	"github.com/danish-manzoor/ecommerce-store-sub001/repository"
	"github.com/danish-manzoor/ecommerce-store-sub001/utils"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// MigrationService folds an anonymous cookie cart/wishlist into a freshly
// authenticated user's persistent store. Called once at login, after the
// caller has verified the session belongs to a customer; the cookies are
// cleared unconditionally afterwards, even when they were empty.
type MigrationService struct {
	carts    *repository.CartRepository
	wishlist *repository.WishlistRepository
}

func NewMigrationService(carts *repository.CartRepository, wishlist *repository.WishlistRepository) *MigrationService {
	return &MigrationService{carts: carts, wishlist: wishlist}
}

// MigrateCart moves every anonymous line to the user's cart. When the user
// already has a line for the same (product, option combination) the
// anonymous quantity overwrites it — last write wins, the anonymous state is
// taken as the shopper's latest intent. The snapshot price of an existing
// line is kept.
func (s *MigrationService) MigrateCart(jar CookieJar, userID uint) error {
	items := readCartCookie(jar)
	for _, it := range items {
		key := utils.SortedIDKey(it.OptionIDs)
		existing, err := s.carts.FindItem(userID, it.ProductID, key)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if existing != nil {
			existing.Quantity = it.Quantity
			if err := s.carts.SaveItem(existing); err != nil {
				return err
			}
			continue
		}
		row := &entity.CartItem{
			UserID:                 userID,
			ProductID:              it.ProductID,
			Quantity:               it.Quantity,
			Price:                  it.Price,
			VariationTypeOptionIDs: datatypes.JSON(key),
		}
		if err := s.carts.CreateItem(row); err != nil {
			return err
		}
	}
	clearCartCookie(jar)
	return nil
}

// MigrateWishlist moves anonymous wishlist entries over. Unlike the cart,
// an existing entry for the same product is skipped, not overwritten.
func (s *MigrationService) MigrateWishlist(jar CookieJar, userID uint) error {
	items := readWishlistCookie(jar)
	for _, it := range items {
		exists, err := s.wishlist.Exists(userID, it.ProductID)
		if err != nil {
			return err
		}
		if exists {
			continue
		}
		row := &entity.WishlistItem{UserID: userID, ProductID: it.ProductID}
		if err := s.wishlist.Create(row); err != nil {
			return err
		}
	}
	clearWishlistCookie(jar)
	return nil
}
