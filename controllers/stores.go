package controllers

import (
	"errors"
	"strconv"

	"github.com/danish-manzoor/ecommerce-store-sub001/pkg/resp"
	"github.com/danish-manzoor/ecommerce-store-sub001/repository"
	"github.com/danish-manzoor/ecommerce-store-sub001/services"
	"github.com/danish-manzoor/ecommerce-store-sub001/utils"

	"github.com/gin-gonic/gin"
)

// StoreFactory picks the cart/wishlist backend for the current request: DB
// rows for an authenticated user, the cookie blob for everyone else. A fresh
// service per request keeps the hydration memo request-scoped.
type StoreFactory struct {
	Carts    *repository.CartRepository
	Wishlist *repository.WishlistRepository
	Products *repository.ProductRepository
	Options  *repository.VariationRepository
}

func (f *StoreFactory) CartFor(c *gin.Context) *services.CartService {
	if uid := utils.CurrentUserID(c); uid != 0 {
		return services.NewCartServiceForUser(uid, f.Carts, f.Products, f.Options)
	}
	return services.NewCartServiceForGuest(utils.NewGinJar(c), f.Products, f.Options)
}

func (f *StoreFactory) WishlistFor(c *gin.Context) *services.WishlistService {
	if uid := utils.CurrentUserID(c); uid != 0 {
		return services.NewWishlistServiceForUser(uid, f.Wishlist, f.Products)
	}
	return services.NewWishlistServiceForGuest(utils.NewGinJar(c), f.Products)
}

func parseUintParam(c *gin.Context, name string) uint {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0
	}
	return uint(v)
}

// writeServiceError maps the service sentinels onto HTTP statuses.
func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		resp.NotFound(c, "not found")
	case errors.Is(err, services.ErrInvalidOptions),
		errors.Is(err, services.ErrInvalidQuantity),
		errors.Is(err, services.ErrInvalidStatus):
		resp.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrCartEmpty),
		errors.Is(err, services.ErrNoBillingDraft),
		errors.Is(err, services.ErrSlugTaken),
		errors.Is(err, services.ErrEmailTaken):
		resp.Conflict(c, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		resp.Unauthorized(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}
