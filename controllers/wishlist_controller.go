package controllers

import (
	"github.com/danish-manzoor/ecommerce-store-sub001/pkg/resp"

	"github.com/gin-gonic/gin"
)

type WishlistController struct {
	Stores *StoreFactory
}

func NewWishlistController(stores *StoreFactory) *WishlistController {
	return &WishlistController{Stores: stores}
}

// GET /wishlist
func (h *WishlistController) Get(c *gin.Context) {
	wl := h.Stores.WishlistFor(c)
	resp.OK(c, gin.H{"products": wl.Products()})
}

// POST /wishlist
func (h *WishlistController) Add(c *gin.Context) {
	var req struct {
		ProductID uint `json:"productId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	wl := h.Stores.WishlistFor(c)
	if err := wl.Add(req.ProductID); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.Created(c, gin.H{"ok": true})
}

// DELETE /wishlist/:productId
func (h *WishlistController) Remove(c *gin.Context) {
	productID := parseUintParam(c, "productId")
	if productID == 0 {
		resp.BadRequest(c, "invalid product id")
		return
	}

	wl := h.Stores.WishlistFor(c)
	if err := wl.Remove(productID); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"ok": true})
}
