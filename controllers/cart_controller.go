package controllers

import (
	"github.com/danish-manzoor/ecommerce-store-sub001/pkg/resp"

	"github.com/gin-gonic/gin"
)

type CartController struct {
	Stores *StoreFactory
}

func NewCartController(stores *StoreFactory) *CartController {
	return &CartController{Stores: stores}
}

// GET /cart
func (h *CartController) Get(c *gin.Context) {
	cart := h.Stores.CartFor(c)
	items := cart.Items()
	resp.OK(c, gin.H{
		"items":         items,
		"count":         cart.Count(),
		"totalQuantity": cart.TotalQuantity(),
		"totalPrice":    cart.TotalPrice(),
	})
}

// POST /cart/items
func (h *CartController) Add(c *gin.Context) {
	var req struct {
		ProductID uint   `json:"productId" binding:"required"`
		Quantity  int    `json:"quantity" binding:"min=1"`
		OptionIDs []uint `json:"optionIds"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	cart := h.Stores.CartFor(c)
	if err := cart.Add(req.ProductID, req.Quantity, req.OptionIDs); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.Created(c, gin.H{"count": cart.Count(), "totalQuantity": cart.TotalQuantity()})
}

// PATCH /cart/items
func (h *CartController) UpdateQuantity(c *gin.Context) {
	var req struct {
		ProductID uint   `json:"productId" binding:"required"`
		Quantity  int    `json:"quantity"`
		OptionIDs []uint `json:"optionIds"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	cart := h.Stores.CartFor(c)
	if err := cart.UpdateQuantity(req.ProductID, req.Quantity, req.OptionIDs); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"count": cart.Count(), "totalPrice": cart.TotalPrice()})
}

// DELETE /cart/items
func (h *CartController) Remove(c *gin.Context) {
	var req struct {
		ProductID uint   `json:"productId" binding:"required"`
		OptionIDs []uint `json:"optionIds"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	cart := h.Stores.CartFor(c)
	if err := cart.Remove(req.ProductID, req.OptionIDs); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"count": cart.Count()})
}

// DELETE /cart
func (h *CartController) Clear(c *gin.Context) {
	cart := h.Stores.CartFor(c)
	if err := cart.Clear(); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"count": 0})
}
