package controllers

import (
	"errors"
	"log"

	"github.com/danish-manzoor/ecommerce-store-sub001/pkg/resp"
	"github.com/danish-manzoor/ecommerce-store-sub001/services"
	"github.com/danish-manzoor/ecommerce-store-sub001/utils"

	"github.com/gin-gonic/gin"
)

type CheckoutController struct {
	Svc    *services.CheckoutService
	Stores *StoreFactory
}

func NewCheckoutController(svc *services.CheckoutService, stores *StoreFactory) *CheckoutController {
	return &CheckoutController{Svc: svc, Stores: stores}
}

// POST /checkout/billing
func (h *CheckoutController) SaveBilling(c *gin.Context) {
	var req services.BillingDetails
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	services.NewDraftStore(utils.NewGinJar(c)).PutBilling(req)
	resp.OK(c, gin.H{"ok": true})
}

// POST /checkout/shipping
func (h *CheckoutController) SaveShipping(c *gin.Context) {
	var req services.ShippingDetails
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	services.NewDraftStore(utils.NewGinJar(c)).PutShipping(req)
	resp.OK(c, gin.H{"ok": true})
}

// POST /checkout/place
func (h *CheckoutController) PlaceOrder(c *gin.Context) {
	var req struct {
		PaymentMethod string `json:"paymentMethod" binding:"required,oneof=cod bank_transfer"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	cart := h.Stores.CartFor(c)
	drafts := services.NewDraftStore(utils.NewGinJar(c))

	userID := utils.CurrentUserID(c)
	order, err := h.Svc.PlaceOrder(userID, cart, drafts, req.PaymentMethod)
	if err != nil {
		if errors.Is(err, services.ErrCartEmpty) || errors.Is(err, services.ErrNoBillingDraft) {
			writeServiceError(c, err)
			return
		}
		// storage failures rolled back; the cart is intact so the user can retry
		log.Printf("place order failed for user %d: %v", userID, err)
		resp.ServerError(c, errors.New("failed to create order"))
		return
	}
	resp.Created(c, order)
}
