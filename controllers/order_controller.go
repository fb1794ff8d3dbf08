package controllers

import (
	"errors"
	"strconv"

	"github.com/danish-manzoor/ecommerce-store-sub001/pkg/resp"
	"github.com/danish-manzoor/ecommerce-store-sub001/repository"
	"github.com/danish-manzoor/ecommerce-store-sub001/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type OrderController struct {
	Repo *repository.OrderRepository
}

func NewOrderController(repo *repository.OrderRepository) *OrderController {
	return &OrderController{Repo: repo}
}

// GET /orders?limit=
func (h *OrderController) ListForMe(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	orders, err := h.Repo.ListForUser(utils.CurrentUserID(c), limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, orders)
}

// GET /orders/:id
func (h *OrderController) Detail(c *gin.Context) {
	orderID := parseUintParam(c, "id")
	if orderID == 0 {
		resp.BadRequest(c, "invalid order id")
		return
	}

	order, err := h.Repo.GetForUser(utils.CurrentUserID(c), orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "order not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, order)
}
