package controllers

import (
	"strconv"

	"github.com/danish-manzoor/ecommerce-store-sub001/pkg/resp"
	"github.com/danish-manzoor/ecommerce-store-sub001/services"

	"github.com/gin-gonic/gin"
)

type AdminOrderController struct {
	Svc    *services.OrderAdminService
	Export *services.ExportService
}

func NewAdminOrderController(svc *services.OrderAdminService, export *services.ExportService) *AdminOrderController {
	return &AdminOrderController{Svc: svc, Export: export}
}

// GET /admin/orders?status=&page=&pageSize=
func (h *AdminOrderController) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	orders, total, err := h.Svc.List(c.Query("status"), pageSize, (page-1)*pageSize)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"orders": orders, "total": total, "page": page})
}

// GET /admin/orders/:id
func (h *AdminOrderController) Detail(c *gin.Context) {
	id := parseUintParam(c, "id")
	if id == 0 {
		resp.BadRequest(c, "invalid order id")
		return
	}
	order, err := h.Svc.Detail(id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, order)
}

// PATCH /admin/orders/:id/status
func (h *AdminOrderController) UpdateStatus(c *gin.Context) {
	id := parseUintParam(c, "id")
	if id == 0 {
		resp.BadRequest(c, "invalid order id")
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := h.Svc.UpdateStatus(id, req.Status); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"ok": true})
}

// GET /admin/export/orders
func (h *AdminOrderController) ExportOrders(c *gin.Context) {
	file, err := h.Export.OrdersFile()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	writeXLSX(c, file, "orders.xlsx")
}

// GET /admin/export/products
func (h *AdminOrderController) ExportProducts(c *gin.Context) {
	file, err := h.Export.ProductsFile()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	writeXLSX(c, file, "products.xlsx")
}
