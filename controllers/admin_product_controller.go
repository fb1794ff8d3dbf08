package controllers

import (
	"github.com/danish-manzoor/ecommerce-store-sub001/pkg/resp"
	"github.com/danish-manzoor/ecommerce-store-sub001/services"

	"github.com/gin-gonic/gin"
)

type AdminProductController struct {
	Svc *services.ProductAdminService
}

func NewAdminProductController(svc *services.ProductAdminService) *AdminProductController {
	return &AdminProductController{Svc: svc}
}

// POST /admin/products
func (h *AdminProductController) Create(c *gin.Context) {
	var req services.ProductIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	p, err := h.Svc.Create(&req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.Created(c, p)
}

// PUT /admin/products/:id
func (h *AdminProductController) Update(c *gin.Context) {
	id := parseUintParam(c, "id")
	if id == 0 {
		resp.BadRequest(c, "invalid product id")
		return
	}

	var req services.ProductIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	p, err := h.Svc.Update(id, &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, p)
}

// DELETE /admin/products/:id
func (h *AdminProductController) Delete(c *gin.Context) {
	id := parseUintParam(c, "id")
	if id == 0 {
		resp.BadRequest(c, "invalid product id")
		return
	}
	if err := h.Svc.Delete(id); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"ok": true})
}

// GET /admin/products/:id/matrix — the combination grid for the edit screen
func (h *AdminProductController) Matrix(c *gin.Context) {
	id := parseUintParam(c, "id")
	if id == 0 {
		resp.BadRequest(c, "invalid product id")
		return
	}

	combos, err := h.Svc.Matrix(id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, combos)
}

// PUT /admin/products/:id/matrix
func (h *AdminProductController) SaveMatrix(c *gin.Context) {
	id := parseUintParam(c, "id")
	if id == 0 {
		resp.BadRequest(c, "invalid product id")
		return
	}

	var req struct {
		Combinations []services.Combination `json:"combinations" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := h.Svc.SaveMatrix(id, req.Combinations); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"ok": true})
}
