package controllers

import (
	"github.com/danish-manzoor/ecommerce-store-sub001/pkg/resp"
	"github.com/danish-manzoor/ecommerce-store-sub001/services"

	"github.com/gin-gonic/gin"
)

type AdminTaxonomyController struct {
	Svc *services.TaxonomyService
}

func NewAdminTaxonomyController(svc *services.TaxonomyService) *AdminTaxonomyController {
	return &AdminTaxonomyController{Svc: svc}
}

type taxonomyIn struct {
	Name string `json:"name" binding:"required"`
}

// POST /admin/categories
func (h *AdminTaxonomyController) CreateCategory(c *gin.Context) {
	var req taxonomyIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	out, err := h.Svc.CreateCategory(req.Name)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.Created(c, out)
}

// PUT /admin/categories/:id
func (h *AdminTaxonomyController) UpdateCategory(c *gin.Context) {
	id := parseUintParam(c, "id")
	if id == 0 {
		resp.BadRequest(c, "invalid category id")
		return
	}
	var req taxonomyIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	out, err := h.Svc.UpdateCategory(id, req.Name)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, out)
}

// DELETE /admin/categories/:id
func (h *AdminTaxonomyController) DeleteCategory(c *gin.Context) {
	id := parseUintParam(c, "id")
	if id == 0 {
		resp.BadRequest(c, "invalid category id")
		return
	}
	if err := h.Svc.DeleteCategory(id); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"ok": true})
}

// POST /admin/brands
func (h *AdminTaxonomyController) CreateBrand(c *gin.Context) {
	var req taxonomyIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	out, err := h.Svc.CreateBrand(req.Name)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.Created(c, out)
}

// PUT /admin/brands/:id
func (h *AdminTaxonomyController) UpdateBrand(c *gin.Context) {
	id := parseUintParam(c, "id")
	if id == 0 {
		resp.BadRequest(c, "invalid brand id")
		return
	}
	var req taxonomyIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	out, err := h.Svc.UpdateBrand(id, req.Name)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, out)
}

// DELETE /admin/brands/:id
func (h *AdminTaxonomyController) DeleteBrand(c *gin.Context) {
	id := parseUintParam(c, "id")
	if id == 0 {
		resp.BadRequest(c, "invalid brand id")
		return
	}
	if err := h.Svc.DeleteBrand(id); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"ok": true})
}
