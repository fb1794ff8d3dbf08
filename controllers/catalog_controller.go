package controllers

import (
	"strconv"

	"github.com/danish-manzoor/ecommerce-store-sub001/pkg/resp"
	"github.com/danish-manzoor/ecommerce-store-sub001/repository"
	"github.com/danish-manzoor/ecommerce-store-sub001/services"

	"github.com/gin-gonic/gin"
)

type CatalogController struct {
	Svc *services.CatalogService
}

func NewCatalogController(svc *services.CatalogService) *CatalogController {
	return &CatalogController{Svc: svc}
}

// GET /products?category=&brand=&q=&page=&pageSize=
func (h *CatalogController) ListProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	products, total, err := h.Svc.ListProducts(repository.ProductFilter{
		CategorySlug: c.Query("category"),
		BrandSlug:    c.Query("brand"),
		Search:       c.Query("q"),
		Limit:        pageSize,
		Offset:       (page - 1) * pageSize,
	})
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"products": products, "total": total, "page": page})
}

// GET /products/:slug
func (h *CatalogController) ProductDetail(c *gin.Context) {
	view, err := h.Svc.ProductDetail(c.Param("slug"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, view)
}

// POST /products/:slug/price — price/stock for an explicit option selection
func (h *CatalogController) Price(c *gin.Context) {
	var req struct {
		OptionIDs []uint `json:"optionIds" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	price, quantity, err := h.Svc.PriceFor(c.Param("slug"), req.OptionIDs)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"price": price, "quantity": quantity})
}

// GET /categories
func (h *CatalogController) Categories(c *gin.Context) {
	out, err := h.Svc.Categories()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /brands
func (h *CatalogController) Brands(c *gin.Context) {
	out, err := h.Svc.Brands()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}
