package controllers

import (
	"log"

	"github.com/danish-manzoor/ecommerce-store-sub001/pkg/resp"
	"github.com/danish-manzoor/ecommerce-store-sub001/services"
	"github.com/danish-manzoor/ecommerce-store-sub001/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Svc      *services.AuthService
	Migrator *services.MigrationService
}

func NewAuthController(svc *services.AuthService, migrator *services.MigrationService) *AuthController {
	return &AuthController{Svc: svc, Migrator: migrator}
}

// POST /auth/register
func (h *AuthController) Register(c *gin.Context) {
	var req struct {
		Email     string `json:"email" binding:"required,email"`
		Password  string `json:"password" binding:"required,min=8"`
		FirstName string `json:"firstName" binding:"required"`
		LastName  string `json:"lastName"`
		Phone     string `json:"phone"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := h.Svc.Register(req.Email, req.Password, req.FirstName, req.LastName, req.Phone)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.Created(c, user)
}

// POST /auth/login
//
// A successful customer login folds the anonymous cookie cart/wishlist into
// the account before the response goes out. The role check runs first: an
// admin session never absorbs a browsing cart.
func (h *AuthController) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, user, err := h.Svc.Login(req.Email, req.Password)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	if user.Role == "customer" {
		jar := utils.NewGinJar(c)
		if err := h.Migrator.MigrateCart(jar, user.ID); err != nil {
			log.Printf("cart migration failed for user %d: %v", user.ID, err)
		}
		if err := h.Migrator.MigrateWishlist(jar, user.ID); err != nil {
			log.Printf("wishlist migration failed for user %d: %v", user.ID, err)
		}
	}

	resp.OK(c, gin.H{"token": token, "user": user})
}

// GET /auth/me
func (h *AuthController) Me(c *gin.Context) {
	user, err := h.Svc.GetProfile(utils.CurrentUserID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, user)
}

// PATCH /auth/me
func (h *AuthController) UpdateMe(c *gin.Context) {
	var req struct {
		FirstName *string `json:"firstName"`
		LastName  *string `json:"lastName"`
		Phone     *string `json:"phone"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	updates := map[string]any{}
	if req.FirstName != nil {
		updates["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		updates["last_name"] = *req.LastName
	}
	if req.Phone != nil {
		updates["phone_number"] = *req.Phone
	}

	user, err := h.Svc.UpdateProfile(utils.CurrentUserID(c), updates)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, user)
}
