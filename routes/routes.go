package routes

import (
	"github.com/danish-manzoor/ecommerce-store-sub001/configs"
	"github.com/danish-manzoor/ecommerce-store-sub001/controllers"
	"github.com/danish-manzoor/ecommerce-store-sub001/middlewares"
	"github.com/danish-manzoor/ecommerce-store-sub001/repository"
	"github.com/danish-manzoor/ecommerce-store-sub001/services"
	"github.com/danish-manzoor/ecommerce-store-sub001/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, hub *ws.OrderHub) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	variationRepo := repository.NewVariationRepository(db)
	cartRepo := repository.NewCartRepository(db)
	wishlistRepo := repository.NewWishlistRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	taxonomyRepo := repository.NewTaxonomyRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	migrationSvc := services.NewMigrationService(cartRepo, wishlistRepo)
	catalogSvc := services.NewCatalogService(productRepo, taxonomyRepo)
	checkoutSvc := services.NewCheckoutService(db, orderRepo, cartRepo, hub)
	productAdminSvc := services.NewProductAdminService(db, productRepo, variationRepo)
	taxonomySvc := services.NewTaxonomyService(taxonomyRepo)
	orderAdminSvc := services.NewOrderAdminService(orderRepo)
	exportSvc := services.NewExportService(db)

	stores := &controllers.StoreFactory{
		Carts:    cartRepo,
		Wishlist: wishlistRepo,
		Products: productRepo,
		Options:  variationRepo,
	}

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc, migrationSvc)
	catalogCtrl := controllers.NewCatalogController(catalogSvc)
	cartCtrl := controllers.NewCartController(stores)
	wishlistCtrl := controllers.NewWishlistController(stores)
	checkoutCtrl := controllers.NewCheckoutController(checkoutSvc, stores)
	orderCtrl := controllers.NewOrderController(orderRepo)
	adminProductCtrl := controllers.NewAdminProductController(productAdminSvc)
	adminTaxonomyCtrl := controllers.NewAdminTaxonomyController(taxonomySvc)
	adminOrderCtrl := controllers.NewAdminOrderController(orderAdminSvc, exportSvc)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}

	// Auth (protected)
	aAuth := a.Group("", middlewares.AuthMiddleware())
	{
		aAuth.GET("/me", authCtrl.Me)
		aAuth.PATCH("/me", authCtrl.UpdateMe)
	}

	// Catalog (public)
	r.GET("/products", catalogCtrl.ListProducts)
	r.GET("/products/:slug", catalogCtrl.ProductDetail)
	r.POST("/products/:slug/price", catalogCtrl.Price)
	r.GET("/categories", catalogCtrl.Categories)
	r.GET("/brands", catalogCtrl.Brands)

	// Cart & wishlist: anonymous via cookie, authenticated via DB
	shop := r.Group("/", middlewares.OptionalAuth())
	{
		shop.GET("/cart", cartCtrl.Get)
		shop.POST("/cart/items", cartCtrl.Add)
		shop.PATCH("/cart/items", cartCtrl.UpdateQuantity)
		shop.DELETE("/cart/items", cartCtrl.Remove)
		shop.DELETE("/cart", cartCtrl.Clear)

		shop.GET("/wishlist", wishlistCtrl.Get)
		shop.POST("/wishlist", wishlistCtrl.Add)
		shop.DELETE("/wishlist/:productId", wishlistCtrl.Remove)
	}

	// Checkout & orders (customer)
	u := r.Group("/", middlewares.AuthMiddleware("customer"))
	{
		u.POST("/checkout/billing", checkoutCtrl.SaveBilling)
		u.POST("/checkout/shipping", checkoutCtrl.SaveShipping)
		u.POST("/checkout/place", checkoutCtrl.PlaceOrder)

		u.GET("/orders", orderCtrl.ListForMe)
		u.GET("/orders/:id", orderCtrl.Detail)
	}

	// Admin back-office
	admin := r.Group("/admin", middlewares.AuthMiddleware("admin"))
	{
		admin.POST("/products", adminProductCtrl.Create)
		admin.PUT("/products/:id", adminProductCtrl.Update)
		admin.DELETE("/products/:id", adminProductCtrl.Delete)
		admin.GET("/products/:id/matrix", adminProductCtrl.Matrix)
		admin.PUT("/products/:id/matrix", adminProductCtrl.SaveMatrix)

		admin.POST("/categories", adminTaxonomyCtrl.CreateCategory)
		admin.PUT("/categories/:id", adminTaxonomyCtrl.UpdateCategory)
		admin.DELETE("/categories/:id", adminTaxonomyCtrl.DeleteCategory)
		admin.POST("/brands", adminTaxonomyCtrl.CreateBrand)
		admin.PUT("/brands/:id", adminTaxonomyCtrl.UpdateBrand)
		admin.DELETE("/brands/:id", adminTaxonomyCtrl.DeleteBrand)

		admin.GET("/orders", adminOrderCtrl.List)
		admin.GET("/orders/:id", adminOrderCtrl.Detail)
		admin.PATCH("/orders/:id/status", adminOrderCtrl.UpdateStatus)
		admin.GET("/export/orders", adminOrderCtrl.ExportOrders)
		admin.GET("/export/products", adminOrderCtrl.ExportProducts)
	}

	// Live order feed for the back-office
	r.GET("/ws/admin/orders", middlewares.AuthMiddleware("admin"), hub.HandleWebSocket)
}
