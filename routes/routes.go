package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Rushikesh1Avachat/food-ordering-mains/configs"
	"github.com/Rushikesh1Avachat/food-ordering-mains/controllers"
	"github.com/Rushikesh1Avachat/food-ordering-mains/middlewares"
	"github.com/Rushikesh1Avachat/food-ordering-mains/payments"
	"github.com/Rushikesh1Avachat/food-ordering-mains/repository"
	"github.com/Rushikesh1Avachat/food-ordering-mains/services"
	"github.com/Rushikesh1Avachat/food-ordering-mains/ws"
)

// RegisterRoutes wires repositories, services and controllers and mounts the
// HTTP surface. The payment gateway and status hub are composed by main.
func RegisterRoutes(r *gin.Engine, cfg *configs.Config, db *gorm.DB, gateway payments.Gateway) *ws.StatusHub {
	r.Use(middlewares.CORSMiddleware())
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	checkoutRepo := repository.NewCheckoutRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	menuSvc := services.NewMenuService(menuRepo)
	cartSvc := services.NewCartService(db, cartRepo, menuRepo)
	checkoutSvc := services.NewCheckoutService(db, checkoutRepo, cartRepo, orderRepo, userRepo, gateway, cfg.Currency)

	hub := ws.NewStatusHub(checkoutSvc)
	checkoutSvc.Notifier = hub

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	menuCtrl := controllers.NewMenuController(menuSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	checkoutCtrl := controllers.NewCheckoutController(checkoutSvc)
	orderCtrl := controllers.NewOrderController(orderRepo)
	paymentCtrl := controllers.NewPaymentController(gateway, cfg.Currency, cfg.StripePublishableKey, cfg.MerchantDisplayName)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}

	// Auth (protected)
	aAuth := a.Group("", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		aAuth.GET("/me", authCtrl.Me)
		aAuth.PATCH("/me", authCtrl.UpdateMe)
	}

	// Catalog (public)
	r.GET("/categories", menuCtrl.Categories)
	r.GET("/menu", menuCtrl.List)
	r.GET("/menu/:id", menuCtrl.Detail)

	// Cart (user)
	cart := r.Group("/cart", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		cart.GET("", cartCtrl.Get)
		cart.POST("/items", cartCtrl.Add)
		cart.PATCH("/items/qty", cartCtrl.UpdateQty)
		cart.DELETE("/items", cartCtrl.RemoveItem)
		cart.DELETE("", cartCtrl.Clear)
	}

	// Checkout sessions (user)
	checkout := r.Group("/checkout", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		checkout.POST("", checkoutCtrl.Start)
		checkout.GET("/:id", checkoutCtrl.Detail)
		checkout.POST("/:id/present", checkoutCtrl.Present)
		checkout.POST("/:id/complete", checkoutCtrl.Complete)
	}

	// Orders (user)
	orders := r.Group("/orders", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		orders.GET("", orderCtrl.ListForMe)
		orders.GET("/:id", orderCtrl.Detail)
	}

	// Provider pass-through endpoints (client payment UI contract)
	pay := r.Group("/payments")
	{
		pay.GET("/config", paymentCtrl.Config)
		pay.POST("/create-payment-intent", paymentCtrl.CreateIntent)
		pay.POST("/payment-sheet", paymentCtrl.PaymentSheet)
		pay.POST("/pay", paymentCtrl.Pay)
		pay.POST("/create", paymentCtrl.Create)
	}

	// Checkout status stream
	r.GET("/ws/checkout/:id", middlewares.WSAuthMiddleware(cfg.JWTSecret), hub.HandleWebSocket)

	return hub
}
