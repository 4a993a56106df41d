package main

import (
	"gin-storefront/controllers"
	"gin-storefront/infra"
	"gin-storefront/middlewares"
	"gin-storefront/repositories"
	"gin-storefront/services"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func setupRouter(db *gorm.DB, sessionService services.ISessionService) *gin.Engine {
	authRepository := repositories.NewAuthRepository(db)
	productRepository := repositories.NewProductRepository(db)
	orderRepository := repositories.NewOrderRepository(db)
	userRepository := repositories.NewUserRepository(db)

	authService := services.NewAuthService(authRepository, services.BcryptHasher{})
	adminGate := services.NewAdminGate(authRepository)
	productService := services.NewProductService(productRepository)
	cartService := services.NewCartService(productRepository)
	orderService := services.NewOrderService(orderRepository)
	userService := services.NewUserService(userRepository)
	dashboardService := services.NewDashboardService(productRepository, orderRepository, authRepository)

	authController := controllers.NewAuthController(authService, sessionService)
	productController := controllers.NewProductController(productService)
	cartController := controllers.NewCartController(cartService, sessionService)
	orderController := controllers.NewOrderController(orderService, sessionService)
	userController := controllers.NewUserController(userService)
	adminController := controllers.NewAdminController(dashboardService)

	r := gin.Default()
	r.Use(cors.Default())
	r.Use(middlewares.SessionMiddleware(sessionService))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/", productController.FindAll)
	r.GET("/register", authController.RegisterForm)
	r.POST("/register", authController.Register)
	r.GET("/login", authController.LoginForm)
	r.POST("/login", authController.Login)
	r.GET("/logout", authController.Logout)

	r.GET("/add_to_cart/:product_id", cartController.AddToCart)
	r.GET("/cart", cartController.View)
	// 空カートの判定より先にログインを確認する
	r.GET("/checkout", middlewares.LoginRequired(), orderController.Checkout)
	r.GET("/orders", middlewares.LoginRequired(), orderController.History)

	adminRouter := r.Group("/admin", middlewares.AdminRequired(adminGate))
	adminRouter.GET("", adminController.Dashboard)
	adminRouter.GET("/products", productController.FindAll)
	adminRouter.GET("/products/add", productController.AddForm)
	adminRouter.POST("/products/add", productController.Create)
	adminRouter.GET("/products/edit/:id", productController.Edit)
	adminRouter.POST("/products/edit/:id", productController.Update)
	adminRouter.GET("/products/delete/:id", productController.Delete)
	adminRouter.GET("/users", userController.FindAll)
	adminRouter.GET("/users/delete/:id", userController.Delete)

	return r
}

func newSessionService(sessionDB *gorm.DB, cfg infra.Config) services.ISessionService {
	sessionRepository := repositories.NewSessionRepository(sessionDB)
	return services.NewSessionService(sessionRepository, []byte(cfg.Server.SecretKey), cfg.Server.SessionTTL)
}
