package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"shopkart-backend/controllers"
	"shopkart-backend/middleware"
	"shopkart-backend/repositories"

	_ "shopkart-backend/docs"
)

// Setup mounts every route group onto the engine. Protected routes share
// one auth middleware instance built from the signing secret.
func Setup(r *gin.Engine, repos *repositories.Repositories, secret []byte) {
	authRequired := middleware.Auth(secret)

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Home Page"})
	})

	r.GET("/api-docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	user := controllers.NewUserController(repos.Users, secret)
	r.POST("/user/signup", user.Signup)
	r.POST("/user/login", user.Login)

	category := controllers.NewCategoryController(repos.Categories)
	r.GET("/category", category.List)
	r.POST("/category", category.Create)

	product := controllers.NewProductController(repos.Products)
	r.GET("/product", product.List)
	r.GET("/product/:id", product.GetByID)
	r.POST("/product", product.Create)
	r.PUT("/product/:id", authRequired, product.Update)
	r.DELETE("/product/:id", authRequired, product.Delete)

	cart := controllers.NewCartController(repos.Carts, repos.Products)
	r.GET("/cart", authRequired, cart.Get)
	r.POST("/cart/add/:productId", authRequired, cart.Add)
	r.DELETE("/cart/remove/:productId", authRequired, cart.Remove)

	order := controllers.NewOrderController(repos.Orders, repos.Products)
	r.POST("/order", authRequired, order.Place)
	r.GET("/order/history", authRequired, order.History)
	r.GET("/order/:orderId", authRequired, order.GetByID)
}
