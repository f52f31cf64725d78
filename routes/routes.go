package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shopnest/ecommerce-api/controllers"
	"github.com/shopnest/ecommerce-api/repository"
)

// SetupRoutes mounts the entity endpoints on the root router.
func SetupRoutes(r *gin.Engine, gw *repository.Gateway) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	admins := repository.NewAdminRepository(gw)
	r.POST("/admins", controllers.CreateAdmin(admins))
	r.GET("/admins", controllers.ListAdmins(admins))
	r.GET("/admins/:id", controllers.GetAdmin(admins))
	r.PUT("/admins/:id", controllers.UpdateAdmin(admins))
	r.DELETE("/admins/:id", controllers.DeleteAdmin(admins))

	users := repository.NewUserRepository(gw)
	r.POST("/users", controllers.CreateUser(users))
	r.GET("/users", controllers.ListUsers(users))
	r.GET("/users/:id", controllers.GetUser(users))
	r.PUT("/users/:id", controllers.UpdateUser(users))
	r.DELETE("/users/:id", controllers.DeleteUser(users))

	products := repository.NewProductRepository(gw)
	r.POST("/products", controllers.CreateProduct(products))
	r.GET("/products", controllers.ListProducts(products))
	r.GET("/products/:id", controllers.GetProduct(products))
	r.PUT("/products/:id", controllers.UpdateProduct(products))
	r.DELETE("/products/:id", controllers.DeleteProduct(products))

	categories := repository.NewCategoryRepository(gw)
	r.POST("/categories", controllers.CreateCategory(categories))
	r.GET("/categories", controllers.ListCategories(categories))
	r.GET("/categories/:id", controllers.GetCategory(categories))
	r.PUT("/categories/:id", controllers.UpdateCategory(categories))
	r.DELETE("/categories/:id", controllers.DeleteCategory(categories))

	carts := repository.NewCartRepository(gw)
	r.POST("/carts", controllers.CreateCart(carts))
	r.GET("/carts", controllers.ListCarts(carts))
	r.GET("/carts/:id", controllers.GetCart(carts))
	r.PUT("/carts/:id", controllers.UpdateCart(carts))
	r.DELETE("/carts/:id", controllers.DeleteCart(carts))

	orders := repository.NewOrderRepository(gw)
	r.POST("/orders", controllers.CreateOrder(orders))
	r.GET("/orders", controllers.ListOrders(orders))
	r.GET("/orders/:id", controllers.GetOrder(orders))
	r.PUT("/orders/:id", controllers.UpdateOrder(orders))
	r.DELETE("/orders/:id", controllers.DeleteOrder(orders))

	payments := repository.NewPaymentRepository(gw)
	r.POST("/payments", controllers.CreatePayment(payments))
	r.GET("/payments", controllers.ListPayments(payments))
	r.GET("/payments/:id", controllers.GetPayment(payments))
	r.PUT("/payments/:id", controllers.UpdatePayment(payments))
	r.DELETE("/payments/:id", controllers.DeletePayment(payments))

	deliveries := repository.NewDeliveryRepository(gw)
	r.POST("/deliveries", controllers.CreateDelivery(deliveries))
	r.GET("/deliveries", controllers.ListDeliveries(deliveries))
	r.GET("/deliveries/:id", controllers.GetDelivery(deliveries))
	r.PUT("/deliveries/:id", controllers.UpdateDelivery(deliveries))
	r.DELETE("/deliveries/:id", controllers.DeleteDelivery(deliveries))
}
