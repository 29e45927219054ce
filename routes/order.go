package routes

import (
	"github.com/gin-gonic/gin"

	orderControllers "github.com/ldquyen/QuickDish/controllers/order"
)

func SetupOrderRoutes(r *gin.Engine, deps Deps) {
	orders := r.Group("/orders")
	{
		// Submit the session cart as a new order
		orders.POST("", orderControllers.SubmitOrder(deps.Orders, deps.Carts))

		// Order list for the checkout screen
		orders.GET("", orderControllers.GetOrders(deps.Store))

		// Serving-status edits (re-derives the order status)
		orders.PUT("/:id/served", orderControllers.UpdateItemServed(deps.Orders, deps.Store))

		// Checkout
		orders.GET("/:id/qr", orderControllers.GetOrderQR(deps.Store, deps.QR))
		orders.PUT("/:id/payment", orderControllers.ConfirmPayment(deps.Orders, deps.Store))

		// Administrative delete
		orders.DELETE("/:id", orderControllers.DeleteOrder(deps.Store))
	}
}
