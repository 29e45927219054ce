package routes

import (
	"github.com/gin-gonic/gin"

	cartControllers "github.com/ldquyen/QuickDish/controllers/cart"
)

func SetupCartRoutes(r *gin.Engine, deps Deps) {
	carts := r.Group("/cart")
	{
		carts.GET("", cartControllers.GetCart(deps.Carts))
		carts.POST("/items", cartControllers.AddCartItem(deps.Carts, deps.Store))
		carts.PUT("/items/:menu_id", cartControllers.UpdateCartItem(deps.Carts))
		carts.DELETE("/items/:menu_id", cartControllers.DeleteCartItem(deps.Carts))
		carts.DELETE("", cartControllers.ClearCart(deps.Carts))
	}
}
