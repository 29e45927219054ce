package routes

import (
	"github.com/gin-gonic/gin"

	menuControllers "github.com/ldquyen/QuickDish/controllers/menu"
)

func SetupMenuRoutes(r *gin.Engine, deps Deps) {
	menus := r.Group("/menus")
	{
		// Browse the menu with optional filters
		menus.GET("", menuControllers.GetMenus(deps.Store))
		menus.GET("/:id", menuControllers.GetMenu(deps.Store))

		// Menu management (proxied to the remote store)
		menus.POST("", menuControllers.CreateMenu(deps.Store))
		menus.PUT("/:id", menuControllers.UpdateMenu(deps.Store))
		menus.DELETE("/:id", menuControllers.DeleteMenu(deps.Store))
	}
}
