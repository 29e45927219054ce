package routes

import (
	"github.com/gin-gonic/gin"

	dashboardControllers "github.com/ldquyen/QuickDish/controllers/dashboard"
)

func SetupDashboardRoutes(r *gin.Engine, deps Deps) {
	dash := r.Group("/dashboard")
	{
		dash.GET("", dashboardControllers.GetDashboard(deps.Store))
		dash.GET("/export", dashboardControllers.ExportOrders(deps.Store))
	}
}
