package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/ldquyen/QuickDish/cart"
	"github.com/ldquyen/QuickDish/orders"
	"github.com/ldquyen/QuickDish/payment"
	"github.com/ldquyen/QuickDish/store"
)

// Deps carries everything the handlers need.
type Deps struct {
	Store  *store.Client
	Carts  *cart.Store
	Orders *orders.Service
	QR     payment.QR
}

// SetupRoutes is the single entry-point that wires up all route groups.
func SetupRoutes(r *gin.Engine, deps Deps) {
	SetupMenuRoutes(r, deps)
	SetupCartRoutes(r, deps)
	SetupOrderRoutes(r, deps)
	SetupDashboardRoutes(r, deps)
}
