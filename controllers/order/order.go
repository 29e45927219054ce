package orderControllers

import (
	"errors"
	"math"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ldquyen/QuickDish/cart"
	"github.com/ldquyen/QuickDish/models"
	"github.com/ldquyen/QuickDish/orders"
	"github.com/ldquyen/QuickDish/payment"
	"github.com/ldquyen/QuickDish/store"
)

const sessionCookie = "cart_session"

// -------- Request Structs --------

type SubmitOrderInput struct {
	Table string `json:"table" binding:"required"`
	Note  string `json:"note"`
}

type ServedInput struct {
	MenuID   string `json:"menu_id" binding:"required"`
	IsServed *bool  `json:"is_served" binding:"required"`
}

// POST /orders
// Submits the session cart as a new order. The cart is cleared only after
// the store accepts the order, so a failed submission can be retried.
func SubmitOrder(svc *orders.Service, carts *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input SubmitOrderInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		session, err := c.Cookie(sessionCookie)
		if err != nil || session == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
			return
		}

		snapshot := carts.Snapshot(session)
		created, err := svc.Submit(c.Request.Context(), session, input.Table, snapshot.Items, input.Note)
		if err != nil {
			respondErr(c, err)
			return
		}

		carts.Drop(session)
		c.JSON(http.StatusCreated, created)
	}
}

// GET /orders
// Supports table substring search, status filter and pagination; newest
// orders first.
func GetOrders(client *store.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		searchTable := strings.ToLower(c.Query("table"))
		filterStatus := c.Query("status")
		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
		if page < 1 {
			page = 1
		}
		if limit < 1 {
			limit = 10
		}

		all, err := client.GetAllOrders(c.Request.Context())
		if err != nil {
			respondErr(c, err)
			return
		}

		filtered := make([]models.Order, 0, len(all))
		for _, order := range all {
			if searchTable != "" && !strings.Contains(strings.ToLower(order.Table), searchTable) {
				continue
			}
			if filterStatus != "" && order.Status != models.OrderStatus(filterStatus) {
				continue
			}
			filtered = append(filtered, order)
		}
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].CreatedAt > filtered[j].CreatedAt
		})

		totalPages := int(math.Ceil(float64(len(filtered)) / float64(limit)))
		start := (page - 1) * limit
		if start > len(filtered) {
			start = len(filtered)
		}
		end := start + limit
		if end > len(filtered) {
			end = len(filtered)
		}

		c.JSON(http.StatusOK, gin.H{
			"orders":      filtered[start:end],
			"total":       len(filtered),
			"page":        page,
			"total_pages": totalPages,
		})
	}
}

// PUT /orders/:id/served
// Flips one item's served flag; the order status is re-derived on save, so
// marking the last outstanding item promotes Processing to Serving.
func UpdateItemServed(svc *orders.Service, client *store.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ServedInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		order, err := findOrder(c, client, c.Param("id"))
		if err != nil {
			return
		}

		updated, err := svc.UpdateItemServed(c.Request.Context(), *order, input.MenuID, *input.IsServed)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

// PUT /orders/:id/payment
func ConfirmPayment(svc *orders.Service, client *store.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, err := findOrder(c, client, c.Param("id"))
		if err != nil {
			return
		}

		updated, err := svc.ConfirmPayment(c.Request.Context(), *order)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

// GET /orders/:id/qr
// Returns the transfer QR payload for checkout. A paid order has nothing
// left to collect.
func GetOrderQR(client *store.Client, qr payment.QR) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, err := findOrder(c, client, c.Param("id"))
		if err != nil {
			return
		}
		if order.Status == models.OrderStatusPaid {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Order is already paid"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"qr_url":       qr.ImageURL(order.TotalAmount),
			"bank":         qr.Bank,
			"account":      qr.Account,
			"account_name": qr.AccountName,
			"amount":       order.TotalAmount,
		})
	}
}

// DELETE /orders/:id
// Administrative passthrough; the lifecycle itself never deletes orders.
func DeleteOrder(client *store.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := client.DeleteOrder(c.Request.Context(), c.Param("id")); err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order deleted"})
	}
}

// -------- Helpers --------

// findOrder loads the order by id from the full collection; the remote
// store exposes no per-id Order endpoint. Writes the error response itself
// and returns nil when the caller should bail out.
func findOrder(c *gin.Context, client *store.Client, id string) (*models.Order, error) {
	all, err := client.GetAllOrders(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return nil, err
	}
	for i := range all {
		if all[i].OrderID == id {
			return &all[i], nil
		}
	}
	err = errors.New("order not found")
	c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
	return nil, err
}

func respondErr(c *gin.Context, err error) {
	var validationErr *models.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Msg})
		return
	}
	var storeErr *store.Error
	if errors.As(err, &storeErr) {
		if storeErr.StatusCode == http.StatusNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "Remote store request failed"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
