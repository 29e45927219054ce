package cartControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ldquyen/QuickDish/cart"
	"github.com/ldquyen/QuickDish/store"
)

const sessionCookie = "cart_session"

type AddItemInput struct {
	MenuID   string `json:"menu_id" binding:"required"`
	Quantity int    `json:"quantity" binding:"required,min=1"`
}

type SetQuantityInput struct {
	Quantity int `json:"quantity"`
}

// sessionID reads the cart session cookie, minting one on first contact.
func sessionID(c *gin.Context) string {
	if id, err := c.Cookie(sessionCookie); err == nil && id != "" {
		return id
	}
	id := uuid.NewString()
	c.SetCookie(sessionCookie, id, 0, "/", "", false, true)
	return id
}

// GET /cart
func GetCart(carts *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		snapshot := carts.Snapshot(sessionID(c))
		c.JSON(http.StatusOK, gin.H{
			"Items":       snapshot.Items,
			"TotalAmount": snapshot.TotalAmount(),
		})
	}
}

// POST /cart/items
// The menu snapshot (name, unit price) is taken at add time; later menu
// edits do not touch lines already in a cart.
func AddCartItem(carts *cart.Store, client *store.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		menu, err := client.GetMenu(c.Request.Context(), input.MenuID)
		if err != nil {
			var storeErr *store.Error
			if errors.As(err, &storeErr) && storeErr.StatusCode == http.StatusNotFound {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Menu does not exist"})
				return
			}
			c.JSON(http.StatusBadGateway, gin.H{"error": "Remote store request failed"})
			return
		}
		if !menu.IsActive {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Menu is not available"})
			return
		}

		session := sessionID(c)
		carts.Update(session, func(cr *cart.Cart) {
			cr.AddItem(*menu, input.Quantity)
		})

		snapshot := carts.Snapshot(session)
		c.JSON(http.StatusOK, gin.H{
			"Items":       snapshot.Items,
			"TotalAmount": snapshot.TotalAmount(),
		})
	}
}

// PUT /cart/items/:menu_id
// A quantity of zero or less removes the line.
func UpdateCartItem(carts *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input SetQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		session := sessionID(c)
		carts.Update(session, func(cr *cart.Cart) {
			cr.SetQuantity(c.Param("menu_id"), input.Quantity)
		})

		snapshot := carts.Snapshot(session)
		c.JSON(http.StatusOK, gin.H{
			"Items":       snapshot.Items,
			"TotalAmount": snapshot.TotalAmount(),
		})
	}
}

// DELETE /cart/items/:menu_id
func DeleteCartItem(carts *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessionID(c)
		carts.Update(session, func(cr *cart.Cart) {
			cr.RemoveItem(c.Param("menu_id"))
		})
		c.JSON(http.StatusOK, gin.H{"message": "Cart item removed"})
	}
}

// DELETE /cart
func ClearCart(carts *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		carts.Update(sessionID(c), func(cr *cart.Cart) {
			cr.Clear()
		})
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}
