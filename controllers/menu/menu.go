package menuControllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ldquyen/QuickDish/models"
	"github.com/ldquyen/QuickDish/store"
)

// GET /menus
// Listing filters run in memory over the full collection: the remote store
// has no query parameters.
func GetMenus(client *store.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		search := strings.ToLower(c.Query("search"))
		category := c.Query("category")
		minPriceStr := c.Query("min_price")
		maxPriceStr := c.Query("max_price")

		var minPrice, maxPrice float64
		var hasMin, hasMax bool
		if minPriceStr != "" {
			mp, err := strconv.ParseFloat(minPriceStr, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid min_price"})
				return
			}
			minPrice, hasMin = mp, true
		}
		if maxPriceStr != "" {
			mp, err := strconv.ParseFloat(maxPriceStr, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid max_price"})
				return
			}
			maxPrice, hasMax = mp, true
		}

		menus, err := client.GetAllMenus(c.Request.Context())
		if err != nil {
			respondStoreError(c, err)
			return
		}

		filtered := make([]models.Menu, 0, len(menus))
		for _, menu := range menus {
			if search != "" && !strings.Contains(strings.ToLower(menu.Name), search) {
				continue
			}
			if category != "" && menu.Category != category {
				continue
			}
			if hasMin && menu.Price < minPrice {
				continue
			}
			if hasMax && menu.Price > maxPrice {
				continue
			}
			filtered = append(filtered, menu)
		}

		c.JSON(http.StatusOK, filtered)
	}
}

// GET /menus/:id
func GetMenu(client *store.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		menu, err := client.GetMenu(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondStoreError(c, err)
			return
		}
		c.JSON(http.StatusOK, menu)
	}
}

// POST /menus
func CreateMenu(client *store.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.CreateMenuRequest
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		created, err := client.CreateMenu(c.Request.Context(), models.Menu{
			Name:        input.Name,
			Description: input.Description,
			Category:    input.Category,
			Price:       input.Price,
			Quantity:    input.Quantity,
			URLImage:    input.URLImage,
			Ingredients: input.Ingredients,
			IsActive:    input.IsActive,
		})
		if err != nil {
			respondStoreError(c, err)
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

// PUT /menus/:id
func UpdateMenu(client *store.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.Menu
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		input.MenuID = c.Param("id")

		updated, err := client.UpdateMenu(c.Request.Context(), input.MenuID, input)
		if err != nil {
			respondStoreError(c, err)
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

// DELETE /menus/:id
func DeleteMenu(client *store.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := client.DeleteMenu(c.Request.Context(), c.Param("id")); err != nil {
			respondStoreError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Menu deleted"})
	}
}

func respondStoreError(c *gin.Context, err error) {
	var storeErr *store.Error
	if errors.As(err, &storeErr) {
		if storeErr.StatusCode == http.StatusNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Menu not found"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "Remote store request failed"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
