package mockstore

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ldquyen/QuickDish/models"
)

// Register mounts the /Menu and /Order collections. The surface mirrors
// the hosted mock API the front-of-house talks to in production: plain
// JSON CRUD, ids assigned as incrementing numeric strings, 404 on any
// missing id.
func Register(r *gin.Engine, db *gorm.DB) {
	r.GET("/Menu", listMenus(db))
	r.GET("/Menu/:id", getMenu(db))
	r.POST("/Menu", createMenu(db))
	r.PUT("/Menu/:id", updateMenu(db))
	r.DELETE("/Menu/:id", deleteMenu(db))

	r.GET("/Order", listOrders(db))
	r.POST("/Order", createOrder(db))
	r.PUT("/Order/:id", updateOrder(db))
	r.DELETE("/Order/:id", deleteOrder(db))
}

func listMenus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var records []MenuRecord
		if err := db.Order("id").Find(&records).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch menus"})
			return
		}
		menus := make([]models.Menu, 0, len(records))
		for _, record := range records {
			menus = append(menus, record.ToModel())
		}
		c.JSON(http.StatusOK, menus)
	}
}

func getMenu(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var record MenuRecord
		if err := db.First(&record, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch menu"})
			return
		}
		c.JSON(http.StatusOK, record.ToModel())
	}
}

func createMenu(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.Menu
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		record := menuFromModel(input)
		if err := db.Create(&record).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create menu"})
			return
		}
		c.JSON(http.StatusCreated, record.ToModel())
	}
}

func updateMenu(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var record MenuRecord
		if err := db.First(&record, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch menu"})
			return
		}

		var input models.Menu
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		id := record.ID
		record = menuFromModel(input)
		record.ID = id
		if err := db.Save(&record).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update menu"})
			return
		}
		c.JSON(http.StatusOK, record.ToModel())
	}
}

func deleteMenu(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Delete(&MenuRecord{}, "id = ?", c.Param("id"))
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete menu"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Deleted"})
	}
}

func listOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var records []OrderRecord
		if err := db.Order("id").Find(&records).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		orders := make([]models.Order, 0, len(records))
		for _, record := range records {
			order, err := record.ToModel()
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Corrupt order record"})
				return
			}
			orders = append(orders, order)
		}
		c.JSON(http.StatusOK, orders)
	}
}

func createOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.Order
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		record, err := orderFromModel(input)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid items"})
			return
		}
		if err := db.Create(&record).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
			return
		}
		order, err := record.ToModel()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Corrupt order record"})
			return
		}
		c.JSON(http.StatusCreated, order)
	}
}

func updateOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var record OrderRecord
		if err := db.First(&record, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}

		var input models.Order
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		updated, err := orderFromModel(input)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid items"})
			return
		}
		updated.ID = record.ID
		if err := db.Save(&updated).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
			return
		}
		order, err := updated.ToModel()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Corrupt order record"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

func deleteOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Delete(&OrderRecord{}, "id = ?", c.Param("id"))
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete order"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Deleted"})
	}
}
