package mockstore

import (
	"encoding/json"
	"strconv"

	"github.com/ldquyen/QuickDish/models"
)

// MenuRecord is the database row behind the /Menu collection.
type MenuRecord struct {
	ID          uint `gorm:"primaryKey;autoIncrement"`
	Name        string
	Description string
	Category    string
	Price       float64
	Quantity    int
	URLImage    string
	Ingredients string
	IsActive    bool
}

func (MenuRecord) TableName() string { return "menus" }

// OrderRecord is the database row behind the /Order collection. Item
// snapshots are kept as a JSON blob; the store never looks inside them.
type OrderRecord struct {
	ID          uint   `gorm:"primaryKey;autoIncrement"`
	TableLabel  string `gorm:"column:table_label"`
	Items       string `gorm:"type:text"`
	TotalAmount float64
	Status      string
	CreatedUnix int64
	UpdatedUnix int64
	Note        string
}

func (OrderRecord) TableName() string { return "orders" }

func menuFromModel(menu models.Menu) MenuRecord {
	return MenuRecord{
		Name:        menu.Name,
		Description: menu.Description,
		Category:    menu.Category,
		Price:       menu.Price,
		Quantity:    menu.Quantity,
		URLImage:    menu.URLImage,
		Ingredients: menu.Ingredients,
		IsActive:    menu.IsActive,
	}
}

func (r MenuRecord) ToModel() models.Menu {
	return models.Menu{
		MenuID:      strconv.FormatUint(uint64(r.ID), 10),
		Name:        r.Name,
		Description: r.Description,
		Category:    r.Category,
		Price:       r.Price,
		Quantity:    r.Quantity,
		URLImage:    r.URLImage,
		Ingredients: r.Ingredients,
		IsActive:    r.IsActive,
	}
}

func orderFromModel(order models.Order) (OrderRecord, error) {
	items, err := json.Marshal(order.Items)
	if err != nil {
		return OrderRecord{}, err
	}
	return OrderRecord{
		TableLabel:  order.Table,
		Items:       string(items),
		TotalAmount: order.TotalAmount,
		Status:      string(order.Status),
		CreatedUnix: order.CreatedAt,
		UpdatedUnix: order.UpdatedAt,
		Note:        order.Note,
	}, nil
}

func (r OrderRecord) ToModel() (models.Order, error) {
	var items []models.ItemDetail
	if r.Items != "" {
		if err := json.Unmarshal([]byte(r.Items), &items); err != nil {
			return models.Order{}, err
		}
	}
	return models.Order{
		OrderID:     strconv.FormatUint(uint64(r.ID), 10),
		Table:       r.TableLabel,
		Items:       items,
		TotalAmount: r.TotalAmount,
		Status:      models.OrderStatus(r.Status),
		CreatedAt:   r.CreatedUnix,
		UpdatedAt:   r.UpdatedUnix,
		Note:        r.Note,
	}, nil
}
