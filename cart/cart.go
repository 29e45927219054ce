package cart

import "github.com/ldquyen/QuickDish/models"

// Cart holds the pre-order lines for one session before submission.
// There is at most one line per menu id: adding an item that is already
// present grows its quantity instead of appending a duplicate.
type Cart struct {
	Items []models.ItemDetail `json:"Items"`
}

// AddItem merges quantity of menu into the cart. Quantity is assumed
// positive by the caller.
func (c *Cart) AddItem(menu models.Menu, quantity int) {
	for i := range c.Items {
		if c.Items[i].MenuID == menu.MenuID {
			c.Items[i].Quantity += quantity
			c.Items[i].TotalPrice = float64(c.Items[i].Quantity) * c.Items[i].Price
			return
		}
	}
	c.Items = append(c.Items, models.ItemDetail{
		MenuID:     menu.MenuID,
		Name:       menu.Name,
		Quantity:   quantity,
		Price:      menu.Price,
		TotalPrice: float64(quantity) * menu.Price,
		IsServed:   false,
	})
}

// RemoveItem drops the line for menuID. No-op if absent.
func (c *Cart) RemoveItem(menuID string) {
	for i := range c.Items {
		if c.Items[i].MenuID == menuID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

// SetQuantity updates a line's quantity and total. A quantity of zero or
// less removes the line.
func (c *Cart) SetQuantity(menuID string, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(menuID)
		return
	}
	for i := range c.Items {
		if c.Items[i].MenuID == menuID {
			c.Items[i].Quantity = quantity
			c.Items[i].TotalPrice = float64(quantity) * c.Items[i].Price
			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.Items = nil
}

// TotalAmount sums all line totals. Zero for an empty cart.
func (c *Cart) TotalAmount() float64 {
	var total float64
	for _, item := range c.Items {
		total += item.TotalPrice
	}
	return total
}
