package models

// Menu categories as stored in the remote collection.
const (
	CategoryMainCourse = "Main course"
	CategorySideDishes = "Side dishes"
	CategoryDrinks     = "Drinks"
)

// Menu is a sellable dish or drink. Field names match the remote store's
// JSON documents, so a fetched record round-trips unchanged.
type Menu struct {
	MenuID      string  `json:"MenuID"`
	Name        string  `json:"Name"`
	Description string  `json:"Description"`
	Category    string  `json:"Category"`
	Price       float64 `json:"Price"`
	Quantity    int     `json:"Quantity"`
	URLImage    string  `json:"URLImage"`
	Ingredients string  `json:"Ingredients"`
	IsActive    bool    `json:"IsActive"`
}

type CreateMenuRequest struct {
	Name        string  `json:"Name" binding:"required"`
	Description string  `json:"Description"`
	Category    string  `json:"Category" binding:"required"`
	Price       float64 `json:"Price" binding:"min=0"`
	Quantity    int     `json:"Quantity" binding:"min=0"`
	URLImage    string  `json:"URLImage"`
	Ingredients string  `json:"Ingredients"`
	IsActive    bool    `json:"IsActive"`
}
