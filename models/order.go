package models

type OrderStatus string

const (
	// Order statuses (front-of-house flow)
	OrderStatusProcessing OrderStatus = "Processing" // Submitted, kitchen is working on it
	OrderStatusServing    OrderStatus = "Serving"    // Every item delivered to the table
	OrderStatusPaid       OrderStatus = "Paid"       // Payment confirmed, order closed
)

// ItemDetail is a snapshot of a menu item inside a cart or order. Once an
// order is submitted the snapshot never changes except for IsServed.
type ItemDetail struct {
	MenuID     string  `json:"MenuID"`
	Name       string  `json:"Name"`
	Quantity   int     `json:"Quantity"`
	Price      float64 `json:"Price"`
	TotalPrice float64 `json:"TotalPrice"`
	IsServed   bool    `json:"IsServed"`
}

// Order is a submitted pre-order tied to a table. OrderID is assigned by
// the remote store on creation and is empty before submission.
// TotalAmount equals the sum of the item totals at creation time.
type Order struct {
	OrderID     string       `json:"OrderID"`
	Table       string       `json:"Table"`
	Items       []ItemDetail `json:"Items"`
	TotalAmount float64      `json:"TotalAmount"`
	Status      OrderStatus  `json:"Status"`
	CreatedAt   int64        `json:"CreatedAt"` // seconds since epoch
	UpdatedAt   int64        `json:"UpdatedAt"`
	Note        string       `json:"Note,omitempty"`
}
