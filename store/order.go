package store

import (
	"context"
	"net/http"

	"github.com/ldquyen/QuickDish/models"
)

func (c *Client) GetAllOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := c.do(ctx, "get orders", http.MethodGet, "/Order", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) CreateOrder(ctx context.Context, order models.Order) (*models.Order, error) {
	var created models.Order
	if err := c.do(ctx, "create order", http.MethodPost, "/Order", order, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateOrder(ctx context.Context, id string, order models.Order) (*models.Order, error) {
	var updated models.Order
	if err := c.do(ctx, "update order", http.MethodPut, "/Order/"+id, order, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteOrder(ctx context.Context, id string) error {
	return c.do(ctx, "delete order", http.MethodDelete, "/Order/"+id, nil, nil)
}
