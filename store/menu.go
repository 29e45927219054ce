package store

import (
	"context"
	"net/http"

	"github.com/ldquyen/QuickDish/models"
)

func (c *Client) GetAllMenus(ctx context.Context) ([]models.Menu, error) {
	var menus []models.Menu
	if err := c.do(ctx, "get menus", http.MethodGet, "/Menu", nil, &menus); err != nil {
		return nil, err
	}
	return menus, nil
}

func (c *Client) GetMenu(ctx context.Context, id string) (*models.Menu, error) {
	var menu models.Menu
	if err := c.do(ctx, "get menu", http.MethodGet, "/Menu/"+id, nil, &menu); err != nil {
		return nil, err
	}
	return &menu, nil
}

func (c *Client) CreateMenu(ctx context.Context, menu models.Menu) (*models.Menu, error) {
	var created models.Menu
	if err := c.do(ctx, "create menu", http.MethodPost, "/Menu", menu, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateMenu(ctx context.Context, id string, menu models.Menu) (*models.Menu, error) {
	var updated models.Menu
	if err := c.do(ctx, "update menu", http.MethodPut, "/Menu/"+id, menu, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteMenu(ctx context.Context, id string) error {
	return c.do(ctx, "delete menu", http.MethodDelete, "/Menu/"+id, nil, nil)
}
