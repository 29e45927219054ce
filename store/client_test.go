package store

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ldquyen/QuickDish/models"
)

func TestCreateOrderRoundTrip(t *testing.T) {
	var received models.Order
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/Order", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		received.OrderID = "7"

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(received)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	order := models.Order{
		Table: "B5",
		Items: []models.ItemDetail{
			{MenuID: "m1", Name: "Pho Bo", Quantity: 2, Price: 45000, TotalPrice: 90000},
		},
		TotalAmount: 90000,
		Status:      models.OrderStatusProcessing,
		CreatedAt:   1_700_000_000,
		UpdatedAt:   1_700_000_000,
	}

	created, err := client.CreateOrder(context.Background(), order)
	require.NoError(t, err)

	assert.Equal(t, "7", created.OrderID)
	assert.Equal(t, order.Table, created.Table)
	assert.Equal(t, order.Items, created.Items)
	assert.Equal(t, order.TotalAmount, created.TotalAmount)
}

func TestNon2xxBecomesStoreError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)

	_, err := client.GetAllOrders(context.Background())

	var storeErr *Error
	require.ErrorAs(t, err, &storeErr)
	assert.Equal(t, http.StatusInternalServerError, storeErr.StatusCode)
}

func TestTransportFailureBecomesStoreError(t *testing.T) {
	client := NewClient("http://127.0.0.1:1")

	_, err := client.GetAllMenus(context.Background())

	var storeErr *Error
	require.ErrorAs(t, err, &storeErr)
	assert.Zero(t, storeErr.StatusCode)
	assert.Error(t, storeErr.Err)
}

func TestGetMenuPathAndDecode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/Menu/m9", r.URL.Path)
		_ = json.NewEncoder(w).Encode(models.Menu{
			MenuID:   "m9",
			Name:     "Com Tam",
			Category: models.CategoryMainCourse,
			Price:    55000,
			IsActive: true,
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)

	menu, err := client.GetMenu(context.Background(), "m9")
	require.NoError(t, err)
	assert.Equal(t, "Com Tam", menu.Name)
	assert.True(t, menu.IsActive)
}

func TestDeleteMenuNoBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/Menu/m9", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	assert.NoError(t, client.DeleteMenu(context.Background(), "m9"))
}
