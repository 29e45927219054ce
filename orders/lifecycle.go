package orders

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/ldquyen/QuickDish/models"
)

// timeNow is swapped out in tests.
var timeNow = time.Now

// OrderStore is the slice of the remote store the lifecycle needs.
type OrderStore interface {
	CreateOrder(ctx context.Context, order models.Order) (*models.Order, error)
	UpdateOrder(ctx context.Context, id string, order models.Order) (*models.Order, error)
}

// Service drives an order through Processing -> Serving -> Paid. Paid is
// terminal. A mutex-held in-flight set keyed by cart session blocks a
// double-click from submitting the same cart twice.
type Service struct {
	store OrderStore

	mu       sync.Mutex
	inflight map[string]struct{}
}

func NewService(store OrderStore) *Service {
	return &Service{
		store:    store,
		inflight: make(map[string]struct{}),
	}
}

// Submit validates the cart, builds a Processing order with snapshot items
// and sends it to the remote store. The returned order carries the
// store-assigned id. The caller's cart is untouched on failure.
func (s *Service) Submit(ctx context.Context, sessionKey, table string, items []models.ItemDetail, note string) (*models.Order, error) {
	if strings.TrimSpace(table) == "" {
		return nil, models.NewValidationError("table is required")
	}
	if len(items) == 0 {
		return nil, models.NewValidationError("cart is empty")
	}

	s.mu.Lock()
	if _, busy := s.inflight[sessionKey]; busy {
		s.mu.Unlock()
		return nil, models.NewValidationError("order submission already in progress")
	}
	s.inflight[sessionKey] = struct{}{}
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.inflight, sessionKey)
		s.mu.Unlock()
	}()

	now := timeNow().Unix()
	order := models.Order{
		Table:       strings.TrimSpace(table),
		Items:       append([]models.ItemDetail(nil), items...),
		TotalAmount: sumItems(items),
		Status:      models.OrderStatusProcessing,
		CreatedAt:   now,
		UpdatedAt:   now,
		Note:        note,
	}
	return s.store.CreateOrder(ctx, order)
}

// UpdateItemServed flips one item's served flag, re-derives the order
// status and persists the result.
func (s *Service) UpdateItemServed(ctx context.Context, order models.Order, menuID string, isServed bool) (*models.Order, error) {
	updated, err := MarkItemServed(order, menuID, isServed)
	if err != nil {
		return nil, err
	}
	updated.Status = DeriveStatus(updated)
	updated.UpdatedAt = timeNow().Unix()
	return s.store.UpdateOrder(ctx, updated.OrderID, updated)
}

// ConfirmPayment closes the order. Confirmation is a manual action at the
// counter, not a verified gateway callback.
func (s *Service) ConfirmPayment(ctx context.Context, order models.Order) (*models.Order, error) {
	if order.OrderID == "" {
		return nil, models.NewValidationError("order has no id")
	}
	if order.Status == models.OrderStatusPaid {
		return nil, models.NewValidationError("order is already paid")
	}
	order.Status = models.OrderStatusPaid
	order.UpdatedAt = timeNow().Unix()
	return s.store.UpdateOrder(ctx, order.OrderID, order)
}

// MarkItemServed returns a copy of order with the matching item's served
// flag updated. A paid order is read-only.
func MarkItemServed(order models.Order, menuID string, isServed bool) (models.Order, error) {
	if order.Status == models.OrderStatusPaid {
		return order, models.NewValidationError("order is already paid")
	}
	items := append([]models.ItemDetail(nil), order.Items...)
	for i := range items {
		if items[i].MenuID == menuID {
			items[i].IsServed = isServed
		}
	}
	order.Items = items
	return order, nil
}

// DeriveStatus promotes a Processing order to Serving once every item has
// been delivered. Any other status is returned unchanged. Orders cannot be
// submitted without items, so the length guard only shields against a
// malformed record coming back from the store.
func DeriveStatus(order models.Order) models.OrderStatus {
	if order.Status != models.OrderStatusProcessing || len(order.Items) == 0 {
		return order.Status
	}
	for _, item := range order.Items {
		if !item.IsServed {
			return models.OrderStatusProcessing
		}
	}
	return models.OrderStatusServing
}

func sumItems(items []models.ItemDetail) float64 {
	var total float64
	for _, item := range items {
		total += item.TotalPrice
	}
	return total
}
