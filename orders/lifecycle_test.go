package orders

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ldquyen/QuickDish/models"
)

type fakeStore struct {
	created []models.Order
	updated []models.Order
	err     error
	block   chan struct{} // when set, CreateOrder waits until closed
}

func (f *fakeStore) CreateOrder(ctx context.Context, order models.Order) (*models.Order, error) {
	if f.block != nil {
		<-f.block
	}
	if f.err != nil {
		return nil, f.err
	}
	order.OrderID = "42"
	f.created = append(f.created, order)
	return &order, nil
}

func (f *fakeStore) UpdateOrder(ctx context.Context, id string, order models.Order) (*models.Order, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.updated = append(f.updated, order)
	return &order, nil
}

func itemsFixture() []models.ItemDetail {
	return []models.ItemDetail{
		{MenuID: "m1", Name: "Pho Bo", Quantity: 2, Price: 45000, TotalPrice: 90000},
		{MenuID: "m2", Name: "Tra Da", Quantity: 1, Price: 5000, TotalPrice: 5000},
	}
}

func TestSubmitRejectsBlankTable(t *testing.T) {
	fake := &fakeStore{}
	svc := NewService(fake)

	_, err := svc.Submit(context.Background(), "sess", "   ", itemsFixture(), "")

	var validationErr *models.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Empty(t, fake.created, "store must not be called")
}

func TestSubmitRejectsEmptyCart(t *testing.T) {
	fake := &fakeStore{}
	svc := NewService(fake)

	_, err := svc.Submit(context.Background(), "sess", "B5", nil, "")

	var validationErr *models.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Empty(t, fake.created)
}

func TestSubmitBuildsProcessingOrder(t *testing.T) {
	timeNow = func() time.Time { return time.Unix(1_700_000_000, 0) }
	defer func() { timeNow = time.Now }()

	fake := &fakeStore{}
	svc := NewService(fake)

	created, err := svc.Submit(context.Background(), "sess", " B5 ", itemsFixture(), "no onions")
	require.NoError(t, err)

	assert.Equal(t, "42", created.OrderID)
	assert.Equal(t, "B5", created.Table)
	assert.Equal(t, models.OrderStatusProcessing, created.Status)
	assert.Equal(t, float64(95000), created.TotalAmount)
	assert.Equal(t, int64(1_700_000_000), created.CreatedAt)
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)
	assert.Equal(t, "no onions", created.Note)
	require.Len(t, created.Items, 2)
}

func TestSubmitStoreFailure(t *testing.T) {
	fake := &fakeStore{err: assert.AnError}
	svc := NewService(fake)

	_, err := svc.Submit(context.Background(), "sess", "B5", itemsFixture(), "")
	assert.ErrorIs(t, err, assert.AnError)
}

func TestSubmitRejectsOverlappingSubmission(t *testing.T) {
	fake := &fakeStore{block: make(chan struct{})}
	svc := NewService(fake)

	firstDone := make(chan error, 1)
	go func() {
		_, err := svc.Submit(context.Background(), "sess", "B5", itemsFixture(), "")
		firstDone <- err
	}()

	// Wait for the first submission to take the in-flight slot.
	require.Eventually(t, func() bool {
		svc.mu.Lock()
		defer svc.mu.Unlock()
		_, busy := svc.inflight["sess"]
		return busy
	}, time.Second, time.Millisecond)

	_, err := svc.Submit(context.Background(), "sess", "B5", itemsFixture(), "")
	var validationErr *models.ValidationError
	require.ErrorAs(t, err, &validationErr)

	close(fake.block)
	require.NoError(t, <-firstDone)

	// Slot is free again after the first call returns.
	_, err = svc.Submit(context.Background(), "sess", "B5", itemsFixture(), "")
	assert.NoError(t, err)
}

func TestDeriveStatus(t *testing.T) {
	tests := []struct {
		name  string
		order models.Order
		want  models.OrderStatus
	}{
		{
			name: "processing all served becomes serving",
			order: models.Order{Status: models.OrderStatusProcessing, Items: []models.ItemDetail{
				{MenuID: "m1", IsServed: true},
				{MenuID: "m2", IsServed: true},
			}},
			want: models.OrderStatusServing,
		},
		{
			name: "processing with pending item stays processing",
			order: models.Order{Status: models.OrderStatusProcessing, Items: []models.ItemDetail{
				{MenuID: "m1", IsServed: true},
				{MenuID: "m2", IsServed: false},
			}},
			want: models.OrderStatusProcessing,
		},
		{
			name:  "zero items never promotes",
			order: models.Order{Status: models.OrderStatusProcessing},
			want:  models.OrderStatusProcessing,
		},
		{
			name: "serving stays serving",
			order: models.Order{Status: models.OrderStatusServing, Items: []models.ItemDetail{
				{MenuID: "m1", IsServed: true},
			}},
			want: models.OrderStatusServing,
		},
		{
			name: "paid stays paid",
			order: models.Order{Status: models.OrderStatusPaid, Items: []models.ItemDetail{
				{MenuID: "m1", IsServed: true},
			}},
			want: models.OrderStatusPaid,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveStatus(tt.order))
		})
	}
}

func TestMarkItemServedIsPure(t *testing.T) {
	order := models.Order{
		OrderID: "42",
		Status:  models.OrderStatusProcessing,
		Items:   itemsFixture(),
	}

	updated, err := MarkItemServed(order, "m1", true)
	require.NoError(t, err)

	assert.True(t, updated.Items[0].IsServed)
	assert.False(t, order.Items[0].IsServed, "input order must not change")
}

func TestMarkItemServedRejectsPaidOrder(t *testing.T) {
	order := models.Order{OrderID: "42", Status: models.OrderStatusPaid, Items: itemsFixture()}

	_, err := MarkItemServed(order, "m1", true)

	var validationErr *models.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestUpdateItemServedPromotesOnLastItem(t *testing.T) {
	timeNow = func() time.Time { return time.Unix(1_700_000_500, 0) }
	defer func() { timeNow = time.Now }()

	fake := &fakeStore{}
	svc := NewService(fake)

	order := models.Order{
		OrderID: "42",
		Status:  models.OrderStatusProcessing,
		Items: []models.ItemDetail{
			{MenuID: "m1", IsServed: true},
			{MenuID: "m2", IsServed: false},
		},
		CreatedAt: 1_700_000_000,
		UpdatedAt: 1_700_000_000,
	}

	updated, err := svc.UpdateItemServed(context.Background(), order, "m2", true)
	require.NoError(t, err)

	assert.Equal(t, models.OrderStatusServing, updated.Status)
	assert.Equal(t, int64(1_700_000_500), updated.UpdatedAt)
	require.Len(t, fake.updated, 1)
}

func TestConfirmPaymentRequiresID(t *testing.T) {
	svc := NewService(&fakeStore{})

	_, err := svc.ConfirmPayment(context.Background(), models.Order{Status: models.OrderStatusServing})

	var validationErr *models.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestConfirmPaymentRejectsPaidOrder(t *testing.T) {
	svc := NewService(&fakeStore{})

	_, err := svc.ConfirmPayment(context.Background(), models.Order{OrderID: "42", Status: models.OrderStatusPaid})

	var validationErr *models.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestConfirmPaymentClosesOrder(t *testing.T) {
	timeNow = func() time.Time { return time.Unix(1_700_001_000, 0) }
	defer func() { timeNow = time.Now }()

	fake := &fakeStore{}
	svc := NewService(fake)

	updated, err := svc.ConfirmPayment(context.Background(), models.Order{
		OrderID:   "42",
		Status:    models.OrderStatusServing,
		UpdatedAt: 1_700_000_000,
	})
	require.NoError(t, err)

	assert.Equal(t, models.OrderStatusPaid, updated.Status)
	assert.Equal(t, int64(1_700_001_000), updated.UpdatedAt)
}
