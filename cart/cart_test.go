package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ldquyen/QuickDish/models"
)

func menuFixture(id string, price float64) models.Menu {
	return models.Menu{
		MenuID:   id,
		Name:     "Pho Bo " + id,
		Category: models.CategoryMainCourse,
		Price:    price,
		Quantity: 20,
		IsActive: true,
	}
}

func TestAddItemMergesByMenuID(t *testing.T) {
	c := &Cart{}
	c.AddItem(menuFixture("m1", 45000), 2)
	c.AddItem(menuFixture("m1", 45000), 3)

	require.Len(t, c.Items, 1)
	assert.Equal(t, 5, c.Items[0].Quantity)
	assert.Equal(t, float64(5*45000), c.Items[0].TotalPrice)
	assert.False(t, c.Items[0].IsServed)
}

func TestAddItemAppendsNewLine(t *testing.T) {
	c := &Cart{}
	c.AddItem(menuFixture("m1", 45000), 1)
	c.AddItem(menuFixture("m2", 20000), 2)

	require.Len(t, c.Items, 2)
	assert.Equal(t, "m1", c.Items[0].MenuID)
	assert.Equal(t, "m2", c.Items[1].MenuID)
	assert.Equal(t, float64(40000), c.Items[1].TotalPrice)
}

func TestSetQuantityZeroRemovesLine(t *testing.T) {
	c := &Cart{}
	c.AddItem(menuFixture("m1", 45000), 2)
	c.AddItem(menuFixture("m2", 20000), 1)

	c.SetQuantity("m1", 0)

	removed := &Cart{}
	removed.AddItem(menuFixture("m1", 45000), 2)
	removed.AddItem(menuFixture("m2", 20000), 1)
	removed.RemoveItem("m1")

	assert.Equal(t, removed.Items, c.Items)
}

func TestSetQuantityUpdatesTotal(t *testing.T) {
	c := &Cart{}
	c.AddItem(menuFixture("m1", 45000), 2)

	c.SetQuantity("m1", 7)

	require.Len(t, c.Items, 1)
	assert.Equal(t, 7, c.Items[0].Quantity)
	assert.Equal(t, float64(7*45000), c.Items[0].TotalPrice)
}

func TestRemoveItemAbsentIsNoop(t *testing.T) {
	c := &Cart{}
	c.AddItem(menuFixture("m1", 45000), 1)

	c.RemoveItem("nope")

	assert.Len(t, c.Items, 1)
}

func TestTotalAmount(t *testing.T) {
	c := &Cart{}
	assert.Equal(t, float64(0), c.TotalAmount())

	c.AddItem(menuFixture("m1", 10000), 2)
	c.AddItem(menuFixture("m2", 5000), 1)
	assert.Equal(t, float64(25000), c.TotalAmount())
}

func TestClear(t *testing.T) {
	c := &Cart{}
	c.AddItem(menuFixture("m1", 10000), 2)

	c.Clear()

	assert.Empty(t, c.Items)
	assert.Equal(t, float64(0), c.TotalAmount())
}

func TestStoreSnapshotIsACopy(t *testing.T) {
	s := NewStore()
	s.Update("sess", func(c *Cart) {
		c.AddItem(menuFixture("m1", 10000), 1)
	})

	snapshot := s.Snapshot("sess")
	snapshot.Items[0].Quantity = 99

	again := s.Snapshot("sess")
	assert.Equal(t, 1, again.Items[0].Quantity)
}

func TestStoreDrop(t *testing.T) {
	s := NewStore()
	s.Update("sess", func(c *Cart) {
		c.AddItem(menuFixture("m1", 10000), 1)
	})

	s.Drop("sess")

	assert.Empty(t, s.Snapshot("sess").Items)
}
