package cart

import (
	"encoding/json"
	"testing"

	"facade-storefront/internal/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	tshirt  = catalog.Product{ID: "id001", Name: "Tee", Price: 35000}
	ballcap = catalog.Product{ID: "id002", Name: "Cap", Price: 15000}
)

func TestAddItemIncrementsExistingLine(t *testing.T) {
	c := New()

	c.AddItem(tshirt, "M")
	c.AddItem(tshirt, "M")

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, "M", lines[0].Size)
}

func TestAddItemSameProductDifferentSize(t *testing.T) {
	c := New()

	c.AddItem(tshirt, "M")
	c.AddItem(tshirt, "L")

	require.Len(t, c.Lines(), 2)
}

func TestTotalIsDerived(t *testing.T) {
	c := New()

	c.AddItem(tshirt, "M") // 35000
	c.AddItem(tshirt, "M") // x2
	c.AddItem(ballcap, "M")    // 15000

	assert.Equal(t, int64(2*35000+15000), c.Total())

	c.UpdateQuantity(tshirt.ID, "M", 1)
	assert.Equal(t, int64(35000+15000), c.Total())
}

func TestUpdateQuantityZeroOrNegativeRemoves(t *testing.T) {
	tests := []struct {
		name     string
		quantity int
	}{
		{name: "zero removes the line", quantity: 0},
		{name: "negative removes the line", quantity: -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			c.AddItem(tshirt, "M")
			c.AddItem(ballcap, "S")

			c.UpdateQuantity(tshirt.ID, "M", tt.quantity)

			lines := c.Lines()
			require.Len(t, lines, 1)
			assert.Equal(t, ballcap.ID, lines[0].ProductID)
		})
	}
}

func TestUpdateQuantityOverwrites(t *testing.T) {
	c := New()
	c.AddItem(tshirt, "M")

	c.UpdateQuantity(tshirt.ID, "M", 7)

	require.Len(t, c.Lines(), 1)
	assert.Equal(t, 7, c.Lines()[0].Quantity)
}

func TestRemoveItemIsNoOpWhenAbsent(t *testing.T) {
	c := New()
	c.AddItem(tshirt, "M")

	c.RemoveItem(tshirt.ID, "XL")
	require.Len(t, c.Lines(), 1)

	c.RemoveItem(tshirt.ID, "M")
	assert.Empty(t, c.Lines())
}

func TestClear(t *testing.T) {
	c := New()
	c.AddItem(tshirt, "M")
	c.AddItem(ballcap, "S")

	c.Clear()

	assert.Empty(t, c.Lines())
	assert.Zero(t, c.Total())
}

func TestSubscribeNotifiedOnEveryMutation(t *testing.T) {
	c := New()

	var calls [][]Line
	c.Subscribe(func(lines []Line) {
		calls = append(calls, lines)
	})

	c.AddItem(tshirt, "M")
	c.UpdateQuantity(tshirt.ID, "M", 3)
	c.Clear()

	require.Len(t, calls, 3)
	assert.Equal(t, 3, calls[1][0].Quantity)
	assert.Empty(t, calls[2])
}

func TestRestoreRoundTrip(t *testing.T) {
	c := New()
	c.AddItem(tshirt, "M")
	c.AddItem(ballcap, "S")

	data, err := c.Marshal()
	require.NoError(t, err)

	restored := New()
	restored.Restore(data)

	assert.Equal(t, c.Lines(), restored.Lines())
}

func TestRestoreRejectsLinesWithoutSize(t *testing.T) {
	// snapshot from before sizes existed
	data, err := json.Marshal([]map[string]any{
		{"productId": "id001", "name": "Tee", "price": 35000, "quantity": 1},
	})
	require.NoError(t, err)

	c := New()
	c.Restore(data)

	assert.Empty(t, c.Lines())
}

func TestRestoreRejectsGarbage(t *testing.T) {
	c := New()
	c.Restore([]byte("not json"))
	assert.Empty(t, c.Lines())
}
