// Package cart holds one shopper's line items. A line is keyed by the
// (productID, size) pair; adding the same pair again bumps its quantity.
// Every mutation notifies subscribed listeners with a copy of the lines,
// which is how persistence is wired in.
package cart

import (
	"encoding/json"
	"sync"

	"facade-storefront/internal/catalog"
)

type Line struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Price     int64  `json:"price"` // unit price, satang
	Quantity  int    `json:"quantity"`
	Size      string `json:"size"`
}

type Cart struct {
	mu        sync.Mutex
	lines     []Line
	listeners []func([]Line)
}

func New() *Cart {
	return &Cart{}
}

// Subscribe registers fn to be called after every mutation.
func (c *Cart) Subscribe(fn func([]Line)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = append(c.listeners, fn)
}

func (c *Cart) AddItem(product catalog.Product, size string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].ProductID == product.ID && c.lines[i].Size == size {
			c.lines[i].Quantity++
			c.notify()
			return
		}
	}

	c.lines = append(c.lines, Line{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Quantity:  1,
		Size:      size,
	})
	c.notify()
}

func (c *Cart) RemoveItem(productID, size string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.remove(productID, size)
	c.notify()
}

// UpdateQuantity overwrites the line's quantity. A quantity of zero or less
// removes the line.
func (c *Cart) UpdateQuantity(productID, size string, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if quantity <= 0 {
		c.remove(productID, size)
		c.notify()
		return
	}

	for i := range c.lines {
		if c.lines[i].ProductID == productID && c.lines[i].Size == size {
			c.lines[i].Quantity = quantity
			break
		}
	}
	c.notify()
}

func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
	c.notify()
}

func (c *Cart) Lines() []Line {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot()
}

// Total is derived from the lines on every call, never stored.
func (c *Cart) Total() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	var total int64
	for _, line := range c.lines {
		total += line.Price * int64(line.Quantity)
	}
	return total
}

// Marshal serializes the line list for storage.
func (c *Cart) Marshal() ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return json.Marshal(c.snapshot())
}

// Restore replaces the lines from a stored snapshot. The snapshot is
// rejected, leaving the cart empty, when it is not a valid line list or any
// line lacks a size; that guards against snapshots from an older schema.
// Listeners are not notified: restore happens on load, not on mutation.
func (c *Cart) Restore(data []byte) {
	var lines []Line
	if err := json.Unmarshal(data, &lines); err != nil {
		return
	}
	for _, line := range lines {
		if line.Size == "" {
			return
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = lines
}

func (c *Cart) remove(productID, size string) {
	kept := c.lines[:0]
	for _, line := range c.lines {
		if line.ProductID == productID && line.Size == size {
			continue
		}
		kept = append(kept, line)
	}
	c.lines = kept
}

func (c *Cart) snapshot() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// notify is called with c.mu held.
func (c *Cart) notify() {
	lines := c.snapshot()
	for _, fn := range c.listeners {
		fn(lines)
	}
}
