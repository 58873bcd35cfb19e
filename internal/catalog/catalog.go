package catalog

import (
	"strings"

	"facade-storefront/internal/model"

	"github.com/shopspring/decimal"
)

// Product is one catalog entry. Stock, InStock and Tags are only set after a
// merge with inventory; nil means availability unknown, not out of stock.
type Product struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"` // satang
	Image       string `json:"image"`
	EmailImage  string `json:"emailImage,omitempty"`

	Stock   *int     `json:"stock,omitempty"`
	InStock *bool    `json:"inStock,omitempty"`
	Tags    []string `json:"tags,omitempty"`
}

// Products returns the full catalog. The list is compiled in; stock lives in
// the inventory store.
func Products() []Product {
	out := make([]Product, len(products))
	copy(out, products)
	return out
}

func FindByID(id string) (Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// MergeWithInventory overlays stock data onto a product. A nil record leaves
// the product untouched.
func MergeWithInventory(p Product, inv *model.InventoryRecord) Product {
	if inv == nil {
		return p
	}
	stock := inv.Stock
	inStock := inv.InStock
	p.Stock = &stock
	p.InStock = &inStock
	p.Tags = inv.Tags
	return p
}

// FormatPrice renders minor currency units as a display string, e.g.
// 35000 → "฿350.00".
func FormatPrice(minor int64) string {
	amount := decimal.NewFromInt(minor).Div(decimal.NewFromInt(100))
	return "฿" + groupThousands(amount.StringFixed(2))
}

func groupThousands(s string) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	whole, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	out := b.String()
	if frac != "" {
		out += "." + frac
	}
	if neg {
		out = "-" + out
	}
	return out
}
