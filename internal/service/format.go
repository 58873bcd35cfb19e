package service

import (
	"fmt"
	"strings"

	"facade-storefront/internal/catalog"
	"facade-storefront/internal/dto"

	"github.com/shopspring/decimal"
)

// templateItem is one row of the "orders" array in the email templates.
type templateItem struct {
	Name     string `json:"name"`
	Size     string `json:"size"`
	Units    int    `json:"units"`
	Price    string `json:"price"`
	ImageURL string `json:"image_url"`
}

// amountTHB renders minor units as a plain two-decimal amount, e.g.
// 35000 → "350.00".
func amountTHB(minor int64) string {
	return decimal.NewFromInt(minor).Div(decimal.NewFromInt(100)).StringFixed(2)
}

// formatLineItems builds the human-readable line-item block for the emails,
// one line per item, unit price shown.
func formatLineItems(items []dto.OrderItem) string {
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = fmt.Sprintf("%s (Size: %s) x %d — %s THB",
			item.Name, item.Size, item.Quantity, amountTHB(item.Price))
	}
	return strings.Join(lines, "\n")
}

// templateItems builds the structured item list. The item price is the line
// total (unit price times quantity). Images come from the catalog: the
// hosted email image when present, otherwise the site-relative image made
// absolute against siteURL, otherwise empty.
func templateItems(items []dto.OrderItem, siteURL string) []templateItem {
	out := make([]templateItem, len(items))
	for i, item := range items {
		var imageSrc string
		if product, ok := catalog.FindByID(item.ProductID); ok {
			switch {
			case product.EmailImage != "":
				imageSrc = product.EmailImage
			case product.Image != "":
				imageSrc = siteURL + product.Image
			}
		}

		out[i] = templateItem{
			Name:     item.Name,
			Size:     item.Size,
			Units:    item.Quantity,
			Price:    catalog.FormatPrice(item.Price * int64(item.Quantity)),
			ImageURL: imageSrc,
		}
	}
	return out
}

// formatAddress joins the non-empty address parts with ", ". When every
// part is empty the result is exactly "Not provided".
func formatAddress(address, province, postalCode, country string) string {
	var parts []string
	for _, part := range []string{address, province, postalCode, country} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	if len(parts) == 0 {
		return "Not provided"
	}
	return strings.Join(parts, ", ")
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
