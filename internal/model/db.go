package model

import "time"

// Order status lifecycle. Checkout only ever writes OrderStatusPending;
// the later states are set manually by the shop after the payment slip is
// reviewed.
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
)

type Order struct {
	ID             string `gorm:"primaryKey;size:64;not null"`
	CustomerEmail  string `gorm:"size:255;index;not null"`
	CustomerName   string `gorm:"size:255;not null"`
	Phone          string `gorm:"size:64"`
	Address        string `gorm:"size:255"`
	Country        string `gorm:"size:64"`
	Province       string `gorm:"size:64"`
	PostalCode     string `gorm:"size:16"`
	PaymentSlipURL string `gorm:"size:512"`
	// Total is in satang, like every price in the system.
	Total     int64  `gorm:"not null"`
	Status    string `gorm:"size:32;index;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type OrderItem struct {
	ID uint `gorm:"primaryKey"`
	// FK → order.id
	OrderID string `gorm:"size:64;index;not null"`
	// catalog product id
	ProductID string `gorm:"size:64;index;not null"`
	Name      string `gorm:"size:255;not null"`
	Price     int64  `gorm:"not null"` // unit price, satang
	Quantity  int    `gorm:"not null"`
	Size      string `gorm:"size:16;not null"`

	CreatedAt time.Time
}

// InventoryRecord holds per-product stock keyed by the catalog product id.
// InStock is written as stock > 0 on every stock write rather than derived
// on read, so an out-of-band edit can make the two drift.
type InventoryRecord struct {
	ProductID string   `gorm:"primaryKey;size:64;not null"`
	Name      string   `gorm:"size:255"`
	Image     string   `gorm:"size:512"`
	Price     int64    // satang
	Tags      []string `gorm:"serializer:json"`
	Stock     int      `gorm:"not null"`
	InStock   bool     `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CartSession stores one client's serialized cart lines.
type CartSession struct {
	SessionID string `gorm:"primaryKey;size:64;not null"`
	Snapshot  []byte
	CreatedAt time.Time
	UpdatedAt time.Time
}
