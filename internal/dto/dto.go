package dto

type OrderItem struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Price     int64  `json:"price"` // unit price, satang
	Quantity  int    `json:"quantity"`
	Size      string `json:"size"`
}

// OrderSubmission is one decoded checkout form.
type OrderSubmission struct {
	CustomerEmail string
	CustomerName  string
	Phone         string
	Address       string
	Country       string
	Province      string
	PostalCode    string
	Items         []OrderItem
	Total         int64 // satang

	PaymentSlip     []byte
	PaymentSlipMime string
}

type OrderResponse struct {
	OK      bool   `json:"ok"`
	OrderID string `json:"orderId"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type CartLineRequest struct {
	ProductID string `json:"productId"`
	Size      string `json:"size"`
}

type CartQuantityRequest struct {
	ProductID string `json:"productId"`
	Size      string `json:"size"`
	Quantity  int    `json:"quantity"`
}
