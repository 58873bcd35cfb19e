package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"facade-storefront/internal/dto"
	"facade-storefront/internal/service"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type OrderHandler struct {
	orderService service.OrderService
}

func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

// PlaceOrder accepts the multipart checkout form. Missing required fields
// are a 400 before anything runs; a malformed items payload or a failed
// notification send surfaces as a 500 with the underlying message.
func (h *OrderHandler) PlaceOrder(c echo.Context) error {
	ctx := c.Request().Context()

	customerEmail := c.FormValue("customerEmail")
	customerName := c.FormValue("customerName")
	itemsStr := c.FormValue("items")
	totalStr := c.FormValue("total")

	if customerEmail == "" || customerName == "" || itemsStr == "" || totalStr == "" {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid order data"})
	}

	total, err := strconv.ParseInt(totalStr, 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid order data"})
	}

	var items []dto.OrderItem
	if err := json.Unmarshal([]byte(itemsStr), &items); err != nil {
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "decode items: " + err.Error()})
	}

	sub := &dto.OrderSubmission{
		CustomerEmail: customerEmail,
		CustomerName:  customerName,
		Phone:         c.FormValue("phone"),
		Address:       c.FormValue("address"),
		Country:       c.FormValue("country"),
		Province:      c.FormValue("province"),
		PostalCode:    c.FormValue("postalCode"),
		Items:         items,
		Total:         total,
	}

	if file, err := c.FormFile("paymentSlip"); err == nil && file.Size > 0 {
		src, err := file.Open()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "read payment slip: " + err.Error()})
		}
		defer src.Close()

		data, err := io.ReadAll(src)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "read payment slip: " + err.Error()})
		}
		sub.PaymentSlip = data
		sub.PaymentSlipMime = file.Header.Get("Content-Type")
	}

	out, err := h.orderService.PlaceOrder(ctx, sub)
	if errors.Is(err, service.ErrInvalidOrder) {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid order data"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
	}

	return c.JSON(http.StatusOK, dto.OrderResponse{OK: true, OrderID: out.OrderID})
}

func (h *OrderHandler) GetOrder(c echo.Context) error {
	ctx := c.Request().Context()
	orderID := c.Param("id")

	order, items, err := h.orderService.GetOrder(ctx, orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return echo.NewHTTPError(http.StatusNotFound)
	}
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{
		"order": order,
		"items": items,
	})
}
