package handler

import (
	"net/http"

	"facade-storefront/internal/cart"
	"facade-storefront/internal/catalog"
	"facade-storefront/internal/dto"
	"facade-storefront/internal/middleware"

	"github.com/labstack/echo/v4"
)

type CartHandler struct {
	carts *cart.Manager
}

func NewCartHandler(carts *cart.Manager) *CartHandler {
	return &CartHandler{
		carts: carts,
	}
}

func (h *CartHandler) sessionCart(c echo.Context) *cart.Cart {
	return h.carts.Get(middleware.SessionID(c))
}

func cartJSON(c echo.Context, sc *cart.Cart) error {
	return c.JSON(http.StatusOK, map[string]any{
		"items": sc.Lines(),
		"total": sc.Total(),
	})
}

func (h *CartHandler) GetCart(c echo.Context) error {
	return cartJSON(c, h.sessionCart(c))
}

func (h *CartHandler) AddItem(c echo.Context) error {
	var req dto.CartLineRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}
	if req.ProductID == "" || req.Size == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "productId and size are required")
	}

	product, ok := catalog.FindByID(req.ProductID)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "unknown product")
	}

	sc := h.sessionCart(c)
	sc.AddItem(product, req.Size)
	return cartJSON(c, sc)
}

func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	var req dto.CartQuantityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}
	if req.ProductID == "" || req.Size == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "productId and size are required")
	}

	sc := h.sessionCart(c)
	sc.UpdateQuantity(req.ProductID, req.Size, req.Quantity)
	return cartJSON(c, sc)
}

func (h *CartHandler) RemoveItem(c echo.Context) error {
	var req dto.CartLineRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	sc := h.sessionCart(c)
	sc.RemoveItem(req.ProductID, req.Size)
	return cartJSON(c, sc)
}

func (h *CartHandler) ClearCart(c echo.Context) error {
	sc := h.sessionCart(c)
	sc.Clear()
	return cartJSON(c, sc)
}
