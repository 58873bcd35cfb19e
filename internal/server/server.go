package server

import (
	"net/http"

	"facade-storefront/internal/cart"
	"facade-storefront/internal/handler"
	appmiddleware "facade-storefront/internal/middleware"
	"facade-storefront/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

type Server struct {
	echo           *echo.Echo
	orderHandler   *handler.OrderHandler
	productHandler *handler.ProductHandler
	cartHandler    *handler.CartHandler
}

func NewServer(
	orderService service.OrderService,
	productService service.ProductService,
	carts *cart.Manager,
	log *zap.Logger,
) *Server {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:    true,
		LogStatus: true,
		LogMethod: true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Info("request",
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Error(v.Error),
			)
			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	s := &Server{
		echo:           e,
		orderHandler:   handler.NewOrderHandler(orderService),
		productHandler: handler.NewProductHandler(productService),
		cartHandler:    handler.NewCartHandler(carts),
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.echo.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	api.POST("/order", s.orderHandler.PlaceOrder)
	api.GET("/orders/:id", s.orderHandler.GetOrder)

	api.GET("/products", s.productHandler.ListProducts)
	api.GET("/products/:id", s.productHandler.GetProduct)

	// -------- cart --------
	cartGroup := api.Group("/cart", appmiddleware.SessionMiddleware())
	cartGroup.GET("", s.cartHandler.GetCart)
	cartGroup.POST("/items", s.cartHandler.AddItem)
	cartGroup.PUT("/items", s.cartHandler.UpdateQuantity)
	cartGroup.DELETE("/items", s.cartHandler.RemoveItem)
	cartGroup.POST("/clear", s.cartHandler.ClearCart)
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}
