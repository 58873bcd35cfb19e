package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"facade-storefront/internal/cart"
	"facade-storefront/internal/catalog"
	"facade-storefront/internal/client"
	"facade-storefront/internal/config"
	"facade-storefront/internal/model"
	"facade-storefront/internal/pkg/logging"
	"facade-storefront/internal/repository"
	"facade-storefront/internal/server"
	"facade-storefront/internal/service"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

const defaultSeedStock = 10

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}

	log := logging.MustNewLogger("facade-storefront", cfg.Environment.Name, cfg.Log.Level, cfg.Log.Format)
	defer log.Sync()

	db, err := client.InitSqliteClient(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("init database", zap.Error(err))
	}

	orderRepo := repository.NewOrderRepository(db)
	inventoryRepo := repository.NewInventoryRepository(db)
	cartStorage := repository.NewCartStorage(db)

	uploader := client.NewCloudinaryClient(&cfg.Cloudinary)
	mailer := client.NewEmailJSClient(&cfg.EmailJS)

	if cfg.SeedInventory {
		if err := seedInventory(context.Background(), inventoryRepo); err != nil {
			log.Fatal("seed inventory", zap.Error(err))
		}
		log.Info("inventory seeded from catalog")
	}

	orderService := service.NewOrderService(orderRepo, inventoryRepo, uploader, mailer, cfg, log)
	productService := service.NewProductService(inventoryRepo, log)
	carts := cart.NewManager(cartStorage, log)

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	srv := server.NewServer(orderService, productService, carts, log)

	log.Info("starting HTTP server", zap.String("addr", serverAddr))
	go func() {
		if err := srv.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	log.Info("signal received, starting graceful shutdown")

	_, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(); err != nil {
		log.Fatal("HTTP server shutdown error", zap.Error(err))
	}
}

// seedInventory inserts a default record per catalog product. Records that
// already exist keep their current stock.
func seedInventory(ctx context.Context, inventoryRepo repository.InventoryRepository) error {
	products := catalog.Products()
	records := make([]*model.InventoryRecord, len(products))
	for i, p := range products {
		records[i] = &model.InventoryRecord{
			ProductID: p.ID,
			Name:      p.Name,
			Image:     p.Image,
			Price:     p.Price,
			Stock:     defaultSeedStock,
			InStock:   true,
		}
	}
	return inventoryRepo.Seed(ctx, records)
}
