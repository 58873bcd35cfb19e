package service

import (
	"context"
	"errors"

	"facade-storefront/internal/catalog"
	"facade-storefront/internal/model"
	"facade-storefront/internal/repository"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ProductService interface {
	// List returns the catalog merged with current inventory. When the
	// inventory fetch fails the bare catalog is returned instead, so the
	// storefront stays up without stock data.
	List(ctx context.Context) []catalog.Product
	Get(ctx context.Context, productID string) (catalog.Product, bool)
}

type productServiceImpl struct {
	inventoryRepo repository.InventoryRepository
	log           *zap.Logger
}

func NewProductService(inventoryRepo repository.InventoryRepository, log *zap.Logger) ProductService {
	return &productServiceImpl{
		inventoryRepo: inventoryRepo,
		log:           log,
	}
}

func (s *productServiceImpl) List(ctx context.Context) []catalog.Product {
	products := catalog.Products()

	records, err := s.inventoryRepo.GetAll(ctx)
	if err != nil {
		s.log.Warn("inventory fetch failed, returning catalog without stock data", zap.Error(err))
		return products
	}

	byID := make(map[string]*model.InventoryRecord, len(records))
	for _, record := range records {
		byID[record.ProductID] = record
	}

	for i, p := range products {
		products[i] = catalog.MergeWithInventory(p, byID[p.ID])
	}
	return products
}

func (s *productServiceImpl) Get(ctx context.Context, productID string) (catalog.Product, bool) {
	product, ok := catalog.FindByID(productID)
	if !ok {
		return catalog.Product{}, false
	}

	record, err := s.inventoryRepo.Get(ctx, productID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.log.Warn("inventory fetch failed, returning product without stock data",
				zap.String("product_id", productID), zap.Error(err))
		}
		return product, true
	}

	return catalog.MergeWithInventory(product, record), true
}
