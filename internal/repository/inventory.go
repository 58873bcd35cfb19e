package repository

import (
	"context"
	"time"

	"facade-storefront/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type InventoryRepository interface {
	// Get returns gorm.ErrRecordNotFound when the product has no inventory
	// record, so callers can tell "absent" from "failed to fetch".
	Get(ctx context.Context, productID string) (*model.InventoryRecord, error)
	GetAll(ctx context.Context) ([]*model.InventoryRecord, error)
	// Save upserts the full record.
	Save(ctx context.Context, record *model.InventoryRecord) error
	// UpdateStock writes only the stock and in_stock columns.
	UpdateStock(ctx context.Context, productID string, stock int, inStock bool) error
	// Seed inserts records that do not exist yet, leaving existing ones alone.
	Seed(ctx context.Context, records []*model.InventoryRecord) error
}

type inventoryRepoImpl struct {
	db *gorm.DB
}

func NewInventoryRepository(db *gorm.DB) InventoryRepository {
	return &inventoryRepoImpl{
		db: db,
	}
}

func (r *inventoryRepoImpl) Get(ctx context.Context, productID string) (*model.InventoryRecord, error) {
	var record model.InventoryRecord
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		First(&record).Error
	if err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *inventoryRepoImpl) GetAll(ctx context.Context) ([]*model.InventoryRecord, error) {
	var records []*model.InventoryRecord
	err := r.db.WithContext(ctx).Find(&records).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}

func (r *inventoryRepoImpl) Save(ctx context.Context, record *model.InventoryRecord) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "product_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "image", "price", "tags", "stock", "in_stock", "updated_at",
		}),
	}).Create(record).Error
}

func (r *inventoryRepoImpl) UpdateStock(ctx context.Context, productID string, stock int, inStock bool) error {
	result := r.db.WithContext(ctx).
		Model(&model.InventoryRecord{}).
		Where("product_id = ?", productID).
		Updates(map[string]interface{}{
			"stock":      stock,
			"in_stock":   inStock,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *inventoryRepoImpl) Seed(ctx context.Context, records []*model.InventoryRecord) error {
	if len(records) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&records).Error
}
