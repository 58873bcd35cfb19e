package repository

import (
	"context"
	"testing"

	"facade-storefront/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestInventorySaveAndGet(t *testing.T) {
	repo := NewInventoryRepository(testDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &model.InventoryRecord{
		ProductID: "id001",
		Name:      "Tee",
		Price:     35000,
		Tags:      []string{"tshirt", "cotton"},
		Stock:     5,
		InStock:   true,
	}))

	got, err := repo.Get(ctx, "id001")
	require.NoError(t, err)
	assert.Equal(t, 5, got.Stock)
	assert.True(t, got.InStock)
	assert.Equal(t, []string{"tshirt", "cotton"}, got.Tags)
}

func TestInventoryGetAbsent(t *testing.T) {
	repo := NewInventoryRepository(testDB(t))

	_, err := repo.Get(context.Background(), "ghost")

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestInventorySaveUpserts(t *testing.T) {
	repo := NewInventoryRepository(testDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &model.InventoryRecord{ProductID: "id001", Name: "Tee", Stock: 5, InStock: true}))
	require.NoError(t, repo.Save(ctx, &model.InventoryRecord{ProductID: "id001", Name: "Tee v2", Stock: 8, InStock: true}))

	got, err := repo.Get(ctx, "id001")
	require.NoError(t, err)
	assert.Equal(t, "Tee v2", got.Name)
	assert.Equal(t, 8, got.Stock)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestInventoryUpdateStockIsPartial(t *testing.T) {
	repo := NewInventoryRepository(testDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &model.InventoryRecord{
		ProductID: "id001", Name: "Tee", Price: 35000, Stock: 1, InStock: true,
	}))

	require.NoError(t, repo.UpdateStock(ctx, "id001", 0, false))

	got, err := repo.Get(ctx, "id001")
	require.NoError(t, err)
	assert.Equal(t, 0, got.Stock)
	assert.False(t, got.InStock)
	// untouched columns survive the partial update
	assert.Equal(t, "Tee", got.Name)
	assert.Equal(t, int64(35000), got.Price)
}

func TestInventoryUpdateStockAbsent(t *testing.T) {
	repo := NewInventoryRepository(testDB(t))

	err := repo.UpdateStock(context.Background(), "ghost", 0, false)

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestInventorySeedKeepsExistingRecords(t *testing.T) {
	repo := NewInventoryRepository(testDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &model.InventoryRecord{ProductID: "id001", Stock: 3, InStock: true}))

	require.NoError(t, repo.Seed(ctx, []*model.InventoryRecord{
		{ProductID: "id001", Stock: 10, InStock: true},
		{ProductID: "id002", Stock: 10, InStock: true},
	}))

	kept, err := repo.Get(ctx, "id001")
	require.NoError(t, err)
	assert.Equal(t, 3, kept.Stock, "seed must not overwrite existing stock")

	seeded, err := repo.Get(ctx, "id002")
	require.NoError(t, err)
	assert.Equal(t, 10, seeded.Stock)
}
