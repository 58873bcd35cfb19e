package repository

import (
	"errors"
	"time"

	"facade-storefront/internal/cart"
	"facade-storefront/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type cartStorageImpl struct {
	db *gorm.DB
}

// NewCartStorage returns a cart.Storage backed by the cart_sessions table.
func NewCartStorage(db *gorm.DB) cart.Storage {
	return &cartStorageImpl{
		db: db,
	}
}

func (r *cartStorageImpl) Save(sessionID string, snapshot []byte) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "session_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"snapshot":   snapshot,
			"updated_at": time.Now(),
		}),
	}).Create(&model.CartSession{
		SessionID: sessionID,
		Snapshot:  snapshot,
	}).Error
}

func (r *cartStorageImpl) Load(sessionID string) ([]byte, error) {
	var session model.CartSession
	err := r.db.
		Where("session_id = ?", sessionID).
		First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return session.Snapshot, nil
}
