package cart

import (
	"encoding/json"
	"sync"

	"go.uber.org/zap"
)

// Storage persists one serialized cart per session. Load returns (nil, nil)
// when no snapshot exists.
type Storage interface {
	Save(sessionID string, snapshot []byte) error
	Load(sessionID string) ([]byte, error)
}

// Manager hands out per-session carts. Each cart is restored from storage on
// first access and re-persisted after every change through a subscription.
// Storage failures are logged and otherwise ignored, matching the best-effort
// nature of cart persistence.
type Manager struct {
	mu      sync.Mutex
	storage Storage
	carts   map[string]*Cart
	log     *zap.Logger
}

func NewManager(storage Storage, log *zap.Logger) *Manager {
	return &Manager{
		storage: storage,
		carts:   make(map[string]*Cart),
		log:     log,
	}
}

func (m *Manager) Get(sessionID string) *Cart {
	m.mu.Lock()
	defer m.mu.Unlock()

	if c, ok := m.carts[sessionID]; ok {
		return c
	}

	c := New()
	if snapshot, err := m.storage.Load(sessionID); err != nil {
		m.log.Warn("load cart snapshot failed", zap.String("session_id", sessionID), zap.Error(err))
	} else if snapshot != nil {
		c.Restore(snapshot)
	}

	c.Subscribe(func(lines []Line) {
		data, err := json.Marshal(lines)
		if err != nil {
			m.log.Warn("marshal cart snapshot failed", zap.String("session_id", sessionID), zap.Error(err))
			return
		}
		if err := m.storage.Save(sessionID, data); err != nil {
			m.log.Warn("save cart snapshot failed", zap.String("session_id", sessionID), zap.Error(err))
		}
	})

	m.carts[sessionID] = c
	return c
}
