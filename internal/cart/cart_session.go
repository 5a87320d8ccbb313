package cart

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// Manager hands out exactly one Engine per session, creating and
// rehydrating it on first use. Carts are session-scoped state, not
// server-authoritative; there is no cross-device sync.
type Manager struct {
	mu       sync.Mutex
	engines  map[string]*Engine
	newStore StoreFactory
	logger   *zap.Logger
}

func NewManager(newStore StoreFactory, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{
		engines:  make(map[string]*Engine),
		newStore: newStore,
		logger:   logger,
	}
}

func (m *Manager) Engine(ctx context.Context, sessionID string) *Engine {
	m.mu.Lock()
	defer m.mu.Unlock()

	if e, ok := m.engines[sessionID]; ok {
		return e
	}

	e := NewEngine(ctx, m.newStore(sessionID), m.logger.With(zap.String("session_id", sessionID)))
	m.engines[sessionID] = e
	return e
}
