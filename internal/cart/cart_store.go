package cart

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"
)

// Persisted record names. Each holds a full serialized snapshot that is
// overwritten wholesale on every mutation.
const (
	RecordCart       = "cart"
	RecordSavedItems = "savedItems"
)

var ErrRecordNotFound = errors.New("record not found")

// Store is the durable storage the engine persists its snapshots to.
// A single engine is the only writer of its records.
type Store interface {
	Save(ctx context.Context, record string, data []byte) error
	Load(ctx context.Context, record string) ([]byte, error)
	Delete(ctx context.Context, record string) error
}

// StoreFactory yields a store namespaced to one session.
type StoreFactory func(sessionID string) Store

type redisStore struct {
	client *redis.Client
	prefix string
}

func NewRedisStore(client *redis.Client, sessionID string) Store {
	return &redisStore{
		client: client,
		prefix: fmt.Sprintf("session:%s:", sessionID),
	}
}

func NewRedisStoreFactory(client *redis.Client) StoreFactory {
	return func(sessionID string) Store {
		return NewRedisStore(client, sessionID)
	}
}

func (s *redisStore) Save(ctx context.Context, record string, data []byte) error {
	if err := s.client.Set(ctx, s.prefix+record, data, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s failed: %w", record, err)
	}
	return nil
}

func (s *redisStore) Load(ctx context.Context, record string) ([]byte, error) {
	data, err := s.client.Get(ctx, s.prefix+record).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s failed: %w", record, err)
	}
	return data, nil
}

func (s *redisStore) Delete(ctx context.Context, record string) error {
	if err := s.client.Del(ctx, s.prefix+record).Err(); err != nil {
		return fmt.Errorf("redis delete %s failed: %w", record, err)
	}
	return nil
}

// MemoryStore is an in-process Store used in tests and local development.
type MemoryStore struct {
	mu      sync.Mutex
	records map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string][]byte)}
}

func NewMemoryStoreFactory() StoreFactory {
	return func(string) Store {
		return NewMemoryStore()
	}
}

func (s *MemoryStore) Save(_ context.Context, record string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := make([]byte, len(data))
	copy(cp, data)
	s.records[record] = cp
	return nil
}

func (s *MemoryStore) Load(_ context.Context, record string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.records[record]
	if !ok {
		return nil, ErrRecordNotFound
	}
	return data, nil
}

func (s *MemoryStore) Delete(_ context.Context, record string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, record)
	return nil
}
