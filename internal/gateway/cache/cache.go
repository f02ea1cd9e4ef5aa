// Package cache реализует tagged TTL cache для BFF gateway.
//
// Записи группируются по тегу (categories, products), чтобы
// /api/revalidate мог инвалидировать всю группу одним вызовом.
// Основной слой — память; опционально записи дублируются в
// персистентный Store и переживают рестарт gateway.
package cache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// ErrEntryNotFound возвращается Store, когда записи нет
var ErrEntryNotFound = errors.New("cache entry not found")

// Entry представляет одну запись кеша
type Entry struct {
	ExpiresAt time.Time // момент истечения
	Key       string    // ключ записи
	Tag       string    // тег группы (categories, products)
	Data      []byte    // сериализованный payload
}

// Expired проверяет, истекла ли запись
func (e *Entry) Expired(now time.Time) bool {
	return now.After(e.ExpiresAt)
}

//go:generate go tool moq -out store_mock.go . Store

// Store определяет персистентный слой кеша
type Store interface {
	// GetEntry возвращает запись по ключу или ErrEntryNotFound
	GetEntry(ctx context.Context, key string) (*Entry, error)

	// SaveEntry сохраняет или перезаписывает запись
	SaveEntry(ctx context.Context, entry *Entry) error

	// DeleteTag удаляет все записи с данным тегом
	DeleteTag(ctx context.Context, tag string) error

	// DeleteExpired удаляет истекшие записи
	DeleteExpired(ctx context.Context, now time.Time) error

	// Close закрывает хранилище
	Close() error
}

// Cache — потокобезопасный tagged TTL cache
type Cache struct {
	entries  map[string]*Entry
	store    Store // nil = только память
	logger   *slog.Logger
	cleanupC chan struct{}
	mu       sync.RWMutex
}

// Option настраивает Cache
type Option func(*Cache)

// WithStore подключает персистентный слой
func WithStore(store Store) Option {
	return func(c *Cache) {
		c.store = store
	}
}

// New создает новый Cache и запускает периодическую очистку
func New(logger *slog.Logger, opts ...Option) *Cache {
	c := &Cache{
		entries:  make(map[string]*Entry),
		logger:   logger,
		cleanupC: make(chan struct{}),
	}

	for _, opt := range opts {
		opt(c)
	}

	go c.cleanup()

	return c
}

// Get возвращает данные по ключу.
// При промахе в памяти пробует персистентный слой и поднимает
// живую запись обратно в память.
func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool) {
	now := time.Now()

	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if ok {
		if entry.Expired(now) {
			c.mu.Lock()
			delete(c.entries, key)
			c.mu.Unlock()
			c.logger.Debug("cache expired", "key", key)
			return nil, false
		}
		c.logger.Debug("cache hit", "key", key)
		return entry.Data, true
	}

	if c.store == nil {
		c.logger.Debug("cache miss", "key", key)
		return nil, false
	}

	// Промах в памяти: пробуем персистентный слой
	stored, err := c.store.GetEntry(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrEntryNotFound) {
			c.logger.Warn("cache store read failed", "key", key, "error", err)
		}
		return nil, false
	}

	if stored.Expired(now) {
		return nil, false
	}

	c.mu.Lock()
	c.entries[key] = stored
	c.mu.Unlock()

	c.logger.Debug("cache hit from store", "key", key)
	return stored.Data, true
}

// Set сохраняет данные с тегом и TTL
func (c *Cache) Set(ctx context.Context, key, tag string, data []byte, ttl time.Duration) {
	entry := &Entry{
		Key:       key,
		Tag:       tag,
		Data:      data,
		ExpiresAt: time.Now().Add(ttl),
	}

	c.mu.Lock()
	c.entries[key] = entry
	c.mu.Unlock()

	c.logger.Debug("cache set", "key", key, "tag", tag, "ttl", ttl)

	if c.store == nil {
		return
	}

	// Запись в персистентный слой best-effort:
	// ошибка не должна ломать ответ gateway
	if err := c.store.SaveEntry(ctx, entry); err != nil {
		c.logger.Warn("cache store write failed", "key", key, "error", err)
	}
}

// InvalidateTag удаляет все записи с данным тегом из памяти
// и персистентного слоя. Возвращает количество удаленных из памяти записей.
func (c *Cache) InvalidateTag(ctx context.Context, tag string) (int, error) {
	c.mu.Lock()
	removed := 0
	for key, entry := range c.entries {
		if entry.Tag == tag {
			delete(c.entries, key)
			removed++
		}
	}
	c.mu.Unlock()

	c.logger.Info("cache tag invalidated", "tag", tag, "removed", removed)

	if c.store == nil {
		return removed, nil
	}

	if err := c.store.DeleteTag(ctx, tag); err != nil {
		return removed, fmt.Errorf("failed to invalidate tag in store: %w", err)
	}

	return removed, nil
}

// Stop останавливает cleanup goroutine и закрывает персистентный слой
func (c *Cache) Stop() error {
	close(c.cleanupC)
	if c.store != nil {
		return c.store.Close()
	}
	return nil
}

// cleanup периодически удаляет истекшие записи
func (c *Cache) cleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.removeExpired()
		case <-c.cleanupC:
			return
		}
	}
}

// removeExpired удаляет истекшие записи из памяти и store
func (c *Cache) removeExpired() {
	now := time.Now()

	c.mu.Lock()
	for key, entry := range c.entries {
		if entry.Expired(now) {
			delete(c.entries, key)
		}
	}
	c.mu.Unlock()

	if c.store == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := c.store.DeleteExpired(ctx, now); err != nil {
		c.logger.Warn("cache store cleanup failed", "error", err)
	}
}
