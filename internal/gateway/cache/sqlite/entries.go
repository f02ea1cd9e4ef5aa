package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/aurea-shop/aurea/internal/gateway/cache"
)

// Compile-time check that Storage implements cache.Store
var _ cache.Store = (*Storage)(nil)

// GetEntry возвращает запись кеша по ключу
func (s *Storage) GetEntry(ctx context.Context, key string) (*cache.Entry, error) {
	query := `
		SELECT key, tag, data, expires_at
		FROM cache_entries
		WHERE key = ?
	`

	entry := &cache.Entry{}
	var expiresAt int64

	err := s.db.QueryRowContext(ctx, query, key).Scan(
		&entry.Key,
		&entry.Tag,
		&entry.Data,
		&expiresAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, cache.ErrEntryNotFound
		}
		return nil, fmt.Errorf("failed to get cache entry: %w", err)
	}

	entry.ExpiresAt = time.Unix(expiresAt, 0)

	return entry, nil
}

// SaveEntry сохраняет или перезаписывает запись кеша
func (s *Storage) SaveEntry(ctx context.Context, entry *cache.Entry) error {
	query := `
		INSERT OR REPLACE INTO cache_entries (key, tag, data, expires_at)
		VALUES (?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		entry.Key,
		entry.Tag,
		entry.Data,
		entry.ExpiresAt.Unix(),
	)

	if err != nil {
		return fmt.Errorf("failed to save cache entry: %w", err)
	}

	return nil
}

// DeleteTag удаляет все записи с данным тегом
func (s *Storage) DeleteTag(ctx context.Context, tag string) error {
	query := `DELETE FROM cache_entries WHERE tag = ?`

	if _, err := s.db.ExecContext(ctx, query, tag); err != nil {
		return fmt.Errorf("failed to delete cache tag: %w", err)
	}

	return nil
}

// DeleteExpired удаляет истекшие записи
func (s *Storage) DeleteExpired(ctx context.Context, now time.Time) error {
	query := `DELETE FROM cache_entries WHERE expires_at < ?`

	if _, err := s.db.ExecContext(ctx, query, now.Unix()); err != nil {
		return fmt.Errorf("failed to delete expired entries: %w", err)
	}

	return nil
}
