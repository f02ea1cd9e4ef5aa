// Package cart реализует локальную корзину клиента: гостевой и
// авторизованный режимы, слияние при входе и сохранение в storage.
package cart

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aurea-shop/aurea/internal/client/storage"
	"github.com/aurea-shop/aurea/internal/models"
	"github.com/aurea-shop/aurea/pkg/api"
)

//go:generate go tool moq -out syncer_mock.go . ServerSyncer

// ErrItemNotFound возвращается при операции над отсутствующей позицией
var ErrItemNotFound = errors.New("cart item not found")

// ErrServerCartUnavailable означает, что серверная корзина недоступна.
// Локальная корзина при этом сохраняется как есть.
var ErrServerCartUnavailable = errors.New("server cart unavailable")

// ServerSyncer отправляет локальную корзину на сервер при входе.
// Серверная корзина — источник истины после авторизации, но upstream
// может ее не поддерживать: ошибка не считается фатальной.
type ServerSyncer interface {
	Sync(ctx context.Context, req api.CartSyncRequest) error
}

// loggingSyncer — заглушка по умолчанию: серверной корзины нет,
// попытка синхронизации логируется и возвращает ErrServerCartUnavailable
type loggingSyncer struct {
	logger *slog.Logger
}

func (s *loggingSyncer) Sync(ctx context.Context, req api.CartSyncRequest) error {
	s.logger.DebugContext(ctx, "cart sync skipped: no server cart endpoint",
		slog.Int("lines", len(req.Lines)))
	return ErrServerCartUnavailable
}

// Service управляет корзиной поверх CartStorage
type Service struct {
	logger *slog.Logger
	store  storage.CartStorage
	syncer ServerSyncer
}

// NewService создает сервис корзины.
// Если syncer == nil, используется заглушка без серверной корзины.
func NewService(logger *slog.Logger, store storage.CartStorage, syncer ServerSyncer) *Service {
	if syncer == nil {
		syncer = &loggingSyncer{logger: logger}
	}
	return &Service{
		logger: logger,
		store:  store,
		syncer: syncer,
	}
}

// load возвращает текущую запись корзины.
// Отсутствие записи — это пустая гостевая корзина, не ошибка.
func (s *Service) load(ctx context.Context) (*storage.CartRecord, error) {
	record, err := s.store.GetCart(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrCartNotFound) {
			return storage.NewCartRecord(), nil
		}
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	return record, nil
}

// Items возвращает текущие позиции корзины
func (s *Service) Items(ctx context.Context) ([]models.CartItem, error) {
	record, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return record.State.Items, nil
}

// IsAuthenticated сообщает, в каком режиме находится корзина
func (s *Service) IsAuthenticated(ctx context.Context) (bool, error) {
	record, err := s.load(ctx)
	if err != nil {
		return false, err
	}
	return record.State.IsAuthenticated, nil
}

// AddItem добавляет позицию в корзину.
// Если позиция с тем же ключом (id, variantId) уже есть,
// количества складываются.
func (s *Service) AddItem(ctx context.Context, item models.CartItem) error {
	if item.ID == "" {
		return fmt.Errorf("cart item without product id")
	}
	if item.Quantity <= 0 {
		item.Quantity = 1
	}

	record, err := s.load(ctx)
	if err != nil {
		return err
	}

	record.State.Items = mergeItem(record.State.Items, item)

	if err := s.store.SaveCart(ctx, record); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}

	s.logger.DebugContext(ctx, "cart item added",
		slog.String("key", item.Key()),
		slog.Int("quantity", item.Quantity))

	return nil
}

// UpdateQuantity устанавливает количество для позиции по ключу.
// Количество <= 0 удаляет позицию.
func (s *Service) UpdateQuantity(ctx context.Context, key string, quantity int) error {
	if quantity <= 0 {
		return s.RemoveItem(ctx, key)
	}

	record, err := s.load(ctx)
	if err != nil {
		return err
	}

	found := false
	for i := range record.State.Items {
		if record.State.Items[i].Key() == key {
			record.State.Items[i].Quantity = quantity
			found = true
			break
		}
	}
	if !found {
		return ErrItemNotFound
	}

	if err := s.store.SaveCart(ctx, record); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}

	return nil
}

// RemoveItem удаляет позицию по ключу
func (s *Service) RemoveItem(ctx context.Context, key string) error {
	record, err := s.load(ctx)
	if err != nil {
		return err
	}

	items := record.State.Items[:0]
	found := false
	for _, item := range record.State.Items {
		if item.Key() == key {
			found = true
			continue
		}
		items = append(items, item)
	}
	if !found {
		return ErrItemNotFound
	}

	record.State.Items = items

	if err := s.store.SaveCart(ctx, record); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}

	return nil
}

// Clear опустошает корзину. Это единственная операция,
// уничтожающая позиции: смена сессии их сохраняет.
func (s *Service) Clear(ctx context.Context) error {
	record, err := s.load(ctx)
	if err != nil {
		return err
	}

	record.State.Items = []models.CartItem{}

	if err := s.store.SaveCart(ctx, record); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}

	s.logger.DebugContext(ctx, "cart cleared")

	return nil
}

// Login переводит корзину в авторизованный режим.
// Гостевые позиции один раз отправляются на сервер; флаг Merged
// защищает от повторного слияния при повторном входе.
func (s *Service) Login(ctx context.Context) error {
	record, err := s.load(ctx)
	if err != nil {
		return err
	}

	if record.State.IsAuthenticated && record.State.Merged {
		return nil
	}

	record.State.IsAuthenticated = true

	if !record.State.Merged && len(record.State.Items) > 0 {
		if err := s.syncer.Sync(ctx, toSyncRequest(record.State.Items)); err != nil {
			// Недоступность серверной корзины не блокирует вход:
			// локальные позиции остаются на месте
			s.logger.WarnContext(ctx, "cart merge: server cart unavailable, keeping local items",
				slog.Any("error", err))
		}
	}
	record.State.Merged = true

	if err := s.store.SaveCart(ctx, record); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}

	return nil
}

// Logout возвращает корзину в гостевой режим, сохраняя позиции
func (s *Service) Logout(ctx context.Context) error {
	record, err := s.load(ctx)
	if err != nil {
		return err
	}

	record.State.IsAuthenticated = false
	record.State.Merged = false

	if err := s.store.SaveCart(ctx, record); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}

	return nil
}

// mergeItem вливает позицию в список: совпадение по ключу
// суммирует количества, иначе позиция добавляется в конец
func mergeItem(items []models.CartItem, item models.CartItem) []models.CartItem {
	for i := range items {
		if items[i].Key() == item.Key() {
			items[i].Quantity += item.Quantity
			return items
		}
	}
	return append(items, item)
}

// toSyncRequest собирает wire-формат серверной синхронизации
func toSyncRequest(items []models.CartItem) api.CartSyncRequest {
	lines := make([]api.CartLine, 0, len(items))
	for _, item := range items {
		lines = append(lines, api.CartLine{
			ProductID: item.ID,
			VariantID: item.VariantID,
			Quantity:  item.Quantity,
		})
	}
	return api.CartSyncRequest{Lines: lines}
}
