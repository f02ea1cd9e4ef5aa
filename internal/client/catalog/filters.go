// Package catalog хранит состояние фильтров и пагинации витрины
// и сериализует его в URL query параметры.
package catalog

import (
	"net/url"
	"strconv"
	"sync"
	"time"
)

// Значения по умолчанию; при кодировании в query они опускаются
const (
	DefaultPage = 1
	DefaultSize = 12

	// DebounceDelay — задержка перед применением keyword,
	// чтобы не дергать поиск на каждый введенный символ
	DebounceDelay = 400 * time.Millisecond
)

// Ключи фильтров для SetFilter
const (
	FilterKeyword  = "keyword"
	FilterCategory = "category"
	FilterSort     = "sort"
	FilterMinPrice = "minPrice"
	FilterMaxPrice = "maxPrice"
	FilterColor    = "color"
	FilterInStock  = "inStock"
)

// Filters представляет полное состояние фильтров и пагинации
type Filters struct {
	Keyword  string
	Category string // slug категории, разрешается в ID на стороне gateway
	Sort     string
	MinPrice string
	MaxPrice string
	Color    string
	InStock  bool
	Page     int
	Size     int
}

// DefaultFilters возвращает состояние по умолчанию
func DefaultFilters() Filters {
	return Filters{Page: DefaultPage, Size: DefaultSize}
}

// HasNextPage сообщает, есть ли следующая страница
func (f Filters) HasNextPage(totalPages int) bool {
	return f.Page < totalPages
}

// HasPreviousPage сообщает, есть ли предыдущая страница
func (f Filters) HasPreviousPage() bool {
	return f.Page > 1
}

// Encode сериализует состояние в query параметры.
// Значения по умолчанию опускаются, чтобы URL оставался чистым.
func (f Filters) Encode() url.Values {
	query := url.Values{}

	if f.Keyword != "" {
		query.Set("keyword", f.Keyword)
	}
	if f.Category != "" {
		query.Set("category", f.Category)
	}
	if f.Sort != "" {
		query.Set("sort", f.Sort)
	}
	if f.MinPrice != "" {
		query.Set("minPrice", f.MinPrice)
	}
	if f.MaxPrice != "" {
		query.Set("maxPrice", f.MaxPrice)
	}
	if f.Color != "" {
		query.Set("color", f.Color)
	}
	if f.InStock {
		query.Set("inStock", "true")
	}
	if f.Page != DefaultPage {
		query.Set("page", strconv.Itoa(f.Page))
	}
	if f.Size != DefaultSize {
		query.Set("size", strconv.Itoa(f.Size))
	}

	return query
}

// Parse восстанавливает состояние из query параметров.
// Невалидные числовые значения откатываются к значениям по умолчанию.
func Parse(query url.Values) Filters {
	f := DefaultFilters()

	f.Keyword = query.Get("keyword")
	f.Category = query.Get("category")
	f.Sort = query.Get("sort")
	f.MinPrice = query.Get("minPrice")
	f.MaxPrice = query.Get("maxPrice")
	f.Color = query.Get("color")
	f.InStock = query.Get("inStock") == "true"

	if page, err := strconv.Atoi(query.Get("page")); err == nil && page >= 1 {
		f.Page = page
	}
	if size, err := strconv.Atoi(query.Get("size")); err == nil && size >= 1 {
		f.Size = size
	}

	return f
}

// Manager управляет состоянием фильтров: мутации, debounce
// по keyword и уведомление подписчика об изменении параметров запроса
type Manager struct {
	mu       sync.Mutex
	filters  Filters
	onChange func(Filters)

	// debounce таймер для keyword
	keywordTimer *time.Timer
}

// NewManager создает менеджер с начальным состоянием из query.
// onChange вызывается после каждого изменения, требующего перезапроса.
func NewManager(query url.Values, onChange func(Filters)) *Manager {
	return &Manager{
		filters:  Parse(query),
		onChange: onChange,
	}
}

// Filters возвращает текущее состояние
func (m *Manager) Filters() Filters {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.filters
}

// SetFilter обновляет одно поле фильтра.
// Любая смена фильтра кроме sort сбрасывает страницу на первую.
// keyword применяется с задержкой DebounceDelay, остальные сразу.
func (m *Manager) SetFilter(key, value string) {
	m.mu.Lock()

	switch key {
	case FilterKeyword:
		m.filters.Keyword = value
		m.filters.Page = DefaultPage
		// Перезапускаем debounce: считается только последнее значение
		if m.keywordTimer != nil {
			m.keywordTimer.Stop()
		}
		m.keywordTimer = time.AfterFunc(DebounceDelay, m.notify)
		m.mu.Unlock()
		return
	case FilterCategory:
		m.filters.Category = value
		m.filters.Page = DefaultPage
	case FilterSort:
		// Смена сортировки не сбрасывает страницу
		m.filters.Sort = value
	case FilterMinPrice:
		m.filters.MinPrice = value
		m.filters.Page = DefaultPage
	case FilterMaxPrice:
		m.filters.MaxPrice = value
		m.filters.Page = DefaultPage
	case FilterColor:
		m.filters.Color = value
		m.filters.Page = DefaultPage
	case FilterInStock:
		m.filters.InStock = value == "true"
		m.filters.Page = DefaultPage
	default:
		// Неизвестный ключ игнорируется
		m.mu.Unlock()
		return
	}

	m.mu.Unlock()
	m.notify()
}

// SetPage переключает страницу
func (m *Manager) SetPage(page int) {
	if page < 1 {
		page = 1
	}

	m.mu.Lock()
	m.filters.Page = page
	m.mu.Unlock()

	m.notify()
}

// SetLimit меняет размер страницы и сбрасывает страницу на первую
func (m *Manager) SetLimit(size int) {
	if size < 1 {
		size = DefaultSize
	}

	m.mu.Lock()
	m.filters.Size = size
	m.filters.Page = DefaultPage
	m.mu.Unlock()

	m.notify()
}

// Reset восстанавливает все фильтры и пагинацию к значениям по умолчанию
func (m *Manager) Reset() {
	m.mu.Lock()
	if m.keywordTimer != nil {
		m.keywordTimer.Stop()
		m.keywordTimer = nil
	}
	m.filters = DefaultFilters()
	m.mu.Unlock()

	m.notify()
}

// Stop отменяет отложенное применение keyword
func (m *Manager) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.keywordTimer != nil {
		m.keywordTimer.Stop()
		m.keywordTimer = nil
	}
}

// notify отдает подписчику снимок текущего состояния
func (m *Manager) notify() {
	if m.onChange == nil {
		return
	}

	m.mu.Lock()
	snapshot := m.filters
	m.mu.Unlock()

	m.onChange(snapshot)
}
