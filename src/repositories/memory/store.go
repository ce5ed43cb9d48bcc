// Package memory keeps every repository in process memory. It backs
// STORAGE_DRIVER=memory and the end-to-end router tests.
package memory

import (
	"sort"
	"sync"

	"github.com/khabaroff/flabef-storefront/src/repositories"
)

// NewSet returns a fresh, empty in-memory repository set
func NewSet() repositories.Set {
	return repositories.Set{
		Admins:     NewAdminRepo(),
		Tokens:     NewResetTokenRepo(),
		Products:   NewProductRepo(),
		ITServices: NewITServiceRepo(),
		FoodItems:  NewFoodItemRepo(),
		Cart:       NewCartRepo(),
		Contacts:   NewContactRepo(),
		Categories: NewCategoryRepo(),
		Settings:   NewSiteSettingRepo(),
		Footers:    NewFooterRepo(),
	}
}

// table is a mutex-guarded map of records; values are copied in and out
type table[T any] struct {
	mu   sync.RWMutex
	rows map[string]T
}

func newTable[T any]() *table[T] {
	return &table[T]{rows: make(map[string]T)}
}

func (t *table[T]) get(id string) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	v, ok := t.rows[id]
	return v, ok
}

func (t *table[T]) put(id string, v T) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rows[id] = v
}

func (t *table[T]) delete(id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.rows[id]; !ok {
		return false
	}
	delete(t.rows, id)
	return true
}

// update applies fn to the stored record under the write lock
func (t *table[T]) update(id string, fn func(*T)) (T, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	v, ok := t.rows[id]
	if !ok {
		var zero T
		return zero, false
	}
	fn(&v)
	t.rows[id] = v
	return v, true
}

// filter returns matching records ordered by less
func (t *table[T]) filter(keep func(T) bool, less func(a, b T) bool) []T {
	t.mu.RLock()
	out := make([]T, 0, len(t.rows))
	for _, v := range t.rows {
		if keep == nil || keep(v) {
			out = append(out, v)
		}
	}
	t.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

func (t *table[T]) count() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.rows)
}
