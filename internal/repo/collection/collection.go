package collection

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/GlebRadaev/fruitshop/internal/kv"
	"github.com/samber/mo"
)

// Collection is a JSON encoded list stored under a single key. Every
// read-modify-write runs under mu, which is shared by all collections of
// one store so that no writer observes another's half-finished cycle.
type Collection[T any] struct {
	store kv.Store
	key   string
	mu    *sync.Mutex
}

func New[T any](store kv.Store, key string, mu *sync.Mutex) *Collection[T] {
	return &Collection[T]{
		store: store,
		key:   key,
		mu:    mu,
	}
}

func (c *Collection[T]) Load(ctx context.Context) ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load(ctx)
}

// Update loads the list, passes it to fn and writes back what fn returns.
// Nothing is written when fn fails.
func (c *Collection[T]) Update(ctx context.Context, fn func([]T) ([]T, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.load(ctx)
	if err != nil {
		return err
	}
	items, err = fn(items)
	if err != nil {
		return err
	}
	return c.save(ctx, items)
}

func (c *Collection[T]) load(ctx context.Context) ([]T, error) {
	raw, err := c.store.Get(ctx, c.key)
	if err != nil {
		return nil, err
	}
	items := make([]T, 0)
	if raw.OrEmpty() == "" {
		return items, nil
	}
	if err := json.Unmarshal([]byte(raw.MustGet()), &items); err != nil {
		return nil, fmt.Errorf("can't decode %s: %w", c.key, err)
	}
	return items, nil
}

func (c *Collection[T]) save(ctx context.Context, items []T) error {
	if items == nil {
		items = make([]T, 0)
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("can't encode %s: %w", c.key, err)
	}
	return c.store.Set(ctx, c.key, string(data))
}

// Value is a single JSON encoded value stored under a key.
type Value[T any] struct {
	store kv.Store
	key   string
}

func NewValue[T any](store kv.Store, key string) *Value[T] {
	return &Value[T]{
		store: store,
		key:   key,
	}
}

func (v *Value[T]) Load(ctx context.Context) (mo.Option[T], error) {
	raw, err := v.store.Get(ctx, v.key)
	if err != nil {
		return mo.None[T](), err
	}
	if raw.OrEmpty() == "" {
		return mo.None[T](), nil
	}
	var value T
	if err := json.Unmarshal([]byte(raw.MustGet()), &value); err != nil {
		return mo.None[T](), fmt.Errorf("can't decode %s: %w", v.key, err)
	}
	return mo.Some(value), nil
}

func (v *Value[T]) Save(ctx context.Context, value T) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("can't encode %s: %w", v.key, err)
	}
	return v.store.Set(ctx, v.key, string(data))
}

func (v *Value[T]) Clear(ctx context.Context) error {
	return v.store.Remove(ctx, v.key)
}
