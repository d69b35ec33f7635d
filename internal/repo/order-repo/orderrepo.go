package orderrepo

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/GlebRadaev/fruitshop/internal/domain"
	"github.com/GlebRadaev/fruitshop/internal/kv"
	"github.com/GlebRadaev/fruitshop/internal/repo/collection"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

const ordersKey = "orders"

type Repository struct {
	orders *collection.Collection[domain.Order]
}

func New(store kv.Store, mu *sync.Mutex) *Repository {
	return &Repository{
		orders: collection.New[domain.Order](store, ordersKey, mu),
	}
}

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	orders, err := r.orders.Load(ctx)
	if err != nil {
		zap.L().Error("can't load orders", zap.Error(err))
		return nil, err
	}
	order, ok := lo.Find(orders, func(o domain.Order) bool { return o.ID == id })
	if !ok {
		return nil, nil
	}
	return &order, nil
}

// FindOrdersByUserID returns the user's orders, most recent first.
func (r *Repository) FindOrdersByUserID(ctx context.Context, userID string) ([]domain.Order, error) {
	orders, err := r.orders.Load(ctx)
	if err != nil {
		zap.L().Error("can't get orders", zap.Error(err))
		return nil, err
	}
	owned := lo.Filter(orders, func(o domain.Order, _ int) bool { return o.UserID == userID })
	sort.SliceStable(owned, func(i, j int) bool {
		return owned[i].OrderDate.After(owned[j].OrderDate)
	})
	return owned, nil
}

func (r *Repository) Save(ctx context.Context, order *domain.Order) error {
	err := r.orders.Update(ctx, func(orders []domain.Order) ([]domain.Order, error) {
		if lo.ContainsBy(orders, func(o domain.Order) bool { return o.ID == order.ID }) {
			return nil, fmt.Errorf("order %s already exists", order.ID)
		}
		return append(orders, *order), nil
	})
	if err != nil {
		zap.L().Error("can't save order", zap.Error(err))
		return err
	}
	return nil
}

// Delete drops an order. Only used to undo a Save whose follow-up failed.
func (r *Repository) Delete(ctx context.Context, id string) error {
	err := r.orders.Update(ctx, func(orders []domain.Order) ([]domain.Order, error) {
		return lo.Reject(orders, func(o domain.Order, _ int) bool { return o.ID == id }), nil
	})
	if err != nil {
		zap.L().Error("can't delete order", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

// Update applies fn to the stored order with the given id and persists the result.
func (r *Repository) Update(ctx context.Context, id string, fn func(*domain.Order) error) (*domain.Order, error) {
	var updated domain.Order
	err := r.orders.Update(ctx, func(orders []domain.Order) ([]domain.Order, error) {
		_, idx, ok := lo.FindIndexOf(orders, func(o domain.Order) bool { return o.ID == id })
		if !ok {
			return nil, fmt.Errorf("%w: order %s", domain.ErrNotFound, id)
		}
		if err := fn(&orders[idx]); err != nil {
			return nil, err
		}
		updated = orders[idx]
		return orders, nil
	})
	if err != nil {
		zap.L().Error("failed to update order", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return &updated, nil
}
