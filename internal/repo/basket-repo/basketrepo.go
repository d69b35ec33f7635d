package basketrepo

import (
	"context"

	"github.com/GlebRadaev/fruitshop/internal/kv"
	"go.uber.org/zap"
)

const basketKey = "basket"

type Repository struct {
	store kv.Store
}

func New(store kv.Store) *Repository {
	return &Repository{
		store: store,
	}
}

func (repo *Repository) ClearBasket(ctx context.Context) error {
	if err := repo.store.Remove(ctx, basketKey); err != nil {
		zap.L().Error("can't clear basket", zap.Error(err))
		return err
	}
	return nil
}
