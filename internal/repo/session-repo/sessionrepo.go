package sessionrepo

import (
	"context"

	"github.com/GlebRadaev/fruitshop/internal/domain"
	"github.com/GlebRadaev/fruitshop/internal/kv"
	"github.com/GlebRadaev/fruitshop/internal/repo/collection"
	"go.uber.org/zap"
)

const currentUserKey = "currentUser"

type Repository struct {
	snapshot *collection.Value[domain.SessionUser]
}

func New(store kv.Store) *Repository {
	return &Repository{
		snapshot: collection.NewValue[domain.SessionUser](store, currentUserKey),
	}
}

// Load returns the persisted session or nil when nobody is logged in.
func (repo *Repository) Load(ctx context.Context) (*domain.SessionUser, error) {
	snapshot, err := repo.snapshot.Load(ctx)
	if err != nil {
		zap.L().Error("can't load session snapshot", zap.Error(err))
		return nil, err
	}
	user, ok := snapshot.Get()
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (repo *Repository) Save(ctx context.Context, user *domain.SessionUser) error {
	if err := repo.snapshot.Save(ctx, *user); err != nil {
		zap.L().Error("can't save session snapshot", zap.Error(err))
		return err
	}
	return nil
}

func (repo *Repository) Clear(ctx context.Context) error {
	if err := repo.snapshot.Clear(ctx); err != nil {
		zap.L().Error("can't clear session snapshot", zap.Error(err))
		return err
	}
	return nil
}
