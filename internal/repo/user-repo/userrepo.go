package userrepo

import (
	"context"
	"fmt"
	"sync"

	"github.com/GlebRadaev/fruitshop/internal/domain"
	"github.com/GlebRadaev/fruitshop/internal/kv"
	"github.com/GlebRadaev/fruitshop/internal/repo/collection"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

const usersKey = "users"

type Repository struct {
	users *collection.Collection[domain.User]
}

func New(store kv.Store, mu *sync.Mutex) *Repository {
	return &Repository{
		users: collection.New[domain.User](store, usersKey, mu),
	}
}

func (repo *Repository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return repo.find(ctx, func(u domain.User) bool { return u.Email == email })
}

func (repo *Repository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	return repo.find(ctx, func(u domain.User) bool { return u.ID == id })
}

func (repo *Repository) find(ctx context.Context, match func(domain.User) bool) (*domain.User, error) {
	users, err := repo.users.Load(ctx)
	if err != nil {
		zap.L().Error("can't load users", zap.Error(err))
		return nil, err
	}
	user, ok := lo.Find(users, match)
	if !ok {
		return nil, nil
	}
	return &user, nil
}

// Create stores user unless its email is already taken.
func (repo *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	err := repo.users.Update(ctx, func(users []domain.User) ([]domain.User, error) {
		if lo.ContainsBy(users, func(u domain.User) bool { return u.Email == user.Email }) {
			return nil, domain.ErrDuplicateUser
		}
		return append(users, *user), nil
	})
	if err != nil {
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

// Update applies fn to the stored user with the given id and persists the result.
func (repo *Repository) Update(ctx context.Context, id string, fn func(*domain.User) error) (*domain.User, error) {
	var updated domain.User
	err := repo.users.Update(ctx, func(users []domain.User) ([]domain.User, error) {
		_, idx, ok := lo.FindIndexOf(users, func(u domain.User) bool { return u.ID == id })
		if !ok {
			return nil, fmt.Errorf("%w: user %s", domain.ErrNotFound, id)
		}
		if err := fn(&users[idx]); err != nil {
			return nil, err
		}
		updated = users[idx]
		return users, nil
	})
	if err != nil {
		zap.L().Error("can't update user", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return &updated, nil
}
