package repo

import (
	"sync"

	"github.com/GlebRadaev/fruitshop/internal/kv"
	basketrepo "github.com/GlebRadaev/fruitshop/internal/repo/basket-repo"
	orderrepo "github.com/GlebRadaev/fruitshop/internal/repo/order-repo"
	sessionrepo "github.com/GlebRadaev/fruitshop/internal/repo/session-repo"
	userrepo "github.com/GlebRadaev/fruitshop/internal/repo/user-repo"
	"github.com/GlebRadaev/fruitshop/internal/service/accountservice"
	"github.com/GlebRadaev/fruitshop/internal/service/orderservice"
)

type Repositories struct {
	UserRepo    accountservice.Repo
	SessionRepo accountservice.SessionRepo
	OrderRepo   orderservice.Repo
	BasketRepo  orderservice.BasketClearer
}

func New(store kv.Store) *Repositories {
	// users and orders share one lock: both live in the same store.
	mu := &sync.Mutex{}

	return &Repositories{
		UserRepo:    userrepo.New(store, mu),
		SessionRepo: sessionrepo.New(store),
		OrderRepo:   orderrepo.New(store, mu),
		BasketRepo:  basketrepo.New(store),
	}
}
