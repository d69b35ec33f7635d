package service

import (
	"context"
	"fmt"

	"github.com/GlebRadaev/fruitshop/internal/config"
	"github.com/GlebRadaev/fruitshop/internal/handlers/auth"
	"github.com/GlebRadaev/fruitshop/internal/handlers/orders"
	"github.com/GlebRadaev/fruitshop/internal/progress"
	"github.com/GlebRadaev/fruitshop/internal/repo"
	"github.com/GlebRadaev/fruitshop/internal/service/accountservice"
	"github.com/GlebRadaev/fruitshop/internal/service/orderservice"

	pkgauth "github.com/GlebRadaev/fruitshop/pkg/auth"
)

type AccountService interface {
	auth.Service
	pkgauth.SessionView
	Restore(ctx context.Context) error
}

type Simulator interface {
	orders.Simulator
	Close()
}

type Services struct {
	AccountService AccountService
	OrderService   orders.Service
	Simulator      Simulator
	JWTService     pkgauth.JWTServiceInterface
}

func New(repo *repo.Repositories, cfg *config.Config) (*Services, error) {
	hashService, err := pkgauth.NewHashService(cfg.Hasher)
	if err != nil {
		return nil, fmt.Errorf("can't build hasher: %w", err)
	}
	jwtService := pkgauth.NewJWTService(cfg.JWTSecret)

	accountService := accountservice.New(repo.UserRepo, repo.SessionRepo, hashService, jwtService)
	orderService := orderservice.New(repo.OrderRepo, accountService, repo.BasketRepo,
		orderservice.WithStrictStatuses(cfg.StrictStatuses))
	simulator := progress.New(orderService, cfg.StartDelay, cfg.StepInterval)

	return &Services{
		AccountService: accountService,
		OrderService:   orderService,
		Simulator:      simulator,
		JWTService:     jwtService,
	}, nil
}
