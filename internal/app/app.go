package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/fruitshop/internal/config"
	"github.com/GlebRadaev/fruitshop/internal/handlers"
	"github.com/GlebRadaev/fruitshop/internal/kv"
	"github.com/GlebRadaev/fruitshop/internal/repo"
	"github.com/GlebRadaev/fruitshop/internal/service"
	"github.com/GlebRadaev/fruitshop/pkg/logger"
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg   *config.Config
	api   *handlers.Handlers
	srv   *service.Services
	repo  *repo.Repositories
	store kv.Store

	errCh chan error
	group errgroup.Group
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	store, err := kv.Open(ctx, cfg.StoreDSN)
	if err != nil {
		zap.L().Error("open store failed: ", zap.Error(err))
		return fmt.Errorf("can't open store: %w", err)
	}

	a.cfg = cfg
	a.store = store
	a.repo = repo.New(store)
	a.srv, err = service.New(a.repo, cfg)
	if err != nil {
		store.Close()
		return fmt.Errorf("can't build services: %w", err)
	}
	if err := a.srv.AccountService.Restore(ctx); err != nil {
		a.srv.Simulator.Close()
		store.Close()
		return fmt.Errorf("can't restore session: %w", err)
	}
	a.api = handlers.New(a.srv, cfg.LoginRatePerMinute)

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:    a.cfg.Address,
		Handler: router,
	}

	a.group.Go(func() error {
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := server.Shutdown(sCtx)

		a.srv.Simulator.Close()
		if cErr := a.store.Close(); cErr != nil {
			zap.L().Error("can't close store", zap.Error(cErr))
		}
		return err
	})

	a.group.Go(func() error {
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
		return nil
	})

	return nil
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	groupErr := a.group.Wait()
	close(a.errCh)
	wg.Wait()

	if appErr == nil && groupErr != nil {
		appErr = fmt.Errorf("shutdown failed: %w", groupErr)
	}
	return appErr
}
