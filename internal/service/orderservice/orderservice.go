package orderservice

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/GlebRadaev/fruitshop/internal/domain"
	"github.com/GlebRadaev/fruitshop/pkg/idx"
	"go.uber.org/zap"
)

type Repo interface {
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	FindOrdersByUserID(ctx context.Context, userID string) ([]domain.Order, error)
	Save(ctx context.Context, order *domain.Order) error
	Delete(ctx context.Context, id string) error
	Update(ctx context.Context, id string, fn func(*domain.Order) error) (*domain.Order, error)
}

// Accounts is the part of the account directory the ledger relies on.
type Accounts interface {
	CurrentUser() *domain.SessionUser
	AppendOrder(ctx context.Context, userID, orderID string) error
}

type BasketClearer interface {
	ClearBasket(ctx context.Context) error
}

const deliveryWindow = 2 * time.Hour

type Option func(*Service)

// WithStrictStatuses makes AdvanceStatus reject statuses outside the known set.
func WithStrictStatuses(strict bool) Option {
	return func(s *Service) {
		s.strictStatuses = strict
	}
}

// Service is the order ledger.
type Service struct {
	repo           Repo
	accounts       Accounts
	basket         BasketClearer
	strictStatuses bool
	now            func() time.Time
}

func New(repo Repo, accounts Accounts, basket BasketClearer, opts ...Option) *Service {
	s := &Service{
		repo:     repo,
		accounts: accounts,
		basket:   basket,
		now:      func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) CreateOrder(ctx context.Context, items []string, deliveryDetails json.RawMessage) (*domain.Order, error) {
	user := s.accounts.CurrentUser()
	if user == nil {
		return nil, fmt.Errorf("%w: please login to place an order", domain.ErrUnauthenticated)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: order has no items", domain.ErrValidation)
	}

	now := s.now()
	order := &domain.Order{
		ID:                idx.NewOrderID(now),
		UserID:            user.ID,
		Items:             append([]string{}, items...),
		DeliveryDetails:   domain.NormalizeDetails(deliveryDetails),
		Status:            domain.StatusPending,
		OrderDate:         now,
		EstimatedDelivery: now.Add(deliveryWindow),
		Total:             CalculateTotal(items),
		StatusHistory: []domain.StatusEntry{
			{Status: domain.StatusPending, Timestamp: now, Message: domain.PlacedMessage},
		},
	}

	if err := s.repo.Save(ctx, order); err != nil {
		zap.L().Error("can't save order: ", zap.Error(err))
		return nil, err
	}
	if err := s.accounts.AppendOrder(ctx, user.ID, order.ID); err != nil {
		zap.L().Error("can't attach order to user, rolling back", zap.String("order_id", order.ID), zap.Error(err))
		if rbErr := s.repo.Delete(ctx, order.ID); rbErr != nil {
			return nil, fmt.Errorf("%w (rollback failed: %v)", err, rbErr)
		}
		return nil, err
	}
	if err := s.basket.ClearBasket(ctx); err != nil {
		zap.L().Error("order placed but basket was not cleared", zap.String("order_id", order.ID), zap.Error(err))
	}

	zap.L().Info("order placed", zap.String("order_id", order.ID), zap.Float64("total", order.Total))
	return order, nil
}

// ListOrders returns the session user's orders, most recent first.
func (s *Service) ListOrders(ctx context.Context) ([]domain.Order, error) {
	user := s.accounts.CurrentUser()
	if user == nil {
		return []domain.Order{}, nil
	}
	orders, err := s.repo.FindOrdersByUserID(ctx, user.ID)
	if err != nil {
		zap.L().Error("failed to get orders", zap.Error(err))
		return nil, err
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	return orders, nil
}

func (s *Service) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, fmt.Errorf("%w: order %s", domain.ErrNotFound, id)
	}
	return order, nil
}

// AdvanceStatus moves the order to status. Any status may follow any other;
// an empty message falls back to the status default.
func (s *Service) AdvanceStatus(ctx context.Context, id string, status domain.OrderStatus, message string) (*domain.Order, error) {
	if status == "" {
		return nil, fmt.Errorf("%w: status is required", domain.ErrValidation)
	}
	if s.strictStatuses && status.IsCustom() {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, status)
	}

	order, err := s.repo.Update(ctx, id, func(o *domain.Order) error {
		o.Advance(status, message, s.now())
		return nil
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("order status updated", zap.String("order_id", id), zap.String("status", status.String()))
	return order, nil
}
