package progress

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/GlebRadaev/fruitshop/internal/domain"
	"go.uber.org/zap"
)

const (
	DefaultStartDelay   = 5 * time.Second
	DefaultStepInterval = 30 * time.Second

	workers = 4
)

var ErrAlreadyRunning = errors.New("simulation already running")

// Sequence is the order in which a simulated order moves through the shop.
var Sequence = []domain.OrderStatus{
	domain.StatusConfirmed,
	domain.StatusPreparing,
	domain.StatusOutForDelivery,
	domain.StatusDelivered,
}

type Ledger interface {
	GetOrder(ctx context.Context, id string) (*domain.Order, error)
	AdvanceStatus(ctx context.Context, id string, status domain.OrderStatus, message string) (*domain.Order, error)
}

// Handle controls a single running simulation.
type Handle struct {
	orderID string
	cancel  context.CancelFunc
	done    chan struct{}
}

func (h *Handle) OrderID() string {
	return h.orderID
}

// Stop cancels the remaining steps. Safe to call more than once.
func (h *Handle) Stop() {
	h.cancel()
}

// Done is closed once the simulation has finished or been stopped.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

type Simulator struct {
	ledger       Ledger
	startDelay   time.Duration
	stepInterval time.Duration
	workerPool   WorkerPoolI

	mu      sync.Mutex
	running map[string]*Handle
	closed  bool
}

func New(ledger Ledger, startDelay, stepInterval time.Duration) *Simulator {
	if startDelay <= 0 {
		startDelay = DefaultStartDelay
	}
	if stepInterval <= 0 {
		stepInterval = DefaultStepInterval
	}
	return &Simulator{
		ledger:       ledger,
		startDelay:   startDelay,
		stepInterval: stepInterval,
		workerPool:   NewWorkerPool(workers),
		running:      make(map[string]*Handle),
	}
}

// Start schedules the status sequence for orderID. The simulation outlives ctx;
// stop it through the returned handle, Stop or Close.
func (s *Simulator) Start(ctx context.Context, orderID string) (*Handle, error) {
	if _, err := s.ledger.GetOrder(ctx, orderID); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, errors.New("simulator is closed")
	}
	if _, ok := s.running[orderID]; ok {
		return nil, fmt.Errorf("%w: order %s", ErrAlreadyRunning, orderID)
	}

	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	h := &Handle{
		orderID: orderID,
		cancel:  cancel,
		done:    make(chan struct{}),
	}
	s.running[orderID] = h

	go s.run(runCtx, h)

	zap.L().Info("order simulation started", zap.String("order_id", orderID))
	return h, nil
}

// Stop cancels the simulation of orderID and reports whether one was running.
func (s *Simulator) Stop(orderID string) bool {
	s.mu.Lock()
	h, ok := s.running[orderID]
	s.mu.Unlock()
	if !ok {
		return false
	}
	h.Stop()
	return true
}

func (s *Simulator) isRunning(orderID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.running[orderID]
	return ok
}

// Close stops every simulation, waits for them and shuts the worker pool down.
func (s *Simulator) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	handles := make([]*Handle, 0, len(s.running))
	for _, h := range s.running {
		handles = append(handles, h)
	}
	s.mu.Unlock()

	for _, h := range handles {
		h.Stop()
		<-h.Done()
	}
	s.workerPool.Close()
	zap.L().Info("order simulator stopped")
}

func (s *Simulator) run(ctx context.Context, h *Handle) {
	defer func() {
		h.cancel()
		s.mu.Lock()
		delete(s.running, h.orderID)
		s.mu.Unlock()
		close(h.done)
	}()

	delay := s.startDelay
	for _, status := range Sequence {
		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			zap.L().Info("order simulation stopped", zap.String("order_id", h.orderID))
			return
		case <-timer.C:
		}

		if err := s.advance(ctx, h.orderID, status); err != nil {
			if !errors.Is(err, context.Canceled) {
				zap.L().Error("order simulation aborted", zap.String("order_id", h.orderID), zap.Error(err))
			}
			return
		}
		delay = s.stepInterval
	}
	zap.L().Info("order simulation finished", zap.String("order_id", h.orderID))
}

func (s *Simulator) advance(ctx context.Context, orderID string, status domain.OrderStatus) error {
	result := make(chan error, 1)
	err := s.workerPool.AddTask(ctx, func() error {
		if err := ctx.Err(); err != nil {
			result <- err
			return nil
		}
		_, err := s.ledger.AdvanceStatus(ctx, orderID, status, "")
		result <- err
		return err
	})
	if err != nil {
		return err
	}
	return <-result
}
