package progress

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/GlebRadaev/fruitshop/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

const step = 10 * time.Millisecond

func NewMock(t *testing.T, startDelay, stepInterval time.Duration) (*Simulator, *MockLedger) {
	ctrl := gomock.NewController(t)
	ledger := NewMockLedger(ctrl)
	sim := New(ledger, startDelay, stepInterval)
	t.Cleanup(sim.Close)
	return sim, ledger
}

func waitDone(t *testing.T, h *Handle) {
	t.Helper()
	select {
	case <-h.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("simulation did not finish in time")
	}
}

func TestSimulator_RunsFullSequence(t *testing.T) {
	sim, ledger := NewMock(t, step, step)

	ledger.EXPECT().GetOrder(gomock.Any(), "ORD-1").Return(&domain.Order{ID: "ORD-1"}, nil)
	var calls []any
	for _, status := range Sequence {
		calls = append(calls, ledger.EXPECT().AdvanceStatus(gomock.Any(), "ORD-1", status, "").
			Return(&domain.Order{ID: "ORD-1", Status: status}, nil))
	}
	gomock.InOrder(calls...)

	h, err := sim.Start(context.Background(), "ORD-1")
	require.NoError(t, err)
	assert.Equal(t, "ORD-1", h.OrderID())

	waitDone(t, h)
	assert.False(t, sim.isRunning("ORD-1"))
}

func TestSimulator_StopBeforeFirstStep(t *testing.T) {
	sim, ledger := NewMock(t, time.Hour, time.Hour)
	ledger.EXPECT().GetOrder(gomock.Any(), "ORD-1").Return(&domain.Order{ID: "ORD-1"}, nil)

	h, err := sim.Start(context.Background(), "ORD-1")
	require.NoError(t, err)
	assert.True(t, sim.isRunning("ORD-1"))

	h.Stop()
	h.Stop()
	waitDone(t, h)
	assert.False(t, sim.isRunning("ORD-1"))
}

func TestSimulator_StopAfterFirstStep(t *testing.T) {
	sim, ledger := NewMock(t, step, time.Hour)
	ledger.EXPECT().GetOrder(gomock.Any(), "ORD-1").Return(&domain.Order{ID: "ORD-1"}, nil)

	advanced := make(chan struct{})
	ledger.EXPECT().AdvanceStatus(gomock.Any(), "ORD-1", domain.StatusConfirmed, "").
		DoAndReturn(func(context.Context, string, domain.OrderStatus, string) (*domain.Order, error) {
			close(advanced)
			return &domain.Order{ID: "ORD-1", Status: domain.StatusConfirmed}, nil
		})

	h, err := sim.Start(context.Background(), "ORD-1")
	require.NoError(t, err)

	<-advanced
	assert.True(t, sim.Stop("ORD-1"))
	waitDone(t, h)
	assert.False(t, sim.Stop("ORD-1"))
}

func TestSimulator_AlreadyRunning(t *testing.T) {
	sim, ledger := NewMock(t, time.Hour, time.Hour)
	ledger.EXPECT().GetOrder(gomock.Any(), "ORD-1").Return(&domain.Order{ID: "ORD-1"}, nil).Times(3)

	h, err := sim.Start(context.Background(), "ORD-1")
	require.NoError(t, err)

	_, err = sim.Start(context.Background(), "ORD-1")
	assert.ErrorIs(t, err, ErrAlreadyRunning)

	h.Stop()
	waitDone(t, h)

	h, err = sim.Start(context.Background(), "ORD-1")
	require.NoError(t, err)
	h.Stop()
	waitDone(t, h)
}

func TestSimulator_UnknownOrder(t *testing.T) {
	sim, ledger := NewMock(t, step, step)
	ledger.EXPECT().GetOrder(gomock.Any(), "ORD-404").Return(nil, domain.ErrNotFound)

	h, err := sim.Start(context.Background(), "ORD-404")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, h)
	assert.False(t, sim.isRunning("ORD-404"))
}

func TestSimulator_AdvanceErrorEndsSequence(t *testing.T) {
	sim, ledger := NewMock(t, step, step)
	ledger.EXPECT().GetOrder(gomock.Any(), "ORD-1").Return(&domain.Order{ID: "ORD-1"}, nil)
	ledger.EXPECT().AdvanceStatus(gomock.Any(), "ORD-1", domain.StatusConfirmed, "").
		Return(nil, errors.New("store unavailable"))

	h, err := sim.Start(context.Background(), "ORD-1")
	require.NoError(t, err)
	waitDone(t, h)
}

func TestSimulator_OutlivesCallerContext(t *testing.T) {
	sim, ledger := NewMock(t, step, step)
	ledger.EXPECT().GetOrder(gomock.Any(), "ORD-1").Return(&domain.Order{ID: "ORD-1"}, nil)
	ledger.EXPECT().AdvanceStatus(gomock.Any(), "ORD-1", gomock.Any(), "").
		Return(&domain.Order{ID: "ORD-1"}, nil).Times(len(Sequence))

	ctx, cancel := context.WithCancel(context.Background())
	h, err := sim.Start(ctx, "ORD-1")
	require.NoError(t, err)
	cancel()

	waitDone(t, h)
}

func TestSimulator_Close(t *testing.T) {
	ctrl := gomock.NewController(t)
	ledger := NewMockLedger(ctrl)
	sim := New(ledger, time.Hour, time.Hour)

	ledger.EXPECT().GetOrder(gomock.Any(), gomock.Any()).Return(&domain.Order{}, nil).Times(2)
	h1, err := sim.Start(context.Background(), "ORD-1")
	require.NoError(t, err)
	h2, err := sim.Start(context.Background(), "ORD-2")
	require.NoError(t, err)

	sim.Close()
	waitDone(t, h1)
	waitDone(t, h2)

	ledger.EXPECT().GetOrder(gomock.Any(), "ORD-3").Return(&domain.Order{}, nil)
	_, err = sim.Start(context.Background(), "ORD-3")
	assert.Error(t, err)
	assert.NotPanics(t, sim.Close)
}

func TestNew_Defaults(t *testing.T) {
	sim := New(nil, 0, 0)
	defer sim.Close()
	assert.Equal(t, DefaultStartDelay, sim.startDelay)
	assert.Equal(t, DefaultStepInterval, sim.stepInterval)
}
