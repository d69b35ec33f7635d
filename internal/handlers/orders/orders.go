package orders

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/GlebRadaev/fruitshop/internal/domain"
	"github.com/GlebRadaev/fruitshop/internal/dto"
	"github.com/GlebRadaev/fruitshop/internal/progress"
	"github.com/GlebRadaev/fruitshop/pkg/auth"
	"github.com/GlebRadaev/fruitshop/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/samber/lo"
)

type Service interface {
	CreateOrder(ctx context.Context, items []string, deliveryDetails json.RawMessage) (*domain.Order, error)
	ListOrders(ctx context.Context) ([]domain.Order, error)
	GetOrder(ctx context.Context, id string) (*domain.Order, error)
	AdvanceStatus(ctx context.Context, id string, status domain.OrderStatus, message string) (*domain.Order, error)
}

type Simulator interface {
	Start(ctx context.Context, orderID string) (*progress.Handle, error)
	Stop(orderID string) bool
}

type OrderHandler struct {
	orderService Service
	simulator    Simulator
}

func New(orderService Service, simulator Simulator) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		simulator:    simulator,
	}
}

// AddOrder godoc
//
//	@Summary		Place an order
//	@Description	Place an order for the logged in user and clear the basket.
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.CreateOrderRequestDTO	true	"Items and delivery details"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.OrderResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body or no items"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/orders [post]
func (h *OrderHandler) AddOrder(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateOrderRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	order, err := h.orderService.CreateOrder(r.Context(), req.Items, req.DeliveryDetails)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewOrderResponse(*order))
}

// GetOrders godoc
//
//	@Summary		Get orders list for user
//	@Description	Orders of the logged in user, most recent first
//	@Tags			Orders
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.OrderResponseDTO
//	@Failure		204	{object}	utils.Response	"No data available"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/orders [get]
func (h *OrderHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderService.ListOrders(r.Context())
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}

	if len(orders) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No data available")
		return
	}

	response := lo.Map(orders, func(order domain.Order, _ int) dto.OrderResponseDTO {
		return dto.NewOrderResponse(order)
	})
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetOrder godoc
//
//	@Summary		Get an order
//	@Tags			Orders
//	@Produce		json
//	@Param			id	path	string	true	"Order ID"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.OrderResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Order not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/orders/{id} [get]
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	order, ok := h.ownedOrder(w, r)
	if !ok {
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewOrderResponse(*order))
}

// UpdateStatus godoc
//
//	@Summary		Change order status
//	@Description	Append a status to the order history. Unknown statuses are accepted unless the server runs with strict statuses.
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			id		path	string						true	"Order ID"
//	@Param			request	body	dto.UpdateStatusRequestDTO	true	"New status"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.OrderResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body or status"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Order not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/orders/{id}/status [post]
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateStatusRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	order, ok := h.ownedOrder(w, r)
	if !ok {
		return
	}
	updated, err := h.orderService.AdvanceStatus(r.Context(), order.ID, domain.OrderStatus(req.Status), req.Message)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewOrderResponse(*updated))
}

// StartSimulation godoc
//
//	@Summary		Simulate order progress
//	@Description	Walk the order through confirmed, preparing, out_for_delivery and delivered on a timer.
//	@Tags			Orders
//	@Produce		json
//	@Param			id	path	string	true	"Order ID"
//	@Security		BearerAuth
//	@Success		202	{object}	dto.SimulationResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Order not found"
//	@Failure		409	{object}	utils.Response	"Simulation already running"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/orders/{id}/simulate [post]
func (h *OrderHandler) StartSimulation(w http.ResponseWriter, r *http.Request) {
	order, ok := h.ownedOrder(w, r)
	if !ok {
		return
	}
	if _, err := h.simulator.Start(r.Context(), order.ID); err != nil {
		if errors.Is(err, progress.ErrAlreadyRunning) {
			utils.RespondWithError(w, http.StatusConflict, err.Error())
			return
		}
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusAccepted, dto.SimulationResponseDTO{
		Message: "Simulation started",
		OrderID: order.ID,
	})
}

// StopSimulation godoc
//
//	@Summary		Stop order simulation
//	@Tags			Orders
//	@Produce		json
//	@Param			id	path	string	true	"Order ID"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.SimulationResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Order or simulation not found"
//	@Router			/api/user/orders/{id}/simulate [delete]
func (h *OrderHandler) StopSimulation(w http.ResponseWriter, r *http.Request) {
	order, ok := h.ownedOrder(w, r)
	if !ok {
		return
	}
	if !h.simulator.Stop(order.ID) {
		utils.RespondWithError(w, http.StatusNotFound, "No simulation running for this order")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.SimulationResponseDTO{
		Message: "Simulation stopped",
		OrderID: order.ID,
	})
}

// ownedOrder loads the order named in the path. Orders of other users are
// reported as missing.
func (h *OrderHandler) ownedOrder(w http.ResponseWriter, r *http.Request) (*domain.Order, bool) {
	id := chi.URLParam(r, "id")
	order, err := h.orderService.GetOrder(r.Context(), id)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return nil, false
	}
	userID, _ := r.Context().Value(auth.UserIDKey).(string)
	if order.UserID != userID {
		utils.RespondWithServiceError(w, domain.ErrNotFound)
		return nil, false
	}
	return order, true
}
