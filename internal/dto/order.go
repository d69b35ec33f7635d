package dto

import (
	"encoding/json"
	"time"

	"github.com/GlebRadaev/fruitshop/internal/domain"
	"github.com/samber/lo"
)

type CreateOrderRequestDTO struct {
	Items           []string        `json:"items" example:"apple,bundle_summer"`
	DeliveryDetails json.RawMessage `json:"deliveryDetails" swaggertype:"object"`
}

type UpdateStatusRequestDTO struct {
	Status  string `json:"status" example:"confirmed"`
	Message string `json:"message,omitempty" example:"Picked by Sam"`
}

type StatusEntryDTO struct {
	Status    string `json:"status" example:"pending"`
	Timestamp string `json:"timestamp" example:"2024-10-20T12:00:00Z"`
	Message   string `json:"message" example:"Order placed successfully"`
}

type OrderResponseDTO struct {
	ID                string           `json:"id" example:"ORD-01J9Z3K8Q4T6V2X5Y7B9C1D3E5"`
	Items             []string         `json:"items"`
	DeliveryDetails   json.RawMessage  `json:"deliveryDetails,omitempty" swaggertype:"object"`
	Status            string           `json:"status" example:"pending"`
	OrderDate         string           `json:"orderDate" example:"2024-10-20T12:00:00Z"`
	EstimatedDelivery string           `json:"estimatedDelivery" example:"2024-10-20T14:00:00Z"`
	Total             float64          `json:"total" example:"11.98"`
	StatusHistory     []StatusEntryDTO `json:"statusHistory"`
}

func NewOrderResponse(o domain.Order) OrderResponseDTO {
	return OrderResponseDTO{
		ID:                o.ID,
		Items:             o.Items,
		DeliveryDetails:   o.DeliveryDetails,
		Status:            o.Status.String(),
		OrderDate:         o.OrderDate.Format(time.RFC3339),
		EstimatedDelivery: o.EstimatedDelivery.Format(time.RFC3339),
		Total:             o.Total,
		StatusHistory: lo.Map(o.StatusHistory, func(e domain.StatusEntry, _ int) StatusEntryDTO {
			return StatusEntryDTO{
				Status:    e.Status.String(),
				Timestamp: e.Timestamp.Format(time.RFC3339),
				Message:   e.Message,
			}
		}),
	}
}

type SimulationResponseDTO struct {
	Message string `json:"message"`
	OrderID string `json:"orderId" example:"ORD-01J9Z3K8Q4T6V2X5Y7B9C1D3E5"`
}
