package domain

type OrderStatus string

const (
	StatusPending        OrderStatus = "pending"
	StatusConfirmed      OrderStatus = "confirmed"
	StatusPreparing      OrderStatus = "preparing"
	StatusOutForDelivery OrderStatus = "out_for_delivery"
	StatusDelivered      OrderStatus = "delivered"
	StatusCancelled      OrderStatus = "cancelled"
)

const (
	PlacedMessage = "Order placed successfully"
	customMessage = "Status updated"
)

var statusMessages = map[OrderStatus]string{
	StatusPending:        "Order is being processed",
	StatusConfirmed:      "Order confirmed and being prepared",
	StatusPreparing:      "Your fresh fruits are being prepared",
	StatusOutForDelivery: "Order is out for delivery",
	StatusDelivered:      "Order has been delivered",
	StatusCancelled:      "Order has been cancelled",
}

// IsCustom reports whether s is outside the known status set. Custom statuses
// are stored verbatim.
func (s OrderStatus) IsCustom() bool {
	_, ok := statusMessages[s]
	return !ok
}

func (s OrderStatus) Message() string {
	if msg, ok := statusMessages[s]; ok {
		return msg
	}
	return customMessage
}

func (s OrderStatus) String() string {
	return string(s)
}
