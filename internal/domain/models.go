package domain

import (
	"bytes"
	"encoding/json"
	"time"
)

type User struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	CredentialHash string    `json:"credentialHash"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	Phone          string    `json:"phone"`
	Address        string    `json:"address"`
	CreatedAt      time.Time `json:"createdAt"`
	OrderIDs       []string  `json:"orderIds"`
}

// SessionUser is a User without its credential.
type SessionUser struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"createdAt"`
	OrderIDs  []string  `json:"orderIds"`
}

func (u *User) Strip() *SessionUser {
	ids := make([]string, len(u.OrderIDs))
	copy(ids, u.OrderIDs)
	return &SessionUser{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Phone:     u.Phone,
		Address:   u.Address,
		CreatedAt: u.CreatedAt,
		OrderIDs:  ids,
	}
}

type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Phone     string
	Address   string
}

// ProfilePatch lists the mutable profile fields. Nil fields keep the stored value.
type ProfilePatch struct {
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Address   *string `json:"address,omitempty"`
}

// Apply merges the patch onto u, patch fields win.
func (p ProfilePatch) Apply(u *User) {
	if p.FirstName != nil {
		u.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		u.LastName = *p.LastName
	}
	if p.Phone != nil {
		u.Phone = *p.Phone
	}
	if p.Address != nil {
		u.Address = *p.Address
	}
}

type StatusEntry struct {
	Status    OrderStatus `json:"status"`
	Timestamp time.Time   `json:"timestamp"`
	Message   string      `json:"message"`
}

type Order struct {
	ID                string          `json:"id"`
	UserID            string          `json:"userId"`
	Items             []string        `json:"items"`
	DeliveryDetails   json.RawMessage `json:"deliveryDetails,omitempty"`
	Status            OrderStatus     `json:"status"`
	OrderDate         time.Time       `json:"orderDate"`
	EstimatedDelivery time.Time       `json:"estimatedDelivery"`
	Total             float64         `json:"total"`
	StatusHistory     []StatusEntry   `json:"statusHistory"`
}

// NormalizeDetails maps absent and JSON null delivery details to nil, the
// form that survives storage unchanged.
func NormalizeDetails(raw json.RawMessage) json.RawMessage {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	return raw
}

// Advance sets the order status and records it in the history.
func (o *Order) Advance(status OrderStatus, message string, at time.Time) {
	if message == "" {
		message = status.Message()
	}
	o.Status = status
	o.StatusHistory = append(o.StatusHistory, StatusEntry{
		Status:    status,
		Timestamp: at,
		Message:   message,
	})
}
