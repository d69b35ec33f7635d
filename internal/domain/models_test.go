package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestUserStrip(t *testing.T) {
	user := &User{
		ID:             "01HX",
		Email:          "ann@example.com",
		CredentialHash: "secret",
		FirstName:      "Ann",
		LastName:       "Lee",
		OrderIDs:       []string{"ORD-1"},
	}

	session := user.Strip()
	assert.Equal(t, "01HX", session.ID)
	assert.Equal(t, "ann@example.com", session.Email)
	assert.Equal(t, []string{"ORD-1"}, session.OrderIDs)

	session.OrderIDs[0] = "changed"
	assert.Equal(t, "ORD-1", user.OrderIDs[0])
}

func TestProfilePatchApply(t *testing.T) {
	tests := []struct {
		name     string
		patch    ProfilePatch
		expected User
	}{
		{
			name:     "Empty patch keeps everything",
			patch:    ProfilePatch{},
			expected: User{ID: "1", FirstName: "Ann", LastName: "Lee", Phone: "123", Address: "Main st"},
		},
		{
			name:     "Patch overrides given fields",
			patch:    ProfilePatch{FirstName: strPtr("Anna"), Address: strPtr("")},
			expected: User{ID: "1", FirstName: "Anna", LastName: "Lee", Phone: "123", Address: ""},
		},
		{
			name: "Full patch",
			patch: ProfilePatch{
				FirstName: strPtr("Bob"),
				LastName:  strPtr("Ray"),
				Phone:     strPtr("555"),
				Address:   strPtr("Elm st"),
			},
			expected: User{ID: "1", FirstName: "Bob", LastName: "Ray", Phone: "555", Address: "Elm st"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := User{ID: "1", FirstName: "Ann", LastName: "Lee", Phone: "123", Address: "Main st"}
			tt.patch.Apply(&user)
			assert.Equal(t, tt.expected, user)
		})
	}
}

func TestOrderAdvance(t *testing.T) {
	at := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	order := &Order{
		Status:        StatusPending,
		StatusHistory: []StatusEntry{{Status: StatusPending, Timestamp: at, Message: PlacedMessage}},
	}

	steps := []struct {
		status  OrderStatus
		message string
		want    string
	}{
		{StatusConfirmed, "", "Order confirmed and being prepared"},
		{StatusPending, "back to queue", "back to queue"},
		{OrderStatus("on_hold"), "", "Status updated"},
		{StatusDelivered, "", "Order has been delivered"},
	}

	for i, step := range steps {
		order.Advance(step.status, step.message, at.Add(time.Duration(i+1)*time.Minute))

		assert.Len(t, order.StatusHistory, i+2)
		last := order.StatusHistory[len(order.StatusHistory)-1]
		assert.Equal(t, order.Status, last.Status)
		assert.Equal(t, step.want, last.Message)
	}
}

func TestOrderStatus(t *testing.T) {
	tests := []struct {
		status  OrderStatus
		custom  bool
		message string
	}{
		{StatusPending, false, "Order is being processed"},
		{StatusConfirmed, false, "Order confirmed and being prepared"},
		{StatusPreparing, false, "Your fresh fruits are being prepared"},
		{StatusOutForDelivery, false, "Order is out for delivery"},
		{StatusDelivered, false, "Order has been delivered"},
		{StatusCancelled, false, "Order has been cancelled"},
		{OrderStatus("refunded"), true, "Status updated"},
	}

	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			assert.Equal(t, tt.custom, tt.status.IsCustom())
			assert.Equal(t, tt.message, tt.status.Message())
		})
	}
}

func TestNormalizeDetails(t *testing.T) {
	tests := []struct {
		name     string
		raw      json.RawMessage
		expected json.RawMessage
	}{
		{name: "Nil", raw: nil, expected: nil},
		{name: "Empty", raw: json.RawMessage(""), expected: nil},
		{name: "Null", raw: json.RawMessage("null"), expected: nil},
		{name: "Padded null", raw: json.RawMessage(" null\n"), expected: nil},
		{name: "Object", raw: json.RawMessage(`{"slot":"am"}`), expected: json.RawMessage(`{"slot":"am"}`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeDetails(tt.raw))
		})
	}
}
