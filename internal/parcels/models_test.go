package parcels

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    string
		to      string
		allowed bool
	}{
		{"received can go in transit", StatusReceived, StatusInTransit, true},
		{"received can be lost", StatusReceived, StatusLost, true},
		{"received cannot deliver directly", StatusReceived, StatusDelivered, false},
		{"in transit can deliver", StatusInTransit, StatusDelivered, true},
		{"in transit can be lost", StatusInTransit, StatusLost, true},
		{"in transit cannot go back", StatusInTransit, StatusReceived, false},
		{"delivered is terminal", StatusDelivered, StatusInTransit, false},
		{"lost is terminal", StatusLost, StatusInTransit, false},
		{"lost cannot be delivered", StatusLost, StatusDelivered, false},
		{"unknown source is rejected", "UNKNOWN", StatusInTransit, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, CanTransition(tt.from, tt.to))
		})
	}
}
