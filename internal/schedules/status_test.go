package schedules

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
		{"scheduled can start", StatusScheduled, StatusInProgress, true},
		{"scheduled can be delayed", StatusScheduled, StatusDelayed, true},
		{"scheduled can be cancelled", StatusScheduled, StatusCancelled, true},
		{"scheduled cannot complete directly", StatusScheduled, StatusCompleted, false},
		{"in progress can complete", StatusInProgress, StatusCompleted, true},
		{"in progress can be delayed", StatusInProgress, StatusDelayed, true},
		{"in progress can be cancelled", StatusInProgress, StatusCancelled, true},
		{"in progress cannot go back", StatusInProgress, StatusScheduled, false},
		{"delayed can resume", StatusDelayed, StatusInProgress, true},
		{"delayed can complete", StatusDelayed, StatusCompleted, true},
		{"delayed can be cancelled", StatusDelayed, StatusCancelled, true},
		{"completed is terminal", StatusCompleted, StatusInProgress, false},
		{"cancelled is terminal", StatusCancelled, StatusScheduled, false},
		{"cancelled cannot complete", StatusCancelled, StatusCompleted, false},
		{"self transition is rejected", StatusScheduled, StatusScheduled, false},
		{"unknown source is rejected", "UNKNOWN", StatusInProgress, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, CanTransition(tt.from, tt.to))
		})
	}
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, IsTerminal(StatusCompleted))
	assert.True(t, IsTerminal(StatusCancelled))
	assert.False(t, IsTerminal(StatusScheduled))
	assert.False(t, IsTerminal(StatusInProgress))
	assert.False(t, IsTerminal(StatusDelayed))
	assert.False(t, IsTerminal("UNKNOWN"))
}

func TestIsBookable(t *testing.T) {
	assert.True(t, IsBookable(StatusScheduled))
	assert.True(t, IsBookable(StatusInProgress))
	assert.True(t, IsBookable(StatusDelayed))
	assert.False(t, IsBookable(StatusCompleted))
	assert.False(t, IsBookable(StatusCancelled))
}
