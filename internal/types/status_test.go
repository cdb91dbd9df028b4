package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus_Valid(t *testing.T) {
	for _, s := range []Status{StatusPending, StatusProcessing, StatusCompleted, StatusFailed} {
		assert.True(t, s.Valid(), "expected %s to be valid", s)
	}
	assert.False(t, Status("archived").Valid())
	assert.False(t, Status("").Valid())
}

func TestStatus_Terminal(t *testing.T) {
	assert.False(t, StatusPending.Terminal())
	assert.False(t, StatusProcessing.Terminal())
	assert.True(t, StatusCompleted.Terminal())
	assert.True(t, StatusFailed.Terminal())
}

func TestStatus_CanTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    Status
		to      Status
		allowed bool
	}{
		{"pending to processing", StatusPending, StatusProcessing, true},
		{"pending to completed", StatusPending, StatusCompleted, true},
		{"pending to failed", StatusPending, StatusFailed, true},
		{"pending to pending", StatusPending, StatusPending, false},
		{"processing to completed", StatusProcessing, StatusCompleted, true},
		{"processing to failed", StatusProcessing, StatusFailed, true},
		{"processing to pending", StatusProcessing, StatusPending, false},
		{"completed redelivery", StatusCompleted, StatusCompleted, true},
		{"completed to failed", StatusCompleted, StatusFailed, false},
		{"completed to processing", StatusCompleted, StatusProcessing, false},
		{"failed to completed", StatusFailed, StatusCompleted, false},
		{"failed to failed", StatusFailed, StatusFailed, false},
		{"failed to processing", StatusFailed, StatusProcessing, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransition(tt.to))
		})
	}
}
