package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingStatus_CanTransitionTo(t *testing.T) {
	allStatuses := []BookingStatus{StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled}

	allowed := map[BookingStatus][]BookingStatus{
		StatusPending:   {StatusConfirmed, StatusCancelled},
		StatusConfirmed: {StatusCompleted, StatusCancelled},
		StatusCompleted: {},
		StatusCancelled: {},
	}

	for _, from := range allStatuses {
		for _, to := range allStatuses {
			want := false
			for _, a := range allowed[from] {
				if a == to {
					want = true
				}
			}
			got := from.CanTransitionTo(to)
			assert.Equal(t, want, got, "transition %s -> %s", from, to)
		}
	}
}

func TestBookingStatus_IsTerminal(t *testing.T) {
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusConfirmed.IsTerminal())
	assert.True(t, StatusCompleted.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
}

func TestBookingStatus_CanBeCancelled(t *testing.T) {
	assert.True(t, StatusPending.CanBeCancelled())
	assert.True(t, StatusConfirmed.CanBeCancelled())
	assert.False(t, StatusCompleted.CanBeCancelled())
	assert.False(t, StatusCancelled.CanBeCancelled())
}

func TestParseBookingStatus(t *testing.T) {
	for _, valid := range []string{"pending", "confirmed", "completed", "cancelled"} {
		status, err := ParseBookingStatus(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, status.String())
	}

	_, err := ParseBookingStatus("delivered")
	assert.Error(t, err)

	_, err = ParseBookingStatus("")
	assert.Error(t, err)
}
