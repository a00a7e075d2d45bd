package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to ReservationStatus
		want     bool
	}{
		{ReservationStatusPending, ReservationStatusConfirmed, true},
		{ReservationStatusPending, ReservationStatusCancelled, true},
		{ReservationStatusPending, ReservationStatusDeclined, true},
		{ReservationStatusPending, ReservationStatusCompleted, false},
		{ReservationStatusPending, ReservationStatusPending, false},
		{ReservationStatusConfirmed, ReservationStatusCancelled, true},
		{ReservationStatusConfirmed, ReservationStatusCompleted, true},
		{ReservationStatusConfirmed, ReservationStatusDeclined, false},
		{ReservationStatusConfirmed, ReservationStatusPending, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.from, tt.to))
		})
	}
}

func TestCanTransition_TerminalStatesAreFinal(t *testing.T) {
	all := []ReservationStatus{
		ReservationStatusPending, ReservationStatusConfirmed, ReservationStatusCancelled,
		ReservationStatusDeclined, ReservationStatusCompleted,
	}
	terminal := []ReservationStatus{
		ReservationStatusCancelled, ReservationStatusDeclined, ReservationStatusCompleted,
	}

	for _, from := range terminal {
		assert.True(t, from.Terminal(), from)
		for _, to := range all {
			assert.False(t, CanTransition(from, to), "%s -> %s", from, to)
		}
	}
}

func TestReservationStatus_Helpers(t *testing.T) {
	assert.True(t, ReservationStatusPending.Active())
	assert.True(t, ReservationStatusConfirmed.Active())
	assert.False(t, ReservationStatusCancelled.Active())

	assert.True(t, ReservationStatusCancelled.ReleasesSlot())
	assert.True(t, ReservationStatusDeclined.ReleasesSlot())
	assert.False(t, ReservationStatusCompleted.ReleasesSlot())

	assert.True(t, ReservationStatusDeclined.Valid())
	assert.False(t, ReservationStatus("archived").Valid())
}
