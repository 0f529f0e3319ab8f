//go:build unit

package reservation_test

import (
	"testing"

	"tickethub/internal/domain/reservation"

	"github.com/stretchr/testify/assert"
)

func TestStatusCanTransitionTo(t *testing.T) {
	cases := []struct {
		name string
		from reservation.Status
		to   reservation.Status
		want bool
	}{
		{name: "pending to confirmed", from: reservation.StatusPending, to: reservation.StatusConfirmed, want: true},
		{name: "pending to expired", from: reservation.StatusPending, to: reservation.StatusExpired, want: true},
		{name: "pending to failed", from: reservation.StatusPending, to: reservation.StatusFailed, want: true},
		{name: "pending to pending", from: reservation.StatusPending, to: reservation.StatusPending, want: false},
		{name: "confirmed is terminal", from: reservation.StatusConfirmed, to: reservation.StatusFailed, want: false},
		{name: "expired is terminal", from: reservation.StatusExpired, to: reservation.StatusConfirmed, want: false},
		{name: "failed is terminal", from: reservation.StatusFailed, to: reservation.StatusConfirmed, want: false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, c.from.CanTransitionTo(c.to))
		})
	}
}

func TestStatusIsValid(t *testing.T) {
	for _, s := range []reservation.Status{
		reservation.StatusPending,
		reservation.StatusConfirmed,
		reservation.StatusExpired,
		reservation.StatusFailed,
	} {
		assert.True(t, s.IsValid(), s.String())
	}
	assert.False(t, reservation.Status("cancelled").IsValid())
	assert.False(t, reservation.Status("").IsValid())
}

func TestStatusIsTerminal(t *testing.T) {
	assert.False(t, reservation.StatusPending.IsTerminal())
	assert.True(t, reservation.StatusConfirmed.IsTerminal())
	assert.True(t, reservation.StatusExpired.IsTerminal())
	assert.True(t, reservation.StatusFailed.IsTerminal())
}
