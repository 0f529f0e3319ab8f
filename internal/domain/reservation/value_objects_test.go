//go:build unit

package reservation_test

import (
	"strings"
	"testing"

	"tickethub/internal/domain/reservation"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReference(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		ref, err := reservation.NewReference("ORD-20260901-0001")
		require.NoError(t, err)
		assert.Equal(t, "ORD-20260901-0001", ref.String())
	})

	t.Run("surrounding whitespace is trimmed", func(t *testing.T) {
		ref, err := reservation.NewReference("  ORD-1  ")
		require.NoError(t, err)
		assert.Equal(t, "ORD-1", ref.String())
	})

	cases := []struct {
		name  string
		value string
		errIs error
	}{
		{name: "empty", value: "", errIs: reservation.ErrEmptyReference},
		{name: "whitespace only", value: "   ", errIs: reservation.ErrEmptyReference},
		{name: "too long", value: strings.Repeat("a", 65), errIs: reservation.ErrReferenceTooLong},
		{name: "maximum length", value: strings.Repeat("a", 64)},
		{name: "spaces inside", value: "ORD 1", errIs: reservation.ErrInvalidReference},
		{name: "punctuation", value: "ORD#1", errIs: reservation.ErrInvalidReference},
		{name: "underscore and dash allowed", value: "ORD_2026-0001"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := reservation.NewReference(c.value)
			if c.errIs == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}

func TestNewAttendee(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		a, err := reservation.NewAttendee("Alice Example", "alice@example.com", "ID100", "+8562055512345")
		require.NoError(t, err)
		assert.Equal(t, "Alice Example", a.FullName())
		assert.Equal(t, "alice@example.com", a.Email())
		assert.Equal(t, "ID100", a.NationalID())
		assert.Equal(t, "+8562055512345", a.Phone())
	})

	t.Run("phone spaces are stripped", func(t *testing.T) {
		a, err := reservation.NewAttendee("Alice", "alice@example.com", "ID100", "+856 20 555 12345")
		require.NoError(t, err)
		assert.Equal(t, "+8562055512345", a.Phone())
	})

	cases := []struct {
		name                              string
		fullName, email, nationalID, phone string
		errIs                             error
	}{
		{name: "empty name", fullName: "", email: "a@b.co", nationalID: "ID", phone: "+8562055512345", errIs: reservation.ErrAttendeeName},
		{name: "whitespace name", fullName: "  ", email: "a@b.co", nationalID: "ID", phone: "+8562055512345", errIs: reservation.ErrAttendeeName},
		{name: "missing at sign", fullName: "A", email: "a.b.co", nationalID: "ID", phone: "+8562055512345", errIs: reservation.ErrAttendeeEmail},
		{name: "missing domain dot", fullName: "A", email: "a@bco", nationalID: "ID", phone: "+8562055512345", errIs: reservation.ErrAttendeeEmail},
		{name: "empty national id", fullName: "A", email: "a@b.co", nationalID: " ", phone: "+8562055512345", errIs: reservation.ErrAttendeeNationalID},
		{name: "phone too short", fullName: "A", email: "a@b.co", nationalID: "ID", phone: "+123", errIs: reservation.ErrAttendeePhone},
		{name: "phone with letters", fullName: "A", email: "a@b.co", nationalID: "ID", phone: "+856abc1234", errIs: reservation.ErrAttendeePhone},
		{name: "local phone without plus", fullName: "A", email: "a@b.co", nationalID: "ID", phone: "2055512345"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := reservation.NewAttendee(c.fullName, c.email, c.nationalID, c.phone)
			if c.errIs == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}

func TestMoney(t *testing.T) {
	t.Run("negative amount rejected", func(t *testing.T) {
		_, err := reservation.NewMoney(decimal.NewFromInt(-1), "LAK")
		require.ErrorIs(t, err, reservation.ErrNegativeAmount)
	})

	t.Run("currency is normalized to upper case", func(t *testing.T) {
		m, err := reservation.NewMoney(decimal.NewFromInt(100), "lak")
		require.NoError(t, err)
		assert.Equal(t, "LAK", m.Currency())
	})

	t.Run("zero amount allowed", func(t *testing.T) {
		m, err := reservation.NewMoney(decimal.Zero, "LAK")
		require.NoError(t, err)
		assert.True(t, m.Amount().IsZero())
	})

	t.Run("MulInt scales the amount and keeps the currency", func(t *testing.T) {
		m, err := reservation.NewMoney(decimal.NewFromInt(150000), "LAK")
		require.NoError(t, err)

		total := m.MulInt(3)
		assert.True(t, total.Amount().Equal(decimal.NewFromInt(450000)))
		assert.Equal(t, "LAK", total.Currency())
	})

	t.Run("Equal compares amount and currency", func(t *testing.T) {
		a, _ := reservation.NewMoney(decimal.NewFromInt(100), "LAK")
		b, _ := reservation.NewMoney(decimal.NewFromFloat(100.00), "LAK")
		c, _ := reservation.NewMoney(decimal.NewFromInt(100), "USD")

		assert.True(t, a.Equal(b))
		assert.False(t, a.Equal(c))
	})
}
