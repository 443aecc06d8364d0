package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCanTransitionTo(t *testing.T) {
	cases := []struct {
		from, to ShipmentStatus
		want     bool
	}{
		{StatusPending, StatusInTransit, true},
		{StatusPending, StatusDelivered, true},
		{StatusInTransit, StatusDelivered, true},
		{StatusInTransit, StatusPending, false},
		{StatusDelivered, StatusInTransit, false},
		{StatusDelivered, StatusDelivered, false},
		{StatusPending, StatusPending, false},
		{StatusPending, ShipmentStatus("Lost"), false},
	}

	for _, c := range cases {
		s := &Shipment{Status: c.from}
		require.Equal(t, c.want, s.CanTransitionTo(c.to), "%s -> %s", c.from, c.to)
	}
}

func TestValidStatus(t *testing.T) {
	require.True(t, ValidStatus(StatusPending))
	require.True(t, ValidStatus(StatusInTransit))
	require.True(t, ValidStatus(StatusDelivered))
	require.False(t, ValidStatus(ShipmentStatus("Lost")))
	require.False(t, ValidStatus(ShipmentStatus("")))
}
