package poker

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSnapshotHidesHoleCards(t *testing.T) {
	tbl := newTestTable(t, TableConfig{}, fourHumans())
	require.NoError(t, tbl.StartHand())

	snap := tbl.Snapshot()
	require.Equal(t, PhasePreflop, snap.Phase)
	require.Equal(t, int64(30), snap.Pot)
	require.Len(t, snap.Seats, 4)
	require.Nil(t, snap.You, "the public projection carries no private view")

	// No seat snapshot exposes cards at all; hole cards only ever appear
	// in a seat-scoped view.
	require.Equal(t, "alice", snap.Seats[0].Name)
	require.Equal(t, SeatHuman, snap.Seats[0].Kind)
	require.Equal(t, int64(10), snap.Seats[2].Bet)
	require.Equal(t, int64(20), snap.Seats[3].Bet)
}

func TestSnapshotForIncludesOwnCardsOnly(t *testing.T) {
	tbl := newTestTable(t, TableConfig{}, fourHumans())
	require.NoError(t, tbl.StartHand())

	view := tbl.SnapshotFor(1)
	require.NotNil(t, view.You)
	require.Equal(t, 1, view.You.Seat)
	require.Equal(t, "bob", view.You.Name)
	require.Len(t, view.You.Hole, 2)

	// The seat list itself stays public.
	for _, s := range view.Seats {
		require.NotZero(t, s.Stack)
	}
}

func TestSnapshotCopiesLastResult(t *testing.T) {
	tbl := newTestTable(t, TableConfig{Seed: 3}, nil)
	require.NoError(t, tbl.StartHand()) // all bots, plays to completion

	snap := tbl.Snapshot()
	require.NotNil(t, snap.LastResult)
	require.NotSame(t, tbl.lastResult, snap.LastResult, "snapshots must not alias table state")
	require.NotEmpty(t, snap.LastResult.Winners)
}
