package poker

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildSidePotsLayeredAllIns(t *testing.T) {
	seats := []*Seat{
		{Index: 0, Name: "alice", TotalContrib: 50, InHand: true},
		{Index: 1, Name: "bob", TotalContrib: 150, InHand: true},
		{Index: 2, Name: "carol", TotalContrib: 300, InHand: true},
	}

	pots := buildSidePots(seats)
	require.Len(t, pots, 3)

	// 50 from each of the three players.
	require.Equal(t, int64(150), pots[0].Amount)
	require.ElementsMatch(t, []int{0, 1, 2}, pots[0].Eligible)

	// Next 100 from bob and carol.
	require.Equal(t, int64(200), pots[1].Amount)
	require.ElementsMatch(t, []int{1, 2}, pots[1].Eligible)

	// Carol's uncalled 150 comes back to her alone.
	require.Equal(t, int64(150), pots[2].Amount)
	require.ElementsMatch(t, []int{2}, pots[2].Eligible)
}

func TestBuildSidePotsFoldedChipsStayIn(t *testing.T) {
	// Bob folded after contributing 100. His chips fund the pot but he is
	// not eligible to win any of it.
	seats := []*Seat{
		{Index: 0, Name: "alice", TotalContrib: 100, InHand: true},
		{Index: 1, Name: "bob", TotalContrib: 100, InHand: false},
		{Index: 2, Name: "carol", TotalContrib: 100, InHand: true},
	}

	pots := buildSidePots(seats)
	require.Len(t, pots, 1)
	require.Equal(t, int64(300), pots[0].Amount)
	require.ElementsMatch(t, []int{0, 2}, pots[0].Eligible)
}

func TestBuildSidePotsFoldedShortStack(t *testing.T) {
	// A folded short contribution still funds the lower level only.
	seats := []*Seat{
		{Index: 0, Name: "alice", TotalContrib: 40, InHand: false},
		{Index: 1, Name: "bob", TotalContrib: 200, InHand: true},
		{Index: 2, Name: "carol", TotalContrib: 200, InHand: true},
	}

	pots := buildSidePots(seats)
	require.Len(t, pots, 2)

	require.Equal(t, int64(120), pots[0].Amount)
	require.ElementsMatch(t, []int{1, 2}, pots[0].Eligible)

	require.Equal(t, int64(320), pots[1].Amount)
	require.ElementsMatch(t, []int{1, 2}, pots[1].Eligible)
}

func TestBuildSidePotsIgnoresZeroContrib(t *testing.T) {
	seats := []*Seat{
		{Index: 0, Name: "alice", TotalContrib: 0, InHand: true},
		{Index: 1, Name: "bob", TotalContrib: 60, InHand: true},
		{Index: 2, Name: "carol", TotalContrib: 60, InHand: true},
	}

	pots := buildSidePots(seats)
	require.Len(t, pots, 1)
	require.Equal(t, int64(120), pots[0].Amount)
	require.ElementsMatch(t, []int{1, 2}, pots[0].Eligible)
}

func TestBuildSidePotsTotalMatchesContributions(t *testing.T) {
	seats := []*Seat{
		{Index: 0, TotalContrib: 35, InHand: true},
		{Index: 1, TotalContrib: 120, InHand: false},
		{Index: 2, TotalContrib: 120, InHand: true},
		{Index: 3, TotalContrib: 80, InHand: true},
	}

	var contributed int64
	for _, s := range seats {
		contributed += s.TotalContrib
	}

	var potted int64
	for _, p := range buildSidePots(seats) {
		potted += p.Amount
	}
	require.Equal(t, contributed, potted)
}
