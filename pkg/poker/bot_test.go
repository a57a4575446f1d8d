package poker

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPreflopScore(t *testing.T) {
	tests := []struct {
		name string
		hole []Card
		want float64
	}{
		// Pairs take the broadway and AJ+ bonuses too: 22+14+6+4.
		{"pocket aces", []Card{NewCard(Ace, Hearts), NewCard(Ace, Spades)}, 46},
		{"pocket tens", []Card{NewCard(Ten, Hearts), NewCard(Ten, Spades)}, 32},
		{"pocket deuces", []Card{NewCard(Two, Hearts), NewCard(Two, Spades)}, 24},
		{"ace king suited", []Card{NewCard(Ace, Hearts), NewCard(King, Hearts)}, 39.6},
		{"ace king offsuit", []Card{NewCard(Ace, Hearts), NewCard(King, Spades)}, 36.6},
		{"seven deuce offsuit", []Card{NewCard(Seven, Hearts), NewCard(Two, Spades)}, 6.6},
		{"suited connector", []Card{NewCard(Nine, Clubs), NewCard(Eight, Clubs)}, 20.6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.InDelta(t, tt.want, preflopScore(tt.hole), 1e-9)
		})
	}
}

func TestPotOdds(t *testing.T) {
	require.Equal(t, 0.0, potOdds(0, 100))
	require.Equal(t, 0.0, potOdds(-5, 100))
	require.InDelta(t, 1.0/3.0, potOdds(50, 100), 1e-9)
	require.InDelta(t, 0.5, potOdds(100, 100), 1e-9)
}

func TestHandStrength(t *testing.T) {
	aces := []Card{NewCard(Ace, Hearts), NewCard(Ace, Spades)}

	t.Run("preflop window", func(t *testing.T) {
		// Aces score 46, past the top of the (score-18)/25 window.
		require.Equal(t, 1.0, handStrength(botView{phase: PhasePreflop, hole: aces}))
		tens := []Card{NewCard(Ten, Hearts), NewCard(Ten, Spades)}
		require.InDelta(t, 0.56, handStrength(botView{phase: PhasePreflop, hole: tens}), 1e-9)
		trash := []Card{NewCard(Seven, Hearts), NewCard(Two, Spades)}
		require.Equal(t, 0.0, handStrength(botView{phase: PhasePreflop, hole: trash}))
	})

	t.Run("too few known cards", func(t *testing.T) {
		require.Equal(t, 0.15, handStrength(botView{phase: PhaseFlop, hole: aces}))
	})

	t.Run("flop and turn are flat", func(t *testing.T) {
		board := []Card{NewCard(Two, Clubs), NewCard(Five, Diamonds), NewCard(Nine, Hearts)}
		require.Equal(t, 0.25, handStrength(botView{phase: PhaseFlop, hole: aces, board: board}))
		board = append(board, NewCard(Jack, Spades))
		require.Equal(t, 0.25, handStrength(botView{phase: PhaseTurn, hole: aces, board: board}))
	})

	t.Run("river uses the evaluator", func(t *testing.T) {
		fullHouseBoard := []Card{
			NewCard(Ace, Clubs), NewCard(Nine, Diamonds), NewCard(Nine, Hearts),
			NewCard(Four, Spades), NewCard(Jack, Spades),
		}
		require.InDelta(t, 0.95, handStrength(botView{phase: PhaseRiver, hole: aces, board: fullHouseBoard}), 1e-9)

		dryBoard := []Card{
			NewCard(Two, Clubs), NewCard(Five, Diamonds), NewCard(Nine, Hearts),
			NewCard(Four, Spades), NewCard(Jack, Spades),
		}
		lowHole := []Card{NewCard(Seven, Hearts), NewCard(Three, Spades)}
		require.Equal(t, 0.0, handStrength(botView{phase: PhaseRiver, hole: lowHole, board: dryBoard}))
	})
}

// The decision engine may be as sharp or as dumb as it likes, but it must
// only ever emit actions that are legal in the view it was given.
func TestDecideIsAlwaysLegal(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	deck := NewDeck(rng)

	views := []botView{
		{phase: PhasePreflop, pot: 30, toCall: 20, bigBlind: 20, stack: 2000, bet: 0},
		{phase: PhasePreflop, pot: 30, toCall: 20, bigBlind: 20, stack: 2000, bet: 20},
		{phase: PhaseFlop, pot: 120, toCall: 0, bigBlind: 20, stack: 1500, bet: 0},
		{phase: PhaseRiver, pot: 400, toCall: 200, bigBlind: 20, stack: 90, bet: 0},
		{phase: PhaseTurn, pot: 60, toCall: 40, bigBlind: 20, stack: 25, bet: 0},
	}

	for trial := 0; trial < 500; trial++ {
		v := views[trial%len(views)]
		if deck.Size() < 7 {
			deck = NewDeck(rng)
		}
		for i := 0; i < 2; i++ {
			c, _ := deck.Draw()
			v.hole = append(v.hole, c)
		}
		if v.phase != PhasePreflop {
			boardN := 3
			if v.phase == PhaseTurn {
				boardN = 4
			} else if v.phase == PhaseRiver {
				boardN = 5
			}
			for i := 0; i < boardN; i++ {
				c, _ := deck.Draw()
				v.board = append(v.board, c)
			}
		}

		a := decide(v, rng)
		require.NoError(t, a.validate())

		need := v.toCall - v.bet
		switch a.Kind {
		case ActionCheck:
			require.LessOrEqual(t, need, int64(0), "checked facing a bet (trial %d)", trial)
		case ActionFold:
			require.Greater(t, need, int64(0), "folded with nothing owed (trial %d)", trial)
		case ActionRaise:
			require.Greater(t, a.Target, v.toCall, "raise target must exceed the call amount (trial %d)", trial)
		case ActionCall:
			require.Greater(t, need, int64(0), "called with nothing owed (trial %d)", trial)
		}
	}
}
