package poker

import (
	"math/rand"
)

// botView is the read-only slice of table state a bot decision needs. The
// decision engine is a pure heuristic over this view; randomness comes
// exclusively from the *rand.Rand handed in, so tests can pin it.
type botView struct {
	phase    Phase
	pot      int64
	toCall   int64
	bigBlind int64
	stack    int64
	bet      int64
	hole     []Card
	board    []Card
}

// botDecide produces one legal action for the bot in the given seat.
// Callers must hold t.mu.
func (t *Table) botDecide(seatIdx int) Action {
	s := t.seats[seatIdx]
	return decide(botView{
		phase:    t.phase,
		pot:      t.pot,
		toCall:   t.toCall,
		bigBlind: t.cfg.BigBlind,
		stack:    s.Stack,
		bet:      s.Bet,
		hole:     s.Hole,
		board:    t.board,
	}, t.rng)
}

// preflopScore scores a two-card hand from rank height, pairing, suitedness,
// connectivity and broadway bonuses.
func preflopScore(hole []Card) float64 {
	a := float64(hole[0].rank)
	b := float64(hole[1].rank)
	hi, lo := a, b
	if lo > hi {
		hi, lo = lo, hi
	}
	paired := a == b
	suited := hole[0].suit == hole[1].suit
	gap := hi - lo

	var score float64
	if paired {
		score += 22 + hi
	} else {
		score += hi*1.2 + lo*0.6
	}
	if suited {
		score += 3
	}
	if gap == 1 {
		score += 2
	}
	if gap >= 5 {
		score -= 3
	}
	if hi >= 13 && lo >= 10 {
		score += 6 // broadways
	}
	if hi >= 14 && lo >= 11 {
		score += 4 // AJ and up
	}
	return score
}

// potOdds returns need/(pot+need), the price of continuing.
func potOdds(need, pot int64) float64 {
	if need <= 0 {
		return 0
	}
	return float64(need) / float64(pot+need)
}

// clamp01 bounds v to [0, 1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// handStrength maps the bot's current holding to a 0-1 strength. Preflop it
// comes from preflopScore through a fixed linear window; postflop from the
// evaluator's category, boosted for straights and better and again for full
// houses and better.
func handStrength(v botView) float64 {
	if len(v.hole) < 2 {
		return 0
	}

	if v.phase == PhasePreflop {
		return clamp01((preflopScore(v.hole) - 18) / 25)
	}

	known := len(v.hole) + len(v.board)
	if known < 5 {
		return 0.15
	}
	if known < 7 {
		return 0.25
	}

	cat := EvaluateHand(v.hole, v.board).Category()
	strength := float64(cat) / 8
	if cat >= Straight {
		strength += 0.10
	}
	if cat >= FullHouse {
		strength += 0.10
	}
	return clamp01(strength)
}

// decide picks one legal action from the view. With nothing owed the bot
// value-bets or bluffs with probability scaled by strength and a per-decision
// aggression draw, otherwise checks. Facing a bet it weighs strength against
// pot odds: fold cheap holdings, raise strong ones or the occasional
// semi-bluff, call the rest.
func decide(v botView, rng *rand.Rand) Action {
	need := v.toCall - v.bet
	if need < 0 {
		need = 0
	}

	strength := handStrength(v)
	aggro := 0.55 + rng.Float64()*0.25
	bluffBase := 0.08
	if need == 0 {
		bluffBase = 0.18
	}
	bluff := bluffBase * rng.Float64()

	odds := potOdds(need, v.pot)
	callGood := strength > odds*0.9

	if need == 0 {
		if strength > 0.55 && rng.Float64() < aggro {
			return RaiseTo(v.toCall + v.bigBlind)
		}
		if bluff > 0.12 {
			return RaiseTo(v.toCall + v.bigBlind)
		}
		return Check()
	}

	if !callGood && strength < 0.35 && rng.Float64() < 0.55 {
		return Fold()
	}

	canRaise := v.stack > need+v.bigBlind
	if canRaise && (strength > 0.70 || (strength > 0.45 && rng.Float64() < aggro) || bluff > 0.14) {
		mult := int64(1)
		if strength > 0.80 {
			mult = 3
		} else if strength > 0.60 {
			mult = 2
		}
		return RaiseTo(v.toCall + mult*v.bigBlind)
	}

	return Call()
}
