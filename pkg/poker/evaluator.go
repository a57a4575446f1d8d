package poker

import (
	"sort"
)

// HandCategory is the standard poker hand class, ordered weakest to strongest.
type HandCategory int

const (
	HighCard HandCategory = iota
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

// String returns the category's display name.
func (c HandCategory) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case Pair:
		return "Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	default:
		return "Unknown"
	}
}

// HandValue is the totally-ordered evaluation of a hand: a leading category
// followed by tiebreak values in descending significance. Two hands compare
// by lexicographic comparison of their vectors; equal vectors are a tie.
type HandValue struct {
	vec []int
}

// Category returns the hand's category.
func (hv HandValue) Category() HandCategory {
	if len(hv.vec) == 0 {
		return HighCard
	}
	return HandCategory(hv.vec[0])
}

// String returns the display name of the hand's category.
func (hv HandValue) String() string {
	return hv.Category().String()
}

// CompareHands compares two hand values lexicographically and returns
// -1, 0 or 1. Missing positions compare as zero.
func CompareHands(a, b HandValue) int {
	n := len(a.vec)
	if len(b.vec) > n {
		n = len(b.vec)
	}
	for i := 0; i < n; i++ {
		av, bv := 0, 0
		if i < len(a.vec) {
			av = a.vec[i]
		}
		if i < len(b.vec) {
			bv = b.vec[i]
		}
		if av != bv {
			if av > bv {
				return 1
			}
			return -1
		}
	}
	return 0
}

// straightHigh returns the high card of the best straight formable from the
// given rank set, or 0 if there is none. The wheel (A-2-3-4-5) counts as a
// five-high straight, below six-high.
func straightHigh(ranks map[int]bool) int {
	for high := 14; high >= 5; high-- {
		ok := true
		for k := 0; k < 5; k++ {
			if !ranks[high-k] {
				ok = false
				break
			}
		}
		if ok {
			return high
		}
	}
	if ranks[14] && ranks[5] && ranks[4] && ranks[3] && ranks[2] {
		return 5
	}
	return 0
}

// rankGroup is a rank value with its multiplicity within five cards.
type rankGroup struct {
	value int
	count int
}

// evaluateFive classifies exactly five cards into a HandValue.
func evaluateFive(cards []Card) HandValue {
	vals := make([]int, len(cards))
	for i, c := range cards {
		vals[i] = int(c.rank)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(vals)))

	freq := make(map[int]int)
	for _, v := range vals {
		freq[v]++
	}

	groups := make([]rankGroup, 0, len(freq))
	for v, c := range freq {
		groups = append(groups, rankGroup{value: v, count: c})
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].count != groups[j].count {
			return groups[i].count > groups[j].count
		}
		return groups[i].value > groups[j].value
	})

	unique := make(map[int]bool, len(freq))
	for v := range freq {
		unique[v] = true
	}

	flush := true
	for _, c := range cards {
		if c.suit != cards[0].suit {
			flush = false
			break
		}
	}
	straight := straightHigh(unique)

	switch {
	case flush && straight > 0:
		return HandValue{vec: []int{int(StraightFlush), straight}}

	case groups[0].count == 4:
		quad := groups[0].value
		kicker := groups[1].value
		return HandValue{vec: []int{int(FourOfAKind), quad, kicker}}

	case groups[0].count == 3 && groups[1].count == 2:
		return HandValue{vec: []int{int(FullHouse), groups[0].value, groups[1].value}}

	case flush:
		return HandValue{vec: append([]int{int(Flush)}, vals...)}

	case straight > 0:
		return HandValue{vec: []int{int(Straight), straight}}

	case groups[0].count == 3:
		vec := []int{int(ThreeOfAKind), groups[0].value}
		for _, g := range groups[1:] {
			vec = append(vec, g.value)
		}
		return HandValue{vec: vec}

	case groups[0].count == 2 && groups[1].count == 2:
		hi, lo := groups[0].value, groups[1].value
		if lo > hi {
			hi, lo = lo, hi
		}
		return HandValue{vec: []int{int(TwoPair), hi, lo, groups[2].value}}

	case groups[0].count == 2:
		vec := []int{int(Pair), groups[0].value}
		for _, g := range groups[1:] {
			vec = append(vec, g.value)
		}
		return HandValue{vec: vec}

	default:
		return HandValue{vec: append([]int{int(HighCard)}, vals...)}
	}
}

// EvaluateHand computes a player's best five-card hand from their hole cards
// and the community cards by brute-force enumeration of every five-card
// subset. Bounded at seven cards, so the 21-subset search is exact and cheap.
func EvaluateHand(holeCards, communityCards []Card) HandValue {
	all := append([]Card{}, holeCards...)
	all = append(all, communityCards...)
	return bestOfFive(all)
}

// bestOfFive returns the maximum HandValue over all five-card subsets.
func bestOfFive(cards []Card) HandValue {
	if len(cards) <= 5 {
		return evaluateFive(cards)
	}

	var best HandValue
	first := true
	five := make([]Card, 0, 5)
	for _, combo := range combinations(len(cards), 5) {
		five = five[:0]
		for _, idx := range combo {
			five = append(five, cards[idx])
		}
		hv := evaluateFive(five)
		if first || CompareHands(hv, best) > 0 {
			best = hv
			first = false
		}
	}
	return best
}

// combinations returns every k-subset of [0, n) as index slices.
func combinations(n, k int) [][]int {
	var out [][]int
	var recurse func(start int, current []int)
	recurse = func(start int, current []int) {
		if len(current) == k {
			combo := make([]int, k)
			copy(combo, current)
			out = append(out, combo)
			return
		}
		for i := start; i <= n-(k-len(current)); i++ {
			recurse(i+1, append(current, i))
		}
	}
	recurse(0, make([]int, 0, k))
	return out
}
