package poker

import (
	"sort"
)

// Pot is a contribution-layered slice of the total pot, computed only at
// showdown. Eligible holds the indexes of contesting seats whose hand-total
// contribution reached this layer's level.
type Pot struct {
	Amount   int64
	Eligible []int
}

// PotResult is the reportable breakdown of one resolved pot.
type PotResult struct {
	Index    int      `json:"index"`
	Amount   int64    `json:"amount"`
	Eligible []string `json:"eligible"`
}

// HandResult summarizes the last resolved hand.
type HandResult struct {
	Winners  []string    `json:"winners"`
	HandName string      `json:"hand"`
	Pots     []PotResult `json:"pots"`
}

// buildSidePots partitions the total pot into eligibility layers derived from
// hand-total contributions. Every seat that put chips in (folded ones
// included) funds the layers up to its contribution level; only contesting
// seats are eligible to win a layer. Short all-ins therefore cap what their
// layer can award, which is exactly the side-pot rule.
func buildSidePots(seats []*Seat) []Pot {
	levelSet := make(map[int64]bool)
	contributors := 0
	for _, s := range seats {
		if s.TotalContrib > 0 {
			levelSet[s.TotalContrib] = true
			contributors++
		}
	}
	if contributors == 0 {
		return nil
	}

	levels := make([]int64, 0, len(levelSet))
	for lvl := range levelSet {
		levels = append(levels, lvl)
	}
	sort.Slice(levels, func(i, j int) bool { return levels[i] < levels[j] })

	pots := make([]Pot, 0, len(levels))
	prev := int64(0)
	for _, level := range levels {
		slice := level - prev

		funding := 0
		var eligible []int
		for _, s := range seats {
			if s.TotalContrib >= level {
				funding++
				if s.InHand {
					eligible = append(eligible, s.Index)
				}
			}
		}

		amount := slice * int64(funding)
		if amount > 0 {
			pots = append(pots, Pot{Amount: amount, Eligible: eligible})
		}
		prev = level
	}
	return pots
}
