package poker

// SeatKind distinguishes human-controlled seats from bot-filled ones.
type SeatKind string

const (
	SeatHuman SeatKind = "human"
	SeatBot   SeatKind = "bot"
)

// Occupant describes who should fill a seat when a table is created.
type Occupant struct {
	Kind SeatKind
	Name string
}

// Seat represents one table position for the duration of a hand.
type Seat struct {
	Index int
	Kind  SeatKind
	Name  string

	Stack        int64  // chips behind
	Bet          int64  // current-street bet
	TotalContrib int64  // cumulative contribution across the whole hand
	Hole         []Card // two-card hole hand

	InHand   bool // still contesting the pot
	HasActed bool // acted since the last bet increase
	AllIn    bool // stack exhausted mid-hand
}

// resetForHand clears per-hand state. A seat contests the new hand only if
// it still has chips.
func (s *Seat) resetForHand() {
	s.Hole = s.Hole[:0]
	s.Bet = 0
	s.TotalContrib = 0
	s.InHand = s.Stack > 0
	s.HasActed = false
	s.AllIn = false
}

// canAct reports whether the seat can still take a betting action.
func (s *Seat) canAct() bool {
	return s.InHand && !s.AllIn
}
