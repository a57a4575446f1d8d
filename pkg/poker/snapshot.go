package poker

// SeatSnapshot is the public view of one seat.
type SeatSnapshot struct {
	Seat         int      `json:"seat"`
	Kind         SeatKind `json:"type"`
	Name         string   `json:"name"`
	Stack        int64    `json:"stack"`
	InHand       bool     `json:"inHand"`
	Bet          int64    `json:"bet"`
	AllIn        bool     `json:"allIn"`
	TotalContrib int64    `json:"totalContrib"`
}

// PrivateView carries what only one viewer may see: their own hole cards.
type PrivateView struct {
	Seat int      `json:"seat"`
	Name string   `json:"name"`
	Hole []string `json:"hand"`
}

// TableSnapshot is an immutable point-in-time projection of table state.
// Canonical state stays mutable inside the Table; snapshots are views
// produced under the lock, never the other way around.
type TableSnapshot struct {
	TableID     string         `json:"tableId"`
	Phase       Phase          `json:"phase"`
	HandID      int            `json:"handId"`
	DealerSeat  int            `json:"dealerSeat"`
	SmallBlind  int64          `json:"sb"`
	BigBlind    int64          `json:"bb"`
	Pot         int64          `json:"pot"`
	ToCall      int64          `json:"toCall"`
	CurrentSeat int            `json:"currentSeat"`
	Board       []string       `json:"board"`
	Seats       []SeatSnapshot `json:"seats"`
	LastResult  *HandResult    `json:"lastResult,omitempty"`
	You         *PrivateView   `json:"you,omitempty"`
}

// Snapshot returns the public state snapshot.
func (t *Table) Snapshot() TableSnapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.snapshotLocked()
}

// SnapshotFor returns the public snapshot plus the viewer's own hole cards.
// Non-participants get the public snapshot unchanged.
func (t *Table) SnapshotFor(seatIdx int) TableSnapshot {
	t.mu.Lock()
	defer t.mu.Unlock()

	snap := t.snapshotLocked()
	if seatIdx < 0 || seatIdx >= len(t.seats) {
		return snap
	}
	s := t.seats[seatIdx]
	snap.You = &PrivateView{
		Seat: s.Index,
		Name: s.Name,
		Hole: renderCards(s.Hole),
	}
	return snap
}

// snapshotLocked builds the projection. Callers must hold t.mu.
func (t *Table) snapshotLocked() TableSnapshot {
	seats := make([]SeatSnapshot, len(t.seats))
	for i, s := range t.seats {
		seats[i] = SeatSnapshot{
			Seat:         s.Index,
			Kind:         s.Kind,
			Name:         s.Name,
			Stack:        s.Stack,
			InHand:       s.InHand,
			Bet:          s.Bet,
			AllIn:        s.AllIn,
			TotalContrib: s.TotalContrib,
		}
	}

	var result *HandResult
	if t.lastResult != nil {
		r := *t.lastResult
		result = &r
	}

	return TableSnapshot{
		TableID:     t.cfg.ID,
		Phase:       t.phase,
		HandID:      t.handID,
		DealerSeat:  t.dealer,
		SmallBlind:  t.cfg.SmallBlind,
		BigBlind:    t.cfg.BigBlind,
		Pot:         t.pot,
		ToCall:      t.toCall,
		CurrentSeat: t.current,
		Board:       renderCards(t.board),
		Seats:       seats,
		LastResult:  result,
	}
}
