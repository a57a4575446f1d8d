package poker

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/decred/slog"
	"github.com/thoas/go-funk"

	"github.com/nellysaidali/poker-online/pkg/statemachine"
)

// Phase is one of the table's street phases.
type Phase string

const (
	PhaseIdle    Phase = "idle"
	PhasePreflop Phase = "preflop"
	PhaseFlop    Phase = "flop"
	PhaseTurn    Phase = "turn"
	PhaseRiver   Phase = "river"
)

// isBetting reports whether the phase is an active betting street.
func (p Phase) isBetting() bool {
	switch p {
	case PhasePreflop, PhaseFlop, PhaseTurn, PhaseRiver:
		return true
	}
	return false
}

const defaultMaxSeats = 4

// TableConfig holds configuration for a new table.
type TableConfig struct {
	ID            string
	Log           slog.Logger
	SmallBlind    int64
	BigBlind      int64
	StartingStack int64         // chips per seat at creation; default 2000
	MaxSeats      int           // table capacity; default 4
	BotPace       time.Duration // observability delay between bot moves
	Seed          int64         // optional seed for deterministic hands
}

// TableUpdate is an incremental state notification published after every
// mutation so an external broadcaster can observe bot turns one by one.
type TableUpdate struct {
	TableID string
	State   TableSnapshot
}

// TableStateFn is a street state function following Rob Pike's pattern.
type TableStateFn = statemachine.StateFn[Table]

// Table owns one hold'em table: its seats, deck and betting state. Each
// table is independently scheduled; the mutex makes the apply -> advance ->
// auto-deal -> showdown sequence indivisible relative to other actions on
// the same table, including the synchronous bot auto-play that follows a
// human action.
type Table struct {
	log slog.Logger
	cfg TableConfig

	mu     sync.Mutex
	rng    *rand.Rand
	ctx    context.Context
	cancel context.CancelFunc
	sm     *statemachine.Machine[Table]

	seats  []*Seat
	deck   *Deck
	board  []Card
	phase  Phase
	dealer int

	pot     int64
	toCall  int64
	current int
	handID  int

	// Chip-conservation baseline for the running hand.
	handTotal int64

	lastResult *HandResult

	events chan<- TableUpdate
}

// NewTable creates an initialized table with seats assigned to the given
// occupants in order, bots filling the remaining seats up to capacity.
func NewTable(cfg TableConfig, occupants []Occupant) (*Table, error) {
	if cfg.MaxSeats == 0 {
		cfg.MaxSeats = defaultMaxSeats
	}
	if cfg.StartingStack == 0 {
		cfg.StartingStack = 2000
	}
	if cfg.SmallBlind <= 0 || cfg.BigBlind <= 0 || cfg.BigBlind < cfg.SmallBlind {
		return nil, fmt.Errorf("%w: blinds %d/%d", ErrInvalidSetting, cfg.SmallBlind, cfg.BigBlind)
	}
	if len(occupants) > cfg.MaxSeats {
		return nil, fmt.Errorf("%w: %d occupants for %d seats", ErrInvalidSetting, len(occupants), cfg.MaxSeats)
	}
	if cfg.Log == nil {
		cfg.Log = slog.Disabled
	}

	var rng *rand.Rand
	if cfg.Seed != 0 {
		rng = rand.New(rand.NewSource(cfg.Seed))
	} else {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	ctx, cancel := context.WithCancel(context.Background())
	t := &Table{
		log:    cfg.Log,
		cfg:    cfg,
		rng:    rng,
		ctx:    ctx,
		cancel: cancel,
		phase:  PhaseIdle,
	}
	t.sm = statemachine.New(t, stateIdle)

	botN := 0
	for i := 0; i < cfg.MaxSeats; i++ {
		seat := &Seat{Index: i, Stack: cfg.StartingStack}
		if i < len(occupants) {
			seat.Kind = occupants[i].Kind
			seat.Name = occupants[i].Name
		} else {
			seat.Kind = SeatBot
		}
		if seat.Kind == SeatBot && seat.Name == "" {
			botN++
			seat.Name = fmt.Sprintf("Bot %d", botN)
		}
		if seat.Name == "" {
			seat.Name = fmt.Sprintf("Player %d", i+1)
		}
		t.seats = append(t.seats, seat)
	}

	t.log.Debugf("table %s created: %d seats, blinds %d/%d", cfg.ID, len(t.seats), cfg.SmallBlind, cfg.BigBlind)
	return t, nil
}

// Close tears the table down and cancels any bot sequence mid-pacing.
func (t *Table) Close() {
	t.cancel()
}

// ID returns the table's identifier.
func (t *Table) ID() string {
	return t.cfg.ID
}

// SetEventChannel sets the channel incremental state updates are published
// to. Sends are non-blocking; a full channel drops the update.
func (t *Table) SetEventChannel(ch chan<- TableUpdate) {
	t.mu.Lock()
	t.events = ch
	t.mu.Unlock()
}

// publish sends a snapshot of the current state without blocking.
// Callers must hold t.mu.
func (t *Table) publish() {
	if t.events == nil {
		return
	}
	select {
	case t.events <- TableUpdate{TableID: t.cfg.ID, State: t.snapshotLocked()}:
	default:
		// Consumer is behind; dropping is fine, snapshots are absolute.
	}
}

// Street state functions. Each deals its cards and records the phase; all
// transitions flow through the state machine so a street is never entered
// twice within a hand.

func stateIdle(t *Table) TableStateFn {
	t.phase = PhaseIdle
	return stateIdle
}

func statePreflop(t *Table) TableStateFn {
	t.phase = PhasePreflop
	return statePreflop
}

func stateFlop(t *Table) TableStateFn {
	t.dealBoard(3)
	t.phase = PhaseFlop
	return stateFlop
}

func stateTurn(t *Table) TableStateFn {
	t.dealBoard(1)
	t.phase = PhaseTurn
	return stateTurn
}

func stateRiver(t *Table) TableStateFn {
	t.dealBoard(1)
	t.phase = PhaseRiver
	return stateRiver
}

// StartHand advances the dealer button, shuffles, deals hole cards, posts
// blinds and opens the preflop betting round. It fails while a prior hand is
// still awaiting action, or with fewer than two funded seats. If the seat to
// act is a bot the hand plays forward automatically until a human must act
// or the hand ends.
func (t *Table) StartHand() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.phase != PhaseIdle {
		return ErrHandInProgress
	}
	funded := 0
	for _, s := range t.seats {
		if s.Stack > 0 {
			funded++
		}
	}
	if funded < 2 {
		return ErrNotEnoughPlayers
	}

	t.lastResult = nil
	t.handID++
	t.pot = 0
	t.toCall = 0
	t.board = t.board[:0]

	for _, s := range t.seats {
		s.resetForHand()
	}
	t.handTotal = 0
	for _, s := range t.seats {
		t.handTotal += s.Stack
	}

	t.dealer = (t.dealer + 1) % len(t.seats)
	t.deck = NewDeck(t.rng)
	t.sm.Dispatch(statePreflop)

	// Two cards per contesting seat, one at a time.
	for r := 0; r < 2; r++ {
		for _, s := range t.seats {
			if !s.InHand {
				continue
			}
			card, ok := t.deck.Draw()
			if !ok {
				panic("poker: deck exhausted while dealing hole cards")
			}
			s.Hole = append(s.Hole, card)
		}
	}

	sbSeat := t.nextActingSeat(t.dealer)
	bbSeat := t.nextActingSeat(sbSeat)
	t.takeChips(sbSeat, t.cfg.SmallBlind)
	t.takeChips(bbSeat, t.cfg.BigBlind)
	t.toCall = t.maxBet()
	t.resetActionsForRound()

	if t.hasAnyActing() {
		t.current = t.nextActingSeat(bbSeat)
	} else {
		t.current = bbSeat
	}

	t.log.Debugf("hand %d started: dealer=%d sb=%d bb=%d toCall=%d",
		t.handID, t.dealer, sbSeat, bbSeat, t.toCall)

	t.fastForward()
	t.assertConservation()
	t.publish()
	t.runBots()
	return nil
}

// SubmitAction validates and applies one betting action for the given seat,
// then advances the turn or street and automatically resolves bot turns.
func (t *Table) SubmitAction(seatIdx int, a Action) error {
	if err := a.validate(); err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.phase.isBetting() {
		return ErrNoActiveHand
	}
	if seatIdx < 0 || seatIdx >= len(t.seats) {
		return fmt.Errorf("%w: seat %d", ErrInvalidSeat, seatIdx)
	}
	if seatIdx != t.current {
		return fmt.Errorf("%w: seat %d (seat %d to act)", ErrNotYourTurn, seatIdx, t.current)
	}

	if err := t.applyAction(seatIdx, a); err != nil {
		return err
	}

	t.advanceTurnOrStreet()
	t.assertConservation()
	t.publish()
	t.runBots()
	return nil
}

// takeChips moves up to amount from the seat's stack into its bet, its hand
// contribution and the pot. This is the single chip-movement primitive for
// blinds, calls and raises. Returns what was actually paid.
func (t *Table) takeChips(seatIdx int, amount int64) int64 {
	s := t.seats[seatIdx]
	pay := amount
	if pay > s.Stack {
		pay = s.Stack
	}
	s.Stack -= pay
	s.Bet += pay
	s.TotalContrib += pay
	t.pot += pay
	if s.Stack == 0 {
		s.AllIn = true
	}
	return pay
}

// maxBet returns the largest current-street bet among contesting seats.
func (t *Table) maxBet() int64 {
	var max int64
	for _, s := range t.seats {
		if s.InHand && s.Bet > max {
			max = s.Bet
		}
	}
	return max
}

// applyAction enforces action legality for the acting seat and mutates
// betting state accordingly. Turn enforcement belongs to the caller.
func (t *Table) applyAction(seatIdx int, a Action) error {
	s := t.seats[seatIdx]
	if !s.InHand {
		return fmt.Errorf("%w: seat %d already folded", ErrIllegalAction, seatIdx)
	}
	if s.AllIn {
		return fmt.Errorf("%w: seat %d is all-in", ErrIllegalAction, seatIdx)
	}

	prevToCall := t.toCall

	switch a.Kind {
	case ActionFold:
		s.InHand = false
		s.HasActed = true

	case ActionCheck:
		if t.toCall-s.Bet != 0 {
			return fmt.Errorf("%w: cannot check facing a bet of %d", ErrIllegalAction, t.toCall)
		}
		s.HasActed = true

	case ActionCall:
		need := t.toCall - s.Bet
		if need < 0 {
			need = 0
		}
		t.takeChips(seatIdx, need)
		s.HasActed = true
		// A short all-in call cannot raise the price for the others, so in
		// practice this recompute is a no-op; kept for parity with the raise
		// path's accounting.
		t.toCall = t.maxBet()

	case ActionRaise:
		if a.Target <= prevToCall {
			return fmt.Errorf("%w: raise to %d must exceed %d", ErrIllegalAction, a.Target, prevToCall)
		}
		needToCall := prevToCall - s.Bet
		if needToCall < 0 {
			needToCall = 0
		}
		needRaise := a.Target - prevToCall
		t.takeChips(seatIdx, needToCall+needRaise)

		newMax := t.maxBet()
		if newMax > prevToCall {
			// A genuine bet increase reopens the round for everyone else.
			for _, p := range t.seats {
				if p != s && p.canAct() {
					p.HasActed = false
				}
			}
		}
		t.toCall = newMax
		s.HasActed = true
	}

	t.log.Debugf("hand %d %s: seat %d %s (toCall %d -> %d, pot %d)",
		t.handID, t.phase, seatIdx, a.Kind, prevToCall, t.toCall, t.pot)
	return nil
}

// inHandSeats returns the seats still contesting the pot.
func (t *Table) inHandSeats() []*Seat {
	var in []*Seat
	for _, s := range t.seats {
		if s.InHand {
			in = append(in, s)
		}
	}
	return in
}

// hasAnyActing reports whether any seat can still take an action.
func (t *Table) hasAnyActing() bool {
	for _, s := range t.seats {
		if s.canAct() {
			return true
		}
	}
	return false
}

// nextActingSeat returns the next contesting, non-all-in seat clockwise from
// start, or start itself if none can act.
func (t *Table) nextActingSeat(start int) int {
	n := len(t.seats)
	for i := 1; i <= n; i++ {
		idx := (start + i) % n
		if t.seats[idx].canAct() {
			return idx
		}
	}
	return start
}

// resetActionsForRound clears HasActed for every seat that can still act.
func (t *Table) resetActionsForRound() {
	for _, s := range t.seats {
		if s.canAct() {
			s.HasActed = false
		}
	}
}

// beginStreet resets per-street betting state when a new street is entered.
func (t *Table) beginStreet() {
	for _, s := range t.seats {
		s.Bet = 0
		if s.InHand && s.Stack == 0 {
			s.AllIn = true
		}
	}
	t.toCall = 0
	t.resetActionsForRound()
}

// allActedAndMatched reports whether the betting round is complete: at most
// one contestant remains, or every acting seat has acted since the last bet
// increase and has matched the amount to call.
func (t *Table) allActedAndMatched() bool {
	in := t.inHandSeats()
	if len(in) <= 1 {
		return true
	}
	for _, s := range in {
		if !s.canAct() {
			continue
		}
		if !s.HasActed || s.Bet != t.toCall {
			return false
		}
	}
	return true
}

// dealBoard draws n community cards.
func (t *Table) dealBoard(n int) {
	for i := 0; i < n; i++ {
		card, ok := t.deck.Draw()
		if !ok {
			panic("poker: deck exhausted while dealing the board")
		}
		t.board = append(t.board, card)
	}
}

// firstToActPostflop returns the first acting seat after the button.
func (t *Table) firstToActPostflop() int {
	if !t.hasAnyActing() {
		return t.current
	}
	return t.nextActingSeat(t.dealer)
}

// fastForward auto-deals every remaining street and runs the showdown when
// no seat can act at all (everyone all-in or a lone contestant). The board
// comes out in exactly the order a played-out hand would produce.
func (t *Table) fastForward() {
	if t.phase == PhaseIdle || t.hasAnyActing() {
		return
	}

	switch t.phase {
	case PhasePreflop:
		t.sm.Dispatch(stateFlop)
		t.sm.Dispatch(stateTurn)
		t.sm.Dispatch(stateRiver)
		t.showdown()
	case PhaseFlop:
		t.sm.Dispatch(stateTurn)
		t.sm.Dispatch(stateRiver)
		t.showdown()
	case PhaseTurn:
		t.sm.Dispatch(stateRiver)
		t.showdown()
	case PhaseRiver:
		t.showdown()
	}
}

// goToNextStreet advances the table one street, or to showdown after the
// river or when only one contestant remains.
func (t *Table) goToNextStreet() {
	if len(t.inHandSeats()) <= 1 {
		t.showdown()
		return
	}

	switch t.phase {
	case PhasePreflop:
		t.sm.Dispatch(stateFlop)
	case PhaseFlop:
		t.sm.Dispatch(stateTurn)
	case PhaseTurn:
		t.sm.Dispatch(stateRiver)
	case PhaseRiver:
		t.showdown()
		return
	default:
		return
	}

	t.beginStreet()
	t.current = t.firstToActPostflop()
	t.fastForward()
}

// advanceTurnOrStreet moves the turn pointer, closes the street, or resolves
// the hand, whichever the betting state calls for.
func (t *Table) advanceTurnOrStreet() {
	if len(t.inHandSeats()) <= 1 {
		t.showdown()
		return
	}
	if t.allActedAndMatched() {
		t.goToNextStreet()
		return
	}
	if t.hasAnyActing() {
		t.current = t.nextActingSeat(t.current)
	} else {
		t.fastForward()
	}
}

// showdown resolves the hand: a lone contestant wins outright, otherwise the
// pot is partitioned into contribution-layered pots and each one is awarded
// to its best-ranked eligible hand(s). Odd chips from a split go to the
// first winner in evaluation order.
func (t *Table) showdown() {
	stillIn := t.inHandSeats()

	if len(stillIn) == 1 {
		w := stillIn[0]
		w.Stack += t.pot
		t.lastResult = &HandResult{
			Winners:  []string{w.Name},
			HandName: "Win by fold",
			Pots:     []PotResult{{Index: 0, Amount: t.pot, Eligible: []string{w.Name}}},
		}
		t.log.Infof("hand %d: %s wins %d uncontested", t.handID, w.Name, t.pot)
		t.pot = 0
		t.sm.Dispatch(stateIdle)
		return
	}

	ranks := make(map[int]HandValue, len(stillIn))
	for _, s := range stillIn {
		ranks[s.Index] = EvaluateHand(s.Hole, t.board)
	}

	pots := buildSidePots(t.seats)

	var winnerNames []string
	bestHandName := ""
	var awarded int64

	results := make([]PotResult, 0, len(pots))
	for i, pot := range pots {
		if len(pot.Eligible) == 0 {
			continue
		}

		var winners []int
		var best HandValue
		for _, idx := range pot.Eligible {
			hv := ranks[idx]
			if len(winners) == 0 || CompareHands(hv, best) > 0 {
				best = hv
				winners = []int{idx}
				bestHandName = hv.String()
			} else if CompareHands(hv, best) == 0 {
				winners = append(winners, idx)
			}
		}

		share := pot.Amount / int64(len(winners))
		rem := pot.Amount - share*int64(len(winners))
		for _, idx := range winners {
			t.seats[idx].Stack += share
			awarded += share
			if !funk.ContainsString(winnerNames, t.seats[idx].Name) {
				winnerNames = append(winnerNames, t.seats[idx].Name)
			}
		}
		if rem > 0 {
			// Documented tie-break: the odd chip goes to the first winner in
			// evaluation order, not the seat closest to the button.
			t.seats[winners[0]].Stack += rem
			awarded += rem
		}

		eligible := make([]string, 0, len(pot.Eligible))
		for _, idx := range pot.Eligible {
			eligible = append(eligible, t.seats[idx].Name)
		}
		results = append(results, PotResult{Index: i, Amount: pot.Amount, Eligible: eligible})
	}

	if awarded != t.pot {
		panic(fmt.Sprintf("poker: showdown awarded %d of a %d pot (hand %d)", awarded, t.pot, t.handID))
	}

	if bestHandName == "" {
		bestHandName = "Showdown"
	}
	t.lastResult = &HandResult{
		Winners:  winnerNames,
		HandName: bestHandName,
		Pots:     results,
	}
	t.log.Infof("hand %d: %v win %d (%s, %d pots)", t.handID, winnerNames, t.pot, bestHandName, len(results))
	t.pot = 0
	t.sm.Dispatch(stateIdle)
}

// runBots plays bot turns until a human must act or the hand ends. It runs
// with the table lock held so the sequence is indivisible; the pacing delay
// between moves exists purely so external consumers can observe incremental
// state, and tearing the table down cancels it.
func (t *Table) runBots() {
	for t.phase.isBetting() {
		if !t.hasAnyActing() {
			t.fastForward()
			t.publish()
			break
		}

		cur := t.seats[t.current]
		if !cur.canAct() {
			t.advanceTurnOrStreet()
			t.publish()
			continue
		}
		if cur.Kind != SeatBot {
			break
		}

		a := t.botDecide(t.current)
		if err := t.applyAction(t.current, a); err != nil {
			// A bot must never produce an illegal action; fold to keep the
			// table live and make the bug loud in the logs.
			t.log.Errorf("hand %d: bot %s produced illegal action %v: %v", t.handID, cur.Name, a.Kind, err)
			if err := t.applyAction(t.current, Fold()); err != nil {
				panic(fmt.Sprintf("poker: bot fallback fold rejected: %v", err))
			}
		}

		t.advanceTurnOrStreet()
		t.assertConservation()
		t.publish()

		if t.cfg.BotPace > 0 {
			timer := time.NewTimer(t.cfg.BotPace)
			select {
			case <-t.ctx.Done():
				timer.Stop()
				return
			case <-timer.C:
			}
		}
	}
}

// assertConservation panics on pot/contribution accounting drift. Such drift
// is a logic bug, never user error, so it must fail loudly rather than let
// chips silently appear or vanish.
func (t *Table) assertConservation() {
	if !t.phase.isBetting() {
		return
	}
	var stacks, contribs int64
	for _, s := range t.seats {
		stacks += s.Stack
		contribs += s.TotalContrib
	}
	if contribs != t.pot {
		panic(fmt.Sprintf("poker: pot %d != contributions %d (hand %d)", t.pot, contribs, t.handID))
	}
	if stacks+t.pot != t.handTotal {
		panic(fmt.Sprintf("poker: chips not conserved: stacks %d + pot %d != %d (hand %d)",
			stacks, t.pot, t.handTotal, t.handID))
	}
}
