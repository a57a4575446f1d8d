// pokersim runs a four-bot table for a number of hands and prints every
// incremental state update, which is handy for watching the engine play and
// for eyeballing side-pot resolution. Configuration comes from the
// environment (optionally a .env file):
//
//	POKER_SB, POKER_BB     blind sizes (default 10/20)
//	POKER_STACK            starting stack (default 2000)
//	POKER_HANDS            hands to play (default 5)
//	POKER_BOT_PACE_MS      delay between bot moves (default 260)
//	POKER_DEBUG            set to enable debug logging
package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/decred/slog"
	"github.com/joho/godotenv"

	"github.com/nellysaidali/poker-online/pkg/poker"
)

func envInt64(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return def
}

func main() {
	// A missing .env is fine; the environment still applies.
	_ = godotenv.Load()

	backend := slog.NewBackend(os.Stdout)
	log := backend.Logger("SIM")
	if os.Getenv("POKER_DEBUG") != "" {
		log.SetLevel(slog.LevelDebug)
	} else {
		log.SetLevel(slog.LevelInfo)
	}

	repo := poker.NewRepository(log)
	table, err := repo.CreateTable(poker.TableConfig{
		Log:           log,
		SmallBlind:    envInt64("POKER_SB", 10),
		BigBlind:      envInt64("POKER_BB", 20),
		StartingStack: envInt64("POKER_STACK", 2000),
		BotPace:       time.Duration(envInt64("POKER_BOT_PACE_MS", 260)) * time.Millisecond,
	}, nil) // no humans; bots fill every seat
	if err != nil {
		log.Errorf("create table: %v", err)
		os.Exit(1)
	}
	defer repo.RemoveTable(table.ID())

	updates := make(chan poker.TableUpdate, 64)
	table.SetEventChannel(updates)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for u := range updates {
			s := u.State
			fmt.Printf("  [%s] hand=%d pot=%d toCall=%d seat=%d board=%v\n",
				s.Phase, s.HandID, s.Pot, s.ToCall, s.CurrentSeat, s.Board)
		}
	}()

	hands := int(envInt64("POKER_HANDS", 5))
	for i := 0; i < hands; i++ {
		// With only bots seated the hand plays to completion inside StartHand.
		if err := table.StartHand(); err != nil {
			log.Errorf("start hand: %v", err)
			break
		}
		snap := table.Snapshot()
		if r := snap.LastResult; r != nil {
			log.Infof("hand %d: %v with %s", snap.HandID, r.Winners, r.HandName)
			for _, p := range r.Pots {
				log.Infof("  pot %d: %d chips, eligible %v", p.Index, p.Amount, p.Eligible)
			}
		}
		for _, seat := range snap.Seats {
			log.Infof("  seat %d %-8s stack=%d", seat.Seat, seat.Name, seat.Stack)
		}
	}

	close(updates)
	<-done
}
