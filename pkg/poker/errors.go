package poker

import "errors"

// Engine errors. All are returned to the caller as recoverable rejections;
// the table itself stays consistent after any of them.
var (
	ErrIllegalAction    = errors.New("poker: illegal action")
	ErrNotYourTurn      = errors.New("poker: not this seat's turn")
	ErrNoActiveHand     = errors.New("poker: no betting round in progress")
	ErrHandInProgress   = errors.New("poker: a hand is already in progress")
	ErrNotEnoughPlayers = errors.New("poker: need at least two funded seats")
	ErrInvalidSeat      = errors.New("poker: invalid seat")
	ErrTableNotFound    = errors.New("poker: table not found")
	ErrInvalidSetting   = errors.New("poker: invalid table setting")
)
