package engine

import (
	"errors"
	"fmt"
)

// Expected failures are sentinel values so callers can branch with
// errors.Is. Malformed enum values (unknown suit, rank outside 2..14) are
// programmer error and panic instead.
var (
	ErrNoDealer        = errors.New("no dealer set")
	ErrInvalidPhase    = errors.New("action not legal in current phase")
	ErrNotYourTurn     = errors.New("not your turn")
	ErrInvalidAction   = errors.New("invalid action")
	ErrPointCard       = errors.New("point card may not be discarded")
	ErrIncompleteTrick = errors.New("trick has no plays")
	ErrNotFound        = errors.New("no play recorded for position")
	ErrGameNotOver     = errors.New("game is not over")
	ErrNoHistory       = errors.New("no events to undo")
)

// InsufficientCardsError reports a deal that cannot be satisfied.
type InsufficientCardsError struct {
	Required  int
	Available int
}

func (e InsufficientCardsError) Error() string {
	return fmt.Sprintf("insufficient cards: need %d, have %d", e.Required, e.Available)
}
