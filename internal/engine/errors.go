package engine

import "errors"

// PhaseError is returned when a round step is invoked in the wrong phase.
type PhaseError string

func (e PhaseError) Error() string { return string(e) }

var (
	ErrCardNotInHand = errors.New("card not in hand")
	ErrDuplicateCard = errors.New("duplicate card")
	ErrSlotOverflow  = errors.New("too many cards for slot")
	ErrInvalidSeat   = errors.New("invalid seat")
	ErrSeatTaken     = errors.New("seat already taken")
	ErrInvalidBid    = errors.New("bid exceeds maximum game value")
	ErrInvalidPress  = errors.New("must press exactly 2 distinct cards from hand")
	ErrInvalidGame   = errors.New("invalid game declaration")
	ErrIllegalCard   = errors.New("card is not a legal move")
	ErrNilPlayer     = errors.New("player is nil")
)
