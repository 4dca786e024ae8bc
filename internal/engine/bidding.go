package engine

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// BidValues is the ladder of values a game can be worth, in ascending order.
var BidValues = []int{
	18, 20, 22, 23, 24, 27, 30, 33, 35, 36, 40, 44, 45, 46, 48, 50, 54, 55, 59, 60,
	63, 66, 70, 72, 77, 80, 81, 84, 88, 90, 96, 99, 100, 108, 110, 117, 120, 121,
	126, 130, 132, 135, 140, 143, 144, 150, 153, 154, 156, 160, 162, 165, 168, 170,
	176, 180, 187, 192, 198, 204, 216, 240, 264,
}

// MaxBid is the highest value any game can reach.
const MaxBid = 264

// NextBid returns the smallest ladder value above current, or 0 when the
// ladder is exhausted.
func NextBid(current int) int {
	for _, v := range BidValues {
		if v > current {
			return v
		}
	}
	return 0
}

// Bid runs the two-stage auction. Middle hand first bids against front
// hand, then back hand bids against the winner of that stage. The highest
// bidder becomes soloist; without any bid the pre-designated soloist plays.
func (r *Round) Bid() error {
	if r.phase != PhaseBidding {
		return PhaseError("not in bidding phase")
	}
	leader, err := r.duel(r.MiddleHand(), r.FrontHand())
	if err != nil {
		return err
	}
	if _, err := r.duel(r.BackHand(), leader); err != nil {
		return err
	}

	r.soloist = r.defaultSoloist
	if r.hasBidder {
		r.soloist = r.bidder
	}
	r.soloistKnown = true
	r.log.WithFields(logrus.Fields{"seat": r.soloist, "bid": r.highestBid}).Debug("auction closed")
	r.setPhase(PhaseSkatExchange)
	return nil
}

// duel alternates asker and answerer until one folds and returns the seat
// left holding the bid. The answerer holds it unless the asker's bid stands.
func (r *Round) duel(asker, answerer Seat) (Seat, error) {
	for {
		ok, err := r.raise(asker)
		if err != nil || !ok {
			return answerer, err
		}
		ok, err = r.raise(answerer)
		if err != nil {
			return answerer, err
		}
		if !ok {
			return asker, nil
		}
	}
}

func (r *Round) raise(seat Seat) (bool, error) {
	bid, err := r.players[seat].MakeBid(r.view(seat), r.highestBid)
	if err != nil {
		return false, fmt.Errorf("seat %d bid: %w", seat, err)
	}
	if bid > MaxBid {
		return false, fmt.Errorf("%w: seat %d bid %d above %d", ErrInvalidBid, seat, bid, MaxBid)
	}
	log := r.log.WithFields(logrus.Fields{"seat": seat, "bid": bid})
	if bid <= r.highestBid {
		log.Debug("pass")
		return false, nil
	}
	r.highestBid, r.bidder, r.hasBidder = bid, seat, true
	log.Debug("raise")
	return true, nil
}
