package engine

import "fmt"

// Trick holds up to three plays of the trick in progress.
type Trick struct {
	game  Game
	plays []Play
}

// Game returns the game governing the trick.
func (t *Trick) Game() Game { return t.game }

// Append adds a play. Appending to a full trick is engine misuse and panics.
func (t *Trick) Append(seat Seat, c Card) {
	if t.Full() {
		panic(fmt.Sprintf("engine: cannot add %s to a full trick", c))
	}
	t.plays = append(t.plays, Play{Seat: seat, Card: c})
}

// Len returns the number of plays so far.
func (t *Trick) Len() int { return len(t.plays) }

// Full reports whether all three seats have played.
func (t *Trick) Full() bool { return len(t.plays) == NumSeats }

// Plays returns a copy of the plays in order.
func (t *Trick) Plays() []Play {
	return append([]Play(nil), t.plays...)
}

// LedSuit returns the suit of the first card, if any.
func (t *Trick) LedSuit() (Suit, bool) {
	if len(t.plays) == 0 {
		return 0, false
	}
	return t.plays[0].Card.Suit, true
}

// LedTrump reports whether the first card is a trump.
func (t *Trick) LedTrump() bool {
	return len(t.plays) > 0 && t.game.IsTrump(t.plays[0].Card)
}

// ContainsTrump reports whether any trump has been played.
func (t *Trick) ContainsTrump() bool {
	for _, p := range t.plays {
		if t.game.IsTrump(p.Card) {
			return true
		}
	}
	return false
}

// ForcedCards returns the cards a follower must play if held. Empty when
// nothing has been led.
func (t *Trick) ForcedCards() []Card {
	if len(t.plays) == 0 {
		return nil
	}
	if t.LedTrump() {
		return t.game.TrumpCards()
	}
	return t.game.SuitCards(t.plays[0].Card.Suit)
}

// LegalMoves returns the cards of hand that may be played next.
func (t *Trick) LegalMoves(hand []Card) []Card {
	forced := t.ForcedCards()
	var legal []Card
	for _, c := range hand {
		if containsCard(forced, c) {
			legal = append(legal, c)
		}
	}
	if len(legal) == 0 {
		return append([]Card(nil), hand...)
	}
	return legal
}

// Value returns the summed points of the cards played so far.
func (t *Trick) Value() int {
	sum := 0
	for _, p := range t.plays {
		sum += p.Card.Points()
	}
	return sum
}

// Winner returns the seat that takes the trick. Reading the winner of a
// trick that is not full is engine misuse and panics.
func (t *Trick) Winner() Seat {
	if !t.Full() {
		panic(fmt.Sprintf("engine: trick has %d of %d plays, no winner yet", len(t.plays), NumSeats))
	}
	return t.plays[t.winningIndex()].Seat
}

func (t *Trick) winningIndex() int {
	best := -1
	if t.ContainsTrump() {
		for i, p := range t.plays {
			if !t.game.IsTrump(p.Card) {
				continue
			}
			if best < 0 || trumpStrength(p.Card) > trumpStrength(t.plays[best].Card) {
				best = i
			}
		}
		return best
	}
	best = 0
	led := t.plays[0].Card.Suit
	for i, p := range t.plays[1:] {
		if p.Card.Suit == led && t.game.beats(p.Card, t.plays[best].Card) {
			best = i + 1
		}
	}
	return best
}

// Seal turns a full trick into its immutable record.
func (t *Trick) Seal() CompletedTrick {
	winner := t.Winner()
	ct := CompletedTrick{game: t.game, winner: winner}
	copy(ct.plays[:], t.plays)
	return ct
}

func (t *Trick) String() string { return fmt.Sprint(t.plays) }

// CompletedTrick is the sealed record of a finished trick.
type CompletedTrick struct {
	game   Game
	plays  [NumSeats]Play
	winner Seat
}

// Game returns the game the trick was played in.
func (c CompletedTrick) Game() Game { return c.game }

// Plays returns the three plays in order.
func (c CompletedTrick) Plays() [NumSeats]Play { return c.plays }

// Winner returns the seat that took the trick.
func (c CompletedTrick) Winner() Seat { return c.winner }

// Leader returns the seat that led.
func (c CompletedTrick) Leader() Seat { return c.plays[0].Seat }

// Cards returns the three cards in play order.
func (c CompletedTrick) Cards() []Card {
	cards := make([]Card, 0, NumSeats)
	for _, p := range c.plays {
		cards = append(cards, p.Card)
	}
	return cards
}

// Value returns the trick's point value.
func (c CompletedTrick) Value() int { return cardPoints(c.Cards()) }
