package engine

// TrickHistory is the append-only log of completed tricks of a round.
type TrickHistory struct {
	tricks []CompletedTrick
}

// Append archives a completed trick.
func (h *TrickHistory) Append(t CompletedTrick) {
	h.tricks = append(h.tricks, t)
}

// Len returns the number of completed tricks.
func (h *TrickHistory) Len() int { return len(h.tricks) }

// Tricks returns the completed tricks in play order.
func (h *TrickHistory) Tricks() []CompletedTrick {
	return append([]CompletedTrick(nil), h.tricks...)
}

// Last returns the most recent trick.
func (h *TrickHistory) Last() (CompletedTrick, bool) {
	if len(h.tricks) == 0 {
		return CompletedTrick{}, false
	}
	return h.tricks[len(h.tricks)-1], true
}

// Played returns every card played so far as a membership vector.
func (h *TrickHistory) Played() [DeckSize]bool {
	var mask [DeckSize]bool
	for _, t := range h.tricks {
		for _, p := range t.plays {
			mask[p.Card.Index()] = true
		}
	}
	return mask
}

// PlayedBy returns the cards seat has played so far as a membership vector.
func (h *TrickHistory) PlayedBy(seat Seat) [DeckSize]bool {
	var mask [DeckSize]bool
	for _, t := range h.tricks {
		for _, p := range t.plays {
			if p.Seat == seat {
				mask[p.Card.Index()] = true
			}
		}
	}
	return mask
}

// TricksWon counts the tricks taken by seat.
func (h *TrickHistory) TricksWon(seat Seat) int {
	n := 0
	for _, t := range h.tricks {
		if t.winner == seat {
			n++
		}
	}
	return n
}
