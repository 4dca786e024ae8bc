package engine

const (
	InputDim = 141

	gameDim     = 6  // 4 suit games, grand, null
	maxBase     = 24 // grand
	maxTrickVal = 33 // three aces
)

// gameIndex returns the one-hot slot of g: suit games by trump, then grand
// and null.
func gameIndex(g Game) int {
	switch g.Kind {
	case KindGrand:
		return 4
	case KindNull:
		return 5
	default:
		return int(g.Trump)
	}
}

// Encode writes seat's feature vector into out. out is zeroed first.
func (r *Round) Encode(seat Seat, out *[InputDim]float32) {
	r.encode(seat, nil, out)
}

// EncodeFiltered is Encode with the played-card block restricted to the
// cards of one seat.
func (r *Round) EncodeFiltered(seat, played Seat, out *[InputDim]float32) {
	r.encode(seat, &played, out)
}

func (r *Round) encode(seat Seat, only *Seat, out *[InputDim]float32) {
	*out = [InputDim]float32{}
	offset := 0

	// Own hand: 32
	for _, c := range r.hands[seat].cards {
		out[offset+c.Index()] = 1
	}
	offset += DeckSize

	// Game one-hot and base value: 6 + 1
	if r.game != nil {
		out[offset+gameIndex(*r.game)] = 1
		out[offset+gameDim] = float32(r.game.BaseValue()) / maxBase
	}
	offset += gameDim + 1

	// Card points so far: 2
	out[offset] = float32(r.PointsSoloist()) / TotalPoints
	out[offset+1] = float32(r.PointsDefenders()) / TotalPoints
	offset += 2

	// Played cards per seat: 3 × 32
	for s := Seat(0); s < NumSeats; s++ {
		if only == nil || *only == s {
			for i, on := range r.history.PlayedBy(s) {
				if on {
					out[offset+i] = 1
				}
			}
		}
		offset += DeckSize
	}

	// Current trick value: 1
	if r.trick != nil {
		out[offset] = float32(r.trick.Value()) / maxTrickVal
	}
	offset++

	// Role one-hot: 3
	out[offset+int(r.RoleOf(seat))] = 1
}
