package engine

// Player is the decision contract every participant implements. Each call
// blocks the round until it returns.
type Player interface {
	Name() string
	// MakeBid returns a value above current to raise, anything else folds.
	MakeBid(v *View, current int) (int, error)
	PickUpSkat(v *View) (bool, error)
	// PressSkat is only asked while the player holds 12 cards.
	PressSkat(v *View) ([]Card, error)
	DeclareGame(v *View) (Game, error)
	// PlayCard is only asked with a non-empty legal set.
	PlayCard(v *View, legal []Card) (Card, error)
}

// View is what a seat may see when asked for a decision.
type View struct {
	Seat       Seat
	Hand       []Card
	Phase      Phase
	Dealer     Seat
	HighestBid int
	Soloist    Seat
	Game       *Game
	Trick      []Play
	Role       Role
	History    []CompletedTrick

	round *Round
}

// Encode writes the seat's feature vector for the round's current state
// into out. Only views handed out by a Round carry that state; any other
// view encodes as all zeros.
func (v *View) Encode(out *[InputDim]float32) {
	if v.round == nil {
		*out = [InputDim]float32{}
		return
	}
	v.round.Encode(v.Seat, out)
}

func (r *Round) view(seat Seat) *View {
	v := &View{
		Seat:       seat,
		Hand:       r.hands[seat].Cards(),
		Phase:      r.phase,
		Dealer:     r.dealer,
		HighestBid: r.highestBid,
		Soloist:    r.soloist,
		Role:       r.RoleOf(seat),
		History:    r.history.Tricks(),
		round:      r,
	}
	if r.game != nil {
		g := *r.game
		v.Game = &g
	}
	if r.trick != nil {
		v.Trick = r.trick.Plays()
	}
	return v
}
