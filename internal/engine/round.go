package engine

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// RoundOptions parameterizes a round. The zero value deals randomly with
// seat 0 as dealer and runs the full auction.
type RoundOptions struct {
	Dealer Seat
	// SkipBidding goes straight to the skat exchange with Soloist (or the
	// front hand when unset) as soloist.
	SkipBidding bool
	// Soloist is the pre-designated soloist, also used when nobody bids.
	Soloist *Seat
	// Game, when set, is declared without asking the soloist.
	Game *Game
	// Deck, when set, is dealt in its given order without shuffling.
	Deck   *Deck
	Seed   *int64
	Policy ScoringPolicy
	Logger logrus.FieldLogger
}

// Result is the final signal of a counted round.
type Result struct {
	RoundID         uuid.UUID `json:"roundId"`
	Soloist         Seat      `json:"soloist"`
	Game            Game      `json:"game"`
	HandGame        bool      `json:"handGame"`
	Bid             int       `json:"bid"`
	PointsSoloist   int       `json:"pointsSoloist"`
	PointsDefenders int       `json:"pointsDefenders"`
	SoloistTricks   int       `json:"soloistTricks"`
	Policy          string    `json:"policy"`
	Settlement
}

// Round is the state machine for one hand of Skat, from deal to count. A
// Round owns all of its state and shares nothing with other rounds.
type Round struct {
	ID uuid.UUID

	phase  Phase
	phases []Phase
	dealer Seat

	players [NumSeats]Player
	hands   [NumSeats]*Hand
	stacks  [NumSeats][]Card

	deck    *Deck
	stacked bool
	rng     *rand.Rand

	skipBidding    bool
	defaultSoloist Seat
	highestBid     int
	bidder         Seat
	hasBidder      bool
	soloist        Seat
	soloistKnown   bool

	handGame   bool
	skat       []Card
	game       *Game
	presetGame *Game
	trick      *Trick
	history    TrickHistory

	policy ScoringPolicy
	result *Result
	log    logrus.FieldLogger
}

// NewRound constructs an empty round waiting for its three players.
func NewRound(opts RoundOptions) (*Round, error) {
	if !opts.Dealer.Valid() {
		return nil, fmt.Errorf("%w: dealer %d", ErrInvalidSeat, opts.Dealer)
	}
	r := &Round{
		ID:             uuid.New(),
		phase:          PhaseWaiting,
		phases:         []Phase{PhaseWaiting},
		dealer:         opts.Dealer,
		deck:           &Deck{},
		skipBidding:    opts.SkipBidding,
		defaultSoloist: opts.Dealer.Next(),
		policy:         opts.Policy,
	}
	if opts.Soloist != nil {
		if !opts.Soloist.Valid() {
			return nil, fmt.Errorf("%w: soloist %d", ErrInvalidSeat, *opts.Soloist)
		}
		r.defaultSoloist = *opts.Soloist
	}
	if opts.Game != nil {
		if !opts.Game.Valid() {
			return nil, fmt.Errorf("%w: %+v", ErrInvalidGame, *opts.Game)
		}
		g := *opts.Game
		r.presetGame = &g
	}
	if opts.Deck != nil {
		if opts.Deck.Len() != DeckSize {
			return nil, fmt.Errorf("preset deck has %d cards, want %d", opts.Deck.Len(), DeckSize)
		}
		r.deck = &Deck{cards: opts.Deck.Cards()}
		r.stacked = true
	}
	if opts.Seed != nil {
		r.rng = rand.New(rand.NewSource(*opts.Seed))
	}
	if r.policy == nil {
		r.policy = PolicyV1{}
	}
	if r.skipBidding {
		r.soloist = r.defaultSoloist
		r.soloistKnown = true
	}
	for i := range r.hands {
		r.hands[i] = NewHand()
	}

	logger := opts.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	r.log = logger.WithField("round", r.ID)
	return r, nil
}

// SetPlayer seats p. The round moves to dealing once all seats are taken.
func (r *Round) SetPlayer(seat Seat, p Player) error {
	if r.phase != PhaseWaiting {
		return PhaseError("players can only be seated while waiting")
	}
	if !seat.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidSeat, seat)
	}
	if p == nil {
		return ErrNilPlayer
	}
	if r.players[seat] != nil {
		return fmt.Errorf("%w: %d", ErrSeatTaken, seat)
	}
	r.players[seat] = p
	r.log.WithFields(logrus.Fields{"seat": seat, "player": p.Name()}).Debug("player seated")
	for _, pl := range r.players {
		if pl == nil {
			return nil
		}
	}
	r.setPhase(PhaseDealing)
	return nil
}

func (r *Round) setPhase(p Phase) {
	if p <= r.phase {
		panic(fmt.Sprintf("engine: phase cannot move from %s back to %s", r.phase, p))
	}
	r.phase = p
	r.phases = append(r.phases, p)
	r.log.WithField("phase", p).Debug("phase changed")
}

// Run drives the round from dealing through counting. Cancelling ctx aborts
// between decisions; an aborted or failed round must be discarded.
func (r *Round) Run(ctx context.Context) (Result, error) {
	if r.phase == PhaseWaiting {
		return Result{}, PhaseError("round needs three players")
	}
	for r.phase != PhaseCounting {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		if err := r.step(); err != nil {
			return Result{}, err
		}
	}
	return r.Count()
}

func (r *Round) step() error {
	switch r.phase {
	case PhaseDealing:
		return r.Deal()
	case PhaseBidding:
		return r.Bid()
	case PhaseSkatExchange:
		return r.HandleSkat()
	case PhaseDeclaring:
		return r.Declare()
	case PhasePlaying:
		return r.PlayTrick()
	default:
		return PhaseError(fmt.Sprintf("no step for phase %s", r.phase))
	}
}

// Deal shuffles (unless the deck is preset), deals ten cards to each seat
// in seat order and keeps the last two as skat.
func (r *Round) Deal() error {
	if r.phase != PhaseDealing {
		return PhaseError("not in dealing phase")
	}
	if !r.stacked {
		r.deck.Initialize()
		r.deck.Shuffle(r.rng)
	}
	for i := range r.hands {
		r.hands[i] = NewHand(r.deck.Deal(HandSize)...)
	}
	r.skat = r.deck.Deal(SkatSize)
	if r.skipBidding {
		r.setPhase(PhaseSkatExchange)
		return nil
	}
	r.setPhase(PhaseBidding)
	return nil
}

// HandleSkat lets the soloist pick up the skat and press two cards, or
// play a hand-game with the skat untouched.
func (r *Round) HandleSkat() error {
	if r.phase != PhaseSkatExchange {
		return PhaseError("not in skat exchange phase")
	}
	p := r.players[r.soloist]
	pickup, err := p.PickUpSkat(r.view(r.soloist))
	if err != nil {
		return fmt.Errorf("seat %d pick up skat: %w", r.soloist, err)
	}
	r.handGame = !pickup
	log := r.log.WithField("seat", r.soloist)
	if pickup {
		r.hands[r.soloist].Add(r.skat...)
		log.WithField("skat", r.skat).Debug("skat picked up")
		r.skat = nil
		pressed, err := p.PressSkat(r.view(r.soloist))
		if err != nil {
			return fmt.Errorf("seat %d press skat: %w", r.soloist, err)
		}
		if err := r.press(pressed); err != nil {
			return fmt.Errorf("seat %d: %w", r.soloist, err)
		}
		log.WithField("skat", r.skat).Debug("skat pressed")
	} else {
		log.Debug("hand game")
	}
	r.setPhase(PhaseDeclaring)
	return nil
}

func (r *Round) press(cards []Card) error {
	if len(cards) != SkatSize || cards[0] == cards[1] {
		return fmt.Errorf("%w: got %v", ErrInvalidPress, cards)
	}
	hand := r.hands[r.soloist]
	for _, c := range cards {
		if !hand.Contains(c) {
			return fmt.Errorf("%w: %w: %s", ErrInvalidPress, ErrCardNotInHand, c)
		}
	}
	for _, c := range cards {
		if err := hand.Remove(c); err != nil {
			return err
		}
	}
	r.skat = append([]Card(nil), cards...)
	return nil
}

// Declare fixes the game and credits the skat to the soloist.
func (r *Round) Declare() error {
	if r.phase != PhaseDeclaring {
		return PhaseError("not in declaring phase")
	}
	g := r.presetGame
	if g == nil {
		declared, err := r.players[r.soloist].DeclareGame(r.view(r.soloist))
		if err != nil {
			return fmt.Errorf("seat %d declare game: %w", r.soloist, err)
		}
		if !declared.Valid() {
			return fmt.Errorf("seat %d: %w: %+v", r.soloist, ErrInvalidGame, declared)
		}
		g = &declared
	}
	r.game = g
	r.stacks[r.soloist] = append(r.stacks[r.soloist], r.skat...)
	for _, h := range r.hands {
		h.Sort(g.SortOrder())
	}
	r.log.WithFields(logrus.Fields{"seat": r.soloist, "game": *g, "hand": r.handGame}).Debug("game declared")
	r.setPhase(PhasePlaying)
	return nil
}

// PlayTrick asks front, middle and back hand for a card, archives the
// trick and credits its cards to the winner.
func (r *Round) PlayTrick() error {
	if r.phase != PhasePlaying {
		return PhaseError("not in playing phase")
	}
	if r.trick == nil {
		r.trick = r.game.NewTrick()
	}
	for !r.trick.Full() {
		seat, _ := r.NextSeat()
		hand := r.hands[seat]
		legal := r.trick.LegalMoves(hand.Cards())
		card, err := r.players[seat].PlayCard(r.view(seat), legal)
		if err != nil {
			return fmt.Errorf("seat %d play card: %w", seat, err)
		}
		if !containsCard(legal, card) {
			return fmt.Errorf("%w: seat %d played %s, legal %v", ErrIllegalCard, seat, card, legal)
		}
		if err := hand.Remove(card); err != nil {
			return fmt.Errorf("seat %d: %w", seat, err)
		}
		r.trick.Append(seat, card)
	}

	done := r.trick.Seal()
	r.trick = nil
	r.history.Append(done)
	w := done.Winner()
	r.stacks[w] = append(r.stacks[w], done.Cards()...)
	r.log.WithFields(logrus.Fields{
		"trick":  r.history.Len(),
		"cards":  done.Cards(),
		"winner": w,
		"value":  done.Value(),
	}).Debug("trick taken")

	for _, h := range r.hands {
		if h.Len() > 0 {
			return nil
		}
	}
	r.setPhase(PhaseCounting)
	return nil
}

// Count scores the finished round. The result is computed once.
func (r *Round) Count() (Result, error) {
	if r.phase != PhaseCounting {
		return Result{}, PhaseError("not in counting phase")
	}
	if r.result != nil {
		return *r.result, nil
	}
	o := Outcome{
		Game:            *r.game,
		HandGame:        r.handGame,
		Bid:             r.highestBid,
		PointsSoloist:   r.PointsSoloist(),
		PointsDefenders: r.PointsDefenders(),
		SoloistTricks:   r.history.TricksWon(r.soloist),
	}
	res := Result{
		RoundID:         r.ID,
		Soloist:         r.soloist,
		Game:            o.Game,
		HandGame:        o.HandGame,
		Bid:             o.Bid,
		PointsSoloist:   o.PointsSoloist,
		PointsDefenders: o.PointsDefenders,
		SoloistTricks:   o.SoloistTricks,
		Policy:          r.policy.Version(),
		Settlement:      r.policy.Settle(o),
	}
	r.result = &res
	r.log.WithFields(logrus.Fields{
		"soloist":   res.Soloist,
		"game":      res.Game,
		"points":    res.PointsSoloist,
		"won":       res.Won,
		"score":     res.Score,
		"schneider": res.Schneider,
		"schwarz":   res.Schwarz,
	}).Info("round counted")
	return res, nil
}

// Phase returns the current phase.
func (r *Round) Phase() Phase { return r.phase }

// Phases returns every phase the round has entered, in order.
func (r *Round) Phases() []Phase { return append([]Phase(nil), r.phases...) }

// Dealer returns the dealer seat.
func (r *Round) Dealer() Seat { return r.dealer }

// Soloist returns the soloist, once known.
func (r *Round) Soloist() (Seat, bool) { return r.soloist, r.soloistKnown }

// HighestBid returns the highest bid and whether anyone bid at all.
func (r *Round) HighestBid() (int, bool) { return r.highestBid, r.hasBidder }

// HandGame reports whether the soloist left the skat untouched.
func (r *Round) HandGame() bool { return r.handGame }

// Game returns the declared game, once declared.
func (r *Round) Game() (Game, bool) {
	if r.game == nil {
		return Game{}, false
	}
	return *r.game, true
}

// Hand returns a copy of the cards seat holds.
func (r *Round) Hand(seat Seat) []Card { return r.hands[seat].Cards() }

// Skat returns a copy of the current skat.
func (r *Round) Skat() []Card { return append([]Card(nil), r.skat...) }

// TrickStack returns a copy of the cards credited to seat.
func (r *Round) TrickStack(seat Seat) []Card { return append([]Card(nil), r.stacks[seat]...) }

// History returns the completed tricks.
func (r *Round) History() []CompletedTrick { return r.history.Tricks() }

// DeckLen returns the number of undealt cards.
func (r *Round) DeckLen() int { return r.deck.Len() }

// FrontHand leads the next trick: left of the dealer before the first
// trick, then the winner of the previous trick.
func (r *Round) FrontHand() Seat {
	if last, ok := r.history.Last(); ok {
		return last.Winner()
	}
	return r.dealer.Next()
}

// MiddleHand sits left of the front hand.
func (r *Round) MiddleHand() Seat { return r.FrontHand().Next() }

// BackHand sits right of the front hand.
func (r *Round) BackHand() Seat { return r.FrontHand().Next().Next() }

// RoleOf returns seat's position relative to the front hand.
func (r *Round) RoleOf(seat Seat) Role {
	return Role((int(seat) - int(r.FrontHand()) + NumSeats) % NumSeats)
}

// NextSeat returns the seat due to play, if play is in progress.
func (r *Round) NextSeat() (Seat, bool) {
	if r.phase != PhasePlaying {
		return 0, false
	}
	n := 0
	if r.trick != nil {
		if r.trick.Full() {
			return 0, false
		}
		n = r.trick.Len()
	}
	seat := r.FrontHand()
	for i := 0; i < n; i++ {
		seat = seat.Next()
	}
	return seat, true
}

// PointsSoloist returns the card points credited to the soloist so far.
func (r *Round) PointsSoloist() int {
	if !r.soloistKnown {
		return 0
	}
	return cardPoints(r.stacks[r.soloist])
}

// PointsDefenders returns the summed card points of both defenders.
func (r *Round) PointsDefenders() int {
	if !r.soloistKnown {
		return 0
	}
	return cardPoints(r.stacks[r.soloist.Next()]) + cardPoints(r.stacks[r.soloist.Next().Next()])
}
