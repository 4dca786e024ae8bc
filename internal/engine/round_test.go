package engine

import (
	"context"
	"errors"
	"io"
	"math/rand"
	"sort"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scripted answers from fixed scripts and plays the lowest (or highest)
// legal card.
type scripted struct {
	bids     []int
	raiseAll bool
	pickup   bool
	press    []Card
	game     Game
	highest  bool
	illegal  *Card
	bidErr   error

	seen  []int
	plays []*View
}

func (p *scripted) Name() string { return "scripted" }

func (p *scripted) MakeBid(_ *View, current int) (int, error) {
	p.seen = append(p.seen, current)
	if p.bidErr != nil {
		return 0, p.bidErr
	}
	if p.raiseAll {
		return NextBid(current), nil
	}
	if len(p.bids) == 0 {
		return 0, nil
	}
	b := p.bids[0]
	p.bids = p.bids[1:]
	return b, nil
}

func (p *scripted) PickUpSkat(*View) (bool, error) { return p.pickup, nil }

func (p *scripted) PressSkat(v *View) ([]Card, error) {
	if p.press != nil {
		return p.press, nil
	}
	return v.Hand[len(v.Hand)-2:], nil
}

func (p *scripted) DeclareGame(*View) (Game, error) { return p.game, nil }

func (p *scripted) PlayCard(v *View, legal []Card) (Card, error) {
	p.plays = append(p.plays, v)
	if p.illegal != nil {
		return *p.illegal, nil
	}
	if p.highest {
		return legal[len(legal)-1], nil
	}
	return legal[0], nil
}

// randomPlayer decides uniformly at random from its own source.
type randomPlayer struct{ rng *rand.Rand }

func (p *randomPlayer) Name() string { return "random" }

func (p *randomPlayer) MakeBid(_ *View, current int) (int, error) {
	if p.rng.Intn(2) == 0 {
		return 0, nil
	}
	return NextBid(current), nil
}

func (p *randomPlayer) PickUpSkat(*View) (bool, error) { return p.rng.Intn(2) == 0, nil }

func (p *randomPlayer) PressSkat(v *View) ([]Card, error) {
	idx := p.rng.Perm(len(v.Hand))
	return []Card{v.Hand[idx[0]], v.Hand[idx[1]]}, nil
}

func (p *randomPlayer) DeclareGame(*View) (Game, error) {
	games := Games()
	return games[p.rng.Intn(len(games))], nil
}

func (p *randomPlayer) PlayCard(_ *View, legal []Card) (Card, error) {
	return legal[p.rng.Intn(len(legal))], nil
}

func quietLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func seatedRound(t *testing.T, opts RoundOptions, players ...Player) *Round {
	t.Helper()
	if opts.Logger == nil {
		opts.Logger = quietLogger()
	}
	r, err := NewRound(opts)
	require.NoError(t, err)
	for i, p := range players {
		require.NoError(t, r.SetPlayer(Seat(i), p))
	}
	return r
}

func seat(s Seat) *Seat { return &s }

func game(g Game) *Game { return &g }

func TestNewRoundValidation(t *testing.T) {
	_, err := NewRound(RoundOptions{Dealer: 3})
	assert.ErrorIs(t, err, ErrInvalidSeat)

	_, err = NewRound(RoundOptions{Soloist: seat(-1)})
	assert.ErrorIs(t, err, ErrInvalidSeat)

	_, err = NewRound(RoundOptions{Game: &Game{Kind: KindSuit, Trump: 7}})
	assert.ErrorIs(t, err, ErrInvalidGame)

	short := NewDeck()
	short.Deal(1)
	_, err = NewRound(RoundOptions{Deck: short})
	assert.Error(t, err)
}

func TestSetPlayer(t *testing.T) {
	r, err := NewRound(RoundOptions{Logger: quietLogger()})
	require.NoError(t, err)

	assert.ErrorIs(t, r.SetPlayer(5, &scripted{}), ErrInvalidSeat)
	assert.ErrorIs(t, r.SetPlayer(0, nil), ErrNilPlayer)
	require.NoError(t, r.SetPlayer(0, &scripted{}))
	assert.ErrorIs(t, r.SetPlayer(0, &scripted{}), ErrSeatTaken)
	assert.Equal(t, PhaseWaiting, r.Phase())

	_, err = r.Run(context.Background())
	var phaseErr PhaseError
	assert.ErrorAs(t, err, &phaseErr)

	require.NoError(t, r.SetPlayer(1, &scripted{}))
	require.NoError(t, r.SetPlayer(2, &scripted{}))
	assert.Equal(t, PhaseDealing, r.Phase())
	assert.ErrorAs(t, r.SetPlayer(2, &scripted{}), &phaseErr)
}

func TestStepsOutOfPhase(t *testing.T) {
	r := seatedRound(t, RoundOptions{}, &scripted{}, &scripted{}, &scripted{})
	var phaseErr PhaseError

	assert.ErrorAs(t, r.Bid(), &phaseErr)
	assert.ErrorAs(t, r.HandleSkat(), &phaseErr)
	assert.ErrorAs(t, r.Declare(), &phaseErr)
	assert.ErrorAs(t, r.PlayTrick(), &phaseErr)
	_, err := r.Count()
	assert.ErrorAs(t, err, &phaseErr)

	require.NoError(t, r.Deal())
	assert.ErrorAs(t, r.Deal(), &phaseErr)
	assert.Equal(t, PhaseBidding, r.Phase())
}

func TestDeal(t *testing.T) {
	r := seatedRound(t, RoundOptions{Seed: new(int64)}, &scripted{}, &scripted{}, &scripted{})
	require.NoError(t, r.Deal())

	var all []Card
	for s := Seat(0); s < NumSeats; s++ {
		require.Len(t, r.Hand(s), HandSize)
		all = append(all, r.Hand(s)...)
	}
	require.Len(t, r.Skat(), SkatSize)
	all = append(all, r.Skat()...)
	assert.ElementsMatch(t, FullDeck(), all)
	assert.Zero(t, r.DeckLen())
}

func TestDealPresetDeck(t *testing.T) {
	d, err := Factory(DeckLayout{Skat: []Card{NewCard(Clubs, Jack), NewCard(Spades, Jack)}}, rand.New(rand.NewSource(3)))
	require.NoError(t, err)
	want := d.Cards()

	r := seatedRound(t, RoundOptions{Deck: d}, &scripted{}, &scripted{}, &scripted{})
	require.NoError(t, r.Deal())

	assert.Equal(t, want[0:10], r.Hand(0))
	assert.Equal(t, want[10:20], r.Hand(1))
	assert.Equal(t, want[20:30], r.Hand(2))
	assert.Equal(t, []Card{NewCard(Clubs, Jack), NewCard(Spades, Jack)}, r.Skat())
}

func TestRoles(t *testing.T) {
	r := seatedRound(t, RoundOptions{Dealer: 2}, &scripted{}, &scripted{}, &scripted{})

	assert.Equal(t, Seat(0), r.FrontHand())
	assert.Equal(t, Seat(1), r.MiddleHand())
	assert.Equal(t, Seat(2), r.BackHand())
	assert.Equal(t, FrontHand, r.RoleOf(0))
	assert.Equal(t, MiddleHand, r.RoleOf(1))
	assert.Equal(t, BackHand, r.RoleOf(2))

	_, ok := r.NextSeat()
	assert.False(t, ok)
}

func TestBid(t *testing.T) {
	cases := []struct {
		name    string
		opts    RoundOptions
		players [NumSeats]*scripted
		soloist Seat
		bid     int
		bidder  bool
	}{
		{
			// dealer 0: front 1, middle 2, back 0
			name: "back hand outbids stage winner",
			players: [NumSeats]*scripted{
				{bids: []int{20}},
				{bids: []int{0}},
				{bids: []int{18, 0}},
			},
			soloist: 0, bid: 20, bidder: true,
		},
		{
			name: "front hand holds against both",
			players: [NumSeats]*scripted{
				{bids: []int{18, 0}},
				{bids: []int{20}},
				{bids: []int{0}},
			},
			soloist: 1, bid: 20, bidder: true,
		},
		{
			name: "front hand keeps lead over middle",
			players: [NumSeats]*scripted{
				{bids: []int{0}},
				{bids: []int{20}},
				{bids: []int{18, 0}},
			},
			soloist: 1, bid: 20, bidder: true,
		},
		{
			name:    "nobody bids",
			players: [NumSeats]*scripted{{}, {}, {}},
			soloist: 1,
		},
		{
			name:    "nobody bids with designated soloist",
			opts:    RoundOptions{Soloist: seat(2)},
			players: [NumSeats]*scripted{{}, {}, {}},
			soloist: 2,
		},
		{
			name: "ladder runs out",
			players: [NumSeats]*scripted{
				{raiseAll: true}, {raiseAll: true}, {raiseAll: true},
			},
			soloist: 2, bid: MaxBid, bidder: true,
		},
		{
			name: "equal bid is a pass",
			players: [NumSeats]*scripted{
				{bids: []int{18}},
				{bids: []int{18}},
				{bids: []int{18, 0}},
			},
			soloist: 2, bid: 18, bidder: true,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := seatedRound(t, tc.opts, tc.players[0], tc.players[1], tc.players[2])
			require.NoError(t, r.Deal())
			require.NoError(t, r.Bid())

			s, ok := r.Soloist()
			require.True(t, ok)
			assert.Equal(t, tc.soloist, s)
			bid, bidder := r.HighestBid()
			assert.Equal(t, tc.bid, bid)
			assert.Equal(t, tc.bidder, bidder)
			assert.Equal(t, PhaseSkatExchange, r.Phase())
		})
	}
}

func TestBidErrors(t *testing.T) {
	r := seatedRound(t, RoundOptions{}, &scripted{}, &scripted{}, &scripted{bids: []int{300}})
	require.NoError(t, r.Deal())
	assert.ErrorIs(t, r.Bid(), ErrInvalidBid)

	boom := errors.New("boom")
	r = seatedRound(t, RoundOptions{}, &scripted{}, &scripted{}, &scripted{bidErr: boom})
	require.NoError(t, r.Deal())
	assert.ErrorIs(t, r.Bid(), boom)
}

func TestHandleSkat(t *testing.T) {
	t.Run("hand game", func(t *testing.T) {
		r := seatedRound(t, RoundOptions{SkipBidding: true}, &scripted{}, &scripted{}, &scripted{})
		require.NoError(t, r.Deal())
		skat := r.Skat()
		require.NoError(t, r.HandleSkat())

		assert.True(t, r.HandGame())
		assert.Equal(t, skat, r.Skat())
		assert.Len(t, r.Hand(1), HandSize)
		assert.Equal(t, PhaseDeclaring, r.Phase())

		require.NoError(t, r.Declare())
		assert.Equal(t, skat, r.TrickStack(1))
		assert.Equal(t, cardPoints(skat), r.PointsSoloist())
	})

	t.Run("pick up and press", func(t *testing.T) {
		soloist := &scripted{pickup: true}
		r := seatedRound(t, RoundOptions{SkipBidding: true, Soloist: seat(0)}, soloist, &scripted{}, &scripted{})
		require.NoError(t, r.Deal())
		hand := r.Hand(0)
		soloist.press = hand[:2]
		require.NoError(t, r.HandleSkat())

		assert.False(t, r.HandGame())
		assert.Equal(t, hand[:2], r.Skat())
		assert.Len(t, r.Hand(0), HandSize)
		assert.NotContains(t, r.Hand(0), hand[0])
		assert.NotContains(t, r.Hand(0), hand[1])
	})

	cases := []struct {
		name  string
		press func(hand []Card) []Card
		err   error
	}{
		{
			name:  "one card",
			press: func(hand []Card) []Card { return hand[:1] },
			err:   ErrInvalidPress,
		},
		{
			name:  "same card twice",
			press: func(hand []Card) []Card { return []Card{hand[0], hand[0]} },
			err:   ErrInvalidPress,
		},
		{
			name: "card not held",
			press: func(hand []Card) []Card {
				for _, c := range FullDeck() {
					if !containsCard(hand, c) {
						return []Card{hand[0], c}
					}
				}
				return nil
			},
			err: ErrCardNotInHand,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			soloist := &scripted{pickup: true}
			r := seatedRound(t, RoundOptions{SkipBidding: true, Soloist: seat(0)}, soloist, &scripted{}, &scripted{})
			require.NoError(t, r.Deal())
			soloist.press = tc.press(append(r.Hand(0), r.Skat()...))
			assert.ErrorIs(t, r.HandleSkat(), tc.err)
		})
	}
}

func TestDeclare(t *testing.T) {
	soloist := &scripted{game: NewSuitGame(Hearts)}
	r := seatedRound(t, RoundOptions{SkipBidding: true, Soloist: seat(0)}, soloist, &scripted{}, &scripted{})
	require.NoError(t, r.Deal())
	require.NoError(t, r.HandleSkat())
	require.NoError(t, r.Declare())

	g, ok := r.Game()
	require.True(t, ok)
	assert.Equal(t, NewSuitGame(Hearts), g)
	for s := Seat(0); s < NumSeats; s++ {
		hand := r.Hand(s)
		assert.True(t, sort.SliceIsSorted(hand, func(i, j int) bool {
			return g.SortOrder().Less(hand[i], hand[j])
		}), "seat %d hand %v not sorted", s, hand)
	}
	assert.Equal(t, PhasePlaying, r.Phase())
}

func TestDeclareInvalidGame(t *testing.T) {
	soloist := &scripted{game: Game{Kind: KindGrand + 5}}
	r := seatedRound(t, RoundOptions{SkipBidding: true, Soloist: seat(0)}, soloist, &scripted{}, &scripted{})
	require.NoError(t, r.Deal())
	require.NoError(t, r.HandleSkat())
	assert.ErrorIs(t, r.Declare(), ErrInvalidGame)
}

func TestPlayTrick(t *testing.T) {
	players := [NumSeats]*scripted{{}, {}, {}}
	r := seatedRound(t, RoundOptions{SkipBidding: true, Game: game(NewGrandGame())}, players[0], players[1], players[2])
	require.NoError(t, r.Deal())
	require.NoError(t, r.HandleSkat())
	require.NoError(t, r.Declare())

	next, ok := r.NextSeat()
	require.True(t, ok)
	assert.Equal(t, Seat(1), next)

	require.NoError(t, r.PlayTrick())
	history := r.History()
	require.Len(t, history, 1)
	done := history[0]
	assert.Equal(t, Seat(1), done.Leader())
	assert.Equal(t, done.Winner(), r.FrontHand())
	assert.Contains(t, r.TrickStack(done.Winner()), done.Cards()[0])
	for s := Seat(0); s < NumSeats; s++ {
		assert.Len(t, r.Hand(s), HandSize-1)
	}

	// the leader saw itself as front hand and an empty trick
	require.Len(t, players[1].plays, 1)
	assert.Equal(t, FrontHand, players[1].plays[0].Role)
	assert.Empty(t, players[1].plays[0].Trick)
}

func TestPlayTrickIllegalCard(t *testing.T) {
	// front hand leads the club jack, middle hand must answer with its jack
	d, err := Factory(DeckLayout{
		Hands: [NumSeats][]Card{
			1: {NewCard(Clubs, Jack), NewCard(Spades, Jack), NewCard(Hearts, Jack)},
			2: {NewCard(Diamonds, Jack), NewCard(Clubs, Ace)},
		},
	}, rand.New(rand.NewSource(5)))
	require.NoError(t, err)

	ace := NewCard(Clubs, Ace)
	r := seatedRound(t, RoundOptions{SkipBidding: true, Deck: d, Game: game(NewGrandGame())},
		&scripted{}, &scripted{highest: true}, &scripted{illegal: &ace})
	require.NoError(t, r.Deal())
	require.NoError(t, r.HandleSkat())
	require.NoError(t, r.Declare())

	assert.ErrorIs(t, r.PlayTrick(), ErrIllegalCard)
	assert.True(t, NewHand(r.Hand(2)...).Contains(ace))
}

func TestRunSchwarz(t *testing.T) {
	soloCards := []Card{
		NewCard(Clubs, Jack), NewCard(Spades, Jack), NewCard(Hearts, Jack), NewCard(Diamonds, Jack),
		NewCard(Clubs, Ace), NewCard(Clubs, Ten), NewCard(Clubs, King),
		NewCard(Clubs, Queen), NewCard(Clubs, Nine), NewCard(Clubs, Eight),
	}
	d, err := Factory(DeckLayout{Hands: [NumSeats][]Card{1: soloCards}}, rand.New(rand.NewSource(11)))
	require.NoError(t, err)

	r := seatedRound(t, RoundOptions{SkipBidding: true, Deck: d, Game: game(NewGrandGame())},
		&scripted{}, &scripted{highest: true}, &scripted{})
	res, err := r.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, Seat(1), res.Soloist)
	assert.Equal(t, NewGrandGame(), res.Game)
	assert.True(t, res.HandGame)
	assert.Equal(t, TotalPoints, res.PointsSoloist)
	assert.Zero(t, res.PointsDefenders)
	assert.Equal(t, 10, res.SoloistTricks)
	assert.True(t, res.Won)
	assert.True(t, res.Schneider)
	assert.True(t, res.Schwarz)
	assert.Equal(t, 96, res.Score)
	assert.Equal(t, "skat-v1", res.Policy)
	assert.Equal(t, r.ID, res.RoundID)

	again, err := r.Count()
	require.NoError(t, err)
	assert.Equal(t, res, again)
}

func TestRunRandomRounds(t *testing.T) {
	for seed := int64(1); seed <= 60; seed++ {
		rng := rand.New(rand.NewSource(seed))
		opts := RoundOptions{Dealer: Seat(seed % NumSeats), Seed: &seed, SkipBidding: seed%4 == 0}
		r := seatedRound(t, opts,
			&randomPlayer{rng: rng}, &randomPlayer{rng: rng}, &randomPlayer{rng: rng})

		res, err := r.Run(context.Background())
		require.NoError(t, err, "seed %d", seed)

		assert.Equal(t, TotalPoints, res.PointsSoloist+res.PointsDefenders, "seed %d", seed)
		assert.Equal(t, TotalPoints, r.PointsSoloist()+r.PointsDefenders(), "seed %d", seed)
		assert.Len(t, r.History(), HandSize)
		for s := Seat(0); s < NumSeats; s++ {
			assert.Empty(t, r.Hand(s))
		}
		if res.Game.Kind == KindNull && !res.Overbid {
			assert.Equal(t, res.SoloistTricks == 0, res.Won, "seed %d", seed)
		}

		phases := r.Phases()
		assert.Equal(t, PhaseWaiting, phases[0])
		assert.Equal(t, PhaseCounting, phases[len(phases)-1])
		for i := 1; i < len(phases); i++ {
			assert.Greater(t, phases[i], phases[i-1], "seed %d phases %v", seed, phases)
		}
		assert.Equal(t, !opts.SkipBidding, containsPhase(phases, PhaseBidding))
		assert.Len(t, phases, 6+boolInt(!opts.SkipBidding))
	}
}

func TestRunCancelled(t *testing.T) {
	r := seatedRound(t, RoundOptions{}, &scripted{}, &scripted{}, &scripted{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, PhaseDealing, r.Phase())
}

func containsPhase(phases []Phase, p Phase) bool {
	for _, x := range phases {
		if x == p {
			return true
		}
	}
	return false
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
