//go:generate stringer -type=Phase,Rank,Role -linecomment

package engine

// Suit represents a card suit. Values are in ascending priority.
type Suit int

const (
	Diamonds Suit = iota // ♦
	Hearts               // ♥
	Spades               // ♠
	Clubs                // ♣
)

// Suits lists all suits in ascending priority.
var Suits = [...]Suit{Diamonds, Hearts, Spades, Clubs}

func (s Suit) String() string {
	switch s {
	case Diamonds:
		return "♦"
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	case Clubs:
		return "♣"
	default:
		return "?"
	}
}

// Name returns the spelled-out suit name.
func (s Suit) Name() string {
	switch s {
	case Diamonds:
		return "diamonds"
	case Hearts:
		return "hearts"
	case Spades:
		return "spades"
	case Clubs:
		return "clubs"
	default:
		return "unknown"
	}
}

// Rank represents a card rank. Values are in ascending rank priority,
// which is not the point-value order.
type Rank int

const (
	Seven Rank = iota // 7
	Eight             // 8
	Nine              // 9
	Jack              // J
	Queen             // Q
	King              // K
	Ten               // 10
	Ace               // A
)

// Ranks lists all ranks in ascending priority.
var Ranks = [...]Rank{Seven, Eight, Nine, Jack, Queen, King, Ten, Ace}

// PointsFor returns points of a rank for trick scoring.
func PointsFor(r Rank) int {
	switch r {
	case Ace:
		return 11
	case Ten:
		return 10
	case King:
		return 4
	case Queen:
		return 3
	case Jack:
		return 2
	default:
		return 0
	}
}

// Seat identifies one of the three places at the table.
type Seat int

// NumSeats is the number of players in a round.
const NumSeats = 3

// Next returns the seat to the left.
func (s Seat) Next() Seat { return (s + 1) % NumSeats }

// Valid reports whether s is a seat index.
func (s Seat) Valid() bool { return s >= 0 && s < NumSeats }

// Role is a seat's play-order position for the current trick.
type Role int

const (
	FrontHand  Role = iota // front
	MiddleHand             // middle
	BackHand               // back
)

// Phase represents the round phase. Phases only ever move forward.
type Phase int

const (
	PhaseWaiting      Phase = iota // waiting
	PhaseDealing                   // dealing
	PhaseBidding                   // bidding
	PhaseSkatExchange              // skat exchange
	PhaseDeclaring                 // declaring
	PhasePlaying                   // playing
	PhaseCounting                  // counting
)

// Play represents a single play in a trick.
type Play struct {
	Seat Seat `json:"seat"`
	Card Card `json:"card"`
}
