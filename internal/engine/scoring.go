package engine

// TotalPoints is the card-point total of the full pack.
const TotalPoints = 120

// Outcome is the raw result of a played round, before scoring.
type Outcome struct {
	Game            Game
	HandGame        bool
	Bid             int
	PointsSoloist   int
	PointsDefenders int
	SoloistTricks   int
}

// Settlement is an Outcome scored by a ScoringPolicy.
type Settlement struct {
	Won       bool `json:"won"`
	Schneider bool `json:"schneider"`
	Schwarz   bool `json:"schwarz"`
	Overbid   bool `json:"overbid"`
	Value     int  `json:"value"`
	Score     int  `json:"score"`
}

// ScoringPolicy turns an Outcome into a signed score for the soloist.
type ScoringPolicy interface {
	Version() string
	Settle(Outcome) Settlement
}

// PolicyV1 scores by base value times level, where the level counts game,
// hand, schneider and schwarz. Matadors are not counted.
type PolicyV1 struct{}

func (PolicyV1) Version() string { return "skat-v1" }

func (PolicyV1) Settle(o Outcome) Settlement {
	var s Settlement
	base := o.Game.BaseValue()

	if o.Game.Kind == KindNull {
		s.Won = o.SoloistTricks == 0
		s.Value = base
		if o.HandGame {
			s.Value = 35
		}
	} else {
		s.Won = o.PointsSoloist > o.PointsDefenders
		s.Schneider = o.PointsSoloist > 90 || o.PointsDefenders >= 90
		s.Schwarz = o.PointsSoloist == TotalPoints || o.PointsDefenders == TotalPoints
		level := 1
		for _, on := range []bool{o.HandGame, s.Schneider, s.Schwarz} {
			if on {
				level++
			}
		}
		s.Value = base * level
	}

	if s.Value < o.Bid {
		s.Won = false
		s.Overbid = true
		s.Value = ((o.Bid + base - 1) / base) * base
	}

	if s.Won {
		s.Score = s.Value
	} else {
		s.Score = -2 * s.Value
	}
	return s
}
