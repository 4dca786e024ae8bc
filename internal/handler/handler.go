package handler

import (
	"errors"
	"net/http"
	"sort"
	"sync"

	"github.com/ZygmuntJakub/skat/internal/engine"
	"github.com/ZygmuntJakub/skat/internal/player"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// Handler serves the bot registry and plays rounds between registered bots.
type Handler struct {
	Log logrus.FieldLogger

	mu      sync.RWMutex
	players map[uuid.UUID]*Registered
}

// Registered is a bot available for rounds. Every round seats a fresh
// player of its kind, so rounds share no player state.
type Registered struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Kind string    `json:"kind"`
}

type addPlayerRequest struct {
	Kind string `json:"kind"`
}

type playRoundRequest struct {
	Players     []uuid.UUID  `json:"players"`
	Dealer      engine.Seat  `json:"dealer"`
	SkipBidding bool         `json:"skipBidding"`
	Soloist     *engine.Seat `json:"soloist"`
	Game        *engine.Game `json:"game"`
	Seed        *int64       `json:"seed"`
}

func (h *Handler) logger() logrus.FieldLogger {
	if h.Log == nil {
		return logrus.StandardLogger()
	}
	return h.Log
}

// AddPlayer registers a new bot of the requested kind.
func (h *Handler) AddPlayer(c echo.Context) error {
	var req addPlayerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Kind == "" {
		req.Kind = "random"
	}
	p, err := player.New(req.Kind)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	reg := &Registered{ID: uuid.New(), Name: p.Name(), Kind: req.Kind}

	h.mu.Lock()
	if h.players == nil {
		h.players = make(map[uuid.UUID]*Registered)
	}
	h.players[reg.ID] = reg
	h.mu.Unlock()

	h.logger().WithFields(logrus.Fields{"player": reg.ID, "kind": reg.Kind}).Info("player registered")
	return c.JSON(http.StatusCreated, reg)
}

// ListPlayers returns all registered bots ordered by name.
func (h *Handler) ListPlayers(c echo.Context) error {
	h.mu.RLock()
	out := make([]*Registered, 0, len(h.players))
	for _, p := range h.players {
		out = append(out, p)
	}
	h.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return c.JSON(http.StatusOK, out)
}

// PlayRound seats fresh players of three registered kinds, plays one round
// and returns its result. A seed fixes both the deal and the players.
func (h *Handler) PlayRound(c echo.Context) error {
	var req playRoundRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if len(req.Players) != engine.NumSeats {
		return echo.NewHTTPError(http.StatusBadRequest, "exactly three players are required")
	}

	var kinds [engine.NumSeats]string
	h.mu.RLock()
	for i, id := range req.Players {
		reg, ok := h.players[id]
		if !ok {
			h.mu.RUnlock()
			return echo.NewHTTPError(http.StatusNotFound, "unknown player "+id.String())
		}
		kinds[i] = reg.Kind
	}
	h.mu.RUnlock()

	var seats [engine.NumSeats]engine.Player
	for i, kind := range kinds {
		var err error
		if req.Seed != nil {
			seats[i], err = player.NewSeeded(kind, *req.Seed+int64(i))
		} else {
			seats[i], err = player.New(kind)
		}
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
	}

	r, err := engine.NewRound(engine.RoundOptions{
		Dealer:      req.Dealer,
		SkipBidding: req.SkipBidding,
		Soloist:     req.Soloist,
		Game:        req.Game,
		Seed:        req.Seed,
		Logger:      h.logger(),
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	for i, p := range seats {
		if err := r.SetPlayer(engine.Seat(i), p); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
	}

	res, err := r.Run(c.Request().Context())
	if err != nil {
		var phaseErr engine.PhaseError
		if errors.As(err, &phaseErr) {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	return c.JSON(http.StatusOK, res)
}
