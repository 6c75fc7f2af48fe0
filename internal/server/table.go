package server

import (
	"context"
	"fmt"
	"time"

	"bela-game/internal/config"
	"bela-game/internal/database"
	"bela-game/internal/game"
	"bela-game/internal/player"
	"bela-game/internal/protocol"
	"bela-game/internal/shared"

	"github.com/sirupsen/logrus"
)

// spectatorPlayer forwards every round event to the hub after the wrapped
// player has seen it.
type spectatorPlayer struct {
	game.RoundPlayer
	hub   *Hub
	delay time.Duration
}

func (s *spectatorPlayer) OnUpdate(v game.View, ev game.Event) {
	s.RoundPlayer.OnUpdate(v, ev)

	msg, err := protocol.FromEvent(v.RoundID(), ev)
	if err != nil {
		logrus.WithError(err).Warn("Dropping event for spectators")
		return
	}
	s.hub.Broadcast(msg)
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
}

// Table plays bot rounds back to back, streams them to spectators and
// records each result.
type Table struct {
	hub           *Hub
	store         ResultStore
	bot           game.RoundPlayer
	names         [shared.NumberOfPlayers]string
	eventDelay    time.Duration
	roundInterval time.Duration
	log           *logrus.Entry
}

func NewTable(hub *Hub, store ResultStore, cfg config.Config) *Table {
	return &Table{
		hub:           hub,
		store:         store,
		bot:           player.NewRandomPlayer(nil),
		names:         cfg.PlayerNames,
		eventDelay:    cfg.EventDelay,
		roundInterval: cfg.RoundInterval,
		log:           logrus.WithField("component", "table"),
	}
}

// PlayRound deals, plays and stores a single round.
func (t *Table) PlayRound(dealer int) (*game.Round, error) {
	sp := &spectatorPlayer{RoundPlayer: t.bot, hub: t.hub, delay: t.eventDelay}
	round, err := game.NewRound(dealer, t.names, sp, game.WithLogger(t.log))
	if err != nil {
		return nil, err
	}

	start, err := protocol.RoundStart(round)
	if err != nil {
		return nil, fmt.Errorf("encode round start: %w", err)
	}
	t.hub.Broadcast(start)

	if err := round.Run(); err != nil {
		return round, err
	}

	result, err := ResultFromRound(round, time.Now())
	if err != nil {
		return round, err
	}
	if err := t.store.Insert(result); err != nil {
		return round, fmt.Errorf("store round %s: %w", round.ID(), err)
	}
	return round, nil
}

// Run plays rounds until ctx is cancelled, passing the deal clockwise.
func (t *Table) Run(ctx context.Context) error {
	dealer := 0
	for {
		round, err := t.PlayRound(dealer)
		if err != nil {
			t.log.WithError(err).Error("Round failed")
		} else {
			final := round.FinalPoints()
			t.log.WithFields(logrus.Fields{
				"round": round.ID(),
				"teamA": final.Get(shared.TeamA),
				"teamB": final.Get(shared.TeamB),
			}).Info("Round stored")
		}
		dealer = shared.NextSeat(dealer)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(t.roundInterval):
		}
	}
}

// ResultFromRound converts a finished round into a row for the results store.
func ResultFromRound(r *game.Round, now time.Time) (database.RoundResult, error) {
	score, ok := r.Result()
	if !ok {
		return database.RoundResult{}, fmt.Errorf("%w: round %s has no result", shared.ErrInvariantViolation, r.ID())
	}
	trump, ok := r.Trump()
	if !ok {
		return database.RoundResult{}, fmt.Errorf("%w: round %s has no trump", shared.ErrInvariantViolation, r.ID())
	}
	names := r.Names()
	return database.RoundResult{
		ID:         r.ID(),
		CreatedAt:  now.UTC().Format(time.RFC3339),
		Player1:    names[0],
		Player2:    names[1],
		Player3:    names[2],
		Player4:    names[3],
		TrumpSeat:  trump.Seat,
		TrumpSuit:  trump.Suit.String(),
		Team1Score: score.Final.Get(shared.TeamA),
		Team2Score: score.Final.Get(shared.TeamB),
		FailedCall: score.FailedCall,
	}, nil
}
