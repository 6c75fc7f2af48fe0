package game

import (
	"fmt"
	"math/rand/v2"

	"bela-game/internal/shared"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Phase represents the current phase of the round.
type Phase string

const (
	TrumpCalling Phase = "TrumpCalling" // Seats are asked to call trump
	Declaring    Phase = "Declaring"    // Melds are offered and compared
	Playing      Phase = "Playing"      // Eight tricks are played
	Scoring      Phase = "Scoring"      // Bonuses and the failed call rule are applied
	Done         Phase = "Done"         // Final points are known
)

// Round is a single deal: trump call, declarations, eight tricks and scoring.
// It is owned by one goroutine; the RoundPlayer only ever sees a View.
type Round struct {
	id           string
	dealer       int
	phase        Phase
	players      *shared.Players
	player       RoundPlayer
	currentTrick *shared.Trick
	history      []TrickHistoryItem
	trump        *shared.Trump
	points       shared.TeamPoints
	finalPoints  shared.TeamPoints
	declarations shared.TeamDeclarations
	belaTeam     *shared.Team
	result       *ScoreResult
	rng          *rand.Rand
	hands        *[shared.NumberOfPlayers]shared.Hand
	log          *logrus.Entry
}

// Option customises a new round.
type Option func(*Round)

// WithRand sets the random source used for dealing.
func WithRand(rng *rand.Rand) Option {
	return func(r *Round) { r.rng = rng }
}

// WithHands deals the given hands instead of shuffling.
func WithHands(hands [shared.NumberOfPlayers]shared.Hand) Option {
	return func(r *Round) { r.hands = &hands }
}

// WithLogger sets the log entry the round logs through.
func WithLogger(entry *logrus.Entry) Option {
	return func(r *Round) { r.log = entry }
}

// NewRound seats the named players, deals and sorts their hands.
func NewRound(dealer int, names [shared.NumberOfPlayers]string, player RoundPlayer, opts ...Option) (*Round, error) {
	if !shared.ValidSeat(dealer) {
		return nil, fmt.Errorf("%w: dealer seat %d out of range", shared.ErrInvariantViolation, dealer)
	}
	if player == nil {
		return nil, fmt.Errorf("%w: round needs a player", shared.ErrInvariantViolation)
	}

	r := &Round{
		id:      uuid.NewString(),
		dealer:  dealer,
		phase:   TrumpCalling,
		players: shared.NewPlayers(names),
		player:  player,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.log == nil {
		r.log = logrus.NewEntry(logrus.StandardLogger())
	}
	r.log = r.log.WithField("round", r.id)
	if r.rng == nil {
		r.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	if err := r.deal(); err != nil {
		return nil, err
	}
	r.currentTrick = shared.NewTrick(r.firstLead())
	r.log.WithField("dealer", dealer).Info("Round dealt")
	return r, nil
}

func (r *Round) deal() error {
	if r.hands != nil {
		for seat, hand := range r.hands {
			r.players.Seats[seat].Hand = hand.Clone()
		}
	} else {
		if err := r.players.SetTurn(r.firstLead()); err != nil {
			return err
		}
		shared.NewDeck().ShuffleDeal(r.players, r.rng)
	}
	if err := r.checkCardsInPlay(); err != nil {
		return err
	}
	for _, p := range r.players.Seats {
		if len(p.Hand) != TricksPerRound {
			return fmt.Errorf("%w: seat %d holds %d cards after the deal", shared.ErrInvariantViolation, p.Index, len(p.Hand))
		}
	}
	r.players.SortHands()
	return nil
}

// checkCardsInPlay rebuilds the deck from the hands and expects all 32 cards.
func (r *Round) checkCardsInPlay() error {
	return shared.DeckFromHands(r.players).Validate()
}

// firstLead is the seat after the dealer. It calls first, declares first and leads the first trick.
func (r *Round) firstLead() int {
	return shared.NextSeat(r.dealer)
}

// Run plays the round to the end. It stops at the first error and leaves the
// round in the phase that failed.
func (r *Round) Run() error {
	if r.phase != TrumpCalling {
		return fmt.Errorf("%w: round %s already ran (phase %s)", shared.ErrInvariantViolation, r.id, r.phase)
	}
	steps := []struct {
		phase Phase
		run   func() error
	}{
		{TrumpCalling, r.callTrump},
		{Declaring, r.callDeclarations},
		{Playing, r.playTricks},
		{Scoring, r.score},
	}
	for _, step := range steps {
		r.setPhase(step.phase)
		if err := step.run(); err != nil {
			r.log.WithError(err).WithField("phase", r.phase).Error("Round aborted")
			return fmt.Errorf("round %s %s: %w", r.id, r.phase, err)
		}
	}
	r.setPhase(Done)
	return nil
}

func (r *Round) setPhase(p Phase) {
	if r.phase != p {
		r.log.WithField("phase", p).Info("Round phase changed")
	}
	r.phase = p
}

func (r *Round) notify(ev Event) {
	r.player.OnUpdate(r.publicView(), ev)
}

func (r *Round) ID() string { return r.id }

func (r *Round) Phase() Phase { return r.phase }

func (r *Round) Dealer() int { return r.dealer }

// Names returns the display names by seat.
func (r *Round) Names() [shared.NumberOfPlayers]string {
	var names [shared.NumberOfPlayers]string
	for i, p := range r.players.Seats {
		names[i] = p.Name
	}
	return names
}

// Trump returns the called trump once the call phase is over.
func (r *Round) Trump() (shared.Trump, bool) {
	if r.trump == nil {
		return shared.Trump{}, false
	}
	return *r.trump, true
}

// Points are the running trick points (plus the last trick bonus once scored).
func (r *Round) Points() shared.TeamPoints { return r.points }

// FinalPoints are only meaningful once the round is Done.
func (r *Round) FinalPoints() shared.TeamPoints { return r.finalPoints }

// Result returns the scoring result once the round is Done.
func (r *Round) Result() (ScoreResult, bool) {
	if r.result == nil {
		return ScoreResult{}, false
	}
	return r.result.Clone(), true
}

func (r *Round) History() []TrickHistoryItem {
	history := make([]TrickHistoryItem, len(r.history))
	for i, item := range r.history {
		history[i] = item.Clone()
	}
	return history
}

func (r *Round) Declarations() shared.TeamDeclarations {
	return r.declarations.Clone()
}

// BelaTeam returns the team that declared bela, if any.
func (r *Round) BelaTeam() (shared.Team, bool) {
	if r.belaTeam == nil {
		return 0, false
	}
	return *r.belaTeam, true
}
