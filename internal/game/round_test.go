package game

import (
	"math/rand/v2"
	"testing"

	"bela-game/internal/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRoundErrors(t *testing.T) {
	_, err := newTestRound(4, &scriptedPlayer{})
	assert.ErrorIs(t, err, shared.ErrInvariantViolation)

	_, err = newTestRound(0, nil)
	assert.ErrorIs(t, err, shared.ErrInvariantViolation)

	dup := sweepHands()
	dup[0][0] = dup[1][0]
	_, err = newTestRound(0, &scriptedPlayer{}, WithHands(dup))
	assert.ErrorIs(t, err, shared.ErrInvariantViolation)

	uneven := sweepHands()
	uneven[0] = append(uneven[0], uneven[1][0])
	uneven[1] = uneven[1][1:]
	_, err = newTestRound(0, &scriptedPlayer{}, WithHands(uneven))
	assert.ErrorIs(t, err, shared.ErrInvariantViolation)
}

func TestNewRoundDeals(t *testing.T) {
	r, err := newTestRound(2, &scriptedPlayer{}, WithRand(rand.New(rand.NewPCG(7, 7))))
	require.NoError(t, err)

	assert.NotEmpty(t, r.ID())
	assert.Equal(t, TrumpCalling, r.Phase())
	assert.Equal(t, 2, r.Dealer())
	assert.Equal(t, testNames, r.Names())
	for _, p := range r.players.Seats {
		assert.Len(t, p.Hand, TricksPerRound)
		assert.IsIncreasing(t, cardKeys(p.Hand))
	}
	_, ok := r.Trump()
	assert.False(t, ok)
	_, ok = r.Result()
	assert.False(t, ok)
}

func cardKeys(h shared.Hand) []int {
	keys := make([]int, len(h))
	for i, card := range h {
		keys[i] = int(card.Suit)*len(shared.Ranks) + int(card.Rank)
	}
	return keys
}

func TestRoundSweep(t *testing.T) {
	p := &scriptedPlayer{calls: map[int]shared.Suit{0: shared.Herz}}
	r, err := newTestRound(3, p, WithHands(sweepHands()))
	require.NoError(t, err)
	require.NoError(t, r.Run())

	assert.Equal(t, Done, r.Phase())
	trump, ok := r.Trump()
	require.True(t, ok)
	assert.Equal(t, shared.Trump{Seat: 0, Suit: shared.Herz}, trump)

	trumpEvents := p.eventsOf(EventTrumpCall)
	require.Len(t, trumpEvents, 1)
	assert.Equal(t, TrumpCalled{Seat: 0, Trump: &trump}, trumpEvents[0])

	// every meld is offered, seat by seat from the first lead
	offeredSeats := make([]int, 0, len(p.offered))
	for _, o := range p.offered {
		offeredSeats = append(offeredSeats, o.Seat)
	}
	assert.Equal(t, []int{0, 1, 1, 3, 3}, offeredSeats)

	decl := r.Declarations()
	require.Len(t, decl.For(shared.TeamA), 1)
	assert.Equal(t, 100, decl.Sum(shared.TeamA))
	assert.Empty(t, decl.For(shared.TeamB))
	assert.Len(t, p.eventsOf(EventDeclarations), 1)

	assert.Equal(t, []int{0}, p.belaOffers)
	assert.Equal(t, []Event{BelaDeclared{Seat: 0}}, p.eventsOf(EventBela))
	bela, ok := r.BelaTeam()
	require.True(t, ok)
	assert.Equal(t, shared.TeamA, bela)

	history := r.History()
	require.Len(t, history, TricksPerRound)
	trickPoints := make([]int, 0, len(history))
	for _, item := range history {
		assert.Equal(t, 0, item.Winner)
		assert.Equal(t, 0, item.Trick.Lead)
		trickPoints = append(trickPoints, item.Points)
	}
	assert.Equal(t, []int{14, 13, 28, 15, 34, 6, 18, 24}, trickPoints)

	assert.Len(t, p.eventsOf(EventCardPlayed), shared.DeckSize)
	assert.Len(t, p.eventsOf(EventTrickDone), TricksPerRound)
	assert.Len(t, p.eventsOf(EventRoundScored), 1)

	assert.Equal(t, shared.TeamPoints{162, 0}, r.Points())
	res, ok := r.Result()
	require.True(t, ok)
	assert.Equal(t, shared.TeamPoints{372, 0}, res.Final)
	assert.Equal(t, shared.TeamPoints{372, 0}, r.FinalPoints())
	assert.False(t, res.FailedCall)
	require.NotNil(t, res.Stigl)
	assert.Equal(t, shared.TeamA, *res.Stigl)
	require.NotNil(t, res.Bela)
	assert.Equal(t, shared.TeamA, *res.Bela)

	assert.Zero(t, p.leakedHands)
	assert.False(t, r.players.HaveCards())
}

func TestRoundForcedCallFails(t *testing.T) {
	p := &scriptedPlayer{forced: shared.Herz}
	r, err := newTestRound(3, p, WithHands(sweepHands()))
	require.NoError(t, err)
	require.NoError(t, r.Run())

	trump := shared.Trump{Seat: 3, Suit: shared.Herz}
	assert.Equal(t, []Event{
		TrumpCalled{Seat: 0},
		TrumpCalled{Seat: 1},
		TrumpCalled{Seat: 2},
		TrumpCalled{Seat: 3, Trump: &trump},
	}, p.eventsOf(EventTrumpCall))

	res, _ := r.Result()
	assert.Equal(t, shared.TeamB, res.CallerTeam)
	assert.True(t, res.FailedCall)
	assert.Equal(t, shared.TeamPoints{372, 0}, res.Final)
}

func TestRoundCallStopsAsking(t *testing.T) {
	p := &scriptedPlayer{calls: map[int]shared.Suit{1: shared.Acorn, 2: shared.Leaf}}
	r, err := newTestRound(3, p, WithHands(sweepHands()))
	require.NoError(t, err)
	require.NoError(t, r.Run())

	trump, _ := r.Trump()
	assert.Equal(t, shared.Trump{Seat: 1, Suit: shared.Acorn}, trump)
	assert.Len(t, p.eventsOf(EventTrumpCall), 2)
}

func TestRoundDeclinedDeclaration(t *testing.T) {
	p := &scriptedPlayer{calls: map[int]shared.Suit{0: shared.Herz}, declineDec: map[int]bool{0: true}}
	r, err := newTestRound(3, p, WithHands(sweepHands()))
	require.NoError(t, err)
	require.NoError(t, r.Run())

	decl := r.Declarations()
	assert.Empty(t, decl.For(shared.TeamA))
	assert.Len(t, decl.For(shared.TeamB), 4)
	assert.Equal(t, 80, decl.Sum(shared.TeamB))

	events := p.eventsOf(EventDeclarations)
	require.Len(t, events, 1)
	assert.Len(t, events[0].(DeclarationsCalled).Declarations, 4)

	res, _ := r.Result()
	assert.Equal(t, shared.TeamPoints{272, 80}, res.Final)
	assert.False(t, res.FailedCall)
}

func TestRoundDeclinedBela(t *testing.T) {
	p := &scriptedPlayer{calls: map[int]shared.Suit{0: shared.Herz}, declineBel: true}
	r, err := newTestRound(3, p, WithHands(sweepHands()))
	require.NoError(t, err)
	require.NoError(t, r.Run())

	// the King alone no longer qualifies once the Queen is gone
	assert.Equal(t, []int{0}, p.belaOffers)
	assert.Empty(t, p.eventsOf(EventBela))
	_, ok := r.BelaTeam()
	assert.False(t, ok)

	res, _ := r.Result()
	assert.Nil(t, res.Bela)
	assert.Equal(t, shared.TeamPoints{352, 0}, res.Final)
}

func TestRoundIllegalCard(t *testing.T) {
	tests := []struct {
		name string
		card shared.Card
	}{
		{name: "held but not legal", card: c(shared.Acorn, shared.Jack)},
		{name: "not held", card: c(shared.Herz, shared.Ace)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &scriptedPlayer{
				calls: map[int]shared.Suit{0: shared.Herz},
				play: func(_ View, seat int, legal []shared.Card) shared.Card {
					if seat == 1 {
						return tt.card
					}
					return legal[0]
				},
			}
			r, err := newTestRound(3, p, WithHands(sweepHands()))
			require.NoError(t, err)

			err = r.Run()
			assert.ErrorIs(t, err, shared.ErrIllegalMove)
			assert.Equal(t, Playing, r.Phase())
			assert.Len(t, r.players.Seats[1].Hand, TricksPerRound)
			assert.Len(t, p.eventsOf(EventCardPlayed), 1)
			_, ok := r.Result()
			assert.False(t, ok)
		})
	}
}

func TestRoundInvalidTrump(t *testing.T) {
	p := &scriptedPlayer{calls: map[int]shared.Suit{0: shared.Suit(9)}}
	r, err := newTestRound(3, p, WithHands(sweepHands()))
	require.NoError(t, err)

	assert.ErrorIs(t, r.Run(), shared.ErrIllegalMove)
	assert.Equal(t, TrumpCalling, r.Phase())
	_, ok := r.Trump()
	assert.False(t, ok)
}

func TestRoundRunsOnce(t *testing.T) {
	p := &scriptedPlayer{calls: map[int]shared.Suit{0: shared.Herz}}
	r, err := newTestRound(3, p, WithHands(sweepHands()))
	require.NoError(t, err)
	require.NoError(t, r.Run())

	assert.ErrorIs(t, r.Run(), shared.ErrInvariantViolation)
}

func TestRoundViewIsPrivateCopy(t *testing.T) {
	p := &scriptedPlayer{calls: map[int]shared.Suit{0: shared.Herz}}
	p.play = func(v View, seat int, legal []shared.Card) shared.Card {
		card := legal[0]
		hand := v.Hand()
		hand[0] = c(shared.Leaf, shared.VII)
		legal[0] = c(shared.Leaf, shared.VII)
		return card
	}
	r, err := newTestRound(3, p, WithHands(sweepHands()))
	require.NoError(t, err)
	require.NoError(t, r.Run())

	require.Len(t, p.playedViews, shared.DeckSize)
	for _, snap := range p.playedViews {
		assert.Len(t, snap.hand, snap.handSize)
	}
	res, _ := r.Result()
	assert.Equal(t, shared.TeamPoints{372, 0}, res.Final)
}

func TestRoundRecordsSurviveCollaboratorWrites(t *testing.T) {
	clean, err := newTestRound(3, &scriptedPlayer{calls: map[int]shared.Suit{0: shared.Herz}}, WithHands(sweepHands()))
	require.NoError(t, err)
	require.NoError(t, clean.Run())

	p := &scriptedPlayer{calls: map[int]shared.Suit{0: shared.Herz}, scribble: true}
	r, err := newTestRound(3, p, WithHands(sweepHands()))
	require.NoError(t, err)
	require.NoError(t, r.Run())

	require.NotEmpty(t, r.Declarations().For(shared.TeamA))
	assert.Equal(t, clean.History(), r.History())
	assert.Equal(t, clean.Declarations(), r.Declarations())
	assert.NotEqual(t, scribbled, r.History()[0].Trick.Cards[0].Card)

	cleanRes, _ := clean.Result()
	res, _ := r.Result()
	assert.Equal(t, cleanRes, res)
	belaTeam, ok := r.BelaTeam()
	require.True(t, ok)
	assert.Equal(t, shared.TeamA, belaTeam)
}

func TestRandomRoundsConserveCards(t *testing.T) {
	for seed := range uint64(200) {
		rng := rand.New(rand.NewPCG(seed, seed+1))
		caller := rng.IntN(shared.NumberOfPlayers)
		p := &scriptedPlayer{
			calls:  map[int]shared.Suit{caller: shared.Suits[rng.IntN(len(shared.Suits))]},
			forced: shared.Acorn,
			rng:    rng,
		}
		dealer := int(seed % shared.NumberOfPlayers)
		r, err := newTestRound(dealer, p, WithRand(rand.New(rand.NewPCG(seed, 99))))
		require.NoError(t, err)
		require.NoError(t, r.Run(), "seed %d", seed)

		history := r.History()
		require.Len(t, history, TricksPerRound)
		played := map[shared.Card]bool{}
		lead := shared.NextSeat(dealer)
		for _, item := range history {
			require.Len(t, item.Trick.Cards, shared.NumberOfPlayers)
			assert.Equal(t, lead, item.Trick.Lead, "seed %d", seed)
			for _, pc := range item.Trick.Cards {
				assert.False(t, played[pc.Card], "seed %d: %s played twice", seed, pc.Card)
				played[pc.Card] = true
			}
			lead = item.Winner
		}
		assert.Len(t, played, shared.DeckSize)
		assert.False(t, r.players.HaveCards())
		assert.Equal(t, 162, r.Points().Total())

		decl := r.Declarations()
		assert.False(t, len(decl.For(shared.TeamA)) > 0 && len(decl.For(shared.TeamB)) > 0, "seed %d", seed)

		res, ok := r.Result()
		require.True(t, ok)
		want := 162 + decl.Sum(shared.TeamA) + decl.Sum(shared.TeamB)
		if res.Bela != nil {
			want += BelaBonus
		}
		if res.Stigl != nil {
			want += StiglBonus
		}
		assert.Equal(t, want, res.Final.Total(), "seed %d", seed)
		if res.FailedCall {
			assert.Zero(t, res.Final.Get(res.CallerTeam))
		} else {
			assert.Greater(t, res.Final.Get(res.CallerTeam), res.Final.Get(res.CallerTeam.Enemy()))
		}
		assert.Zero(t, p.leakedHands)
	}
}
