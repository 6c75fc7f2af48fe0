package player

import (
	"math/rand/v2"

	"bela-game/internal/game"
	"bela-game/internal/shared"
)

// callChance is the probability that a bot calls trump when it may still pass.
const callChance = 0.2

// RandomPlayer makes random decisions for every seat. It always declares what it holds.
type RandomPlayer struct {
	rng *rand.Rand
}

// NewRandomPlayer creates a bot. A nil rng gets a freshly seeded one.
func NewRandomPlayer(rng *rand.Rand) *RandomPlayer {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &RandomPlayer{rng: rng}
}

func (b *RandomPlayer) randomSuit() shared.Suit {
	return shared.Suits[b.rng.IntN(len(shared.Suits))]
}

func (b *RandomPlayer) TryCallTrump(_ game.View, _ int) (*shared.Suit, error) {
	if b.rng.Float64() >= callChance {
		return nil, nil
	}
	suit := b.randomSuit()
	return &suit, nil
}

func (b *RandomPlayer) MustCallTrump(_ game.View, _ int) (shared.Suit, error) {
	return b.randomSuit(), nil
}

func (b *RandomPlayer) PlayCard(_ game.View, _ int, legal []shared.Card) (shared.Card, error) {
	return legal[b.rng.IntN(len(legal))], nil
}

func (b *RandomPlayer) CallDeclaration(_ game.View, _ int, _ shared.Declaration) (bool, error) {
	return true, nil
}

func (b *RandomPlayer) WillDeclareBela(_ game.View, _ int) (bool, error) {
	return true, nil
}

func (b *RandomPlayer) OnUpdate(_ game.View, _ game.Event) {}
