package game

import (
	"io"
	"math/rand/v2"

	"bela-game/internal/shared"

	"github.com/sirupsen/logrus"
)

var testNames = [shared.NumberOfPlayers]string{"Beki", "Zvona", "Murko", "Zorka"}

// scriptedPlayer answers every question from a script and records what it saw.
type scriptedPlayer struct {
	calls      map[int]shared.Suit // seats that call instead of passing
	forced     shared.Suit
	declineDec map[int]bool
	declineBel bool
	play       func(v View, seat int, legal []shared.Card) shared.Card
	rng        *rand.Rand
	// scribble overwrites every card slice handed out to see whether it reaches the round.
	scribble bool

	events      []Event
	offered     []declarationOffer
	belaOffers  []int
	playedViews []viewSnapshot
	leakedHands int
}

type declarationOffer struct {
	Seat        int
	Declaration shared.Declaration
}

type viewSnapshot struct {
	seat     int
	hand     shared.Hand
	handSize int
}

func (p *scriptedPlayer) TryCallTrump(_ View, seat int) (*shared.Suit, error) {
	if suit, ok := p.calls[seat]; ok {
		return &suit, nil
	}
	return nil, nil
}

func (p *scriptedPlayer) MustCallTrump(_ View, _ int) (shared.Suit, error) {
	return p.forced, nil
}

func (p *scriptedPlayer) PlayCard(v View, seat int, legal []shared.Card) (shared.Card, error) {
	p.playedViews = append(p.playedViews, viewSnapshot{seat: seat, hand: v.Hand(), handSize: v.HandSize(seat)})
	if p.play != nil {
		return p.play(v, seat, legal), nil
	}
	if p.rng != nil {
		return legal[p.rng.IntN(len(legal))], nil
	}
	return legal[0], nil
}

func (p *scriptedPlayer) CallDeclaration(_ View, seat int, d shared.Declaration) (bool, error) {
	p.offered = append(p.offered, declarationOffer{Seat: seat, Declaration: d.Clone()})
	if p.scribble {
		d.Cards[0] = scribbled
	}
	return !p.declineDec[seat], nil
}

func (p *scriptedPlayer) WillDeclareBela(_ View, seat int) (bool, error) {
	p.belaOffers = append(p.belaOffers, seat)
	return !p.declineBel, nil
}

func (p *scriptedPlayer) OnUpdate(v View, ev Event) {
	if v.Hand() != nil || v.Seat() != -1 {
		p.leakedHands++
	}
	p.events = append(p.events, ev)
	if p.scribble {
		scribbleOver(v, ev)
	}
}

var scribbled = shared.NewCard(shared.Leaf, shared.VII)

func scribbleOver(v View, ev Event) {
	for _, item := range v.History() {
		item.Trick.Cards[0].Card = scribbled
	}
	for _, team := range []shared.Team{shared.TeamA, shared.TeamB} {
		for _, sd := range v.Declarations().For(team) {
			sd.Declaration.Cards[0] = scribbled
		}
	}
	switch ev := ev.(type) {
	case TrickDone:
		ev.Item.Trick.Cards[0].Card = scribbled
	case DeclarationsCalled:
		for _, sd := range ev.Declarations {
			sd.Declaration.Cards[0] = scribbled
		}
	case RoundScored:
		for _, team := range []*shared.Team{ev.Result.Stigl, ev.Result.Bela} {
			if team != nil {
				*team = team.Enemy()
			}
		}
	}
}

func (p *scriptedPlayer) eventsOf(t EventType) []Event {
	var out []Event
	for _, ev := range p.events {
		if ev.Type() == t {
			out = append(out, ev)
		}
	}
	return out
}

func quietLogger() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}

func c(s shared.Suit, r shared.Rank) shared.Card {
	return shared.NewCard(s, r)
}

// sweepHands lets seat 0 take every trick with Herz trump when everyone plays
// their first legal card: 152 trick points, a 100 point run and bela for team A.
func sweepHands() [shared.NumberOfPlayers]shared.Hand {
	const (
		L = shared.Leaf
		P = shared.Pumpkin
		H = shared.Herz
		A = shared.Acorn
	)
	return [shared.NumberOfPlayers]shared.Hand{
		{c(L, shared.Ace), c(P, shared.Ace), c(H, shared.IX), c(H, shared.X), c(H, shared.Jack), c(H, shared.Queen), c(H, shared.King), c(H, shared.Ace)},
		{c(L, shared.IX), c(L, shared.X), c(L, shared.Jack), c(P, shared.IX), c(P, shared.X), c(A, shared.IX), c(A, shared.X), c(A, shared.Jack)},
		{c(H, shared.VII), c(H, shared.VIII), c(L, shared.VII), c(L, shared.VIII), c(P, shared.VII), c(P, shared.VIII), c(A, shared.VII), c(A, shared.VIII)},
		{c(L, shared.Queen), c(L, shared.King), c(P, shared.Jack), c(P, shared.Queen), c(P, shared.King), c(A, shared.Queen), c(A, shared.King), c(A, shared.Ace)},
	}
}

func newTestRound(dealer int, p RoundPlayer, opts ...Option) (*Round, error) {
	return NewRound(dealer, testNames, p, append([]Option{WithLogger(quietLogger())}, opts...)...)
}
