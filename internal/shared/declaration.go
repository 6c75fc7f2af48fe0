package shared

import (
	"slices"
)

// Declaration is a meld: its point value and the exact cards forming it.
type Declaration struct {
	Points int    `json:"points"`
	Cards  []Card `json:"cards"`
}

// Clone returns a copy with its own card slice.
func (d Declaration) Clone() Declaration {
	d.Cards = slices.Clone(d.Cards)
	return d
}

// BetterThan orders declarations: more points wins, equal points go to the shorter one.
func (d Declaration) BetterThan(o Declaration) bool {
	if d.Points == o.Points {
		return len(d.Cards) < len(o.Cards)
	}
	return d.Points > o.Points
}

// runPoints values a run of consecutive ranks in one suit.
func runPoints(length int) int {
	switch {
	case length == 3:
		return 20
	case length == 4:
		return 50
	case length >= 5 && length <= 7:
		return 100
	case length == 8:
		return 1000
	default:
		return 0
	}
}

// fourOfAKindPoints values holding a rank in all four suits. VII and VIII are worth nothing.
func fourOfAKindPoints(r Rank) int {
	switch r {
	case Jack:
		return 200
	case IX:
		return 150
	case X, Queen, King, Ace:
		return 100
	default:
		return 0
	}
}

// DetectDeclarations scans a hand for runs (suit by suit) followed by
// four-of-a-kinds ordered by ascending value.
func DetectDeclarations(hand Hand) []Declaration {
	var out []Declaration
	for _, suit := range Suits {
		out = append(out, runsInSuit(hand, suit)...)
	}
	return append(out, fourOfAKinds(hand)...)
}

func runsInSuit(hand Hand, suit Suit) []Declaration {
	cards := hand.OfSuit(suit)
	slices.SortFunc(cards, Card.Compare)

	var out []Declaration
	for i := 0; i < len(cards); {
		j := i + 1
		for j < len(cards) && cards[j].Rank == cards[j-1].Rank+1 {
			j++
		}
		if points := runPoints(j - i); points > 0 {
			out = append(out, Declaration{Points: points, Cards: slices.Clone(cards[i:j])})
		}
		i = j
	}
	return out
}

func fourOfAKinds(hand Hand) []Declaration {
	var out []Declaration
	for _, rank := range Ranks {
		var cards []Card
		for _, c := range hand {
			if c.Rank == rank {
				cards = append(cards, c)
			}
		}
		points := fourOfAKindPoints(rank)
		if len(cards) != len(Suits) || points == 0 {
			continue
		}
		slices.SortFunc(cards, Card.Compare)
		out = append(out, Declaration{Points: points, Cards: cards})
	}
	slices.SortStableFunc(out, func(a, b Declaration) int { return a.Points - b.Points })
	return out
}

// SeatDeclaration is a declaration together with the seat that called it.
type SeatDeclaration struct {
	Declaration Declaration `json:"declaration"`
	Seat        int         `json:"seat"`
}

// TeamDeclarations holds accepted declarations per team.
type TeamDeclarations [NumberOfTeams][]SeatDeclaration

// Add records a declaration for the seat's team.
func (td *TeamDeclarations) Add(seat int, d Declaration) {
	team := TeamOfSeat(seat)
	td[team] = append(td[team], SeatDeclaration{Declaration: d, Seat: seat})
}

// Clear erases every declaration of the team.
func (td *TeamDeclarations) Clear(team Team) {
	td[team] = nil
}

func (td TeamDeclarations) For(team Team) []SeatDeclaration {
	return td[team]
}

// Sum totals the team's declaration points.
func (td TeamDeclarations) Sum(team Team) int {
	sum := 0
	for _, sd := range td[team] {
		sum += sd.Declaration.Points
	}
	return sum
}

// Clone returns a deep copy.
func (td TeamDeclarations) Clone() TeamDeclarations {
	var c TeamDeclarations
	for i := range td {
		c[i] = CloneSeatDeclarations(td[i])
	}
	return c
}

// CloneSeatDeclarations copies the list together with every declaration's cards.
func CloneSeatDeclarations(list []SeatDeclaration) []SeatDeclaration {
	if list == nil {
		return nil
	}
	c := make([]SeatDeclaration, len(list))
	for i, sd := range list {
		c[i] = SeatDeclaration{Declaration: sd.Declaration.Clone(), Seat: sd.Seat}
	}
	return c
}
