package game

import "bela-game/internal/shared"

// View is the read-only picture of a round handed to the RoundPlayer. Values are
// copies; nothing returned aliases the round's state. A view only exposes the
// hand of the seat it was created for.
type View interface {
	RoundID() string
	Phase() Phase
	Dealer() int
	// Seat is the seat being asked, or -1 for notifications.
	Seat() int
	// Hand is the asking seat's own hand, nil for notifications.
	Hand() shared.Hand
	PlayerName(seat int) string
	HandSize(seat int) int
	Trump() (shared.Trump, bool)
	CurrentTrick() shared.Trick
	History() []TrickHistoryItem
	Points() shared.TeamPoints
	FinalPoints() shared.TeamPoints
	Declarations() shared.TeamDeclarations
	BelaTeam() (shared.Team, bool)
}

type seatView struct {
	r    *Round
	seat int
}

func (r *Round) viewFor(seat int) View {
	return seatView{r: r, seat: seat}
}

func (r *Round) publicView() View {
	return seatView{r: r, seat: -1}
}

func (v seatView) RoundID() string { return v.r.id }

func (v seatView) Phase() Phase { return v.r.phase }

func (v seatView) Dealer() int { return v.r.dealer }

func (v seatView) Seat() int { return v.seat }

func (v seatView) Hand() shared.Hand {
	if !shared.ValidSeat(v.seat) {
		return nil
	}
	return v.r.players.Seats[v.seat].Hand.Clone()
}

func (v seatView) PlayerName(seat int) string {
	if !shared.ValidSeat(seat) {
		return ""
	}
	return v.r.players.Seats[seat].Name
}

func (v seatView) HandSize(seat int) int {
	if !shared.ValidSeat(seat) {
		return 0
	}
	return len(v.r.players.Seats[seat].Hand)
}

func (v seatView) Trump() (shared.Trump, bool) { return v.r.Trump() }

func (v seatView) CurrentTrick() shared.Trick { return v.r.currentTrick.Clone() }

func (v seatView) History() []TrickHistoryItem { return v.r.History() }

func (v seatView) Points() shared.TeamPoints { return v.r.points }

func (v seatView) FinalPoints() shared.TeamPoints { return v.r.finalPoints }

func (v seatView) Declarations() shared.TeamDeclarations { return v.r.Declarations() }

func (v seatView) BelaTeam() (shared.Team, bool) { return v.r.BelaTeam() }
