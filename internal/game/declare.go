package game

import (
	"fmt"

	"bela-game/internal/shared"

	"github.com/sirupsen/logrus"
)

// callDeclarations offers every detected meld to its owner. Only the team holding
// the single best accepted declaration keeps anything.
func (r *Round) callDeclarations() error {
	var accepted shared.TeamDeclarations
	var best *shared.SeatDeclaration

	seat := r.firstLead()
	for range shared.NumberOfPlayers {
		for _, d := range shared.DetectDeclarations(r.players.Seats[seat].Hand) {
			ok, err := r.player.CallDeclaration(r.viewFor(seat), seat, d.Clone())
			if err != nil {
				return fmt.Errorf("seat %d declaration: %w", seat, err)
			}
			if !ok {
				continue
			}
			accepted.Add(seat, d)
			if best == nil || d.BetterThan(best.Declaration) {
				best = &shared.SeatDeclaration{Declaration: d, Seat: seat}
			}
		}
		seat = shared.NextSeat(seat)
	}

	if best != nil {
		winner := shared.TeamOfSeat(best.Seat)
		accepted.Clear(winner.Enemy())
		r.log.WithFields(logrus.Fields{
			"team":   winner.String(),
			"points": accepted.Sum(winner),
		}).Info("Declarations won")
	}
	r.declarations = accepted

	for _, team := range []shared.Team{shared.TeamA, shared.TeamB} {
		if list := accepted.For(team); len(list) > 0 {
			r.notify(DeclarationsCalled{Declarations: shared.CloneSeatDeclarations(list)})
		}
	}
	return nil
}
