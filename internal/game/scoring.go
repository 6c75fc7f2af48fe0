package game

import (
	"bela-game/internal/shared"

	"github.com/sirupsen/logrus"
)

const (
	LastTrickBonus = 10
	BelaBonus      = 20
	StiglBonus     = 90
)

// ScoreInput is everything the final score depends on.
type ScoreInput struct {
	TrickPoints       shared.TeamPoints // Trick points, last trick bonus included
	DeclarationPoints shared.TeamPoints
	BelaTeam          *shared.Team
	TricksWon         [shared.NumberOfTeams]int
	CallerTeam        shared.Team
}

// ScoreResult is the outcome of scoring a round.
type ScoreResult struct {
	Final      shared.TeamPoints
	CallerTeam shared.Team
	FailedCall bool
	Stigl      *shared.Team
	Bela       *shared.Team
}

// Clone returns a copy that shares no pointers with res.
func (res ScoreResult) Clone() ScoreResult {
	if res.Stigl != nil {
		stigl := *res.Stigl
		res.Stigl = &stigl
	}
	if res.Bela != nil {
		bela := *res.Bela
		res.Bela = &bela
	}
	return res
}

// Score applies declarations, bela and stigl bonuses, then the failed call rule:
// unless the calling team ends strictly ahead, the opponents take every point.
func Score(in ScoreInput) ScoreResult {
	res := ScoreResult{CallerTeam: in.CallerTeam}
	if in.BelaTeam != nil {
		bela := *in.BelaTeam
		res.Bela = &bela
	}
	final := in.TrickPoints

	for _, team := range []shared.Team{shared.TeamA, shared.TeamB} {
		final.Add(team, in.DeclarationPoints.Get(team))
		if in.TricksWon[team] == TricksPerRound && in.TricksWon[team.Enemy()] == 0 {
			final.Add(team, StiglBonus)
			stigl := team
			res.Stigl = &stigl
		}
	}
	if in.BelaTeam != nil {
		final.Add(*in.BelaTeam, BelaBonus)
	}

	caller, defender := in.CallerTeam, in.CallerTeam.Enemy()
	if final.Get(caller) <= final.Get(defender) {
		total := final.Total()
		final = shared.TeamPoints{}
		final.Add(defender, total)
		res.FailedCall = true
	}
	res.Final = final
	return res
}

// score closes the round: last trick bonus, then Score.
func (r *Round) score() error {
	last := r.history[len(r.history)-1]
	r.points.Add(last.WinnerTeam, LastTrickBonus)

	in := ScoreInput{
		TrickPoints: r.points,
		BelaTeam:    r.belaTeam,
		CallerTeam:  r.trump.CallerTeam(),
	}
	for _, item := range r.history {
		in.TricksWon[item.WinnerTeam]++
	}
	for _, team := range []shared.Team{shared.TeamA, shared.TeamB} {
		in.DeclarationPoints.Add(team, r.declarations.Sum(team))
	}

	res := Score(in)
	r.finalPoints = res.Final
	r.result = &res
	r.log.WithFields(logrus.Fields{
		"team_a":      res.Final.Get(shared.TeamA),
		"team_b":      res.Final.Get(shared.TeamB),
		"failed_call": res.FailedCall,
	}).Info("Round scored")
	r.notify(RoundScored{Result: res.Clone()})
	return nil
}
