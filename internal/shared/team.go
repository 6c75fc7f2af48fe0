package shared

// Team represents one of the two teams in the round.
type Team int

const (
	TeamA Team = iota // players 0 and 2
	TeamB             // players 1 and 3
)

// NumberOfTeams is the number of partnerships at the table.
const NumberOfTeams = 2

// TeamOfSeat maps a seat to its team. Partners sit opposite each other.
func TeamOfSeat(seat int) Team {
	return Team(seat % NumberOfTeams)
}

func (t Team) Index() int {
	return int(t)
}

// Enemy returns the opposing team.
func (t Team) Enemy() Team {
	if t == TeamA {
		return TeamB
	}
	return TeamA
}

func (t Team) String() string {
	if t == TeamA {
		return "A"
	}
	return "B"
}

func (t Team) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// TeamPoints accumulates points per team.
type TeamPoints [NumberOfTeams]int

// Add adds points to the team's total.
func (p *TeamPoints) Add(team Team, points int) {
	p[team.Index()] += points
}

func (p TeamPoints) Get(team Team) int {
	return p[team.Index()]
}

// Total is the sum of both teams' points.
func (p TeamPoints) Total() int {
	return p[TeamA] + p[TeamB]
}
