package player

import (
	"bufio"
	"fmt"
	"io"
	"math/rand/v2"
	"slices"
	"strconv"
	"strings"

	"bela-game/internal/game"
	"bela-game/internal/shared"

	"github.com/charmbracelet/lipgloss"
)

// hiddenCards is how many cards stay face down while a human decides on trump.
const hiddenCards = 2

var (
	clrSubtle = lipgloss.Color("#8b949e")
	clrGold   = lipgloss.Color("#e3b341")
	clrRed    = lipgloss.Color("#f85149")
	clrTitle  = lipgloss.Color("#58a6ff")

	suitColorMap = [len(shared.Suits)]lipgloss.Color{
		lipgloss.Color("#50FA7B"), // Leaf
		lipgloss.Color("#FFB86C"), // Pumpkin
		lipgloss.Color("#FF6B6B"), // Herz
		lipgloss.Color("#C9A66B"), // Acorn
	}

	titleStyle  = lipgloss.NewStyle().Foreground(clrTitle).Bold(true)
	bannerStyle = lipgloss.NewStyle().Foreground(clrGold).Bold(true)
	subtleStyle = lipgloss.NewStyle().Foreground(clrSubtle)
	errorStyle  = lipgloss.NewStyle().Foreground(clrRed)
)

func renderCard(c shared.Card) string {
	return lipgloss.NewStyle().Foreground(suitColorMap[c.Suit]).Render(c.String())
}

// ConsolePlayer prompts a human on a terminal for one seat and lets a bot play
// the others.
type ConsolePlayer struct {
	in    *bufio.Reader
	out   io.Writer
	human int
	bot   game.RoundPlayer
	rng   *rand.Rand

	// Pause waits for enter after every event and clears the screen between tricks.
	Pause bool
}

// NewConsolePlayer reads from in and writes to out for the human seat.
func NewConsolePlayer(in io.Reader, out io.Writer, human int, bot game.RoundPlayer) *ConsolePlayer {
	return &ConsolePlayer{
		in:    bufio.NewReader(in),
		out:   out,
		human: human,
		bot:   bot,
		rng:   rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
}

func (c *ConsolePlayer) isHuman(seat int) bool {
	return seat == c.human
}

func (c *ConsolePlayer) println(a ...any) {
	fmt.Fprintln(c.out, a...)
}

func (c *ConsolePlayer) printf(format string, a ...any) {
	fmt.Fprintf(c.out, format, a...)
}

func (c *ConsolePlayer) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (c *ConsolePlayer) confirm(question string) (bool, error) {
	c.printf("%s (y/n)\n", question)
	answer, err := c.readLine()
	if err != nil {
		return false, err
	}
	return strings.EqualFold(answer, "y"), nil
}

func (c *ConsolePlayer) wait() error {
	if !c.Pause {
		return nil
	}
	_, err := c.readLine()
	return err
}

func (c *ConsolePlayer) clear() {
	if c.Pause {
		c.printf("\x1B[2J\x1B[1;1H")
	}
}

func (c *ConsolePlayer) printCards(cards []shared.Card) {
	for i, card := range cards {
		c.printf("%d. %s\n", i+1, renderCard(card))
	}
}

func (c *ConsolePlayer) printPoints(v game.View) {
	decl := v.Declarations()
	points := v.Points()
	line := fmt.Sprintf("TEAM A: %d    TEAM B: %d",
		points.Get(shared.TeamA)+decl.Sum(shared.TeamA),
		points.Get(shared.TeamB)+decl.Sum(shared.TeamB))
	if trump, ok := v.Trump(); ok {
		line += fmt.Sprintf("      TRUMP: %s - (%s)", trump.Suit, v.PlayerName(trump.Seat))
	}
	c.println(bannerStyle.Render(line))
	c.println()
}

func (c *ConsolePlayer) TryCallTrump(v game.View, seat int) (*shared.Suit, error) {
	if !c.isHuman(seat) {
		return c.bot.TryCallTrump(v, seat)
	}
	hand := v.Hand()
	c.rng.Shuffle(len(hand), func(i, j int) { hand[i], hand[j] = hand[j], hand[i] })
	hidden, shown := hand[:hiddenCards], hand[hiddenCards:]
	shown.Sort()

	c.println(titleStyle.Render("Your cards (two are hidden):"))
	c.printCards(shown)
	for {
		c.println("Please choose a trump suit (Leaf, Pumpkin, Herz, Acorn), or type 'pass':")
		answer, err := c.readLine()
		if err != nil {
			return nil, err
		}
		var trump *shared.Suit
		switch strings.ToLower(answer) {
		case "pass", "dalje":
		default:
			suit, err := shared.ParseSuit(answer)
			if err != nil {
				c.println(errorStyle.Render("Invalid input. Please try again."))
				continue
			}
			trump = &suit
		}

		c.println(subtleStyle.Render("Your hidden cards were:"))
		for _, card := range hidden {
			c.println(renderCard(card))
		}
		return trump, c.wait()
	}
}

func (c *ConsolePlayer) MustCallTrump(v game.View, seat int) (shared.Suit, error) {
	if !c.isHuman(seat) {
		return c.bot.MustCallTrump(v, seat)
	}
	c.println(titleStyle.Render("Your cards are:"))
	c.printCards(v.Hand())
	for {
		c.println("You must choose a trump suit (Leaf, Pumpkin, Herz, Acorn):")
		answer, err := c.readLine()
		if err != nil {
			return 0, err
		}
		suit, err := shared.ParseSuit(answer)
		if err == nil {
			return suit, nil
		}
		c.println(errorStyle.Render("Invalid trump suit. Please try again."))
	}
}

func (c *ConsolePlayer) PlayCard(v game.View, seat int, legal []shared.Card) (shared.Card, error) {
	if !c.isHuman(seat) {
		return c.bot.PlayCard(v, seat, legal)
	}
	hand := v.Hand()
	c.println(titleStyle.Render("Your cards are:"))
	for i, card := range hand {
		marker := " "
		if slices.Contains(legal, card) {
			marker = "*"
		}
		c.printf("%d.%s %s\n", i+1, marker, renderCard(card))
	}
	for {
		c.println("Please select a card to play (choose a number for a card marked with '*'):")
		answer, err := c.readLine()
		if err != nil {
			return shared.Card{}, err
		}
		n, err := strconv.Atoi(answer)
		if err != nil || n < 1 || n > len(hand) {
			c.printf("Invalid input. Please enter a number between 1 and %d.\n", len(hand))
			continue
		}
		if card := hand[n-1]; slices.Contains(legal, card) {
			return card, nil
		}
		c.println(errorStyle.Render("You cannot play that card. Please select one of the available cards."))
	}
}

func (c *ConsolePlayer) CallDeclaration(v game.View, seat int, d shared.Declaration) (bool, error) {
	if !c.isHuman(seat) {
		return c.bot.CallDeclaration(v, seat, d)
	}
	c.printf("You have a declaration worth %d:\n", d.Points)
	c.printCards(d.Cards)
	return c.confirm("Do you want to declare it?")
}

func (c *ConsolePlayer) WillDeclareBela(v game.View, seat int) (bool, error) {
	if !c.isHuman(seat) {
		return c.bot.WillDeclareBela(v, seat)
	}
	return c.confirm("Do you want to declare bela?")
}

// OnUpdate renders every event. Input errors while pausing are ignored; the next
// prompt reports them.
func (c *ConsolePlayer) OnUpdate(v game.View, ev game.Event) {
	switch e := ev.(type) {
	case game.CardPlayed:
		c.printf("Player %s played %s\n", v.PlayerName(e.Seat), renderCard(e.Card))
		_ = c.wait()
	case game.TrumpCalled:
		call := "pass"
		if e.Trump != nil {
			call = e.Trump.Suit.String()
		}
		c.printf("Player %s calls %s\n", v.PlayerName(e.Seat), call)
		_ = c.wait()
		if e.Trump != nil {
			c.clear()
			c.printPoints(v)
		}
	case game.DeclarationsCalled:
		for _, sd := range e.Declarations {
			c.printf("%s declared %d:\n", v.PlayerName(sd.Seat), sd.Declaration.Points)
			c.printCards(sd.Declaration.Cards)
			c.println()
		}
		_ = c.wait()
		c.clear()
		c.printPoints(v)
	case game.BelaDeclared:
		c.println(bannerStyle.Render(v.PlayerName(e.Seat) + " called BELA!!!"))
		_ = c.wait()
	case game.TrickDone:
		c.printf("%s won trick for team %s with %d points\n",
			v.PlayerName(e.Item.Winner), e.Item.WinnerTeam, e.Item.Points)
		_ = c.wait()
		c.clear()
		c.printPoints(v)
	case game.RoundScored:
		c.println(titleStyle.Render("Round over"))
		if e.Result.FailedCall {
			c.printf("Team %s failed the call!\n", e.Result.CallerTeam)
		}
		if e.Result.Stigl != nil {
			c.printf("Team %s took every trick (stigl)!\n", *e.Result.Stigl)
		}
		c.println(bannerStyle.Render(fmt.Sprintf("FINAL  TEAM A: %d    TEAM B: %d",
			e.Result.Final.Get(shared.TeamA), e.Result.Final.Get(shared.TeamB))))
	}
	c.bot.OnUpdate(v, ev)
}
