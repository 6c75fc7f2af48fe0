package main

import (
	"fmt"
	"os"

	"bela-game/internal/config"
	"bela-game/internal/game"
	"bela-game/internal/player"
	"bela-game/internal/shared"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfg config.Config

	root := &cobra.Command{
		Use:   "bela",
		Short: "Play a round of Bela against three bots",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			cfg, err = config.Load()
			if err != nil {
				return err
			}
			cfg.SetupLogging()
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return play(cmd, cfg)
		},
		SilenceUsage: true,
	}

	var rounds int
	simulate := &cobra.Command{
		Use:   "simulate",
		Short: "Let four bots play and print the team totals",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if rounds < 1 {
				return fmt.Errorf("rounds must be positive, got %d", rounds)
			}
			return runSimulation(cmd, cfg, rounds)
		},
	}
	simulate.Flags().IntVarP(&rounds, "rounds", "n", 1, "number of rounds to play")
	root.AddCommand(simulate)

	return root
}

func play(cmd *cobra.Command, cfg config.Config) error {
	// keep the round log off the prompts
	logrus.SetOutput(cmd.ErrOrStderr())
	if !cfg.LogLevelSet {
		logrus.SetLevel(logrus.WarnLevel)
	}

	console := player.NewConsolePlayer(cmd.InOrStdin(), cmd.OutOrStdout(), cfg.HumanSeat, player.NewRandomPlayer(nil))
	console.Pause = true

	// the seat before the human deals, so the human calls and leads first
	dealer := (cfg.HumanSeat + shared.NumberOfPlayers - 1) % shared.NumberOfPlayers
	round, err := game.NewRound(dealer, cfg.PlayerNames, console)
	if err != nil {
		return err
	}
	return round.Run()
}

func runSimulation(cmd *cobra.Command, cfg config.Config, rounds int) error {
	bot := player.NewRandomPlayer(nil)
	var total shared.TeamPoints
	failed := 0
	dealer := 0
	for range rounds {
		round, err := game.NewRound(dealer, cfg.PlayerNames, bot)
		if err != nil {
			return err
		}
		if err := round.Run(); err != nil {
			return err
		}
		result, _ := round.Result()
		total.Add(shared.TeamA, result.Final.Get(shared.TeamA))
		total.Add(shared.TeamB, result.Final.Get(shared.TeamB))
		if result.FailedCall {
			failed++
		}
		dealer = shared.NextSeat(dealer)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Rounds: %d  Failed calls: %d\n", rounds, failed)
	fmt.Fprintf(out, "TEAM A: %d    TEAM B: %d\n", total.Get(shared.TeamA), total.Get(shared.TeamB))
	return nil
}
