package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/koisland/sapsim/internal/data"
	"github.com/koisland/sapsim/internal/game"
	"github.com/koisland/sapsim/internal/log"
	"github.com/koisland/sapsim/internal/sim"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	switch cmd {
	case "fight":
		runFight(os.Args[2:])
	case "sim":
		runSim(os.Args[2:])
	default:
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  sapsim fight --team-a FILE --team-b FILE [--seed N] [--pack FILE]")
	fmt.Println("  sapsim sim   --team-a FILE --team-b FILE [--battles N] [--seed N] [--procs P] [--pack FILE]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  fight   Run a single battle and print the event log")
	fmt.Println("  sim     Run a batch of battles and print the win-rate tally")
}

func runFight(args []string) {
	fs := flag.NewFlagSet("fight", flag.ExitOnError)
	teamA := fs.String("team-a", "", "path to side A team file")
	teamB := fs.String("team-b", "", "path to side B team file")
	seed := fs.Int64("seed", 0, "seed for both sides' RNG streams (0 = entropy)")
	pack := fs.String("pack", "", "optional YAML definition pack")
	fs.Parse(args)

	provider, err := buildProvider(*pack)
	if err != nil {
		fatal(err)
	}
	a, b, err := loadTeams(*teamA, *teamB, provider)
	if err != nil {
		fatal(err)
	}
	if *seed != 0 {
		a.SetSeed(*seed)
		b.SetSeed(*seed + 1)
	}

	logger := log.NewTextLogger(os.Stdout)
	battle, err := game.NewBattle(a, b, provider, logger, game.DefaultGameConfig())
	if err != nil {
		fatal(err)
	}
	outcome, err := battle.Run()
	if err != nil {
		fatal(err)
	}
	fmt.Printf("\nOutcome after %d turn(s): %s\n", battle.Turn, outcome)
}

func runSim(args []string) {
	fs := flag.NewFlagSet("sim", flag.ExitOnError)
	teamA := fs.String("team-a", "", "path to side A team file")
	teamB := fs.String("team-b", "", "path to side B team file")
	battles := fs.Int("battles", 1000, "number of battles to run")
	seed := fs.Int64("seed", 1, "base seed for the batch")
	procs := fs.Int("procs", 0, "max concurrent battles (0 = GOMAXPROCS)")
	pack := fs.String("pack", "", "optional YAML definition pack")
	fs.Parse(args)

	provider, err := buildProvider(*pack)
	if err != nil {
		fatal(err)
	}
	if *teamA == "" || *teamB == "" {
		fatal(fmt.Errorf("both --team-a and --team-b are required"))
	}
	rawA, err := os.ReadFile(*teamA)
	if err != nil {
		fatal(err)
	}
	rawB, err := os.ReadFile(*teamB)
	if err != nil {
		fatal(err)
	}

	runner := sim.NewRunner(provider, sim.Config{
		Battles: *battles,
		Seed:    *seed,
		Workers: *procs,
		Game:    game.DefaultGameConfig(),
	})
	result, err := runner.Run(context.Background(), sim.Matchup{
		TeamA: func() (*game.Team, error) { return data.ParseTeam(rawA, provider) },
		TeamB: func() (*game.Team, error) { return data.ParseTeam(rawB, provider) },
	})
	if err != nil {
		fatal(err)
	}
	fmt.Println(result)
}

func buildProvider(packPath string) (game.Provider, error) {
	base := game.DefaultRegistry()
	if packPath == "" {
		return base, nil
	}
	return data.LoadPackFile(packPath, base)
}

func loadTeams(pathA, pathB string, provider game.Provider) (*game.Team, *game.Team, error) {
	if pathA == "" || pathB == "" {
		return nil, nil, fmt.Errorf("both --team-a and --team-b are required")
	}
	a, err := data.LoadTeamFile(pathA, provider)
	if err != nil {
		return nil, nil, err
	}
	b, err := data.LoadTeamFile(pathB, provider)
	if err != nil {
		return nil, nil, err
	}
	return a, b, nil
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
