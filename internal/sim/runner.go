// Package sim runs batches of independent battles concurrently and
// aggregates their outcomes.
package sim

import (
	"context"
	"fmt"
	"runtime"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/koisland/sapsim/internal/game"
)

// Matchup describes the two rosters to pit against each other. The
// builders are called once per battle so every battle owns fresh state;
// nothing is shared between concurrent battles.
type Matchup struct {
	TeamA func() (*game.Team, error)
	TeamB func() (*game.Team, error)
}

// Config holds batch parameters.
type Config struct {
	Battles int
	Seed    int64 // base seed; battle i derives its streams from it
	Workers int   // 0 = GOMAXPROCS
	Game    game.GameConfig
}

// Result aggregates a finished batch.
type Result struct {
	ID      string // batch run identifier
	Battles int
	WinsA   int
	WinsB   int
	Draws   int
	Turns   int // summed over all battles
}

// WinRateA returns side A's share of decided and drawn battles.
func (r *Result) WinRateA() float64 {
	if r.Battles == 0 {
		return 0
	}
	return float64(r.WinsA) / float64(r.Battles)
}

func (r *Result) String() string {
	return fmt.Sprintf("run %s: %d battles, A %d / B %d / draw %d (A win rate %.1f%%)",
		r.ID, r.Battles, r.WinsA, r.WinsB, r.Draws, 100*r.WinRateA())
}

// Runner executes batches against a fixed entity provider.
type Runner struct {
	provider game.Provider
	cfg      Config
}

// NewRunner builds a batch runner.
func NewRunner(provider game.Provider, cfg Config) *Runner {
	if cfg.Battles < 1 {
		cfg.Battles = 1
	}
	if cfg.Workers < 1 {
		cfg.Workers = runtime.GOMAXPROCS(0)
	}
	if cfg.Game == (game.GameConfig{}) {
		cfg.Game = game.DefaultGameConfig()
	}
	return &Runner{provider: provider, cfg: cfg}
}

// Run executes the batch. Battles run across a bounded worker group;
// cancellation is observed at battle boundaries, never mid-battle, so a
// canceled run still reports a consistent partial-free result or an error.
func (r *Runner) Run(ctx context.Context, m Matchup) (*Result, error) {
	type outcome struct {
		result game.FightOutcome
		turns  int
	}
	outcomes := make([]outcome, r.cfg.Battles)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.Workers)
	for i := 0; i < r.cfg.Battles; i++ {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, turns, err := r.runOne(m, int64(i))
			if err != nil {
				return fmt.Errorf("battle %d: %w", i, err)
			}
			outcomes[i] = outcome{res, turns}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &Result{ID: uuid.NewString(), Battles: r.cfg.Battles}
	for _, o := range outcomes {
		result.Turns += o.turns
		switch o.result {
		case game.OutcomeWinA:
			result.WinsA++
		case game.OutcomeWinB:
			result.WinsB++
		default:
			result.Draws++
		}
	}
	return result, nil
}

// runOne plays a single battle with streams derived from the base seed.
func (r *Runner) runOne(m Matchup, index int64) (game.FightOutcome, int, error) {
	a, err := m.TeamA()
	if err != nil {
		return game.OutcomeNone, 0, err
	}
	b, err := m.TeamB()
	if err != nil {
		return game.OutcomeNone, 0, err
	}
	a.SetSeed(r.cfg.Seed + 2*index)
	b.SetSeed(r.cfg.Seed + 2*index + 1)

	battle, err := game.NewBattle(a, b, r.provider, nil, r.cfg.Game)
	if err != nil {
		return game.OutcomeNone, 0, err
	}
	outcome, err := battle.Run()
	if err != nil {
		return game.OutcomeNone, battle.Turn, err
	}
	return outcome, battle.Turn, nil
}
