package game

import (
	"fmt"

	"github.com/koisland/sapsim/internal/log"
)

// Battle runs two rosters through the combat state machine until one side
// (or both) has no living pets, or the turn ceiling forces a draw. Rosters
// still in a shopping session cannot fight.
type Battle struct {
	Teams  [2]*Team
	Logger log.EventLogger

	cfg    GameConfig
	engine *Engine

	Turn    int
	Outcome FightOutcome
	over    bool
}

// NewBattle pairs two rosters for combat. Fails with ErrInvalidShopState
// if either team's shop is still open.
func NewBattle(a, b *Team, provider Provider, logger log.EventLogger, cfg GameConfig) (*Battle, error) {
	for _, t := range [2]*Team{a, b} {
		if t.Shop != nil && t.Shop.State == ShopOpen {
			return nil, fmt.Errorf("%w: team %q must close its shop before fighting", ErrInvalidShopState, t.Name)
		}
	}
	if logger == nil {
		logger = log.NewMemoryLogger()
	}
	return &Battle{
		Teams:  [2]*Team{a, b},
		Logger: logger,
		cfg:    cfg,
		engine: NewEngine(a, b, provider, logger, cfg),
	}, nil
}

// Run executes turns until the battle reaches a terminal state.
func (b *Battle) Run() (FightOutcome, error) {
	for !b.over {
		if err := b.RunTurn(); err != nil {
			return b.Outcome, err
		}
	}
	return b.Outcome, nil
}

// RunTurn advances one full combat turn through its phases. A turn may
// end the battle early; remaining phases are then skipped.
func (b *Battle) RunTurn() error {
	if b.over {
		return nil
	}
	b.Turn++
	b.Logger.Log(log.NewTurnEvent(b.Turn))

	// Turn start. Battle-start effects fire once, ahead of the first
	// turn's own triggers.
	b.setPhase(PhaseTurnStart)
	if b.Turn == 1 {
		b.engine.Enqueue(Event{Kind: log.EventBattleStart, Side: 0})
		b.engine.Enqueue(Event{Kind: log.EventBattleStart, Side: 1})
	}
	b.engine.Enqueue(Event{Kind: log.EventTurnStart, Side: 0})
	b.engine.Enqueue(Event{Kind: log.EventTurnStart, Side: 1})
	if done, err := b.endPhase(PhaseTurnStart); done || err != nil {
		return err
	}

	// Before attack.
	b.setPhase(PhaseBeforeAttack)
	if f0, f1 := b.Teams[0].First(), b.Teams[1].First(); f0 != nil && f1 != nil {
		b.engine.Enqueue(Event{Kind: log.EventBeforeAttack, Side: 0, Target: f0.Ref(0), PetName: f0.Name()})
		b.engine.Enqueue(Event{Kind: log.EventBeforeAttack, Side: 1, Target: f1.Ref(1), PetName: f1.Name()})
	}
	if done, err := b.endPhase(PhaseBeforeAttack); done || err != nil {
		return err
	}

	// Attack: both fronts strike simultaneously off a stat snapshot, so
	// neither side's counter-effects can dampen the incoming blow.
	b.setPhase(PhaseAttack)
	if f0, f1 := b.Teams[0].First(), b.Teams[1].First(); f0 != nil && f1 != nil {
		atk0, atk1 := f0.Stats.Attack, f1.Stats.Attack
		f1.Stats.Sub(Stats{Health: atk0}, b.cfg.MaxStat)
		f0.Stats.Sub(Stats{Health: atk1}, b.cfg.MaxStat)

		b.Logger.Log(log.NewAttackEvent(b.Turn, 0, f0.Name(), f1.Name(), atk0))
		b.Logger.Log(log.NewAttackEvent(b.Turn, 1, f1.Name(), f0.Name(), atk1))

		b.engine.Enqueue(Event{Kind: log.EventAttack, Side: 0, Src: f0.Ref(0), Target: f0.Ref(0), Amount: atk0, PetName: f0.Name()})
		b.engine.Enqueue(Event{Kind: log.EventAttack, Side: 1, Src: f1.Ref(1), Target: f1.Ref(1), Amount: atk1, PetName: f1.Name()})
		if atk0 > 0 {
			b.engine.Enqueue(Event{Kind: log.EventHurt, Side: 0, Src: f0.Ref(0), Target: f1.Ref(1), Amount: atk0, PetName: f1.Name()})
		}
		if atk1 > 0 {
			b.engine.Enqueue(Event{Kind: log.EventHurt, Side: 1, Src: f1.Ref(1), Target: f0.Ref(0), Amount: atk1, PetName: f0.Name()})
		}
		b.engine.checkFaints()
	}
	if done, err := b.endPhase(PhaseAttack); done || err != nil {
		return err
	}

	// Faint cleanup: anything left at zero health from attack-phase
	// cascades faints here.
	b.setPhase(PhaseFaintCleanup)
	b.engine.checkFaints()
	if done, err := b.endPhase(PhaseFaintCleanup); done || err != nil {
		return err
	}

	b.setPhase(PhaseAfterAttack)
	if done, err := b.endPhase(PhaseAfterAttack); done || err != nil {
		return err
	}

	// End of turn.
	b.setPhase(PhaseEndOfTurn)
	b.engine.Enqueue(Event{Kind: log.EventTurnEnd, Side: 0})
	b.engine.Enqueue(Event{Kind: log.EventTurnEnd, Side: 1})
	if done, err := b.endPhase(PhaseEndOfTurn); done || err != nil {
		return err
	}

	if b.Turn >= b.cfg.MaxTurns {
		b.finish(OutcomeDraw, fmt.Sprintf("Draw: turn ceiling (%d) reached", b.cfg.MaxTurns))
	}
	return nil
}

func (b *Battle) setPhase(p Phase) {
	b.engine.setPhase(b.Turn, p)
	b.Logger.Log(log.NewPhaseChangeEvent(b.Turn, p.String()))
}

// endPhase drains the queue, compacts both rosters, strips effects whose
// lifetime ended with this phase, and checks for a terminal state.
// Reports done=true once the battle is over.
func (b *Battle) endPhase(p Phase) (bool, error) {
	if err := b.engine.Drain(); err != nil {
		b.finish(OutcomeDraw, "Aborted: "+err.Error())
		return true, err
	}
	for _, t := range b.Teams {
		t.compact()
		t.pruneEffects(p)
	}
	return b.checkTerminal(), nil
}

// checkTerminal classifies the battle once a side is empty.
func (b *Battle) checkTerminal() bool {
	if b.over {
		return true
	}
	alive0, alive1 := b.Teams[0].LiveCount(), b.Teams[1].LiveCount()
	switch {
	case alive0 == 0 && alive1 == 0:
		b.finish(OutcomeDraw, "Draw: both teams wiped out")
	case alive1 == 0:
		b.finish(OutcomeWinA, fmt.Sprintf("Team %q (A) wins with %d pets standing", b.Teams[0].Name, alive0))
	case alive0 == 0:
		b.finish(OutcomeWinB, fmt.Sprintf("Team %q (B) wins with %d pets standing", b.Teams[1].Name, alive1))
	default:
		return false
	}
	return true
}

func (b *Battle) finish(outcome FightOutcome, result string) {
	if b.over {
		return
	}
	b.over = true
	b.Outcome = outcome
	b.Logger.Log(log.NewResultEvent(b.Turn, result))
}

// Over reports whether the battle has reached a terminal state.
func (b *Battle) Over() bool {
	return b.over
}
