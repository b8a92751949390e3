package game

import (
	"fmt"

	"github.com/koisland/sapsim/internal/log"
)

// Event is the unit the engine dispatches on: an immutable record of
// something that happened, carrying non-owning references only.
type Event struct {
	Kind    log.EventType
	Side    int    // side that caused the event; resolves its effects first
	Src     PetRef // afflicting pet, may be zero
	Target  PetRef // affected pet, may be zero (global events)
	Amount  int    // damage dealt, exp granted, etc.
	PetName string // affected pet's name, captured at enqueue time
	Item    string // item/food name, if applicable
}

type petKey struct {
	side int
	id   int
}

// match is one effect found subscribed to a dispatched event.
type match struct {
	side  int
	owner *Pet
	eff   *Effect
}

// Engine is the central trigger queue: it accepts events, finds effects
// subscribed to them, resolves targets, executes actions, and enqueues
// any secondary events those actions produce. Processing is strictly
// FIFO; secondary events go to the back of the queue, so cascades resolve
// breadth-first.
type Engine struct {
	teams    [2]*Team // teams[1] is nil in shop context
	provider Provider
	logger   log.EventLogger
	cfg      GameConfig
	shopCfg  ShopConfig

	turn      int
	phase     Phase
	processed int
	queue     []Event
	fainted   map[petKey]bool
}

// NewEngine wires a trigger queue over one or two rosters. Pass nil for b
// in shop context.
func NewEngine(a, b *Team, provider Provider, logger log.EventLogger, cfg GameConfig) *Engine {
	if logger == nil {
		logger = log.NewMemoryLogger()
	}
	return &Engine{
		teams:    [2]*Team{a, b},
		provider: provider,
		logger:   logger,
		cfg:      cfg,
		shopCfg:  DefaultShopConfig(),
		fainted:  make(map[petKey]bool),
	}
}

// SetShopConfig overrides the economy constants used by gold and
// experience actions.
func (e *Engine) SetShopConfig(cfg ShopConfig) {
	e.shopCfg = cfg
}

// setPhase advances the engine's phase context and resets the per-phase
// cascade budget.
func (e *Engine) setPhase(turn int, phase Phase) {
	e.turn = turn
	e.phase = phase
	e.processed = 0
}

// Enqueue appends an event to the back of the queue.
func (e *Engine) Enqueue(ev Event) {
	e.queue = append(e.queue, ev)
}

// Drain processes the queue to exhaustion. Exceeding the per-phase
// cascade ceiling aborts with ErrCascadeLimit; the partial event log
// remains on the logger for diagnosis.
func (e *Engine) Drain() error {
	for len(e.queue) > 0 {
		ev := e.queue[0]
		e.queue = e.queue[1:]

		e.processed++
		if e.processed > e.cfg.CascadeLimit {
			return fmt.Errorf("%w: %d events processed in %s phase", ErrCascadeLimit, e.processed, e.phase)
		}

		e.dispatch(ev)
	}
	return nil
}

// dispatch resolves a single dequeued event: log it, collect subscribed
// effects in side-then-position order, retire fainting/sold pets, and
// execute each matching effect.
func (e *Engine) dispatch(ev Event) {
	e.logDispatched(ev)

	matches := e.collect(ev)

	// Faint and Sell retire the pet from its slot before effects run, so
	// summon actions can reuse the freed position. The gap persists until
	// the next compaction.
	switch ev.Kind {
	case log.EventFaint:
		if team := e.teams[ev.Target.Side]; team != nil {
			if p := team.byID(ev.Target.ID); p != nil {
				team.removeAt(p.Pos)
				p.fainted = true
				team.Fainted = append(team.Fainted, p)
			}
		}
	case log.EventSell:
		if team := e.teams[ev.Target.Side]; team != nil {
			if p := team.byID(ev.Target.ID); p != nil {
				team.removeAt(p.Pos)
				team.Sold = append(team.Sold, p)
			}
		}
	}

	for _, m := range matches {
		e.runEffect(m.side, m.owner, m.eff, ev)
	}
}

// collect gathers all effects subscribed to the event, ordered by (a) the
// causing side before the opposing side, then (b) ascending position
// within a side. Held-item effects are scanned after the pet's own.
func (e *Engine) collect(ev Event) []match {
	var matches []match
	order := [2]int{ev.Side, 1 - ev.Side}
	for _, side := range order {
		team := e.teams[side]
		if team == nil {
			continue
		}
		for _, p := range team.pets {
			if p == nil {
				continue
			}
			// A fainting or sold pet still reacts to its own retirement.
			ownEvent := ev.Target.Side == side && ev.Target.ID == p.ID
			if !p.Alive() && !(ownEvent && ev.Kind == log.EventFaint) {
				continue
			}
			for i := range p.Effects {
				eff := &p.Effects[i]
				if e.matches(eff, side, p, ev) {
					matches = append(matches, match{side: side, owner: p, eff: eff})
				}
			}
			if p.Item != nil && p.Item.effect.Trigger != log.EventNone {
				eff := &p.Item.effect
				if e.matches(eff, side, p, ev) {
					matches = append(matches, match{side: side, owner: p, eff: eff})
				}
			}
		}
		// Shop-context: pets still in store slots react to commerce
		// events only; turn triggers stay with the roster.
		if team.Shop != nil && e.teams[1] == nil && isShopEvent(ev.Kind) {
			for _, slot := range team.Shop.PetSlots {
				if slot.Pet == nil {
					continue
				}
				for i := range slot.Pet.Effects {
					eff := &slot.Pet.Effects[i]
					if eff.Trigger == ev.Kind && eff.Scope == ScopeNone && !eff.Exhausted() {
						matches = append(matches, match{side: side, owner: slot.Pet, eff: eff})
					}
				}
			}
		}
	}
	return matches
}

func isShopEvent(kind log.EventType) bool {
	switch kind {
	case log.EventBuyPet, log.EventBuyFood, log.EventAteFood, log.EventSell, log.EventRoll:
		return true
	}
	return false
}

// matches checks trigger kind, remaining uses, and scope.
func (e *Engine) matches(eff *Effect, ownerSide int, owner *Pet, ev Event) bool {
	if eff.Trigger != ev.Kind || eff.Exhausted() {
		return false
	}
	switch eff.Scope {
	case ScopeNone:
		// Global events are emitted once per side; each pet reacts only
		// to its own side's copy.
		return ev.Target.Valid() || ev.Side == ownerSide
	case ScopeSelf:
		return ev.Target.Side == ownerSide && ev.Target.ID == owner.ID
	case ScopeFriend:
		return ev.Target.Valid() && ev.Target.Side == ownerSide && ev.Target.ID != owner.ID
	case ScopeAhead:
		if !ev.Target.Valid() || ev.Target.Side != ownerSide || ev.Target.Pos >= owner.Pos {
			return false
		}
		// Directly ahead: no occupied slot strictly between.
		team := e.teams[ownerSide]
		for i := ev.Target.Pos + 1; i < owner.Pos; i++ {
			if team.pets[i] != nil {
				return false
			}
		}
		return true
	case ScopeEnemy:
		return ev.Target.Valid() && ev.Target.Side == 1-ownerSide
	}
	return false
}

// runEffect resolves the effect's selector and executes its action
// against each target in selector order, then consumes a use.
func (e *Engine) runEffect(side int, owner *Pet, eff *Effect, ev Event) {
	if eff.Exhausted() {
		return
	}
	targets := e.resolveTargets(side, owner, eff.Selector, ev)
	e.executeAction(side, owner, eff, targets, ev)
	eff.consumeUse()
	e.checkFaints()
}

// target pairs a resolved pet with its side.
type target struct {
	side int
	pet  *Pet
}

// resolveTargets maps a selector onto current roster state. An empty
// result is not an error; the action simply executes against nothing.
// Random selectors consume the owning side's RNG stream.
func (e *Engine) resolveTargets(side int, owner *Pet, sel Selector, ev Event) []target {
	friends := e.teams[side]
	var enemies *Team
	if e.teams[1-side] != nil {
		enemies = e.teams[1-side]
	}

	livingFriends := func() []target {
		var out []target
		for _, p := range friends.Live() {
			if p.ID != owner.ID {
				out = append(out, target{side, p})
			}
		}
		return out
	}
	livingEnemies := func() []target {
		var out []target
		if enemies == nil {
			return out
		}
		for _, p := range enemies.Live() {
			out = append(out, target{1 - side, p})
		}
		return out
	}

	switch sel.Kind {
	case SelectSelf:
		return []target{{side, owner}}
	case SelectAhead:
		if p := friends.nearestAhead(owner.Pos); p != nil {
			return []target{{side, p}}
		}
	case SelectBehind:
		if p := friends.nearestBehind(owner.Pos); p != nil {
			return []target{{side, p}}
		}
	case SelectAllFriends:
		return livingFriends()
	case SelectAllEnemies:
		return livingEnemies()
	case SelectRandomFriends:
		return pickRandom(livingFriends(), sel.N, friends.rng)
	case SelectRandomEnemies:
		return pickRandom(livingEnemies(), sel.N, friends.rng)
	case SelectFriendAt:
		if p := friends.At(sel.Pos); p.Alive() {
			return []target{{side, p}}
		}
	case SelectEnemyAt:
		if enemies != nil {
			if p := enemies.At(sel.Pos); p.Alive() {
				return []target{{1 - side, p}}
			}
		}
	case SelectLowestHealthEnemy:
		return pickExtreme(livingEnemies(), func(a, b *Pet) bool { return a.Stats.Health < b.Stats.Health })
	case SelectHighestHealthFriend:
		return pickExtreme(livingFriends(), func(a, b *Pet) bool { return a.Stats.Health > b.Stats.Health })
	case SelectHighestAttackEnemy:
		return pickExtreme(livingEnemies(), func(a, b *Pet) bool { return a.Stats.Attack > b.Stats.Attack })
	case SelectTriggerTarget:
		if ev.Target.Valid() {
			if team := e.teams[ev.Target.Side]; team != nil {
				if p := team.byID(ev.Target.ID); p != nil {
					return []target{{ev.Target.Side, p}}
				}
			}
		}
	}
	return nil
}

// pickRandom draws n targets without replacement, in shuffled order.
func pickRandom(candidates []target, n int, rng *RNG) []target {
	if n <= 0 {
		n = 1
	}
	if len(candidates) == 0 {
		return nil
	}
	shuffled := make([]target, len(candidates))
	copy(shuffled, candidates)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if n > len(shuffled) {
		n = len(shuffled)
	}
	return shuffled[:n]
}

// pickExtreme returns the single best target by the given ordering,
// frontmost winning ties.
func pickExtreme(candidates []target, better func(a, b *Pet) bool) []target {
	if len(candidates) == 0 {
		return nil
	}
	best := candidates[0]
	for _, c := range candidates[1:] {
		if better(c.pet, best.pet) {
			best = c
		}
	}
	return []target{best}
}

// executeAction applies the effect's action to each resolved target.
// Dead or removed targets are skipped per target, never propagated as
// failures: battles must always resolve to a terminal state.
func (e *Engine) executeAction(side int, owner *Pet, eff *Effect, targets []target, ev Event) {
	act := eff.Action
	phase := e.phase.String()

	for _, tgt := range targets {
		p := tgt.pet
		switch act.Kind {
		case ActionDamage:
			if !p.Alive() {
				continue
			}
			before := p.Stats.Health
			p.Stats.Sub(Stats{Health: act.Amount}, e.cfg.MaxStat)
			dealt := before - p.Stats.Health
			if dealt > 0 {
				e.Enqueue(Event{
					Kind:    log.EventHurt,
					Side:    side,
					Src:     owner.Ref(side),
					Target:  p.Ref(tgt.side),
					Amount:  dealt,
					PetName: p.Name(),
				})
			}

		case ActionAddStats:
			if !p.Alive() {
				continue
			}
			p.Stats.Add(act.Stats, e.cfg.MaxStat)
			e.logger.Log(log.NewStatChangeEvent(e.turn, phase, tgt.side, p.Name(), p.Stats.Attack, p.Stats.Health, eff.Name))

		case ActionRemoveStats:
			if !p.Alive() {
				continue
			}
			p.Stats.Sub(act.Stats, e.cfg.MaxStat)
			e.logger.Log(log.NewStatChangeEvent(e.turn, phase, tgt.side, p.Name(), p.Stats.Attack, p.Stats.Health, eff.Name))

		case ActionSetStats:
			if !p.Alive() {
				continue
			}
			p.Stats.Set(act.Stats, e.cfg.MaxStat)
			e.logger.Log(log.NewStatChangeEvent(e.turn, phase, tgt.side, p.Name(), p.Stats.Attack, p.Stats.Health, eff.Name))

		case ActionSwapStats:
			if !p.Alive() {
				continue
			}
			p.Stats.Attack, p.Stats.Health = p.Stats.Health, p.Stats.Attack
			e.logger.Log(log.NewStatSwapEvent(e.turn, phase, tgt.side, p.Name(), p.Stats.Attack, p.Stats.Health, eff.Name))

		case ActionSummon:
			e.executeSummon(side, owner, act, tgt)

		case ActionGainItem:
			if !p.Alive() {
				continue
			}
			food, err := e.provider.Food(act.ItemName)
			if err != nil {
				continue
			}
			food.effect.addedPhase = e.phase
			p.Item = food
			e.logger.Log(log.NewItemGivenEvent(e.turn, phase, tgt.side, p.Name(), act.ItemName))

		case ActionGainExp:
			if !p.Alive() {
				continue
			}
			if p.GainExp(act.Amount, e.shopCfg.MergeBonus, e.cfg.MaxStat) {
				e.Enqueue(Event{
					Kind:    log.EventLevelUp,
					Side:    tgt.side,
					Target:  p.Ref(tgt.side),
					Amount:  p.Level,
					PetName: p.Name(),
				})
			}

		case ActionGainGold:
			team := e.teams[side]
			if team == nil || team.Shop == nil || team.Shop.State != ShopOpen {
				continue
			}
			team.Shop.Gold += act.Amount
			e.logger.Log(log.NewGoldChangeEvent(e.turn, phase, side, act.Amount, team.Shop.Gold, eff.Name))
		}
	}
}

// executeSummon places a pet near the target's position on the target's
// side. Summoning into a full roster silently does nothing.
func (e *Engine) executeSummon(side int, owner *Pet, act Action, tgt target) {
	team := e.teams[tgt.side]
	if team == nil {
		return
	}
	count := act.SummonCount
	if count <= 0 {
		count = 1
	}
	for i := 0; i < count; i++ {
		summoned, err := e.provider.Pet(act.SummonName, 1)
		if err != nil {
			return
		}
		if act.SummonStats != nil {
			summoned.Stats.Set(*act.SummonStats, e.cfg.MaxStat)
		}
		placed := team.summonAt(summoned, tgt.pet.Pos)
		if placed == nil {
			return
		}
		e.Enqueue(Event{
			Kind:    log.EventSummon,
			Side:    tgt.side,
			Src:     owner.Ref(side),
			Target:  placed.Ref(tgt.side),
			PetName: placed.Name(),
		})
	}
}

// checkFaints enqueues a single Faint event for any pet left at zero
// defense. Idempotent: a pet cannot faint twice.
func (e *Engine) checkFaints() {
	for side, team := range e.teams {
		if team == nil {
			continue
		}
		for _, p := range team.pets {
			if p == nil || p.fainted || p.Stats.Health > 0 {
				continue
			}
			key := petKey{side, p.ID}
			if e.fainted[key] {
				continue
			}
			e.fainted[key] = true
			e.Enqueue(Event{
				Kind:    log.EventFaint,
				Side:    side,
				Target:  p.Ref(side),
				PetName: p.Name(),
			})
		}
	}
}

// logDispatched records a dequeued event. Action-result records are
// written at execution time instead; phase and attack records are written
// by the orchestrator.
func (e *Engine) logDispatched(ev Event) {
	phase := e.phase.String()
	switch ev.Kind {
	case log.EventHurt:
		e.logger.Log(log.NewHurtEvent(e.turn, phase, ev.Target.Side, ev.PetName, ev.Amount, e.healthOf(ev.Target)))
	case log.EventFaint:
		e.logger.Log(log.NewFaintEvent(e.turn, phase, ev.Target.Side, ev.PetName, ev.Target.Pos))
	case log.EventSummon:
		if p := e.petAt(ev.Target); p != nil {
			e.logger.Log(log.NewSummonEvent(e.turn, phase, ev.Target.Side, ev.PetName, p.Stats.Attack, p.Stats.Health, p.Pos))
		}
	case log.EventLevelUp:
		e.logger.Log(log.NewLevelUpEvent(e.turn, phase, ev.Target.Side, ev.PetName, ev.Amount))
	case log.EventBuyPet:
		e.logger.Log(log.NewBuyPetEvent(e.turn, ev.Side, ev.PetName, ev.Amount, ev.Target.Pos))
	case log.EventBuyFood:
		e.logger.Log(log.NewBuyFoodEvent(e.turn, ev.Side, ev.Item, ev.Amount, ev.PetName))
	case log.EventAteFood:
		e.logger.Log(log.NewAteFoodEvent(e.turn, ev.Side, ev.PetName, ev.Item))
	case log.EventSell:
		e.logger.Log(log.NewSellEvent(e.turn, ev.Side, ev.PetName, ev.Amount))
	case log.EventRoll:
		e.logger.Log(log.NewRollEvent(e.turn, ev.Side, ev.Amount))
	}
}

func (e *Engine) petAt(ref PetRef) *Pet {
	team := e.teams[ref.Side]
	if team == nil {
		return nil
	}
	return team.byID(ref.ID)
}

func (e *Engine) healthOf(ref PetRef) int {
	if p := e.petAt(ref); p != nil {
		return p.Stats.Health
	}
	return 0
}
