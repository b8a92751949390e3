package game

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// TeamCapacity is the standard roster size.
const TeamCapacity = 5

// Team is one side's ordered roster: up to capacity slots of pets (nil =
// empty), an append-only fainted history, a seeded RNG stream, and an
// optionally attached shop. Position 0 is frontmost.
type Team struct {
	ID   string
	Name string

	pets     []*Pet // len == capacity, nil slots allowed
	Fainted  []*Pet
	Sold     []*Pet
	capacity int

	rng    *RNG
	Shop   *Shop
	nextID int

	shopEngine *Engine
	shopTurn   int
}

// NewTeam builds a roster from a literal list of up to capacity optional
// pets (nil = empty slot). Fails with ErrRosterTooLarge on overflow.
func NewTeam(name string, pets []*Pet, capacity int) (*Team, error) {
	if capacity <= 0 {
		capacity = TeamCapacity
	}
	if len(pets) > capacity {
		return nil, fmt.Errorf("%w: %d pets for capacity %d", ErrRosterTooLarge, len(pets), capacity)
	}
	t := &Team{
		ID:       uuid.NewString(),
		Name:     name,
		pets:     make([]*Pet, capacity),
		capacity: capacity,
		rng:      NewEntropyRNG(),
	}
	for i, p := range pets {
		if p == nil {
			continue
		}
		t.adopt(p, i)
	}
	return t, nil
}

// SetSeed replaces the team's RNG stream with a deterministic one.
func (t *Team) SetSeed(seed int64) *Team {
	t.rng = NewRNG(seed)
	return t
}

func (t *Team) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Team %q:", t.Name)
	for i, p := range t.pets {
		if p == nil {
			fmt.Fprintf(&sb, " [%d: -]", i)
		} else {
			fmt.Fprintf(&sb, " [%d: %s]", i, p)
		}
	}
	return sb.String()
}

// Capacity returns the roster's slot count.
func (t *Team) Capacity() int {
	return t.capacity
}

// First returns the frontmost living pet, or nil.
func (t *Team) First() *Pet {
	for _, p := range t.pets {
		if p.Alive() {
			return p
		}
	}
	return nil
}

// At returns the pet occupying slot pos, or nil.
func (t *Team) At(pos int) *Pet {
	if pos < 0 || pos >= len(t.pets) {
		return nil
	}
	return t.pets[pos]
}

// Live returns all living pets front to back.
func (t *Team) Live() []*Pet {
	var out []*Pet
	for _, p := range t.pets {
		if p.Alive() {
			out = append(out, p)
		}
	}
	return out
}

// LiveCount returns the number of living pets.
func (t *Team) LiveCount() int {
	n := 0
	for _, p := range t.pets {
		if p.Alive() {
			n++
		}
	}
	return n
}

// byID finds a living or dying pet still occupying a slot.
func (t *Team) byID(id int) *Pet {
	for _, p := range t.pets {
		if p != nil && p.ID == id {
			return p
		}
	}
	return nil
}

// Add places a pet into slot pos. Fails with ErrInvalidPosition when out
// of range and ErrEmptySlot semantics do not apply (occupied slots shift
// only via explicit moves, so an occupied destination is an error here).
func (t *Team) Add(p *Pet, pos int) error {
	if pos < 0 || pos >= t.capacity {
		return fmt.Errorf("%w: slot %d", ErrInvalidPosition, pos)
	}
	if t.pets[pos] != nil {
		return fmt.Errorf("%w: slot %d occupied", ErrInvalidPosition, pos)
	}
	t.adopt(p, pos)
	return nil
}

// adopt assigns ownership of a pet to this team.
func (t *Team) adopt(p *Pet, pos int) {
	t.nextID++
	p.ID = t.nextID
	p.Pos = pos
	t.pets[pos] = p
}

// summonAt inserts a freshly summoned pet as close to pos as a free slot
// allows. Returns nil if the roster is full.
func (t *Team) summonAt(p *Pet, pos int) *Pet {
	if pos < 0 {
		pos = 0
	}
	if pos >= t.capacity {
		pos = t.capacity - 1
	}
	slot := -1
	if t.pets[pos] == nil {
		slot = pos
	} else {
		// Nearest free slot behind, then ahead.
		for i := pos + 1; i < t.capacity; i++ {
			if t.pets[i] == nil {
				slot = i
				break
			}
		}
		if slot == -1 {
			for i := pos - 1; i >= 0; i-- {
				if t.pets[i] == nil {
					slot = i
					break
				}
			}
		}
	}
	if slot == -1 {
		return nil
	}
	t.adopt(p, slot)
	return p
}

// removeAt retires the pet at pos from its slot without compaction; the
// gap persists until the next compact so later summons can fill it.
func (t *Team) removeAt(pos int) *Pet {
	p := t.At(pos)
	if p == nil {
		return nil
	}
	t.pets[pos] = nil
	return p
}

// compact shifts living pets into a contiguous prefix, preserving order,
// and drops dead pets into the fainted history. Run after every queue
// drain and shop operation.
func (t *Team) compact() {
	var live []*Pet
	for _, p := range t.pets {
		if p == nil {
			continue
		}
		if !p.Alive() {
			p.fainted = true
			t.Fainted = append(t.Fainted, p)
			continue
		}
		live = append(live, p)
	}
	t.pets = make([]*Pet, t.capacity)
	for i, p := range live {
		p.Pos = i
		t.pets[i] = p
	}
}

// nearestAhead returns the closest living pet in front of pos, or nil.
func (t *Team) nearestAhead(pos int) *Pet {
	for i := pos - 1; i >= 0; i-- {
		if t.pets[i].Alive() {
			return t.pets[i]
		}
	}
	return nil
}

// nearestBehind returns the closest living pet behind pos, or nil.
func (t *Team) nearestBehind(pos int) *Pet {
	for i := pos + 1; i < len(t.pets); i++ {
		if t.pets[i].Alive() {
			return t.pets[i]
		}
	}
	return nil
}

// pruneEffects runs per-pet effect cleanup across the roster.
func (t *Team) pruneEffects(endingPhase Phase) {
	for _, p := range t.pets {
		if p != nil {
			p.pruneEffects(endingPhase)
		}
	}
}
