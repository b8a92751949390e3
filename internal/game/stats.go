package game

import "fmt"

// MaxStat is the default ceiling for attack and health. Configurable per
// battle/shop session through GameConfig.
const MaxStat = 50

// Stats is the attack/health pair carried by every pet. All arithmetic
// saturates: neither value ever drops below zero or exceeds the ceiling.
type Stats struct {
	Attack int
	Health int
}

func (s Stats) String() string {
	return fmt.Sprintf("%d/%d", s.Attack, s.Health)
}

// Add adds other to s, clamping both values to [0, ceil].
func (s *Stats) Add(other Stats, ceil int) {
	s.Attack = clamp(s.Attack+other.Attack, 0, ceil)
	s.Health = clamp(s.Health+other.Health, 0, ceil)
}

// Sub subtracts other from s, clamping both values to [0, ceil].
func (s *Stats) Sub(other Stats, ceil int) {
	s.Attack = clamp(s.Attack-other.Attack, 0, ceil)
	s.Health = clamp(s.Health-other.Health, 0, ceil)
}

// Set overwrites s with value, clamping to [0, ceil].
func (s *Stats) Set(value Stats, ceil int) {
	s.Attack = clamp(value.Attack, 0, ceil)
	s.Health = clamp(value.Health, 0, ceil)
}

// Swap exchanges s and other in place.
func (s *Stats) Swap(other *Stats) {
	*s, *other = *other, *s
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
