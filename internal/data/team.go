package data

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/koisland/sapsim/internal/game"
)

// TeamFile is the YAML structure of a roster file.
type TeamFile struct {
	Name string         `yaml:"name"`
	Seed int64          `yaml:"seed"`
	Pets []TeamPetEntry `yaml:"pets"`
}

// TeamPetEntry is one roster slot, front to back. Attack and health
// override the definition's stats when positive.
type TeamPetEntry struct {
	Name   string `yaml:"name"`
	Level  int    `yaml:"level"`
	Attack int    `yaml:"attack"`
	Health int    `yaml:"health"`
	Item   string `yaml:"item"`
}

// ParseTeam builds a roster from YAML bytes using the given provider.
func ParseTeam(raw []byte, provider game.Provider) (*game.Team, error) {
	var tf TeamFile
	if err := yaml.Unmarshal(raw, &tf); err != nil {
		return nil, fmt.Errorf("parse team YAML: %w", err)
	}

	var pets []*game.Pet
	for _, entry := range tf.Pets {
		level := entry.Level
		if level < 1 {
			level = 1
		}
		pet, err := provider.Pet(entry.Name, level)
		if err != nil {
			return nil, err
		}
		if entry.Attack > 0 || entry.Health > 0 {
			stats := pet.Stats
			if entry.Attack > 0 {
				stats.Attack = entry.Attack
			}
			if entry.Health > 0 {
				stats.Health = entry.Health
			}
			pet.Stats.Set(stats, game.MaxStat)
		}
		if entry.Item != "" {
			item, err := provider.Food(entry.Item)
			if err != nil {
				return nil, err
			}
			pet.Item = item
		}
		pets = append(pets, pet)
	}

	team, err := game.NewTeam(tf.Name, pets, game.TeamCapacity)
	if err != nil {
		return nil, err
	}
	if tf.Seed != 0 {
		team.SetSeed(tf.Seed)
	}
	return team, nil
}

// LoadTeamFile builds a roster from a YAML file on disk.
func LoadTeamFile(path string, provider game.Provider) (*game.Team, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseTeam(raw, provider)
}
