package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/koisland/sapsim/internal/game"
)

const sampleTeam = `
name: Vanguard
seed: 42
pets:
  - name: Ant
    level: 2
  - name: Cricket
    item: Honey
  - name: Sloth
    attack: 10
    health: 12
`

func TestParseTeam(t *testing.T) {
	team, err := ParseTeam([]byte(sampleTeam), game.DefaultRegistry())
	require.NoError(t, err)
	assert.Equal(t, "Vanguard", team.Name)
	require.Equal(t, 3, team.LiveCount())

	ant := team.At(0)
	assert.Equal(t, "Ant", ant.Name())
	assert.Equal(t, 2, ant.Level)

	cricket := team.At(1)
	require.NotNil(t, cricket.Item)
	assert.Equal(t, "Honey", cricket.Item.Def.Name)

	sloth := team.At(2)
	assert.Equal(t, game.Stats{Attack: 10, Health: 12}, sloth.Stats)
}

func TestParseTeamUnknownEntities(t *testing.T) {
	_, err := ParseTeam([]byte("pets: [{name: Chimera}]"), game.DefaultRegistry())
	assert.ErrorIs(t, err, game.ErrUnknownEntity)

	_, err = ParseTeam([]byte("pets: [{name: Ant, item: Nectar}]"), game.DefaultRegistry())
	assert.ErrorIs(t, err, game.ErrUnknownEntity)
}

func TestParseTeamRejectsOversizedRoster(t *testing.T) {
	src := `
pets:
  - {name: Sloth}
  - {name: Sloth}
  - {name: Sloth}
  - {name: Sloth}
  - {name: Sloth}
  - {name: Sloth}
`
	_, err := ParseTeam([]byte(src), game.DefaultRegistry())
	assert.ErrorIs(t, err, game.ErrRosterTooLarge)
}
