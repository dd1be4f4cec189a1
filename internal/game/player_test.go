package game

import (
	"testing"

	"github.com/spacepatrol/space_patrol/internal/world"
	"github.com/stretchr/testify/assert"
)

func world0() world.Weapon {
	w, _ := world.WeaponTemplate(world.WeaponLaser)
	return w
}

func TestNewPlayer(t *testing.T) {
	p := NewPlayer("Kirk")

	assert.Equal(t, "Kirk", p.Name)
	assert.Equal(t, 100, p.Health)
	assert.Equal(t, 100, p.MaxHealth)
	assert.Equal(t, 100, p.Fuel)
	assert.Equal(t, 100, p.MaxFuel)
	assert.Equal(t, 500, p.Money)
	assert.Equal(t, 1, p.Sector)
	assert.Equal(t, 0, p.ETA)
	assert.Equal(t, 0, p.Weapons.UsedSlots())
	assert.Equal(t, 0, p.Weapons.FindEmptySlot())
	assert.Empty(t, p.Weapons.Mounted())
}

func TestWeaponSlots(t *testing.T) {
	var ws WeaponSlots
	ws.Mount(1, world0())
	ws.Mount(3, world0())

	assert.Equal(t, 0, ws.FindEmptySlot())
	assert.Equal(t, 2, ws.UsedSlots())
	assert.Len(t, ws.Mounted(), 2)

	for i := range ws {
		ws.Mount(i, world0())
	}
	assert.Equal(t, -1, ws.FindEmptySlot())
}

func TestDamageFloorsAtZero(t *testing.T) {
	p := NewPlayer("")
	p.Health = 5
	p.TakeDamage(10)
	assert.Equal(t, 0, p.Health)
	assert.False(t, p.Alive())

	pr := NewPirate()
	pr.TakeDamage(70)
	assert.Equal(t, 0, pr.Health)
	pr.Rearm()
	assert.Equal(t, 50, pr.Health)
}

func TestNewPirate(t *testing.T) {
	pr := NewPirate()

	assert.Equal(t, 50, pr.Health)
	assert.Equal(t, 50, pr.MaxHealth)
	assert.Equal(t, StrategyAttack, pr.Strategy)
	for _, w := range pr.Weapons {
		assert.Equal(t, world.PirateLaser(), w)
	}
}

func TestStrategyString(t *testing.T) {
	assert.Equal(t, "Attack", StrategyAttack.String())
	assert.Equal(t, "Defense", StrategyDefense.String())
	assert.Equal(t, "Unknown", Strategy(7).String())
}

func TestNewGameDefaults(t *testing.T) {
	g := NewGame("", noPirates())

	assert.Equal(t, DefaultPlayerName, g.Player.Name)
	assert.Equal(t, welcomeMessage, g.Message)
	assert.True(t, g.CurrentSector().IsStarbase)

	v := g.View()
	assert.Len(t, v.Sectors, world.MaxSectors)
	v.Player.Money = 0
	assert.Equal(t, 500, g.Player.Money, "view must not alias the game")
}
