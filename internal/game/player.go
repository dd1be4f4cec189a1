package game

import "github.com/spacepatrol/space_patrol/internal/world"

const (
	MaxWeapons       = 5 // player weapon slots
	MaxPirateWeapons = 3

	startHealth       = 100
	startFuel         = 100
	startMoney        = 500
	pirateStartHealth = 50
)

// Strategy is a combat stance. Both sides pick from the same two.
type Strategy uint8

const (
	StrategyAttack Strategy = iota
	StrategyDefense
	StrategyCount // sentinel
)

var strategyNames = [StrategyCount]string{
	StrategyAttack:  "Attack",
	StrategyDefense: "Defense",
}

func (s Strategy) String() string {
	if s < StrategyCount {
		return strategyNames[s]
	}
	return "Unknown"
}

// WeaponSlot is one weapon mount. An unmounted slot holds a zero Weapon.
type WeaponSlot struct {
	Weapon  world.Weapon
	Mounted bool
}

// WeaponSlots is the player's fixed bank of weapon mounts.
type WeaponSlots [MaxWeapons]WeaponSlot

// FindEmptySlot returns the index of the first unmounted slot, or -1.
func (ws *WeaponSlots) FindEmptySlot() int {
	for i, slot := range ws {
		if !slot.Mounted {
			return i
		}
	}
	return -1
}

// Mount installs w in slot i. Mounting into an occupied slot replaces it.
func (ws *WeaponSlots) Mount(i int, w world.Weapon) {
	ws[i] = WeaponSlot{Weapon: w, Mounted: true}
}

// UsedSlots returns the number of mounted slots.
func (ws *WeaponSlots) UsedSlots() int {
	n := 0
	for _, slot := range ws {
		if slot.Mounted {
			n++
		}
	}
	return n
}

// Mounted returns the installed weapons in slot order.
func (ws *WeaponSlots) Mounted() []world.Weapon {
	var out []world.Weapon
	for _, slot := range ws {
		if slot.Mounted {
			out = append(out, slot.Weapon)
		}
	}
	return out
}

// Player is the patrol ship and its commander.
type Player struct {
	Name      string
	Health    int
	MaxHealth int
	Fuel      int
	MaxFuel   int
	Money     int
	Weapons   WeaponSlots
	Sector    int // 1..world.MaxSectors
	ETA       int // turns left on the last move; display only
}

// NewPlayer returns a fresh ship docked at the starbase with empty mounts.
func NewPlayer(name string) Player {
	return Player{
		Name:      name,
		Health:    startHealth,
		MaxHealth: startHealth,
		Fuel:      startFuel,
		MaxFuel:   startFuel,
		Money:     startMoney,
		Sector:    world.StarbaseSector,
	}
}

// Alive returns true while the hull holds.
func (p *Player) Alive() bool { return p.Health > 0 }

// TakeDamage lowers health by n, floored at zero.
func (p *Player) TakeDamage(n int) { p.Health = max(p.Health-n, 0) }

// Pirate is the reusable enemy template every encounter fights.
// Weapons and Strategy are carried but combat never reads them.
type Pirate struct {
	Health    int
	MaxHealth int
	Weapons   [MaxPirateWeapons]world.Weapon
	Strategy  Strategy
}

// NewPirate returns a pirate at full health with three lasers.
func NewPirate() Pirate {
	p := Pirate{
		Health:    pirateStartHealth,
		MaxHealth: pirateStartHealth,
		Strategy:  StrategyAttack,
	}
	for i := range p.Weapons {
		p.Weapons[i] = world.PirateLaser()
	}
	return p
}

// Alive returns true while the pirate can still fight.
func (p *Pirate) Alive() bool { return p.Health > 0 }

// TakeDamage lowers health by n, floored at zero.
func (p *Pirate) TakeDamage(n int) { p.Health = max(p.Health-n, 0) }

// Rearm restores a destroyed pirate to full health for the next encounter.
func (p *Pirate) Rearm() { p.Health = p.MaxHealth }
