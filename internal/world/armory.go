package world

// Weapon is a piece of ship armament. A weapon is copied into a slot on
// purchase and never changes afterwards.
type Weapon struct {
	Name   string
	Damage int
	Cost   int
}

// WeaponKind identifies an entry in the starbase catalog.
type WeaponKind uint8

const (
	WeaponLaser WeaponKind = iota
	WeaponPlasmaCannon
	WeaponPhotonTorpedo
	WeaponKindCount // sentinel
)

// weaponTable holds the catalog stats, in menu order.
var weaponTable = [WeaponKindCount]Weapon{
	WeaponLaser:         {"Laser", 10, 100},
	WeaponPlasmaCannon:  {"Plasma Cannon", 20, 200},
	WeaponPhotonTorpedo: {"Photon Torpedo", 30, 300},
}

// WeaponTemplate returns the catalog stats for a weapon kind.
func WeaponTemplate(k WeaponKind) (Weapon, bool) {
	if k < WeaponKindCount {
		return weaponTable[k], true
	}
	return Weapon{}, false
}

// Catalog returns the starbase's weapons in menu order.
func Catalog() []Weapon {
	out := make([]Weapon, WeaponKindCount)
	copy(out, weaponTable[:])
	return out
}

// CatalogEntry returns the weapon for a 1-based menu selection.
func CatalogEntry(selection int) (Weapon, bool) {
	if selection < 1 || selection > int(WeaponKindCount) {
		return Weapon{}, false
	}
	return WeaponTemplate(WeaponKind(selection - 1))
}

// PirateLaser is the stock weapon fitted to pirate ships. Pirates don't pay for it.
func PirateLaser() Weapon {
	w := weaponTable[WeaponLaser]
	w.Cost = 0
	return w
}
