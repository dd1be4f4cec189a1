package game

import (
	"fmt"

	"github.com/spacepatrol/space_patrol/internal/world"
)

// fuelPrice is the money charged per unit of fuel.
const fuelPrice = 2

// RefuelCost returns the price of filling the tank.
func RefuelCost(p *Player) int {
	return (p.MaxFuel - p.Fuel) * fuelPrice
}

// PurchaseWeapon buys the catalog weapon at the 1-based selection and mounts
// it in the first empty slot. The player's location is not checked; the
// starbase menu is the only way in.
func (g *Game) PurchaseWeapon(selection int) error {
	p := &g.Player

	w, ok := world.CatalogEntry(selection)
	if !ok {
		g.Log.Post("Invalid choice!", MsgWarning, CueError)
		return fmt.Errorf("purchase selection %d: %w", selection, ErrInvalidInput)
	}
	if p.Money < w.Cost {
		g.Log.Post("Not enough money to purchase this weapon!", MsgWarning, CueError)
		return fmt.Errorf("purchase %s costs %d, have %d: %w", w.Name, w.Cost, p.Money, ErrInsufficientMoney)
	}

	slot := p.Weapons.FindEmptySlot()
	if slot < 0 {
		g.Log.Post("No empty slots available to purchase this weapon!", MsgWarning, CueError)
		return fmt.Errorf("purchase %s: %w", w.Name, ErrNoCapacity)
	}

	p.Weapons.Mount(slot, w)
	p.Money -= w.Cost
	g.Log.Post(fmt.Sprintf("Purchased %s for %d money.", w.Name, w.Cost), MsgDiscovery, CuePurchase)
	return nil
}

// Refuel fills the tank completely or not at all.
func (g *Game) Refuel() error {
	p := &g.Player

	cost := RefuelCost(p)
	if p.Money < cost {
		g.Log.Post("Not enough money to refuel the ship!", MsgWarning, CueError)
		return fmt.Errorf("refuel costs %d, have %d: %w", cost, p.Money, ErrInsufficientMoney)
	}

	p.Fuel = p.MaxFuel
	p.Money -= cost
	g.Log.Post(fmt.Sprintf("Refueled the ship for %d money.", cost), MsgInfo, CueRefuel)
	return nil
}
