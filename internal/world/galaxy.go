package world

import (
	"slices"

	"github.com/mlange-42/ark/ecs"
)

// StarbaseName is the display name of the sector 1 starbase.
const StarbaseName = "Earth Starbase"

// SectorInfo is the identity component every sector entity carries.
type SectorInfo struct {
	Number int
}

// Starbase marks the sector that offers weapons and refuelling.
type Starbase struct {
	Name string
}

// PirateNest marks a sector where a scan finds pirates.
type PirateNest struct{}

// Sector is a read-only view of one sector entity.
type Sector struct {
	Number     int
	HasPirates bool
	IsStarbase bool
}

// Roller draws a uniform integer in [0, n).
type Roller interface {
	IntN(n int) int
}

// Galaxy owns the sector entities. Pirate nests are placed once, at creation,
// and never move.
type Galaxy struct {
	ECS *ecs.World

	sectors [MaxSectors]ecs.Entity
	info    *ecs.Map[SectorInfo]
	bases   *ecs.Map[Starbase]
	nests   *ecs.Map[PirateNest]
	pirates *ecs.Filter1[PirateNest]
}

// NewGalaxy creates the nine sectors. Sector 1 is the starbase; every other
// sector gets pirates on a coin flip.
func NewGalaxy(r Roller) *Galaxy {
	w := ecs.NewWorld(MaxSectors)

	g := &Galaxy{
		ECS:     w,
		info:    ecs.NewMap[SectorInfo](w),
		bases:   ecs.NewMap[Starbase](w),
		nests:   ecs.NewMap[PirateNest](w),
		pirates: ecs.NewFilter1[PirateNest](w),
	}

	builder := ecs.NewMap1[SectorInfo](w)
	for i := range g.sectors {
		n := i + 1
		e := builder.NewEntity(&SectorInfo{Number: n})
		g.sectors[i] = e

		if n == StarbaseSector {
			g.bases.Add(e, &Starbase{Name: StarbaseName})
			continue
		}
		if r.IntN(2) == 1 {
			g.nests.Add(e, &PirateNest{})
		}
	}
	return g
}

// Sector returns the view of sector n. The bool is false when n is off the grid.
func (g *Galaxy) Sector(n int) (Sector, bool) {
	if !InBounds(n) {
		return Sector{}, false
	}
	e := g.sectors[n-1]
	return Sector{
		Number:     g.info.Get(e).Number,
		HasPirates: g.nests.Has(e),
		IsStarbase: g.bases.Has(e),
	}, true
}

// Sectors returns all sectors in number order.
func (g *Galaxy) Sectors() []Sector {
	out := make([]Sector, 0, MaxSectors)
	for n := 1; n <= MaxSectors; n++ {
		s, _ := g.Sector(n)
		out = append(out, s)
	}
	return out
}

// PirateSectors returns the numbers of the sectors holding a pirate nest, ascending.
func (g *Galaxy) PirateSectors() []int {
	var out []int
	q := g.pirates.Query()
	for q.Next() {
		out = append(out, g.info.Get(q.Entity()).Number)
	}
	slices.Sort(out)
	return out
}

// StarbaseAt returns the starbase component of sector n, or nil if it has none.
func (g *Galaxy) StarbaseAt(n int) *Starbase {
	if !InBounds(n) {
		return nil
	}
	e := g.sectors[n-1]
	if !g.bases.Has(e) {
		return nil
	}
	return g.bases.Get(e)
}
