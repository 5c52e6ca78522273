// Package registry holds the static reference list of municipal
// parking lots, grouped by dong. The list mirrors the city's published
// CSV exports and is the closed world for charger matching: a lot not
// in the registry can never appear in a match result.
package registry

import (
	"github.com/geonjuring/parking-system/internal/models"
)

// Registry is a read-only view over the dong-grouped lot list.
type Registry struct {
	groups []models.DongGroup
	byName map[string]models.LotReference
}

// New builds a registry over the given groups.
func New(groups []models.DongGroup) *Registry {
	r := &Registry{
		groups: groups,
		byName: make(map[string]models.LotReference),
	}
	for gi := range groups {
		for _, lot := range groups[gi].Lots {
			lot.DongName = groups[gi].Name
			r.byName[lot.Name] = lot
		}
	}
	return r
}

// Default returns the registry over the bundled Suncheon data.
func Default() *Registry {
	return New(suncheonLots)
}

// Groups returns the dong groups in declaration order.
func (r *Registry) Groups() []models.DongGroup {
	return r.groups
}

// DongNames returns all dong names in declaration order.
func (r *Registry) DongNames() []string {
	names := make([]string, 0, len(r.groups))
	for _, g := range r.groups {
		names = append(names, g.Name)
	}
	return names
}

// LotsIn returns the lots of one dong, with DongName filled in, or nil
// when the dong is unknown.
func (r *Registry) LotsIn(dongName string) []models.LotReference {
	for gi := range r.groups {
		if r.groups[gi].Name != dongName {
			continue
		}
		lots := make([]models.LotReference, len(r.groups[gi].Lots))
		copy(lots, r.groups[gi].Lots)
		for i := range lots {
			lots[i].DongName = dongName
		}
		return lots
	}
	return nil
}

// Lot looks a lot up by name.
func (r *Registry) Lot(name string) (models.LotReference, bool) {
	lot, ok := r.byName[name]
	return lot, ok
}

// LotCount returns the total number of lots.
func (r *Registry) LotCount() int {
	n := 0
	for _, g := range r.groups {
		n += len(g.Lots)
	}
	return n
}
