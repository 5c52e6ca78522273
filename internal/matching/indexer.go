package matching

import (
	"github.com/geonjuring/parking-system/internal/models"
)

// LotIndex is the matching-ready view of the registry: one IndexedLot
// per registry entry, keyed by lot name, preserving registry iteration
// order so best-of selection is deterministic.
type LotIndex struct {
	ordered  []models.IndexedLot
	position map[string]int
}

// ReferenceIndexer precomputes IndexedLots from the registry.
type ReferenceIndexer struct {
	normalizer AddressNormalizer
}

// NewReferenceIndexer creates an indexer over the given normalizer.
func NewReferenceIndexer(normalizer AddressNormalizer) *ReferenceIndexer {
	return &ReferenceIndexer{normalizer: normalizer}
}

// Build produces the lot index for one matching run. The registry's
// declared dong name is authoritative and is never re-derived from the
// address; only the charger side derives its dong from text. When two
// registry entries share a lot name, the later one overwrites the
// earlier in place (last write wins, keeping the first entry's
// position). That collision handling is deliberate and tested.
func (ix *ReferenceIndexer) Build(groups []models.DongGroup) *LotIndex {
	index := &LotIndex{position: make(map[string]int)}
	for _, group := range groups {
		for _, lot := range group.Lots {
			normalized := ix.normalizer.Normalize(lot.Address)
			entry := models.IndexedLot{
				Name:      lot.Name,
				DongName:  group.Name,
				Address:   normalized,
				LotNumber: ix.normalizer.ExtractLotNumber(normalized),
			}
			if pos, ok := index.position[lot.Name]; ok {
				index.ordered[pos] = entry
				continue
			}
			index.position[lot.Name] = len(index.ordered)
			index.ordered = append(index.ordered, entry)
		}
	}
	return index
}

// Lots returns the indexed lots in registry order.
func (ix *LotIndex) Lots() []models.IndexedLot {
	return ix.ordered
}

// Lookup returns the indexed lot with the given name.
func (ix *LotIndex) Lookup(name string) (models.IndexedLot, bool) {
	pos, ok := ix.position[name]
	if !ok {
		return models.IndexedLot{}, false
	}
	return ix.ordered[pos], true
}

// Len reports the number of indexed lots.
func (ix *LotIndex) Len() int {
	return len(ix.ordered)
}
