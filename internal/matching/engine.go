package matching

import (
	"github.com/geonjuring/parking-system/internal/models"
)

// Engine drives the full resolution run: every charger against every
// indexed lot, arg-max-with-threshold selection, and aggregation of the
// winners. An Engine holds no state between runs and is safe to share
// across goroutines as long as each call gets its own input snapshot.
type Engine struct {
	normalizer AddressNormalizer
	scorer     *MatchScorer
	aggregator *ChargerAggregator
}

// NewEngine wires an engine from its parts.
func NewEngine(normalizer AddressNormalizer, scorer *MatchScorer, aggregator *ChargerAggregator) *Engine {
	return &Engine{
		normalizer: normalizer,
		scorer:     scorer,
		aggregator: aggregator,
	}
}

// NewDefaultEngine builds an engine with the standard normalizer,
// rule table, and aggregator.
func NewDefaultEngine() *Engine {
	return NewEngine(NewAddressNormalizer(), NewMatchScorer(), NewChargerAggregator())
}

// Match resolves each charger to at most one registry lot. Per charger
// the address is normalized and its dong and lot-number derived once;
// then every indexed lot is scored and the single best-scoring lot at
// or above the threshold is kept. Replacement requires strict score
// improvement, so among equal-scoring lots the first in registry order
// wins. Chargers with no qualifying lot are dropped silently; the
// result only ever contains names present in the index. The run is
// O(chargers x lots) with no early exit beyond per-pair rejection,
// since the contract is the best match, not a first match.
func (e *Engine) Match(chargers []models.ChargerRecord, index *LotIndex) models.MatchResult {
	result := make(models.MatchResult)
	lots := index.Lots()

	for _, record := range chargers {
		address := e.normalizer.Normalize(record.Address)
		c := candidate{
			record:    record,
			address:   address,
			dong:      e.normalizer.ExtractDong(address),
			lotNumber: e.normalizer.ExtractLotNumber(address),
		}

		bestScore := 0
		bestLot := ""
		for i := range lots {
			score, ok := e.scorer.Score(&c, &lots[i])
			if !ok {
				continue
			}
			if score >= MinScore && score > bestScore {
				bestScore = score
				bestLot = lots[i].Name
			}
		}

		if bestLot == "" {
			continue
		}

		entry, ok := result[bestLot]
		if !ok {
			entry = &models.LotChargers{HasCharger: true}
			result[bestLot] = entry
		}
		entry.Chargers = append(entry.Chargers, e.aggregator.Classify(record))
	}

	return result
}
