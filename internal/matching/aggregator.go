package matching

import (
	"strings"

	"github.com/geonjuring/parking-system/internal/models"
)

// Classification markers carried in the feed's free-text fields.
const (
	dcMarker          = "DC"
	acMarker          = "AC"
	fastChargeKeyword = "급속"
	slowChargeKeyword = "완속"
	unavailableMarker = "이용불가"

	// defaultCost is a placeholder: the feed carries no authoritative
	// cost field, so matched chargers are reported as free pending a
	// better data source.
	defaultCost = "무료"
)

// ChargerAggregator classifies matched charger records.
type ChargerAggregator struct{}

// NewChargerAggregator creates an aggregator.
func NewChargerAggregator() *ChargerAggregator {
	return &ChargerAggregator{}
}

// Classify derives the presentation fields for one matched charger.
// Speed: DC marker or a fast-charge keyword in the capacity or
// availability descriptor means fast; the AC marker or slow-charge
// keyword means slow; records with neither signal are optimistically
// classified as fast. Availability defaults to true and flips only on
// the explicit unavailable marker. Descriptor fields pass through.
func (a *ChargerAggregator) Classify(record models.ChargerRecord) models.MatchedCharger {
	return models.MatchedCharger{
		Name:          record.Name,
		ChargeType:    a.chargeType(record),
		IsAvailable:   !strings.Contains(record.AvailableTime, unavailableMarker),
		Cost:          defaultCost,
		Capacity:      record.Capacity,
		AvailableTime: record.AvailableTime,
		FacilityType:  record.FacilityType,
		Convenience:   record.Convenience,
	}
}

func (a *ChargerAggregator) chargeType(record models.ChargerRecord) models.ChargeType {
	switch {
	case strings.Contains(record.ChargerType, dcMarker),
		strings.Contains(record.Capacity, fastChargeKeyword),
		strings.Contains(record.AvailableTime, fastChargeKeyword):
		return models.ChargeTypeFast
	case strings.Contains(record.ChargerType, acMarker),
		strings.Contains(record.Capacity, slowChargeKeyword),
		strings.Contains(record.AvailableTime, slowChargeKeyword):
		return models.ChargeTypeSlow
	default:
		return models.ChargeTypeFast
	}
}
