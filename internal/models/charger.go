package models

// ChargeType classifies a charging station by speed.
type ChargeType string

const (
	// ChargeTypeFast covers DC fast chargers (급속).
	ChargeTypeFast ChargeType = "급속"
	// ChargeTypeSlow covers AC slow chargers (완속).
	ChargeTypeSlow ChargeType = "완속"
)

// ChargerRecord is one row from the municipal EV charging station feed.
// All fields are free text; optional fields may be empty. Records are
// immutable once read from the feed.
type ChargerRecord struct {
	Name          string `json:"name"`
	Address       string `json:"address"`
	ChargerType   string `json:"chargerType"`
	Capacity      string `json:"capacity"`
	AvailableTime string `json:"availableTime"`
	FacilityType  string `json:"facilityType"`
	Convenience   string `json:"convenience,omitempty"`
}

// MatchedCharger is one charger after classification, grouped under the
// parking lot it was resolved to.
type MatchedCharger struct {
	Name          string     `json:"name"`
	ChargeType    ChargeType `json:"chargeType"`
	IsAvailable   bool       `json:"isAvailable"`
	Cost          string     `json:"cost"`
	Capacity      string     `json:"capacity"`
	AvailableTime string     `json:"availableTime"`
	FacilityType  string     `json:"facilityType"`
	Convenience   string     `json:"convenience,omitempty"`
}

// LotChargers is the per-lot aggregate in a MatchResult.
type LotChargers struct {
	HasCharger bool             `json:"hasCharger"`
	Chargers   []MatchedCharger `json:"chargers"`
}

// MatchResult maps a registry lot name to the chargers resolved to it.
// Lots without a qualifying charger are absent from the map; downstream
// code treats a missing key as "no charger at this lot".
type MatchResult map[string]*LotChargers
