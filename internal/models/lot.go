package models

// LotReference is one parking lot as declared in the static registry.
// The registry's dong name is authoritative grouping information; it is
// not re-derived from the address text. The core only reads this type.
type LotReference struct {
	Name        string `json:"name"`
	DongName    string `json:"dongName"`
	Address     string `json:"address"`
	Capacity    int    `json:"capacity"`
	FeeCategory string `json:"feeCategory"`
	FeeInfo     string `json:"feeInfo"`
	ChargerNote string `json:"chargerNote,omitempty"`
}

// DongGroup is one sub-district of the registry together with its
// ordered parking lots.
type DongGroup struct {
	Name string         `json:"name"`
	Lots []LotReference `json:"lots"`
}

// IndexedLot is a matching-ready projection of one registry lot,
// precomputed once per matching run by the reference indexer.
// LotNumber is empty when the address carries no recognizable
// dong + lot-number pattern.
type IndexedLot struct {
	Name      string
	DongName  string
	Address   string // normalized
	LotNumber string // "<dong> <number>" or ""
}

// LotStatus is the live occupancy view of one lot, produced by the
// simulator and served by the dashboard API.
type LotStatus struct {
	Name        string  `json:"name"`
	DongName    string  `json:"dongName"`
	Capacity    int     `json:"capacity"`
	Occupied    int     `json:"occupied"`
	Available   int     `json:"available"`
	Rate        float64 `json:"occupancyRate"`
	FeeCategory string  `json:"feeCategory"`
	FeeInfo     string  `json:"feeInfo"`
}
