package matching

import (
	"strings"
	"unicode/utf8"

	"github.com/geonjuring/parking-system/internal/models"
)

// Scoring constants. A pair must reach MinScore to qualify at all;
// replacement of the running best requires strict improvement, so the
// first lot to reach a given score wins ties.
const (
	// MinScore is the qualification threshold for a match.
	MinScore = 60

	scoreExactAddress       = 100
	scoreLotNumberEqual     = 80
	scoreLotNumberSubstring = 60
	scoreCulturalCenterPool = 70
)

// Tokens the rules key on.
const (
	culturalCenterToken = "문화건강"
	swimmingPoolToken   = "수영장"
)

// fillerWords are lot-name tokens too generic to disambiguate anything
// ("parking lot", "public", ordinal prefix, district/tower/pool terms).
// A lot whose name is nothing but filler never produces a keyword match.
var fillerWords = map[string]struct{}{
	"주차장":   {},
	"공영주차장": {},
	"공영":    {},
	"주차":    {},
	"제":     {},
	"동":     {},
	"지구":    {},
	"타워":    {},
	"수영장":   {},
}

// candidate is one charger with its derived tokens, computed once per
// charger before the lot loop.
type candidate struct {
	record    models.ChargerRecord
	address   string // normalized
	dong      string
	lotNumber string
}

// pair is the mutable evaluation state for one charger/lot combination.
// Rules communicate through it: the special case can force keywordMatch,
// and exact address equality suppresses the lot-number-equality rule.
type pair struct {
	charger      *candidate
	lot          *models.IndexedLot
	nameContains bool
	keywordMatch bool
	exactAddress bool
}

// verdict tells the engine what to do with a pair after a rule ran.
type verdict int

const (
	// verdictNext continues with the following rule.
	verdictNext verdict = iota
	// verdictReject discards the pair; no further rules run and any
	// accumulated score is void.
	verdictReject
	// verdictResolve ends evaluation with the accumulated score counting.
	verdictResolve
)

// rule is one step of the ordered scoring table: a pure function from
// the pair state to a score contribution and a verdict.
type rule struct {
	name  string
	apply func(p *pair) (int, verdict)
}

// MatchScorer evaluates the ordered rule table for a charger/lot pair.
type MatchScorer struct {
	rules []rule
}

// NewMatchScorer builds the scorer with the standard rule order:
// cultural/health-center pool special case, dong gate, exact address
// equality, lot-number equality, lot-number substring.
func NewMatchScorer() *MatchScorer {
	return &MatchScorer{rules: []rule{
		{name: "cultural-center-pool", apply: culturalCenterPoolRule},
		{name: "dong-gate", apply: dongGateRule},
		{name: "exact-address", apply: exactAddressRule},
		{name: "lot-number-equal", apply: lotNumberEqualRule},
		{name: "lot-number-substring", apply: lotNumberSubstringRule},
	}}
}

// Score runs the rule table and returns the pair's total score together
// with whether the pair survived (false means it was rejected outright).
func (s *MatchScorer) Score(charger *candidate, lot *models.IndexedLot) (int, bool) {
	p := &pair{
		charger:      charger,
		lot:          lot,
		nameContains: nameContainment(lot.Name, charger.record.Name),
		keywordMatch: keywordMatch(lot.Name, charger.record.Name),
	}

	score := 0
	for _, r := range s.rules {
		delta, v := r.apply(p)
		switch v {
		case verdictReject:
			return 0, false
		case verdictResolve:
			return score + delta, true
		}
		score += delta
	}
	return score, true
}

// nameContainment reports whether either name is a substring of the other.
func nameContainment(lotName, chargerName string) bool {
	return strings.Contains(chargerName, lotName) || strings.Contains(lotName, chargerName)
}

// keywordMatch strips filler words from the lot name's tokens, keeps
// tokens of at least two runes, and reports whether any remaining
// keyword appears in the charger's name.
func keywordMatch(lotName, chargerName string) bool {
	for _, token := range strings.Fields(lotName) {
		if _, filler := fillerWords[token]; filler {
			continue
		}
		if utf8.RuneCountInString(token) < 2 {
			continue
		}
		if strings.Contains(chargerName, token) {
			return true
		}
	}
	return false
}

// culturalCenterPoolRule handles culture/health-center facilities whose
// charger names diverge structurally from the registry lot name. When
// both names carry the token, the keyword test is treated as satisfied
// regardless of dong agreement. If the dongs additionally disagree, the
// pair is accepted anyway, but only when either address mentions the
// swimming pool; that path resolves the pair at a fixed score and skips
// the remaining rules. When the dongs agree, evaluation deliberately
// falls through to the normal dong-gated rules.
func culturalCenterPoolRule(p *pair) (int, verdict) {
	if !strings.Contains(p.lot.Name, culturalCenterToken) ||
		!strings.Contains(p.charger.record.Name, culturalCenterToken) {
		return 0, verdictNext
	}
	p.keywordMatch = true
	if p.charger.dong != p.lot.DongName {
		if strings.Contains(p.charger.address, swimmingPoolToken) ||
			strings.Contains(p.lot.Address, swimmingPoolToken) {
			return scoreCulturalCenterPool, verdictResolve
		}
	}
	return 0, verdictNext
}

// dongGateRule rejects every non-special-case pair whose derived dong
// differs from the lot's registry dong. A charger whose address has no
// recognizable dong token never passes this gate.
func dongGateRule(p *pair) (int, verdict) {
	if p.charger.dong != p.lot.DongName {
		return 0, verdictReject
	}
	return 0, verdictNext
}

// exactAddressRule awards the strongest signal: character-for-character
// equality of the normalized addresses.
func exactAddressRule(p *pair) (int, verdict) {
	if p.charger.address == p.lot.Address {
		p.exactAddress = true
		return scoreExactAddress, verdictNext
	}
	return 0, verdictNext
}

// lotNumberEqualRule awards lot-number equality corroborated by a name
// cue. It is skipped when the exact-address rule already fired for this
// pair.
func lotNumberEqualRule(p *pair) (int, verdict) {
	if p.exactAddress {
		return 0, verdictNext
	}
	if p.charger.lotNumber == "" || p.lot.LotNumber == "" {
		return 0, verdictNext
	}
	if p.charger.lotNumber == p.lot.LotNumber && (p.nameContains || p.keywordMatch) {
		return scoreLotNumberEqual, verdictNext
	}
	return 0, verdictNext
}

// lotNumberSubstringRule awards the lot's lot-number appearing inside
// the charger's address, again corroborated by a name cue. It is
// additive and runs regardless of the preceding rules' outcome.
func lotNumberSubstringRule(p *pair) (int, verdict) {
	if p.lot.LotNumber == "" {
		return 0, verdictNext
	}
	if strings.Contains(p.charger.address, p.lot.LotNumber) && (p.nameContains || p.keywordMatch) {
		return scoreLotNumberSubstring, verdictNext
	}
	return 0, verdictNext
}
