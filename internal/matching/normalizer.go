// Package matching resolves EV charging station records against the
// parking lot registry using only free-text names and addresses. The
// two data sources share no identifier, so resolution is rule-based:
// address normalization, dong and lot-number token extraction, and an
// ordered scoring heuristic with a minimum-score threshold.
package matching

import (
	"regexp"
	"strings"
)

const (
	// provinceLong is the legacy long-form province prefix as it appears
	// in the municipal feed ("전라남도 순천시 ...").
	provinceLong = "전라남도"
	// provinceShort is the canonical two-character abbreviation the
	// registry uses ("전남 순천시 ...").
	provinceShort = "전남"
)

var (
	// A dong token is a contiguous run of word characters ending in the
	// sub-district suffix 동. Go's \w is ASCII-only, so Hangul is spelled
	// out in the class.
	dongPattern = regexp.MustCompile(`([0-9A-Za-z_가-힣]+동)`)

	// A lot number is a numeric cadastral designator, optionally with a
	// hyphenated sub-lot ("1807", "100-1"), directly after a dong token.
	// Addresses where the number appears elsewhere are not matched; that
	// limitation is inherited from the feed's address conventions.
	lotNumberPattern = regexp.MustCompile(`([0-9A-Za-z_가-힣]+동)\s*([0-9]+[-0-9]*)`)
)

// AddressNormalizer canonicalizes raw address text and extracts the
// tokens the scoring rules depend on. The pattern details stay behind
// this interface so the scorer never inlines them.
type AddressNormalizer interface {
	// Normalize rewrites the legacy long-form province prefix to the
	// short form. Any other address, including an empty one, passes
	// through unchanged.
	Normalize(address string) string

	// ExtractDong returns the first dong token in the address, suffix
	// included, or "" when the address has none.
	ExtractDong(address string) string

	// ExtractLotNumber returns "<dong> <number>" for the first dong
	// token immediately followed by a numeric lot designator, or ""
	// when no such pattern exists.
	ExtractLotNumber(address string) string
}

// regexNormalizer is the default AddressNormalizer backed by the
// precompiled package patterns.
type regexNormalizer struct{}

// NewAddressNormalizer returns the default regexp-backed normalizer.
func NewAddressNormalizer() AddressNormalizer {
	return regexNormalizer{}
}

func (regexNormalizer) Normalize(address string) string {
	if address == "" {
		return ""
	}
	if strings.HasPrefix(address, provinceLong) {
		return provinceShort + strings.TrimPrefix(address, provinceLong)
	}
	return address
}

func (regexNormalizer) ExtractDong(address string) string {
	if address == "" {
		return ""
	}
	return dongPattern.FindString(address)
}

func (regexNormalizer) ExtractLotNumber(address string) string {
	if address == "" {
		return ""
	}
	m := lotNumberPattern.FindStringSubmatch(address)
	if m == nil {
		return ""
	}
	return m[1] + " " + m[2]
}
