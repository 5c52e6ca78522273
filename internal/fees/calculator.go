// Package fees computes elapsed-time parking charges from the
// registry's free-text fee descriptions.
package fees

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Fallback schedule used when a paid lot's description cannot be
// parsed: first 30 minutes free, then 500 won per 30 minutes.
const (
	defaultFreeMinutes = 30
	defaultUnitMinutes = 30
	defaultUnitFee     = 500
)

var (
	// "30분당 500원"
	ratePattern = regexp.MustCompile(`([0-9]+)분당\s*([0-9,]+)원`)
	// "1시간 무료", "30분 무료", "최초 2시간30분 무료"
	freePattern = regexp.MustCompile(`(?:([0-9]+)시간)?\s*(?:([0-9]+)분)?\s*무료`)
)

// Schedule is a parsed fee description: a free leading window followed
// by a fixed charge per started interval.
type Schedule struct {
	Free        bool
	FreeMinutes int
	UnitMinutes int
	UnitFee     int
}

// Quote is the result of applying a schedule to a parking interval.
type Quote struct {
	ElapsedMinutes    int `json:"elapsedMinutes"`
	FreeMinutes       int `json:"freeMinutes"`
	ChargeableMinutes int `json:"chargeableMinutes"`
	ChargeableUnits   int `json:"chargeableUnits"`
	TotalFee          int `json:"totalFee"`
}

// ParseSchedule interprets a registry fee description. "무료" alone
// means the lot is free; otherwise the description is scanned for an
// optional leading free window and a per-interval rate, falling back to
// the municipal default of 30 minutes free then 500 won per 30 minutes.
func ParseSchedule(feeInfo string) Schedule {
	trimmed := strings.TrimSpace(feeInfo)
	if trimmed == "" {
		return Schedule{
			FreeMinutes: defaultFreeMinutes,
			UnitMinutes: defaultUnitMinutes,
			UnitFee:     defaultUnitFee,
		}
	}
	if trimmed == "무료" {
		return Schedule{Free: true}
	}

	s := Schedule{
		UnitMinutes: defaultUnitMinutes,
		UnitFee:     defaultUnitFee,
	}
	if m := ratePattern.FindStringSubmatch(trimmed); m != nil {
		if unit, err := strconv.Atoi(m[1]); err == nil && unit > 0 {
			s.UnitMinutes = unit
		}
		if fee, err := strconv.Atoi(strings.ReplaceAll(m[2], ",", "")); err == nil {
			s.UnitFee = fee
		}
	}
	if m := freePattern.FindStringSubmatch(trimmed); m != nil {
		hours, _ := strconv.Atoi(m[1])
		minutes, _ := strconv.Atoi(m[2])
		s.FreeMinutes = hours*60 + minutes
	}
	return s
}

// Calculate applies the schedule to an entry/exit pair. Chargeable time
// is billed per started interval. A negative interval (exit before
// entry) yields a zero quote rather than an error.
func (s Schedule) Calculate(entry, exit time.Time) Quote {
	elapsed := int(exit.Sub(entry).Minutes())
	if elapsed < 0 {
		elapsed = 0
	}
	q := Quote{ElapsedMinutes: elapsed}
	if s.Free {
		q.FreeMinutes = elapsed
		return q
	}

	q.FreeMinutes = elapsed
	if q.FreeMinutes > s.FreeMinutes {
		q.FreeMinutes = s.FreeMinutes
	}
	q.ChargeableMinutes = elapsed - s.FreeMinutes
	if q.ChargeableMinutes < 0 {
		q.ChargeableMinutes = 0
	}
	if q.ChargeableMinutes > 0 && s.UnitMinutes > 0 {
		q.ChargeableUnits = (q.ChargeableMinutes + s.UnitMinutes - 1) / s.UnitMinutes
		q.TotalFee = q.ChargeableUnits * s.UnitFee
	}
	return q
}

// EstimateAt quotes the fee as of the given moment for an open session.
func (s Schedule) EstimateAt(entry, now time.Time) Quote {
	return s.Calculate(entry, now)
}
