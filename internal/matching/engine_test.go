package matching

import (
	"testing"

	"github.com/geonjuring/parking-system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testIndex(t *testing.T) *LotIndex {
	t.Helper()
	groups := []models.DongGroup{
		{
			Name: "조례동",
			Lots: []models.LotReference{
				{Name: "수매골 공영주차장", Address: "전남 순천시 조례동 1807"},
				{Name: "신월 공영주차장", Address: "전남 순천시 조례동 1114"},
			},
		},
		{
			Name: "왕지동",
			Lots: []models.LotReference{
				{Name: "왕지 제1공영주차장", Address: "전남 순천시 왕지동 852-1"},
			},
		},
		{
			Name: "석현동",
			Lots: []models.LotReference{
				{Name: "문화건강센터 수영장", Address: "전남 순천시 석현동 35-10"},
			},
		},
	}
	return NewReferenceIndexer(NewAddressNormalizer()).Build(groups)
}

func TestMatch_ExactAddressAlwaysWins(t *testing.T) {
	engine := NewDefaultEngine()
	index := testIndex(t)
	chargers := []models.ChargerRecord{
		{
			Name:        "환경부 급속충전소",
			Address:     "전라남도 순천시 조례동 1114",
			ChargerType: "DC콤보",
		},
	}

	result := engine.Match(chargers, index)

	require.Contains(t, result, "신월 공영주차장")
	entry := result["신월 공영주차장"]
	assert.True(t, entry.HasCharger)
	require.Len(t, entry.Chargers, 1)
	assert.Equal(t, models.ChargeTypeFast, entry.Chargers[0].ChargeType)
}

func TestMatch_LotNumberPlusKeyword(t *testing.T) {
	engine := NewDefaultEngine()
	index := testIndex(t)
	chargers := []models.ChargerRecord{
		{
			Name:    "수매골충전소",
			Address: "전남 순천시 조례동 1807 인근",
		},
	}

	result := engine.Match(chargers, index)

	require.Contains(t, result, "수매골 공영주차장")
}

func TestMatch_CulturalCenterPool(t *testing.T) {
	engine := NewDefaultEngine()
	index := testIndex(t)
	chargers := []models.ChargerRecord{
		{
			Name:    "순천시문화건강센터",
			Address: "전남 순천시 석현동 35-10",
		},
	}

	result := engine.Match(chargers, index)

	require.Contains(t, result, "문화건강센터 수영장")
}

func TestMatch_UnmatchedChargerSilentlyDropped(t *testing.T) {
	engine := NewDefaultEngine()
	index := testIndex(t)
	chargers := []models.ChargerRecord{
		{
			Name:    "순천만국가정원 충전소",
			Address: "전남 순천시 국가정원1호길 47",
		},
		{
			Name:    "모호한 충전소",
			Address: "전남 순천시 덕암동 99-9",
		},
	}

	result := engine.Match(chargers, index)

	assert.Empty(t, result, "no qualifying match is not an error")
}

func TestMatch_MultipleChargersOneLot(t *testing.T) {
	engine := NewDefaultEngine()
	index := testIndex(t)
	chargers := []models.ChargerRecord{
		{Name: "왕지 제1공영주차장 충전소 A", Address: "전남 순천시 왕지동 852-1", ChargerType: "DC차데모"},
		{Name: "왕지 제1공영주차장 충전소 B", Address: "전남 순천시 왕지동 852-1", ChargerType: "AC완속"},
	}

	result := engine.Match(chargers, index)

	require.Contains(t, result, "왕지 제1공영주차장")
	entry := result["왕지 제1공영주차장"]
	require.Len(t, entry.Chargers, 2)
	// Processing order is preserved within a lot.
	assert.Equal(t, "왕지 제1공영주차장 충전소 A", entry.Chargers[0].Name)
	assert.Equal(t, "왕지 제1공영주차장 충전소 B", entry.Chargers[1].Name)
}

func TestMatch_Deterministic(t *testing.T) {
	engine := NewDefaultEngine()
	index := testIndex(t)
	chargers := []models.ChargerRecord{
		{Name: "수매골충전소", Address: "전남 순천시 조례동 1807"},
		{Name: "순천시문화건강센터", Address: "전남 순천시 석현동 35-10"},
		{Name: "왕지 제1공영주차장 충전기", Address: "전남 순천시 왕지동 852-1"},
	}

	first := engine.Match(chargers, index)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, engine.Match(chargers, index))
	}
}

func TestMatch_RegistryClosure(t *testing.T) {
	engine := NewDefaultEngine()
	index := testIndex(t)
	chargers := []models.ChargerRecord{
		{Name: "수매골충전소", Address: "전남 순천시 조례동 1807"},
		{Name: "어딘가 충전소", Address: "전남 순천시 가곡동 100"},
	}

	result := engine.Match(chargers, index)

	for lotName := range result {
		_, ok := index.Lookup(lotName)
		assert.True(t, ok, "result may only name lots present in the index")
	}
}

func TestMatch_StrictImprovementTieBreak(t *testing.T) {
	// Two lots at the same address produce equal scores; the first in
	// registry order must be retained since replacement requires strict
	// improvement.
	groups := []models.DongGroup{
		{
			Name: "연향동",
			Lots: []models.LotReference{
				{Name: "연향 제2공영주차장", Address: "전남 순천시 연향동 1423"},
				{Name: "연향 제3공영주차장", Address: "전남 순천시 연향동 1423"},
			},
		},
	}
	index := NewReferenceIndexer(NewAddressNormalizer()).Build(groups)
	engine := NewDefaultEngine()
	chargers := []models.ChargerRecord{
		{Name: "연향 급속충전소", Address: "전남 순천시 연향동 1423"},
	}

	result := engine.Match(chargers, index)

	require.Len(t, result, 1)
	assert.Contains(t, result, "연향 제2공영주차장")
	assert.NotContains(t, result, "연향 제3공영주차장")
}

func TestMatch_DongGateInvariant(t *testing.T) {
	// An address-equal pair in the wrong dong must not match.
	groups := []models.DongGroup{
		{
			Name: "조례동",
			Lots: []models.LotReference{
				{Name: "수매골 공영주차장", Address: "전남 순천시 조례동 1807"},
			},
		},
	}
	index := NewReferenceIndexer(NewAddressNormalizer()).Build(groups)
	engine := NewDefaultEngine()
	chargers := []models.ChargerRecord{
		{Name: "수매골 공영주차장 충전소", Address: "전남 순천시 왕지동 1807"},
	}

	result := engine.Match(chargers, index)

	assert.Empty(t, result)
}
