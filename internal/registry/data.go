package registry

import (
	"github.com/geonjuring/parking-system/internal/models"
)

// suncheonLots is the municipal lot list as of the 2025-08-28 export.
// Fee categories are 무료 (free) or 유료 (paid); ChargerNote is the
// informational charger-summary text from the source sheet and is not
// interpreted by the matcher.
var suncheonLots = []models.DongGroup{
	{Name: "금곡동", Lots: []models.LotReference{
		{Name: "매산뜰 공영주차장", Capacity: 99, Address: "전남 순천시 금곡동 60-1", FeeCategory: "무료", FeeInfo: "무료", ChargerNote: "🔌X"},
	}},
	{Name: "동외동", Lots: []models.LotReference{
		{Name: "성동 공영주차장", Capacity: 84, Address: "전남 순천시 동외동 83", FeeCategory: "유료", FeeInfo: "30분 무료 후 30분당 500원", ChargerNote: "🔌X"},
		{Name: "강남로 제1공영주차장", Capacity: 18, Address: "전남 순천시 동외동 100-1", FeeCategory: "유료", FeeInfo: "30분당 500원", ChargerNote: "🔌X"},
	}},
	{Name: "매곡동", Lots: []models.LotReference{
		{Name: "의료원로터리 제1공영주차장", Capacity: 10, Address: "전남 순천시 매곡동 127-9", FeeCategory: "유료", FeeInfo: "30분당 500원", ChargerNote: "🔌X"},
	}},
	{Name: "연향동", Lots: []models.LotReference{
		{Name: "금당 제2공영주차장", Capacity: 25, Address: "전남 순천시 연향동 1457", FeeCategory: "무료", FeeInfo: "무료", ChargerNote: "🔌X"},
		{Name: "금당 제3공영주차장", Capacity: 31, Address: "전남 순천시 연향동 1474", FeeCategory: "무료", FeeInfo: "무료", ChargerNote: "🔌X"},
		{Name: "금당 제4공영주차장", Capacity: 30, Address: "전남 순천시 연향동 1490", FeeCategory: "무료", FeeInfo: "무료", ChargerNote: "🔌X"},
		{Name: "연향3지구 제1공영주차장", Capacity: 21, Address: "전남 순천시 연향동 1686-6", FeeCategory: "무료", FeeInfo: "무료", ChargerNote: "🔌O(급속 1개)"},
		{Name: "연향3지구 제2공영주차장", Capacity: 21, Address: "전남 순천시 연향동 1690-4", FeeCategory: "무료", FeeInfo: "무료", ChargerNote: "🔌X"},
		{Name: "연향 제1공영주차장", Capacity: 62, Address: "전남 순천시 연향동 1325-2", FeeCategory: "유료", FeeInfo: "30분당 500원", ChargerNote: "🔌X"},
		{Name: "연향 제2공영주차장", Capacity: 17, Address: "전남 순천시 연향동 1423", FeeCategory: "유료", FeeInfo: "30분당 500원", ChargerNote: "🔌X"},
		{Name: "연향 제3공영주차장", Capacity: 25, Address: "전남 순천시 연향동 1423", FeeCategory: "유료", FeeInfo: "30분당 500원", ChargerNote: "🔌X"},
		{Name: "연향 제4공영주차장", Capacity: 27, Address: "전남 순천시 연향동 1423", FeeCategory: "유료", FeeInfo: "30분당 500원", ChargerNote: "🔌X"},
		{Name: "연향 제5공영주차장", Capacity: 19, Address: "전남 순천시 연향동 1423", FeeCategory: "유료", FeeInfo: "30분당 500원", ChargerNote: "🔌X"},
		{Name: "연향 제6공영주차장", Capacity: 14, Address: "전남 순천시 연향동 1416", FeeCategory: "유료", FeeInfo: "30분당 500원", ChargerNote: "🔌X"},
		{Name: "연향 제7공영주차장", Capacity: 42, Address: "전남 순천시 연향동 1431", FeeCategory: "유료", FeeInfo: "30분당 500원", ChargerNote: "🔌X"},
		{Name: "동부 제1공영주차장", Capacity: 14, Address: "전남 순천시 연향동 1336-2", FeeCategory: "유료", FeeInfo: "30분당 500원", ChargerNote: "🔌X"},
		{Name: "동부 제2공영주차장", Capacity: 24, Address: "전남 순천시 연향동 1344", FeeCategory: "유료", FeeInfo: "30분당 500원", ChargerNote: "🔌X"},
		{Name: "동부 제3공영주차장", Capacity: 19, Address: "전남 순천시 연향동 1347", FeeCategory: "유료", FeeInfo: "30분당 500원", ChargerNote: "🔌X"},
		{Name: "동부 제4공영주차장", Capacity: 10, Address: "전남 순천시 연향동 1423", FeeCategory: "유료", FeeInfo: "30분당 500원", ChargerNote: "🔌X"},
		{Name: "연향주차타워", Capacity: 81, Address: "전남 순천시 연향동 1320-5", FeeCategory: "유료", FeeInfo: "30분 무료 후 30분당 500원", ChargerNote: "🔌X"},
	}},
	{Name: "왕지동", Lots: []models.LotReference{
		{Name: "왕지 제1공영주차장", Capacity: 136, Address: "전남 순천시 왕지동 852-1", FeeCategory: "유료", FeeInfo: "1시간 무료 후 30분당 500원", ChargerNote: "🔌O(급속 1개)"},
		{Name: "왕지 제2공영주차장", Capacity: 125, Address: "전남 순천시 왕지동 853-2", FeeCategory: "유료", FeeInfo: "1시간 무료 후 30분당 500원", ChargerNote: "🔌O(급속 1개)"},
	}},
	{Name: "인제동", Lots: []models.LotReference{
		{Name: "남정저류지 공영주차장", Capacity: 68, Address: "전남 순천시 인제동 376-8", FeeCategory: "무료", FeeInfo: "무료", ChargerNote: "🔌X"},
	}},
	{Name: "장천동", Lots: []models.LotReference{
		{Name: "시민 공영주차장", Capacity: 52, Address: "전남 순천시 장천동 234", FeeCategory: "유료", FeeInfo: "1시간 무료 후 30분당 500원", ChargerNote: "🔌X"},
	}},
	{Name: "조곡동", Lots: []models.LotReference{
		{Name: "역전로터리 공영주차장", Capacity: 21, Address: "전남 순천시 조곡동 159-4", FeeCategory: "유료", FeeInfo: "30분당 500원", ChargerNote: "🔌X"},
		{Name: "역전 제3공영주차장", Capacity: 19, Address: "전남 순천시 조곡동 161-9", FeeCategory: "유료", FeeInfo: "30분 무료 후 30분당 500원", ChargerNote: "🔌X"},
	}},
	{Name: "조례동", Lots: []models.LotReference{
		{Name: "호수공원 주차장", Capacity: 60, Address: "전남 순천시 조례동 1866, 호수공원 옆", FeeCategory: "무료", FeeInfo: "무료", ChargerNote: "🔌X"},
		{Name: "호수공원 자율주차장1", Capacity: 50, Address: "전남 순천시 왕지2길 13-12, 호수공원 주차장 건너편", FeeCategory: "무료", FeeInfo: "무료", ChargerNote: "🔌X"},
		{Name: "호수공원 자율주차장2", Capacity: 10, Address: "전남 순천시 왕지4길 13-10, 카페 드로잉 건너편", FeeCategory: "무료", FeeInfo: "무료", ChargerNote: "🔌X"},
		{Name: "호수공원 자율주차장3", Capacity: 30, Address: "전남 순천시 왕지4길 14-8 1, 카페 소나무 옆", FeeCategory: "무료", FeeInfo: "무료", ChargerNote: "🔌X"},
		{Name: "수매골 공영주차장", Capacity: 54, Address: "전남 순천시 조례동 1807", FeeCategory: "무료", FeeInfo: "무료", ChargerNote: "🔌O(급속 1개)"},
		{Name: "왕조2동 공영주차장", Capacity: 67, Address: "전남 순천시 조례동 1824", FeeCategory: "유료", FeeInfo: "1시간 무료 후 30분당 500원", ChargerNote: "🔌X"},
		{Name: "조례 제1공영주차장", Capacity: 43, Address: "전남 순천시 조례동 1722-8", FeeCategory: "유료", FeeInfo: "30분당 500원", ChargerNote: "🔌X"},
		{Name: "금당 제1공영주차장", Capacity: 69, Address: "전남 순천시 조례동 1605-1", FeeCategory: "유료", FeeInfo: "1시간 무료 후 30분당 500원", ChargerNote: "🔌X"},
		{Name: "조례 제2공영주차장", Capacity: 15, Address: "전남 순천시 조례동 1249-3", FeeCategory: "유료", FeeInfo: "30분당 500원", ChargerNote: "🔌X"},
		{Name: "신월 공영주차장", Capacity: 75, Address: "전남 순천시 조례동 1114", FeeCategory: "무료", FeeInfo: "무료", ChargerNote: "🔌O(급속 1개)"},
		{Name: "금당 공영주차장", Capacity: 61, Address: "전남 순천시 조례동 1605-1", FeeCategory: "무료", FeeInfo: "무료", ChargerNote: "🔌X"},
	}},
	{Name: "석현동", Lots: []models.LotReference{
		{Name: "공과대학 3호관 주차장", Capacity: 35, Address: "전남 순천시 석현동 375, 공과대학 3호관", FeeCategory: "유료", FeeInfo: "최초 30분 무료, 그후 30분당 500원", ChargerNote: "🔌X"},
		{Name: "공과대학 2호관 주차장", Capacity: 30, Address: "전남 순천시 석현동 337, 공과대학 2호관", FeeCategory: "유료", FeeInfo: "최초 30분 무료, 그후 30분당 500원", ChargerNote: "🔌X"},
		{Name: "공과대학 1호관 주차장", Capacity: 45, Address: "전남 순천시 석현동 284, 공과대학 1호관", FeeCategory: "유료", FeeInfo: "최초 30분 무료, 그후 30분당 500원", ChargerNote: "🔌X"},
		{Name: "문화건강센터 수영장", Capacity: 139, Address: "전남 순천시 석현동 35-10", FeeCategory: "유료", FeeInfo: "최초 2시간30분 무료, 그후 30분당 500원", ChargerNote: "🔌O(급속 3개)"},
		{Name: "문화센터 주차장", Capacity: 89, Address: "전남 순천시 석현동 35-6", FeeCategory: "유료", FeeInfo: "최초 2시간30분 무료, 그후 30분당 500원", ChargerNote: "🔌X"},
	}},
	{Name: "중앙동", Lots: []models.LotReference{
		{Name: "강남로 제2공영주차장", Capacity: 14, Address: "전남 순천시 중앙동 40", FeeCategory: "유료", FeeInfo: "30분당 500원", ChargerNote: "🔌X"},
	}},
	{Name: "행동", Lots: []models.LotReference{
		{Name: "의료원로터리 제2공영주차장", Capacity: 8, Address: "전남 순천시 행동 1번지", FeeCategory: "유료", FeeInfo: "30분당 500원", ChargerNote: "🔌X"},
	}},
}
