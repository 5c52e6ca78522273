package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	r := Default()

	assert.Equal(t, 12, len(r.DongNames()))
	assert.Equal(t, 45, r.LotCount())
	assert.Equal(t, "금곡동", r.DongNames()[0])
}

func TestLotsIn(t *testing.T) {
	r := Default()

	lots := r.LotsIn("왕지동")
	require.Len(t, lots, 2)
	assert.Equal(t, "왕지 제1공영주차장", lots[0].Name)
	assert.Equal(t, "왕지동", lots[0].DongName, "dong name is stamped onto each lot")

	assert.Nil(t, r.LotsIn("없는동"))
}

func TestLot(t *testing.T) {
	r := Default()

	lot, ok := r.Lot("수매골 공영주차장")
	require.True(t, ok)
	assert.Equal(t, 54, lot.Capacity)
	assert.Equal(t, "조례동", lot.DongName)
	assert.Equal(t, "무료", lot.FeeCategory)

	_, ok = r.Lot("없는 주차장")
	assert.False(t, ok)
}

func TestEveryLotHasRequiredFields(t *testing.T) {
	r := Default()

	for _, group := range r.Groups() {
		require.NotEmpty(t, group.Name)
		for _, lot := range group.Lots {
			assert.NotEmpty(t, lot.Name)
			assert.Positive(t, lot.Capacity, "lot %s", lot.Name)
			assert.NotEmpty(t, lot.Address, "lot %s", lot.Name)
			assert.Contains(t, []string{"무료", "유료"}, lot.FeeCategory, "lot %s", lot.Name)
			assert.NotEmpty(t, lot.FeeInfo, "lot %s", lot.Name)
		}
	}
}
