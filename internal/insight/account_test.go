package insight

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const day = int64(86400)

func TestComputeAccountAge_Unknown(t *testing.T) {
	now := time.Now().Unix()

	for _, createdAt := range []int64{0, -1} {
		got := ComputeAccountAge(createdAt, now)
		assert.Equal(t, "未知", got.Date)
		assert.Equal(t, "未知", got.AgeText)
		assert.Zero(t, got.Timestamp)
		assert.Zero(t, got.Age)
		assert.Equal(t, unknownAgeComment, got.Comment)
	}
}

func TestComputeAccountAge_AgeText(t *testing.T) {
	now := int64(1700000000)

	tests := []struct {
		name    string
		ageDays int64
		want    string
	}{
		{"days only", 20, "20 天"},
		{"months", 75, "2 个月"},
		{"exactly a month", 30, "1 个月"},
		{"years without month suffix", 365 + 20, "1 年"}, // 20 leftover days is under the 30-day cutoff
		{"years with months", 365 + 95, "1 年 3 个月"},
		{"decade", 11*365 + 40, "11 年 1 个月"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeAccountAge(now-tt.ageDays*day, now)
			assert.Equal(t, tt.want, got.AgeText)
			assert.Equal(t, int(tt.ageDays), got.Age)
		})
	}
}

func TestComputeAccountAge_DateIsUTC(t *testing.T) {
	// 2013-09-12 00:00:00 UTC
	createdAt := int64(1378944000)
	got := ComputeAccountAge(createdAt, createdAt+400*day)

	assert.Equal(t, "2013-09-12", got.Date)
	assert.Equal(t, createdAt, got.Timestamp)
}

func TestComputeAccountAge_CommentTierMembership(t *testing.T) {
	now := int64(1700000000)

	tests := []struct {
		name    string
		ageDays int64
		tier    int // index into accountAgePools
	}{
		{"ten years plus", 10 * 365, 0},
		{"five years", 5 * 365, 1},
		{"two years", 2 * 365, 2},
		{"one year", 365, 3},
		{"newcomer", 100, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeAccountAge(now-tt.ageDays*day, now)
			assert.Contains(t, accountAgePools[tt.tier].pool, got.Comment)
		})
	}
}
