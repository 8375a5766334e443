package insight

import (
	"fmt"
	"time"

	"github.com/steam-lens/profile-api/internal/models"
)

const (
	secondsPerDay = 86400
	daysPerYear   = 365
	daysPerMonth  = 30
)

// unknownAgeComment is the fixed sentinel for profiles that hide their
// registration date.
const unknownAgeComment = "无法获取注册时间信息"

var accountAgePools = []struct {
	minYears int
	pool     []string
}{
	{minYears: 10, pool: []string{
		"十年以上的老玩家！Steam 的忠实用户！🏅",
		"骨灰级玩家！见证了 Steam 的发展历程！📜",
		"十年账号， priceless！💎",
		"老玩家认证！你的游戏库一定很精彩！🎮",
	}},
	{minYears: 5, pool: []string{
		"五年以上的资深玩家！👑",
		"你的 Steam 账号已经成年了！🎂",
		"资深用户！游戏品味一定很棒！⭐",
		"五年时光，游戏陪伴！🌟",
	}},
	{minYears: 2, pool: []string{
		"两年以上的玩家！已经找到自己喜欢的游戏类型了吧？🎯",
		"稳步成长的游戏爱好者！📈",
		"两年时光，游戏世界的大门已为你敞开！🚪",
		"不错的游戏历程，继续探索吧！🔍",
	}},
	{minYears: 1, pool: []string{
		"一年以上的玩家！已经度过新手期了！💪",
		"Steam 用户满一年！游戏之旅渐入佳境！🎮",
		"一年的游戏时光，收获满满！🎁",
		"已经是个合格的 Steam 用户了！👍",
	}},
	{minYears: 0, pool: []string{
		"Steam 新手！欢迎加入这个大家庭！👋",
		"刚开始的 Steam 之旅，精彩游戏等你发现！✨",
		"新用户！建议从经典游戏开始探索！🗺️",
		"欢迎来到 Steam 世界！🎉",
	}},
}

// ComputeAccountAge derives the account-age block from the profile's
// registration timestamp. A zero or negative timestamp means the profile
// hides it, which yields the fixed unknown sentinel.
func ComputeAccountAge(createdAt, now int64) models.AccountPayload {
	if createdAt <= 0 {
		return models.AccountPayload{
			Date:      "未知",
			Timestamp: 0,
			Age:       0,
			AgeText:   "未知",
			Comment:   unknownAgeComment,
		}
	}

	ageDays := int((now - createdAt) / secondsPerDay)
	ageYears := ageDays / daysPerYear
	remainingDays := ageDays % daysPerYear

	var ageText string
	if ageYears > 0 {
		ageText = fmt.Sprintf("%d 年", ageYears)
		if remainingDays > daysPerMonth {
			ageText += fmt.Sprintf(" %d 个月", remainingDays/daysPerMonth)
		}
	} else if months := ageDays / daysPerMonth; months > 0 {
		ageText = fmt.Sprintf("%d 个月", months)
	} else {
		ageText = fmt.Sprintf("%d 天", ageDays)
	}

	var comment string
	for _, tier := range accountAgePools {
		if ageYears >= tier.minYears {
			comment = pick(tier.pool)
			break
		}
	}

	return models.AccountPayload{
		Date:      time.Unix(createdAt, 0).UTC().Format("2006-01-02"),
		Timestamp: createdAt,
		Age:       ageDays,
		AgeText:   ageText,
		Comment:   comment,
	}
}
