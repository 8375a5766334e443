package insight

import (
	"fmt"

	"github.com/steam-lens/profile-api/internal/utils"
)

const (
	minutesPerHour = 60
	minutesPerDay  = 1440
)

// FormatMinutes renders a playtime in minutes as human text.
//
// Below one day the breakdown is hours + leftover minutes. From one day
// up it is "X 天 (Y 小时)" where the hour figure is the independent total
// minutes/60, not days*24, so the two figures are not derivable from one
// another.
func FormatMinutes(minutes int) string {
	if minutes < minutesPerHour {
		return fmt.Sprintf("%d 分钟", minutes)
	}
	if minutes < minutesPerDay {
		hours := minutes / minutesPerHour
		mins := minutes % minutesPerHour
		if mins > 0 {
			return fmt.Sprintf("%d 小时 %d 分钟", hours, mins)
		}
		return fmt.Sprintf("%d 小时", hours)
	}
	days := minutes / minutesPerDay
	totalHours := minutes / minutesPerHour
	return fmt.Sprintf("%d 天 (%d 小时)", days, totalHours)
}

var totalPlaytimePools = []struct {
	minDays  float64
	minHours float64
	pool     []string
}{
	{minDays: 365, pool: []string{
		"哇塞！你已经花了超过一年的时间在游戏上！这是要申请吉尼斯纪录吗？🎮",
		"一年以上的游戏时长... 你是住在游戏里的吗？🏠",
		"真正的硬核玩家！你的 dedication 令人敬佩！💪",
		"这已经是一份全职工作了！考虑开个直播吗？📺",
	}},
	{minDays: 180, pool: []string{
		"半年以上的游戏时光！你是真正的游戏爱好者！🌟",
		"哇！这时长足够从新手变成职业选手了！🏆",
		"半年的时间都在游戏里，你的生活平衡还好吗？😄",
		"这游戏时长... 你的 Steam 账号值钱了！💎",
	}},
	{minDays: 90, pool: []string{
		"三个月的游戏时长！你对游戏是真爱啊！❤️",
		"这已经超过了大多数人的游戏时长了！👍",
		"三个月... 你在这个虚拟世界里建立帝国了吗？🏰",
		"资深玩家认证！继续加油！🚀",
	}},
	{minDays: 30, pool: []string{
		"一个月的游戏时长！不错的开始！👌",
		"你已经是个合格的游戏玩家了！🎮",
		"这时间足够通关很多3A大作了！🎯",
		"游戏已经成为你生活的一部分了吧？😊",
	}},
	{minDays: 7, pool: []string{
		"一周以上的游戏时间！继续保持！💪",
		"你的游戏之旅才刚刚开始！🌟",
		"不错的游戏时长，找到你喜欢的游戏了吗？🎲",
		"休闲玩家的完美时长！享受游戏吧！🎉",
	}},
	{minHours: 24, pool: []string{
		"已经花了一整天在游戏上了！🕐",
		"新手玩家正在成长中！📈",
		"开始探索游戏世界了吗？🗺️",
		"不错的开始，还有更多游戏等你发现！🔍",
	}},
	{pool: []string{
		"游戏新手！还有很多精彩等你探索！✨",
		"刚开始的游戏之旅，慢慢享受吧！🌱",
		"你的游戏故事才刚刚开始书写！📖",
		"轻度玩家， quality over quantity！👌",
	}},
}

// TotalPlaytimeComment picks a comment for the library-wide playtime.
func TotalPlaytimeComment(totalMinutes int) string {
	days := float64(totalMinutes) / minutesPerDay
	hours := float64(totalMinutes) / minutesPerHour

	for _, tier := range totalPlaytimePools {
		if tier.minDays > 0 && days >= tier.minDays {
			return pick(tier.pool)
		}
		if tier.minHours > 0 && hours >= tier.minHours {
			return pick(tier.pool)
		}
		if tier.minDays == 0 && tier.minHours == 0 {
			return pick(tier.pool)
		}
	}
	return ""
}

// notStartedComment short-circuits every bucket for untouched games.
const notStartedComment = "还没开始玩呢，快试试吧！🎮"

type franchiseComments struct {
	Name     string
	Hours100 string // >= 4 days
	Hours500 string // >= 21 days
	Hour1000 string // >= 42 days
}

var franchiseTable = []franchiseComments{
	{
		Name:     "Dota 2",
		Hours100: "已经开始理解这个游戏了！🧠",
		Hours500: "你是真的爱这个游戏！💕",
		Hour1000: "传奇玩家！你的天梯分一定很高！🏆",
	},
	{
		Name:     "Counter-Strike",
		Hours100: "爆头率提升中！🎯",
		Hours500: "老兵了！记得休息眼睛！👀",
		Hour1000: "职业选手预备役！🥇",
	},
	{
		Name:     "PUBG",
		Hours100: "吃鸡次数应该不少了吧？🍗",
		Hours500: "跳伞专家！🪂",
		Hour1000: "绝地求生大师！🏆",
	},
	{
		Name:     "Grand Theft Auto V",
		Hours100: "洛圣都的街头霸王！🚗",
		Hours500: "你已经比当地人还了解这座城市！🌆",
		Hour1000: "真正的犯罪大师！😎",
	},
}

// GameComment picks a comment for a single game's playtime. Four named
// franchises get their own milestone strings; everything else falls
// through to generic duration tiers.
func GameComment(minutes int, gameName string) string {
	if minutes <= 0 {
		return notStartedComment
	}

	days := float64(minutes) / minutesPerDay
	hours := float64(minutes) / minutesPerHour

	for _, fr := range franchiseTable {
		if !utils.ContainsFold(gameName, fr.Name) {
			continue
		}
		switch {
		case days >= 42:
			return fr.Hour1000
		case days >= 21:
			return fr.Hours500
		case days >= 4:
			return fr.Hours100
		}
	}

	switch {
	case days >= 30:
		return "这款游戏是你的真爱！投入了大量时间！💎"
	case days >= 14:
		return "两周以上的时间！你是这款游戏的忠实粉丝！⭐"
	case days >= 7:
		return "一周的游戏时光！相当不错的投入！🎮"
	case hours >= 24:
		return "一整天都在玩这个！看来很对你的胃口！😄"
	case hours >= 10:
		return "已经开始上头了！继续探索吧！🚀"
	case hours >= 2:
		return "初步体验完成，感觉如何？🤔"
	case minutes >= 30:
		return "刚开始接触，给这款游戏一个机会吧！✨"
	default:
		return "刚开始玩，还在探索阶段！🔍"
	}
}
