package insight

// emptyLibraryStyle is returned while there is nothing to classify.
const emptyLibraryStyle = "你的游戏库还在建设中，期待发现你的游戏风格！🎮"

type styleComments struct {
	High   string // top genre >= 40% of total playtime
	Medium string // >= 20%
	Low    string
}

var styleTable = map[string]styleComments{
	"FPS": {
		High:   "你是天生的神枪手！FPS 游戏占据了你的大部分时间，反应速度和精准度一定是你的强项！🎯",
		Medium: "看来你喜欢快节奏的射击游戏，享受枪林弹雨中的刺激感！🔫",
		Low:    "偶尔来几局射击游戏放松，你的游戏口味很均衡！⚖️",
	},
	"MOBA": {
		High:   "策略大师！你在 MOBA 游戏中投入了大量时间，团队协作和战术思维是你的强项！🏆",
		Medium: "享受 MOBA 带来的竞技乐趣，每局都是新的挑战！⚔️",
		Low:    "偶尔打几局 MOBA，轻松娱乐为主！😊",
	},
	"RPG": {
		High:   "沉浸式玩家！你热爱 RPG 的丰富剧情和角色成长，每个游戏都是一段传奇旅程！📖",
		Medium: "喜欢沉浸在游戏世界中，体验不同的人生故事！🌟",
		Low:    "偶尔体验 RPG 的精彩剧情，享受慢节奏的游戏时光！☕",
	},
	"MMORPG": {
		High:   "虚拟世界居民！你在 MMORPG 中建立了第二个家，社交和冒险是你游戏生活的核心！🌍",
		Medium: "享受 MMORPG 的社交乐趣，和朋友一起冒险是最棒的！👥",
		Low:    "偶尔登录 MMORPG 看看，保持与游戏世界的联系！🔗",
	},
	"Battle Royale": {
		High:   "生存专家！你在 Battle Royale 游戏中磨练出了极强的生存本能和战术意识！🏆",
		Medium: "享受大逃杀的紧张刺激，每局都是全新的冒险！🪂",
		Low:    "偶尔来一局大逃杀，体验心跳加速的感觉！💓",
	},
	"Strategy": {
		High:   "战略大师！你热爱思考和规划，策略游戏是你展现智慧的舞台！🧠",
		Medium: "享受策略游戏带来的智力挑战，每一步都深思熟虑！♟️",
		Low:    "偶尔玩玩策略游戏，锻炼一下大脑！🤔",
	},
	"Sandbox": {
		High:   "创造大师！你在沙盒游戏中释放了无限创意，建造了属于自己的世界！🏗️",
		Medium: "喜欢沙盒游戏的自由度，随心所欲地创造和探索！🔨",
		Low:    "偶尔在沙盒游戏中放松一下，享受创造的乐趣！✨",
	},
	"Racing": {
		High:   "速度狂人！你对赛车游戏的热爱让你的反应速度达到了极致！🏎️",
		Medium: "享受速度与激情的碰撞，每场比赛都是挑战！🏁",
		Low:    "偶尔来几圈赛车，感受速度的快感！💨",
	},
	"Sports": {
		High:   "体育达人！你在体育游戏中展现了出色的运动天赋和战术理解！⚽",
		Medium: "热爱体育游戏，享受竞技的乐趣！🏀",
		Low:    "偶尔玩玩体育游戏，保持运动精神！🏃",
	},
	"Horror": {
		High:   "恐怖游戏勇士！你的胆量令人佩服，越是恐怖越要挑战！👻",
		Medium: "喜欢恐怖游戏带来的刺激感，享受心跳加速的时刻！😱",
		Low:    "偶尔挑战恐怖游戏，测试一下自己的胆量！🎃",
	},
	"Indie": {
		High:   "独立游戏鉴赏家！你善于发现小众精品，品味独特！💎",
		Medium: "喜欢探索独立游戏的创意世界，支持小众开发者！🌟",
		Low:    "偶尔尝试独立游戏，发现不一样的游戏体验！🔍",
	},
	"Action": {
		High:   "动作游戏大师！你在动作游戏中展现了出色的操作技巧和反应速度！💪",
		Medium: "享受动作游戏带来的爽快战斗体验！⚔️",
		Low:    "偶尔玩玩动作游戏，释放一下压力！💥",
	},
	"Adventure": {
		High:   "冒险家！你热爱探索未知的世界，每个游戏都是新的冒险！🗺️",
		Medium: "喜欢冒险游戏的探索元素，享受发现秘密的乐趣！🔍",
		Low:    "偶尔来场冒险，体验不同的游戏世界！🌄",
	},
	GenreOther: {
		High:   "多元化玩家！你的游戏品味非常广泛，各种类型的游戏都能享受！🎮",
		Medium: "游戏口味多样，不拘泥于特定类型！🌈",
		Low:    "还在探索中，寻找最适合自己的游戏类型！🔍",
	},
}

// GamingStyle classifies the dominant genre's share of total playtime
// into a fixed per-genre style comment. Thresholds are inclusive: 40%
// and up is "high", 20% and up is "medium".
func GamingStyle(tally *GenreTally, totalPlaytimeMinutes int) string {
	if tally == nil || tally.Len() == 0 || totalPlaytimeMinutes <= 0 {
		return emptyLibraryStyle
	}

	topGenre, topMinutes := tally.Top()
	percentage := float64(topMinutes) / float64(totalPlaytimeMinutes) * 100

	comments, ok := styleTable[topGenre]
	if !ok {
		comments = styleTable[GenreOther]
	}

	switch {
	case percentage >= 40:
		return comments.High
	case percentage >= 20:
		return comments.Medium
	default:
		return comments.Low
	}
}
