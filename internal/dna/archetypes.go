package dna

// Archetype is one of the fixed personality categories a profile resolves to.
type Archetype struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Emoji       string   `json:"emoji"`
	Description string   `json:"description"`
	Traits      []string `json:"traits"`
	Color       string   `json:"color"`
	Gradient    string   `json:"gradient"`
}

// Archetypes holds the display data for every archetype. Declaration order
// matters: the first entry doubles as the lookup fallback.
var Archetypes = []Archetype{
	{
		ID:          "instant-replier",
		Name:        "즉답러",
		Emoji:       "⚡",
		Description: "메시지가 도착하는 순간 답장이 날아갑니다",
		Traits:      []string{"빠른 반응", "높은 대화량"},
		Color:       "#facc15",
		Gradient:    "linear-gradient(135deg, #facc15, #f97316)",
	},
	{
		ID:          "night-owl",
		Name:        "새벽감성러",
		Emoji:       "🌙",
		Description: "밤이 깊어질수록 대화가 피어납니다",
		Traits:      []string{"야행성", "풍부한 표현"},
		Color:       "#818cf8",
		Gradient:    "linear-gradient(135deg, #818cf8, #6366f1)",
	},
	{
		ID:          "emoji-bomber",
		Name:        "이모지 폭격기",
		Emoji:       "💣",
		Description: "말보다 이모지가 먼저 나가는 타입",
		Traits:      []string{"표현력", "따뜻함"},
		Color:       "#fb7185",
		Gradient:    "linear-gradient(135deg, #fb7185, #f43f5e)",
	},
	{
		ID:          "essay-writer",
		Name:        "장문러",
		Emoji:       "📝",
		Description: "하고 싶은 말은 끝까지 다 적어야 직성이 풀립니다",
		Traits:      []string{"표현력", "높은 대화량"},
		Color:       "#34d399",
		Gradient:    "linear-gradient(135deg, #34d399, #10b981)",
	},
	{
		ID:          "slow-reader",
		Name:        "느긋한 답장러",
		Emoji:       "🐢",
		Description: "읽고, 생각하고, 천천히 답합니다",
		Traits:      []string{"여유", "신중함"},
		Color:       "#94a3b8",
		Gradient:    "linear-gradient(135deg, #94a3b8, #64748b)",
	},
	{
		ID:          "ping-pong",
		Name:        "티키타카 장인",
		Emoji:       "🏓",
		Description: "주고받는 호흡이 끊이지 않는 대화의 랠리스트",
		Traits:      []string{"높은 대화량", "빠른 반응"},
		Color:       "#38bdf8",
		Gradient:    "linear-gradient(135deg, #38bdf8, #0ea5e9)",
	},
	{
		ID:          "reaction-fairy",
		Name:        "리액션 요정",
		Emoji:       "🧚",
		Description: "어떤 말에도 풍성한 리액션이 돌아옵니다",
		Traits:      []string{"따뜻함", "표현력"},
		Color:       "#f9a8d4",
		Gradient:    "linear-gradient(135deg, #f9a8d4, #ec4899)",
	},
	{
		ID:          "conversation-leader",
		Name:        "대화 주도자",
		Emoji:       "👑",
		Description: "대화의 시작은 언제나 이 사람입니다",
		Traits:      []string{"주도성", "높은 대화량"},
		Color:       "#fbbf24",
		Gradient:    "linear-gradient(135deg, #fbbf24, #d97706)",
	},
}

// archetypeWeights maps each archetype to the axes it rewards, in the fixed
// order used for deterministic tie-breaking. An axis id suffixed "-inverse"
// rewards 100 minus the axis value.
var archetypeWeights = []struct {
	id   string
	axes []string
}{
	{"instant-replier", []string{"speed", "volume"}},
	{"night-owl", []string{"nightOwl", "expression"}},
	{"emoji-bomber", []string{"expression", "warmth"}},
	{"essay-writer", []string{"expression", "volume"}},
	{"slow-reader", []string{"speed-inverse", "initiative-inverse"}},
	{"ping-pong", []string{"volume", "speed"}},
	{"reaction-fairy", []string{"warmth", "expression"}},
	{"conversation-leader", []string{"initiative", "volume"}},
}

func archetypeByID(id string) Archetype {
	for _, a := range Archetypes {
		if a.ID == id {
			return a
		}
	}
	return Archetypes[0]
}
