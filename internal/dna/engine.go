// Package dna maps per-participant statistics to a bounded six-axis profile
// and an archetype. The scoring model is a fixed deterministic formula; for
// two-participant chats the initiative and volume axes are normalized against
// the other participant to emphasize relative dominance.
package dna

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/MikeSquared-Agency/chemi/internal/analyzer"
)

// Axis is one named behavioral dimension, bounded to [0,100].
type Axis struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Value       int    `json:"value"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

// Profile is a participant's scored profile. Never mutated after creation.
type Profile struct {
	ParticipantName string    `json:"participant_name"`
	Axes            []Axis    `json:"axes"`
	Archetype       Archetype `json:"archetype"`
	Highlights      []string  `json:"highlights"`
	Color           string    `json:"color"`
	Score           int       `json:"score"`
}

// Generate builds one profile per participant from the analyzer's output.
func Generate(stats map[string]analyzer.ParticipantStats, participants []string) map[string]Profile {
	profiles := make(map[string]Profile, len(participants))
	twoPerson := len(participants) == 2
	totalDays := estimateTotalDays(stats, participants)

	for _, name := range participants {
		s := stats[name]

		initiative := int(math.Round(s.FirstContactRate * 100))
		if twoPerson {
			other := stats[otherParticipant(participants, name)]
			initiative = normalizeForTwo(s.FirstContactRate, other.FirstContactRate, 90)
		}

		speed := int(math.Round(responseTimeToScore(float64(s.AvgResponseTimeMs))))
		expression := expressionScore(s)
		nightOwl := nightOwlScore(s)

		volume := volumeScore(s, totalDays)
		if twoPerson {
			otherVolume := volumeScore(stats[otherParticipant(participants, name)], totalDays)
			if maxVol := maxInt(volume, otherVolume); maxVol > 0 {
				volume = int(math.Round(float64(volume) / float64(maxVol) * float64(minInt(volume, 100))))
				if volume < 10 {
					volume = 10
				}
			}
		}

		axes := []Axis{
			{ID: "initiative", Label: "주도성", Value: clampScore(initiative), Icon: "👑", Description: "먼저 연락하는 비율"},
			{ID: "speed", Label: "반응속도", Value: clampScore(speed), Icon: "⚡", Description: "평균 답장 속도"},
			{ID: "expression", Label: "표현력", Value: clampScore(expression), Icon: "🎨", Description: "이모지와 표현의 다양성"},
			{ID: "nightOwl", Label: "야행성", Value: clampScore(nightOwl), Icon: "🌙", Description: "새벽 대화 비율"},
			{ID: "volume", Label: "대화량", Value: clampScore(volume), Icon: "💬", Description: "일평균 메시지 수"},
			{ID: "warmth", Label: "감정온도", Value: clampScore(s.WarmthScore), Icon: "❤️", Description: "긍정적 표현의 정도"},
		}

		arch := matchArchetype(axes)

		sorted := append([]Axis(nil), axes...)
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Value > sorted[j].Value })
		highlights := make([]string, 0, 3)
		for _, a := range sorted[:3] {
			highlights = append(highlights, fmt.Sprintf("%s %d/100", a.Label, a.Value))
		}

		sum := 0
		for _, a := range axes {
			sum += a.Value
		}
		score := int(math.Round(float64(sum) / float64(len(axes))))

		profiles[name] = Profile{
			ParticipantName: name,
			Axes:            axes,
			Archetype:       arch,
			Highlights:      highlights,
			Color:           arch.Color,
			Score:           score,
		}
	}

	return profiles
}

// estimateTotalDays derives the per-day volume divisor from streaks and active
// months rather than the wall-clock date range, staying robust to sparse or
// bursty transcripts. At least 1.
func estimateTotalDays(stats map[string]analyzer.ParticipantStats, participants []string) int {
	totalDays := 1
	for _, name := range participants {
		if s := stats[name]; s.LongestStreak > totalDays {
			totalDays = s.LongestStreak
		}
	}
	for _, name := range participants {
		activeMonths := 0
		for _, n := range stats[name].MonthlyDistribution {
			if n > 0 {
				activeMonths++
			}
		}
		if estimated := activeMonths * 30; activeMonths > 0 && estimated > totalDays {
			totalDays = estimated
		}
	}
	return totalDays
}

// responseTimeToScore maps average response latency to [10,100], piecewise
// linear between the breakpoints 30s/1m/5m/15m/30m/1h. No latency sample gets
// a neutral 50.
func responseTimeToScore(avgMs float64) float64 {
	if avgMs <= 0 {
		return 50
	}
	sec := avgMs / 1000
	switch {
	case sec <= 30:
		return 100
	case sec <= 60:
		return 100 - (sec-30)/30*15
	case sec <= 300:
		return 85 - (sec-60)/240*15
	case sec <= 900:
		return 70 - (sec-300)/600*20
	case sec <= 1800:
		return 50 - (sec-900)/900*20
	case sec <= 3600:
		return 30 - (sec-1800)/1800*20
	}
	return 10
}

// expressionScore sums three capped components: emoji rate (≤40), mean/median
// length spread (≤30) and exclamation rate (≤30).
func expressionScore(s analyzer.ParticipantStats) int {
	emoji := math.Min(s.EmojiRate*100, 40)

	variety := 0.0
	if s.AvgMessageLength > 0 {
		ratio := math.Abs(s.AvgMessageLength-s.MedianMessageLength) / s.AvgMessageLength
		variety = math.Min(ratio*100, 30)
	}

	excl := math.Min(s.ExclamationRate*100, 30)

	return int(math.Round(math.Min(100, emoji+variety+excl)))
}

// nightOwlScore weights hours 0–4 fully and 22–23 at half, scaled ×333.
func nightOwlScore(s analyzer.ParticipantStats) int {
	if s.TotalMessages == 0 {
		return 0
	}
	deepNight := 0
	for h := 0; h < 5; h++ {
		deepNight += s.HourlyDistribution[h]
	}
	lateEvening := s.HourlyDistribution[22] + s.HourlyDistribution[23]

	ratio := (float64(deepNight) + float64(lateEvening)*0.5) / float64(s.TotalMessages)
	return int(math.Round(math.Min(100, ratio*333)))
}

// volumeScore buckets the per-day message average into five linear segments
// with breakpoints at 5/15/30/50 messages per day.
func volumeScore(s analyzer.ParticipantStats, totalDays int) int {
	if totalDays <= 0 {
		return 20
	}
	d := float64(s.TotalMessages) / float64(totalDays)
	switch {
	case d < 5:
		return int(math.Round(20 * d / 5))
	case d < 15:
		return int(math.Round(20 + 20*(d-5)/10))
	case d < 30:
		return int(math.Round(40 + 20*(d-15)/15))
	case d < 50:
		return int(math.Round(60 + 20*(d-30)/20))
	}
	return minInt(100, int(math.Round(80+20*(d-50)/50)))
}

// normalizeForTwo rescales a rate so the larger of the pair maps to base and
// the other proportionally. Both zero yields the neutral 50.
func normalizeForTwo(value, otherValue, base float64) int {
	maxVal := math.Max(value, otherValue)
	if maxVal <= 0 {
		return 50
	}
	return int(math.Round(math.Min(100, value / maxVal * base)))
}

// matchArchetype sums each archetype's (possibly inverted) axis values and
// picks the strictly greatest; ties resolve to the earlier table entry.
func matchArchetype(axes []Axis) Archetype {
	vals := make(map[string]int, len(axes))
	for _, a := range axes {
		vals[a.ID] = a.Value
	}

	bestID := "ping-pong"
	bestScore := math.Inf(-1)
	for _, w := range archetypeWeights {
		score := 0
		for _, trait := range w.axes {
			if base, ok := strings.CutSuffix(trait, "-inverse"); ok {
				score += 100 - axisValue(vals, base)
			} else {
				score += axisValue(vals, trait)
			}
		}
		if float64(score) > bestScore {
			bestScore = float64(score)
			bestID = w.id
		}
	}
	return archetypeByID(bestID)
}

func axisValue(vals map[string]int, id string) int {
	if v, ok := vals[id]; ok {
		return v
	}
	return 50
}

func otherParticipant(participants []string, name string) string {
	for _, p := range participants {
		if p != name {
			return p
		}
	}
	return name
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
