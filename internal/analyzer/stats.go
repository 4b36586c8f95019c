// Package analyzer turns an ordered message sequence into a conversation
// partition and per-participant behavioral statistics. Everything here is pure
// arithmetic over the parse result; a participant with no messages yields a
// zero-valued record, never an error.
package analyzer

import (
	"math"
	"regexp"
	"sort"
	"strings"
	"time"
	"unicode"

	"github.com/MikeSquared-Agency/chemi/internal/transcript"
)

// MaxResponseGap is the largest gap still counted as a response.
const MaxResponseGap = time.Hour

var laughRun = regexp.MustCompile(`ㅋ{2,}|ㅎ{2,}`)

// EmojiCount is one entry in a participant's emoji frequency table.
type EmojiCount struct {
	Emoji string `json:"emoji"`
	Count int    `json:"count"`
}

// WordCount is one entry in a participant's word frequency table.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// ParticipantStats aggregates one sender's behavior over the full transcript.
// Computed once per analysis run and immutable afterwards.
type ParticipantStats struct {
	Name                 string       `json:"name"`
	TotalMessages        int          `json:"total_messages"`
	AvgMessageLength     float64      `json:"avg_message_length"`
	MedianMessageLength  float64      `json:"median_message_length"`
	EmojiRate            float64      `json:"emoji_rate"`
	PhotoCount           int          `json:"photo_count"`
	VideoCount           int          `json:"video_count"`
	FirstContactCount    int          `json:"first_contact_count"`
	FirstContactRate     float64      `json:"first_contact_rate"`
	AvgResponseTimeMs    int64        `json:"avg_response_time_ms"`
	MedianResponseTimeMs int64        `json:"median_response_time_ms"`
	HourlyDistribution   []int        `json:"hourly_distribution"`
	DailyDistribution    []int        `json:"daily_distribution"`
	MonthlyDistribution  []int        `json:"monthly_distribution"`
	LongestStreak        int          `json:"longest_streak"`
	CurrentStreak        int          `json:"current_streak"`
	TopEmojis            []EmojiCount `json:"top_emojis"`
	TopWords             []WordCount  `json:"top_words"`
	LateNightRate        float64      `json:"late_night_rate"`
	WarmthScore          int          `json:"warmth_score"`
	QuestionRate         float64      `json:"question_rate"`
	ExclamationRate      float64      `json:"exclamation_rate"`
	LaughRate            float64      `json:"laugh_rate"`
}

// Result is the analyzer's output for one transcript.
type Result struct {
	Participants      []string                    `json:"participants"`
	Stats             map[string]ParticipantStats `json:"stats"`
	ConversationCount int                         `json:"conversation_count"`
}

// Analyze computes the conversation partition and one stats record per
// distinct sender. Participants are returned in sorted name order.
func Analyze(messages []transcript.Message) Result {
	seen := make(map[string]struct{})
	var participants []string
	for _, m := range messages {
		if _, ok := seen[m.Sender]; !ok {
			seen[m.Sender] = struct{}{}
			participants = append(participants, m.Sender)
		}
	}
	sort.Strings(participants)

	convs := Segment(messages)

	firstContact := make(map[string]int, len(participants))
	for _, c := range convs {
		firstContact[c.FirstSender]++
	}

	byParticipant := make(map[string][]transcript.Message, len(participants))
	for _, m := range messages {
		byParticipant[m.Sender] = append(byParticipant[m.Sender], m)
	}

	stats := make(map[string]ParticipantStats, len(participants))
	for _, name := range participants {
		stats[name] = participantStats(name, byParticipant[name], messages, firstContact[name], len(convs))
	}

	return Result{Participants: participants, Stats: stats, ConversationCount: len(convs)}
}

func participantStats(name string, msgs, all []transcript.Message, firstContactCount, conversationCount int) ParticipantStats {
	total := len(msgs)
	if total == 0 {
		return emptyStats(name)
	}

	lengths := make([]float64, total)
	var lengthSum float64
	for i, m := range msgs {
		lengths[i] = float64(m.Length)
		lengthSum += lengths[i]
	}

	emojiMsgs := 0
	photoCount, videoCount := 0, 0
	lateNight := 0
	questions, exclamations, laughs := 0, 0, 0
	hourly := make([]int, 24)
	daily := make([]int, 7)
	monthly := make([]int, 12)

	emojiCounts := make(map[string]int)
	var emojiOrder []string
	wordCounts := make(map[string]int)
	var wordOrder []string

	for _, m := range msgs {
		if m.IsEmoji || len(transcript.ExtractEmojis(m.Content)) > 0 {
			emojiMsgs++
		}
		if m.IsPhoto {
			photoCount++
		}
		if m.IsVideo {
			videoCount++
		}

		h := m.Timestamp.Hour()
		hourly[h]++
		if h < 5 {
			lateNight++
		}
		daily[isoWeekday(m.Timestamp)]++
		monthly[int(m.Timestamp.Month())-1]++

		trimmed := strings.TrimRightFunc(m.Content, unicode.IsSpace)
		if strings.HasSuffix(trimmed, "?") {
			questions++
		}
		if strings.HasSuffix(trimmed, "!") {
			exclamations++
		}
		if laughRun.MatchString(m.Content) {
			laughs++
		}

		for _, e := range transcript.ExtractEmojis(m.Content) {
			if _, ok := emojiCounts[e]; !ok {
				emojiOrder = append(emojiOrder, e)
			}
			emojiCounts[e]++
		}
		for _, w := range tokenize(m.Content) {
			if _, ok := wordCounts[w]; !ok {
				wordOrder = append(wordOrder, w)
			}
			wordCounts[w]++
		}
	}

	firstContactRate := 0.0
	if conversationCount > 0 {
		firstContactRate = float64(firstContactCount) / float64(conversationCount)
	}

	responses := responseTimes(all, name)
	avgResponse := 0.0
	if len(responses) > 0 {
		var sum float64
		for _, r := range responses {
			sum += r
		}
		avgResponse = sum / float64(len(responses))
	}

	longest, current := streaks(msgs)
	ftotal := float64(total)

	return ParticipantStats{
		Name:                 name,
		TotalMessages:        total,
		AvgMessageLength:     math.Round(lengthSum/ftotal*10) / 10,
		MedianMessageLength:  median(lengths),
		EmojiRate:            round3(float64(emojiMsgs) / ftotal),
		PhotoCount:           photoCount,
		VideoCount:           videoCount,
		FirstContactCount:    firstContactCount,
		FirstContactRate:     round3(firstContactRate),
		AvgResponseTimeMs:    int64(math.Round(avgResponse)),
		MedianResponseTimeMs: int64(math.Round(median(responses))),
		HourlyDistribution:   hourly,
		DailyDistribution:    daily,
		MonthlyDistribution:  monthly,
		LongestStreak:        longest,
		CurrentStreak:        current,
		TopEmojis:            topEmojis(emojiCounts, emojiOrder, 10),
		TopWords:             topWords(wordCounts, wordOrder, 15),
		LateNightRate:        round3(float64(lateNight) / ftotal),
		WarmthScore:          warmthScore(msgs),
		QuestionRate:         round3(float64(questions) / ftotal),
		ExclamationRate:      round3(float64(exclamations) / ftotal),
		LaughRate:            round3(float64(laughs) / ftotal),
	}
}

// responseTimes collects gaps in milliseconds for every message by name that
// directly follows a different sender, keeping only gaps strictly between zero
// and MaxResponseGap.
func responseTimes(all []transcript.Message, name string) []float64 {
	var out []float64
	for i := 1; i < len(all); i++ {
		prev, curr := all[i-1], all[i]
		if curr.Sender != name || prev.Sender == name {
			continue
		}
		gap := curr.Timestamp.Sub(prev.Timestamp)
		if gap > 0 && gap < MaxResponseGap {
			out = append(out, float64(gap.Milliseconds()))
		}
	}
	return out
}

// topEmojis ranks by descending count; ties keep first-seen order from the
// counting pass (stable sort over the insertion-ordered keys).
func topEmojis(counts map[string]int, order []string, n int) []EmojiCount {
	entries := make([]EmojiCount, 0, len(order))
	for _, e := range order {
		entries = append(entries, EmojiCount{Emoji: e, Count: counts[e]})
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Count > entries[j].Count })
	if len(entries) > n {
		entries = entries[:n]
	}
	return entries
}

func topWords(counts map[string]int, order []string, n int) []WordCount {
	entries := make([]WordCount, 0, len(order))
	for _, w := range order {
		entries = append(entries, WordCount{Word: w, Count: counts[w]})
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Count > entries[j].Count })
	if len(entries) > n {
		entries = entries[:n]
	}
	return entries
}

// isoWeekday maps time.Weekday to Monday=0 … Sunday=6.
func isoWeekday(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

func median(v []float64) float64 {
	if len(v) == 0 {
		return 0
	}
	s := append([]float64(nil), v...)
	sort.Float64s(s)
	mid := len(s) / 2
	if len(s)%2 != 0 {
		return s[mid]
	}
	return (s[mid-1] + s[mid]) / 2
}

func round3(x float64) float64 {
	return math.Round(x*1000) / 1000
}

func emptyStats(name string) ParticipantStats {
	return ParticipantStats{
		Name:                name,
		HourlyDistribution:  make([]int, 24),
		DailyDistribution:   make([]int, 7),
		MonthlyDistribution: make([]int, 12),
		TopEmojis:           []EmojiCount{},
		TopWords:            []WordCount{},
	}
}
