package analyzer

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/MikeSquared-Agency/chemi/internal/transcript"
)

// formatBLine renders ts/sender/content as an export line the parser accepts.
func formatBLine(ts time.Time, sender, content string) string {
	meridiem := "오전"
	display := ts.Hour()
	switch {
	case display == 0:
		display = 12
	case display == 12:
		meridiem = "오후"
	case display > 12:
		meridiem = "오후"
		display -= 12
	}
	return fmt.Sprintf("%d년 %d월 %d일 %s %d:%02d, %s : %s",
		ts.Year(), int(ts.Month()), ts.Day(), meridiem, display, ts.Minute(), sender, content)
}

// alternatingTranscript builds n messages one minute apart, senders taking
// strict turns starting with 철수.
func alternatingTranscript(n int, start time.Time) string {
	senders := []string{"철수", "영희"}
	lines := make([]string, n)
	for i := 0; i < n; i++ {
		lines[i] = formatBLine(start.Add(time.Duration(i)*time.Minute), senders[i%2], fmt.Sprintf("메시지 %d", i))
	}
	return strings.Join(lines, "\n")
}

func TestAnalyze_AlternatingConversation(t *testing.T) {
	start := time.Date(2026, 2, 20, 13, 0, 0, 0, time.UTC)
	msgs := transcript.Parse(alternatingTranscript(60, start))
	if len(msgs) != 60 {
		t.Fatalf("parsed %d messages, want 60", len(msgs))
	}

	res := Analyze(msgs)

	if res.ConversationCount != 1 {
		t.Errorf("conversation count = %d, want 1", res.ConversationCount)
	}
	if len(res.Participants) != 2 {
		t.Fatalf("participants = %v, want 2", res.Participants)
	}
	// Sorted name order.
	if res.Participants[0] != "영희" || res.Participants[1] != "철수" {
		t.Errorf("participants = %v, want [영희 철수]", res.Participants)
	}

	cheolsu := res.Stats["철수"]
	yeonghui := res.Stats["영희"]

	if cheolsu.TotalMessages != 30 || yeonghui.TotalMessages != 30 {
		t.Errorf("message counts = %d/%d, want 30/30", cheolsu.TotalMessages, yeonghui.TotalMessages)
	}

	// 철수 opened the only conversation.
	if cheolsu.FirstContactCount != 1 || cheolsu.FirstContactRate != 1 {
		t.Errorf("철수 first contact = %d (rate %v), want 1 (rate 1)", cheolsu.FirstContactCount, cheolsu.FirstContactRate)
	}
	if yeonghui.FirstContactCount != 0 {
		t.Errorf("영희 first contact = %d, want 0", yeonghui.FirstContactCount)
	}

	// Every reply lands exactly one minute after the other sender.
	if yeonghui.AvgResponseTimeMs != 60000 {
		t.Errorf("영희 avg response = %d ms, want 60000", yeonghui.AvgResponseTimeMs)
	}
	if yeonghui.MedianResponseTimeMs != 60000 {
		t.Errorf("영희 median response = %d ms, want 60000", yeonghui.MedianResponseTimeMs)
	}
	if cheolsu.AvgResponseTimeMs != 60000 {
		t.Errorf("철수 avg response = %d ms, want 60000", cheolsu.AvgResponseTimeMs)
	}

	// All messages fall on 2026-02-20 (a Friday) between 13:00 and 13:59.
	if cheolsu.HourlyDistribution[13] != 30 {
		t.Errorf("hourly[13] = %d, want 30", cheolsu.HourlyDistribution[13])
	}
	if cheolsu.DailyDistribution[4] != 30 {
		t.Errorf("daily[friday] = %d, want 30", cheolsu.DailyDistribution[4])
	}
	if cheolsu.MonthlyDistribution[1] != 30 {
		t.Errorf("monthly[february] = %d, want 30", cheolsu.MonthlyDistribution[1])
	}
	if cheolsu.LateNightRate != 0 {
		t.Errorf("late night rate = %v, want 0", cheolsu.LateNightRate)
	}
	if cheolsu.LongestStreak != 1 || cheolsu.CurrentStreak != 1 {
		t.Errorf("streaks = %d/%d, want 1/1", cheolsu.LongestStreak, cheolsu.CurrentStreak)
	}
}

func TestAnalyze_FirstContactConservation(t *testing.T) {
	start := time.Date(2026, 2, 20, 13, 0, 0, 0, time.UTC)
	var lines []string
	// Three conversations separated by six-hour gaps, openers alternating.
	for c := 0; c < 3; c++ {
		base := start.Add(time.Duration(c) * 6 * time.Hour)
		opener := []string{"철수", "영희"}[c%2]
		lines = append(lines,
			formatBLine(base, opener, "첫 마디"),
			formatBLine(base.Add(time.Minute), "영희", "답장"),
		)
	}

	res := Analyze(transcript.Parse(strings.Join(lines, "\n")))
	if res.ConversationCount != 3 {
		t.Fatalf("conversation count = %d, want 3", res.ConversationCount)
	}

	sum := 0
	for _, name := range res.Participants {
		sum += res.Stats[name].FirstContactCount
	}
	if sum != res.ConversationCount {
		t.Errorf("sum of first contacts = %d, want %d", sum, res.ConversationCount)
	}
}

func TestAnalyze_ResponseGapBounds(t *testing.T) {
	start := time.Date(2026, 2, 20, 13, 0, 0, 0, time.UTC)
	msgs := []transcript.Message{
		{Timestamp: start, Sender: "철수", Content: "안녕"},
		// Same-timestamp reply: zero gap is not a response.
		{Timestamp: start, Sender: "영희", Content: "안녕"},
		{Timestamp: start.Add(10 * time.Minute), Sender: "철수", Content: "뭐해"},
		// One-hour gap is already a non-response.
		{Timestamp: start.Add(70 * time.Minute), Sender: "영희", Content: "일해"},
		{Timestamp: start.Add(80 * time.Minute), Sender: "철수", Content: "고생"},
		// The only countable response: 5 minutes.
		{Timestamp: start.Add(85 * time.Minute), Sender: "영희", Content: "고마워"},
	}

	res := Analyze(msgs)
	y := res.Stats["영희"]
	if y.AvgResponseTimeMs != 5*60*1000 {
		t.Errorf("avg response = %d ms, want %d", y.AvgResponseTimeMs, 5*60*1000)
	}
}

func TestAnalyze_ConsecutiveSameSenderNotAResponse(t *testing.T) {
	start := time.Date(2026, 2, 20, 13, 0, 0, 0, time.UTC)
	msgs := []transcript.Message{
		{Timestamp: start, Sender: "철수", Content: "안녕"},
		{Timestamp: start.Add(time.Minute), Sender: "철수", Content: "자니"},
		{Timestamp: start.Add(2 * time.Minute), Sender: "철수", Content: "바쁜가"},
	}

	res := Analyze(msgs)
	if got := res.Stats["철수"].AvgResponseTimeMs; got != 0 {
		t.Errorf("avg response = %d ms, want 0 for a monologue", got)
	}
}

func TestAnalyze_ContentStats(t *testing.T) {
	start := time.Date(2026, 2, 20, 13, 0, 0, 0, time.UTC)
	mk := func(i int, content string) transcript.Message {
		m := transcript.Message{Timestamp: start.Add(time.Duration(i) * time.Minute), Sender: "철수", Content: content}
		m.Length = len([]rune(content))
		return m
	}
	msgs := []transcript.Message{
		mk(0, "오늘 저녁 먹었어?"),
		mk(1, "치킨 최고!"),
		mk(2, "진짜 배부르다ㅋㅋㅋ"),
		mk(3, "치킨 또 먹고 싶네"),
	}

	res := Analyze(msgs)
	s := res.Stats["철수"]

	if s.QuestionRate != 0.25 {
		t.Errorf("question rate = %v, want 0.25", s.QuestionRate)
	}
	if s.ExclamationRate != 0.25 {
		t.Errorf("exclamation rate = %v, want 0.25", s.ExclamationRate)
	}
	if s.LaughRate != 0.25 {
		t.Errorf("laugh rate = %v, want 0.25", s.LaughRate)
	}

	// 치킨 appears twice and should lead the word table.
	if len(s.TopWords) == 0 || s.TopWords[0].Word != "치킨" || s.TopWords[0].Count != 2 {
		t.Errorf("top words = %+v, want 치킨 ×2 first", s.TopWords)
	}
}

func TestAnalyze_TopEmojiTieOrder(t *testing.T) {
	start := time.Date(2026, 2, 20, 13, 0, 0, 0, time.UTC)
	msgs := []transcript.Message{
		{Timestamp: start, Sender: "철수", Content: "좋아 😀"},
		{Timestamp: start.Add(time.Minute), Sender: "철수", Content: "그래 😂"},
	}

	res := Analyze(msgs)
	top := res.Stats["철수"].TopEmojis
	if len(top) != 2 {
		t.Fatalf("top emojis = %+v, want 2 entries", top)
	}
	// Equal counts keep first-seen order.
	if top[0].Emoji != "😀" || top[1].Emoji != "😂" {
		t.Errorf("tie order = %q then %q, want 😀 then 😂", top[0].Emoji, top[1].Emoji)
	}
}

func TestAnalyze_MediaCounts(t *testing.T) {
	start := time.Date(2026, 2, 20, 13, 0, 0, 0, time.UTC)
	msgs := []transcript.Message{
		{Timestamp: start, Sender: "철수", Content: "사진", IsPhoto: true},
		{Timestamp: start.Add(time.Minute), Sender: "철수", Content: "동영상", IsVideo: true},
		{Timestamp: start.Add(2 * time.Minute), Sender: "철수", Content: "이모티콘", IsEmoji: true},
	}

	res := Analyze(msgs)
	s := res.Stats["철수"]
	if s.PhotoCount != 1 || s.VideoCount != 1 {
		t.Errorf("media counts = photo %d video %d, want 1/1", s.PhotoCount, s.VideoCount)
	}
	if want := round3(1.0 / 3.0); s.EmojiRate != want {
		t.Errorf("emoji rate = %v, want %v", s.EmojiRate, want)
	}
}

func TestAnalyze_LengthStats(t *testing.T) {
	start := time.Date(2026, 2, 20, 13, 0, 0, 0, time.UTC)
	msgs := []transcript.Message{
		{Timestamp: start, Sender: "철수", Content: "아아", Length: 2},
		{Timestamp: start.Add(time.Minute), Sender: "철수", Content: "아아아아", Length: 4},
		{Timestamp: start.Add(2 * time.Minute), Sender: "철수", Content: "아아아아아아아아아", Length: 9},
	}

	res := Analyze(msgs)
	s := res.Stats["철수"]
	if s.AvgMessageLength != 5.0 {
		t.Errorf("avg length = %v, want 5.0", s.AvgMessageLength)
	}
	if s.MedianMessageLength != 4 {
		t.Errorf("median length = %v, want 4", s.MedianMessageLength)
	}
}

func TestAnalyze_EmptyInput(t *testing.T) {
	res := Analyze(nil)
	if len(res.Participants) != 0 {
		t.Errorf("participants = %v, want none", res.Participants)
	}
	if res.ConversationCount != 0 {
		t.Errorf("conversation count = %d, want 0", res.ConversationCount)
	}
	if len(res.Stats) != 0 {
		t.Errorf("stats = %v, want empty", res.Stats)
	}
}

func TestEmptyStats_InitializedSlices(t *testing.T) {
	s := emptyStats("철수")
	if len(s.HourlyDistribution) != 24 || len(s.DailyDistribution) != 7 || len(s.MonthlyDistribution) != 12 {
		t.Errorf("distribution sizes = %d/%d/%d, want 24/7/12",
			len(s.HourlyDistribution), len(s.DailyDistribution), len(s.MonthlyDistribution))
	}
	if s.TopEmojis == nil || s.TopWords == nil {
		t.Error("top tables must be non-nil")
	}
}

func TestIsoWeekday(t *testing.T) {
	tests := []struct {
		day  int // February 2026
		want int
	}{
		{16, 0}, // Monday
		{20, 4}, // Friday
		{22, 6}, // Sunday
	}
	for _, tt := range tests {
		ts := time.Date(2026, 2, tt.day, 12, 0, 0, 0, time.UTC)
		if got := isoWeekday(ts); got != tt.want {
			t.Errorf("isoWeekday(2026-02-%02d) = %d, want %d", tt.day, got, tt.want)
		}
	}
}

func TestMedian(t *testing.T) {
	tests := []struct {
		name string
		in   []float64
		want float64
	}{
		{"empty", nil, 0},
		{"odd", []float64{3, 1, 2}, 2},
		{"even", []float64{4, 1, 3, 2}, 2.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := median(tt.in); got != tt.want {
				t.Errorf("median(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
