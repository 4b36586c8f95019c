package analysis

import (
	"fmt"
	"reflect"
	"strings"
	"testing"
	"time"
)

// sampleTranscript builds n export lines one minute apart, senders strictly
// alternating starting with 철수.
func sampleTranscript(n int) string {
	start := time.Date(2026, 2, 20, 13, 0, 0, 0, time.UTC)
	senders := []string{"철수", "영희"}
	contents := []string{"밥 먹었어?", "응 먹었지!", "치킨 어때ㅋㅋ", "좋아 😀"}

	lines := make([]string, n)
	for i := 0; i < n; i++ {
		ts := start.Add(time.Duration(i) * time.Minute)
		h := ts.Hour()
		meridiem, display := "오전", h
		if h >= 12 {
			meridiem = "오후"
			if h > 12 {
				display = h - 12
			}
		} else if h == 0 {
			display = 12
		}
		lines[i] = fmt.Sprintf("%d년 %d월 %d일 %s %d:%02d, %s : %s",
			ts.Year(), int(ts.Month()), ts.Day(), meridiem, display, ts.Minute(),
			senders[i%2], contents[i%len(contents)])
	}
	return strings.Join(lines, "\n")
}

func TestRun_EndToEnd(t *testing.T) {
	a := Run(sampleTranscript(60))

	if a.TotalMessages != 60 {
		t.Errorf("total messages = %d, want 60", a.TotalMessages)
	}
	if a.ConversationCount != 1 {
		t.Errorf("conversation count = %d, want 1", a.ConversationCount)
	}
	if len(a.Participants) != 2 {
		t.Fatalf("participants = %v, want 2", a.Participants)
	}

	// 59 minutes of range rounds to zero full days, floored to one.
	if a.TotalDays != 1 {
		t.Errorf("total days = %d, want 1", a.TotalDays)
	}
	if a.AvgMessagesPerDay != 60 {
		t.Errorf("avg messages per day = %d, want 60", a.AvgMessagesPerDay)
	}

	wantStart := time.Date(2026, 2, 20, 13, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2026, 2, 20, 13, 59, 0, 0, time.UTC)
	if !a.DateRange.Start.Equal(wantStart) || !a.DateRange.End.Equal(wantEnd) {
		t.Errorf("date range = %v..%v, want %v..%v", a.DateRange.Start, a.DateRange.End, wantStart, wantEnd)
	}

	// Stats and profiles cover every participant.
	sum := 0
	for _, name := range a.Participants {
		s, ok := a.Stats[name]
		if !ok {
			t.Fatalf("missing stats for %s", name)
		}
		sum += s.TotalMessages
		p, ok := a.Profiles[name]
		if !ok {
			t.Fatalf("missing profile for %s", name)
		}
		if len(p.Axes) != 6 {
			t.Errorf("%s axes = %d, want 6", name, len(p.Axes))
		}
		for _, ax := range p.Axes {
			if ax.Value < 0 || ax.Value > 100 {
				t.Errorf("%s axis %s = %d, out of range", name, ax.ID, ax.Value)
			}
		}
		if p.Archetype.ID == "" {
			t.Errorf("%s has no archetype", name)
		}
	}
	if sum != a.TotalMessages {
		t.Errorf("per-participant totals sum to %d, want %d", sum, a.TotalMessages)
	}

	// Strictly alternating one-minute replies.
	if got := a.Stats["영희"].AvgResponseTimeMs; got != 60000 {
		t.Errorf("영희 avg response = %d ms, want 60000", got)
	}
}

func TestRun_MultiDayRange(t *testing.T) {
	text := strings.Join([]string{
		"2026년 2월 20일 오후 1:00, 철수 : 첫날",
		"2026년 2월 23일 오후 1:00, 영희 : 나흘째",
	}, "\n")

	a := Run(text)
	if a.TotalDays != 3 {
		t.Errorf("total days = %d, want 3", a.TotalDays)
	}
	if a.AvgMessagesPerDay != 1 {
		t.Errorf("avg messages per day = %d, want 1", a.AvgMessagesPerDay)
	}
}

func TestRun_Deterministic(t *testing.T) {
	text := sampleTranscript(80)
	first := Run(text)
	second := Run(text)
	if !reflect.DeepEqual(first, second) {
		t.Error("identical input produced different analyses")
	}
}

func TestRun_EmptyInput(t *testing.T) {
	a := Run("")
	if a.TotalMessages != 0 || a.TotalDays != 0 || a.ConversationCount != 0 || a.AvgMessagesPerDay != 0 {
		t.Errorf("empty input produced non-zero summary: %+v", a)
	}
	if len(a.Participants) != 0 || len(a.Profiles) != 0 {
		t.Errorf("empty input produced participants: %+v", a)
	}
	if !a.DateRange.Start.IsZero() || !a.DateRange.End.IsZero() {
		t.Errorf("empty input produced a date range: %+v", a.DateRange)
	}
}

func TestRun_UnparseableInput(t *testing.T) {
	a := Run("이것은 카카오톡 내보내기가 아닙니다\n그냥 아무 텍스트입니다")
	if a.TotalMessages != 0 {
		t.Errorf("unparseable input yielded %d messages, want 0", a.TotalMessages)
	}
}
