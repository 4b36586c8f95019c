package analyzer

import (
	"math"
	"strings"

	"github.com/MikeSquared-Agency/chemi/internal/transcript"
)

// Positive-affect lexicon. Each distinct entry found in a message adds a fixed
// amount to that message's warmth contribution.
var warmthWords = []string{
	"좋아", "사랑", "고마워", "감사", "행복", "최고", "대박", "귀여", "예쁘", "멋지",
	"좋다", "좋은", "짱", "화이팅", "응원", "보고싶", "그리워", "축하", "잘했",
}

// warmthScore averages a bounded per-message score over all of a participant's
// messages and scales it to 0–100. Each message contributes at most 50 points:
// laugh runs (ㅋ capped 20, ㅎ capped 15), hearts (10 each), exclamation marks
// (capped 15), lexicon hits (8 per distinct entry) and emoji runs (2 each,
// capped 10).
func warmthScore(msgs []transcript.Message) int {
	if len(msgs) == 0 {
		return 0
	}

	total := 0.0
	for _, m := range msgs {
		text := m.Content
		s := 0.0

		if k := strings.Count(text, "ㅋ"); k >= 2 {
			s += math.Min(float64(k*3), 20)
		}
		if h := strings.Count(text, "ㅎ"); h >= 2 {
			s += math.Min(float64(h*3), 15)
		}

		hearts := 0
		for _, r := range text {
			if r == '❤' || r == '♥' || r == 0xFE0F {
				hearts++
			}
		}
		s += float64(hearts * 10)

		s += math.Min(float64(strings.Count(text, "!")*5), 15)

		for _, w := range warmthWords {
			if strings.Contains(text, w) {
				s += 8
			}
		}

		s += math.Min(float64(len(transcript.ExtractEmojis(text))*2), 10)

		total += math.Min(s, 50)
	}

	score := math.Round(total / float64(len(msgs)) / 20 * 100)
	if score > 100 {
		score = 100
	}
	return int(score)
}
