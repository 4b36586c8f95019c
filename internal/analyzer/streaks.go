package analyzer

import (
	"sort"
	"time"

	"github.com/MikeSquared-Agency/chemi/internal/transcript"
)

// streaks computes the longest run of consecutive active calendar days and the
// run ending at the most recent active day. "Current" is relative to the
// transcript's own last active day, not to wall-clock time.
func streaks(msgs []transcript.Message) (longest, current int) {
	if len(msgs) == 0 {
		return 0, 0
	}

	daySet := make(map[time.Time]struct{})
	for _, m := range msgs {
		y, mo, d := m.Timestamp.Date()
		daySet[time.Date(y, mo, d, 0, 0, 0, 0, time.UTC)] = struct{}{}
	}

	days := make([]time.Time, 0, len(daySet))
	for d := range daySet {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	longest, run := 1, 1
	for i := 1; i < len(days); i++ {
		if days[i].Sub(days[i-1]) <= 24*time.Hour {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}

	current = 1
	for i := len(days) - 1; i >= 1; i-- {
		if days[i].Sub(days[i-1]) > 24*time.Hour {
			break
		}
		current++
	}
	return longest, current
}
