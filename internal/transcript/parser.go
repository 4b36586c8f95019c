// Package transcript reconstructs ordered messages from a KakaoTalk plain-text
// chat export. The export comes in one of three line layouts; the parser keys
// each line against them in a fixed precedence order, folds unmatched lines
// into the previous message, and never fails — malformed input degrades to a
// shorter (possibly empty) message sequence.
package transcript

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// Parse converts a decoded export into its ordered, system-filtered message
// sequence. Relative order among equal timestamps is preserved.
func Parse(text string) []Message {
	var messages []Message
	var date heldDate
	last := -1 // index of the most recent message, continuation target

	for _, line := range splitLines(text) {
		if strings.TrimSpace(line) == "" {
			continue
		}

		if g := dateHeader.FindStringSubmatch(line); g != nil {
			date = heldDate{year: atoi(g[1]), month: atoi(g[2]), day: atoi(g[3]), valid: true}
			continue
		}

		if idx, ok := matchMessageLine(line, date, &messages); ok {
			last = idx
			continue
		}

		if isBoilerplate(line) {
			continue
		}

		// Unmatched lines belong to the previous message. With no previous
		// message the line is dropped; that is the recovery policy, not an
		// error.
		if last >= 0 && !messages[last].IsSystem {
			m := &messages[last]
			m.Content += "\n" + line
			m.IsEmoji = isEmojiOrSticker(m.Content)
			m.Length = utf8.RuneCountInString(m.Content)
		}
	}

	users := make([]Message, 0, len(messages))
	for _, m := range messages {
		if !m.IsSystem {
			users = append(users, m)
		}
	}

	sort.SliceStable(users, func(i, j int) bool {
		return users[i].Timestamp.Before(users[j].Timestamp)
	})
	return users
}

// matchMessageLine tries each line format in precedence order, appending the
// built message on success and returning its index.
func matchMessageLine(line string, date heldDate, messages *[]Message) (int, bool) {
	for _, f := range lineFormats {
		g := f.re.FindStringSubmatch(line)
		if g == nil {
			continue
		}
		msg, ok := f.build(g, date)
		if !ok {
			// Matched a layout but no usable date; treated as unmatched.
			return 0, false
		}
		*messages = append(*messages, msg)
		return len(*messages) - 1, true
	}
	return 0, false
}

func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}
