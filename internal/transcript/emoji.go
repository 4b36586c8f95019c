package transcript

import (
	"strings"
	"unicode"
)

// isEmojiClassRune is the wide class used for emoji-only classification:
// pictographs, flags, dingbats, variation selectors, joiners, keycap and tag
// characters.
func isEmojiClassRune(r rune) bool {
	switch {
	case r >= 0x1F600 && r <= 0x1F64F,
		r >= 0x1F300 && r <= 0x1F5FF,
		r >= 0x1F680 && r <= 0x1F6FF,
		r >= 0x1F1E0 && r <= 0x1F1FF,
		r >= 0x2600 && r <= 0x26FF,
		r >= 0x2700 && r <= 0x27BF,
		r >= 0xFE00 && r <= 0xFE0F,
		r >= 0x1F900 && r <= 0x1F9FF,
		r >= 0x1FA00 && r <= 0x1FA6F,
		r >= 0x1FA70 && r <= 0x1FAFF,
		r == 0x200D,
		r == 0x20E3,
		r >= 0xE0020 && r <= 0xE007F:
		return true
	}
	return false
}

// isExtractRune is the narrower class used when pulling emoji out of content
// for frequency tables and warmth scoring.
func isExtractRune(r rune) bool {
	switch {
	case r >= 0x1F600 && r <= 0x1F64F,
		r >= 0x1F300 && r <= 0x1F5FF,
		r >= 0x1F680 && r <= 0x1F6FF,
		r >= 0x1F1E0 && r <= 0x1F1FF,
		r >= 0x2600 && r <= 0x26FF,
		r >= 0x2700 && r <= 0x27BF,
		r >= 0x1F900 && r <= 0x1F9FF,
		r >= 0x1FA00 && r <= 0x1FA6F,
		r >= 0x1FA70 && r <= 0x1FAFF,
		r == 0x200D,
		r == 0xFE0F:
		return true
	}
	return false
}

// isEmojiOnly reports whether content reduces to nothing once whitespace,
// joiners, variation selectors and emoji-class runes are removed, while the
// trimmed content itself is non-empty.
func isEmojiOnly(text string) bool {
	if strings.TrimSpace(text) == "" {
		return false
	}
	for _, r := range text {
		if unicode.IsSpace(r) || r == 0x200D || r == 0xFE0E || r == 0xFE0F {
			continue
		}
		if isEmojiClassRune(r) {
			continue
		}
		return false
	}
	return true
}

func isEmojiOrSticker(content string) bool {
	t := strings.TrimSpace(content)
	if t == stickerToken {
		return true
	}
	return isEmojiOnly(t)
}

// ExtractEmojis returns maximal runs of consecutive emoji-class runes. A burst
// like "😂😂" comes back as a single entry, which is also how the frequency
// tables count it.
func ExtractEmojis(text string) []string {
	var runs []string
	var cur []rune
	for _, r := range text {
		if isExtractRune(r) {
			cur = append(cur, r)
			continue
		}
		if len(cur) > 0 {
			runs = append(runs, string(cur))
			cur = cur[:0]
		}
	}
	if len(cur) > 0 {
		runs = append(runs, string(cur))
	}
	return runs
}
