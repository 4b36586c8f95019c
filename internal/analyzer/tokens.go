package analyzer

import (
	"strings"
	"unicode/utf8"
)

// Korean stopwords: particles, connectors, short fillers, plus the media
// placeholder tokens so attachments don't pollute the word table.
var stopwords = map[string]bool{}

func init() {
	for _, w := range []string{
		"이", "가", "을", "를", "의", "에", "은", "는", "도", "로", "으로", "에서", "와", "과",
		"랑", "이랑", "한", "그", "저", "것", "수", "좀", "더", "안", "못", "잘", "또", "다",
		"네", "나", "너", "내", "니", "제", "이거", "그거", "저거", "해", "했", "할", "하면",
		"하고", "해서", "하는", "합니다", "있어", "없어", "있는", "없는", "있다", "없다",
		"있어요", "없어요", "아", "어", "야", "여", "요", "죠", "지", "거", "건", "게", "음",
		"응", "앙", "엉", "뭐", "왜", "어디", "언제", "누구", "사진", "이모티콘", "동영상",
	} {
		stopwords[w] = true
	}
}

// Punctuation and laugh characters split words; they carry no lexical content.
const tokenSeparators = ".,!?~ㅋㅎㅠㅜ…·•-_=+|\\/<>()[]{}'\""

// tokenize splits content into word tokens, discarding separators, tokens
// shorter than two characters and stopwords.
func tokenize(text string) []string {
	cleaned := strings.Map(func(r rune) rune {
		if strings.ContainsRune(tokenSeparators, r) {
			return ' '
		}
		return r
	}, text)

	var words []string
	for _, w := range strings.Fields(cleaned) {
		if utf8.RuneCountInString(w) < 2 || stopwords[w] {
			continue
		}
		words = append(words, w)
	}
	return words
}
