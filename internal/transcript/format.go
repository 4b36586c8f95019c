package transcript

import (
	"regexp"
	"strconv"
	"time"
)

// Line layouts KakaoTalk uses across export surfaces.
var (
	// [홍길동] [오후 3:25] content — time only, date carried by header lines.
	formatA = regexp.MustCompile(`^\[(.+?)\]\s*\[(오전|오후)\s*(\d{1,2}):(\d{2})\]\s*(.*)$`)

	// 2026년 2월 20일 오후 3:25, 홍길동 : content
	formatB = regexp.MustCompile(`^(\d{4})년\s*(\d{1,2})월\s*(\d{1,2})일\s*(오전|오후)\s*(\d{1,2}):(\d{2}),\s*(.+?)\s*:\s*(.*)$`)

	// 2026. 2. 20. 오후 3:25, 홍길동 : content
	formatC = regexp.MustCompile(`^(\d{4})\.\s*(\d{1,2})\.\s*(\d{1,2})\.\s*(오전|오후)\s*(\d{1,2}):(\d{2}),\s*(.+?)\s*:\s*(.*)$`)

	// --------------- 2026년 2월 20일 목요일 ---------------
	dateHeader = regexp.MustCompile(`^-+\s*(\d{4})년\s*(\d{1,2})월\s*(\d{1,2})일\s*.+?\s*-+$`)
)

// heldDate is the calendar date carried between lines for format A, which
// writes time-of-day only on message lines.
type heldDate struct {
	year, month, day int
	valid            bool
}

// lineFormat pairs a pattern with a constructor from its capture groups.
// build returns false when the match cannot yield a message yet (format A
// before any date header), letting the scan fall through to recovery.
type lineFormat struct {
	re    *regexp.Regexp
	build func(groups []string, date heldDate) (Message, bool)
}

// Tried in declared order; the first usable match wins.
var lineFormats = []lineFormat{
	{re: formatA, build: buildFormatA},
	{re: formatB, build: buildFormatB},
	{re: formatC, build: buildFormatC},
}

func buildFormatA(g []string, date heldDate) (Message, bool) {
	if !date.valid {
		return Message{}, false
	}
	ts := time.Date(date.year, time.Month(date.month), date.day,
		to24Hour(g[2], atoi(g[3])), atoi(g[4]), 0, 0, time.UTC)
	return newMessage(g[1], g[5], ts), true
}

func buildFormatB(g []string, _ heldDate) (Message, bool) {
	ts := time.Date(atoi(g[1]), time.Month(atoi(g[2])), atoi(g[3]),
		to24Hour(g[4], atoi(g[5])), atoi(g[6]), 0, 0, time.UTC)
	return newMessage(g[7], g[8], ts), true
}

func buildFormatC(g []string, _ heldDate) (Message, bool) {
	ts := time.Date(atoi(g[1]), time.Month(atoi(g[2])), atoi(g[3]),
		to24Hour(g[4], atoi(g[5])), atoi(g[6]), 0, 0, time.UTC)
	return newMessage(g[7], g[8], ts), true
}

// to24Hour maps the Korean meridiem: 오전 12 → 0, 오후 12 stays 12.
func to24Hour(meridiem string, hour int) int {
	if meridiem == "오전" {
		if hour == 12 {
			return 0
		}
		return hour
	}
	if hour == 12 {
		return 12
	}
	return hour + 12
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
