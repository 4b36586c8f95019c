package transcript

import (
	"time"
	"unicode/utf8"
)

// SystemSender is the sender recorded on system-generated entries before they
// are filtered out of the parse result.
const SystemSender = "__system__"

// Message is a single reconstructed transcript entry.
type Message struct {
	Timestamp time.Time `json:"timestamp"`
	Sender    string    `json:"sender"`
	Content   string    `json:"content"`
	IsSystem  bool      `json:"is_system"`
	IsEmoji   bool      `json:"is_emoji"`
	IsPhoto   bool      `json:"is_photo"`
	IsVideo   bool      `json:"is_video"`
	Length    int       `json:"length"`
}

// newMessage classifies content and builds a message. System entries get the
// sender sentinel so the original display name never leaks downstream.
func newMessage(sender, content string, ts time.Time) Message {
	sys := isSystemContent(content)
	m := Message{
		Timestamp: ts,
		Sender:    sender,
		Content:   content,
		IsSystem:  sys,
		IsEmoji:   isEmojiOrSticker(content),
		IsPhoto:   isPhotoContent(content),
		IsVideo:   isVideoContent(content),
		Length:    utf8.RuneCountInString(content),
	}
	if sys {
		m.Sender = SystemSender
	}
	return m
}
