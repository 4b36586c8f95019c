package analyzer

import (
	"time"

	"github.com/MikeSquared-Agency/chemi/internal/transcript"
)

// ConversationGap is the inter-message gap that starts a new conversation.
const ConversationGap = 4 * time.Hour

// Conversation is a maximal run of messages with no gap of ConversationGap or
// more. Conversations partition the message sequence.
type Conversation struct {
	StartIdx    int
	FirstSender string
}

// Segment splits an ordered message sequence into conversations. A gap equal
// to the threshold starts a new conversation.
func Segment(messages []transcript.Message) []Conversation {
	if len(messages) == 0 {
		return nil
	}

	convs := []Conversation{{StartIdx: 0, FirstSender: messages[0].Sender}}
	for i := 1; i < len(messages); i++ {
		gap := messages[i].Timestamp.Sub(messages[i-1].Timestamp)
		if gap >= ConversationGap {
			convs = append(convs, Conversation{StartIdx: i, FirstSender: messages[i].Sender})
		}
	}
	return convs
}
