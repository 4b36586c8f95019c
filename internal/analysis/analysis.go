// Package analysis runs the full pipeline: parse → per-participant statistics
// → DNA profiles, plus the transcript-level summary. The run is a pure
// function of the input text; identical input always produces an identical
// result.
package analysis

import (
	"math"
	"time"

	"github.com/MikeSquared-Agency/chemi/internal/analyzer"
	"github.com/MikeSquared-Agency/chemi/internal/dna"
	"github.com/MikeSquared-Agency/chemi/internal/transcript"
)

// DateRange spans the first and last message timestamps.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Analysis is the complete result for one transcript.
type Analysis struct {
	Participants      []string                             `json:"participants"`
	TotalMessages     int                                  `json:"total_messages"`
	TotalDays         int                                  `json:"total_days"`
	DateRange         DateRange                            `json:"date_range"`
	Stats             map[string]analyzer.ParticipantStats `json:"stats"`
	Profiles          map[string]dna.Profile               `json:"profiles"`
	ConversationCount int                                  `json:"conversation_count"`
	AvgMessagesPerDay int                                  `json:"avg_messages_per_day"`
}

// Run analyzes a decoded transcript. Empty or unparseable input yields an
// all-zero analysis, not an error.
func Run(text string) *Analysis {
	messages := transcript.Parse(text)
	result := analyzer.Analyze(messages)
	profiles := dna.Generate(result.Stats, result.Participants)

	a := &Analysis{
		Participants:      result.Participants,
		TotalMessages:     len(messages),
		Stats:             result.Stats,
		Profiles:          profiles,
		ConversationCount: result.ConversationCount,
	}

	if len(messages) > 0 {
		// Parse output is sorted, so the range is first to last.
		start := messages[0].Timestamp
		end := messages[len(messages)-1].Timestamp
		totalDays := int(math.Round(end.Sub(start).Hours() / 24))
		if totalDays < 1 {
			totalDays = 1
		}
		a.DateRange = DateRange{Start: start, End: end}
		a.TotalDays = totalDays
		a.AvgMessagesPerDay = int(math.Round(float64(len(messages)) / float64(totalDays)))
	}

	return a
}
