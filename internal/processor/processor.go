// Package processor orchestrates chemi's analysis runs: it feeds transcript
// text through the pipeline, persists the result when a store is configured
// and publishes the completion event when the bus is connected. Both the HTTP
// handler and the NATS subscription go through here.
package processor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/MikeSquared-Agency/chemi/internal/analysis"
	"github.com/MikeSquared-Agency/chemi/internal/hermes"
	"github.com/MikeSquared-Agency/chemi/internal/store"
)

// ErrTooFewMessages is returned when a transcript parses below the configured
// minimum. The pipeline itself never fails on short input; this is
// caller-boundary validation.
var ErrTooFewMessages = errors.New("too few messages")

// TranscriptEvent is the payload of swarm.chemi.transcript.received.
type TranscriptEvent struct {
	ChatRef    string `json:"chat_ref"`
	Transcript string `json:"transcript"`
}

type Processor struct {
	store       *store.Store
	hermes      *hermes.Client
	minMessages int
	logger      *slog.Logger
}

func New(s *store.Store, h *hermes.Client, minMessages int, logger *slog.Logger) *Processor {
	return &Processor{
		store:       s,
		hermes:      h,
		minMessages: minMessages,
		logger:      logger,
	}
}

// Process runs the full pipeline over a transcript and returns the assigned
// analysis id alongside the result.
func (p *Processor) Process(ctx context.Context, chatRef, text string) (uuid.UUID, *analysis.Analysis, error) {
	a := analysis.Run(text)
	if a.TotalMessages < p.minMessages {
		return uuid.Nil, nil, fmt.Errorf("%w: parsed %d, need at least %d", ErrTooFewMessages, a.TotalMessages, p.minMessages)
	}

	id := uuid.New()

	if p.store != nil {
		if err := p.store.WriteAnalysis(ctx, id, chatRef, a); err != nil {
			return uuid.Nil, nil, fmt.Errorf("write analysis: %w", err)
		}
	}

	if p.hermes != nil {
		if err := p.hermes.Publish(hermes.SubjectAnalysisCompleted, map[string]any{
			"analysis_id":        id.String(),
			"chat_ref":           chatRef,
			"participants":       a.Participants,
			"total_messages":     a.TotalMessages,
			"conversation_count": a.ConversationCount,
		}); err != nil {
			p.logger.Warn("failed to publish analysis completed", "error", err)
		}
	}

	p.logger.Info("transcript analyzed",
		"analysis_id", id,
		"chat_ref", chatRef,
		"participants", len(a.Participants),
		"messages", a.TotalMessages,
		"conversations", a.ConversationCount,
	)
	return id, a, nil
}

// HandleTranscriptReceived is the NATS handler for transcript events.
func (p *Processor) HandleTranscriptReceived(subject string, data []byte) {
	var evt TranscriptEvent
	if err := json.Unmarshal(data, &evt); err != nil {
		p.logger.Error("failed to parse transcript event", "error", err)
		return
	}
	if evt.Transcript == "" {
		p.logger.Error("transcript event without transcript", "chat_ref", evt.ChatRef)
		return
	}

	if _, _, err := p.Process(context.Background(), evt.ChatRef, evt.Transcript); err != nil {
		p.logger.Error("failed to process transcript", "chat_ref", evt.ChatRef, "error", err)
	}
}
