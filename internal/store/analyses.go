package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MikeSquared-Agency/chemi/internal/analysis"
	"github.com/MikeSquared-Agency/chemi/internal/analyzer"
	"github.com/MikeSquared-Agency/chemi/internal/dna"
)

// StoredAnalysis is an analysis as read back from the database.
type StoredAnalysis struct {
	ID        uuid.UUID         `json:"id"`
	ChatRef   string            `json:"chat_ref"`
	CreatedAt time.Time         `json:"created_at"`
	Analysis  analysis.Analysis `json:"analysis"`
}

// WriteAnalysis persists one analysis: a summary row plus one row per
// participant carrying stats and profile as jsonb.
// Tables: analyses, analysis_participants.
func (s *Store) WriteAnalysis(ctx context.Context, id uuid.UUID, chatRef string, a *analysis.Analysis) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO analyses (id, chat_ref, total_messages, total_days, conversation_count, avg_messages_per_day, range_start, range_end, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now())`,
		id, chatRef, a.TotalMessages, a.TotalDays, a.ConversationCount, a.AvgMessagesPerDay,
		a.DateRange.Start, a.DateRange.End,
	)
	if err != nil {
		return fmt.Errorf("insert analysis: %w", err)
	}

	for _, name := range a.Participants {
		statsJSON, err := json.Marshal(a.Stats[name])
		if err != nil {
			return fmt.Errorf("marshal stats for %s: %w", name, err)
		}
		profileJSON, err := json.Marshal(a.Profiles[name])
		if err != nil {
			return fmt.Errorf("marshal profile for %s: %w", name, err)
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO analysis_participants (id, analysis_id, name, stats, profile)
			VALUES ($1, $2, $3, $4, $5)`,
			uuid.New(), id, name, statsJSON, profileJSON,
		)
		if err != nil {
			return fmt.Errorf("insert participant %s: %w", name, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// GetAnalysis reads one analysis back by id. Returns pgx.ErrNoRows via the
// wrapped error when the id is unknown.
func (s *Store) GetAnalysis(ctx context.Context, id uuid.UUID) (*StoredAnalysis, error) {
	rec := StoredAnalysis{ID: id}
	a := &rec.Analysis

	err := s.pool.QueryRow(ctx, `
		SELECT chat_ref, total_messages, total_days, conversation_count, avg_messages_per_day, range_start, range_end, created_at
		FROM analyses WHERE id = $1`,
		id,
	).Scan(&rec.ChatRef, &a.TotalMessages, &a.TotalDays, &a.ConversationCount,
		&a.AvgMessagesPerDay, &a.DateRange.Start, &a.DateRange.End, &rec.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("select analysis: %w", err)
	}

	rows, err := s.pool.Query(ctx, `
		SELECT name, stats, profile
		FROM analysis_participants WHERE analysis_id = $1
		ORDER BY name`,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("select participants: %w", err)
	}
	defer rows.Close()

	a.Stats = make(map[string]analyzer.ParticipantStats)
	a.Profiles = make(map[string]dna.Profile)

	for rows.Next() {
		var name string
		var statsJSON, profileJSON []byte
		if err := rows.Scan(&name, &statsJSON, &profileJSON); err != nil {
			return nil, fmt.Errorf("scan participant: %w", err)
		}

		var stats analyzer.ParticipantStats
		if err := json.Unmarshal(statsJSON, &stats); err != nil {
			return nil, fmt.Errorf("unmarshal stats for %s: %w", name, err)
		}
		var profile dna.Profile
		if err := json.Unmarshal(profileJSON, &profile); err != nil {
			return nil, fmt.Errorf("unmarshal profile for %s: %w", name, err)
		}

		a.Participants = append(a.Participants, name)
		a.Stats[name] = stats
		a.Profiles[name] = profile
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate participants: %w", err)
	}

	return &rec, nil
}
