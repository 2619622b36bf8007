package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"scifoot/internal/constants"
	"scifoot/internal/domain"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"
)

type MatchRepository struct {
	db     *sql.DB
	logger zerolog.Logger
}

func NewMatchRepository(sqlDB *sql.DB, logger zerolog.Logger) *MatchRepository {
	return &MatchRepository{
		db:     sqlDB,
		logger: logger,
	}
}

// Archive stores a finished match and its events in one transaction. An empty
// ID is filled with a fresh nanoid, which is returned.
func (r *MatchRepository) Archive(ctx context.Context, match *domain.MatchRecord) (string, error) {
	return r.ArchiveWithRecords(ctx, match, nil)
}

// ArchiveWithRecords stores a finished match, its events and the updated
// season tallies of the teams that played it. Either everything is written
// or nothing is.
func (r *MatchRepository) ArchiveWithRecords(ctx context.Context, match *domain.MatchRecord, records []domain.TeamRecord) (string, error) {
	id := match.ID
	if id == "" {
		var err error
		id, err = gonanoid.New()
		if err != nil {
			return "", fmt.Errorf("failed to generate nanoid: %w", err)
		}
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := insertMatch(ctx, tx, id, match); err != nil {
		return "", err
	}
	if err := upsertTeamRecords(ctx, tx, records); err != nil {
		return "", err
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit match %s: %w", id, err)
	}

	r.logger.Debug().
		Str("match_id", id).
		Int("events", len(match.Events)).
		Int("team_records", len(records)).
		Msg("match archived")

	return id, nil
}

func insertMatch(ctx context.Context, tx *sql.Tx, id string, match *domain.MatchRecord) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO matches (id, home_team, away_team, home_score, away_score, duration_seconds, seed, finished_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id, match.HomeTeam, match.AwayTeam, match.HomeScore, match.AwayScore,
		match.DurationSeconds, match.Seed, match.FinishedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert match %s: %w", id, err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO match_events (match_id, seq, kind, side, minute, player_id, assist_id, detail)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare event insert: %w", err)
	}
	defer stmt.Close()

	events := match.Events
	for i := 0; i < len(events); i += constants.DBBatchSize {
		end := i + constants.DBBatchSize
		if end > len(events) {
			end = len(events)
		}

		for _, ev := range events[i:end] {
			_, err := stmt.ExecContext(ctx, id, ev.Seq, ev.Kind, ev.Side, ev.Minute,
				nullableID(ev.PlayerID), nullableID(ev.AssistID), ev.Detail)
			if err != nil {
				return fmt.Errorf("failed to insert event %s/%d: %w", id, ev.Seq, err)
			}
		}
	}
	return nil
}

// Get loads an archived match with its events in sequence order.
func (r *MatchRepository) Get(ctx context.Context, id string) (*domain.MatchRecord, error) {
	m := &domain.MatchRecord{ID: id}
	err := r.db.QueryRowContext(ctx, `
		SELECT home_team, away_team, home_score, away_score, duration_seconds, seed, finished_at
		FROM matches WHERE id = ?`, id,
	).Scan(&m.HomeTeam, &m.AwayTeam, &m.HomeScore, &m.AwayScore, &m.DurationSeconds, &m.Seed, &m.FinishedAt)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT seq, kind, side, minute, player_id, assist_id, detail
		FROM match_events WHERE match_id = ? ORDER BY seq`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query events for %s: %w", id, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			ev             domain.EventRecord
			player, assist sql.NullInt64
		)
		if err := rows.Scan(&ev.Seq, &ev.Kind, &ev.Side, &ev.Minute, &player, &assist, &ev.Detail); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		ev.PlayerID = int(player.Int64)
		ev.AssistID = int(assist.Int64)
		m.Events = append(m.Events, ev)
	}
	return m, rows.Err()
}

// Recent lists the latest archived matches without their events.
func (r *MatchRepository) Recent(ctx context.Context, limit int) ([]domain.MatchRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, home_team, away_team, home_score, away_score, duration_seconds, seed, finished_at
		FROM matches ORDER BY finished_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.MatchRecord
	for rows.Next() {
		var m domain.MatchRecord
		if err := rows.Scan(&m.ID, &m.HomeTeam, &m.AwayTeam, &m.HomeScore, &m.AwayScore, &m.DurationSeconds, &m.Seed, &m.FinishedAt); err != nil {
			return nil, fmt.Errorf("failed to scan match: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *MatchRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM matches`).Scan(&n)
	return n, err
}

func nullableID(id int) sql.NullInt64 {
	return sql.NullInt64{Int64: int64(id), Valid: id != 0}
}

func now() time.Time {
	return time.Now().UTC()
}
