package repository

import (
	"context"
	"database/sql"
	"fmt"

	"scifoot/internal/domain"

	"github.com/rs/zerolog"
)

type TeamRecordRepository struct {
	db     *sql.DB
	logger zerolog.Logger
}

func NewTeamRecordRepository(sqlDB *sql.DB, logger zerolog.Logger) *TeamRecordRepository {
	return &TeamRecordRepository{
		db:     sqlDB,
		logger: logger,
	}
}

const upsertTeamRecord = `
	INSERT INTO team_records (team_id, name, wins, draws, losses, goals_for, goals_against, updated_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(team_id) DO UPDATE SET
		name = excluded.name,
		wins = excluded.wins,
		draws = excluded.draws,
		losses = excluded.losses,
		goals_for = excluded.goals_for,
		goals_against = excluded.goals_against,
		updated_at = excluded.updated_at`

// UpsertBatch writes the given season tallies in one transaction.
func (r *TeamRecordRepository) UpsertBatch(ctx context.Context, records []domain.TeamRecord) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := upsertTeamRecords(ctx, tx, records); err != nil {
		return err
	}
	return tx.Commit()
}

func upsertTeamRecords(ctx context.Context, tx *sql.Tx, records []domain.TeamRecord) error {
	for _, rec := range records {
		updated := rec.UpdatedAt
		if updated.IsZero() {
			updated = now()
		}
		_, err := tx.ExecContext(ctx, upsertTeamRecord,
			rec.TeamID, rec.Name, rec.Wins, rec.Draws, rec.Losses,
			rec.GoalsFor, rec.GoalsAgainst, updated.UTC())
		if err != nil {
			return fmt.Errorf("failed to upsert team record %d: %w", rec.TeamID, err)
		}
	}
	return nil
}

// Get returns the stored tally for teamID, or sql.ErrNoRows.
func (r *TeamRecordRepository) Get(ctx context.Context, teamID int) (*domain.TeamRecord, error) {
	rec := &domain.TeamRecord{TeamID: teamID}
	err := r.db.QueryRowContext(ctx, `
		SELECT name, wins, draws, losses, goals_for, goals_against, updated_at
		FROM team_records WHERE team_id = ?`, teamID,
	).Scan(&rec.Name, &rec.Wins, &rec.Draws, &rec.Losses, &rec.GoalsFor, &rec.GoalsAgainst, &rec.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// List returns up to limit records in league order.
func (r *TeamRecordRepository) List(ctx context.Context, limit int) ([]domain.TeamRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT team_id, name, wins, draws, losses, goals_for, goals_against, updated_at
		FROM team_records
		ORDER BY wins * 3 + draws DESC, goals_for - goals_against DESC, goals_for DESC, name ASC
		LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.TeamRecord
	for rows.Next() {
		var rec domain.TeamRecord
		if err := rows.Scan(&rec.TeamID, &rec.Name, &rec.Wins, &rec.Draws, &rec.Losses,
			&rec.GoalsFor, &rec.GoalsAgainst, &rec.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan team record: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
