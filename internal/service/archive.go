package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"scifoot/internal/constants"
	"scifoot/internal/domain"
)

var ErrMatchNotFound = errors.New("match not found")

// ArchivePage is a slice of the match archive, newest first.
type ArchivePage struct {
	Total   int                  `json:"total"`
	Matches []domain.MatchRecord `json:"-"`
}

// RecentMatches lists the latest archived matches without their events.
// A non-positive limit uses the default.
func (s *MatchService) RecentMatches(ctx context.Context, limit int) (*ArchivePage, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	if limit <= 0 || limit > constants.RecentMatchesLimit {
		limit = constants.RecentMatchesLimit
	}

	matches, err := s.matchRepo.Recent(ctx, limit)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list recent matches")
		return nil, fmt.Errorf("failed to list recent matches: %w", err)
	}
	total, err := s.matchRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count matches: %w", err)
	}

	return &ArchivePage{Total: total, Matches: matches}, nil
}

// GetMatch loads one archived match with its full event log.
func (s *MatchService) GetMatch(ctx context.Context, id string) (*domain.MatchRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	m, err := s.matchRepo.Get(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrMatchNotFound, id)
	}
	if err != nil {
		s.logger.Error().Err(err).Str("match_id", id).Msg("failed to load match")
		return nil, fmt.Errorf("failed to load match %s: %w", id, err)
	}
	return m, nil
}
