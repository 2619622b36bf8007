package service

import (
	"context"
	"fmt"

	"scifoot/internal/constants"
	"scifoot/internal/repository"
	"scifoot/internal/roster"

	"github.com/rs/zerolog"
)

type StandingsService struct {
	teamRepo *repository.TeamRecordRepository
	logger   zerolog.Logger
}

func NewStandingsService(teamRepo *repository.TeamRecordRepository, logger zerolog.Logger) *StandingsService {
	return &StandingsService{teamRepo: teamRepo, logger: logger}
}

// Get returns the league table. A non-positive limit uses the default.
func (s *StandingsService) Get(ctx context.Context, limit int) ([]roster.Standing, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	if limit <= 0 || limit > constants.StandingsLimit {
		limit = constants.StandingsLimit
	}

	records, err := s.teamRepo.List(ctx, limit)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list team records")
		return nil, fmt.Errorf("failed to list team records: %w", err)
	}

	rows := make([]roster.Standing, len(records))
	for i, rec := range records {
		rows[i] = roster.Standing{
			TeamID: rec.TeamID,
			Name:   rec.Name,
			Record: roster.Record{
				Wins:         rec.Wins,
				Draws:        rec.Draws,
				Losses:       rec.Losses,
				GoalsFor:     rec.GoalsFor,
				GoalsAgainst: rec.GoalsAgainst,
			},
		}
	}

	s.logger.Debug().Int("teams", len(rows)).Msg("standings loaded")
	return roster.Standings(rows), nil
}
