package fx

import (
	"errors"
	"fmt"

	"scifoot/internal/chemistry"
	"scifoot/internal/config"
	"scifoot/internal/database"
	"scifoot/internal/domain"
	"scifoot/internal/logger"
	"scifoot/internal/powerup"
	"scifoot/internal/rating"
	"scifoot/internal/repository"
	"scifoot/internal/server"
	"scifoot/internal/service"

	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

// ValidateTables checks every static game table. A failure aborts startup.
func ValidateTables(logger zerolog.Logger) error {
	err := errors.Join(
		rating.ValidateTable(),
		chemistry.ValidateTable(),
		powerup.ValidateCatalog(),
		domain.ValidateFormations(),
	)
	if err != nil {
		logger.Error().Err(err).Msg("invalid game tables")
		return fmt.Errorf("invalid game tables: %w", err)
	}
	logger.Info().Msg("game tables validated")
	return nil
}

// applyLogLevel honours a LOG_LEVEL that only the .env file provided.
func applyLogLevel(cfg *config.Config, log zerolog.Logger) {
	level := logger.ApplyLevel(cfg.LogLevel)
	log.Debug().Str("log_level", level.String()).Msg("log level applied")
}

var Module = fx.Options(
	logger.Module,
	config.Module,
	fx.Invoke(applyLogLevel),
	fx.Invoke(ValidateTables),
	fx.Provide(database.New),
	// repos
	fx.Provide(repository.NewMatchRepository),
	fx.Provide(repository.NewTeamRecordRepository),
	// svc
	fx.Provide(service.NewCatalogService),
	fx.Provide(service.NewMatchService),
	fx.Provide(service.NewStandingsService),
	// server
	fx.Provide(server.NewMatchServer),
)
