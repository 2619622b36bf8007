package database

import (
	"database/sql"
	"embed"
	"fmt"
	"strings"

	"scifoot/internal/config"
	"scifoot/internal/constants"

	_ "github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// MemoryPath opens a private in-memory archive.
const MemoryPath = ":memory:"

type pragma struct {
	name  string
	value string
}

var filePragmas = []pragma{
	{"journal_mode", "WAL"},
	{"synchronous", "NORMAL"},
	{"mmap_size", "268435456"}, // https://sqlite.org/mmap.html
}

var commonPragmas = []pragma{
	{"cache_size", "-64000"},
	{"busy_timeout", "5000"},
	{"foreign_keys", "ON"},
	{"temp_store", "MEMORY"},
}

func New(cfg *config.Config, logger zerolog.Logger) (*sql.DB, error) {
	return Open(cfg.DBPath, logger)
}

// Open connects to the match archive at path, tunes it and applies
// migrations. An in-memory archive is pinned to a single connection, since
// every sqlite connection would otherwise see its own empty database.
func Open(path string, logger zerolog.Logger) (*sql.DB, error) {
	logger = logger.With().Str("db_path", path).Logger()
	logger.Info().Msg("opening match archive")

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open match archive: %w", err)
	}

	pragmas := commonPragmas
	if isMemory(path) {
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	} else {
		db.SetMaxOpenConns(constants.DBMaxOpenConns)
		db.SetMaxIdleConns(constants.DBMaxIdleConns)
		db.SetConnMaxLifetime(constants.DBConnMaxLifetime)
		db.SetConnMaxIdleTime(constants.DBMaxIdleTime)
		pragmas = append(append([]pragma(nil), filePragmas...), commonPragmas...)
	}

	if err := applyPragmas(db, pragmas, logger); err != nil {
		db.Close()
		return nil, err
	}

	version, err := migrate(db)
	if err != nil {
		logger.Error().Err(err).Msg("failed to migrate match archive")
		db.Close()
		return nil, err
	}

	logger.Info().Int64("schema_version", version).Msg("match archive ready")
	return db, nil
}

func isMemory(path string) bool {
	return path == MemoryPath || strings.Contains(path, "mode=memory")
}

func migrate(db *sql.DB) (int64, error) {
	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return 0, fmt.Errorf("failed to set goose dialect: %w", err)
	}
	if err := goose.Up(db, "migrations"); err != nil {
		return 0, fmt.Errorf("failed to run goose migrations: %w", err)
	}

	version, err := goose.GetDBVersion(db)
	if err != nil {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}
	return version, nil
}

func applyPragmas(db *sql.DB, pragmas []pragma, logger zerolog.Logger) error {
	for _, p := range pragmas {
		if _, err := db.Exec(fmt.Sprintf("PRAGMA %s = %s", p.name, p.value)); err != nil {
			logger.Warn().
				Err(err).
				Str("pragma", p.name).
				Str("value", p.value).
				Msg("failed to set pragma")
			return fmt.Errorf("failed to set PRAGMA %s: %w", p.name, err)
		}
		logger.Debug().Str("pragma", p.name).Str("value", p.value).Msg("pragma set")
	}
	return nil
}
