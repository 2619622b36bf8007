package constants

import "time"

const (
	DatabaseTimeout   = 5 * time.Second
	RequestTimeout    = 30 * time.Second
	QuickMatchTimeout = 10 * time.Second
	BatchTimeout      = 2 * time.Minute
)

const (
	DBMaxOpenConns    = 100
	DBMaxIdleConns    = 10
	DBConnMaxLifetime = 1 * time.Hour
	DBMaxIdleTime     = 10 * time.Minute
	DBBatchSize       = 100
)

const (
	ShutdownTimeout = 5 * time.Second
)

const (
	GoalBaseRate   = 0.0018
	SimSpeed       = 1.0
	SimTick        = 1.0
	InventorySlots = 3
	SimWorkers     = 4
	MaxBatchSize   = 10_000
)

const (
	RateLimitRPS   = 20.0
	RateLimitBurst = 40
)

const (
	StandingsLimit     = 50
	RecentMatchesLimit = 20
)
