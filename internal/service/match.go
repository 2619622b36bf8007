package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"scifoot/internal/config"
	"scifoot/internal/constants"
	"scifoot/internal/domain"
	"scifoot/internal/match"
	"scifoot/internal/powerup"
	"scifoot/internal/repository"
	"scifoot/internal/roster"
	"scifoot/internal/selection"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"
)

const (
	HomeTeamID   = 1
	AwayTeamID   = 2
	HomeTeamName = "Red Scientists"
	AwayTeamName = "Blue Researchers"
)

var (
	homeSquad = []int{1, 2, 3, 4, 5, 6, 7, 8}
	awaySquad = []int{9, 10, 11, 12, 13, 14, 15}

	ErrInvalidBatch = errors.New("invalid batch request")
)

// QuickResult summarizes one fully simulated demo match.
type QuickResult struct {
	MatchID   string        `json:"match_id"`
	Seed      int64         `json:"seed,string"`
	HomeTeam  string        `json:"home_team"`
	AwayTeam  string        `json:"away_team"`
	HomeScore int           `json:"home_score"`
	AwayScore int           `json:"away_score"`
	Winner    string        `json:"winner"`
	Clock     string        `json:"clock"`
	Events    []match.Event `json:"-"`
}

type BatchRequest struct {
	Matches       int
	HomeRating    float64
	AwayRating    float64
	HomeChemistry float64
	AwayChemistry float64
	Seed          int64
}

type BatchResult struct {
	Matches         int           `json:"matches"`
	HomeWins        int           `json:"home_wins"`
	Draws           int           `json:"draws"`
	AwayWins        int           `json:"away_wins"`
	HomeGoalsMean   float64       `json:"home_goals_mean"`
	HomeGoalsStdDev float64       `json:"home_goals_stddev"`
	AwayGoalsMean   float64       `json:"away_goals_mean"`
	AwayGoalsStdDev float64       `json:"away_goals_stddev"`
	Elapsed         time.Duration `json:"elapsed"`
}

type MatchService struct {
	cfg       *config.Config
	matchRepo *repository.MatchRepository
	teamRepo  *repository.TeamRecordRepository
	logger    zerolog.Logger

	// serializes the read-modify-write of demo team records
	mu sync.Mutex
}

func NewMatchService(cfg *config.Config, matchRepo *repository.MatchRepository, teamRepo *repository.TeamRecordRepository, logger zerolog.Logger) *MatchService {
	return &MatchService{cfg: cfg, matchRepo: matchRepo, teamRepo: teamRepo, logger: logger}
}

func (s *MatchService) options(rng *rand.Rand) match.Options {
	return match.Options{GoalRate: s.cfg.GoalBaseRate, Speed: s.cfg.SimSpeed, Rand: rng}
}

// SimulateQuick plays the two demo squads against each other from kick-off to
// the final whistle, then stores the result and both season records in one
// transaction. A zero seed picks one from the clock.
func (s *MatchService) SimulateQuick(ctx context.Context, seed int64) (*QuickResult, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.QuickMatchTimeout)
	defer cancel()

	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	home, err := s.loadTeam(ctx, HomeTeamID, HomeTeamName, homeSquad)
	if err != nil {
		return nil, err
	}
	away, err := s.loadTeam(ctx, AwayTeamID, AwayTeamName, awaySquad)
	if err != nil {
		return nil, err
	}
	selection.AutoSelect(home)
	selection.AutoSelect(away)

	rng := rand.New(rand.NewSource(seed))
	homeSide := match.NewTeamSide(home, s.cfg.InventorySlots)
	awaySide := match.NewTeamSide(away, s.cfg.InventorySlots)
	for _, side := range []*match.TeamSide{homeSide, awaySide} {
		for _, p := range side.Team().Starters() {
			side.GivePowerUp(p.ID, powerup.Draw(rng))
		}
	}

	e := match.New(homeSide, awaySide, s.options(rng))
	if err := s.play(ctx, e, halfTimeTalk); err != nil {
		return nil, err
	}

	hs, as := e.Score()
	result := &QuickResult{
		Seed:      seed,
		HomeTeam:  home.Name,
		AwayTeam:  away.Name,
		HomeScore: hs,
		AwayScore: as,
		Winner:    "draw",
		Clock:     e.Clock(),
		Events:    e.Events(),
	}
	if side, ok := e.Winner(); ok {
		result.Winner = side.String()
	}

	records := []domain.TeamRecord{teamRecord(home), teamRecord(away)}
	id, err := s.matchRepo.ArchiveWithRecords(ctx, &domain.MatchRecord{
		HomeTeam:        home.Name,
		AwayTeam:        away.Name,
		HomeScore:       hs,
		AwayScore:       as,
		DurationSeconds: e.Elapsed(),
		Seed:            seed,
		FinishedAt:      time.Now(),
		Events:          eventRecords(result.Events),
	}, records)
	if err != nil {
		s.logger.Error().Err(err).Int64("seed", seed).Msg("failed to archive match")
		return nil, fmt.Errorf("failed to archive match: %w", err)
	}
	result.MatchID = id

	s.logger.Info().
		Str("match_id", id).
		Int64("seed", seed).
		Int("home_score", hs).
		Int("away_score", as).
		Int("events", len(result.Events)).
		Msg("quick match simulated")

	return result, nil
}

// ticksPerCheck is how many ticks play runs between context checks.
const ticksPerCheck = 64

// play drives e to the final whistle, calling halfTime (when set) during the
// break. It gives up once ctx is done.
func (s *MatchService) play(ctx context.Context, e *match.Engine, halfTime func(*match.Engine)) error {
	e.Start()
	for tick := 0; e.Period() != match.Finished; tick++ {
		if tick%ticksPerCheck == 0 {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("match interrupted at %s: %w", e.Clock(), err)
			}
		}
		if !e.Running() {
			if e.Period() == match.HalfTime && halfTime != nil {
				halfTime(e)
			}
			e.Resume()
		}
		e.Tick(s.cfg.SimTick)
	}
	return nil
}

// halfTimeTalk has every starter fire their ability and first stored power-up.
func halfTimeTalk(e *match.Engine) {
	for _, side := range []domain.Side{domain.Home, domain.Away} {
		ts, ok := e.TeamSide(side)
		if !ok {
			continue
		}
		for _, p := range ts.Team().Starters() {
			e.ActivateAbility(side, p.ID)
			e.UsePowerUp(side, p.ID, 0)
		}
	}
}

// loadTeam builds a demo squad from the catalog and restores its stored
// season record.
func (s *MatchService) loadTeam(ctx context.Context, id int, name string, squad []int) (*roster.Team, error) {
	team := roster.NewTeam(id, name)
	for _, pid := range squad {
		p, ok := roster.CatalogByID(pid)
		if !ok {
			return nil, fmt.Errorf("catalog player %d: %w", pid, roster.ErrPlayerNotFound)
		}
		if err := team.AddPlayer(p); err != nil {
			return nil, err
		}
	}

	rec, err := s.teamRepo.Get(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return team, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load team record %d: %w", id, err)
	}
	team.Record = roster.Record{
		Wins:         rec.Wins,
		Draws:        rec.Draws,
		Losses:       rec.Losses,
		GoalsFor:     rec.GoalsFor,
		GoalsAgainst: rec.GoalsAgainst,
	}
	return team, nil
}

// SimulateBatch runs independent fixed-strength matches in parallel and
// reports the outcome distribution. Match i uses seed Seed+i.
func (s *MatchService) SimulateBatch(ctx context.Context, req BatchRequest) (*BatchResult, error) {
	if err := validateBatch(req); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, constants.BatchTimeout)
	defer cancel()

	start := time.Now()
	homeGoals := make([]float64, req.Matches)
	awayGoals := make([]float64, req.Matches)

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.SimWorkers)
	for i := 0; i < req.Matches; i++ {
		g.Go(func() error {
			rng := rand.New(rand.NewSource(req.Seed + int64(i)))
			e := match.NewFixed(req.HomeRating, req.AwayRating, req.HomeChemistry, req.AwayChemistry, s.options(rng))
			if err := s.play(gCtx, e, nil); err != nil {
				return err
			}
			h, a := e.Score()
			homeGoals[i] = float64(h)
			awayGoals[i] = float64(a)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.logger.Error().Err(err).Int("matches", req.Matches).Msg("batch simulation interrupted")
		return nil, fmt.Errorf("batch simulation interrupted: %w", err)
	}

	res := &BatchResult{Matches: req.Matches}
	for i := range homeGoals {
		switch {
		case homeGoals[i] > awayGoals[i]:
			res.HomeWins++
		case homeGoals[i] < awayGoals[i]:
			res.AwayWins++
		default:
			res.Draws++
		}
	}
	res.HomeGoalsMean, res.HomeGoalsStdDev = meanStdDev(homeGoals)
	res.AwayGoalsMean, res.AwayGoalsStdDev = meanStdDev(awayGoals)
	res.Elapsed = time.Since(start)

	s.logger.Info().
		Int("matches", req.Matches).
		Int("home_wins", res.HomeWins).
		Int("draws", res.Draws).
		Int("away_wins", res.AwayWins).
		Dur("elapsed", res.Elapsed).
		Msg("batch simulated")

	return res, nil
}

func validateBatch(req BatchRequest) error {
	switch {
	case req.Matches <= 0 || req.Matches > constants.MaxBatchSize:
		return fmt.Errorf("%w: matches must be in [1, %d], got %d", ErrInvalidBatch, constants.MaxBatchSize, req.Matches)
	case req.HomeRating < 0 || req.AwayRating < 0:
		return fmt.Errorf("%w: ratings must not be negative", ErrInvalidBatch)
	case req.HomeChemistry < 0 || req.HomeChemistry > 1 || req.AwayChemistry < 0 || req.AwayChemistry > 1:
		return fmt.Errorf("%w: chemistry must be in [0, 1]", ErrInvalidBatch)
	}
	return nil
}

// meanStdDev returns a zero deviation for a single sample.
func meanStdDev(xs []float64) (float64, float64) {
	if len(xs) < 2 {
		return stat.Mean(xs, nil), 0
	}
	return stat.MeanStdDev(xs, nil)
}

func eventRecords(events []match.Event) []domain.EventRecord {
	out := make([]domain.EventRecord, len(events))
	for i, ev := range events {
		out[i] = domain.EventRecord{
			Seq:      i,
			Kind:     ev.Kind.String(),
			Side:     ev.Side.String(),
			Minute:   ev.Minute,
			PlayerID: ev.PlayerID,
			AssistID: ev.AssistID,
			Detail:   ev.Detail,
		}
	}
	return out
}

func teamRecord(t *roster.Team) domain.TeamRecord {
	return domain.TeamRecord{
		TeamID:       t.ID,
		Name:         t.Name,
		Wins:         t.Wins,
		Draws:        t.Draws,
		Losses:       t.Losses,
		GoalsFor:     t.GoalsFor,
		GoalsAgainst: t.GoalsAgainst,
	}
}
