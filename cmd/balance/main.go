package main

import (
	"context"
	"encoding/json"
	"flag"
	"math/rand"
	"os"
	"sort"
	"time"

	"scifoot/internal/config"
	fxmodules "scifoot/internal/fx"
	"scifoot/internal/logger"
	"scifoot/internal/powerup"
	"scifoot/internal/service"

	"github.com/rs/zerolog"
)

type Report struct {
	GeneratedAtUTC string               `json:"generated_at_utc"`
	Players        []service.PlayerView `json:"players"`
	RarityShare    map[string]float64   `json:"rarity_share"`
	Matchups       []Matchup            `json:"matchups"`
}

type Matchup struct {
	HomeRating float64              `json:"home_rating"`
	AwayRating float64              `json:"away_rating"`
	Result     *service.BatchResult `json:"result"`
}

func main() {
	var (
		matches = flag.Int("matches", 500, "matches per matchup")
		draws   = flag.Int("draws", 10000, "power-up draws for the rarity histogram")
		seed    = flag.Int64("seed", 1, "base random seed")
		workers = flag.Int("workers", 0, "parallel simulations (0 = SIM_WORKERS)")
		level   = flag.String("log-level", "warn", "log level")
	)
	flag.Parse()

	log := logger.SetLevel(logger.ParseLevel(*level))

	if err := fxmodules.ValidateTables(log); err != nil {
		log.Fatal().Err(err).Msg("balance report aborted")
	}

	cfg, err := config.Load(log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	if *workers > 0 {
		cfg.SimWorkers = *workers
	}

	report, err := build(context.Background(), cfg, log, *matches, *draws, *seed)
	if err != nil {
		log.Fatal().Err(err).Msg("balance report failed")
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		log.Fatal().Err(err).Msg("failed to write report")
	}
}

func build(ctx context.Context, cfg *config.Config, log zerolog.Logger, matches, draws int, seed int64) (*Report, error) {
	players := service.NewCatalogService(log).ListPlayers()
	sort.SliceStable(players, func(i, j int) bool {
		return players[i].Rating > players[j].Rating
	})

	rng := rand.New(rand.NewSource(seed))
	counts := make(map[string]int)
	for i := 0; i < draws; i++ {
		e, _ := powerup.Lookup(powerup.Draw(rng))
		counts[e.Rarity.String()]++
	}
	share := make(map[string]float64, len(counts))
	for r, n := range counts {
		share[r] = float64(n) / float64(draws)
	}

	svc := service.NewMatchService(cfg, nil, nil, log)
	var out []Matchup
	for _, m := range [][2]float64{{70, 70}, {80, 60}, {90, 50}, {60, 80}} {
		res, err := svc.SimulateBatch(ctx, service.BatchRequest{
			Matches:       matches,
			HomeRating:    m[0],
			AwayRating:    m[1],
			HomeChemistry: 0.5,
			AwayChemistry: 0.5,
			Seed:          seed,
		})
		if err != nil {
			return nil, err
		}
		out = append(out, Matchup{HomeRating: m[0], AwayRating: m[1], Result: res})
	}

	return &Report{
		GeneratedAtUTC: time.Now().UTC().Format(time.RFC3339),
		Players:        players,
		RarityShare:    share,
		Matchups:       out,
	}, nil
}
