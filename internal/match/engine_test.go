package match

import (
	"math/rand"
	"testing"

	"scifoot/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeded(seed int64) Options {
	opts := DefaultOptions()
	opts.Rand = rand.New(rand.NewSource(seed))
	return opts
}

func TestStateMachine(t *testing.T) {
	e := NewFixed(70, 70, 0.5, 0.5, seeded(1))
	assert.Equal(t, FirstHalf, e.Period())
	assert.False(t, e.Running())

	e.Tick(10)
	assert.Zero(t, e.Elapsed(), "ticks before start are ignored")

	e.Start()
	assert.True(t, e.Running())
	for i := 0; i < 599; i++ {
		e.Tick(1)
	}
	assert.Equal(t, FirstHalf, e.Period())

	e.Tick(1)
	assert.Equal(t, HalfTime, e.Period())
	assert.False(t, e.Running())

	e.Tick(1)
	assert.InDelta(t, 600.0, e.Elapsed(), 1e-9)

	e.Resume()
	assert.Equal(t, SecondHalf, e.Period())
	assert.True(t, e.Running())

	for i := 0; i < 599; i++ {
		e.Tick(1)
	}
	assert.Equal(t, SecondHalf, e.Period())
	e.Tick(1)
	assert.Equal(t, Finished, e.Period())
	assert.False(t, e.Running())

	e.Resume()
	e.Start()
	assert.Equal(t, Finished, e.Period())
	assert.False(t, e.Running())
}

func TestPauseStopsTime(t *testing.T) {
	e := NewFixed(70, 70, 0.5, 0.5, seeded(2))
	e.Start()
	e.Tick(5)
	e.Pause()
	e.Tick(5)
	assert.InDelta(t, 5.0, e.Elapsed(), 1e-9)
	e.Resume()
	assert.Equal(t, FirstHalf, e.Period())
	e.Tick(5)
	assert.InDelta(t, 10.0, e.Elapsed(), 1e-9)
}

func TestStartDoesNotUnpause(t *testing.T) {
	e := NewFixed(70, 70, 0.5, 0.5, seeded(2))
	e.Start()
	e.Tick(5)
	e.Pause()

	e.Start()
	assert.False(t, e.Running())
	e.Tick(5)
	assert.InDelta(t, 5.0, e.Elapsed(), 1e-9)

	e.Resume()
	assert.True(t, e.Running())
	e.Tick(5)
	assert.InDelta(t, 10.0, e.Elapsed(), 1e-9)
}

func TestBoundaryTickOnlyTransitions(t *testing.T) {
	opts := seeded(3)
	opts.GoalRate = 1000
	e := NewFixed(70, 70, 0.5, 0.5, opts)
	e.Start()
	e.Tick(599.5)
	ball := e.Ball()
	events := len(e.Events())

	e.Tick(10)
	assert.Equal(t, HalfTime, e.Period())
	assert.Equal(t, ball, e.Ball())
	assert.Len(t, e.Events(), events)
}

func TestSpeedAndClock(t *testing.T) {
	e := NewFixed(70, 70, 0.5, 0.5, seeded(4))
	e.SetSpeed(2)
	e.SetSpeed(-1)
	e.Start()
	e.Tick(62.85)
	assert.InDelta(t, 125.7, e.Elapsed(), 1e-9)
	assert.Equal(t, 2, e.Minute())
	assert.Equal(t, "02:05", e.Clock())
}

func TestEqualRatingsBalance(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	var homeWins, awayWins, draws int
	for i := 0; i < 500; i++ {
		opts := DefaultOptions()
		opts.Rand = rng
		e := NewFixed(70, 70, 0.5, 0.5, opts)
		RunToEnd(e, 1)

		side, ok := e.Winner()
		switch {
		case !ok:
			draws++
		case side == domain.Home:
			homeWins++
		default:
			awayWins++
		}
	}

	assert.GreaterOrEqual(t, homeWins, 1)
	assert.GreaterOrEqual(t, awayWins, 1)
	assert.Positive(t, draws)
	assert.LessOrEqual(t, homeWins, 350)
	assert.LessOrEqual(t, awayWins, 350)
}

func TestStrongerSideScoresMore(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	var strong, weak int
	for i := 0; i < 200; i++ {
		opts := DefaultOptions()
		opts.Rand = rng
		e := NewFixed(90, 50, 0.5, 0.5, opts)
		RunToEnd(e, 1)
		h, a := e.Score()
		strong += h
		weak += a
	}
	assert.Greater(t, strong, weak)
}

func TestZeroRatingSuppressesGoals(t *testing.T) {
	opts := seeded(5)
	opts.GoalRate = 1000
	e := NewFixed(0, 0, 0.5, 0.5, opts)
	RunToEnd(e, 1)
	h, a := e.Score()
	assert.Zero(t, h+a)
	assert.Empty(t, e.Events())
}

func TestGoalEventsMatchScore(t *testing.T) {
	opts := seeded(6)
	opts.GoalRate = 0.05
	e := NewFixed(60, 80, 0.9, 0.3, opts)
	RunToEnd(e, 1)

	var goals [2]int
	for _, ev := range e.Events() {
		require.Equal(t, GoalEvent, ev.Kind)
		assert.GreaterOrEqual(t, ev.Minute, 0)
		assert.LessOrEqual(t, ev.Minute, 19)
		goals[ev.Side]++
	}
	h, a := e.Score()
	assert.Equal(t, h, goals[domain.Home])
	assert.Equal(t, a, goals[domain.Away])
	assert.Positive(t, h+a)
}

func TestBallStaysOnPitch(t *testing.T) {
	for _, dt := range []float64{0.5, 1, 10} {
		e := NewFixed(95, 5, 1, 0, seeded(8))
		e.Start()
		for i := 0; i < 1000 && e.Period() != Finished; i++ {
			if !e.Running() {
				e.Resume()
			}
			e.Tick(dt)
			b := e.Ball()
			require.LessOrEqual(t, b.X, PitchHalfLength)
			require.GreaterOrEqual(t, b.X, -PitchHalfLength)
			require.LessOrEqual(t, b.Y, PitchHalfWidth)
			require.GreaterOrEqual(t, b.Y, -PitchHalfWidth)
		}
	}
}

func TestChemistryNudgesRating(t *testing.T) {
	e := NewFixed(70, 70, 1, 0, seeded(9))
	assert.InDelta(t, 77.0, e.EffectiveRating(domain.Home), 1e-9)
	assert.InDelta(t, 63.0, e.EffectiveRating(domain.Away), 1e-9)
}

func TestRecentEventsAndWinner(t *testing.T) {
	e := NewFixed(70, 70, 0.5, 0.5, seeded(10))
	_, ok := e.Winner()
	assert.False(t, ok)

	e.events = []Event{{Minute: 1}, {Minute: 2}, {Minute: 3}}
	recent := e.RecentEvents(2)
	require.Len(t, recent, 2)
	assert.Equal(t, 3, recent[0].Minute)
	assert.Equal(t, 2, recent[1].Minute)
	assert.Len(t, e.RecentEvents(10), 3)

	e.period = Finished
	e.score = [2]int{1, 2}
	side, ok := e.Winner()
	require.True(t, ok)
	assert.Equal(t, domain.Away, side)

	e.score = [2]int{2, 2}
	_, ok = e.Winner()
	assert.False(t, ok)
}

func TestEventSummary(t *testing.T) {
	ev := Event{Kind: GoalEvent, Side: domain.Home, Minute: 12, Detail: "Loïc makes no mistake!"}
	assert.Equal(t, "12' home goal: Loïc makes no mistake!", ev.Summary())
	assert.Equal(t, "3' away yellow_card", Event{Kind: YellowCardEvent, Side: domain.Away, Minute: 3}.Summary())
	assert.Equal(t, "half_time", HalfTime.String())
}
