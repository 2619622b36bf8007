// Package match runs a 5-a-side match as an explicit state machine driven by
// external ticks.
package match

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"scifoot/internal/chemistry"
	"scifoot/internal/domain"
	"scifoot/internal/roster"
	"scifoot/internal/selection"
)

const (
	HalfLength  = 600.0
	MatchLength = 1200.0

	// PitchHalfLength and PitchHalfWidth bound the ball position.
	PitchHalfLength = 48.0
	PitchHalfWidth  = 23.0

	DefaultGoalRate = 0.0018
	DefaultSpeed    = 1.0

	ballSpeed      = 8.0
	possessionPull = 3.0
	cardRate       = 0.0003
	discoveryRate  = 0.0002
	highlightRate  = 0.0005
	shotRate       = 0.004
	bookingChance  = 0.7
	charmerFactor  = 0.3
)

// Rand is the random source the engine draws from. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

type Options struct {
	// GoalRate is the goal probability per simulated second.
	GoalRate float64
	// Speed multiplies every tick delta.
	Speed float64
	// Rand defaults to a time-seeded source.
	Rand Rand
}

func DefaultOptions() Options {
	return Options{GoalRate: DefaultGoalRate, Speed: DefaultSpeed}
}

// Point is a position on the pitch, X along the length and Y across it.
type Point struct {
	X float64
	Y float64
}

// Engine owns the state of one match. It is not safe for concurrent use.
type Engine struct {
	home, away Side

	goalRate float64
	speed    float64
	rng      Rand

	started bool
	running bool
	period  Period
	elapsed float64
	score   [2]int
	ball    Point
	events  []Event
}

func New(home, away Side, opts Options) *Engine {
	if opts.GoalRate <= 0 {
		opts.GoalRate = DefaultGoalRate
	}
	if opts.Speed <= 0 {
		opts.Speed = DefaultSpeed
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Engine{
		home:     home,
		away:     away,
		goalRate: opts.GoalRate,
		speed:    opts.Speed,
		rng:      opts.Rand,
		period:   FirstHalf,
	}
}

// NewFixed sets up a match between two sides of constant strength.
func NewFixed(homeRating, awayRating, homeChemistry, awayChemistry float64, opts Options) *Engine {
	return New(NewFixedSide(homeRating, homeChemistry), NewFixedSide(awayRating, awayChemistry), opts)
}

// Start kicks off the match. Only the first call has any effect: a match
// that was paused, or stopped at half-time, continues through Resume.
func (e *Engine) Start() {
	if e.started {
		return
	}
	e.started = true
	e.running = true
	e.period = FirstHalf
	for _, s := range []Side{e.home, e.away} {
		if ts, ok := s.(*TeamSide); ok {
			for _, p := range ts.team.Starters() {
				p.Appearances++
			}
		}
	}
}

func (e *Engine) Pause() {
	e.running = false
}

// Resume continues play, moving from half-time into the second half.
// A finished match stays finished.
func (e *Engine) Resume() {
	if e.period == Finished {
		return
	}
	if !e.started {
		e.Start()
		return
	}
	if e.period == HalfTime {
		e.period = SecondHalf
	}
	e.running = true
}

// SetSpeed changes the tick multiplier. Non-positive values are ignored.
func (e *Engine) SetSpeed(speed float64) {
	if speed > 0 {
		e.speed = speed
	}
}

// Tick advances the match by delta real seconds. delta must not be negative.
// The tick that crosses a period boundary only performs the transition.
func (e *Engine) Tick(delta float64) {
	if !e.running {
		return
	}
	d := delta * e.speed
	e.elapsed += d

	switch {
	case e.period == FirstHalf && e.elapsed >= HalfLength:
		e.period = HalfTime
		e.running = false
		return
	case e.period == SecondHalf && e.elapsed >= MatchLength:
		e.finish()
		return
	}
	e.simulate(d)
}

func (e *Engine) simulate(d float64) {
	e.ball.X = clamp(e.ball.X+e.uniform()*d*ballSpeed, PitchHalfLength)
	e.ball.Y = clamp(e.ball.Y+e.uniform()*d*ballSpeed, PitchHalfWidth)

	home, away := e.EffectiveRating(domain.Home), e.EffectiveRating(domain.Away)
	if total := home + away; total > 0 {
		e.ball.X = clamp(e.ball.X+(home/total-0.5)*d*possessionPull, PitchHalfLength)
	}

	e.home.Advance(d)
	e.away.Advance(d)

	if e.rng.Float64() < e.goalRate*d {
		home, away = e.EffectiveRating(domain.Home), e.EffectiveRating(domain.Away)
		if total := home + away; total > 0 {
			side := domain.Away
			if e.rng.Float64() < home/total {
				side = domain.Home
			}
			e.goal(side)
		}
	}

	if e.hasSquad() {
		e.randomEvents(d)
	}
}

func (e *Engine) goal(side domain.Side) {
	e.score[side]++
	ev := Event{Kind: GoalEvent, Side: side, Minute: e.Minute()}

	if ts, ok := e.TeamSide(side); ok {
		if scorer := ts.scorer(e.rng); scorer != nil {
			ev.PlayerID = scorer.ID
			ev.Detail = fmt.Sprintf(goalLines[e.rng.Intn(len(goalLines))], scorer.Name)
			scorer.ScoreGoal()
			if a := ts.assister(e.rng, scorer.ID); a != nil {
				ev.AssistID = a.ID
				a.Assist()
			}
		}
		ts.shiftMorale(moraleSwing)
	}
	if ts, ok := e.TeamSide(side.Opponent()); ok {
		ts.shiftMorale(-moraleSwing)
	}
	e.events = append(e.events, ev)
}

func (e *Engine) randomEvents(d float64) {
	if e.rng.Float64() < cardRate*d {
		e.booking()
	}
	if e.rng.Float64() < discoveryRate*d {
		e.discovery()
	}
	if e.rng.Float64() < highlightRate*d {
		e.highlight()
	}
	if e.rng.Float64() < shotRate*d {
		e.shotOnKeeper()
	}
}

// shotOnKeeper resolves a shot that is not part of the goal draw: the keeper
// either saves it, which is logged, or it goes wide. The score never changes.
func (e *Engine) shotOnKeeper() {
	defending := e.coinFlip()
	ts, ok := e.TeamSide(defending)
	if !ok {
		return
	}
	keeper := ts.goalkeeper()
	if keeper == nil {
		return
	}

	shot := e.side(defending.Opponent()).Rating()
	var shooterID int
	if att, ok := e.TeamSide(defending.Opponent()); ok {
		if shooter := att.scorer(e.rng); shooter != nil {
			eff := att.EffectiveStats(shooter)
			shot = (eff[domain.Precision] + eff[domain.Attack]) / 2
			shooterID = shooter.ID
		}
	}

	keep := selection.KeeperScore(ts.EffectiveStats(keeper))
	if keep+shot <= 0 || e.rng.Float64() >= keep/(keep+shot) {
		return
	}
	e.events = append(e.events, Event{
		Kind:     SaveEvent,
		Side:     defending,
		Minute:   e.Minute(),
		PlayerID: keeper.ID,
		AssistID: shooterID,
		Detail:   fmt.Sprintf(saveLines[e.rng.Intn(len(saveLines))], keeper.Name),
	})
}

func (e *Engine) booking() {
	side := e.coinFlip()
	ts, ok := e.TeamSide(side)
	if !ok {
		return
	}
	p := ts.randomStarter(e.rng)
	if p == nil {
		return
	}
	chance := bookingChance
	if p.HasTrait(roster.TraitRefereeCharmer) {
		chance *= charmerFactor
	}
	if e.rng.Float64() > chance {
		return
	}
	p.YellowCards++
	e.events = append(e.events, Event{
		Kind:     YellowCardEvent,
		Side:     side,
		Minute:   e.Minute(),
		PlayerID: p.ID,
		Detail:   bookingReasons[e.rng.Intn(len(bookingReasons))],
	})
}

func (e *Engine) discovery() {
	side := e.coinFlip()
	ts, ok := e.TeamSide(side)
	if !ok {
		return
	}
	d := discoveries[e.rng.Intn(len(discoveries))]
	for _, p := range ts.team.Starters() {
		p.AdjustForm(d.bonus)
	}
	e.events = append(e.events, Event{
		Kind:   DiscoveryEvent,
		Side:   side,
		Minute: e.Minute(),
		Detail: d.description,
		Bonus:  d.bonus,
	})
}

func (e *Engine) highlight() {
	side := e.coinFlip()
	ts, ok := e.TeamSide(side)
	if !ok {
		return
	}
	p := ts.randomStarter(e.rng)
	if p == nil {
		return
	}
	e.events = append(e.events, Event{
		Kind:     HighlightEvent,
		Side:     side,
		Minute:   e.Minute(),
		PlayerID: p.ID,
		Detail:   highlights[e.rng.Intn(len(highlights))],
	})
}

func (e *Engine) finish() {
	e.running = false
	e.period = Finished
	if ts, ok := e.home.(*TeamSide); ok {
		ts.team.RecordResult(e.score[domain.Home], e.score[domain.Away])
	}
	if ts, ok := e.away.(*TeamSide); ok {
		ts.team.RecordResult(e.score[domain.Away], e.score[domain.Home])
	}
}

// UsePowerUp activates a stored power-up for a player on a team side and logs it.
func (e *Engine) UsePowerUp(side domain.Side, playerID, slot int) bool {
	ts, ok := e.TeamSide(side)
	if !ok {
		return false
	}
	k, ok := ts.UsePowerUp(playerID, slot)
	if !ok {
		return false
	}
	e.events = append(e.events, Event{
		Kind:     PowerUpEvent,
		Side:     side,
		Minute:   e.Minute(),
		PlayerID: playerID,
		Detail:   k.String(),
	})
	return true
}

// ActivateAbility fires a player's ability on a team side and logs it.
func (e *Engine) ActivateAbility(side domain.Side, playerID int) bool {
	ts, ok := e.TeamSide(side)
	if !ok || !ts.ActivateAbility(playerID) {
		return false
	}
	p, _ := ts.team.Player(playerID)
	e.events = append(e.events, Event{
		Kind:     AbilityEvent,
		Side:     side,
		Minute:   e.Minute(),
		PlayerID: playerID,
		Detail:   p.Ability.Name,
	})
	return true
}

// Substitute swaps players on a team side and logs the change.
func (e *Engine) Substitute(side domain.Side, outID, inID int) error {
	ts, ok := e.TeamSide(side)
	if !ok {
		return fmt.Errorf("substitute on %s side: no roster", side)
	}
	if err := ts.team.Substitute(outID, inID); err != nil {
		return err
	}
	e.events = append(e.events, Event{
		Kind:     SubstitutionEvent,
		Side:     side,
		Minute:   e.Minute(),
		PlayerID: outID,
		AssistID: inID,
	})
	return nil
}

// EffectiveRating is the side's rating nudged by its chemistry.
func (e *Engine) EffectiveRating(side domain.Side) float64 {
	s := e.side(side)
	return s.Rating() * (1 + chemistry.Bonus(s.Chemistry()))
}

func (e *Engine) Score() (home, away int) {
	return e.score[domain.Home], e.score[domain.Away]
}

func (e *Engine) Period() Period   { return e.period }
func (e *Engine) Running() bool    { return e.running }
func (e *Engine) Elapsed() float64 { return e.elapsed }
func (e *Engine) Ball() Point      { return e.ball }
func (e *Engine) Home() Side       { return e.home }
func (e *Engine) Away() Side       { return e.away }

// Minute is the whole number of elapsed minutes.
func (e *Engine) Minute() int {
	return int(e.elapsed / 60)
}

// Clock formats the elapsed time as MM:SS.
func (e *Engine) Clock() string {
	return fmt.Sprintf("%02d:%02d", e.Minute(), int(math.Mod(e.elapsed, 60)))
}

// Events returns a copy of the full event log in order.
func (e *Engine) Events() []Event {
	return append([]Event(nil), e.events...)
}

// RecentEvents returns up to n events, most recent first.
func (e *Engine) RecentEvents(n int) []Event {
	if n > len(e.events) {
		n = len(e.events)
	}
	out := make([]Event, 0, n)
	for i := len(e.events) - 1; i >= len(e.events)-n; i-- {
		out = append(out, e.events[i])
	}
	return out
}

// Winner reports the winning side of a finished match. Draws and unfinished
// matches report false.
func (e *Engine) Winner() (domain.Side, bool) {
	if e.period != Finished {
		return 0, false
	}
	home, away := e.Score()
	switch {
	case home > away:
		return domain.Home, true
	case away > home:
		return domain.Away, true
	}
	return 0, false
}

// RunToEnd drives the match to Finished with fixed ticks of dt, resuming
// after half-time.
func RunToEnd(e *Engine, dt float64) {
	if dt <= 0 {
		return
	}
	e.Start()
	for e.period != Finished {
		if !e.running {
			e.Resume()
		}
		e.Tick(dt)
	}
}

// TeamSide returns the roster-backed side, if s is one.
func (e *Engine) TeamSide(s domain.Side) (*TeamSide, bool) {
	ts, ok := e.side(s).(*TeamSide)
	return ts, ok
}

func (e *Engine) side(s domain.Side) Side {
	if s == domain.Home {
		return e.home
	}
	return e.away
}

func (e *Engine) hasSquad() bool {
	_, home := e.home.(*TeamSide)
	_, away := e.away.(*TeamSide)
	return home || away
}

func (e *Engine) coinFlip() domain.Side {
	if e.rng.Float64() < 0.5 {
		return domain.Home
	}
	return domain.Away
}

func (e *Engine) uniform() float64 {
	return e.rng.Float64()*2 - 1
}

func clamp(v, limit float64) float64 {
	return math.Max(-limit, math.Min(v, limit))
}
