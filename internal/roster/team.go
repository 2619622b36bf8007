package roster

import (
	"errors"
	"fmt"
	"sort"

	"scifoot/internal/chemistry"
	"scifoot/internal/domain"
)

const (
	MaxRoster     = 15
	DefaultBudget = 100_000

	trainingForm    = 0.03
	trainingStamina = 20.0
	restMorale      = 0.05
	winPoints       = 3
	drawPoints      = 1
)

var (
	ErrRosterFull     = errors.New("roster is full")
	ErrPlayerNotFound = errors.New("player not found")
	ErrNotOnPitch     = errors.New("player is not on the pitch")
	ErrAlreadyOnPitch = errors.New("player is already on the pitch")
	ErrUnavailable    = errors.New("player is injured or suspended")
)

// Record is a team's season tally.
type Record struct {
	Wins         int
	Draws        int
	Losses       int
	GoalsFor     int
	GoalsAgainst int
}

func (r Record) Points() int {
	return r.Wins*winPoints + r.Draws*drawPoints
}

func (r Record) GoalDifference() int {
	return r.GoalsFor - r.GoalsAgainst
}

func (r Record) Played() int {
	return r.Wins + r.Draws + r.Losses
}

type Team struct {
	ID         int
	Name       string
	Players    []*Player
	Formation  domain.Formation
	Intensity  float64
	Budget     int
	Reputation float64
	Chemistry  float64
	Record
}

func NewTeam(id int, name string) *Team {
	return &Team{
		ID:         id,
		Name:       name,
		Formation:  domain.Formation121,
		Intensity:  1,
		Budget:     DefaultBudget,
		Reputation: 0.5,
		Chemistry:  chemistry.Neutral,
	}
}

// AddPlayer appends p to the roster and refreshes chemistry.
func (t *Team) AddPlayer(p *Player) error {
	if len(t.Players) >= MaxRoster {
		return fmt.Errorf("add %s to %s: %w", p.Name, t.Name, ErrRosterFull)
	}
	t.Players = append(t.Players, p)
	t.RecalculateChemistry()
	return nil
}

func (t *Team) RemovePlayer(id int) (*Player, error) {
	for i, p := range t.Players {
		if p.ID == id {
			t.Players = append(t.Players[:i], t.Players[i+1:]...)
			t.RecalculateChemistry()
			return p, nil
		}
	}
	return nil, fmt.Errorf("remove %d from %s: %w", id, t.Name, ErrPlayerNotFound)
}

func (t *Team) Player(id int) (*Player, bool) {
	for _, p := range t.Players {
		if p.ID == id {
			return p, true
		}
	}
	return nil, false
}

// Starters returns the players currently on the pitch, in roster order.
func (t *Team) Starters() []*Player {
	var out []*Player
	for _, p := range t.Players {
		if p.OnPitch {
			out = append(out, p)
		}
	}
	return out
}

// Bench returns available players who are not on the pitch.
func (t *Team) Bench() []*Player {
	var out []*Player
	for _, p := range t.Players {
		if !p.OnPitch && p.Available() {
			out = append(out, p)
		}
	}
	return out
}

// Substitute swaps an on-pitch player for a bench player. The incoming
// player takes the outgoing player's position.
func (t *Team) Substitute(outID, inID int) error {
	out, ok := t.Player(outID)
	if !ok {
		return fmt.Errorf("substitute out %d: %w", outID, ErrPlayerNotFound)
	}
	in, ok := t.Player(inID)
	if !ok {
		return fmt.Errorf("substitute in %d: %w", inID, ErrPlayerNotFound)
	}
	if !out.OnPitch {
		return fmt.Errorf("substitute out %s: %w", out.Name, ErrNotOnPitch)
	}
	if in.OnPitch {
		return fmt.Errorf("substitute in %s: %w", in.Name, ErrAlreadyOnPitch)
	}
	if !in.Available() {
		return fmt.Errorf("substitute in %s: %w", in.Name, ErrUnavailable)
	}

	out.OnPitch = false
	in.OnPitch = true
	in.Position = out.Position
	t.RecalculateChemistry()
	return nil
}

// Domains lists the domains of the starters.
func (t *Team) Domains() []domain.Domain {
	starters := t.Starters()
	out := make([]domain.Domain, len(starters))
	for i, p := range starters {
		out[i] = p.Domain
	}
	return out
}

func (t *Team) RecalculateChemistry() {
	t.Chemistry = chemistry.Team(t.Domains())
}

// Rating is the mean rating of the starters, or zero with nobody on the pitch.
func (t *Team) Rating() float64 {
	starters := t.Starters()
	if len(starters) == 0 {
		return 0
	}
	var total float64
	for _, p := range starters {
		total += p.Rating()
	}
	return total / float64(len(starters))
}

// Train improves form and recovers some stamina for the whole roster.
func (t *Team) Train() {
	for _, p := range t.Players {
		p.AdjustForm(trainingForm)
		p.RecoverStamina(trainingStamina)
	}
}

// Rest refills stamina and lifts morale for the whole roster.
func (t *Team) Rest() {
	for _, p := range t.Players {
		p.Stamina = p.StaminaMax
		p.AdjustMorale(restMorale)
	}
}

// RecordResult adds one finished match to the season record.
func (t *Team) RecordResult(goalsFor, goalsAgainst int) {
	switch {
	case goalsFor > goalsAgainst:
		t.Wins++
	case goalsFor < goalsAgainst:
		t.Losses++
	default:
		t.Draws++
	}
	t.GoalsFor += goalsFor
	t.GoalsAgainst += goalsAgainst
}

// Clone deep-copies the team and its players.
func (t *Team) Clone() *Team {
	c := *t
	c.Players = make([]*Player, len(t.Players))
	for i, p := range t.Players {
		c.Players[i] = p.Clone()
	}
	return &c
}

// Standing is one row of a league table.
type Standing struct {
	TeamID int
	Name   string
	Record
}

// Standings orders records by points, goal difference, goals scored, then name.
func Standings(rows []Standing) []Standing {
	out := append([]Standing(nil), rows...)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Points() != b.Points() {
			return a.Points() > b.Points()
		}
		if a.GoalDifference() != b.GoalDifference() {
			return a.GoalDifference() > b.GoalDifference()
		}
		if a.GoalsFor != b.GoalsFor {
			return a.GoalsFor > b.GoalsFor
		}
		return a.Name < b.Name
	})
	return out
}

// Standing returns the team's current league row.
func (t *Team) Standing() Standing {
	return Standing{TeamID: t.ID, Name: t.Name, Record: t.Record}
}
