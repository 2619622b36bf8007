// Package roster holds players and teams: the mutable records the match
// engine reads ratings from.
package roster

import (
	"math"

	"scifoot/internal/domain"
	"scifoot/internal/powerup"
	"scifoot/internal/rating"
)

const (
	MinForm   = 0.5
	MaxForm   = 1.5
	MinMorale = 0.5
	MaxMorale = 1.5

	fatigueThreshold = 15.0
	fatigueFormLoss  = 0.002
	goalXP           = 100
	assistXP         = 50
	xpPerLevel       = 1000
	levelStatGain    = 0.3
	levelStatCap     = 95.0
	moraleSwing      = 0.05
)

// TraitRefereeCharmer makes a player far less likely to be booked.
const TraitRefereeCharmer = "Referee Charmer"

// Trait is a descriptive personality note attached to a player.
type Trait struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Effect      string `json:"effect"`
}

type Player struct {
	ID        int
	Name      string
	Domain    domain.Domain
	Preferred domain.Position
	Position  domain.Position

	Base      domain.Stats
	Effective domain.Stats

	// StaminaMultiplier is a fixed trait scaling the stamina pool.
	StaminaMultiplier float64
	Stamina           float64
	StaminaMax        float64
	Form              float64
	Morale            float64

	Level      int
	Experience int

	Goals       int
	Assists     int
	Appearances int
	YellowCards int

	OnPitch   bool
	Injured   bool
	Suspended bool

	Ability *powerup.Ability
	Traits  []Trait
}

func NewPlayer(id int, name string, d domain.Domain, pos domain.Position, base domain.Stats) *Player {
	p := &Player{
		ID:                id,
		Name:              name,
		Domain:            d,
		Preferred:         pos,
		Position:          pos,
		Base:              base,
		Effective:         rating.EffectiveStats(base, d),
		StaminaMultiplier: 1,
		Form:              1,
		Morale:            1,
		Level:             1,
		Ability:           powerup.ForDomain(d),
	}
	p.StaminaMax = rating.StaminaMax(base[domain.Endurance], p.StaminaMultiplier)
	p.Stamina = p.StaminaMax
	return p
}

// SetStaminaMultiplier rescales the stamina pool and refills it.
func (p *Player) SetStaminaMultiplier(m float64) {
	p.StaminaMultiplier = m
	p.StaminaMax = rating.StaminaMax(p.Base[domain.Endurance], m)
	p.Stamina = p.StaminaMax
}

func (p *Player) StaminaRatio() float64 {
	if p.StaminaMax <= 0 {
		return 0
	}
	return p.Stamina / p.StaminaMax
}

// Rating is the current overall rating including form, morale and fatigue.
func (p *Player) Rating() float64 {
	return p.RatingWith(p.Effective)
}

// RatingWith rates the player as if their effective stats were eff.
func (p *Player) RatingWith(eff domain.Stats) float64 {
	return rating.PlayerRating(eff, p.Form, p.Morale, p.StaminaRatio())
}

// ConsumeStamina drains stamina. A nearly exhausted player also loses form.
func (p *Player) ConsumeStamina(amount float64) {
	p.Stamina = math.Max(p.Stamina-amount, 0)
	if p.Stamina < fatigueThreshold {
		p.Form = math.Max(p.Form-fatigueFormLoss, MinForm)
	}
}

func (p *Player) RecoverStamina(amount float64) {
	p.Stamina = math.Min(p.Stamina+amount, p.StaminaMax)
}

func (p *Player) AdjustForm(delta float64) {
	p.Form = clamp(p.Form+delta, MinForm, MaxForm)
}

func (p *Player) AdjustMorale(delta float64) {
	p.Morale = clamp(p.Morale+delta, MinMorale, MaxMorale)
}

func (p *Player) ScoreGoal() {
	p.Goals++
	p.Experience += goalXP
	p.AdjustMorale(moraleSwing)
	p.checkLevelUp()
}

func (p *Player) Assist() {
	p.Assists++
	p.Experience += assistXP
	p.checkLevelUp()
}

func (p *Player) checkLevelUp() {
	need := p.Level * xpPerLevel
	if p.Experience < need {
		return
	}
	p.Level++
	p.Experience -= need
	for _, s := range []domain.Stat{domain.Speed, domain.Precision, domain.Endurance} {
		p.Base[s] = math.Min(p.Base[s]+levelStatGain, levelStatCap)
	}
	p.Effective = rating.EffectiveStats(p.Base, p.Domain)
}

func (p *Player) HasTrait(name string) bool {
	for _, t := range p.Traits {
		if t.Name == name {
			return true
		}
	}
	return false
}

// Available reports whether the player can be selected.
func (p *Player) Available() bool {
	return !p.Injured && !p.Suspended
}

// Clone returns a deep copy of the player.
func (p *Player) Clone() *Player {
	c := *p
	c.Traits = append([]Trait(nil), p.Traits...)
	if p.Ability != nil {
		a := *p.Ability
		c.Ability = &a
	}
	return &c
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
