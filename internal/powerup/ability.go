package powerup

import "scifoot/internal/domain"

// Stats aliases the attribute vector used for modifiers.
type Stats = domain.Stats

// Ability is a player's signature move, gated by a cooldown. Activating it
// starts the cooldown; the ability stays active until the cooldown expires.
type Ability struct {
	Name        string
	Description string
	CooldownMax float64
	Modifiers   Stats

	cooldown float64
	active   bool
}

func NewAbility(name, description string, cooldownMax float64, modifiers Stats) *Ability {
	return &Ability{Name: name, Description: description, CooldownMax: cooldownMax, Modifiers: modifiers}
}

func (a *Ability) Available() bool  { return a.cooldown <= 0 }
func (a *Ability) Active() bool     { return a.active }
func (a *Ability) Cooldown() float64 { return a.cooldown }

// Activate succeeds only when the cooldown has elapsed.
func (a *Ability) Activate() bool {
	if !a.Available() {
		return false
	}
	a.cooldown = a.CooldownMax
	a.active = true
	return true
}

// Tick decreases the cooldown by delta, floored at zero, and clears the
// active flag once it hits zero.
func (a *Ability) Tick(delta float64) {
	if a.cooldown > 0 {
		a.cooldown -= delta
		if a.cooldown < 0 {
			a.cooldown = 0
		}
	}
	if a.cooldown <= 0 {
		a.active = false
	}
}

type abilitySpec struct {
	name        string
	description string
	cooldown    float64
	modifiers   map[domain.Stat]float64
}

var abilities = [domain.NumDomains]abilitySpec{
	domain.ComputerScience: {"Algorithmic Anticipation", "Predicts opponent movement. +40% intelligence.", 40,
		map[domain.Stat]float64{domain.Intelligence: 1.4}},
	domain.PhysicsMechanics: {"Ballistic Shot", "Computes the perfect trajectory. Power x2.", 35,
		map[domain.Stat]float64{domain.Strength: 2.0}},
	domain.BiologyChemistry: {"Cellular Dribble", "Ultra-fast reactions for lightning dribbles.", 25,
		map[domain.Stat]float64{domain.Creativity: 1.3, domain.Speed: 1.2}},
	domain.PhysicsChemistry: {"Perfect Balance", "Every attribute boosted by 20%.", 45,
		map[domain.Stat]float64{
			domain.Speed: 1.2, domain.Strength: 1.2, domain.Precision: 1.2, domain.Endurance: 1.2, domain.Intelligence: 1.2,
			domain.Creativity: 1.2, domain.Defense: 1.2, domain.Attack: 1.2, domain.Heading: 1.2,
		}},
	domain.Mathematics: {"Geometry of the Game", "The perfect angle for every pass. Maximum precision.", 35,
		map[domain.Stat]float64{domain.Precision: 1.5}},
	domain.Electronics: {"Integrated Circuit", "Electronic reactivity: speed and coordination.", 30,
		map[domain.Stat]float64{domain.Speed: 1.3, domain.Intelligence: 1.2}},
	domain.BiologyMedicine: {"Adrenaline Shot", "Strength and endurance x1.8.", 40,
		map[domain.Stat]float64{domain.Strength: 1.8, domain.Endurance: 1.8}},
	domain.Chemistry: {"Catalyst", "Accelerates the team's reactions. +15% speed.", 50,
		map[domain.Stat]float64{domain.Speed: 1.15}},
	domain.MathematicsBanking: {"Optimal ROI", "Tactical return on investment. +30% attack.", 40,
		map[domain.Stat]float64{domain.Attack: 1.3}},
	domain.GrantsSubsidies: {"Flamboyant Volley", "A spectacular, unstoppable volley.", 30,
		map[domain.Stat]float64{domain.Attack: 1.25, domain.Creativity: 1.25}},
	domain.Cybersecurity: {"Defensive Firewall", "Impenetrable defence.", 45,
		map[domain.Stat]float64{domain.Defense: 1.5}},
	domain.ElectronicsBanking: {"Overclocked Sprint", "Electronic overdrive: speed x2.5.", 35,
		map[domain.Stat]float64{domain.Speed: 2.5}},
	domain.AgrifoodGeology: {"Telluric Pressing", "Intensified ball recovery. +50% defence.", 30,
		map[domain.Stat]float64{domain.Defense: 1.5}},
}

// ForDomain builds a fresh, ready-to-use ability for d.
func ForDomain(d domain.Domain) *Ability {
	if !d.Valid() {
		return NewAbility("", "", 0, domain.Uniform(1))
	}
	s := abilities[d]
	return NewAbility(s.name, s.description, s.cooldown, mods(s.modifiers))
}
