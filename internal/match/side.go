package match

import (
	"scifoot/internal/domain"
	"scifoot/internal/powerup"
	"scifoot/internal/rating"
	"scifoot/internal/roster"
)

const (
	staminaDrain = 1.5
	assistChance = 0.6
	moraleSwing  = 0.05
)

// Side is one team as the engine sees it.
type Side interface {
	Rating() float64
	Chemistry() float64
	// Advance lets the side age by delta simulated seconds.
	Advance(delta float64)
}

// FixedSide has a constant rating and chemistry.
type FixedSide struct {
	rating    float64
	chemistry float64
}

func NewFixedSide(rating, chemistry float64) *FixedSide {
	return &FixedSide{rating: rating, chemistry: chemistry}
}

func (s *FixedSide) Rating() float64    { return s.rating }
func (s *FixedSide) Chemistry() float64 { return s.chemistry }
func (s *FixedSide) Advance(float64)    {}

// TeamSide plays a roster team. Starters tire, power-ups and abilities
// modify their stats, and goals are credited to individual players.
type TeamSide struct {
	team        *roster.Team
	slots       int
	inventories map[int]*powerup.Inventory
	active      []powerup.Active
}

// NewTeamSide wraps team. Each player gets an inventory of slots power-ups.
func NewTeamSide(team *roster.Team, slots int) *TeamSide {
	return &TeamSide{
		team:        team,
		slots:       slots,
		inventories: make(map[int]*powerup.Inventory),
	}
}

func (s *TeamSide) Team() *roster.Team {
	return s.team
}

// Rating is the mean rating of the starters with their active modifiers.
func (s *TeamSide) Rating() float64 {
	starters := s.team.Starters()
	if len(starters) == 0 {
		return 0
	}
	var total float64
	for _, p := range starters {
		total += p.RatingWith(s.EffectiveStats(p))
	}
	return total / float64(len(starters))
}

func (s *TeamSide) Chemistry() float64 {
	return s.team.Chemistry
}

// EffectiveStats returns p's effective stats with every running power-up
// and an active ability applied.
func (s *TeamSide) EffectiveStats(p *roster.Player) domain.Stats {
	eff := p.Effective
	for _, a := range s.active {
		if a.PlayerID == p.ID {
			eff = rating.ApplyModifiers(eff, a.Modifiers())
		}
	}
	if p.Ability != nil && p.Ability.Active() {
		eff = rating.ApplyModifiers(eff, p.Ability.Modifiers)
	}
	return eff
}

func (s *TeamSide) Advance(delta float64) {
	drain := staminaDrain * s.team.Intensity * delta
	for _, p := range s.team.Players {
		if p.OnPitch {
			p.ConsumeStamina(drain)
		}
		if p.Ability != nil {
			p.Ability.Tick(delta)
		}
	}

	running := s.active[:0]
	for _, a := range s.active {
		if a.Tick(delta) {
			running = append(running, a)
		}
	}
	s.active = running
}

// Inventory returns the power-up inventory of a roster player.
func (s *TeamSide) Inventory(playerID int) (*powerup.Inventory, bool) {
	if _, ok := s.team.Player(playerID); !ok {
		return nil, false
	}
	inv, ok := s.inventories[playerID]
	if !ok {
		inv = powerup.NewInventory(s.slots)
		s.inventories[playerID] = inv
	}
	return inv, true
}

// GivePowerUp stores k in the player's inventory.
func (s *TeamSide) GivePowerUp(playerID int, k powerup.Kind) bool {
	inv, ok := s.Inventory(playerID)
	if !ok {
		return false
	}
	return inv.Add(k)
}

// UsePowerUp activates the power-up in slot of an on-pitch player's inventory.
func (s *TeamSide) UsePowerUp(playerID, slot int) (powerup.Kind, bool) {
	p, ok := s.team.Player(playerID)
	if !ok || !p.OnPitch {
		return 0, false
	}
	inv, _ := s.Inventory(playerID)
	k, ok := inv.Use(slot)
	if !ok {
		return 0, false
	}
	a, ok := powerup.Activate(k, playerID)
	if !ok {
		return 0, false
	}
	s.active = append(s.active, a)
	return k, true
}

// ActivateAbility fires an on-pitch player's signature ability.
func (s *TeamSide) ActivateAbility(playerID int) bool {
	p, ok := s.team.Player(playerID)
	if !ok || !p.OnPitch || p.Ability == nil {
		return false
	}
	return p.Ability.Activate()
}

// ActivePowerUps returns a copy of the running power-ups.
func (s *TeamSide) ActivePowerUps() []powerup.Active {
	return append([]powerup.Active(nil), s.active...)
}

// scorer picks a forward or midfielder on the pitch, falling back to any starter.
func (s *TeamSide) scorer(rng Rand) *roster.Player {
	starters := s.team.Starters()
	var shooters []*roster.Player
	for _, p := range starters {
		if p.Position == domain.Forward || p.Position == domain.Midfielder {
			shooters = append(shooters, p)
		}
	}
	if len(shooters) == 0 {
		shooters = starters
	}
	if len(shooters) == 0 {
		return nil
	}
	return shooters[rng.Intn(len(shooters))]
}

func (s *TeamSide) assister(rng Rand, scorerID int) *roster.Player {
	var others []*roster.Player
	for _, p := range s.team.Starters() {
		if p.ID != scorerID {
			others = append(others, p)
		}
	}
	if len(others) == 0 || rng.Float64() >= assistChance {
		return nil
	}
	return others[rng.Intn(len(others))]
}

// goalkeeper returns the starter playing in goal, if any.
func (s *TeamSide) goalkeeper() *roster.Player {
	for _, p := range s.team.Starters() {
		if p.Position == domain.Goalkeeper {
			return p
		}
	}
	return nil
}

func (s *TeamSide) randomStarter(rng Rand) *roster.Player {
	starters := s.team.Starters()
	if len(starters) == 0 {
		return nil
	}
	return starters[rng.Intn(len(starters))]
}

func (s *TeamSide) shiftMorale(delta float64) {
	for _, p := range s.team.Players {
		p.AdjustMorale(delta)
	}
}
