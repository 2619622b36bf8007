package service

import (
	"scifoot/internal/powerup"
	"scifoot/internal/roster"

	"github.com/rs/zerolog"
)

// PlayerView is the serialized form of a catalog player.
type PlayerView struct {
	ID              int                `json:"id"`
	Name            string             `json:"name"`
	Domain          string             `json:"domain"`
	Position        string             `json:"position"`
	Base            map[string]float64 `json:"base"`
	Effective       map[string]float64 `json:"effective"`
	Rating          float64            `json:"rating"`
	StaminaMax      float64            `json:"stamina_max"`
	Ability         string             `json:"ability"`
	AbilityCooldown float64            `json:"ability_cooldown"`
	Traits          []roster.Trait     `json:"traits"`
}

// PowerUpView is the serialized form of a catalog power-up.
type PowerUpView struct {
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Rarity      string             `json:"rarity"`
	Duration    float64            `json:"duration"`
	Modifiers   map[string]float64 `json:"modifiers"`
}

type CatalogService struct {
	logger zerolog.Logger
}

func NewCatalogService(logger zerolog.Logger) *CatalogService {
	return &CatalogService{logger: logger}
}

func (s *CatalogService) ListPlayers() []PlayerView {
	players := roster.Catalog()
	out := make([]PlayerView, len(players))
	for i, p := range players {
		out[i] = NewPlayerView(p)
	}
	s.logger.Debug().Int("count", len(out)).Msg("player catalog listed")
	return out
}

func (s *CatalogService) ListPowerUps() []PowerUpView {
	entries := powerup.Catalog()
	out := make([]PowerUpView, len(entries))
	for i, e := range entries {
		out[i] = PowerUpView{
			Name:        e.Name,
			Description: e.Description,
			Rarity:      e.Rarity.String(),
			Duration:    e.Duration,
			Modifiers:   e.Modifiers.Map(),
		}
	}
	return out
}

func NewPlayerView(p *roster.Player) PlayerView {
	v := PlayerView{
		ID:         p.ID,
		Name:       p.Name,
		Domain:     p.Domain.String(),
		Position:   p.Preferred.String(),
		Base:       p.Base.Map(),
		Effective:  p.Effective.Map(),
		Rating:     p.Rating(),
		StaminaMax: p.StaminaMax,
		Traits:     p.Traits,
	}
	if p.Ability != nil {
		v.Ability = p.Ability.Name
		v.AbilityCooldown = p.Ability.CooldownMax
	}
	if v.Traits == nil {
		v.Traits = []roster.Trait{}
	}
	return v
}
