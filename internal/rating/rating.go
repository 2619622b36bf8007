// Package rating turns base player attributes into effective attributes and
// scalar ratings. Everything here is a pure function over immutable tables.
package rating

import (
	"errors"
	"fmt"
	"math"

	"scifoot/internal/domain"
)

const (
	// StatCap bounds every effective attribute after multipliers.
	StatCap = 99.0

	// StaminaFloor is the lowest stamina ratio that still counts toward rating.
	StaminaFloor = 0.5

	staminaBase     = 80.0
	staminaPerPoint = 0.2
	minFactor       = 0.5
	maxFactor       = 2.0
	minFactorSum    = 7.0
	maxFactorSum    = 12.0
	strengthFactor  = 1.1
	weaknessFactor  = 0.95
	balancedDomain  = domain.PhysicsChemistry
)

// bonuses maps each domain to its multiplicative factors, in domain.Stat order.
var bonuses = [domain.NumDomains]domain.Stats{
	domain.ComputerScience:    domain.NewStats(1.1, 1.2, 0.85, 1.05, 1.4, 1.2, 1.15, 0.95, 1.1),
	domain.PhysicsMechanics:   domain.NewStats(1.1, 1.3, 1.35, 1.25, 1.1, 1.0, 0.75, 1.4, 1.0),
	domain.BiologyChemistry:   domain.NewStats(1.2, 0.9, 1.2, 0.75, 1.1, 1.4, 0.9, 1.2, 0.9),
	domain.PhysicsChemistry:   domain.NewStats(1.1, 1.15, 1.25, 1.1, 1.2, 1.2, 1.2, 1.2, 1.0),
	domain.Mathematics:        domain.NewStats(1.3, 1.0, 0.9, 1.2, 1.5, 0.85, 1.3, 0.9, 1.0),
	domain.Electronics:        domain.NewStats(1.15, 1.1, 1.2, 1.25, 1.2, 1.1, 0.9, 1.1, 1.3),
	domain.BiologyMedicine:    domain.NewStats(0.8, 1.3, 1.25, 1.3, 1.1, 1.0, 1.0, 1.2, 1.0),
	domain.Chemistry:          domain.NewStats(0.85, 1.0, 1.1, 1.0, 1.2, 1.4, 1.15, 1.25, 1.0),
	domain.MathematicsBanking: domain.NewStats(1.1, 0.85, 1.2, 1.25, 1.35, 1.3, 1.0, 1.3, 1.0),
	domain.GrantsSubsidies:    domain.NewStats(0.8, 1.1, 1.2, 1.0, 1.1, 1.5, 1.15, 1.35, 1.2),
	domain.Cybersecurity:      domain.NewStats(1.0, 1.4, 0.75, 1.1, 1.3, 0.9, 1.6, 0.6, 1.3),
	domain.ElectronicsBanking: domain.NewStats(1.4, 1.1, 0.75, 1.0, 1.1, 1.35, 1.1, 1.2, 1.0),
	domain.AgrifoodGeology:    domain.NewStats(1.35, 1.1, 0.8, 1.3, 0.85, 1.0, 1.3, 0.85, 1.0),
}

// Bonus returns the multiplier set for d. Unknown domains get neutral factors.
func Bonus(d domain.Domain) domain.Stats {
	if !d.Valid() {
		return domain.Uniform(1)
	}
	return bonuses[d]
}

// Table returns a copy of the full bonus table.
func Table() map[domain.Domain]domain.Stats {
	out := make(map[domain.Domain]domain.Stats, domain.NumDomains)
	for _, d := range domain.Domains() {
		out[d] = bonuses[d]
	}
	return out
}

// EffectiveStats applies the domain multipliers to base and caps each value at StatCap.
func EffectiveStats(base domain.Stats, d domain.Domain) domain.Stats {
	return ApplyModifiers(base, Bonus(d))
}

// ApplyModifiers multiplies each stat by the matching factor and caps at StatCap.
func ApplyModifiers(stats, factors domain.Stats) domain.Stats {
	var out domain.Stats
	for i := range stats {
		out[i] = math.Min(stats[i]*factors[i], StatCap)
	}
	return out
}

// Aggregate is the arithmetic mean of the nine effective values.
func Aggregate(effective domain.Stats) float64 {
	return effective.Sum() / float64(domain.NumStats)
}

// PlayerRating composes the aggregate with form, morale and fatigue. The
// stamina ratio never counts for less than StaminaFloor.
func PlayerRating(effective domain.Stats, form, morale, staminaRatio float64) float64 {
	return Aggregate(effective) * form * morale * math.Max(staminaRatio, StaminaFloor)
}

// StaminaMax derives the stamina pool from the base endurance value.
func StaminaMax(enduranceBase, multiplier float64) float64 {
	return (staminaBase + enduranceBase*staminaPerPoint) * multiplier
}

// ValidateTable checks the shipped bonus table. Any violation is a startup error.
func ValidateTable() error {
	return validate(bonuses[:])
}

func validate(table []domain.Stats) error {
	var errs []error
	for i, factors := range table {
		d := domain.Domain(i)
		var hasStrength, hasWeakness bool
		for s, f := range factors {
			if f < minFactor || f > maxFactor {
				errs = append(errs, fmt.Errorf("%s: %s factor %.2f outside [%.1f, %.1f]", d, domain.Stat(s), f, minFactor, maxFactor))
			}
			if f > strengthFactor {
				hasStrength = true
			}
			if f < weaknessFactor {
				hasWeakness = true
			}
		}
		if sum := factors.Sum(); sum < minFactorSum || sum > maxFactorSum {
			errs = append(errs, fmt.Errorf("%s: factor sum %.2f outside [%.1f, %.1f]", d, sum, minFactorSum, maxFactorSum))
		}
		if !hasStrength {
			errs = append(errs, fmt.Errorf("%s: no factor above %.2f", d, strengthFactor))
		}
		if !hasWeakness && d != balancedDomain {
			errs = append(errs, fmt.Errorf("%s: no factor below %.2f", d, weaknessFactor))
		}
	}
	return errors.Join(errs...)
}
