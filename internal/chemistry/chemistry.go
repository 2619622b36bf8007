// Package chemistry scores how well a set of domains play together.
package chemistry

import (
	"errors"
	"fmt"
	"math"

	"scifoot/internal/domain"
)

const (
	// SameDomain is the coefficient for two players of the same domain.
	SameDomain = 0.6
	// DefaultPair is the coefficient for any pair absent from the table.
	DefaultPair = 0.5
	// Neutral is returned for lineups too small to form a pair.
	Neutral = 0.5

	floor       = 0.3
	compatShare = 0.7
	bonusScale  = 0.2
)

type pair struct {
	a, b domain.Domain
}

func key(a, b domain.Domain) pair {
	if a > b {
		a, b = b, a
	}
	return pair{a, b}
}

var table = map[pair]float64{
	key(domain.ComputerScience, domain.Mathematics):           1.0,
	key(domain.BiologyChemistry, domain.Chemistry):            1.0,
	key(domain.PhysicsMechanics, domain.PhysicsChemistry):     1.0,
	key(domain.Electronics, domain.ElectronicsBanking):        1.0,
	key(domain.MathematicsBanking, domain.ElectronicsBanking): 0.95,
	key(domain.BiologyMedicine, domain.BiologyChemistry):      0.9,
	key(domain.Cybersecurity, domain.ComputerScience):         0.9,
	key(domain.PhysicsChemistry, domain.Chemistry):            0.85,
	key(domain.AgrifoodGeology, domain.BiologyChemistry):      0.8,
	key(domain.GrantsSubsidies, domain.MathematicsBanking):    0.85,
}

// Compatibility returns the symmetric pair coefficient for a and b.
func Compatibility(a, b domain.Domain) float64 {
	if a == b {
		return SameDomain
	}
	if c, ok := table[key(a, b)]; ok {
		return c
	}
	return DefaultPair
}

// Team averages compatibility over every unordered pair and rescales the
// result into [0.3, 1.0].
func Team(domains []domain.Domain) float64 {
	if len(domains) < 2 {
		return Neutral
	}

	var total float64
	var pairs int
	for i := 0; i < len(domains); i++ {
		for j := i + 1; j < len(domains); j++ {
			total += Compatibility(domains[i], domains[j])
			pairs++
		}
	}

	return math.Min(total/float64(pairs)*compatShare+floor, 1.0)
}

// Bonus converts a chemistry score into the multiplicative adjustment used by
// the match engine: -0.1 at chemistry 0, +0.1 at chemistry 1.
func Bonus(chem float64) float64 {
	return (chem - Neutral) * bonusScale
}

// ValidateTable checks every listed pair. Any violation is a startup error.
func ValidateTable() error {
	var errs []error
	for p, c := range table {
		if p.a == p.b {
			errs = append(errs, fmt.Errorf("%s: self pair listed", p.a))
		}
		if !p.a.Valid() || !p.b.Valid() {
			errs = append(errs, fmt.Errorf("pair (%d, %d): unknown domain", int(p.a), int(p.b)))
		}
		if c <= 0 || c > 1 {
			errs = append(errs, fmt.Errorf("%s/%s: coefficient %.2f outside (0, 1]", p.a, p.b, c))
		}
	}
	return errors.Join(errs...)
}
