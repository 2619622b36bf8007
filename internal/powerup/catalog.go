// Package powerup holds the power-up catalog, the rarity-weighted draw,
// per-player inventories and cooldown-gated special abilities.
package powerup

import (
	"errors"
	"fmt"
	"sort"

	"scifoot/internal/domain"
)

// MaxDuration is the longest a catalog power-up may stay active, in seconds.
const MaxDuration = 60.0

type Kind int

const (
	QuantumSpeed Kind = iota
	NewtonianForce
	Photosynthesis
	BinaryCode
	IntegratedCircuit
	BlackHole
	PlateTectonics
	HeisenbergUncertainty
	SubsidyBoost
	BankingOptimisation
	EMC2
	DefensiveFirewall
	ChemicalCatalyst
	DNAReplication
	TheoryOfEverything

	NumKinds
)

// Entry describes one catalog power-up. Modifiers are per-stat multipliers;
// untouched stats carry 1.
type Entry struct {
	Kind        Kind
	Name        string
	Description string
	Duration    float64
	Rarity      domain.Rarity
	Modifiers   domain.Stats
}

// Boost is the summed excess of every multiplier over 1.
func (e Entry) Boost() float64 {
	var total float64
	for _, m := range e.Modifiers {
		total += m - 1
	}
	return total
}

func mods(m map[domain.Stat]float64) domain.Stats {
	out := domain.Uniform(1)
	for s, v := range m {
		out[s] = v
	}
	return out
}

var catalog = [NumKinds]Entry{
	{QuantumSpeed, "Quantum Speed", "Quantum movement for thirty seconds", 30, domain.Common,
		mods(map[domain.Stat]float64{domain.Speed: 2.0})},
	{NewtonianForce, "Newtonian Force", "Every action has an explosive reaction", 45, domain.Common,
		mods(map[domain.Stat]float64{domain.Strength: 2.0})},
	{Photosynthesis, "Photosynthesis", "Constant stamina regeneration, like a plant in the sun", 60, domain.Common,
		mods(map[domain.Stat]float64{domain.Endurance: 2.0})},
	{BinaryCode, "Binary Code", "Zero or one: every opponent move is anticipated", 30, domain.Uncommon,
		mods(map[domain.Stat]float64{domain.Intelligence: 3.0})},
	{IntegratedCircuit, "Integrated Circuit", "Reactivity of an overclocked processor", 20, domain.Uncommon,
		mods(map[domain.Stat]float64{domain.Speed: 1.8, domain.Intelligence: 1.5})},
	{BlackHole, "Black Hole", "The ball is pulled towards you", 25, domain.Uncommon,
		mods(map[domain.Stat]float64{domain.Strength: 1.5, domain.Defense: 1.5})},
	{PlateTectonics, "Plate Tectonics", "Defence as solid as the continental plates", 40, domain.Rare,
		mods(map[domain.Stat]float64{domain.Strength: 2.5, domain.Defense: 2.0})},
	{HeisenbergUncertainty, "Heisenberg Uncertainty", "Perfect precision, unpredictable position", 20, domain.Rare,
		mods(map[domain.Stat]float64{domain.Precision: 3.0})},
	{SubsidyBoost, "Subsidy Boost", "Energy distributed to every teammate", 45, domain.Rare,
		mods(map[domain.Stat]float64{domain.Endurance: 1.5, domain.Strength: 1.3})},
	{BankingOptimisation, "Banking Optimisation", "Offensive yield maximised", 30, domain.Rare,
		mods(map[domain.Stat]float64{domain.Precision: 1.8, domain.Intelligence: 1.6})},
	{EMC2, "E=mc²", "Mass converted into pure energy for a devastating shot", 2, domain.Epic,
		mods(map[domain.Stat]float64{domain.Strength: 5.0, domain.Precision: 2.0})},
	{DefensiveFirewall, "Defensive Firewall", "No shot gets through for twenty seconds", 20, domain.Epic,
		mods(map[domain.Stat]float64{domain.Defense: 5.0})},
	{ChemicalCatalyst, "Chemical Catalyst", "The whole team reacts faster", 35, domain.Epic,
		mods(map[domain.Stat]float64{domain.Speed: 1.3, domain.Creativity: 1.5})},
	{DNAReplication, "DNA Replication", "Your presence multiplies across the pitch", 15, domain.Legendary,
		mods(map[domain.Stat]float64{domain.Speed: 1.3, domain.Creativity: 2.0})},
	{TheoryOfEverything, "Theory of Everything", "Perfect unification of every ability", 10, domain.Legendary,
		mods(map[domain.Stat]float64{
			domain.Speed: 2.0, domain.Strength: 2.0, domain.Precision: 2.0, domain.Endurance: 2.0,
			domain.Intelligence: 2.0, domain.Creativity: 2.0, domain.Defense: 2.0,
		})},
}

// rarityWeights is the probability mass of each rarity band.
var rarityWeights = [domain.NumRarities]float64{
	domain.Common:    0.40,
	domain.Uncommon:  0.30,
	domain.Rare:      0.18,
	domain.Epic:      0.08,
	domain.Legendary: 0.04,
}

var bucketSizes = [domain.NumRarities]int{
	domain.Common:    3,
	domain.Uncommon:  3,
	domain.Rare:      4,
	domain.Epic:      3,
	domain.Legendary: 2,
}

func (k Kind) Valid() bool {
	return k >= 0 && k < NumKinds
}

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return catalog[k].Name
}

// Lookup returns the catalog entry for k.
func Lookup(k Kind) (Entry, bool) {
	if !k.Valid() {
		return Entry{}, false
	}
	return catalog[k], true
}

// Catalog returns every entry in declaration order.
func Catalog() []Entry {
	out := make([]Entry, NumKinds)
	copy(out, catalog[:])
	return out
}

// ByRarity returns the kinds of one rarity band, in catalog order.
func ByRarity(r domain.Rarity) []Kind {
	var out []Kind
	for _, e := range catalog {
		if e.Rarity == r {
			out = append(out, e.Kind)
		}
	}
	return out
}

// ValidateCatalog checks the shipped catalog. Any violation is a startup error.
func ValidateCatalog() error {
	return validate(catalog[:], rarityWeights[:])
}

func validate(entries []Entry, weights []float64) error {
	var errs []error

	counts := make([]int, domain.NumRarities)
	boosts := make([]float64, domain.NumRarities)
	for i, e := range entries {
		if e.Kind != Kind(i) {
			errs = append(errs, fmt.Errorf("entry %d: kind %d out of order", i, int(e.Kind)))
		}
		if e.Duration <= 0 || e.Duration > MaxDuration {
			errs = append(errs, fmt.Errorf("%s: duration %.1f outside (0, %.0f]", e.Name, e.Duration, MaxDuration))
		}
		for s, m := range e.Modifiers {
			if m < 1 {
				errs = append(errs, fmt.Errorf("%s: %s multiplier %.2f below 1", e.Name, domain.Stat(s), m))
			}
		}
		if e.Rarity < 0 || e.Rarity >= domain.NumRarities {
			errs = append(errs, fmt.Errorf("%s: unknown rarity %d", e.Name, int(e.Rarity)))
			continue
		}
		counts[e.Rarity]++
		boosts[e.Rarity] += e.Boost()
	}

	var total float64
	for r := domain.Rarity(0); r < domain.NumRarities; r++ {
		if counts[r] != bucketSizes[r] {
			errs = append(errs, fmt.Errorf("%s: %d entries, want %d", r, counts[r], bucketSizes[r]))
		}
		total += weights[r]
		if r == 0 || counts[r] == 0 || counts[r-1] == 0 {
			continue
		}
		if weights[r] >= weights[r-1] {
			errs = append(errs, fmt.Errorf("%s: weight %.2f not below %s", r, weights[r], r-1))
		}
		if boosts[r]/float64(counts[r]) <= boosts[r-1]/float64(counts[r-1]) {
			errs = append(errs, fmt.Errorf("%s: mean boost not above %s", r, r-1))
		}
	}
	if total < 0.999 || total > 1.001 {
		errs = append(errs, fmt.Errorf("rarity weights sum to %.3f", total))
	}

	return errors.Join(errs...)
}

// band is one cumulative slice of [0,1) mapped to a rarity.
type band struct {
	upper  float64
	rarity domain.Rarity
	kinds  []Kind
}

var bands = buildBands(rarityWeights[:])

func buildBands(weights []float64) []band {
	out := make([]band, 0, len(weights))
	var cum float64
	for r, w := range weights {
		cum += w
		out = append(out, band{upper: cum, rarity: domain.Rarity(r), kinds: ByRarity(domain.Rarity(r))})
	}
	out[len(out)-1].upper = 1
	return out
}

// Source is the randomness consumed by Draw. *rand.Rand satisfies it.
type Source interface {
	Float64() float64
	Intn(n int) int
}

// RarityFor maps a uniform value in [0,1) onto its rarity band.
func RarityFor(u float64) domain.Rarity {
	return bands[bandIndex(u)].rarity
}

func bandIndex(u float64) int {
	i := sort.Search(len(bands), func(i int) bool { return u < bands[i].upper })
	if i == len(bands) {
		i = len(bands) - 1
	}
	return i
}

// Draw picks a rarity band with one uniform draw, then an entry uniformly
// within that band.
func Draw(rng Source) Kind {
	b := bands[bandIndex(rng.Float64())]
	return b.kinds[rng.Intn(len(b.kinds))]
}
