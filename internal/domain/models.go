package domain

import "fmt"

// Domain is the scientific specialization of a player. It drives stat
// multipliers, chemistry and the player's special ability.
type Domain int

const (
	ComputerScience Domain = iota
	PhysicsMechanics
	BiologyChemistry
	PhysicsChemistry
	Mathematics
	Electronics
	BiologyMedicine
	Chemistry
	MathematicsBanking
	GrantsSubsidies
	Cybersecurity
	ElectronicsBanking
	AgrifoodGeology

	NumDomains
)

var domainNames = [NumDomains]string{
	"Computer Science",
	"Physics & Mechanics",
	"Biology & Chemistry",
	"Physics & Chemistry",
	"Mathematics",
	"Electronics",
	"Biology & Medicine",
	"Chemistry",
	"Mathematics & Banking",
	"Grants & Subsidies",
	"Cybersecurity",
	"Electronics & Banking",
	"Agrifood & Geology",
}

var domainDescriptions = [NumDomains]string{
	"Algorithms and information processing. Anticipation and collective play.",
	"Mastery of forces and laws of motion. Ballistic power.",
	"Cellular agility and precise reactions. Dribbling and control.",
	"Balance between power and precision. Complete versatility.",
	"Perfect tactical calculations. Geometry of the game.",
	"Circuit reactivity. Precision and coordination.",
	"Biological endurance and fast recovery. Organic power.",
	"Catalytic reactions. Creativity and destabilisation.",
	"Strategic analysis and risk management. Creative play.",
	"Distribution of resources. Flamboyant, generous play.",
	"Impenetrable defence and active countermeasures.",
	"Explosiveness and resource optimisation.",
	"Terrestrial endurance and ball recovery.",
}

func (d Domain) Valid() bool {
	return d >= 0 && d < NumDomains
}

func (d Domain) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Domain(%d)", int(d))
	}
	return domainNames[d]
}

func (d Domain) Description() string {
	if !d.Valid() {
		return ""
	}
	return domainDescriptions[d]
}

// Domains lists every domain in declaration order.
func Domains() []Domain {
	out := make([]Domain, NumDomains)
	for i := range out {
		out[i] = Domain(i)
	}
	return out
}

// Stat indexes one of the nine player attributes.
type Stat int

const (
	Speed Stat = iota
	Strength
	Precision
	Endurance
	Intelligence
	Creativity
	Defense
	Attack
	Heading

	NumStats
)

var statNames = [NumStats]string{
	"speed", "strength", "precision", "endurance", "intelligence",
	"creativity", "defense", "attack", "heading",
}

func (s Stat) String() string {
	if s < 0 || s >= NumStats {
		return fmt.Sprintf("Stat(%d)", int(s))
	}
	return statNames[s]
}

// Stats holds one value per Stat. Base values live in [0,99].
type Stats [NumStats]float64

// NewStats builds Stats in the canonical order: speed, strength, precision,
// endurance, intelligence, creativity, defense, attack, heading.
func NewStats(speed, strength, precision, endurance, intelligence, creativity, defense, attack, heading float64) Stats {
	return Stats{speed, strength, precision, endurance, intelligence, creativity, defense, attack, heading}
}

// Uniform returns Stats with every value set to v.
func Uniform(v float64) Stats {
	var s Stats
	for i := range s {
		s[i] = v
	}
	return s
}

func (s Stats) Sum() float64 {
	var total float64
	for _, v := range s {
		total += v
	}
	return total
}

// Map returns the stats keyed by attribute name.
func (s Stats) Map() map[string]float64 {
	out := make(map[string]float64, NumStats)
	for i, v := range s {
		out[Stat(i).String()] = v
	}
	return out
}

type Position int

const (
	Goalkeeper Position = iota
	Defender
	Midfielder
	Forward
)

func (p Position) String() string {
	switch p {
	case Goalkeeper:
		return "Goalkeeper"
	case Defender:
		return "Defender"
	case Midfielder:
		return "Midfielder"
	case Forward:
		return "Forward"
	}
	return fmt.Sprintf("Position(%d)", int(p))
}

// Side identifies the home or away team in a match.
type Side int

const (
	Home Side = iota
	Away
)

func (s Side) String() string {
	if s == Home {
		return "home"
	}
	return "away"
}

func (s Side) Opponent() Side {
	if s == Home {
		return Away
	}
	return Home
}

// Rarity is the power-up tier. Higher tiers are rarer and stronger.
type Rarity int

const (
	Common Rarity = iota
	Uncommon
	Rare
	Epic
	Legendary

	NumRarities
)

func (r Rarity) String() string {
	switch r {
	case Common:
		return "Common"
	case Uncommon:
		return "Uncommon"
	case Rare:
		return "Rare"
	case Epic:
		return "Epic"
	case Legendary:
		return "Legendary"
	}
	return fmt.Sprintf("Rarity(%d)", int(r))
}
