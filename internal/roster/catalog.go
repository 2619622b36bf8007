package roster

import "scifoot/internal/domain"

type catalogEntry struct {
	id       int
	name     string
	domain   domain.Domain
	position domain.Position
	base     domain.Stats
	stamina  float64
	traits   []Trait
}

var catalog = []catalogEntry{
	{1, "Roland", domain.ComputerScience, domain.Defender,
		domain.NewStats(72, 82, 58, 74, 78, 65, 76, 52, 75), 1, []Trait{
			{"Physical Play", "Uses his frame to dominate physically", "Strength +10%"},
			{"Rough Finishing", "Can miss chances in front of goal", "Shot precision -15%"},
		}},
	{2, "Loïc", domain.PhysicsMechanics, domain.Forward,
		domain.NewStats(76, 78, 88, 82, 74, 68, 52, 90, 72), 1, []Trait{
			{"Clinical Finisher", "Excellent precision in front of the keeper", "Shot precision +20%"},
			{"Dominant Right Foot", "Exceptional right foot", "Right-footed shots +15%"},
		}},
	{3, "David", domain.BiologyChemistry, domain.Forward,
		domain.NewStats(82, 68, 78, 58, 72, 88, 62, 80, 65), 0.8, []Trait{
			{"Virtuoso Winger", "Master of dribbles and nutmegs", "Dribble +25%"},
			{"Limited Cardio", "Runs out of breath quickly", "Stamina -20%"},
		}},
	{4, "Thibault", domain.PhysicsChemistry, domain.Midfielder,
		domain.NewStats(78, 76, 82, 76, 80, 80, 79, 79, 74), 1, []Trait{
			{"Complete Player", "Excels in defence and attack alike", "Balance +10%"},
		}},
	{5, "Henry", domain.ComputerScience, domain.Defender,
		domain.NewStats(68, 84, 52, 72, 80, 66, 86, 50, 90), 1, []Trait{
			{"Very Tall", "Imposing frame, rules the air", "Heading +20%"},
			{"Defensive Presence", "Physically bothers opponents", "Defence +15%"},
			{"Wayward Shot", "Struggles to aim", "Shot precision -20%"},
		}},
	{6, "Romain", domain.Electronics, domain.Midfielder,
		domain.NewStats(74, 78, 74, 82, 78, 74, 68, 78, 84), 1, []Trait{
			{"Very Tall", "Tall frame, impressive in the air", "Heading +15%"},
			{"Electronic Reflexes", "Reacts like a circuit", "Reaction speed +10%"},
		}},
	{7, "Théo", domain.Mathematics, domain.Midfielder,
		domain.NewStats(88, 74, 62, 84, 82, 58, 82, 68, 70), 1, []Trait{
			{"Tireless Runner", "Covers the whole pitch", "Speed +10%, Endurance +15%"},
			{TraitRefereeCharmer, "So friendly the referee forgives everything", "Yellow card chance -30%"},
		}},
	{8, "Franck", domain.BiologyMedicine, domain.Forward,
		domain.NewStats(62, 86, 82, 82, 74, 74, 68, 84, 74), 1, []Trait{
			{"Medical Strike", "Anatomically computed power and precision", "Shot power +20%, Precision +10%"},
			{"Lacks Pace", "Power over speed", "Speed -15%"},
		}},
	{9, "Aurélien", domain.Chemistry, domain.Forward,
		domain.NewStats(64, 72, 74, 72, 78, 86, 76, 80, 68), 1, []Trait{
			{"Measured Provocateur", "Unsettles opponents with calculated taunts", "Opponent intelligence -10%"},
			{"Deep Runs", "Creates space and exploits the wings", "Attacking positioning +15%"},
		}},
	{10, "Lucien", domain.ComputerScience, domain.Defender,
		domain.NewStats(70, 82, 76, 74, 84, 72, 88, 54, 76), 1, []Trait{
			{"Distributed Passer", "Expert in distributed passing systems", "Pass precision +20%"},
			{"Reliable Defender", "Solid at the back, avoids risky runs", "Defence +15%"},
		}},
	{11, "Joffrey", domain.MathematicsBanking, domain.Forward,
		domain.NewStats(76, 62, 80, 82, 84, 82, 70, 82, 70), 1, []Trait{
			{"Strategic Creator", "Unexpected solutions and optimal resource use", "Creativity +15%"},
			{"Light Frame", "Struggles against strong defenders", "Strength -15% against strong defenders"},
		}},
	{12, "Yacine", domain.GrantsSubsidies, domain.Forward,
		domain.NewStats(60, 76, 80, 74, 74, 88, 78, 86, 82), 1, []Trait{
			{"Flamboyant", "Spectacular and unpredictable", "Volleys +30%"},
			{"Defensive Nuisance", "Bothers opponents even in defence", "Defence -20% against pace"},
		}},
	{13, "Djilani", domain.Cybersecurity, domain.Defender,
		domain.NewStats(72, 88, 50, 76, 82, 60, 96, 38, 84), 1, []Trait{
			{"Defensive Wall", "Elite defender, clean tackles", "Defence +25%"},
			{"Limited Attack", "Rarely pushes forward", "Attack -20%"},
			{"Security Keeper", "Just as effective between the posts", "Can play goalkeeper with a bonus"},
		}},
	{14, "Médéric", domain.ElectronicsBanking, domain.Midfielder,
		domain.NewStats(88, 76, 62, 76, 74, 84, 74, 78, 72), 1, []Trait{
			{"Pure Explosiveness", "Short-circuit sprints", "Sprint speed +30%"},
			{"Fragile Mind", "Can crack under pressure", "Morale can drop quickly"},
			{"Wayward Shot", "Powerful but imprecise on big strikes", "Power shot precision -20%"},
		}},
	{15, "Guillaume", domain.AgrifoodGeology, domain.Midfielder,
		domain.NewStats(86, 74, 62, 84, 64, 70, 82, 62, 70), 1, []Trait{
			{"Running Machine", "Never stops running", "Endurance +15%, Ball recovery +20%"},
			{"Limited Vision", "Sometimes loses the thread of the game", "Game intelligence -15%"},
			{"Wasteful Finisher", "Finishing is not his strength", "Shot precision -15%"},
		}},
}

// Catalog builds fresh copies of every real player.
func Catalog() []*Player {
	out := make([]*Player, 0, len(catalog))
	for _, e := range catalog {
		p := NewPlayer(e.id, e.name, e.domain, e.position, e.base)
		if e.stamina != 1 {
			p.SetStaminaMultiplier(e.stamina)
		}
		p.Traits = append([]Trait(nil), e.traits...)
		out = append(out, p)
	}
	return out
}

// CatalogByID returns a fresh copy of the catalog player with id.
func CatalogByID(id int) (*Player, bool) {
	for _, p := range Catalog() {
		if p.ID == id {
			return p, true
		}
	}
	return nil, false
}
