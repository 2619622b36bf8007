// Package selection picks lineups for a formation. Select is pure; Apply and
// AutoSelect write the result back onto the team.
package selection

import (
	"sort"

	"scifoot/internal/domain"
	"scifoot/internal/roster"
)

const (
	keeperDefenseWeight = 0.6
	keeperHeadingWeight = 0.4
)

// Slot is one filled position in a lineup. PlayerID is zero when nobody
// could be found for the slot.
type Slot struct {
	Position domain.Position
	PlayerID int
}

// Assignment is the lineup chosen for a formation.
type Assignment struct {
	Formation domain.Formation
	Slots     []Slot
}

// Goalkeeper returns the id in the goalkeeper slot.
func (a Assignment) Goalkeeper() (int, bool) {
	for _, s := range a.Slots {
		if s.Position == domain.Goalkeeper && s.PlayerID != 0 {
			return s.PlayerID, true
		}
	}
	return 0, false
}

// PlayerIDs lists every assigned player in slot order.
func (a Assignment) PlayerIDs() []int {
	var ids []int
	for _, s := range a.Slots {
		if s.PlayerID != 0 {
			ids = append(ids, s.PlayerID)
		}
	}
	return ids
}

// GoalkeeperScore rates how well p would keep goal.
func GoalkeeperScore(p *roster.Player) float64 {
	return KeeperScore(p.Effective)
}

// KeeperScore rates a set of effective stats between the posts.
func KeeperScore(eff domain.Stats) float64 {
	return eff[domain.Defense]*keeperDefenseWeight + eff[domain.Heading]*keeperHeadingWeight
}

// PickGoalkeeper returns the index of the available player with the highest
// GoalkeeperScore. The first player wins a tie.
func PickGoalkeeper(players []*roster.Player) (int, bool) {
	best, found := -1, false
	var bestScore float64
	for i, p := range players {
		if !p.Available() {
			continue
		}
		if score := GoalkeeperScore(p); !found || score > bestScore {
			best, bestScore, found = i, score, true
		}
	}
	return best, found
}

// Select computes a lineup for the team's formation without touching the team.
// Outfield slots are filled by rating, strongest first; each player takes a
// free slot matching their preferred position, or else the first free slot.
func Select(team *roster.Team) Assignment {
	a := Assignment{Formation: team.Formation}
	positions := team.Formation.Slots()
	a.Slots = make([]Slot, len(positions))
	for i, pos := range positions {
		a.Slots[i].Position = pos
	}

	used := make(map[int]bool)
	if k, ok := PickGoalkeeper(team.Players); ok {
		for i := range a.Slots {
			if a.Slots[i].Position == domain.Goalkeeper {
				a.Slots[i].PlayerID = team.Players[k].ID
				used[team.Players[k].ID] = true
				break
			}
		}
	}

	var pool []*roster.Player
	for _, p := range team.Players {
		if p.Available() && !used[p.ID] {
			pool = append(pool, p)
		}
	}
	sort.SliceStable(pool, func(i, j int) bool {
		return pool[i].Rating() > pool[j].Rating()
	})

	for _, p := range pool {
		slot := -1
		for i, s := range a.Slots {
			if s.PlayerID != 0 || s.Position == domain.Goalkeeper {
				continue
			}
			if s.Position == p.Preferred {
				slot = i
				break
			}
			if slot < 0 {
				slot = i
			}
		}
		if slot < 0 {
			break
		}
		a.Slots[slot].PlayerID = p.ID
	}
	return a
}

// Apply puts exactly the assigned players on the pitch in their slot
// positions and refreshes team chemistry.
func Apply(team *roster.Team, a Assignment) {
	for _, p := range team.Players {
		p.OnPitch = false
		p.Position = p.Preferred
	}
	for _, s := range a.Slots {
		if s.PlayerID == 0 {
			continue
		}
		if p, ok := team.Player(s.PlayerID); ok {
			p.OnPitch = true
			p.Position = s.Position
		}
	}
	team.Formation = a.Formation
	team.RecalculateChemistry()
}

// AutoSelect selects and applies the best lineup for the team's formation.
func AutoSelect(team *roster.Team) Assignment {
	a := Select(team)
	Apply(team, a)
	return a
}
