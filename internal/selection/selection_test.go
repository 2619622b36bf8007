package selection

import (
	"testing"

	"scifoot/internal/domain"
	"scifoot/internal/roster"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalogTeam(t *testing.T, ids ...int) *roster.Team {
	t.Helper()
	team := roster.NewTeam(1, "Lab")
	for _, id := range ids {
		p, ok := roster.CatalogByID(id)
		require.True(t, ok)
		require.NoError(t, team.AddPlayer(p))
	}
	return team
}

func TestGoalkeeperScore(t *testing.T) {
	p := roster.NewPlayer(1, "K", domain.Chemistry, domain.Defender, domain.Uniform(50))
	want := p.Effective[domain.Defense]*0.6 + p.Effective[domain.Heading]*0.4
	assert.InDelta(t, want, GoalkeeperScore(p), 1e-9)
}

func TestPickGoalkeeper(t *testing.T) {
	strong := roster.NewPlayer(1, "Strong", domain.Cybersecurity, domain.Defender, domain.Uniform(80))
	weak := roster.NewPlayer(2, "Weak", domain.Mathematics, domain.Forward, domain.Uniform(40))

	idx, ok := PickGoalkeeper([]*roster.Player{weak, strong})
	require.True(t, ok)
	assert.Equal(t, 1, idx)

	strong.Injured = true
	idx, ok = PickGoalkeeper([]*roster.Player{weak, strong})
	require.True(t, ok)
	assert.Equal(t, 0, idx)

	weak.Suspended = true
	_, ok = PickGoalkeeper([]*roster.Player{weak, strong})
	assert.False(t, ok)

	_, ok = PickGoalkeeper(nil)
	assert.False(t, ok)
}

func TestPickGoalkeeperTieGoesToFirst(t *testing.T) {
	a := roster.NewPlayer(1, "A", domain.Chemistry, domain.Defender, domain.Uniform(60))
	b := roster.NewPlayer(2, "B", domain.Chemistry, domain.Defender, domain.Uniform(60))
	idx, ok := PickGoalkeeper([]*roster.Player{a, b})
	require.True(t, ok)
	assert.Equal(t, 0, idx)
}

func TestSelectIsPure(t *testing.T) {
	team := catalogTeam(t, 1, 2, 3, 4, 5, 6, 7, 8)
	a := Select(team)

	assert.Len(t, a.PlayerIDs(), domain.SlotsPerFormation)
	assert.Empty(t, team.Starters())
}

func TestAutoSelect(t *testing.T) {
	for f := domain.Formation(0); f < domain.NumFormations; f++ {
		t.Run(f.String(), func(t *testing.T) {
			team := catalogTeam(t, 1, 2, 3, 4, 5, 6, 7, 8)
			team.Formation = f

			a := AutoSelect(team)

			starters := team.Starters()
			require.Len(t, starters, domain.SlotsPerFormation)
			var keepers int
			for _, p := range starters {
				if p.Position == domain.Goalkeeper {
					keepers++
				}
			}
			assert.Equal(t, 1, keepers)

			gk, ok := a.Goalkeeper()
			require.True(t, ok)
			assert.Equal(t, 5, gk, "Henry has the best defence and heading")
			assert.Equal(t, f, team.Formation)
			assert.Greater(t, team.Rating(), 0.0)
		})
	}
}

func TestAutoSelectSecondSquad(t *testing.T) {
	team := catalogTeam(t, 9, 10, 11, 12, 13, 14, 15)
	a := AutoSelect(team)
	gk, ok := a.Goalkeeper()
	require.True(t, ok)
	assert.Equal(t, 13, gk)
}

func TestAutoSelectPrefersPosition(t *testing.T) {
	team := roster.NewTeam(1, "Prefs")
	team.Formation = domain.Formation211
	keeper := roster.NewPlayer(1, "Keeper", domain.Cybersecurity, domain.Defender, domain.Uniform(90))
	fwd := roster.NewPlayer(2, "Fwd", domain.Chemistry, domain.Forward, domain.Uniform(80))
	mid := roster.NewPlayer(3, "Mid", domain.Chemistry, domain.Midfielder, domain.Uniform(70))
	def1 := roster.NewPlayer(4, "Def1", domain.Chemistry, domain.Defender, domain.Uniform(60))
	def2 := roster.NewPlayer(5, "Def2", domain.Chemistry, domain.Defender, domain.Uniform(50))
	for _, p := range []*roster.Player{keeper, fwd, mid, def1, def2} {
		require.NoError(t, team.AddPlayer(p))
	}

	AutoSelect(team)

	assert.Equal(t, domain.Goalkeeper, keeper.Position)
	assert.Equal(t, domain.Forward, fwd.Position)
	assert.Equal(t, domain.Midfielder, mid.Position)
	assert.Equal(t, domain.Defender, def1.Position)
	assert.Equal(t, domain.Defender, def2.Position)
}

func TestAutoSelectSkipsUnavailable(t *testing.T) {
	team := catalogTeam(t, 1, 2, 3, 4, 5, 6)
	henry, _ := team.Player(5)
	henry.Injured = true

	a := AutoSelect(team)

	assert.False(t, henry.OnPitch)
	assert.NotContains(t, a.PlayerIDs(), 5)
	assert.Len(t, team.Starters(), 5)
}

func TestAutoSelectShortSquad(t *testing.T) {
	team := catalogTeam(t, 1, 2, 3)
	a := AutoSelect(team)
	assert.Len(t, a.PlayerIDs(), 3)
	assert.Len(t, a.Slots, domain.SlotsPerFormation)
	assert.Len(t, team.Starters(), 3)
}
