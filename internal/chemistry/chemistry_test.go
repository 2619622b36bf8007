package chemistry

import (
	"testing"

	"scifoot/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTable(t *testing.T) {
	require.NoError(t, ValidateTable())
}

func TestCompatibilitySameDomain(t *testing.T) {
	for _, d := range domain.Domains() {
		assert.Equal(t, 0.6, Compatibility(d, d), d.String())
	}
}

func TestCompatibilitySymmetric(t *testing.T) {
	for _, a := range domain.Domains() {
		for _, b := range domain.Domains() {
			assert.Equal(t, Compatibility(a, b), Compatibility(b, a), "%s/%s", a, b)
			c := Compatibility(a, b)
			assert.Greater(t, c, 0.0)
			assert.LessOrEqual(t, c, 1.0)
		}
	}
}

func TestCompatibilityLookup(t *testing.T) {
	assert.Equal(t, 1.0, Compatibility(domain.Mathematics, domain.ComputerScience))
	assert.Equal(t, 0.95, Compatibility(domain.ElectronicsBanking, domain.MathematicsBanking))
	assert.Equal(t, 0.5, Compatibility(domain.Cybersecurity, domain.AgrifoodGeology))
}

func TestTeamNeutralForSmallLineups(t *testing.T) {
	assert.Equal(t, 0.5, Team(nil))
	assert.Equal(t, 0.5, Team([]domain.Domain{}))
	assert.Equal(t, 0.5, Team([]domain.Domain{domain.Chemistry}))
}

func TestTeamBounds(t *testing.T) {
	synergy := []domain.Domain{domain.ComputerScience, domain.Mathematics}
	assert.InDelta(t, 1.0, Team(synergy), 1e-9)

	clones := []domain.Domain{domain.Chemistry, domain.Chemistry, domain.Chemistry}
	assert.InDelta(t, 0.6*0.7+0.3, Team(clones), 1e-9)

	neutral := []domain.Domain{domain.Cybersecurity, domain.AgrifoodGeology}
	assert.InDelta(t, 0.65, Team(neutral), 1e-9)

	all := domain.Domains()
	for i := range all {
		for j := range all {
			for k := range all {
				c := Team([]domain.Domain{all[i], all[j], all[k]})
				assert.GreaterOrEqual(t, c, 0.3)
				assert.LessOrEqual(t, c, 1.0)
			}
		}
	}
}

func TestBonus(t *testing.T) {
	assert.InDelta(t, -0.1, Bonus(0), 1e-9)
	assert.InDelta(t, 0.0, Bonus(0.5), 1e-9)
	assert.InDelta(t, 0.1, Bonus(1), 1e-9)
}
