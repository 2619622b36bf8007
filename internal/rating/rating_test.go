package rating

import (
	"testing"

	"scifoot/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTable(t *testing.T) {
	require.NoError(t, ValidateTable())
}

func TestBonusTableShape(t *testing.T) {
	for _, d := range domain.Domains() {
		factors := Bonus(d)
		sum := factors.Sum()
		assert.GreaterOrEqual(t, sum, 7.0, d.String())
		assert.LessOrEqual(t, sum, 12.0, d.String())

		var strengths int
		for _, f := range factors {
			assert.GreaterOrEqual(t, f, 0.5)
			assert.LessOrEqual(t, f, 2.0)
			if f > 1.1 {
				strengths++
			}
		}
		assert.Positive(t, strengths, "%s has no strength", d)
	}
}

func TestValidateRejectsBrokenTable(t *testing.T) {
	table := []domain.Stats{
		domain.Uniform(1.0),
		domain.NewStats(3.0, 1, 1, 1, 1, 1, 1, 1, 0.5),
	}
	err := validate(table)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no factor above")
	assert.Contains(t, err.Error(), "outside [0.5, 2.0]")
}

func TestEffectiveStatsCapped(t *testing.T) {
	base := domain.Uniform(95)
	for _, d := range domain.Domains() {
		eff := EffectiveStats(base, d)
		for i, v := range eff {
			assert.LessOrEqual(t, v, StatCap, "%s %s", d, domain.Stat(i))
			assert.GreaterOrEqual(t, v, 0.0)
		}
	}

	eff := EffectiveStats(domain.Uniform(80), domain.Cybersecurity)
	assert.Equal(t, 99.0, eff[domain.Defense])
	assert.InDelta(t, 48.0, eff[domain.Attack], 1e-9)
}

func TestAggregate(t *testing.T) {
	assert.InDelta(t, 50.0, Aggregate(domain.Uniform(50)), 1e-9)
	stats := domain.NewStats(10, 20, 30, 40, 50, 60, 70, 80, 90)
	assert.InDelta(t, 50.0, Aggregate(stats), 1e-9)
}

func TestPlayerRatingStaminaFloor(t *testing.T) {
	eff := domain.Uniform(60)

	full := PlayerRating(eff, 1, 1, 1)
	assert.InDelta(t, 60.0, full, 1e-9)

	half := PlayerRating(eff, 1, 1, 0.5)
	exhausted := PlayerRating(eff, 1, 1, 0)
	assert.InDelta(t, 30.0, half, 1e-9)
	assert.Equal(t, half, exhausted)

	assert.InDelta(t, 60*1.2*0.8, PlayerRating(eff, 1.2, 0.8, 1), 1e-9)
}

func TestStaminaMax(t *testing.T) {
	assert.InDelta(t, 96.0, StaminaMax(80, 1), 1e-9)
	assert.InDelta(t, 76.8, StaminaMax(80, 0.8), 1e-9)
}

func TestApplyModifiers(t *testing.T) {
	mods := domain.Uniform(1)
	mods[domain.Speed] = 2
	out := ApplyModifiers(domain.Uniform(60), mods)
	assert.Equal(t, 99.0, out[domain.Speed])
	assert.Equal(t, 60.0, out[domain.Strength])
}

func TestTableIsCopy(t *testing.T) {
	table := Table()
	require.Len(t, table, int(domain.NumDomains))
	factors := table[domain.Mathematics]
	factors[domain.Speed] = 0
	table[domain.Mathematics] = factors
	assert.Equal(t, 1.3, Bonus(domain.Mathematics)[domain.Speed])
}
