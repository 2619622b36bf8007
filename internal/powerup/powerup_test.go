package powerup

import (
	"math/rand"
	"testing"

	"scifoot/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCatalog(t *testing.T) {
	require.NoError(t, ValidateCatalog())
}

func TestCatalogBuckets(t *testing.T) {
	require.Len(t, Catalog(), 15)
	assert.Len(t, ByRarity(domain.Common), 3)
	assert.Len(t, ByRarity(domain.Uncommon), 3)
	assert.Len(t, ByRarity(domain.Rare), 4)
	assert.Len(t, ByRarity(domain.Epic), 3)
	assert.Len(t, ByRarity(domain.Legendary), 2)

	for _, e := range Catalog() {
		assert.Greater(t, e.Duration, 0.0, e.Name)
		assert.LessOrEqual(t, e.Duration, MaxDuration, e.Name)
	}
}

func TestValidateRejectsInvertedWeights(t *testing.T) {
	weights := []float64{0.04, 0.30, 0.18, 0.08, 0.40}
	err := validate(catalog[:], weights)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "weight")
}

func TestRarityFor(t *testing.T) {
	cases := []struct {
		u    float64
		want domain.Rarity
	}{
		{0, domain.Common},
		{0.39, domain.Common},
		{0.40, domain.Uncommon},
		{0.69, domain.Uncommon},
		{0.70, domain.Rare},
		{0.87, domain.Rare},
		{0.88, domain.Epic},
		{0.95, domain.Epic},
		{0.96, domain.Legendary},
		{0.9999, domain.Legendary},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, RarityFor(tc.u), "u=%v", tc.u)
	}
}

func TestDrawDistribution(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	const samples = 10000

	counts := make(map[domain.Rarity]int)
	for i := 0; i < samples; i++ {
		k := Draw(rng)
		e, ok := Lookup(k)
		require.True(t, ok)
		counts[e.Rarity]++
	}

	common := float64(counts[domain.Common]) / samples
	legendary := float64(counts[domain.Legendary]) / samples
	assert.Greater(t, common, 0.30)
	assert.Less(t, legendary, 0.10)
	assert.Greater(t, counts[domain.Common], counts[domain.Legendary])

	for r := domain.Common; r < domain.Legendary; r++ {
		assert.Greater(t, counts[r], counts[r+1], "%s vs %s", r, r+1)
	}
}

func TestBandBoostIncreasesWithRarity(t *testing.T) {
	var prev float64
	for r := domain.Common; r < domain.NumRarities; r++ {
		kinds := ByRarity(r)
		var total float64
		for _, k := range kinds {
			e, _ := Lookup(k)
			total += e.Boost()
		}
		mean := total / float64(len(kinds))
		assert.Greater(t, mean, prev, r.String())
		prev = mean
	}
}

func TestInventory(t *testing.T) {
	inv := NewInventory(3)
	assert.True(t, inv.Add(QuantumSpeed))
	assert.True(t, inv.Add(BinaryCode))
	assert.True(t, inv.Add(EMC2))
	assert.True(t, inv.Full())

	assert.False(t, inv.Add(TheoryOfEverything))
	assert.Equal(t, 3, inv.Len())

	k, ok := inv.Use(1)
	require.True(t, ok)
	assert.Equal(t, BinaryCode, k)
	assert.Equal(t, []Kind{QuantumSpeed, EMC2}, inv.Items())

	_, ok = inv.Use(5)
	assert.False(t, ok)
	_, ok = inv.Use(-1)
	assert.False(t, ok)
	assert.Equal(t, []Kind{QuantumSpeed, EMC2}, inv.Items())
}

func TestInventoryDefaultSlots(t *testing.T) {
	assert.Equal(t, DefaultSlots, NewInventory(0).Slots())
}

func TestAbilityCooldown(t *testing.T) {
	a := NewAbility("test", "", 40, domain.Uniform(1))
	require.True(t, a.Available())

	assert.True(t, a.Activate())
	assert.True(t, a.Active())
	assert.False(t, a.Activate())

	a.Tick(20)
	assert.Equal(t, 20.0, a.Cooldown())
	assert.False(t, a.Available())
	assert.True(t, a.Active())

	a.Tick(20)
	assert.Equal(t, 0.0, a.Cooldown())
	assert.True(t, a.Available())
	assert.False(t, a.Active())

	a.Tick(5)
	assert.Equal(t, 0.0, a.Cooldown())
}

func TestForDomain(t *testing.T) {
	for _, d := range domain.Domains() {
		a := ForDomain(d)
		assert.NotEmpty(t, a.Name, d.String())
		assert.Greater(t, a.CooldownMax, 0.0)
		for _, m := range a.Modifiers {
			assert.GreaterOrEqual(t, m, 1.0)
		}
	}
	assert.Equal(t, 2.5, ForDomain(domain.ElectronicsBanking).Modifiers[domain.Speed])
}

func TestActiveTick(t *testing.T) {
	a, ok := Activate(EMC2, 7)
	require.True(t, ok)
	assert.Equal(t, 7, a.PlayerID)
	assert.True(t, a.Tick(1))
	assert.False(t, a.Tick(1))
	assert.Equal(t, 5.0, a.Modifiers()[domain.Strength])

	_, ok = Activate(NumKinds, 1)
	assert.False(t, ok)
}
