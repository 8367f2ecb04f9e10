package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTier(t *testing.T) {
	for _, tier := range AllTiers {
		parsed, err := ParseTier(tier.String())
		require.NoError(t, err)
		assert.Equal(t, tier, parsed)
		assert.True(t, parsed.IsValid())
	}

	_, err := ParseTier("excellent")
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidTier))
	assert.Contains(t, err.Error(), "excellent")
}

func TestTierLabelsAndRank(t *testing.T) {
	assert.Equal(t, "Weak", TierWeak.Label())
	assert.Equal(t, "Fair", TierFair.Label())
	assert.Equal(t, "Good", TierGood.Label())
	assert.Equal(t, "Strong", TierStrong.Label())
	assert.Equal(t, "Unknown", Tier("bogus").Label())

	assert.Equal(t, 0, TierWeak.Rank())
	assert.Equal(t, 3, TierStrong.Rank())
	assert.Equal(t, -1, Tier("bogus").Rank())
	assert.False(t, Tier("bogus").IsValid())
	assert.Equal(t, "Unknown tier", Tier("bogus").Description())
}

func TestParseCharClass(t *testing.T) {
	labels := []string{}
	for _, class := range AllCharClasses {
		parsed, err := ParseCharClass(class.String())
		require.NoError(t, err)
		assert.Equal(t, class, parsed)
		labels = append(labels, class.Label())
	}
	assert.Equal(t, []string{"Uppercase", "Lowercase", "Numbers", "Special"}, labels)

	_, err := ParseCharClass("emoji")
	assert.True(t, errors.Is(err, ErrInvalidCharClass))
}
