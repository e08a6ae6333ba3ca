package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidAmount(t *testing.T) {
	assert.True(t, IsValidAmount("1"))
	assert.True(t, IsValidAmount("0.5"))
	assert.True(t, IsValidAmount("1500.000001"))

	assert.False(t, IsValidAmount("0"))
	assert.False(t, IsValidAmount("-1"))
	assert.False(t, IsValidAmount("1.2.3"))
	assert.False(t, IsValidAmount("abc"))
	assert.False(t, IsValidAmount(""))
}

func TestOCTToMicro(t *testing.T) {
	assert.Equal(t, uint64(500_000_000), OCTToMicro(500))
	assert.Equal(t, uint64(12_500_000), OCTToMicro(12.5))
	// truncated, not rounded
	assert.Equal(t, uint64(1), OCTToMicro(0.0000019))
}

func TestFormatParseOCT(t *testing.T) {
	assert.Equal(t, "12.500000", FormatOCT(12_500_000))
	assert.Equal(t, "0.000001", FormatOCT(1))

	n, err := ParseOCT("12.5")
	require.NoError(t, err)
	assert.Equal(t, uint64(12_500_000), n)

	n, err = ParseOCT("3")
	require.NoError(t, err)
	assert.Equal(t, uint64(3_000_000), n)

	// beyond six decimals is truncated
	n, err = ParseOCT("1.0000019")
	require.NoError(t, err)
	assert.Equal(t, uint64(1_000_001), n)

	_, err = ParseOCT("")
	assert.Error(t, err)
	_, err = ParseOCT("1.2.3")
	assert.Error(t, err)
}

func TestFreshness(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	f := NewFreshness(30 * time.Second)
	assert.False(t, f.Fresh(now), "zero value must be stale")

	f.Touch(now)
	assert.True(t, f.Fresh(now))
	assert.True(t, f.Fresh(now.Add(29*time.Second)))
	assert.False(t, f.Fresh(now.Add(30*time.Second)))

	f.Touch(now)
	f.Invalidate()
	assert.False(t, f.Fresh(now))
}
