package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "alice", Normalize("  Alice  "))
	assert.Equal(t, "food", Normalize("FOOD"))
	assert.Equal(t, "", Normalize("   "))
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 0.3, Round2(0.1+0.2))
	assert.Equal(t, 42.51, Round2(42.509))
	assert.Equal(t, 10.0, Round2(10))
	assert.Equal(t, -1.23, Round2(-1.234))
}

func TestParseMonth(t *testing.T) {
	parsed, err := ParseMonth("2024-03")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), parsed)

	for _, month := range []string{"2024-3", "2024/03", "March", "2024-13", "", "2024-03-01"} {
		_, err := ParseMonth(month)
		assert.Error(t, err, "month %q should be rejected", month)
	}
}
