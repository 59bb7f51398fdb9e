package main

import (
	"encoding/json"
	"testing"

	"github.com/Veraticus/passtool/internal/strength"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusCmd_JSON(t *testing.T) {
	setupViper(t, "india@123", "password1")
	setConfig(t, "scorer.external", true)

	out, err := execute(t, statusCmd(), "", "--json")
	require.NoError(t, err)

	var stats strength.SecurityStats
	require.NoError(t, json.Unmarshal([]byte(out), &stats))
	assert.Equal(t, strength.SecurityStats{
		SecurityLevel:  strength.SecurityLevelEnhanced,
		WordlistSize:   2,
		WordlistLoaded: true,
		ExternalScorer: true,
	}, stats)
}

func TestStatusCmd_Table(t *testing.T) {
	path := setupViper(t)

	out, err := execute(t, statusCmd(), "")
	require.NoError(t, err)
	assert.Contains(t, out, "Breach wordlist")
	assert.Contains(t, out, "Not loaded")
	assert.Contains(t, out, path)
	assert.Contains(t, out, "Basic")
}

func TestStatusRows(t *testing.T) {
	rows := statusRows(strength.SecurityStats{
		SecurityLevel:  strength.SecurityLevelEnhanced,
		WordlistSize:   3,
		WordlistLoaded: true,
	}, "breach.txt", "")

	require.Len(t, rows, 5)
	assert.Equal(t, "breach.txt (3 entries)", rows[0][2])
	assert.Contains(t, rows[1][1], "Standby")
	assert.Contains(t, rows[2][1], "Disabled")
	assert.Equal(t, strength.SecurityLevelEnhanced, rows[3][1])
	assert.Equal(t, "defaults", rows[4][1])
}
