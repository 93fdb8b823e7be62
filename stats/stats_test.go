package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatsTracker_Accumulates(t *testing.T) {
	tracker := NewStatsTracker()

	tracker.FilesScanned(10)
	tracker.FilesExcluded(4)
	tracker.FilesBundled(6, 120, 8)
	tracker.BytesWritten(2048)

	scanned, excluded, bundled, lines := tracker.GetCurrentStats()
	assert.Equal(t, 10, scanned)
	assert.Equal(t, 4, excluded)
	assert.Equal(t, 6, bundled)
	assert.Equal(t, 120, lines)

	// Counters accumulate across calls
	tracker.FilesScanned(5)
	tracker.FilesBundled(1, 10, 0)

	scanned, _, bundled, lines = tracker.GetCurrentStats()
	assert.Equal(t, 15, scanned)
	assert.Equal(t, 7, bundled)
	assert.Equal(t, 130, lines)
}

func TestStatsTracker_Clear(t *testing.T) {
	tracker := NewStatsTracker()

	tracker.FilesScanned(3)
	tracker.FilesExcluded(1)
	tracker.FilesBundled(2, 40, 2)
	tracker.BytesWritten(512)

	tracker.ClearStats()

	scanned, excluded, bundled, lines := tracker.GetCurrentStats()
	assert.Zero(t, scanned)
	assert.Zero(t, excluded)
	assert.Zero(t, bundled)
	assert.Zero(t, lines)
}
