package stats

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"codebundle/constants/lipgloss"
	"codebundle/stats/contracts"
)

// statsTracker implementation
type statsTracker struct {
	scanned      int
	excluded     int
	bundled      int
	linesWritten int
	linesDropped int
	bytesWritten int64
}

// NewStatsTracker creates a new run statistics tracker.
func NewStatsTracker() contracts.IStatsTracker {
	return &statsTracker{}
}

// FilesScanned accumulates the number of candidate files seen by the scan.
func (st *statsTracker) FilesScanned(count int) {
	st.scanned += count
}

// FilesExcluded accumulates the number of candidates the selector rejected.
func (st *statsTracker) FilesExcluded(count int) {
	st.excluded += count
}

// FilesBundled records files written into the bundle.
func (st *statsTracker) FilesBundled(count int, lines int, dropped int) {
	st.bundled += count
	st.linesWritten += lines
	st.linesDropped += dropped
}

func (st *statsTracker) BytesWritten(count int64) {
	st.bytesWritten += count
}

func (st *statsTracker) GetCurrentStats() (scanned int, excluded int, bundled int, lines int) {
	return st.scanned, st.excluded, st.bundled, st.linesWritten
}

// DisplayStats renders the run summary in a box.
func (st *statsTracker) DisplayStats(outputPath string) {
	statsInfo := fmt.Sprintf("Files: %d bundled / %d excluded / %d scanned - Lines: %d written", st.bundled, st.excluded, st.scanned, st.linesWritten)
	if st.linesDropped > 0 {
		statsInfo += fmt.Sprintf(" / %d dropped", st.linesDropped)
	}
	statsInfo += fmt.Sprintf(" - Size: %s - Output: %s", humanize.Bytes(uint64(st.bytesWritten)), outputPath)

	statsBox := lipgloss.BoxStyle.Render(statsInfo)
	fmt.Println(statsBox)
}

func (st *statsTracker) ClearStats() {
	st.scanned = 0
	st.excluded = 0
	st.bundled = 0
	st.linesWritten = 0
	st.linesDropped = 0
	st.bytesWritten = 0
}
