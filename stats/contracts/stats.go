package contracts

type IStatsTracker interface {
	FilesScanned(count int)
	FilesExcluded(count int)
	FilesBundled(count int, lines int, dropped int)
	BytesWritten(count int64)
	GetCurrentStats() (scanned int, excluded int, bundled int, lines int)
	DisplayStats(outputPath string)
	ClearStats()
}
