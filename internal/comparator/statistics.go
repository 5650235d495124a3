package comparator

import "github.com/jaywantadh/NormaDiff/internal/extractor"

// calculateStatistics tallies differences by type. Added and deleted
// line totals count only their own entry types; modified entries
// contribute to the page estimate instead.
func calculateStatistics(differences []Difference, doc1, doc2 *extractor.ExtractedDocument) Statistics {
	stats := Statistics{TotalDifferences: len(differences)}

	for _, d := range differences {
		switch d.Type {
		case Added:
			stats.AddedSections++
			stats.TotalAddedLines += len(d.Lines)
		case Deleted:
			stats.DeletedSections++
			stats.TotalDeletedLines += len(d.Lines)
		case Modified:
			stats.ModifiedSections++
		}
	}

	stats.PagesChanged = estimatePagesChanged(differences, doc1, doc2)
	return stats
}

// estimatePagesChanged guesses how many pages the differences touch by
// weighing changed lines against the average page density of the two
// documents. Modified entries count both their old and new lines. The
// estimate never exceeds the larger document's page count.
func estimatePagesChanged(differences []Difference, doc1, doc2 *extractor.ExtractedDocument) int {
	if len(differences) == 0 {
		return 0
	}

	totalChanges := 0
	for _, d := range differences {
		totalChanges += len(d.Lines) + len(d.OldLines) + len(d.NewLines)
	}

	maxPages := max(doc1.TotalPages, doc2.TotalPages)
	avgLinesPerPage := float64(doc1.TotalLines+doc2.TotalLines) / 2 / float64(max(maxPages, 1))
	if avgLinesPerPage < 1 {
		avgLinesPerPage = 1
	}

	estimated := int(float64(totalChanges)/avgLinesPerPage) + 1
	return min(estimated, maxPages)
}
