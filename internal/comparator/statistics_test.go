package comparator

import (
	"testing"

	"github.com/jaywantadh/NormaDiff/internal/extractor"
)

func doc(pages, lines int) *extractor.ExtractedDocument {
	return &extractor.ExtractedDocument{TotalPages: pages, TotalLines: lines}
}

func TestCalculateStatisticsCounts(t *testing.T) {
	differences := []Difference{
		{Type: Added, Lines: []string{"a", "b", "c"}},
		{Type: Added, Lines: []string{"d"}},
		{Type: Deleted, Lines: []string{"e", "f"}},
		{Type: Modified, OldLines: []string{"g"}, NewLines: []string{"h", "i"}},
	}

	stats := calculateStatistics(differences, doc(10, 100), doc(10, 100))

	if stats.TotalDifferences != 4 {
		t.Errorf("total_differences = %d, want 4", stats.TotalDifferences)
	}
	if stats.AddedSections != 2 || stats.DeletedSections != 1 || stats.ModifiedSections != 1 {
		t.Errorf("section counts = %d/%d/%d, want 2/1/1",
			stats.AddedSections, stats.DeletedSections, stats.ModifiedSections)
	}

	// Modified entries never feed the added or deleted line totals.
	if stats.TotalAddedLines != 4 {
		t.Errorf("total_added_lines = %d, want 4", stats.TotalAddedLines)
	}
	if stats.TotalDeletedLines != 2 {
		t.Errorf("total_deleted_lines = %d, want 2", stats.TotalDeletedLines)
	}
}

func TestEstimatePagesChangedNoDifferences(t *testing.T) {
	if got := estimatePagesChanged(nil, doc(5, 50), doc(5, 50)); got != 0 {
		t.Errorf("pages changed = %d, want 0", got)
	}
}

func TestEstimatePagesChangedFormula(t *testing.T) {
	// 25 changed lines against 10 lines per page: two full pages plus
	// the started one.
	differences := []Difference{
		{Type: Added, Lines: make([]string, 10)},
		{Type: Deleted, Lines: make([]string, 5)},
		{Type: Modified, OldLines: make([]string, 4), NewLines: make([]string, 6)},
	}

	if got := estimatePagesChanged(differences, doc(10, 100), doc(10, 100)); got != 3 {
		t.Errorf("pages changed = %d, want 3", got)
	}
}

func TestEstimatePagesChangedClampsToPageCount(t *testing.T) {
	differences := []Difference{
		{Type: Added, Lines: make([]string, 500)},
	}

	if got := estimatePagesChanged(differences, doc(3, 30), doc(3, 30)); got != 3 {
		t.Errorf("pages changed = %d, want clamp to 3", got)
	}
}

func TestEstimatePagesChangedSparseDocuments(t *testing.T) {
	// Under one line per page the divisor floors at 1.
	differences := []Difference{
		{Type: Added, Lines: make([]string, 2)},
	}

	if got := estimatePagesChanged(differences, doc(10, 1), doc(10, 1)); got != 3 {
		t.Errorf("pages changed = %d, want 3", got)
	}
}

func TestEstimatePagesChangedZeroPageDocuments(t *testing.T) {
	differences := []Difference{
		{Type: Added, Lines: []string{"x"}},
	}

	if got := estimatePagesChanged(differences, doc(0, 1), doc(0, 1)); got != 0 {
		t.Errorf("pages changed = %d, want 0", got)
	}
}
