// Package comparator aligns two extracted documents line by line and
// classifies every region where they diverge.
package comparator

import (
	"github.com/pmezard/go-difflib/difflib"

	"github.com/jaywantadh/NormaDiff/internal/extractor"
)

// Difference types, in the order difflib reports them.
const (
	Added    = "added"
	Deleted  = "deleted"
	Modified = "modified"
)

// Lines of surrounding text kept on each side of a difference.
const contextSize = 3

// DocumentSummary identifies one side of a comparison.
type DocumentSummary struct {
	Path       string `json:"path"`
	TotalPages int    `json:"total_pages"`
	TotalLines int    `json:"total_lines"`
	TotalChars int    `json:"total_chars"`
}

// Context carries the lines surrounding a difference in both documents.
// The "after" windows start at the difference itself.
type Context struct {
	BeforeDoc1 []string `json:"before_doc1"`
	AfterDoc1  []string `json:"after_doc1"`
	BeforeDoc2 []string `json:"before_doc2"`
	AfterDoc2  []string `json:"after_doc2"`
}

// Difference is one divergent region. Modified entries carry OldLines and
// NewLines; added and deleted entries carry Lines. Position indexes the
// first document for deleted and modified entries and the second for
// added entries.
type Difference struct {
	Type     string   `json:"type"`
	Position int      `json:"position"`
	Lines    []string `json:"lines,omitempty"`
	OldLines []string `json:"old_lines,omitempty"`
	NewLines []string `json:"new_lines,omitempty"`
	Context  Context  `json:"context"`
}

// Statistics aggregates a comparison's differences.
type Statistics struct {
	TotalDifferences  int `json:"total_differences"`
	AddedSections     int `json:"added_sections"`
	DeletedSections   int `json:"deleted_sections"`
	ModifiedSections  int `json:"modified_sections"`
	TotalAddedLines   int `json:"total_added_lines"`
	TotalDeletedLines int `json:"total_deleted_lines"`
	PagesChanged      int `json:"pages_changed"`
}

// Result is the full outcome of comparing two documents.
type Result struct {
	Document1       DocumentSummary `json:"document1"`
	Document2       DocumentSummary `json:"document2"`
	Differences     []Difference    `json:"differences"`
	Statistics      Statistics      `json:"statistics"`
	SimilarityRatio float64         `json:"similarity_ratio"`
}

// CompareFiles extracts both PDFs and compares them.
func CompareFiles(path1, path2 string) (*Result, error) {
	doc1, err := extractor.Extract(path1)
	if err != nil {
		return nil, err
	}
	doc2, err := extractor.Extract(path2)
	if err != nil {
		return nil, err
	}
	return Compare(doc1, doc2), nil
}

// Compare diffs two extracted documents line by line.
func Compare(doc1, doc2 *extractor.ExtractedDocument) *Result {
	differences, ratio := CompareLines(doc1.Lines(), doc2.Lines())

	return &Result{
		Document1:       summarize(doc1),
		Document2:       summarize(doc2),
		Differences:     differences,
		Statistics:      calculateStatistics(differences, doc1, doc2),
		SimilarityRatio: ratio,
	}
}

// CompareLines aligns two line sequences and returns every divergent
// region plus the overall similarity ratio. Equal regions are skipped;
// the remaining entries appear in document order.
func CompareLines(lines1, lines2 []string) ([]Difference, float64) {
	matcher := difflib.NewMatcher(lines1, lines2)
	differences := []Difference{}

	for _, op := range matcher.GetOpCodes() {
		switch op.Tag {
		case 'r':
			differences = append(differences, Difference{
				Type:     Modified,
				Position: op.I1,
				OldLines: lines1[op.I1:op.I2],
				NewLines: lines2[op.J1:op.J2],
				Context:  contextAround(lines1, lines2, op.I1, op.J1),
			})
		case 'd':
			// The second document has no natural anchor for a pure
			// deletion; its context windows reuse the doc1 index.
			differences = append(differences, Difference{
				Type:     Deleted,
				Position: op.I1,
				Lines:    lines1[op.I1:op.I2],
				Context:  contextAround(lines1, lines2, op.I1, op.I1),
			})
		case 'i':
			differences = append(differences, Difference{
				Type:     Added,
				Position: op.J1,
				Lines:    lines2[op.J1:op.J2],
				Context:  contextAround(lines1, lines2, op.I1, op.J1),
			})
		}
	}

	return differences, matcher.Ratio()
}

func summarize(doc *extractor.ExtractedDocument) DocumentSummary {
	return DocumentSummary{
		Path:       doc.Path,
		TotalPages: doc.TotalPages,
		TotalLines: doc.TotalLines,
		TotalChars: doc.TotalChars,
	}
}

func contextAround(lines1, lines2 []string, pos1, pos2 int) Context {
	return Context{
		BeforeDoc1: window(lines1, pos1-contextSize, pos1),
		AfterDoc1:  window(lines1, pos1, pos1+contextSize),
		BeforeDoc2: window(lines2, pos2-contextSize, pos2),
		AfterDoc2:  window(lines2, pos2, pos2+contextSize),
	}
}

// window slices lines[from:to] with both bounds clamped to the valid
// range, so out-of-range requests yield an empty window.
func window(lines []string, from, to int) []string {
	if from < 0 {
		from = 0
	}
	if from > len(lines) {
		from = len(lines)
	}
	if to < from {
		to = from
	}
	if to > len(lines) {
		to = len(lines)
	}
	return lines[from:to]
}
