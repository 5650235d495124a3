package comparator

import (
	"math"
	"reflect"
	"testing"

	"github.com/jaywantadh/NormaDiff/internal/extractor"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCompareLinesIdentical(t *testing.T) {
	lines := []string{"Artículo 1", "El uso es obligatorio.", "Artículo 2"}

	differences, ratio := CompareLines(lines, lines)
	if len(differences) != 0 {
		t.Fatalf("expected no differences, got %d", len(differences))
	}
	if ratio != 1.0 {
		t.Errorf("ratio = %v, want 1.0", ratio)
	}
}

func TestCompareLinesBothEmpty(t *testing.T) {
	differences, ratio := CompareLines([]string{""}, []string{""})
	if len(differences) != 0 {
		t.Fatalf("expected no differences, got %d", len(differences))
	}
	if ratio != 1.0 {
		t.Errorf("ratio = %v, want 1.0", ratio)
	}
}

func TestCompareLinesAdded(t *testing.T) {
	lines1 := []string{"uno", "dos", "tres"}
	lines2 := []string{"uno", "dos", "nuevo", "tres"}

	differences, ratio := CompareLines(lines1, lines2)
	if len(differences) != 1 {
		t.Fatalf("expected 1 difference, got %d", len(differences))
	}

	d := differences[0]
	if d.Type != Added {
		t.Errorf("type = %q, want %q", d.Type, Added)
	}
	if d.Position != 2 {
		t.Errorf("position = %d, want 2", d.Position)
	}
	if !reflect.DeepEqual(d.Lines, []string{"nuevo"}) {
		t.Errorf("lines = %q, want [nuevo]", d.Lines)
	}
	if d.OldLines != nil || d.NewLines != nil {
		t.Errorf("added difference should not carry old/new lines")
	}

	wantContext := Context{
		BeforeDoc1: []string{"uno", "dos"},
		AfterDoc1:  []string{"tres"},
		BeforeDoc2: []string{"uno", "dos"},
		AfterDoc2:  []string{"nuevo", "tres"},
	}
	if !reflect.DeepEqual(d.Context, wantContext) {
		t.Errorf("context = %+v, want %+v", d.Context, wantContext)
	}

	if want := 6.0 / 7.0; !almostEqual(ratio, want) {
		t.Errorf("ratio = %v, want %v", ratio, want)
	}
}

func TestCompareLinesDeleted(t *testing.T) {
	lines1 := []string{"uno", "dos", "viejo", "tres"}
	lines2 := []string{"uno", "dos", "tres"}

	differences, _ := CompareLines(lines1, lines2)
	if len(differences) != 1 {
		t.Fatalf("expected 1 difference, got %d", len(differences))
	}

	d := differences[0]
	if d.Type != Deleted {
		t.Errorf("type = %q, want %q", d.Type, Deleted)
	}
	if d.Position != 2 {
		t.Errorf("position = %d, want 2", d.Position)
	}
	if !reflect.DeepEqual(d.Lines, []string{"viejo"}) {
		t.Errorf("lines = %q, want [viejo]", d.Lines)
	}

	// Doc2 windows anchor on the doc1 index for deletions.
	wantContext := Context{
		BeforeDoc1: []string{"uno", "dos"},
		AfterDoc1:  []string{"viejo", "tres"},
		BeforeDoc2: []string{"uno", "dos"},
		AfterDoc2:  []string{"tres"},
	}
	if !reflect.DeepEqual(d.Context, wantContext) {
		t.Errorf("context = %+v, want %+v", d.Context, wantContext)
	}
}

func TestCompareLinesModified(t *testing.T) {
	lines1 := []string{"uno", "la multa es leve", "tres"}
	lines2 := []string{"uno", "la multa es grave", "tres"}

	differences, ratio := CompareLines(lines1, lines2)
	if len(differences) != 1 {
		t.Fatalf("expected 1 difference, got %d", len(differences))
	}

	d := differences[0]
	if d.Type != Modified {
		t.Errorf("type = %q, want %q", d.Type, Modified)
	}
	if d.Position != 1 {
		t.Errorf("position = %d, want 1", d.Position)
	}
	if !reflect.DeepEqual(d.OldLines, []string{"la multa es leve"}) {
		t.Errorf("old lines = %q", d.OldLines)
	}
	if !reflect.DeepEqual(d.NewLines, []string{"la multa es grave"}) {
		t.Errorf("new lines = %q", d.NewLines)
	}
	if d.Lines != nil {
		t.Errorf("modified difference should not carry plain lines")
	}

	if want := 4.0 / 6.0; !almostEqual(ratio, want) {
		t.Errorf("ratio = %v, want %v", ratio, want)
	}
}

func TestCompareLinesMixed(t *testing.T) {
	lines1 := []string{"k1", "old", "k2", "gone", "k3"}
	lines2 := []string{"k1", "new", "k2", "k3", "extra"}

	differences, ratio := CompareLines(lines1, lines2)
	if len(differences) != 3 {
		t.Fatalf("expected 3 differences, got %d", len(differences))
	}

	if differences[0].Type != Modified || differences[0].Position != 1 {
		t.Errorf("first difference = %s@%d, want modified@1", differences[0].Type, differences[0].Position)
	}
	if differences[1].Type != Deleted || differences[1].Position != 3 {
		t.Errorf("second difference = %s@%d, want deleted@3", differences[1].Type, differences[1].Position)
	}
	if differences[2].Type != Added || differences[2].Position != 4 {
		t.Errorf("third difference = %s@%d, want added@4", differences[2].Type, differences[2].Position)
	}

	if !reflect.DeepEqual(differences[1].Lines, []string{"gone"}) {
		t.Errorf("deleted lines = %q, want [gone]", differences[1].Lines)
	}
	if !reflect.DeepEqual(differences[2].Lines, []string{"extra"}) {
		t.Errorf("added lines = %q, want [extra]", differences[2].Lines)
	}

	if want := 0.6; !almostEqual(ratio, want) {
		t.Errorf("ratio = %v, want %v", ratio, want)
	}
}

func TestCompareLinesEmptyVersusContent(t *testing.T) {
	differences, ratio := CompareLines([]string{""}, []string{"texto nuevo"})
	if len(differences) != 1 {
		t.Fatalf("expected 1 difference, got %d", len(differences))
	}
	if differences[0].Type != Modified {
		t.Errorf("type = %q, want %q", differences[0].Type, Modified)
	}
	if ratio != 0.0 {
		t.Errorf("ratio = %v, want 0", ratio)
	}
}

func TestCompareLinesChangeAtDocumentStart(t *testing.T) {
	differences, _ := CompareLines([]string{"Art 1 old"}, []string{"Art 1 new"})
	if len(differences) != 1 {
		t.Fatalf("expected 1 difference, got %d", len(differences))
	}

	d := differences[0]
	if d.Type != Modified || d.Position != 0 {
		t.Errorf("difference = %s@%d, want modified@0", d.Type, d.Position)
	}
	if !reflect.DeepEqual(d.OldLines, []string{"Art 1 old"}) ||
		!reflect.DeepEqual(d.NewLines, []string{"Art 1 new"}) {
		t.Errorf("old/new lines = %q / %q", d.OldLines, d.NewLines)
	}

	// Nothing precedes line 0; both "before" windows come back empty.
	if len(d.Context.BeforeDoc1) != 0 {
		t.Errorf("before_doc1 = %q, want empty at line 0", d.Context.BeforeDoc1)
	}
	if len(d.Context.BeforeDoc2) != 0 {
		t.Errorf("before_doc2 = %q, want empty at line 0", d.Context.BeforeDoc2)
	}
}

func TestCompareLinesChangeAtDocumentEnd(t *testing.T) {
	differences, _ := CompareLines([]string{"Art 1"}, []string{"Art 1", "Art 2"})
	if len(differences) != 1 {
		t.Fatalf("expected 1 difference, got %d", len(differences))
	}
	added := differences[0]
	if added.Type != Added || added.Position != 1 {
		t.Errorf("difference = %s@%d, want added@1", added.Type, added.Position)
	}
	if !reflect.DeepEqual(added.Lines, []string{"Art 2"}) {
		t.Errorf("lines = %q, want [Art 2]", added.Lines)
	}
	if len(added.Context.AfterDoc1) != 0 {
		t.Errorf("after_doc1 = %q, want empty past document end", added.Context.AfterDoc1)
	}

	differences, _ = CompareLines([]string{"Art 1", "Art 2"}, []string{"Art 1"})
	if len(differences) != 1 {
		t.Fatalf("expected 1 difference, got %d", len(differences))
	}
	deleted := differences[0]
	if deleted.Type != Deleted || deleted.Position != 1 {
		t.Errorf("difference = %s@%d, want deleted@1", deleted.Type, deleted.Position)
	}
	if !reflect.DeepEqual(deleted.Lines, []string{"Art 2"}) {
		t.Errorf("lines = %q, want [Art 2]", deleted.Lines)
	}
	if len(deleted.Context.AfterDoc2) != 0 {
		t.Errorf("after_doc2 = %q, want empty past document end", deleted.Context.AfterDoc2)
	}
}

func TestContextWindowsClampToDocumentBounds(t *testing.T) {
	lines1 := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
	lines2 := []string{"e"}

	differences, _ := CompareLines(lines1, lines2)
	if len(differences) != 2 {
		t.Fatalf("expected 2 differences, got %d", len(differences))
	}

	// Second deletion sits past the end of doc2; its doc2 windows must
	// come back empty instead of panicking.
	tail := differences[1]
	if tail.Type != Deleted || tail.Position != 5 {
		t.Fatalf("tail difference = %s@%d, want deleted@5", tail.Type, tail.Position)
	}
	if len(tail.Context.BeforeDoc2) != 0 {
		t.Errorf("before_doc2 = %q, want empty", tail.Context.BeforeDoc2)
	}
	if len(tail.Context.AfterDoc2) != 0 {
		t.Errorf("after_doc2 = %q, want empty", tail.Context.AfterDoc2)
	}
}

func TestWindowClamping(t *testing.T) {
	lines := []string{"a", "b", "c"}

	cases := []struct {
		from, to int
		want     []string
	}{
		{-2, 1, []string{"a"}},
		{0, 3, []string{"a", "b", "c"}},
		{1, 10, []string{"b", "c"}},
		{5, 9, nil},
		{2, 1, nil},
	}

	for _, tc := range cases {
		got := window(lines, tc.from, tc.to)
		if len(got) == 0 && len(tc.want) == 0 {
			continue
		}
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("window(%d, %d) = %q, want %q", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestCompareBuildsFullResult(t *testing.T) {
	doc1 := &extractor.ExtractedDocument{
		Path:       "v1.pdf",
		FullText:   "uno\ndos\ntres",
		TotalPages: 1,
		TotalLines: 3,
		TotalChars: 12,
	}
	doc2 := &extractor.ExtractedDocument{
		Path:       "v2.pdf",
		FullText:   "uno\ndos\nnuevo\ntres",
		TotalPages: 1,
		TotalLines: 4,
		TotalChars: 18,
	}

	result := Compare(doc1, doc2)

	if result.Document1.Path != "v1.pdf" || result.Document2.Path != "v2.pdf" {
		t.Errorf("summaries carry wrong paths: %q, %q", result.Document1.Path, result.Document2.Path)
	}
	if result.Document2.TotalLines != 4 {
		t.Errorf("document2 total_lines = %d, want 4", result.Document2.TotalLines)
	}
	if len(result.Differences) != 1 {
		t.Fatalf("expected 1 difference, got %d", len(result.Differences))
	}
	if result.Statistics.TotalDifferences != 1 || result.Statistics.AddedSections != 1 {
		t.Errorf("statistics = %+v, want one added difference", result.Statistics)
	}
	if result.Statistics.TotalAddedLines != 1 {
		t.Errorf("total_added_lines = %d, want 1", result.Statistics.TotalAddedLines)
	}
	if want := 6.0 / 7.0; !almostEqual(result.SimilarityRatio, want) {
		t.Errorf("similarity_ratio = %v, want %v", result.SimilarityRatio, want)
	}
	if result.Statistics.PagesChanged != 1 {
		t.Errorf("pages_changed = %d, want 1", result.Statistics.PagesChanged)
	}
}

// replay applies differences to lines1 and returns the rebuilt second
// document. Added positions index into doc2, so the length of the output
// built so far tells us how much of doc1 still needs copying before the
// insertion point.
func replay(lines1 []string, differences []Difference) []string {
	out := []string{}
	i := 0
	for _, d := range differences {
		switch d.Type {
		case Modified:
			out = append(out, lines1[i:d.Position]...)
			i = d.Position + len(d.OldLines)
			out = append(out, d.NewLines...)
		case Deleted:
			out = append(out, lines1[i:d.Position]...)
			i = d.Position + len(d.Lines)
		case Added:
			for len(out) < d.Position {
				out = append(out, lines1[i])
				i++
			}
			out = append(out, d.Lines...)
		}
	}
	return append(out, lines1[i:]...)
}

func TestDifferencesRebuildSecondDocument(t *testing.T) {
	cases := [][2][]string{
		{{"Art 1", "Art 2"}, {"Art 1", "Art 2"}},
		{{"Art 1"}, {"Art 1", "Art 2"}},
		{{"Art 1", "Art 2"}, {"Art 1"}},
		{{"Art 1 old"}, {"Art 1 new"}},
		{{"k1", "old", "k2", "gone", "k3"}, {"k1", "new", "k2", "k3", "extra"}},
		{{"a", "b", "c", "d", "e", "f", "g", "h"}, {"e"}},
		{{""}, {"texto nuevo"}},
		{{"a"}, {}},
	}

	for _, tc := range cases {
		differences, _ := CompareLines(tc[0], tc[1])
		got := replay(tc[0], differences)
		if !reflect.DeepEqual(got, tc[1]) {
			t.Errorf("replaying differences of %q = %q, want %q", tc[0], got, tc[1])
		}
	}
}

func TestCompareLinesDeterministic(t *testing.T) {
	lines1 := []string{"k1", "old", "k2", "gone", "k3"}
	lines2 := []string{"k1", "new", "k2", "k3", "extra"}

	first, firstRatio := CompareLines(lines1, lines2)
	second, secondRatio := CompareLines(lines1, lines2)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated comparison produced different records")
	}
	if firstRatio != secondRatio {
		t.Errorf("repeated comparison produced different ratios: %v vs %v", firstRatio, secondRatio)
	}
}

func TestCompareIdenticalDocuments(t *testing.T) {
	doc := &extractor.ExtractedDocument{
		Path:       "same.pdf",
		FullText:   "uno\ndos",
		TotalPages: 1,
		TotalLines: 2,
		TotalChars: 7,
	}

	result := Compare(doc, doc)
	if len(result.Differences) != 0 {
		t.Fatalf("expected no differences, got %d", len(result.Differences))
	}
	if result.SimilarityRatio != 1.0 {
		t.Errorf("similarity_ratio = %v, want 1.0", result.SimilarityRatio)
	}
	if result.Statistics.PagesChanged != 0 {
		t.Errorf("pages_changed = %d, want 0", result.Statistics.PagesChanged)
	}
}
