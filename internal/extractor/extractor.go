package extractor

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"rsc.io/pdf"
)

// ErrExtraction marks failures to open or parse a PDF document.
var ErrExtraction = errors.New("extraction failed")

// Page holds the cleaned text of a single PDF page.
type Page struct {
	Number int      `json:"page"`
	Text   string   `json:"text"`
	Lines  []string `json:"lines"`
}

// ExtractedDocument is the normalized text content of a whole PDF.
// FullText joins the non-empty pages with a line break; TotalLines and
// TotalChars are derived from it.
type ExtractedDocument struct {
	Path       string `json:"-"`
	FullText   string `json:"full_text"`
	Pages      []Page `json:"pages"`
	TotalPages int    `json:"total_pages"`
	TotalLines int    `json:"total_lines"`
	TotalChars int    `json:"total_chars"`
}

// Lines returns FullText split into lines.
func (d *ExtractedDocument) Lines() []string {
	return strings.Split(d.FullText, "\n")
}

const (
	// Text items whose baselines differ by more than this many points
	// belong to different physical lines.
	lineBreakTolerance = 2.0
	// Fallback word-gap threshold (points) when a text item carries no
	// font size.
	minWordGap = 1.0
)

// Extract opens a PDF and returns its normalized text content. A page with
// no extractable text contributes nothing to FullText, not an empty line.
func Extract(path string) (doc *ExtractedDocument, err error) {
	// rsc.io/pdf panics on some malformed content streams; surface those
	// as regular extraction errors.
	defer func() {
		if r := recover(); r != nil {
			doc = nil
			err = fmt.Errorf("failed to process PDF %s: %v: %w", path, r, ErrExtraction)
		}
	}()

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to process PDF %s: %v: %w", path, err, ErrExtraction)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to process PDF %s: %v: %w", path, err, ErrExtraction)
	}

	reader, err := pdf.NewReader(f, info.Size())
	if err != nil {
		return nil, fmt.Errorf("failed to process PDF %s: %v: %w", path, err, ErrExtraction)
	}

	totalPages := reader.NumPage()
	var pageTexts []string
	var pages []Page

	for num := 1; num <= totalPages; num++ {
		page := reader.Page(num)
		if page.V.IsNull() {
			continue
		}

		cleaned := CleanText(assemblePageText(page.Content().Text))
		if cleaned == "" {
			continue
		}

		pageTexts = append(pageTexts, cleaned)
		pages = append(pages, Page{
			Number: num,
			Text:   cleaned,
			Lines:  strings.Split(cleaned, "\n"),
		})
	}

	fullText := strings.Join(pageTexts, "\n")

	return &ExtractedDocument{
		Path:       path,
		FullText:   fullText,
		Pages:      pages,
		TotalPages: totalPages,
		TotalLines: len(strings.Split(fullText, "\n")),
		TotalChars: utf8.RuneCountInString(fullText),
	}, nil
}

// assemblePageText rebuilds physical lines from a page's raw text items.
// Items are ordered top-to-bottom, left-to-right; items on the same
// baseline are joined, with a space whenever the horizontal gap between
// them looks like a word break.
func assemblePageText(items []pdf.Text) string {
	if len(items) == 0 {
		return ""
	}

	ordered := make([]pdf.Text, len(items))
	copy(ordered, items)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Y != ordered[j].Y {
			return ordered[i].Y > ordered[j].Y
		}
		return ordered[i].X < ordered[j].X
	})

	var sb strings.Builder
	prev := ordered[0]
	sb.WriteString(prev.S)

	for _, item := range ordered[1:] {
		if prev.Y-item.Y > lineBreakTolerance {
			sb.WriteByte('\n')
		} else if gap := item.X - (prev.X + prev.W); gap > wordGap(prev.FontSize) {
			sb.WriteByte(' ')
		}
		sb.WriteString(item.S)
		prev = item
	}

	return sb.String()
}

func wordGap(fontSize float64) float64 {
	gap := 0.15 * fontSize
	if gap < minWordGap {
		return minWordGap
	}
	return gap
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// CleanText normalizes raw page text: whitespace runs inside a line
// collapse to single spaces, every line is trimmed, and runs of blank
// lines collapse to at most one blank line.
func CleanText(text string) string {
	if text == "" {
		return ""
	}

	lines := strings.Split(text, "\n")
	cleaned := make([]string, 0, len(lines))
	prevEmpty := false
	for _, line := range lines {
		line = strings.TrimSpace(whitespaceRun.ReplaceAllString(line, " "))
		if line != "" {
			cleaned = append(cleaned, line)
			prevEmpty = false
		} else if !prevEmpty {
			cleaned = append(cleaned, "")
			prevEmpty = true
		}
	}

	return strings.Join(cleaned, "\n")
}
