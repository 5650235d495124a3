package extractor

import "regexp"

// Section is a structured block of a regulatory document, keyed by the
// heading line that opens it. Content includes the heading line itself.
type Section struct {
	Title     string   `json:"title"`
	StartLine int      `json:"start_line"`
	Content   []string `json:"content"`
}

// Heading shapes commonly found in Spanish regulatory texts.
var sectionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^(Artículo\s+\d+)`),
	regexp.MustCompile(`(?i)^(CAPÍTULO\s+[IVX]+)`),
	regexp.MustCompile(`(?i)^(TÍTULO\s+[IVX]+)`),
	regexp.MustCompile(`(?i)^(Sección\s+\d+)`),
	regexp.MustCompile(`(?i)^(\d+\.\s+[A-Z])`),
}

// ScanSections walks the document line by line and groups it into
// sections, each opened by a heading line. Lines before the first
// heading belong to no section and are dropped.
func ScanSections(doc *ExtractedDocument) []Section {
	var sections []Section
	var current *Section

	for i, line := range doc.Lines() {
		for _, pattern := range sectionPatterns {
			if pattern.MatchString(line) {
				if current != nil {
					sections = append(sections, *current)
				}
				current = &Section{Title: line, StartLine: i}
				break
			}
		}
		if current != nil {
			current.Content = append(current.Content, line)
		}
	}

	if current != nil {
		sections = append(sections, *current)
	}

	return sections
}

// ExtractSections extracts a PDF and scans it for structured sections.
func ExtractSections(path string) ([]Section, error) {
	doc, err := Extract(path)
	if err != nil {
		return nil, err
	}
	return ScanSections(doc), nil
}
