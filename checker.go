package main

import (
	"fmt"
	"log"
	"os"

	"github.com/jaywantadh/NormaDiff/internal/comparator"
	"github.com/jaywantadh/NormaDiff/internal/extractor"
)

// Quick check that two PDFs carry the same recognizable text. Dumps the
// extracted text of both files when they differ so they can be diffed by
// hand.
func main() {
	if len(os.Args) < 3 {
		fmt.Println("Usage: go run checker.go file1.pdf file2.pdf")
		return
	}

	file1 := os.Args[1]
	file2 := os.Args[2]

	doc1, err := extractor.Extract(file1)
	if err != nil {
		log.Fatalf("Error extracting %s: %v", file1, err)
	}
	doc2, err := extractor.Extract(file2)
	if err != nil {
		log.Fatalf("Error extracting %s: %v", file2, err)
	}

	if doc1.FullText == doc2.FullText {
		fmt.Println("✅ PDFs are textually identical (fully recognizable content).")
		return
	}

	_, ratio := comparator.CompareLines(doc1.Lines(), doc2.Lines())

	// Save outputs for manual diffing
	_ = os.WriteFile("pdf1.txt", []byte(doc1.FullText), 0644)
	_ = os.WriteFile("pdf2.txt", []byte(doc2.FullText), 0644)
	fmt.Printf("❌ PDFs differ (similarity %.2f%%). Check pdf1.txt and pdf2.txt for details.\n", ratio*100)
}
