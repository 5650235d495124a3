package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/jaywantadh/NormaDiff/internal/comparator"
	"github.com/jaywantadh/NormaDiff/internal/explainer"
	"github.com/jaywantadh/NormaDiff/internal/extractor"
	"github.com/jaywantadh/NormaDiff/pkg/env"
	"github.com/jaywantadh/NormaDiff/pkg/logging"
	"github.com/urfave/cli/v2"
)

func main() {
	env.LoadEnv()
	logging.InitLogger(env.GetEnvBool("DEBUG"))

	app := &cli.App{
		Name:  "normadiff",
		Usage: "Compare the text of two PDF documents",
		Commands: []*cli.Command{
			{
				Name:      "compare",
				Aliases:   []string{"c"},
				Usage:     "Compare two PDFs line by line",
				ArgsUsage: "<doc1.pdf> <doc2.pdf>",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "print the full comparison result as JSON",
					},
					&cli.BoolFlag{
						Name:  "explain",
						Usage: "generate an AI explanation (needs OPENAI_API_KEY)",
					},
				},
				Action: runCompare,
			},
			{
				Name:      "sections",
				Usage:     "List the numbered sections found in a PDF",
				ArgsUsage: "<doc.pdf>",
				Action:    runSections,
			},
			{
				Name:      "info",
				Usage:     "Show page, line and character counts for a PDF",
				ArgsUsage: "<doc.pdf>",
				Action:    runInfo,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		logging.Log.Fatal(err)
	}
}

func runCompare(c *cli.Context) error {
	if c.NArg() != 2 {
		return cli.Exit("compare needs exactly two PDF paths", 1)
	}

	result, err := comparator.CompareFiles(c.Args().Get(0), c.Args().Get(1))
	if err != nil {
		return err
	}

	if c.Bool("json") {
		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	printSummary(result)
	printDifferences(result.Differences)

	if c.Bool("explain") {
		exp, err := explainer.New(env.GetEnv("OPENAI_API_KEY", ""), env.GetEnv("OPENAI_MODEL", ""))
		if err != nil {
			return err
		}

		logging.Log.Info("🤖 Generating AI explanation...")
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		text, err := exp.ExplainDifferences(ctx, result)
		if err != nil {
			return err
		}
		fmt.Println("\n=== Explicación (IA) ===")
		fmt.Println(text)
	}

	return nil
}

func runSections(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("sections needs exactly one PDF path", 1)
	}

	sections, err := extractor.ExtractSections(c.Args().Get(0))
	if err != nil {
		return err
	}

	if len(sections) == 0 {
		fmt.Println("No numbered sections found")
		return nil
	}

	for _, s := range sections {
		fmt.Printf("line %4d  %s  (%d lines)\n", s.StartLine+1, s.Title, len(s.Content))
	}
	return nil
}

func runInfo(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("info needs exactly one PDF path", 1)
	}

	doc, err := extractor.Extract(c.Args().Get(0))
	if err != nil {
		return err
	}

	fmt.Printf("Pages:      %d\n", doc.TotalPages)
	fmt.Printf("Lines:      %d\n", doc.TotalLines)
	fmt.Printf("Characters: %d\n", doc.TotalChars)
	return nil
}

func printSummary(result *comparator.Result) {
	stats := result.Statistics

	fmt.Printf("Documento 1: %s (%d páginas, %d líneas)\n",
		result.Document1.Path, result.Document1.TotalPages, result.Document1.TotalLines)
	fmt.Printf("Documento 2: %s (%d páginas, %d líneas)\n",
		result.Document2.Path, result.Document2.TotalPages, result.Document2.TotalLines)
	fmt.Printf("Similitud:   %.2f%%\n", result.SimilarityRatio*100)
	fmt.Printf("Diferencias: %d (agregadas: %d, eliminadas: %d, modificadas: %d)\n",
		stats.TotalDifferences, stats.AddedSections, stats.DeletedSections, stats.ModifiedSections)
	fmt.Printf("Líneas:      +%d -%d, ~%d páginas afectadas\n",
		stats.TotalAddedLines, stats.TotalDeletedLines, stats.PagesChanged)
}

func printDifferences(diffs []comparator.Difference) {
	if len(diffs) == 0 {
		fmt.Println("\nLos documentos tienen el mismo contenido de texto ✅")
		return
	}

	for i, diff := range diffs {
		fmt.Printf("\n--- %d/%d [%s] línea %d ---\n", i+1, len(diffs), diff.Type, diff.Position+1)
		switch diff.Type {
		case comparator.Modified:
			for _, line := range diff.OldLines {
				fmt.Printf("- %s\n", line)
			}
			for _, line := range diff.NewLines {
				fmt.Printf("+ %s\n", line)
			}
		case comparator.Added:
			for _, line := range diff.Lines {
				fmt.Printf("+ %s\n", line)
			}
		case comparator.Deleted:
			for _, line := range diff.Lines {
				fmt.Printf("- %s\n", line)
			}
		}
	}
}
