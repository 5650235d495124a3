// Package explainer turns comparison results into narrated explanations
// using an OpenAI chat model.
package explainer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/jaywantadh/NormaDiff/internal/comparator"
)

const defaultModel = openai.GPT4oMini

// Digest limits keep the prompt inside the model's context window.
const (
	maxDifferences   = 20
	maxPlainLines    = 5
	maxModifiedLines = 3
	contextTailLines = 2
)

const systemPrompt = "Eres un experto en análisis de documentos legales y reglamentarios. " +
	"Tu tarea es explicar de manera clara y profesional las diferencias entre " +
	"documentos, especialmente cambios en reglamentaciones y normas. " +
	"Identifica artículos modificados, agregados o eliminados, y explica " +
	"el impacto de estos cambios."

const specificSystemPrompt = "Eres un experto en análisis de documentos legales y reglamentarios."

// Explainer generates Spanish-language explanations of document changes.
type Explainer struct {
	client *openai.Client
	model  string
}

// New builds an Explainer. The API key is required; an empty model falls
// back to gpt-4o-mini.
func New(apiKey, model string) (*Explainer, error) {
	if apiKey == "" {
		return nil, errors.New("OPENAI_API_KEY is not set")
	}
	if model == "" {
		model = defaultModel
	}
	return &Explainer{client: openai.NewClient(apiKey), model: model}, nil
}

// ExplainDifferences narrates a whole comparison: executive summary,
// affected sections, and impact of each change type.
func (e *Explainer) ExplainDifferences(ctx context.Context, result *comparator.Result) (string, error) {
	prompt := buildPrompt(buildDigest(result))

	resp, err := e.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: e.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: 0.3,
		MaxTokens:   2000,
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate explanation: %v", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("model returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

// ExplainDifference narrates a single difference in depth, with its full
// line content rather than the digest's truncated view.
func (e *Explainer) ExplainDifference(ctx context.Context, diff comparator.Difference) (string, error) {
	resp, err := e.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: e.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: specificSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: buildDifferencePrompt(diff)},
		},
		Temperature: 0.3,
		MaxTokens:   1000,
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate explanation: %v", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("model returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

// buildDigest condenses a comparison into prompt-sized text: the
// statistics block followed by the first differences, each with a few
// lines of content and trailing context.
func buildDigest(result *comparator.Result) string {
	parts := []string{
		"Estadísticas de comparación:",
		fmt.Sprintf("- Total de diferencias: %d", result.Statistics.TotalDifferences),
		fmt.Sprintf("- Secciones agregadas: %d", result.Statistics.AddedSections),
		fmt.Sprintf("- Secciones eliminadas: %d", result.Statistics.DeletedSections),
		fmt.Sprintf("- Secciones modificadas: %d", result.Statistics.ModifiedSections),
		fmt.Sprintf("- Similitud: %.2f%%", result.SimilarityRatio*100),
		"",
		"Diferencias encontradas:",
	}

	differences := result.Differences
	if len(differences) > maxDifferences {
		differences = differences[:maxDifferences]
	}

	for i, diff := range differences {
		parts = append(parts, fmt.Sprintf("\n--- Diferencia %d (%s) ---", i+1, diff.Type))

		switch diff.Type {
		case comparator.Added:
			parts = append(parts, "Líneas agregadas:")
			for _, line := range head(diff.Lines, maxPlainLines) {
				parts = append(parts, "  + "+line)
			}
		case comparator.Deleted:
			parts = append(parts, "Líneas eliminadas:")
			for _, line := range head(diff.Lines, maxPlainLines) {
				parts = append(parts, "  - "+line)
			}
		case comparator.Modified:
			parts = append(parts, "Líneas modificadas:", "Antes:")
			for _, line := range head(diff.OldLines, maxModifiedLines) {
				parts = append(parts, "  - "+line)
			}
			parts = append(parts, "Después:")
			for _, line := range head(diff.NewLines, maxModifiedLines) {
				parts = append(parts, "  + "+line)
			}
		}

		if len(diff.Context.BeforeDoc1) > 0 {
			parts = append(parts, "Contexto anterior:")
			for _, line := range tail(diff.Context.BeforeDoc1, contextTailLines) {
				parts = append(parts, "  "+line)
			}
		}
	}

	return strings.Join(parts, "\n")
}

func buildPrompt(digest string) string {
	return fmt.Sprintf(`Analiza las siguientes diferencias entre dos documentos (probablemente reglamentaciones o normas)
y proporciona una explicación detallada y profesional.

%s

Por favor, proporciona:
1. Un resumen ejecutivo de los cambios principales
2. Identificación de artículos, capítulos o secciones afectadas
3. Explicación del impacto de cada tipo de cambio (agregados, eliminados, modificados)
4. Recomendaciones sobre qué aspectos requieren atención especial
5. Identificación de posibles inconsistencias o áreas que necesitan revisión

Formatea la respuesta de manera clara y estructurada, usando secciones y viñetas cuando sea apropiado.
`, digest)
}

func buildDifferencePrompt(diff comparator.Difference) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Analiza esta diferencia específica entre dos documentos reglamentarios:\n\nTipo de cambio: %s\n\n", diff.Type)

	switch diff.Type {
	case comparator.Added:
		sb.WriteString("Contenido agregado:\n")
		for _, line := range diff.Lines {
			sb.WriteString("  + " + line + "\n")
		}
	case comparator.Deleted:
		sb.WriteString("Contenido eliminado:\n")
		for _, line := range diff.Lines {
			sb.WriteString("  - " + line + "\n")
		}
	case comparator.Modified:
		sb.WriteString("Contenido modificado:\nVersión anterior:\n")
		for _, line := range diff.OldLines {
			sb.WriteString("  - " + line + "\n")
		}
		sb.WriteString("Versión nueva:\n")
		for _, line := range diff.NewLines {
			sb.WriteString("  + " + line + "\n")
		}
	}

	if len(diff.Context.BeforeDoc1) > 0 {
		sb.WriteString("\nContexto:\nLíneas anteriores:\n")
		for _, line := range tail(diff.Context.BeforeDoc1, 3) {
			sb.WriteString("  " + line + "\n")
		}
	}

	sb.WriteString("\nExplica el significado y el impacto de este cambio específico en el contexto de una reglamentación o norma.")
	return sb.String()
}

func head(lines []string, n int) []string {
	if len(lines) > n {
		return lines[:n]
	}
	return lines
}

func tail(lines []string, n int) []string {
	if len(lines) > n {
		return lines[len(lines)-n:]
	}
	return lines
}
