// Package chatbot answers follow-up questions about a stored comparison,
// grounding every answer in the compared documents.
package chatbot

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	openai "github.com/sashabaranov/go-openai"

	"github.com/jaywantadh/NormaDiff/internal/comparator"
)

const defaultModel = openai.GPT4oMini

const (
	// Messages kept per session; older ones are discarded.
	historyKeep = 20
	// Messages from the kept history that accompany each request.
	historySend = 6

	maxContextDiffs    = 15
	narratedDiffs      = 10
	maxPlainLines      = 3
	maxModifiedLines   = 2
	maxLineChars       = 200
	sampleHeadChars    = 2000
	sampleTailChars    = 1000
	sampleCutoverChars = 3000
)

const systemPrompt = `Eres un asistente experto en análisis de documentos legales y reglamentarios.
Tu tarea es responder preguntas precisas y detalladas sobre los documentos que se han comparado.

INSTRUCCIONES IMPORTANTES:
1. Responde ÚNICAMENTE basándote en la información proporcionada en los documentos
2. Sé preciso y específico, citando números de artículos, secciones o capítulos cuando sea posible
3. Si la información no está en los documentos, di claramente que no tienes esa información
4. Identifica diferencias específicas entre los documentos cuando se pregunten
5. Usa un lenguaje profesional pero claro
6. Estructura tus respuestas de manera clara y organizada
7. Si se pregunta sobre cambios, explica qué cambió, dónde cambió y el impacto potencial
8. Sé conciso pero completo en tus respuestas

Responde siempre en español y de manera profesional.`

// Chatbot keeps a sliding conversation window per session and answers
// questions against the session's comparison.
type Chatbot struct {
	client *openai.Client
	model  string

	mu        sync.RWMutex
	histories map[string][]openai.ChatCompletionMessage
}

// New builds a Chatbot. The API key is required; an empty model falls
// back to gpt-4o-mini.
func New(apiKey, model string) (*Chatbot, error) {
	if apiKey == "" {
		return nil, errors.New("OPENAI_API_KEY is not set")
	}
	if model == "" {
		model = defaultModel
	}
	return &Chatbot{
		client:    openai.NewClient(apiKey),
		model:     model,
		histories: make(map[string][]openai.ChatCompletionMessage),
	}, nil
}

// Ask answers a question about the compared documents. The exchange is
// remembered in the session's history only when the model responds.
func (c *Chatbot) Ask(ctx context.Context, sessionID, question string, result *comparator.Result, doc1Text, doc2Text string) (string, error) {
	docContext := buildDocumentContext(result, doc1Text, doc2Text)
	messages := buildMessages(c.history(sessionID), docContext, question)

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: 0.2,
		MaxTokens:   1500,
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate answer: %v", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("model returned no choices")
	}

	answer := resp.Choices[0].Message.Content
	c.remember(sessionID, question, answer)
	return answer, nil
}

// ClearHistory forgets a session's conversation.
func (c *Chatbot) ClearHistory(sessionID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.histories, sessionID)
}

func (c *Chatbot) history(sessionID string) []openai.ChatCompletionMessage {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]openai.ChatCompletionMessage(nil), c.histories[sessionID]...)
}

func (c *Chatbot) remember(sessionID, question, answer string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	history := append(c.histories[sessionID],
		openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: question},
		openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: answer},
	)
	if len(history) > historyKeep {
		history = history[len(history)-historyKeep:]
	}
	c.histories[sessionID] = history
}

// buildMessages assembles the request: system prompt, the most recent
// history, then the document context with the question appended.
func buildMessages(history []openai.ChatCompletionMessage, docContext, question string) []openai.ChatCompletionMessage {
	if len(history) > historySend {
		history = history[len(history)-historySend:]
	}

	messages := make([]openai.ChatCompletionMessage, 0, len(history)+2)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: systemPrompt,
	})
	messages = append(messages, history...)
	return append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: fmt.Sprintf("%s\n\nPregunta del usuario: %s", docContext, question),
	})
}

// buildDocumentContext lays out everything the model may cite: document
// metrics, comparison statistics, the leading differences, and samples
// of both document texts.
func buildDocumentContext(result *comparator.Result, doc1Text, doc2Text string) string {
	parts := []string{
		"=== INFORMACIÓN DE LOS DOCUMENTOS ===",
		"\nDocumento 1:",
		fmt.Sprintf("- Páginas: %d", result.Document1.TotalPages),
		fmt.Sprintf("- Líneas: %d", result.Document1.TotalLines),
		fmt.Sprintf("- Caracteres: %d", result.Document1.TotalChars),
		"\nDocumento 2:",
		fmt.Sprintf("- Páginas: %d", result.Document2.TotalPages),
		fmt.Sprintf("- Líneas: %d", result.Document2.TotalLines),
		fmt.Sprintf("- Caracteres: %d", result.Document2.TotalChars),
		"\n=== ESTADÍSTICAS DE COMPARACIÓN ===",
		fmt.Sprintf("- Similitud: %.2f%%", result.SimilarityRatio*100),
		fmt.Sprintf("- Total de diferencias: %d", result.Statistics.TotalDifferences),
		fmt.Sprintf("- Secciones agregadas: %d", result.Statistics.AddedSections),
		fmt.Sprintf("- Secciones eliminadas: %d", result.Statistics.DeletedSections),
		fmt.Sprintf("- Secciones modificadas: %d", result.Statistics.ModifiedSections),
	}

	differences := result.Differences
	if len(differences) > maxContextDiffs {
		differences = differences[:maxContextDiffs]
	}
	if len(differences) > 0 {
		parts = append(parts, "\n=== PRINCIPALES DIFERENCIAS ENCONTRADAS ===")
		narrated := differences
		if len(narrated) > narratedDiffs {
			narrated = narrated[:narratedDiffs]
		}
		for i, diff := range narrated {
			parts = append(parts, fmt.Sprintf("\n--- Diferencia %d (%s) ---", i+1, diff.Type))

			switch diff.Type {
			case comparator.Added:
				parts = append(parts, "Contenido agregado:")
				for _, line := range head(diff.Lines, maxPlainLines) {
					parts = append(parts, "  + "+truncate(line, maxLineChars))
				}
			case comparator.Deleted:
				parts = append(parts, "Contenido eliminado:")
				for _, line := range head(diff.Lines, maxPlainLines) {
					parts = append(parts, "  - "+truncate(line, maxLineChars))
				}
			case comparator.Modified:
				parts = append(parts, "Contenido modificado:", "Antes:")
				for _, line := range head(diff.OldLines, maxModifiedLines) {
					parts = append(parts, "  - "+truncate(line, maxLineChars))
				}
				parts = append(parts, "Después:")
				for _, line := range head(diff.NewLines, maxModifiedLines) {
					parts = append(parts, "  + "+truncate(line, maxLineChars))
				}
			}
		}
	}

	parts = append(parts, "\n=== CONTENIDO DEL DOCUMENTO 1 (muestra) ===")
	if doc1Text != "" {
		parts = append(parts, sampleDocument(doc1Text))
	}
	parts = append(parts, "\n=== CONTENIDO DEL DOCUMENTO 2 (muestra) ===")
	if doc2Text != "" {
		parts = append(parts, sampleDocument(doc2Text))
	}

	return strings.Join(parts, "\n")
}

// sampleDocument keeps the head and tail of long documents so the
// opening articles and final provisions both stay visible.
func sampleDocument(text string) string {
	runes := []rune(text)
	if len(runes) <= sampleCutoverChars {
		return text
	}
	return string(runes[:sampleHeadChars]) + "\n...\n" + string(runes[len(runes)-sampleTailChars:])
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

func head(lines []string, n int) []string {
	if len(lines) > n {
		return lines[:n]
	}
	return lines
}
