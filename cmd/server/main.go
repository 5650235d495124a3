package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/jaywantadh/NormaDiff/config"
	"github.com/jaywantadh/NormaDiff/internal/chatbot"
	"github.com/jaywantadh/NormaDiff/internal/comparator"
	"github.com/jaywantadh/NormaDiff/internal/explainer"
	"github.com/jaywantadh/NormaDiff/internal/extractor"
	"github.com/jaywantadh/NormaDiff/internal/session"
	"github.com/jaywantadh/NormaDiff/internal/uploads"
	"github.com/jaywantadh/NormaDiff/pkg/env"
	"github.com/jaywantadh/NormaDiff/pkg/logging"
)

var (
	sessions    *session.Store
	spool       uploads.Spool
	aiExplainer *explainer.Explainer
	bot         *chatbot.Chatbot
	server      *http.Server
)

const sessionCookieName = "normadiff_session"

// CompareResponse is the payload returned by /api/compare. Explanation
// stays null when narration was skipped or unavailable.
type CompareResponse struct {
	Success     bool               `json:"success"`
	Comparison  *comparator.Result `json:"comparison"`
	Explanation *string            `json:"explanation"`
}

// ChatRequest is the body accepted by /api/chat.
type ChatRequest struct {
	Question string `json:"question"`
}

// ChatResponse is the payload returned by /api/chat.
type ChatResponse struct {
	Success  bool   `json:"success"`
	Answer   string `json:"answer"`
	Question string `json:"question"`
}

// HealthResponse reports which optional components are live.
type HealthResponse struct {
	Status           string `json:"status"`
	AIAvailable      bool   `json:"ai_available"`
	ChatbotAvailable bool   `json:"chatbot_available"`
}

// HistoryResponse is the payload returned by /api/comparisons.
type HistoryResponse struct {
	Success     bool            `json:"success"`
	Comparisons []session.Entry `json:"comparisons"`
}

// loggedServeMux wraps http.ServeMux with request logging
type loggedServeMux struct {
	mux *http.ServeMux
}

func (l *loggedServeMux) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logging.WithComponent("http").Infof("🌐 Request: %s %s", r.Method, r.URL.Path)
	l.mux.ServeHTTP(w, r)
}

func main() {
	env.LoadEnv()
	config.LoadConfig("./config")
	logging.InitLogger(env.GetEnvBool("DEBUG"))

	initializeComponents()
	defer func() {
		if sessions != nil {
			sessions.Close()
		}
	}()

	// Try different ports if the default is busy
	port := config.Config.Port
	for i := 0; i < 10; i++ {
		testPort := port + i
		server = &http.Server{
			Addr:    fmt.Sprintf(":%d", testPort),
			Handler: createRouter(),
		}

		fmt.Printf("🚀 NormaDiff server starting on http://localhost:%d\n", testPort)
		fmt.Println("📄 Open your browser and navigate to the URL above")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if isAddrInUse(err) {
				fmt.Printf("⚠️ Port %d is busy, trying next port...\n", testPort)
				continue
			}
			fmt.Printf("❌ Server failed to start: %v\n", err)
			break
		}
		break
	}
}

func isAddrInUse(err error) bool {
	return strings.Contains(err.Error(), "address already in use") ||
		strings.Contains(err.Error(), "Only one usage of each socket address")
}

func initializeComponents() {
	var err error

	spool, err = uploads.NewLocalSpool(config.Config.UploadDir)
	if err != nil {
		logging.Log.Fatalf("❌ Failed to create upload spool: %v", err)
	}

	password := ""
	if config.Config.EncryptAtRest {
		password = env.GetEnv("SESSION_STORE_KEY", "")
		if password == "" {
			fmt.Println("⚠️ encrypt_at_rest is on but SESSION_STORE_KEY is not set - storing sessions unencrypted")
		}
	}

	// Retry with a different path when another instance holds the lock
	ttl := time.Duration(config.Config.SessionTTLMinutes) * time.Minute
	dbPath := config.Config.SessionDBPath
	for i := 0; i < 3; i++ {
		sessions, err = session.Open(dbPath, ttl, password)
		if err == nil {
			break
		}
		if strings.Contains(err.Error(), "LOCK") {
			fmt.Printf("⚠️ Session database is locked, trying different path... (attempt %d/3)\n", i+1)
			dbPath = fmt.Sprintf("%s_%d", config.Config.SessionDBPath, time.Now().Unix())
			time.Sleep(1 * time.Second)
			continue
		}
		fmt.Printf("⚠️ Failed to open session store: %v - continuing without stored comparisons\n", err)
		break
	}

	apiKey := env.GetEnv("OPENAI_API_KEY", "")
	aiExplainer, err = explainer.New(apiKey, config.Config.OpenAIModel)
	if err != nil {
		fmt.Printf("⚠️ AI explainer unavailable: %v\n", err)
		fmt.Println("   Comparisons will run without generated explanations")
	}

	bot, err = chatbot.New(apiKey, config.Config.OpenAIModel)
	if err != nil {
		fmt.Printf("⚠️ Chatbot unavailable: %v\n", err)
		fmt.Println("   Questions about compared documents will be rejected")
	}

	fmt.Printf("✅ All components initialized\n")
}

func createRouter() http.Handler {
	mux := http.NewServeMux()

	loggedMux := &loggedServeMux{mux: mux}

	mux.HandleFunc("/api/compare", handleCompare)
	mux.HandleFunc("/api/chat", handleChat)
	mux.HandleFunc("/api/health", handleHealth)
	mux.HandleFunc("/api/comparisons", handleComparisons)

	mux.HandleFunc("/", handleHome)
	mux.HandleFunc("/static/", handleStatic)

	return loggedMux
}

// ensureSession returns the caller's session ID, minting a cookie when
// none is present yet.
func ensureSession(w http.ResponseWriter, r *http.Request) string {
	if cookie, err := r.Cookie(sessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	id := session.NewID()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		Secure:   false, // Set to true in production with HTTPS
		SameSite: http.SameSiteStrictMode,
		Expires:  time.Now().Add(time.Duration(config.Config.SessionTTLMinutes) * time.Minute),
	})
	return id
}

func handleCompare(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		sendError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	maxBytes := int64(config.Config.MaxUploadMB) << 20
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		sendError(w, http.StatusBadRequest, "No se pudo leer el formulario: "+err.Error())
		return
	}

	file1, header1, err := r.FormFile("file1")
	if err != nil {
		sendError(w, http.StatusBadRequest, "Falta el archivo file1")
		return
	}
	defer file1.Close()

	file2, header2, err := r.FormFile("file2")
	if err != nil {
		sendError(w, http.StatusBadRequest, "Falta el archivo file2")
		return
	}
	defer file2.Close()

	if !uploads.IsPDF(header1.Filename) || !uploads.IsPDF(header2.Filename) {
		sendError(w, http.StatusBadRequest, "Ambos archivos deben ser PDFs")
		return
	}

	generate := true
	if v := r.FormValue("generate_explanation"); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			generate = parsed
		}
	}

	path1, err := spool.Save(header1.Filename, file1)
	if err != nil {
		sendError(w, http.StatusInternalServerError, "Error al guardar el archivo: "+err.Error())
		return
	}
	defer spool.Remove(path1)

	path2, err := spool.Save(header2.Filename, file2)
	if err != nil {
		sendError(w, http.StatusInternalServerError, "Error al guardar el archivo: "+err.Error())
		return
	}
	defer spool.Remove(path2)

	doc1, err := extractor.Extract(path1)
	if err != nil {
		logging.Log.Errorf("❌ Extraction failed for %s: %v", header1.Filename, err)
		sendError(w, http.StatusInternalServerError, "Error al comparar documentos: "+err.Error())
		return
	}
	doc2, err := extractor.Extract(path2)
	if err != nil {
		logging.Log.Errorf("❌ Extraction failed for %s: %v", header2.Filename, err)
		sendError(w, http.StatusInternalServerError, "Error al comparar documentos: "+err.Error())
		return
	}

	// Report the uploaded names, not the spool paths
	doc1.Path = header1.Filename
	doc2.Path = header2.Filename

	result := comparator.Compare(doc1, doc2)
	logging.Log.Infof("📄 Compared %s vs %s: %d differences, similarity %.4f",
		header1.Filename, header2.Filename, result.Statistics.TotalDifferences, result.SimilarityRatio)

	sessionID := ensureSession(w, r)
	if sessions != nil {
		state := &session.State{
			Result:   result,
			Doc1Name: header1.Filename,
			Doc2Name: header2.Filename,
			Doc1Text: doc1.FullText,
			Doc2Text: doc2.FullText,
		}
		if err := sessions.Put(sessionID, state); err != nil {
			logging.Log.Warnf("⚠️ Failed to store comparison for session %s: %v", sessionID, err)
		}
	}

	// A fresh comparison starts a fresh conversation
	if bot != nil {
		bot.ClearHistory(sessionID)
	}

	var explanation *string
	if generate && aiExplainer != nil {
		text, err := aiExplainer.ExplainDifferences(r.Context(), result)
		if err != nil {
			logging.Log.Warnf("⚠️ Explanation failed: %v", err)
			text = "Error al generar explicación: " + err.Error()
		}
		explanation = &text
	}

	sendJSON(w, http.StatusOK, CompareResponse{
		Success:     true,
		Comparison:  result,
		Explanation: explanation,
	})
}

func handleChat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		sendError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	if bot == nil {
		sendError(w, http.StatusServiceUnavailable,
			"Chatbot no está disponible. Verifica que OPENAI_API_KEY esté configurada.")
		return
	}

	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, http.StatusBadRequest, "JSON inválido: "+err.Error())
		return
	}

	cookie, err := r.Cookie(sessionCookieName)
	if err != nil || sessions == nil {
		sendError(w, http.StatusBadRequest,
			"No hay documentos comparados. Por favor compara documentos primero.")
		return
	}

	state, err := sessions.Get(cookie.Value)
	if errors.Is(err, session.ErrNotFound) {
		sendError(w, http.StatusBadRequest,
			"No hay documentos comparados. Por favor compara documentos primero.")
		return
	}
	if err != nil {
		sendError(w, http.StatusInternalServerError, "Error al recuperar la comparación: "+err.Error())
		return
	}

	question := strings.TrimSpace(req.Question)
	if question == "" {
		sendError(w, http.StatusBadRequest, "La pregunta no puede estar vacía")
		return
	}

	answer, err := bot.Ask(r.Context(), cookie.Value, question, state.Result, state.Doc1Text, state.Doc2Text)
	if err != nil {
		logging.Log.Errorf("❌ Chat failed for session %s: %v", cookie.Value, err)
		sendError(w, http.StatusInternalServerError, "Error al procesar la pregunta: "+err.Error())
		return
	}

	sendJSON(w, http.StatusOK, ChatResponse{
		Success:  true,
		Answer:   answer,
		Question: question,
	})
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		sendError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	sendJSON(w, http.StatusOK, HealthResponse{
		Status:           "ok",
		AIAvailable:      aiExplainer != nil,
		ChatbotAvailable: bot != nil,
	})
}

func handleComparisons(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		sendError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	entries := []session.Entry{}
	if sessions != nil {
		var err error
		entries, err = sessions.List(config.Config.MaxHistory)
		if err != nil {
			sendError(w, http.StatusInternalServerError, "Error al listar comparaciones: "+err.Error())
			return
		}
		if entries == nil {
			entries = []session.Entry{}
		}
	}

	sendJSON(w, http.StatusOK, HistoryResponse{Success: true, Comparisons: entries})
}

func handleHome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	html := `<!DOCTYPE html>
<html lang="es">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>NormaDiff - Comparador de PDFs con IA</title>
    <style>` + getCSS() + `</style>
</head>
<body>
    <div class="container">` + getMainAppHTML() + `</div>
    <script>` + getJavaScript() + `</script>
</body>
</html>`

	w.Header().Set("Content-Type", "text/html")
	w.Write([]byte(html))
}

func handleStatic(w http.ResponseWriter, r *http.Request) {
	// Serve static files (if needed)
	http.NotFound(w, r)
}

func sendJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// sendError writes an error body with a detail field the frontend shows
// to the user.
func sendError(w http.ResponseWriter, status int, detail string) {
	sendJSON(w, status, map[string]string{"detail": detail})
}
