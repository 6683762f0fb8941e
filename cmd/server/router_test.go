package main

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/phrazzld/edusense-api/internal/config"
	"github.com/phrazzld/edusense-api/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const studyContent = "Photosynthesis converts light energy into chemical energy. " +
	"It takes place in the chloroplasts of plant cells."

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Name: "EduSense AI", Version: "1.0.0"},
		Server: config.ServerConfig{
			Host:                   "127.0.0.1",
			Port:                   8000,
			LogLevel:               "info",
			RequestTimeoutSeconds:  5,
			ShutdownTimeoutSeconds: 5,
			CORSAllowedOrigins:     []string{"*"},
		},
		LLM: config.LLMConfig{
			GeminiAPIKey:          "test-key",
			ModelName:             "gemini-pro",
			Temperature:           0.7,
			MaxRetries:            3,
			RetryDelaySeconds:     2,
			RequestTimeoutSeconds: 60,
		},
	}
}

func newTestApp(t *testing.T, gen *mocks.MockGenerator) *application {
	t.Helper()
	app, err := newApplicationWithGenerator(testConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)), gen)
	require.NoError(t, err)
	return app
}

func TestRouter_MCQ(t *testing.T) {
	t.Parallel()

	reply := "```json\n" + `{"total_questions": 1, "difficulty_level": "easy", "questions": [
		{"question_number": 1, "question": "Where does photosynthesis happen?",
		 "options": [{"option": "A", "text": "Mitochondria"}, {"option": "B", "text": "Chloroplasts"}],
		 "correct_answer": "B"}]}` + "\n```"
	gen := mocks.NewMockGeneratorWithReply(reply)
	router := newTestApp(t, gen).setupRouter()

	body := `{"content": "` + studyContent + `", "num_questions": 1, "difficulty_level": "easy"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/mcq", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Trace-ID"))

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.EqualValues(t, 1, resp["total_questions"])
	assert.Equal(t, "easy", resp["difficulty_level"])
	assert.Contains(t, resp, "timestamp")
}

func TestRouter_Routes(t *testing.T) {
	t.Parallel()

	router := newTestApp(t, &mocks.MockGenerator{}).setupRouter()

	for _, path := range []string{
		"/",
		"/health",
		"/api/v1/chat/health",
		"/api/v1/curriculum/health",
		"/api/v1/mcq/health",
		"/api/v1/flashcards/health",
	} {
		t.Run(path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/mcq", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestRouter_CORS(t *testing.T) {
	t.Parallel()

	router := newTestApp(t, &mocks.MockGenerator{}).setupRouter()

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/chat", nil)
	req.Header.Set("Origin", "https://student.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
}

func TestNewApplication_BadTemplateDir(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.LLM.PromptTemplateDir = t.TempDir()

	_, err := newApplicationWithGenerator(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)), &mocks.MockGenerator{})
	assert.Error(t, err)
}

func TestServe_GracefulShutdown(t *testing.T) {
	t.Parallel()

	app := newTestApp(t, &mocks.MockGenerator{})
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.serve(ctx, ln, app.setupRouter()) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/health")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
