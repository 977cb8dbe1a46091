// File: cmd/server/main.go
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/medassist-ai/medassist/internal/config"
	"github.com/medassist-ai/medassist/internal/handlers"
	"github.com/medassist-ai/medassist/internal/middleware"
	"github.com/medassist-ai/medassist/internal/ratelimit"
	"github.com/medassist-ai/medassist/internal/repository/history"
	"github.com/medassist-ai/medassist/internal/services"
	"github.com/medassist-ai/medassist/internal/services/ai"
	"github.com/medassist-ai/medassist/internal/services/analysis"
	"github.com/medassist-ai/medassist/internal/services/session"
)

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept")
		w.Header().Set("Access-Control-Max-Age", "86400")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func main() {
	cfg := config.Load()
	logger := services.NewLogger("medassist")

	// --- Session store ---
	var store session.Store
	if cfg.HistoryBackend == "sqlite" {
		db, err := gorm.Open(sqlite.Open(cfg.HistoryDBPath), &gorm.Config{})
		if err != nil {
			log.Fatalf("DB Error: %v", err)
		}
		if err := history.Migrate(db); err != nil {
			log.Fatalf("DB Migration Error: %v", err)
		}
		store = history.NewGormHistoryRepository(db, cfg.HistoryMaxPerSession)
	} else {
		store = session.NewMemoryStore(cfg.HistoryMaxPerSession)
	}

	// --- Model gateway ---
	// No credential is a normal condition: the provider stays nil and
	// every request takes the static-fallback path.
	var provider ai.CompletionProvider
	modelName := analysis.FallbackModelID
	if cfg.HasAPIKey() {
		aiConfig := ai.DefaultConfig()
		aiConfig.APIKey = cfg.OpenAIAPIKey
		aiConfig.BaseURL = cfg.OpenAIBaseURL
		aiConfig.ChatModel = cfg.ChatModel
		aiConfig.VisionModel = cfg.VisionModel
		aiConfig.Timeout = time.Duration(cfg.RequestTimeoutSeconds) * time.Second

		openaiProvider, err := ai.NewOpenAIProvider(aiConfig)
		if err != nil {
			log.Fatalf("FATAL: Failed to initialize AI provider: %v", err)
		}
		provider = openaiProvider
		modelName = cfg.ChatModel
	}

	// --- Services ---
	analysisService, err := analysis.NewService(provider, store, modelName, analysis.DefaultConfig(), logger)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize analysis service: %v", err)
	}

	// --- Handlers ---
	analysisHandler := handlers.NewAnalysisHandler(analysisService, logger)
	voiceHandler := handlers.NewVoiceHandler(analysisService)
	historyHandler := handlers.NewHistoryHandler(analysisService)
	healthHandler := handlers.NewHealthHandler(analysisService, cfg.HistoryBackend, modelName)

	// --- Router Setup ---
	r := mux.NewRouter()
	r.Use(corsMiddleware)
	r.Use(middleware.RecoverPanic)
	r.Use(middleware.LoggingMiddleware)

	limiter := ratelimit.NewMemoryRateLimiter(ratelimit.DefaultAPIConfig())
	defer limiter.Close()

	api := r.PathPrefix("/api").Subrouter()
	api.Use(middleware.RateLimitMiddleware(limiter))
	api.HandleFunc("/health", healthHandler.Health).Methods("GET")
	api.HandleFunc("/analyze", analysisHandler.Analyze).Methods("POST")
	api.HandleFunc("/analyze-image", analysisHandler.AnalyzeImage).Methods("POST")
	api.HandleFunc("/drugs", analysisHandler.CheckDrugs).Methods("POST")
	api.HandleFunc("/health-info", analysisHandler.GetHealthInfo).Methods("POST")
	api.HandleFunc("/voice", voiceHandler.OptimizeVoice).Methods("POST")
	api.HandleFunc("/test-voice", voiceHandler.TestVoice).Methods("GET")
	api.HandleFunc("/history/{sessionId}", historyHandler.GetHistory).Methods("GET")

	// --- Server Configuration ---
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	log.Printf("MedAssist symptom-analysis service starting on port %s", cfg.ServerPort)
	if !cfg.HasAPIKey() {
		log.Printf("Running in degraded mode: static-fallback analyses only")
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server startup failed: %v", err)
		}
	}()

	// --- Graceful Shutdown ---
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Println("Shutting down server gracefully...")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}
	log.Println("Server stopped")
}
