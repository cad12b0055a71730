package main

import (
	"context"
	"log"
	"net/http"
	"time"

	api "github.com/quizforge/aptitude-app/internal/api/http"
	"github.com/quizforge/aptitude-app/internal/auth"
	"github.com/quizforge/aptitude-app/internal/chatbot"
	"github.com/quizforge/aptitude-app/internal/config"
	"github.com/quizforge/aptitude-app/internal/db"
	"github.com/quizforge/aptitude-app/internal/question"
	"github.com/quizforge/aptitude-app/internal/quiz"
	"github.com/quizforge/aptitude-app/internal/rbac"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func main() {
	cfg := config.FromEnv()

	// --- DB ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}
	if err := db.SeedAdmin(ctx, dbh, cfg.AdminUser, cfg.AdminPassHash); err != nil {
		log.Fatalf("seed admin: %v", err)
	}

	users := auth.NewStore(dbh)
	tokens := auth.NewService(cfg.AuthSecret)

	questions := question.NewSQLStore(dbh)
	manager := quiz.NewManager(questions, cfg.QuizSize)

	oracle, err := newOracle(cfg)
	if err != nil {
		log.Fatalf("chatbot: %v", err)
	}

	// --- Router ---
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	origins := cfg.CORSOriginsOffline
	if cfg.Mode == config.ModeOnline {
		origins = cfg.CORSOriginsOnline
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Post("/auth/register", api.RegisterHandler(users))
	r.Post("/auth/login", api.LoginHandler(users, tokens))

	// Protected API (JWT → subject+role in context → RBAC)
	r.Group(func(pr chi.Router) {
		pr.Use(auth.JWTMiddleware(tokens))

		pr.Get("/categories", api.ListCategoriesHandler())

		pr.With(rbac.Require("quiz:take")).Post("/quiz/start", api.StartQuizHandler(manager))
		pr.With(rbac.Require("quiz:take")).Get("/quiz/current", api.CurrentQuestionHandler(manager))
		pr.With(rbac.Require("quiz:take")).Post("/quiz/answer", api.SubmitAnswerHandler(manager))
		pr.With(rbac.Require("quiz:take")).Post("/quiz/navigate", api.NavigateHandler(manager))
		pr.With(rbac.Require("quiz:take")).Post("/quiz/finish", api.FinishQuizHandler(manager))
		pr.With(rbac.Require("quiz:take")).Post("/quiz/restart", api.RestartQuizHandler(manager))

		pr.With(rbac.Require("chatbot:ask")).Post("/chat", api.ChatHandler(oracle))

		// Admin: question bank management
		pr.With(rbac.Require("questions:import")).Post("/questions/import", api.ImportQuestionsHandler(questions))
		pr.With(rbac.Require("questions:count")).Get("/questions/count", api.CountQuestionsHandler(questions))
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })

	log.Printf("listening on %s (mode=%s, db=%s, chatbot=%s)", cfg.HTTPAddr, cfg.Mode, cfg.DBDriver, cfg.ChatbotDriver)
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, r))
}

func newOracle(cfg config.Config) (chatbot.Oracle, error) {
	if cfg.ChatbotDriver == "openai" {
		return chatbot.NewOpenAIOracle(cfg.OpenAIAPIKey, cfg.OpenAIModel)
	}
	return chatbot.NewRuleOracle(), nil
}
