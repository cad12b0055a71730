package config

import (
	"os"
	"strconv"
	"strings"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type Config struct {
	Mode     Mode
	HTTPAddr string

	DBDriver string
	DBDSN    string

	AuthSecret string

	// QuizSize caps how many questions one quiz draws from a category.
	QuizSize int

	// ChatbotDriver selects the oracle: "rules" (offline default) or "openai".
	ChatbotDriver string
	OpenAIAPIKey  string
	OpenAIModel   string

	AdminUser     string
	AdminPassHash string // bcrypt

	CORSOriginsOnline  []string
	CORSOriginsOffline []string
}

func FromEnv() Config {
	mode := Mode(os.Getenv("MODE"))
	if mode == "" {
		mode = ModeOffline
	}
	return Config{
		Mode:     mode,
		HTTPAddr: envOr("HTTP_ADDR", ":8080"),

		DBDriver: envOr("DB_DRIVER", "sqlite"),
		DBDSN:    envOr("DB_DSN", ""),

		AuthSecret: envOr("AUTH_HMAC_SECRET", "supersecret-dev-key"),

		QuizSize: envInt("QUIZ_SIZE", 20),

		ChatbotDriver: envOr("CHATBOT_DRIVER", "rules"),
		OpenAIAPIKey:  os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:   envOr("OPENAI_MODEL", "gpt-4o-mini"),

		AdminUser:     envOr("ADMIN_USER", "admin"),
		AdminPassHash: envOr("ADMIN_PASS_HASH", "$2y$12$pyZAiWaTfVtM7UElIRStvOC3gNbnp70nmQU4eYopLGBfCJr1DOvji"),

		CORSOriginsOnline:  csvOr("CORS_ORIGINS_ONLINE", "https://aptitude.quizforge.dev"),
		CORSOriginsOffline: csvOr("CORS_ORIGINS_OFFLINE", "http://localhost:3000,http://localhost:5173"),
	}
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func envInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func csvOr(k, def string) []string {
	v := envOr(k, def)
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
