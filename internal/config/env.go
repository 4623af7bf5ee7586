package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Env struct {
	AppAddr   string
	GinMode   string
	JWTSecret string

	DBUser string
	DBPass string
	DBHost string
	DBName string

	CORSOrigins []string

	LoginRateMax    int
	LoginRateWindow time.Duration
}

// LoadEnv reads configuration from the environment, loading a local .env
// file first when present (missing file is fine).
func LoadEnv() Env {
	_ = godotenv.Load()

	env := Env{
		AppAddr:         getEnv("APP_ADDR", ":8080"),
		GinMode:         getEnv("GIN_MODE", ""),
		JWTSecret:       getEnv("JWT_SECRET", "dev-secret-change-me"),
		DBUser:          getEnv("DB_USER", "root"),
		DBPass:          getEnv("DB_PASS", ""),
		DBHost:          getEnv("DB_HOST", "127.0.0.1:3306"),
		DBName:          getEnv("DB_NAME", "laundryops"),
		LoginRateMax:    getEnvInt("LOGIN_RATE_MAX", 5),
		LoginRateWindow: time.Duration(getEnvInt("LOGIN_RATE_WINDOW_MIN", 15)) * time.Minute,
	}

	origins := getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			env.CORSOrigins = append(env.CORSOrigins, o)
		}
	}

	return env
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
