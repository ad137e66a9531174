package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Env struct {
	Port           string
	GinMode        string
	DBDriver       string
	DBDSN          string
	AllowedOrigins []string
}

// LoadEnv reads the .env file named by ENV_FILE (default ".env") into the
// process environment, then builds the configuration from it. A missing
// file is not an error: variables may come from the real environment.
func LoadEnv() Env {
	envFile := strings.TrimSpace(os.Getenv("ENV_FILE"))
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Printf("no env file loaded from %s: %v", envFile, err)
	}

	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	return Env{
		Port:           port,
		GinMode:        strings.TrimSpace(os.Getenv("GIN_MODE")),
		DBDriver:       strings.TrimSpace(os.Getenv("DB_DRIVER")),
		DBDSN:          strings.TrimSpace(os.Getenv("DB_DSN")),
		AllowedOrigins: splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
	}
}

func splitList(raw string) []string {
	var out []string
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
