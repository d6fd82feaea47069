package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

// Settings holds the process configuration read from the environment
type Settings struct {
	Port        string
	Prod        bool
	SecretKey   string
	Storage     string
	Migrate     bool
	CORSOrigins []string
}

// Load reads an optional .env file and then the environment. Variables
// already set win over the file.
func Load(files ...string) Settings {
	_ = godotenv.Load(files...)

	s := Settings{
		Port:      os.Getenv("PORT"),
		Prod:      os.Getenv("PROD") == "true",
		SecretKey: os.Getenv("SECRET_KEY"),
		Storage:   strings.ToLower(os.Getenv("STORAGE")),
		Migrate:   os.Getenv("MIGRATE_POSTGRES") == "true",
	}
	if s.Port == "" {
		s.Port = "8080"
	}
	if s.Storage != StorageMemory {
		s.Storage = StoragePostgres
	}
	if s.SecretKey == "" && !s.Prod {
		s.SecretKey = "uno-development-secret"
	}

	for _, origin := range strings.Split(os.Getenv("CORS_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			s.CORSOrigins = append(s.CORSOrigins, origin)
		}
	}
	if len(s.CORSOrigins) == 0 {
		s.CORSOrigins = []string{"http://localhost:5173"}
	}
	return s
}
