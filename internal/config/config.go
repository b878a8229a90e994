package config

import (
	"errors"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Ai       AIConfig
	Storage  StorageConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
}

type DatabaseConfig struct {
	Connection  string
	UseLocalDB  bool
	LocalDBPath string
}

type AuthConfig struct {
	JwtSecret    string
	JwtAlgorithm string
}

type AIConfig struct {
	LLMProvider   string // "ollama" is the only supported backend for now
	OllamaBaseURL string
	OllamaModel   string
}

type StorageConfig struct {
	UploadDir string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "8000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		},
		Database: DatabaseConfig{
			Connection:  getEnv("DB_CONNECTION_STRING", ""),
			UseLocalDB:  getEnvAsBool("USE_LOCAL_DB", false),
			LocalDBPath: getEnv("LOCAL_DB_PATH", "local.db"),
		},
		Auth: AuthConfig{
			JwtSecret:    getEnv("JWT_SECRET", ""),
			JwtAlgorithm: getEnv("JWT_ALGORITHM", "HS256"),
		},
		Ai: AIConfig{
			LLMProvider:   getEnv("LLM_PROVIDER", "ollama"),
			OllamaBaseURL: getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			OllamaModel:   getEnv("OLLAMA_MODEL", "llama3.1:8b"),
		},
		Storage: StorageConfig{
			UploadDir: getEnv("UPLOAD_DIR", "uploads"),
		},
	}
}

// Validate reports configuration errors that must stop the process at
// startup. They are never surfaced as per-request errors.
func (c *Config) Validate() error {
	if c.Auth.JwtSecret == "" {
		return errors.New("JWT_SECRET is not set")
	}
	if c.Auth.JwtAlgorithm != "HS256" {
		return errors.New("unsupported JWT_ALGORITHM: " + c.Auth.JwtAlgorithm)
	}
	if !c.Database.UseLocalDB && c.Database.Connection == "" {
		return errors.New("DB_CONNECTION_STRING is not set (or set USE_LOCAL_DB=true)")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return fallback
}
