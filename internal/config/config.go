package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        int
	LogLevel    string
	CORSOrigins []string

	DatabaseURL string
	Mongo       MongoConfig
	FDC         FDCConfig
	Session     SessionConfig
	OAuth       OAuthConfig
	Recipe      RecipeConfig
}

type MongoConfig struct {
	URI      string
	Database string
}

type FDCConfig struct {
	BaseURL string
	APIKey  string
	// NutrientThreshold is nil when nutrients are not filtered.
	NutrientThreshold *float64
}

type SessionConfig struct {
	Secret string
	TTL    time.Duration
	Secure bool
}

type OAuthConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

type RecipeConfig struct {
	Provider     string
	OpenAIKey    string
	OpenAIModel  string
	GeminiKey    string
	GeminiModel  string
	Temperature  float32
	MaxTokens    int
	SystemPrompt string

	// AllowedModels lists extra models callers may request.
	AllowedModels []string
}

// MissingError lists every required variable that was not set.
type MissingError struct {
	Keys []string
}

func (e *MissingError) Error() string {
	return "missing required environment variables: " + strings.Join(e.Keys, ", ")
}

var required = []string{
	"DATABASE_URL",
	"MONGO_URI",
	"USDA_API_KEY",
	"SESSION_SECRET",
	"GOOGLE_CLIENT_ID",
	"GOOGLE_CLIENT_SECRET",
}

// Load reads the process environment, after merging a .env file when one
// exists. It fails when a required variable is absent or a value cannot
// be parsed.
func Load() (Config, error) {
	_ = godotenv.Load()

	var missing []string
	for _, key := range required {
		if strings.TrimSpace(os.Getenv(key)) == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return Config{}, &MissingError{Keys: missing}
	}

	port, err := getEnvInt("PORT", 8080)
	if err != nil {
		return Config{}, err
	}
	ttl, err := getEnvDuration("SESSION_TTL", 24*time.Hour)
	if err != nil {
		return Config{}, err
	}
	threshold, err := getEnvFloatPtr("NUTRIENT_THRESHOLD")
	if err != nil {
		return Config{}, err
	}
	maxTokens, err := getEnvInt("RECIPE_MAX_TOKENS", 100)
	if err != nil {
		return Config{}, err
	}
	temperature, err := getEnvFloat("RECIPE_TEMPERATURE", 0.5)
	if err != nil {
		return Config{}, err
	}

	return Config{
		Port:        port,
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		CORSOrigins: splitList(getEnv("CORS_ORIGINS", "http://localhost:3000")),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		Mongo: MongoConfig{
			URI:      os.Getenv("MONGO_URI"),
			Database: getEnv("MONGO_DATABASE", "fooding"),
		},
		FDC: FDCConfig{
			BaseURL:           getEnv("FDC_BASE_URL", ""),
			APIKey:            os.Getenv("USDA_API_KEY"),
			NutrientThreshold: threshold,
		},
		Session: SessionConfig{
			Secret: os.Getenv("SESSION_SECRET"),
			TTL:    ttl,
			Secure: getEnv("SESSION_COOKIE_SECURE", "false") == "true",
		},
		OAuth: OAuthConfig{
			ClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
			ClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
			RedirectURL:  getEnv("OAUTH_REDIRECT_URL", "postmessage"),
		},
		Recipe: RecipeConfig{
			Provider:      strings.ToLower(getEnv("RECIPE_PROVIDER", "openai")),
			OpenAIKey:     os.Getenv("OPENAI_API_KEY"),
			OpenAIModel:   getEnv("OPENAI_MODEL", "gpt-3.5-turbo"),
			GeminiKey:     os.Getenv("GEMINI_API_KEY"),
			GeminiModel:   getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
			Temperature:   float32(temperature),
			MaxTokens:     maxTokens,
			SystemPrompt:  getEnv("RECIPE_SYSTEM_PROMPT", "You are a helpful assistant."),
			AllowedModels: splitList(getEnv("RECIPE_ALLOWED_MODELS", "")),
		},
	}, nil
}

// LoadDatabase reads only what the maintenance commands need.
func LoadDatabase() (string, error) {
	_ = godotenv.Load()
	dsn := strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if dsn == "" {
		return "", &MissingError{Keys: []string{"DATABASE_URL"}}
	}
	return dsn, nil
}

// LoadMongo reads the document store settings. ok is false when MONGO_URI
// is unset.
func LoadMongo() (cfg MongoConfig, ok bool) {
	_ = godotenv.Load()
	uri := strings.TrimSpace(os.Getenv("MONGO_URI"))
	if uri == "" {
		return MongoConfig{}, false
	}
	return MongoConfig{URI: uri, Database: getEnv("MONGO_DATABASE", "fooding")}, true
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	raw, exists := os.LookupEnv(key)
	if !exists || raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}

func getEnvFloat(key string, defaultValue float64) (float64, error) {
	raw, exists := os.LookupEnv(key)
	if !exists || raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}

func getEnvFloatPtr(key string) (*float64, error) {
	raw, exists := os.LookupEnv(key)
	if !exists || raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", key, err)
	}
	return &v, nil
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	raw, exists := os.LookupEnv(key)
	if !exists || raw == "" {
		return defaultValue, nil
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
