package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	Upload UploadConfig
	OCR    OCRConfig
	LLM    LLMConfig
	Cache  CacheConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Addr          string
	UploadTimeout time.Duration
}

// UploadConfig holds scratch-storage configuration.
type UploadConfig struct {
	Dir string
}

// OCRConfig holds text-extraction configuration.
type OCRConfig struct {
	Tesseract     string
	Pdftoppm      string
	TesseractLang string
	DPI           int
	MaxPages      int
}

// LLMConfig holds the Groq chat-completions client configuration.
type LLMConfig struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float32
	Timeout     time.Duration
}

// CacheConfig holds the optional analysis cache configuration.
// An empty RedisAddr disables caching.
type CacheConfig struct {
	RedisAddr string
	TTL       time.Duration
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:          getEnv("ADDR", ":8080"),
			UploadTimeout: getEnvAsDuration("UPLOAD_TIMEOUT", 2*time.Minute),
		},
		Upload: UploadConfig{
			Dir: getEnv("UPLOAD_DIR", "./uploads"),
		},
		OCR: OCRConfig{
			Tesseract:     getEnv("TESSERACT", "tesseract"),
			Pdftoppm:      getEnv("PDFTOPPM", "pdftoppm"),
			TesseractLang: getEnv("TESSERACT_LANG", "eng"),
			DPI:           getEnvAsInt("OCR_DPI", 300),
			MaxPages:      getEnvAsInt("OCR_MAX_PAGES", 5),
		},
		LLM: LLMConfig{
			APIKey:      getEnv("GROQ_API_KEY", ""),
			BaseURL:     getEnv("GROQ_BASE_URL", "https://api.groq.com/openai/v1"),
			Model:       getEnv("GROQ_MODEL", "llama-3.3-70b-versatile"),
			Temperature: getEnvAsFloat32("GROQ_TEMPERATURE", 0.6),
			Timeout:     getEnvAsDuration("GROQ_TIMEOUT", 45*time.Second),
		},
		Cache: CacheConfig{
			RedisAddr: getEnv("REDIS_ADDR", ""),
			TTL:       getEnvAsDuration("ANALYSIS_CACHE_TTL", 24*time.Hour),
		},
	}
}

// Validate checks the loaded configuration.
func (c *Config) Validate() error {
	if c.LLM.APIKey == "" {
		return Errorf(KindValidation, "GROQ_API_KEY is required")
	}
	if c.Server.Addr == "" {
		return Errorf(KindValidation, "ADDR is required")
	}
	if c.Upload.Dir == "" {
		return Errorf(KindValidation, "UPLOAD_DIR is required")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(floatVal)
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
