package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Server    ServerConfig
	OCR       OCRConfig
	Matcher   MatcherConfig
	Validator ValidatorConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Addr            string
	UploadDir       string
	MaxUploadBytes  int64
	ShutdownTimeout time.Duration
}

// OCRConfig holds OCR-related configuration
type OCRConfig struct {
	Tesseract     string // binary name or absolute path; if empty -> "tesseract"
	Pdftoppm      string // binary name or absolute path; if empty -> "pdftoppm"
	TesseractLang string
	TessdataDir   string
	DPI           int
}

// MatcherConfig holds similarity-scoring configuration
type MatcherConfig struct {
	EmbeddingPath string // word2vec binary; empty or missing disables the embedding path
	ReferencePath string // reference descriptor text; empty -> built-in descriptor
	NEREnabled    bool   // named-entity fallbacks for name/company extraction
}

// ValidatorConfig holds the verdict thresholds
type ValidatorConfig struct {
	SuspectSimilarity float64 // below this the verdict is always Suspect
	CompanySimilarity float64 // below this a missing company makes the verdict Suspect
	FuzzyThreshold    int     // 0..100, minimum fuzzy-match score for known orgs
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            getEnv("HTTP_ADDR", ":8080"),
			UploadDir:       getEnv("UPLOAD_DIR", "./uploads"),
			MaxUploadBytes:  int64(getEnvAsInt("MAX_UPLOAD_BYTES", 16<<20)),
			ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		OCR: OCRConfig{
			Tesseract:     getEnv("TESSERACT_BIN", "tesseract"),
			Pdftoppm:      getEnv("PDFTOPPM_BIN", "pdftoppm"),
			TesseractLang: getEnv("TESSERACT_LANG", "eng"),
			TessdataDir:   getEnv("TESSDATA_PREFIX", ""),
			DPI:           getEnvAsInt("OCR_DPI", 300),
		},
		Matcher: MatcherConfig{
			EmbeddingPath: getEnv("EMBEDDING_PATH", ""),
			ReferencePath: getEnv("REFERENCE_PATH", ""),
			NEREnabled:    getEnvAsBool("NER_ENABLED", true),
		},
		Validator: ValidatorConfig{
			SuspectSimilarity: getEnvAsFloat64("SUSPECT_SIMILARITY", 0.2),
			CompanySimilarity: getEnvAsFloat64("COMPANY_SIMILARITY", 0.5),
			FuzzyThreshold:    getEnvAsInt("FUZZY_THRESHOLD", 80),
		},
	}
}

// Helper functions for environment variable parsing
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

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsFloat64(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
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

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return NewAppError("CONFIG_ERROR", "HTTP_ADDR is required", ErrInvalidInput)
	}
	if c.Server.UploadDir == "" {
		return NewAppError("CONFIG_ERROR", "UPLOAD_DIR is required", ErrInvalidInput)
	}
	if c.Validator.SuspectSimilarity < 0 || c.Validator.SuspectSimilarity > 1 {
		return NewAppError("CONFIG_ERROR", "SUSPECT_SIMILARITY must be in [0,1]", ErrInvalidInput)
	}
	if c.Validator.CompanySimilarity < 0 || c.Validator.CompanySimilarity > 1 {
		return NewAppError("CONFIG_ERROR", "COMPANY_SIMILARITY must be in [0,1]", ErrInvalidInput)
	}
	if c.Validator.FuzzyThreshold < 0 || c.Validator.FuzzyThreshold > 100 {
		return NewAppError("CONFIG_ERROR", "FUZZY_THRESHOLD must be in [0,100]", ErrInvalidInput)
	}
	return nil
}
