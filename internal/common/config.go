package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	OCR      OCRConfig
	Extract  ExtractConfig
	Calendar CalendarConfig
	Queue    QueueConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr  string
	UploadDir string
}

// OCRConfig holds OCR-related configuration
type OCRConfig struct {
	Tesseract     string
	TesseractLang string
	TessdataDir   string
	EnableTSVConf bool
}

// ExtractConfig holds tunables for the extraction pipeline.
// Threshold values are design parameters; they gate candidate resolution
// per field kind and must be adjustable without touching matcher logic.
type ExtractConfig struct {
	TitleThreshold    float32
	DateThreshold     float32
	TimeThreshold     float32
	LocationThreshold float32
	HostThreshold     float32
	MinConfidence     float32 // below this the extracted event is flagged for review
}

// CalendarConfig holds Google Calendar submission configuration
type CalendarConfig struct {
	ClientID     string
	ClientSecret string
	TokenFile    string
	CalendarID   string
	TimeZone     string // IANA zone for timed events, e.g. "America/New_York"
}

// QueueConfig holds background-processing configuration
type QueueConfig struct {
	Workers        int
	Size           int
	ProcessTimeout time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", "sqlite://flyercal.db"),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Server: ServerConfig{
			GRPCAddr:  getEnv("GRPC_ADDR", ":8080"),
			UploadDir: getEnv("UPLOAD_DIR", "./uploads"),
		},
		OCR: OCRConfig{
			Tesseract:     getEnv("TESSERACT_BIN", "tesseract"),
			TesseractLang: getEnv("TESSERACT_LANG", "eng"),
			TessdataDir:   getEnv("TESSDATA_PREFIX", ""),
			EnableTSVConf: getEnvAsBool("OCR_TSV_CONFIDENCE", true),
		},
		Extract: ExtractConfig{
			TitleThreshold:    getEnvAsFloat32("EXTRACT_TITLE_THRESHOLD", 0.2),
			DateThreshold:     getEnvAsFloat32("EXTRACT_DATE_THRESHOLD", 0.5),
			TimeThreshold:     getEnvAsFloat32("EXTRACT_TIME_THRESHOLD", 0.4),
			LocationThreshold: getEnvAsFloat32("EXTRACT_LOCATION_THRESHOLD", 0.3),
			HostThreshold:     getEnvAsFloat32("EXTRACT_HOST_THRESHOLD", 0.3),
			MinConfidence:     getEnvAsFloat32("EXTRACT_MIN_CONFIDENCE", 0.5),
		},
		Calendar: CalendarConfig{
			ClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
			ClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),
			TokenFile:    getEnv("GOOGLE_TOKEN_FILE", "token.json"),
			CalendarID:   getEnv("GOOGLE_CALENDAR_ID", "primary"),
			TimeZone:     getEnv("EVENT_TIMEZONE", "UTC"),
		},
		Queue: QueueConfig{
			Workers:        getEnvAsInt("QUEUE_WORKERS", 4),
			Size:           getEnvAsInt("QUEUE_SIZE", 256),
			ProcessTimeout: getEnvAsDuration("QUEUE_PROCESS_TIMEOUT", 3*time.Minute),
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

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
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

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
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
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrInvalidInput)
	}
	if _, err := time.LoadLocation(c.Calendar.TimeZone); err != nil {
		return NewAppError("CONFIG_ERROR", "EVENT_TIMEZONE is not a valid IANA zone", err)
	}
	return nil
}
