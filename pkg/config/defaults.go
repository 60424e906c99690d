// Package config provides centralized default values for the Ad Atelier engine
package config

import (
	"bufio"
	"log"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"
)

var envLoaded sync.Once

func loadEnvFile() {
	envLoaded.Do(func() {
		file, err := os.Open(".env")
		if err != nil {
			return
		}
		defer file.Close()

		log.Println("Loading configuration overrides from .env file...")
		scanner := bufio.NewScanner(file)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())

			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}

			parts := strings.SplitN(line, "=", 2)
			if len(parts) != 2 {
				continue
			}

			key := strings.TrimSpace(parts[0])
			value := strings.TrimSpace(parts[1])

			if os.Getenv(key) == "" {
				os.Setenv(key, value)
			}
		}
	})
}

func getEnvInt(key string, defaultValue int) int {
	if valStr := os.Getenv(key); valStr != "" {
		if val, err := strconv.Atoi(valStr); err == nil {
			if val != defaultValue {
				log.Printf("Config override: %s=%d (default: %d)", key, val, defaultValue)
			}
			return val
		}
	}
	return defaultValue
}

func getEnvString(key string, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		if val != defaultValue {
			log.Printf("Config override: %s=%s (default: %s)", key, val, defaultValue)
		}
		return val
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if valStr := os.Getenv(key); valStr != "" {
		if val, err := time.ParseDuration(valStr); err == nil {
			if val != defaultValue {
				log.Printf("Config override: %s=%s (default: %s)", key, val, defaultValue)
			}
			return val
		}
	}
	return defaultValue
}

var (
	// Server Configuration
	Port               string
	ServerReadTimeout  time.Duration
	ServerWriteTimeout time.Duration
	ServerIdleTimeout  time.Duration

	// Session Configuration
	SessionStalenessWindow time.Duration
	TimeTickerInterval     time.Duration
	MaxSessions            int
	SessionCleanupInterval time.Duration

	// Database Configuration
	DBDriver                 string
	DBPath                   string
	DBMaxOpenConns           int
	DBMaxIdleConns           int
	DBConnMaxLifetimeMinutes int
	SlowQueryThreshold       time.Duration

	// Caption Gateway Configuration
	CaptionGatewayURL     string
	CaptionGatewayModel   string
	CaptionGatewayTimeout time.Duration
	MaxUploadDimension    int

	// Presence Configuration
	PresenceBroadcastInterval time.Duration

	// Secrets (env only)
	CaptionGatewayKey string
	JWTSecret         string
	RazorpayKeySecret string
	ResendAPIKey      string
	EmailFrom         string
	EmailFromName     string
	ContactInbox      string
)

func init() {
	loadEnvFile()

	// Server Configuration
	Port = getEnvString("PORT", "8080")
	ServerReadTimeout = getEnvDuration("SERVER_READ_TIMEOUT", 15*time.Second)
	ServerWriteTimeout = getEnvDuration("SERVER_WRITE_TIMEOUT", 15*time.Second)
	ServerIdleTimeout = getEnvDuration("SERVER_IDLE_TIMEOUT", 60*time.Second)

	// Session Configuration
	SessionStalenessWindow = getEnvDuration("SESSION_STALENESS_WINDOW", 30*time.Minute)
	TimeTickerInterval = getEnvDuration("TIME_TICKER_INTERVAL", 5*time.Second)
	MaxSessions = getEnvInt("MAX_SESSIONS", 10000)
	SessionCleanupInterval = getEnvDuration("SESSION_CLEANUP_INTERVAL", 10*time.Minute)

	// Database Configuration
	DBDriver = getEnvString("DB_DRIVER", "sqlite3")
	DBPath = getEnvString("DB_PATH", "atelier.db")
	DBMaxOpenConns = getEnvInt("DB_MAX_OPEN_CONNS", 10)
	DBMaxIdleConns = getEnvInt("DB_MAX_IDLE_CONNS", 3)
	DBConnMaxLifetimeMinutes = getEnvInt("DB_CONN_MAX_LIFETIME_MINUTES", 30)
	SlowQueryThreshold = getEnvDuration("SLOW_QUERY_THRESHOLD", 100*time.Millisecond)

	// Caption Gateway Configuration
	CaptionGatewayURL = getEnvString("CAPTION_GATEWAY_URL", "https://ai.gateway.lovable.dev/v1/chat/completions")
	CaptionGatewayModel = getEnvString("CAPTION_GATEWAY_MODEL", "google/gemini-2.5-flash")
	CaptionGatewayTimeout = getEnvDuration("CAPTION_GATEWAY_TIMEOUT", 45*time.Second)
	MaxUploadDimension = getEnvInt("MAX_UPLOAD_DIMENSION", 1600)

	// Presence Configuration
	PresenceBroadcastInterval = getEnvDuration("PRESENCE_BROADCAST_INTERVAL", 10*time.Second)

	// Secrets
	CaptionGatewayKey = os.Getenv("CAPTION_GATEWAY_KEY")
	JWTSecret = os.Getenv("JWT_SECRET")
	RazorpayKeySecret = os.Getenv("RAZORPAY_KEY_SECRET")
	ResendAPIKey = os.Getenv("RESEND_API_KEY")
	EmailFrom = getEnvString("EMAIL_FROM", "noreply@adatelier.ai")
	EmailFromName = getEnvString("EMAIL_FROM_NAME", "Ad Atelier AI")
	ContactInbox = getEnvString("CONTACT_INBOX", "hello@adatelier.ai")
}
