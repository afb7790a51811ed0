package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"
)

const (
	defaultAddr         = ":8080"
	defaultDatabaseURL  = "primedrew.db"
	defaultJWTSecret    = "change-me-jwt-secret"
	defaultJWTTTL       = "24h"
	defaultQuoteTTL     = "15m"
	defaultGatewayBase  = "https://api.razorpay.com"
	defaultCancelGrace  = "1h"
	defaultCancelFeePct = 10
)

// Config is the process-wide runtime configuration, loaded once at startup.
type Config struct {
	AppEnv      string
	Addr        string
	DatabaseURL string

	JWTSecret string
	JWTTTL    time.Duration

	// QuoteTTL bounds how long a pending reservation quote stays claimable
	// between order creation and payment confirmation.
	QuoteTTL time.Duration
	RedisURL string

	RazorpayKeyID   string
	RazorpaySecret  string
	RazorpayBaseURL string

	TwilioAccountSID string
	TwilioAuthToken  string
	TwilioFrom       string

	CancelGrace  time.Duration
	CancelFeePct int
}

func Load() (*Config, error) {
	cfg := &Config{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = strings.TrimSpace(os.Getenv("ENV"))
	}
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.Addr = strings.TrimSpace(getEnv("ADDR", defaultAddr))
	cfg.DatabaseURL = strings.TrimSpace(getEnv("DATABASE_URL", defaultDatabaseURL))
	cfg.JWTSecret = strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret))

	var err error
	cfg.JWTTTL, err = parseDurationEnv("JWT_TTL", defaultJWTTTL)
	if err != nil {
		return nil, err
	}

	cfg.QuoteTTL, err = parseDurationEnv("QUOTE_TTL", defaultQuoteTTL)
	if err != nil {
		return nil, err
	}

	cfg.RedisURL = strings.TrimSpace(os.Getenv("REDIS_URL"))

	cfg.RazorpayKeyID = strings.TrimSpace(os.Getenv("RAZORPAY_KEY_ID"))
	cfg.RazorpaySecret = strings.TrimSpace(os.Getenv("RAZORPAY_KEY_SECRET"))
	cfg.RazorpayBaseURL = strings.TrimSpace(getEnv("RAZORPAY_BASE_URL", defaultGatewayBase))

	cfg.TwilioAccountSID = strings.TrimSpace(os.Getenv("TWILIO_ACCOUNT_SID"))
	cfg.TwilioAuthToken = strings.TrimSpace(os.Getenv("TWILIO_AUTH_TOKEN"))
	cfg.TwilioFrom = strings.TrimSpace(os.Getenv("TWILIO_FROM"))

	cfg.CancelGrace, err = parseDurationEnv("CANCEL_GRACE", defaultCancelGrace)
	if err != nil {
		return nil, err
	}
	cfg.CancelFeePct = defaultCancelFeePct

	if err := validate(cfg); err != nil {
		return nil, err
	}

	log.Printf("config loaded: env=%s addr=%s quote_ttl=%s redis=%t sms=%t",
		cfg.AppEnv, cfg.Addr, cfg.QuoteTTL, cfg.RedisURL != "", cfg.TwilioAccountSID != "")

	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.JWTTTL <= 0 {
		return fmt.Errorf("JWT_TTL must be > 0")
	}
	if cfg.QuoteTTL <= 0 {
		return fmt.Errorf("QUOTE_TTL must be > 0")
	}
	if cfg.CancelGrace <= 0 {
		return fmt.Errorf("CANCEL_GRACE must be > 0")
	}

	if isProdLike(cfg.AppEnv) {
		if isEmptyOrDefault(cfg.JWTSecret, defaultJWTSecret) {
			return fmt.Errorf("in prod/release JWT_SECRET must be set and not default")
		}
		if cfg.RazorpayKeyID == "" || cfg.RazorpaySecret == "" {
			return fmt.Errorf("in prod/release RAZORPAY_KEY_ID and RAZORPAY_KEY_SECRET must be set")
		}
	}

	return nil
}

func isProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}

func isEmptyOrDefault(v, def string) bool {
	trimmed := strings.TrimSpace(v)
	return trimmed == "" || trimmed == def
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
