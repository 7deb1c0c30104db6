package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Allocation knobs. The national percentage is a fraction in [0,1];
	// currency decimals is 0 for the Guaraní.
	NationalFundPercent decimal.Decimal
	CurrencyDecimals    int32

	// Store resilience knobs.
	StoreQueryTimeout   time.Duration
	StoreMaxRetries     uint64
	StoreRetryBaseDelay time.Duration

	// Login rate limit in ulule/limiter format, e.g. "5-M".
	LoginRateLimit string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "ipupy-tesoreria")
	viper.SetDefault("NATIONAL_FUND_PERCENT", "0.10")
	viper.SetDefault("CURRENCY_DECIMALS", 0)
	viper.SetDefault("STORE_QUERY_TIMEOUT", "5s")
	viper.SetDefault("STORE_MAX_RETRIES", 3)
	viper.SetDefault("STORE_RETRY_BASE_DELAY", "100ms")
	viper.SetDefault("LOGIN_RATE_LIMIT", "5-M")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION (%q). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration)
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	pctStr := viper.GetString("NATIONAL_FUND_PERCENT")
	pct, err := decimal.NewFromString(pctStr)
	if err != nil || pct.IsNegative() || pct.GreaterThan(decimal.NewFromInt(1)) {
		return nil, fmt.Errorf("invalid NATIONAL_FUND_PERCENT %q: must be a fraction in [0,1]", pctStr)
	}
	cfg.NationalFundPercent = pct

	cfg.CurrencyDecimals = viper.GetInt32("CURRENCY_DECIMALS")
	if cfg.CurrencyDecimals < 0 {
		return nil, fmt.Errorf("invalid CURRENCY_DECIMALS %d: must be non-negative", cfg.CurrencyDecimals)
	}

	cfg.StoreQueryTimeout = viper.GetDuration("STORE_QUERY_TIMEOUT")
	if cfg.StoreQueryTimeout <= 0 {
		cfg.StoreQueryTimeout = 5 * time.Second
	}
	cfg.StoreMaxRetries = viper.GetUint64("STORE_MAX_RETRIES")
	cfg.StoreRetryBaseDelay = viper.GetDuration("STORE_RETRY_BASE_DELAY")
	if cfg.StoreRetryBaseDelay <= 0 {
		cfg.StoreRetryBaseDelay = 100 * time.Millisecond
	}

	cfg.LoginRateLimit = viper.GetString("LOGIN_RATE_LIMIT")

	return cfg, nil
}
