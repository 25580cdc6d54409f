package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/SscSPs/atm_backend/internal/apperrors"
	"github.com/SscSPs/atm_backend/internal/utils"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// SeedFile is the YAML file with the accounts and the initial cash sections.
	SeedFile string
	// LoginRateLimit is a ulule/limiter formatted rate, e.g. "5-M".
	LoginRateLimit string
	AdminAPIKey    string
	// AdminAPIKeyGenerated is set when ADMIN_API_KEY was empty and a one-off key was generated.
	AdminAPIKeyGenerated bool

	CORSAllowedOrigins []string

	// WithdrawAllowFullBalance lets a withdrawal empty the account.
	WithdrawAllowFullBalance bool
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)
	viper.SetDefault("JWT_EXPIRY_DURATION", "15m")
	viper.SetDefault("JWT_ISSUER", "atm-backend")
	viper.SetDefault("SEED_FILE", "config/application.yaml")
	viper.SetDefault("LOGIN_RATE_LIMIT", "5-M")
	viper.SetDefault("ADMIN_API_KEY", "")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("WITHDRAW_ALLOW_FULL_BALANCE", false)

	viper.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:              viper.GetString("PGSQL_URL"),
		Port:                     viper.GetString("PORT"),
		IsProduction:             viper.GetBool("IS_PRODUCTION"),
		JWTSecret:                viper.GetString("JWT_SECRET"),
		JWTIssuer:                viper.GetString("JWT_ISSUER"),
		SeedFile:                 viper.GetString("SEED_FILE"),
		LoginRateLimit:           viper.GetString("LOGIN_RATE_LIMIT"),
		AdminAPIKey:              viper.GetString("ADMIN_API_KEY"),
		WithdrawAllowFullBalance: viper.GetBool("WITHDRAW_ALLOW_FULL_BALANCE"),
	}

	if cfg.DatabaseURL == "" {
		log.Println("PGSQL_URL not set, the operation journal is kept in memory.")
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	if cfg.JWTSecret == defaultJWTSecret {
		if cfg.IsProduction {
			return nil, fmt.Errorf("%w: JWT_SECRET must be set in production", apperrors.ErrConfiguration)
		}
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil || jwtExpiryDuration <= 0 {
		jwtExpiryDuration = 15 * time.Minute
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration

	if cfg.SeedFile == "" {
		return nil, fmt.Errorf("%w: SEED_FILE is empty", apperrors.ErrConfiguration)
	}

	if cfg.AdminAPIKey == "" {
		if cfg.IsProduction {
			return nil, fmt.Errorf("%w: ADMIN_API_KEY must be set in production", apperrors.ErrConfiguration)
		}
		key, err := utils.GenerateSecureRandomString(24)
		if err != nil {
			return nil, fmt.Errorf("%w: generating admin api key: %v", apperrors.ErrConfiguration, err)
		}
		cfg.AdminAPIKey = key
		cfg.AdminAPIKeyGenerated = true
		log.Println("Warning: ADMIN_API_KEY not set. Generated a one-off key for this process, it is logged at startup.")
	}

	cfg.CORSAllowedOrigins = splitOrigins(viper.GetString("CORS_ALLOWED_ORIGINS"))

	return cfg, nil
}

func splitOrigins(raw string) []string {
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
