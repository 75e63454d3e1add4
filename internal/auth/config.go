package auth

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

// DefaultIssuer is the token issuer used when none is configured
const DefaultIssuer = "guardops-backend"

// DefaultTokenTTL is the token lifetime used when none is configured
const DefaultTokenTTL = time.Hour

// AuthConfig holds the bearer token settings
type AuthConfig struct {
	JWTSecret string        `yaml:"jwt_secret" json:"jwt_secret" mapstructure:"jwt_secret"`
	Issuer    string        `yaml:"issuer" json:"issuer" mapstructure:"issuer"`
	TokenTTL  time.Duration `yaml:"token_ttl" json:"token_ttl" mapstructure:"token_ttl"`
}

// LoadAuthConfig loads and validates authentication configuration
func LoadAuthConfig(configPath string) (*AuthConfig, error) {
	// Create a new viper instance for auth config
	v := viper.New()

	// Set config file details
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("auth")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	setAuthDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Config file not found, use defaults and environment variables
		} else if configPath != "" && os.IsNotExist(err) {
			// Explicit path that does not exist behaves like a missing file
		} else {
			return nil, fmt.Errorf("error reading auth config file: %w", err)
		}
	}

	v.AutomaticEnv()

	var config AuthConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling auth config: %w", err)
	}

	// Override with environment variables for sensitive data
	if jwtSecret := os.Getenv("JWT_SECRET"); jwtSecret != "" {
		config.JWTSecret = jwtSecret
	}
	if ttl := os.Getenv("JWT_TOKEN_TTL"); ttl != "" {
		parsed, err := time.ParseDuration(ttl)
		if err != nil {
			return nil, fmt.Errorf("invalid JWT_TOKEN_TTL: %w", err)
		}
		config.TokenTTL = parsed
	}

	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("auth config validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfig validates the authentication configuration
func (c *AuthConfig) ValidateConfig() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("token TTL must be positive")
	}
	return nil
}

func setAuthDefaults(v *viper.Viper) {
	v.SetDefault("issuer", DefaultIssuer)
	v.SetDefault("token_ttl", DefaultTokenTTL)
	// No default JWT secret - must be provided via environment variable
}
