package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("auth.token_ttl must be positive (got %v)", c.Auth.TokenTTL)
	}
	if c.Auth.PasswordHashCost < bcrypt.MinCost || c.Auth.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.password_hash_cost must be between %d and %d (got %d)",
			bcrypt.MinCost, bcrypt.MaxCost, c.Auth.PasswordHashCost)
	}

	if err := c.Storage.validate(); err != nil {
		return fmt.Errorf("storage: %w", err)
	}

	return nil
}

func (s *StorageConfig) validate() error {
	switch s.Provider {
	case "local":
		if s.UploadsDir == "" {
			return fmt.Errorf("uploads_dir is required for the local provider")
		}
	case "cloudinary":
		if s.Cloudinary.CloudName == "" || s.Cloudinary.APIKey == "" || s.Cloudinary.APISecret == "" {
			return fmt.Errorf("cloudinary requires cloud_name, api_key and api_secret")
		}
	default:
		return fmt.Errorf("unknown provider %q (want \"local\" or \"cloudinary\")", s.Provider)
	}

	if s.MaxUploadSize <= 0 {
		return fmt.Errorf("max_upload_size must be positive (got %d)", s.MaxUploadSize)
	}

	return nil
}
