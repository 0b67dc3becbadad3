package config

import (
	"errors"
	"os"
	"time"
)

const (
	defaultAccessTTL  = 15 * time.Minute
	defaultRefreshTTL = 7 * 24 * time.Hour
)

// JWTConfig carries the signing material for both token kinds. Access and
// refresh tokens are signed with independent secrets.
type JWTConfig struct {
	AccessSecret  []byte
	RefreshSecret []byte
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
}

// LoadJWT reads the token configuration from the environment. Missing secrets
// are a fatal configuration error, not something to paper over per request.
func LoadJWT() (JWTConfig, error) {
	secret := os.Getenv("JWT_SECRET")
	refreshSecret := os.Getenv("JWT_REFRESH_SECRET")
	if secret == "" || refreshSecret == "" {
		return JWTConfig{}, errors.New("JWT_SECRET and JWT_REFRESH_SECRET must be set")
	}

	cfg := JWTConfig{
		AccessSecret:  []byte(secret),
		RefreshSecret: []byte(refreshSecret),
		AccessTTL:     defaultAccessTTL,
		RefreshTTL:    defaultRefreshTTL,
	}

	if v := os.Getenv("JWT_EXPIRES_IN"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return JWTConfig{}, errors.New("invalid JWT_EXPIRES_IN: " + v)
		}
		cfg.AccessTTL = d
	}

	if v := os.Getenv("JWT_REFRESH_EXPIRES_IN"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return JWTConfig{}, errors.New("invalid JWT_REFRESH_EXPIRES_IN: " + v)
		}
		cfg.RefreshTTL = d
	}

	return cfg, nil
}
