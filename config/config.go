// Package config holds the application settings, read from the environment
// with sensible defaults for a single-company install.
package config

import "github.com/caarlos0/env/v11"

// Config is the full application configuration.
type Config struct {
	CompanyName string `env:"NALABI_COMPANY_NAME" envDefault:"Nala Aircon"`

	// Dashboard
	PageSize int `env:"NALABI_PAGE_SIZE" envDefault:"15"`

	// Uploads
	MaxPhotos       int   `env:"NALABI_MAX_PHOTOS" envDefault:"10"`
	MaxPhotoSize    int64 `env:"NALABI_MAX_PHOTO_SIZE" envDefault:"5242880"`
	MaxDocumentSize int64 `env:"NALABI_MAX_DOCUMENT_SIZE" envDefault:"10485760"`

	// Default map framing (Makassar) used until projects have locations.
	MapCenterLat float64 `env:"NALABI_MAP_CENTER_LAT" envDefault:"-5.1477"`
	MapCenterLng float64 `env:"NALABI_MAP_CENTER_LNG" envDefault:"119.4327"`
	MapZoom      int     `env:"NALABI_MAP_ZOOM" envDefault:"12"`
}

// Load parses the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
