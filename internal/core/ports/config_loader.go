package ports

import "github.com/meownoid/nb/internal/core/domain"

// ConfigLoader defines the interface for loading a configuration profile.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the config file at path and returns the named profile with
	// all paths expanded and defaults applied.
	Load(path, profile string) (*domain.Profile, error)
}
