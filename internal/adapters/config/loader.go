// Package config provides the configuration loader for nb.
package config

import (
	"os"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/meownoid/nb/internal/core/domain"
	"github.com/meownoid/nb/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// DefaultProfile is the profile used when none is selected explicitly.
const DefaultProfile = "default"

// Loader implements ports.ConfigLoader using a TOML file keyed by profile.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads the config file at path and returns the named profile with all
// paths expanded and defaults applied.
func (l *Loader) Load(path, profile string) (*domain.Profile, error) {
	if profile == "" {
		profile = DefaultProfile
	}

	if _, err := os.Stat(path); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrConfigReadFailed, err.Error()), "path", path)
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, err.Error()), "path", path)
	}

	var profiles map[string]*ProfileDTO
	if err := k.Unmarshal("", &profiles); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, err.Error()), "path", path)
	}

	dto, ok := profiles[profile]
	if !ok || dto == nil {
		return nil, zerr.With(domain.ErrProfileNotFound, "profile", profile)
	}

	return buildProfile(profile, dto)
}

func buildProfile(name string, dto *ProfileDTO) (*domain.Profile, error) {
	required := map[string]string{
		"notebooks_path": dto.NotebooksPath,
		"jupyter_path":   dto.JupyterPath,
		"ipython_path":   dto.IPythonPath,
	}
	for key, value := range required {
		if value == "" {
			return nil, zerr.With(domain.ErrMissingConfigKey, "key", key)
		}
	}

	cachePath := dto.CachePath
	if cachePath == "" {
		cachePath = domain.DefaultCachePath()
	}

	return &domain.Profile{
		Name:          name,
		NotebooksPath: domain.ExpandUser(dto.NotebooksPath),
		CachePath:     domain.ExpandUser(cachePath),
		JupyterPath:   domain.ExpandUser(dto.JupyterPath),
		IPythonPath:   domain.ExpandUser(dto.IPythonPath),
	}, nil
}
