package domain_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/meownoid/nb/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandUser(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		name string
		path string
		want string
	}{
		{
			name: "bare tilde",
			path: "~",
			want: home,
		},
		{
			name: "tilde prefix",
			path: "~/notebooks",
			want: filepath.Join(home, "notebooks"),
		},
		{
			name: "absolute path unchanged",
			path: "/opt/notebooks",
			want: "/opt/notebooks",
		},
		{
			name: "tilde in the middle unchanged",
			path: "/data/~backup",
			want: "/data/~backup",
		},
		{
			name: "tilde user form unchanged",
			path: "~alice/notebooks",
			want: "~alice/notebooks",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.ExpandUser(tt.path))
		})
	}
}

func TestDefaultPaths(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".nb", "config.toml"), domain.DefaultConfigPath())
	assert.Equal(t, filepath.Join(home, ".nb", "cache"), domain.DefaultCachePath())
}
