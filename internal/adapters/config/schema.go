package config

// ProfileDTO represents one profile table in the config file. The file is
// TOML with one table per profile; the "default" profile is required:
//
//	[default]
//	notebooks_path = "~/Documents/Notebooks"
//	jupyter_path = "/opt/homebrew/bin/jupyter"
//	ipython_path = "/opt/homebrew/bin/ipython"
type ProfileDTO struct {
	NotebooksPath string `koanf:"notebooks_path"`
	CachePath     string `koanf:"cache_path"`
	JupyterPath   string `koanf:"jupyter_path"`
	IPythonPath   string `koanf:"ipython_path"`
}
