// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/meownoid/nb/internal/adapters/cache"
	_ "github.com/meownoid/nb/internal/adapters/config"
	_ "github.com/meownoid/nb/internal/adapters/fs"
	_ "github.com/meownoid/nb/internal/adapters/logger"
	_ "github.com/meownoid/nb/internal/adapters/shell"
	// Register app and engine nodes.
	_ "github.com/meownoid/nb/internal/app"
	_ "github.com/meownoid/nb/internal/engine/convert"
)
