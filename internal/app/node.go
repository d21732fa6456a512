package app

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/meownoid/nb/internal/adapters/cache"
	"github.com/meownoid/nb/internal/adapters/config"
	"github.com/meownoid/nb/internal/adapters/fs"
	"github.com/meownoid/nb/internal/adapters/logger"
	"github.com/meownoid/nb/internal/adapters/shell"
	"github.com/meownoid/nb/internal/core/ports"
	"github.com/meownoid/nb/internal/engine/convert"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			fs.ResolverNodeID,
			fs.MirrorNodeID,
			convert.NodeID,
			cache.NodeID,
			shell.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	resolver, err := graft.Dep[ports.NotebookResolver](ctx)
	if err != nil {
		return nil, err
	}

	mirror, err := graft.Dep[ports.TreeMirror](ctx)
	if err != nil {
		return nil, err
	}

	converter, err := graft.Dep[ports.Converter](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.EntryStore](ctx)
	if err != nil {
		return nil, err
	}

	executor, err := graft.Dep[ports.Executor](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, resolver, mirror, converter, store, executor, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	a, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    a,
		Logger: log,
	}, nil
}
