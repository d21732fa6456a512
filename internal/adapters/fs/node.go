package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/meownoid/nb/internal/adapters/cache"
	"github.com/meownoid/nb/internal/adapters/logger"
	"github.com/meownoid/nb/internal/core/ports"
)

const (
	// WalkerNodeID is the unique identifier for the walker Graft node.
	WalkerNodeID graft.ID = "adapter.fs.walker"
	// HasherNodeID is the unique identifier for the hasher Graft node.
	HasherNodeID graft.ID = "adapter.fs.hasher"
	// ResolverNodeID is the unique identifier for the notebook resolver Graft node.
	ResolverNodeID graft.ID = "adapter.fs.resolver"
	// MirrorNodeID is the unique identifier for the tree mirror Graft node.
	MirrorNodeID graft.ID = "adapter.fs.mirror"
)

func init() {
	graft.Register(graft.Node[ports.TreeWalker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.TreeWalker, error) {
			return NewWalker(), nil
		},
	})

	graft.Register(graft.Node[ports.Hasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Hasher, error) {
			return NewHasher(), nil
		},
	})

	graft.Register(graft.Node[ports.NotebookResolver]{
		ID:        ResolverNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.NotebookResolver, error) {
			return NewResolver(), nil
		},
	})

	graft.Register(graft.Node[ports.TreeMirror]{
		ID:        MirrorNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			WalkerNodeID,
			HasherNodeID,
			ResolverNodeID,
			cache.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (ports.TreeMirror, error) {
			walker, err := graft.Dep[ports.TreeWalker](ctx)
			if err != nil {
				return nil, err
			}
			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}
			resolver, err := graft.Dep[ports.NotebookResolver](ctx)
			if err != nil {
				return nil, err
			}
			store, err := graft.Dep[ports.EntryStore](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewMirror(walker, hasher, resolver, store, log), nil
		},
	})
}
