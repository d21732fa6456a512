package convert

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/meownoid/nb/internal/adapters/cache"
	"github.com/meownoid/nb/internal/adapters/fs"
	"github.com/meownoid/nb/internal/adapters/shell"
	"github.com/meownoid/nb/internal/core/ports"
)

// NodeID is the unique identifier for the converter Graft node.
const NodeID graft.ID = "engine.converter"

func init() {
	graft.Register(graft.Node[ports.Converter]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			shell.NodeID,
			cache.NodeID,
			fs.HasherNodeID,
			fs.ResolverNodeID,
		},
		Run: func(ctx context.Context) (ports.Converter, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			store, err := graft.Dep[ports.EntryStore](ctx)
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
			return NewConverter(executor, store, hasher, resolver), nil
		},
	})
}
