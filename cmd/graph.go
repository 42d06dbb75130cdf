package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathmap/internal/curriculum"
	"github.com/abhisek/mathmap/internal/store"
	"github.com/abhisek/mathmap/internal/topicgraph"
)

// openStore opens the archive at the resolved database path.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	slog.Debug("store opened", "path", dbPath)
	return st, nil
}

// loadGraph builds the knowledge graph and applies the mastery flags
// recorded in st. Flags for topics that no longer exist are skipped.
func loadGraph(cmd *cobra.Command, st *store.Store) (*topicgraph.Graph, error) {
	g, err := curriculum.Build()
	if err != nil {
		return nil, fmt.Errorf("build knowledge graph: %w", err)
	}

	flags, err := st.MasteryRepo().All(cmd.Context())
	if err != nil {
		return nil, err
	}
	for id := range flags {
		if !g.Has(id) {
			slog.Warn("ignoring mastery for unknown topic", "topic", id)
			delete(flags, id)
		}
	}
	if err := g.ApplyMastery(flags); err != nil {
		return nil, fmt.Errorf("apply mastery: %w", err)
	}
	return g, nil
}

// withGraph opens the store, loads the graph, and runs fn.
func withGraph(cmd *cobra.Command, fn func(st *store.Store, g *topicgraph.Graph) error) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	g, err := loadGraph(cmd, st)
	if err != nil {
		return err
	}
	return fn(st, g)
}
