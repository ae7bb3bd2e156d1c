package cmd

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/adaptifocus/adaptifocus/internal/focus"
	"github.com/adaptifocus/adaptifocus/internal/scorer"
	"github.com/adaptifocus/adaptifocus/internal/semantic"
	"github.com/adaptifocus/adaptifocus/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "adaptifocus",
	Short: "Adaptive distraction intervention service",
	Long: "AdaptiFocus watches browsing activity, learns each user's distraction patterns, " +
		"and escalates interventions just enough to pull attention back.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides ADAPTIFOCUS_DB env var)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(modelCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then ADAPTIFOCUS_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openService opens the store and assembles the coordinator with every
// optional capability that is configured: an LLM title resolver when an
// API key is discoverable, the trained model scorer when
// ADAPTIFOCUS_MODEL points at a valid artifact.
func openService(cmd *cobra.Command) (*focus.Service, *store.Store, error) {
	path, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, err
	}
	st, err := store.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open store at %s: %w", path, err)
	}

	var opts []focus.Option

	if cfg, ok := semantic.DiscoverConfig(); ok {
		provider, err := semantic.NewProvider(context.Background(), cfg)
		if err != nil {
			log.Printf("title resolution disabled: %v", err)
		} else {
			opts = append(opts, focus.WithResolver(semantic.NewResolver(provider, cfg.Timeout)))
			log.Printf("title resolution enabled via %s", provider.ModelID())
		}
	}

	if mp := os.Getenv("ADAPTIFOCUS_MODEL"); mp != "" {
		ms, err := scorer.LoadModel(mp)
		if err != nil {
			log.Printf("model scorer disabled, using rules: %v", err)
		} else {
			opts = append(opts, focus.WithScorer(scorer.NewChain(ms, scorer.NewRuleScorer())))
			log.Printf("model scorer %s loaded (%d trees)", ms.Version(), ms.TreeCount())
		}
	}

	svc := focus.New(focus.DefaultConfig(),
		st.EventRepo(), st.InterventionRepo(), st.SessionRepo(), st.SnapshotRepo(),
		opts...)

	return svc, st, nil
}
