package cmd

import (
	"fmt"
	"os"

	"github.com/satyarth/dappdojo/internal/app"
	"github.com/satyarth/dappdojo/internal/assist"
	"github.com/satyarth/dappdojo/internal/catalog"
	"github.com/satyarth/dappdojo/internal/llm"
	"github.com/satyarth/dappdojo/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	eventRepo := st.EventRepo()
	opts := app.Options{
		Catalog:   catalog.Builtin(),
		EventRepo: eventRepo,
	}

	provider, err := llm.NewProviderFromEnv(eventRepo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "AI assistant not configured:", err)
		fmt.Fprintln(os.Stderr, "AI features will be unavailable.")
		opts.Gateway = assist.NewGateway(nil)
	} else {
		opts.Gateway = assist.NewGateway(provider)
	}

	return app.Run(opts)
}
