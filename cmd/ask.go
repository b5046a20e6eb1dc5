package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/satyarth/dappdojo/internal/assist"
	"github.com/satyarth/dappdojo/internal/llm"
	"github.com/satyarth/dappdojo/internal/store"
	"github.com/spf13/cobra"
)

var askCmd = &cobra.Command{
	Use:   "ask <term>",
	Short: "Look up a Web3 term without launching the TUI",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		term := strings.TrimSpace(strings.Join(args, " "))
		if term == "" {
			fmt.Println(assist.BlankInputMessage(assist.KindTerm))
			return nil
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		provider, err := llm.NewProviderFromEnv(st.EventRepo())
		if err != nil {
			return fmt.Errorf("AI assistant not configured: %w", err)
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 90*time.Second)
		defer cancel()

		gateway := assist.NewGateway(provider)
		reply, err := gateway.Send(ctx, assist.KindTerm, assist.TermPrompt(term))
		if err != nil {
			return err
		}

		fmt.Println(reply)
		return nil
	},
}
