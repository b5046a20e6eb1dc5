package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/satyarth/dappdojo/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show submission statistics per lesson",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		stats, err := s.EventRepo().SubmissionStats(context.Background())
		if err != nil {
			return fmt.Errorf("query stats: %w", err)
		}

		if len(stats) == 0 {
			fmt.Println("No submissions recorded yet.")
			return nil
		}

		fmt.Printf("%-4s  %-44s  %8s  %8s  %6s\n", "#", "Lesson", "Attempts", "Accepted", "Rate")
		fmt.Println(strings.Repeat("─", 78))

		var totalAttempts, totalAccepted int
		for _, st := range stats {
			title := st.LessonTitle
			if len(title) > 44 {
				title = title[:44]
			}
			rate := 0.0
			if st.Attempts > 0 {
				rate = float64(st.Accepted) / float64(st.Attempts) * 100
			}
			fmt.Printf("%-4d  %-44s  %8d  %8d  %5.0f%%\n",
				st.LessonIndex+1, title, st.Attempts, st.Accepted, rate)
			totalAttempts += st.Attempts
			totalAccepted += st.Accepted
		}

		fmt.Println(strings.Repeat("─", 78))
		fmt.Printf("%-4s  %-44s  %8d  %8d\n", "", "TOTAL", totalAttempts, totalAccepted)
		return nil
	},
}
