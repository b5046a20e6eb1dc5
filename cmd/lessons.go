package cmd

import (
	"fmt"
	"strings"

	"github.com/satyarth/dappdojo/internal/catalog"
	"github.com/spf13/cobra"
)

var lessonsCmd = &cobra.Command{
	Use:   "lessons",
	Short: "List the built-in lessons",
	Run: func(cmd *cobra.Command, args []string) {
		cat := catalog.Builtin()

		fmt.Printf("%-4s  %s\n", "#", "Lesson")
		fmt.Println(strings.Repeat("─", 60))
		for i := 0; i < cat.Len(); i++ {
			fmt.Printf("%-4d  %s\n", i+1, cat.At(i).Title)
		}
	},
}
