package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ankivoice/ankivoice/internal/srs"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List cards with their scheduling state",
	RunE: func(cmd *cobra.Command, args []string) error {
		includeInactive, _ := cmd.Flags().GetBool("all")
		limit, _ := cmd.Flags().GetInt("limit")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := context.Background()
		cards, err := s.Cards().List(ctx, includeInactive, limit, 0)
		if err != nil {
			return err
		}
		if len(cards) == 0 {
			fmt.Println("No cards yet. Add one with `ankivoice add`.")
			return nil
		}

		now := time.Now()
		def := srs.NewState(srs.DefaultParams())

		fmt.Printf("%-5s  %-9s  %-10s  %-6s  %s\n", "ID", "Phase", "Next", "Streak", "Content")
		fmt.Println(strings.Repeat("─", 80))
		for _, c := range cards {
			state, err := s.Progress().GetOrDefault(ctx, c.ID, def)
			if err != nil {
				return err
			}

			next := "now"
			if !state.IsDue(now) {
				next = fmt.Sprintf("in %dd", state.DaysUntil(now))
			}
			content := c.Content
			if len(content) > 48 {
				content = content[:48] + "..."
			}
			if !c.Active {
				content += " (inactive)"
			}
			fmt.Printf("%-5d  %-9s  %-10s  %-6d  %s\n",
				c.ID, state.Phase(), next, state.Streak, content)
		}
		return nil
	},
}

func init() {
	listCmd.Flags().BoolP("all", "a", false, "Include inactive cards")
	listCmd.Flags().IntP("limit", "n", 50, "Maximum cards to show")
}
