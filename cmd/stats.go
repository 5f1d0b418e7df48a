package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ankivoice/ankivoice/internal/config"
	"github.com/ankivoice/ankivoice/internal/srs"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show collection and study statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := context.Background()
		now := time.Now()

		o, err := s.Overview(ctx, srs.NewState(cfg.SRS.Params()), now)
		if err != nil {
			return err
		}

		fmt.Println("Collection")
		fmt.Println(strings.Repeat("─", 40))
		fmt.Printf("Cards:       %d (%d new, %d learning, %d reviewing)\n",
			o.TotalCards, o.NewCards, o.LearningCards, o.ReviewingCards)
		fmt.Printf("Due now:     %d (%d overdue)\n", o.DueCards, o.OverdueCards)
		if o.TotalCards > 0 {
			fmt.Printf("Avg ease:    %.2f\n", o.AvgEase)
		}

		fmt.Println()
		fmt.Println("Last 7 days")
		fmt.Println(strings.Repeat("─", 40))
		if o.RecentReviews == 0 {
			fmt.Println("No reviews yet.")
		} else {
			fmt.Printf("Reviews:     %d\n", o.RecentReviews)
			fmt.Printf("Accuracy:    %.0f%%\n", o.RecentAccuracy*100)
		}

		sessions, err := s.Sessions().Recent(ctx, 5)
		if err != nil {
			return err
		}
		if len(sessions) > 0 {
			fmt.Println()
			fmt.Println("Recent sessions")
			fmt.Println(strings.Repeat("─", 40))
			for _, rec := range sessions {
				status := "completed"
				if !rec.Completed {
					status = "partial"
				}
				fmt.Printf("%s  %2d cards  %2d correct  %s\n",
					rec.StartedAt.Local().Format("2006-01-02 15:04"),
					rec.CardsReviewed, rec.CorrectAnswers, status)
			}
		}
		return nil
	},
}
