package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ankivoice/ankivoice/internal/config"
	"github.com/ankivoice/ankivoice/internal/srs"
	"github.com/ankivoice/ankivoice/internal/store"
)

var dueCmd = &cobra.Command{
	Use:   "due",
	Short: "Show cards due for review, most urgent first",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		params := cfg.SRS.Params()

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := context.Background()
		now := time.Now()

		entries, err := s.Progress().ActiveEntries(ctx, srs.NewState(params))
		if err != nil {
			return err
		}

		due := make([]srs.Entry, 0, len(entries))
		byID := make(map[int]store.CardEntry, len(entries))
		for _, e := range entries {
			if e.State.IsDue(now) {
				due = append(due, srs.Entry{CardID: e.Card.ID, State: e.State})
				byID[e.Card.ID] = e
			}
		}
		if len(due) == 0 {
			fmt.Println("Nothing due. Nice work.")
			return nil
		}

		updater := srs.NewUpdater(params)
		ranked := srs.NewPlanner(updater).Rank(due, now)

		fmt.Printf("%d card(s) due:\n\n", len(ranked))
		fmt.Printf("%-5s  %-9s  %-9s  %s\n", "ID", "Overdue", "Retention", "Content")
		fmt.Println(strings.Repeat("─", 72))
		for _, e := range ranked {
			ce := byID[e.CardID]
			content := ce.Card.Content
			if len(content) > 44 {
				content = content[:44] + "..."
			}
			fmt.Printf("%-5d  %-9s  %-9s  %s\n",
				e.CardID,
				fmt.Sprintf("%.0fd", e.State.OverdueDays(now)),
				fmt.Sprintf("%.0f%%", updater.EstimateRetention(e.State, now)*100),
				content)
		}
		return nil
	},
}
