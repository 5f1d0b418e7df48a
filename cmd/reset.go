package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Erase study progress (cards and questions are kept)",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		hard, _ := cmd.Flags().GetBool("hard")
		if !force {
			if hard {
				return fmt.Errorf("this erases every card, question, and all history; re-run with --force to confirm")
			}
			return fmt.Errorf("this erases all scheduling progress and session history; re-run with --force to confirm")
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := context.Background()
		client := s.Client()

		if _, err := client.Progress.Delete().Exec(ctx); err != nil {
			return fmt.Errorf("delete progress: %w", err)
		}
		if _, err := client.ReviewLog.Delete().Exec(ctx); err != nil {
			return fmt.Errorf("delete review logs: %w", err)
		}
		if _, err := client.StudySession.Delete().Exec(ctx); err != nil {
			return fmt.Errorf("delete sessions: %w", err)
		}
		if _, err := client.LLMRequestEvent.Delete().Exec(ctx); err != nil {
			return fmt.Errorf("delete llm events: %w", err)
		}

		if hard {
			if _, err := client.Question.Delete().Exec(ctx); err != nil {
				return fmt.Errorf("delete questions: %w", err)
			}
			if _, err := client.Card.Delete().Exec(ctx); err != nil {
				return fmt.Errorf("delete cards: %w", err)
			}
			fmt.Println("Erased all cards, questions, and history.")
			return nil
		}

		fmt.Println("Erased scheduling progress and session history. Cards and questions kept.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("force", false, "Skip the confirmation")
	resetCmd.Flags().Bool("hard", false, "Also delete cards and questions")
}
