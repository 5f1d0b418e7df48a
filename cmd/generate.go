package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ankivoice/ankivoice/internal/config"
	"github.com/ankivoice/ankivoice/internal/qgen"
	"github.com/ankivoice/ankivoice/internal/store"
)

var generateCmd = &cobra.Command{
	Use:   "generate [card-id]",
	Short: "Generate questions for a card, or for all cards without questions",
	Args:  cobra.MaximumNArgs(1),
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
		provider, err := buildProvider(ctx, cfg, s)
		if err != nil {
			return err
		}

		var cards []*store.Card
		if len(args) == 1 {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid card id %q", args[0])
			}
			c, err := s.Cards().Get(ctx, id)
			if err != nil {
				return err
			}
			if c == nil {
				return fmt.Errorf("card %d not found", id)
			}
			cards = []*store.Card{c}
		} else {
			cards, err = s.Cards().WithoutQuestions(ctx)
			if err != nil {
				return err
			}
			if len(cards) == 0 {
				fmt.Println("Every active card already has questions.")
				return nil
			}
		}

		count, _ := cmd.Flags().GetInt("count")
		opts := qgen.DefaultOptions()
		if count > 0 {
			opts.NumQuestions = count
		} else if cfg.Study.QuestionsPerCard > 0 {
			opts.NumQuestions = cfg.Study.QuestionsPerCard
		}
		if cfg.Study.MaxQuestionsPerCard > 0 && opts.NumQuestions > cfg.Study.MaxQuestionsPerCard {
			opts.NumQuestions = cfg.Study.MaxQuestionsPerCard
		}

		generator := qgen.New(provider)
		for _, c := range cards {
			fmt.Printf("Card %d: %s\n", c.ID, clip(c.Content, 60))
			questions, err := generator.Generate(ctx, c.Content, opts)
			if err != nil {
				fmt.Printf("  generation failed: %v\n", err)
				continue
			}
			for _, q := range questions {
				_, err := s.Cards().AddQuestion(ctx, store.Question{
					CardID:       c.ID,
					QuestionText: q.QuestionText,
					AnswerText:   q.AnswerText,
					Type:         q.Type,
					Difficulty:   q.Difficulty,
					GeneratedBy:  provider.ModelID(),
				})
				if err != nil {
					return err
				}
				fmt.Printf("  + %s\n", clip(q.QuestionText, 70))
			}
		}
		return nil
	},
}

func clip(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}

func init() {
	generateCmd.Flags().IntP("count", "c", 0, "Questions per card (default from config)")
}
