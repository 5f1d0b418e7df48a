package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ankivoice/ankivoice/internal/store"
)

var addCmd = &cobra.Command{
	Use:   "add <content>",
	Short: "Add a card from a statement you want to remember",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		content := strings.TrimSpace(strings.Join(args, " "))
		if content == "" {
			return fmt.Errorf("card content must not be empty")
		}
		if len(content) > 2000 {
			return fmt.Errorf("card content is %d chars, max 2000", len(content))
		}

		tags, _ := cmd.Flags().GetStringSlice("tags")
		difficulty, _ := cmd.Flags().GetInt("difficulty")
		source, _ := cmd.Flags().GetString("source")
		if difficulty < 1 || difficulty > 5 {
			return fmt.Errorf("difficulty must be 1-5, got %d", difficulty)
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		id, err := s.Cards().Create(context.Background(), store.Card{
			Content:        content,
			SourceMaterial: source,
			Tags:           tags,
			Difficulty:     difficulty,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Added card %d.\n", id)
		fmt.Printf("Run `ankivoice generate %d` to create questions for it.\n", id)
		return nil
	},
}

func init() {
	addCmd.Flags().StringSliceP("tags", "t", nil, "Comma-separated tags")
	addCmd.Flags().IntP("difficulty", "d", 3, "Difficulty 1 (very easy) to 5 (very hard)")
	addCmd.Flags().StringP("source", "s", "", "Source material or reference")
}
