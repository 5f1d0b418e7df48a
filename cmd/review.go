package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ankivoice/ankivoice/internal/config"
	"github.com/ankivoice/ankivoice/internal/grader"
	"github.com/ankivoice/ankivoice/internal/session"
	"github.com/ankivoice/ankivoice/internal/tui"
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Start a review session for the cards due now",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReview(cmd)
	},
}

func init() {
	reviewCmd.Flags().Bool("plain", false, "Line-mode review without the full-screen UI")
	reviewCmd.Flags().IntP("batch", "b", 0, "Max cards this session (default from config)")
}

func runReview(cmd *cobra.Command) error {
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

	batch := cfg.Study.BatchSize
	if b, _ := cmd.Flags().GetInt("batch"); b > 0 {
		batch = b
	}

	engine := session.NewEngine(session.Config{
		Questions: s.Cards(),
		Progress:  s.Progress(),
		Sessions:  s.Sessions(),
		Grader:    grader.New(provider),
		Params:    cfg.SRS.Params(),
		BatchSize: batch,
	})

	if plain, _ := cmd.Flags().GetBool("plain"); plain {
		return runPlainReview(ctx, engine)
	}
	return tui.Run(engine)
}

// runPlainReview is the line-mode fallback for terminals where the
// full-screen UI is unusable.
func runPlainReview(ctx context.Context, engine *session.Engine) error {
	sess, err := engine.Start(ctx, time.Now())
	if err != nil {
		return err
	}
	if sess.Current() == nil {
		fmt.Println("Nothing due. Nice work.")
		return nil
	}

	fmt.Printf("%d card(s) to review. Empty answer skips grading as incorrect; Ctrl+D ends early.\n\n", len(sess.Items))

	reader := bufio.NewReader(os.Stdin)
	for item := sess.Current(); item != nil; item = sess.Current() {
		fmt.Printf("[%d/%d] %s\n> ", sess.Answered()+1, len(sess.Items), item.Prompt())

		shown := time.Now()
		line, err := reader.ReadString('\n')
		if err != nil {
			fmt.Println("\nEnding session early.")
			break
		}
		answer := strings.TrimSpace(line)
		elapsed := time.Since(shown).Seconds()

		res, err := engine.Submit(ctx, sess, answer, elapsed, time.Now())
		if err != nil {
			return err
		}

		if res.Verdict.IsCorrect {
			fmt.Println("Correct.")
		} else {
			fmt.Println("Incorrect.")
		}
		if res.Verdict.Feedback != "" {
			fmt.Println(res.Verdict.Feedback)
		}
		fmt.Printf("Next review in %d day(s).\n\n", res.State.IntervalDays)
	}

	summary, err := engine.Finish(ctx, sess, time.Now())
	if err != nil {
		return err
	}
	if summary.CardsReviewed > 0 {
		fmt.Printf("Session done: %d/%d correct (%.0f%%) in %s.\n",
			summary.Correct, summary.CardsReviewed, summary.Accuracy*100,
			summary.Duration.Round(time.Second))
	}
	return nil
}
