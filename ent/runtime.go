// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/ankivoice/ankivoice/ent/card"
	"github.com/ankivoice/ankivoice/ent/llmrequestevent"
	"github.com/ankivoice/ankivoice/ent/progress"
	"github.com/ankivoice/ankivoice/ent/question"
	"github.com/ankivoice/ankivoice/ent/reviewlog"
	"github.com/ankivoice/ankivoice/ent/schema"
	"github.com/ankivoice/ankivoice/ent/studysession"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	cardMixin := schema.Card{}.Mixin()
	cardMixinFields0 := cardMixin[0].Fields()
	_ = cardMixinFields0
	cardFields := schema.Card{}.Fields()
	_ = cardFields
	// cardDescCreatedAt is the schema descriptor for created_at field.
	cardDescCreatedAt := cardMixinFields0[0].Descriptor()
	// card.DefaultCreatedAt holds the default value on creation for the created_at field.
	card.DefaultCreatedAt = cardDescCreatedAt.Default.(func() time.Time)
	// cardDescUpdatedAt is the schema descriptor for updated_at field.
	cardDescUpdatedAt := cardMixinFields0[1].Descriptor()
	// card.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	card.DefaultUpdatedAt = cardDescUpdatedAt.Default.(func() time.Time)
	// card.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	card.UpdateDefaultUpdatedAt = cardDescUpdatedAt.UpdateDefault.(func() time.Time)
	// cardDescContent is the schema descriptor for content field.
	cardDescContent := cardFields[0].Descriptor()
	// card.ContentValidator is a validator for the "content" field. It is called by the builders before save.
	card.ContentValidator = func() func(string) error {
		validators := cardDescContent.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(content string) error {
			for _, fn := range fns {
				if err := fn(content); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// cardDescDifficulty is the schema descriptor for difficulty field.
	cardDescDifficulty := cardFields[3].Descriptor()
	// card.DefaultDifficulty holds the default value on creation for the difficulty field.
	card.DefaultDifficulty = cardDescDifficulty.Default.(int)
	// card.DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	card.DifficultyValidator = func() func(int) error {
		validators := cardDescDifficulty.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(difficulty int) error {
			for _, fn := range fns {
				if err := fn(difficulty); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// cardDescActive is the schema descriptor for active field.
	cardDescActive := cardFields[4].Descriptor()
	// card.DefaultActive holds the default value on creation for the active field.
	card.DefaultActive = cardDescActive.Default.(bool)
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventFields[0].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescProvider is the schema descriptor for provider field.
	llmrequesteventDescProvider := llmrequesteventFields[1].Descriptor()
	// llmrequestevent.ProviderValidator is a validator for the "provider" field. It is called by the builders before save.
	llmrequestevent.ProviderValidator = llmrequesteventDescProvider.Validators[0].(func(string) error)
	// llmrequesteventDescModel is the schema descriptor for model field.
	llmrequesteventDescModel := llmrequesteventFields[2].Descriptor()
	// llmrequestevent.ModelValidator is a validator for the "model" field. It is called by the builders before save.
	llmrequestevent.ModelValidator = llmrequesteventDescModel.Validators[0].(func(string) error)
	// llmrequesteventDescPurpose is the schema descriptor for purpose field.
	llmrequesteventDescPurpose := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.PurposeValidator is a validator for the "purpose" field. It is called by the builders before save.
	llmrequestevent.PurposeValidator = llmrequesteventDescPurpose.Validators[0].(func(string) error)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[6].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	progressMixin := schema.Progress{}.Mixin()
	progressMixinFields0 := progressMixin[0].Fields()
	_ = progressMixinFields0
	progressFields := schema.Progress{}.Fields()
	_ = progressFields
	// progressDescCreatedAt is the schema descriptor for created_at field.
	progressDescCreatedAt := progressMixinFields0[0].Descriptor()
	// progress.DefaultCreatedAt holds the default value on creation for the created_at field.
	progress.DefaultCreatedAt = progressDescCreatedAt.Default.(func() time.Time)
	// progressDescUpdatedAt is the schema descriptor for updated_at field.
	progressDescUpdatedAt := progressMixinFields0[1].Descriptor()
	// progress.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	progress.DefaultUpdatedAt = progressDescUpdatedAt.Default.(func() time.Time)
	// progress.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	progress.UpdateDefaultUpdatedAt = progressDescUpdatedAt.UpdateDefault.(func() time.Time)
	// progressDescEaseFactor is the schema descriptor for ease_factor field.
	progressDescEaseFactor := progressFields[0].Descriptor()
	// progress.DefaultEaseFactor holds the default value on creation for the ease_factor field.
	progress.DefaultEaseFactor = progressDescEaseFactor.Default.(float64)
	// progressDescIntervalDays is the schema descriptor for interval_days field.
	progressDescIntervalDays := progressFields[1].Descriptor()
	// progress.DefaultIntervalDays holds the default value on creation for the interval_days field.
	progress.DefaultIntervalDays = progressDescIntervalDays.Default.(int)
	// progress.IntervalDaysValidator is a validator for the "interval_days" field. It is called by the builders before save.
	progress.IntervalDaysValidator = progressDescIntervalDays.Validators[0].(func(int) error)
	// progressDescRepetitions is the schema descriptor for repetitions field.
	progressDescRepetitions := progressFields[2].Descriptor()
	// progress.DefaultRepetitions holds the default value on creation for the repetitions field.
	progress.DefaultRepetitions = progressDescRepetitions.Default.(int)
	// progress.RepetitionsValidator is a validator for the "repetitions" field. It is called by the builders before save.
	progress.RepetitionsValidator = progressDescRepetitions.Validators[0].(func(int) error)
	// progressDescTotalReviews is the schema descriptor for total_reviews field.
	progressDescTotalReviews := progressFields[3].Descriptor()
	// progress.DefaultTotalReviews holds the default value on creation for the total_reviews field.
	progress.DefaultTotalReviews = progressDescTotalReviews.Default.(int)
	// progress.TotalReviewsValidator is a validator for the "total_reviews" field. It is called by the builders before save.
	progress.TotalReviewsValidator = progressDescTotalReviews.Validators[0].(func(int) error)
	// progressDescCorrectReviews is the schema descriptor for correct_reviews field.
	progressDescCorrectReviews := progressFields[4].Descriptor()
	// progress.DefaultCorrectReviews holds the default value on creation for the correct_reviews field.
	progress.DefaultCorrectReviews = progressDescCorrectReviews.Default.(int)
	// progress.CorrectReviewsValidator is a validator for the "correct_reviews" field. It is called by the builders before save.
	progress.CorrectReviewsValidator = progressDescCorrectReviews.Validators[0].(func(int) error)
	// progressDescStreak is the schema descriptor for streak field.
	progressDescStreak := progressFields[5].Descriptor()
	// progress.DefaultStreak holds the default value on creation for the streak field.
	progress.DefaultStreak = progressDescStreak.Default.(int)
	// progress.StreakValidator is a validator for the "streak" field. It is called by the builders before save.
	progress.StreakValidator = progressDescStreak.Validators[0].(func(int) error)
	questionMixin := schema.Question{}.Mixin()
	questionMixinFields0 := questionMixin[0].Fields()
	_ = questionMixinFields0
	questionFields := schema.Question{}.Fields()
	_ = questionFields
	// questionDescCreatedAt is the schema descriptor for created_at field.
	questionDescCreatedAt := questionMixinFields0[0].Descriptor()
	// question.DefaultCreatedAt holds the default value on creation for the created_at field.
	question.DefaultCreatedAt = questionDescCreatedAt.Default.(func() time.Time)
	// questionDescUpdatedAt is the schema descriptor for updated_at field.
	questionDescUpdatedAt := questionMixinFields0[1].Descriptor()
	// question.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	question.DefaultUpdatedAt = questionDescUpdatedAt.Default.(func() time.Time)
	// question.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	question.UpdateDefaultUpdatedAt = questionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// questionDescQuestionText is the schema descriptor for question_text field.
	questionDescQuestionText := questionFields[0].Descriptor()
	// question.QuestionTextValidator is a validator for the "question_text" field. It is called by the builders before save.
	question.QuestionTextValidator = func() func(string) error {
		validators := questionDescQuestionText.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(question_text string) error {
			for _, fn := range fns {
				if err := fn(question_text); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// questionDescAnswerText is the schema descriptor for answer_text field.
	questionDescAnswerText := questionFields[1].Descriptor()
	// question.AnswerTextValidator is a validator for the "answer_text" field. It is called by the builders before save.
	question.AnswerTextValidator = func() func(string) error {
		validators := questionDescAnswerText.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(answer_text string) error {
			for _, fn := range fns {
				if err := fn(answer_text); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// questionDescDifficulty is the schema descriptor for difficulty field.
	questionDescDifficulty := questionFields[3].Descriptor()
	// question.DefaultDifficulty holds the default value on creation for the difficulty field.
	question.DefaultDifficulty = questionDescDifficulty.Default.(int)
	// question.DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	question.DifficultyValidator = func() func(int) error {
		validators := questionDescDifficulty.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(difficulty int) error {
			for _, fn := range fns {
				if err := fn(difficulty); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	reviewlogFields := schema.ReviewLog{}.Fields()
	_ = reviewlogFields
	// reviewlogDescSessionID is the schema descriptor for session_id field.
	reviewlogDescSessionID := reviewlogFields[0].Descriptor()
	// reviewlog.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	reviewlog.SessionIDValidator = reviewlogDescSessionID.Validators[0].(func(string) error)
	// reviewlogDescQuality is the schema descriptor for quality field.
	reviewlogDescQuality := reviewlogFields[7].Descriptor()
	// reviewlog.QualityValidator is a validator for the "quality" field. It is called by the builders before save.
	reviewlog.QualityValidator = func() func(int) error {
		validators := reviewlogDescQuality.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(quality int) error {
			for _, fn := range fns {
				if err := fn(quality); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// reviewlogDescReviewedAt is the schema descriptor for reviewed_at field.
	reviewlogDescReviewedAt := reviewlogFields[9].Descriptor()
	// reviewlog.DefaultReviewedAt holds the default value on creation for the reviewed_at field.
	reviewlog.DefaultReviewedAt = reviewlogDescReviewedAt.Default.(func() time.Time)
	studysessionFields := schema.StudySession{}.Fields()
	_ = studysessionFields
	// studysessionDescSessionID is the schema descriptor for session_id field.
	studysessionDescSessionID := studysessionFields[0].Descriptor()
	// studysession.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	studysession.SessionIDValidator = studysessionDescSessionID.Validators[0].(func(string) error)
	// studysessionDescMode is the schema descriptor for mode field.
	studysessionDescMode := studysessionFields[1].Descriptor()
	// studysession.DefaultMode holds the default value on creation for the mode field.
	studysession.DefaultMode = studysessionDescMode.Default.(string)
	// studysessionDescCardsReviewed is the schema descriptor for cards_reviewed field.
	studysessionDescCardsReviewed := studysessionFields[4].Descriptor()
	// studysession.DefaultCardsReviewed holds the default value on creation for the cards_reviewed field.
	studysession.DefaultCardsReviewed = studysessionDescCardsReviewed.Default.(int)
	// studysession.CardsReviewedValidator is a validator for the "cards_reviewed" field. It is called by the builders before save.
	studysession.CardsReviewedValidator = studysessionDescCardsReviewed.Validators[0].(func(int) error)
	// studysessionDescCorrectAnswers is the schema descriptor for correct_answers field.
	studysessionDescCorrectAnswers := studysessionFields[5].Descriptor()
	// studysession.DefaultCorrectAnswers holds the default value on creation for the correct_answers field.
	studysession.DefaultCorrectAnswers = studysessionDescCorrectAnswers.Default.(int)
	// studysession.CorrectAnswersValidator is a validator for the "correct_answers" field. It is called by the builders before save.
	studysession.CorrectAnswersValidator = studysessionDescCorrectAnswers.Validators[0].(func(int) error)
	// studysessionDescCompleted is the schema descriptor for completed field.
	studysessionDescCompleted := studysessionFields[7].Descriptor()
	// studysession.DefaultCompleted holds the default value on creation for the completed field.
	studysession.DefaultCompleted = studysessionDescCompleted.Default.(bool)
}
