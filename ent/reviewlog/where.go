// Code generated by ent, DO NOT EDIT.

package reviewlog

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/ankivoice/ankivoice/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldLTE(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldEQ(FieldSessionID, v))
}

// CardID applies equality check predicate on the "card_id" field. It's identical to CardIDEQ.
func CardID(v int) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldEQ(FieldCardID, v))
}

// QuestionID applies equality check predicate on the "question_id" field. It's identical to QuestionIDEQ.
func QuestionID(v int) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldEQ(FieldQuestionID, v))
}

// UserAnswer applies equality check predicate on the "user_answer" field. It's identical to UserAnswerEQ.
func UserAnswer(v string) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldEQ(FieldUserAnswer, v))
}

// Correct applies equality check predicate on the "correct" field. It's identical to CorrectEQ.
func Correct(v bool) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldEQ(FieldCorrect, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldEQ(FieldConfidence, v))
}

// ResponseSeconds applies equality check predicate on the "response_seconds" field. It's identical to ResponseSecondsEQ.
func ResponseSeconds(v float64) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldEQ(FieldResponseSeconds, v))
}

// Quality applies equality check predicate on the "quality" field. It's identical to QualityEQ.
func Quality(v int) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldEQ(FieldQuality, v))
}

// Feedback applies equality check predicate on the "feedback" field. It's identical to FeedbackEQ.
func Feedback(v string) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldEQ(FieldFeedback, v))
}

// ReviewedAt applies equality check predicate on the "reviewed_at" field. It's identical to ReviewedAtEQ.
func ReviewedAt(v time.Time) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldEQ(FieldReviewedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldContainsFold(FieldSessionID, v))
}

// CardIDEQ applies the EQ predicate on the "card_id" field.
func CardIDEQ(v int) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldEQ(FieldCardID, v))
}

// CardIDNEQ applies the NEQ predicate on the "card_id" field.
func CardIDNEQ(v int) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldNEQ(FieldCardID, v))
}

// CardIDIn applies the In predicate on the "card_id" field.
func CardIDIn(vs ...int) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldIn(FieldCardID, vs...))
}

// CardIDNotIn applies the NotIn predicate on the "card_id" field.
func CardIDNotIn(vs ...int) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldNotIn(FieldCardID, vs...))
}

// CardIDGT applies the GT predicate on the "card_id" field.
func CardIDGT(v int) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldGT(FieldCardID, v))
}

// CardIDGTE applies the GTE predicate on the "card_id" field.
func CardIDGTE(v int) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldGTE(FieldCardID, v))
}

// CardIDLT applies the LT predicate on the "card_id" field.
func CardIDLT(v int) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldLT(FieldCardID, v))
}

// CardIDLTE applies the LTE predicate on the "card_id" field.
func CardIDLTE(v int) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldLTE(FieldCardID, v))
}

// QuestionIDEQ applies the EQ predicate on the "question_id" field.
func QuestionIDEQ(v int) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldEQ(FieldQuestionID, v))
}

// QuestionIDNEQ applies the NEQ predicate on the "question_id" field.
func QuestionIDNEQ(v int) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldNEQ(FieldQuestionID, v))
}

// QuestionIDIn applies the In predicate on the "question_id" field.
func QuestionIDIn(vs ...int) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldIn(FieldQuestionID, vs...))
}

// QuestionIDNotIn applies the NotIn predicate on the "question_id" field.
func QuestionIDNotIn(vs ...int) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldNotIn(FieldQuestionID, vs...))
}

// QuestionIDGT applies the GT predicate on the "question_id" field.
func QuestionIDGT(v int) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldGT(FieldQuestionID, v))
}

// QuestionIDGTE applies the GTE predicate on the "question_id" field.
func QuestionIDGTE(v int) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldGTE(FieldQuestionID, v))
}

// QuestionIDLT applies the LT predicate on the "question_id" field.
func QuestionIDLT(v int) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldLT(FieldQuestionID, v))
}

// QuestionIDLTE applies the LTE predicate on the "question_id" field.
func QuestionIDLTE(v int) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldLTE(FieldQuestionID, v))
}

// QuestionIDIsNil applies the IsNil predicate on the "question_id" field.
func QuestionIDIsNil() predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldIsNull(FieldQuestionID))
}

// QuestionIDNotNil applies the NotNil predicate on the "question_id" field.
func QuestionIDNotNil() predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldNotNull(FieldQuestionID))
}

// UserAnswerEQ applies the EQ predicate on the "user_answer" field.
func UserAnswerEQ(v string) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldEQ(FieldUserAnswer, v))
}

// UserAnswerNEQ applies the NEQ predicate on the "user_answer" field.
func UserAnswerNEQ(v string) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldNEQ(FieldUserAnswer, v))
}

// UserAnswerIn applies the In predicate on the "user_answer" field.
func UserAnswerIn(vs ...string) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldIn(FieldUserAnswer, vs...))
}

// UserAnswerNotIn applies the NotIn predicate on the "user_answer" field.
func UserAnswerNotIn(vs ...string) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldNotIn(FieldUserAnswer, vs...))
}

// UserAnswerGT applies the GT predicate on the "user_answer" field.
func UserAnswerGT(v string) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldGT(FieldUserAnswer, v))
}

// UserAnswerGTE applies the GTE predicate on the "user_answer" field.
func UserAnswerGTE(v string) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldGTE(FieldUserAnswer, v))
}

// UserAnswerLT applies the LT predicate on the "user_answer" field.
func UserAnswerLT(v string) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldLT(FieldUserAnswer, v))
}

// UserAnswerLTE applies the LTE predicate on the "user_answer" field.
func UserAnswerLTE(v string) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldLTE(FieldUserAnswer, v))
}

// UserAnswerContains applies the Contains predicate on the "user_answer" field.
func UserAnswerContains(v string) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldContains(FieldUserAnswer, v))
}

// UserAnswerHasPrefix applies the HasPrefix predicate on the "user_answer" field.
func UserAnswerHasPrefix(v string) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldHasPrefix(FieldUserAnswer, v))
}

// UserAnswerHasSuffix applies the HasSuffix predicate on the "user_answer" field.
func UserAnswerHasSuffix(v string) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldHasSuffix(FieldUserAnswer, v))
}

// UserAnswerEqualFold applies the EqualFold predicate on the "user_answer" field.
func UserAnswerEqualFold(v string) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldEqualFold(FieldUserAnswer, v))
}

// UserAnswerContainsFold applies the ContainsFold predicate on the "user_answer" field.
func UserAnswerContainsFold(v string) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldContainsFold(FieldUserAnswer, v))
}

// CorrectEQ applies the EQ predicate on the "correct" field.
func CorrectEQ(v bool) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldEQ(FieldCorrect, v))
}

// CorrectNEQ applies the NEQ predicate on the "correct" field.
func CorrectNEQ(v bool) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldNEQ(FieldCorrect, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldLTE(FieldConfidence, v))
}

// ResponseSecondsEQ applies the EQ predicate on the "response_seconds" field.
func ResponseSecondsEQ(v float64) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldEQ(FieldResponseSeconds, v))
}

// ResponseSecondsNEQ applies the NEQ predicate on the "response_seconds" field.
func ResponseSecondsNEQ(v float64) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldNEQ(FieldResponseSeconds, v))
}

// ResponseSecondsIn applies the In predicate on the "response_seconds" field.
func ResponseSecondsIn(vs ...float64) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldIn(FieldResponseSeconds, vs...))
}

// ResponseSecondsNotIn applies the NotIn predicate on the "response_seconds" field.
func ResponseSecondsNotIn(vs ...float64) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldNotIn(FieldResponseSeconds, vs...))
}

// ResponseSecondsGT applies the GT predicate on the "response_seconds" field.
func ResponseSecondsGT(v float64) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldGT(FieldResponseSeconds, v))
}

// ResponseSecondsGTE applies the GTE predicate on the "response_seconds" field.
func ResponseSecondsGTE(v float64) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldGTE(FieldResponseSeconds, v))
}

// ResponseSecondsLT applies the LT predicate on the "response_seconds" field.
func ResponseSecondsLT(v float64) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldLT(FieldResponseSeconds, v))
}

// ResponseSecondsLTE applies the LTE predicate on the "response_seconds" field.
func ResponseSecondsLTE(v float64) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldLTE(FieldResponseSeconds, v))
}

// ResponseSecondsIsNil applies the IsNil predicate on the "response_seconds" field.
func ResponseSecondsIsNil() predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldIsNull(FieldResponseSeconds))
}

// ResponseSecondsNotNil applies the NotNil predicate on the "response_seconds" field.
func ResponseSecondsNotNil() predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldNotNull(FieldResponseSeconds))
}

// QualityEQ applies the EQ predicate on the "quality" field.
func QualityEQ(v int) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldEQ(FieldQuality, v))
}

// QualityNEQ applies the NEQ predicate on the "quality" field.
func QualityNEQ(v int) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldNEQ(FieldQuality, v))
}

// QualityIn applies the In predicate on the "quality" field.
func QualityIn(vs ...int) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldIn(FieldQuality, vs...))
}

// QualityNotIn applies the NotIn predicate on the "quality" field.
func QualityNotIn(vs ...int) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldNotIn(FieldQuality, vs...))
}

// QualityGT applies the GT predicate on the "quality" field.
func QualityGT(v int) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldGT(FieldQuality, v))
}

// QualityGTE applies the GTE predicate on the "quality" field.
func QualityGTE(v int) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldGTE(FieldQuality, v))
}

// QualityLT applies the LT predicate on the "quality" field.
func QualityLT(v int) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldLT(FieldQuality, v))
}

// QualityLTE applies the LTE predicate on the "quality" field.
func QualityLTE(v int) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldLTE(FieldQuality, v))
}

// FeedbackEQ applies the EQ predicate on the "feedback" field.
func FeedbackEQ(v string) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldEQ(FieldFeedback, v))
}

// FeedbackNEQ applies the NEQ predicate on the "feedback" field.
func FeedbackNEQ(v string) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldNEQ(FieldFeedback, v))
}

// FeedbackIn applies the In predicate on the "feedback" field.
func FeedbackIn(vs ...string) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldIn(FieldFeedback, vs...))
}

// FeedbackNotIn applies the NotIn predicate on the "feedback" field.
func FeedbackNotIn(vs ...string) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldNotIn(FieldFeedback, vs...))
}

// FeedbackGT applies the GT predicate on the "feedback" field.
func FeedbackGT(v string) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldGT(FieldFeedback, v))
}

// FeedbackGTE applies the GTE predicate on the "feedback" field.
func FeedbackGTE(v string) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldGTE(FieldFeedback, v))
}

// FeedbackLT applies the LT predicate on the "feedback" field.
func FeedbackLT(v string) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldLT(FieldFeedback, v))
}

// FeedbackLTE applies the LTE predicate on the "feedback" field.
func FeedbackLTE(v string) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldLTE(FieldFeedback, v))
}

// FeedbackContains applies the Contains predicate on the "feedback" field.
func FeedbackContains(v string) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldContains(FieldFeedback, v))
}

// FeedbackHasPrefix applies the HasPrefix predicate on the "feedback" field.
func FeedbackHasPrefix(v string) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldHasPrefix(FieldFeedback, v))
}

// FeedbackHasSuffix applies the HasSuffix predicate on the "feedback" field.
func FeedbackHasSuffix(v string) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldHasSuffix(FieldFeedback, v))
}

// FeedbackIsNil applies the IsNil predicate on the "feedback" field.
func FeedbackIsNil() predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldIsNull(FieldFeedback))
}

// FeedbackNotNil applies the NotNil predicate on the "feedback" field.
func FeedbackNotNil() predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldNotNull(FieldFeedback))
}

// FeedbackEqualFold applies the EqualFold predicate on the "feedback" field.
func FeedbackEqualFold(v string) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldEqualFold(FieldFeedback, v))
}

// FeedbackContainsFold applies the ContainsFold predicate on the "feedback" field.
func FeedbackContainsFold(v string) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldContainsFold(FieldFeedback, v))
}

// ReviewedAtEQ applies the EQ predicate on the "reviewed_at" field.
func ReviewedAtEQ(v time.Time) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldEQ(FieldReviewedAt, v))
}

// ReviewedAtNEQ applies the NEQ predicate on the "reviewed_at" field.
func ReviewedAtNEQ(v time.Time) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldNEQ(FieldReviewedAt, v))
}

// ReviewedAtIn applies the In predicate on the "reviewed_at" field.
func ReviewedAtIn(vs ...time.Time) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldIn(FieldReviewedAt, vs...))
}

// ReviewedAtNotIn applies the NotIn predicate on the "reviewed_at" field.
func ReviewedAtNotIn(vs ...time.Time) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldNotIn(FieldReviewedAt, vs...))
}

// ReviewedAtGT applies the GT predicate on the "reviewed_at" field.
func ReviewedAtGT(v time.Time) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldGT(FieldReviewedAt, v))
}

// ReviewedAtGTE applies the GTE predicate on the "reviewed_at" field.
func ReviewedAtGTE(v time.Time) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldGTE(FieldReviewedAt, v))
}

// ReviewedAtLT applies the LT predicate on the "reviewed_at" field.
func ReviewedAtLT(v time.Time) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldLT(FieldReviewedAt, v))
}

// ReviewedAtLTE applies the LTE predicate on the "reviewed_at" field.
func ReviewedAtLTE(v time.Time) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldLTE(FieldReviewedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ReviewLog) predicate.ReviewLog {
	return predicate.ReviewLog(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ReviewLog) predicate.ReviewLog {
	return predicate.ReviewLog(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ReviewLog) predicate.ReviewLog {
	return predicate.ReviewLog(sql.NotPredicates(p))
}
