// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ankivoice/ankivoice/ent/predicate"
	"github.com/ankivoice/ankivoice/ent/reviewlog"
)

// ReviewLogUpdate is the builder for updating ReviewLog entities.
type ReviewLogUpdate struct {
	config
	hooks    []Hook
	mutation *ReviewLogMutation
}

// Where appends a list predicates to the ReviewLogUpdate builder.
func (_u *ReviewLogUpdate) Where(ps ...predicate.ReviewLog) *ReviewLogUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ReviewLogUpdate) SetSessionID(v string) *ReviewLogUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ReviewLogUpdate) SetNillableSessionID(v *string) *ReviewLogUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetCardID sets the "card_id" field.
func (_u *ReviewLogUpdate) SetCardID(v int) *ReviewLogUpdate {
	_u.mutation.ResetCardID()
	_u.mutation.SetCardID(v)
	return _u
}

// SetNillableCardID sets the "card_id" field if the given value is not nil.
func (_u *ReviewLogUpdate) SetNillableCardID(v *int) *ReviewLogUpdate {
	if v != nil {
		_u.SetCardID(*v)
	}
	return _u
}

// AddCardID adds value to the "card_id" field.
func (_u *ReviewLogUpdate) AddCardID(v int) *ReviewLogUpdate {
	_u.mutation.AddCardID(v)
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *ReviewLogUpdate) SetQuestionID(v int) *ReviewLogUpdate {
	_u.mutation.ResetQuestionID()
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *ReviewLogUpdate) SetNillableQuestionID(v *int) *ReviewLogUpdate {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// AddQuestionID adds value to the "question_id" field.
func (_u *ReviewLogUpdate) AddQuestionID(v int) *ReviewLogUpdate {
	_u.mutation.AddQuestionID(v)
	return _u
}

// ClearQuestionID clears the value of the "question_id" field.
func (_u *ReviewLogUpdate) ClearQuestionID() *ReviewLogUpdate {
	_u.mutation.ClearQuestionID()
	return _u
}

// SetUserAnswer sets the "user_answer" field.
func (_u *ReviewLogUpdate) SetUserAnswer(v string) *ReviewLogUpdate {
	_u.mutation.SetUserAnswer(v)
	return _u
}

// SetNillableUserAnswer sets the "user_answer" field if the given value is not nil.
func (_u *ReviewLogUpdate) SetNillableUserAnswer(v *string) *ReviewLogUpdate {
	if v != nil {
		_u.SetUserAnswer(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *ReviewLogUpdate) SetCorrect(v bool) *ReviewLogUpdate {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *ReviewLogUpdate) SetNillableCorrect(v *bool) *ReviewLogUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *ReviewLogUpdate) SetConfidence(v float64) *ReviewLogUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *ReviewLogUpdate) SetNillableConfidence(v *float64) *ReviewLogUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *ReviewLogUpdate) AddConfidence(v float64) *ReviewLogUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetResponseSeconds sets the "response_seconds" field.
func (_u *ReviewLogUpdate) SetResponseSeconds(v float64) *ReviewLogUpdate {
	_u.mutation.ResetResponseSeconds()
	_u.mutation.SetResponseSeconds(v)
	return _u
}

// SetNillableResponseSeconds sets the "response_seconds" field if the given value is not nil.
func (_u *ReviewLogUpdate) SetNillableResponseSeconds(v *float64) *ReviewLogUpdate {
	if v != nil {
		_u.SetResponseSeconds(*v)
	}
	return _u
}

// AddResponseSeconds adds value to the "response_seconds" field.
func (_u *ReviewLogUpdate) AddResponseSeconds(v float64) *ReviewLogUpdate {
	_u.mutation.AddResponseSeconds(v)
	return _u
}

// ClearResponseSeconds clears the value of the "response_seconds" field.
func (_u *ReviewLogUpdate) ClearResponseSeconds() *ReviewLogUpdate {
	_u.mutation.ClearResponseSeconds()
	return _u
}

// SetQuality sets the "quality" field.
func (_u *ReviewLogUpdate) SetQuality(v int) *ReviewLogUpdate {
	_u.mutation.ResetQuality()
	_u.mutation.SetQuality(v)
	return _u
}

// SetNillableQuality sets the "quality" field if the given value is not nil.
func (_u *ReviewLogUpdate) SetNillableQuality(v *int) *ReviewLogUpdate {
	if v != nil {
		_u.SetQuality(*v)
	}
	return _u
}

// AddQuality adds value to the "quality" field.
func (_u *ReviewLogUpdate) AddQuality(v int) *ReviewLogUpdate {
	_u.mutation.AddQuality(v)
	return _u
}

// SetFeedback sets the "feedback" field.
func (_u *ReviewLogUpdate) SetFeedback(v string) *ReviewLogUpdate {
	_u.mutation.SetFeedback(v)
	return _u
}

// SetNillableFeedback sets the "feedback" field if the given value is not nil.
func (_u *ReviewLogUpdate) SetNillableFeedback(v *string) *ReviewLogUpdate {
	if v != nil {
		_u.SetFeedback(*v)
	}
	return _u
}

// ClearFeedback clears the value of the "feedback" field.
func (_u *ReviewLogUpdate) ClearFeedback() *ReviewLogUpdate {
	_u.mutation.ClearFeedback()
	return _u
}

// Mutation returns the ReviewLogMutation object of the builder.
func (_u *ReviewLogUpdate) Mutation() *ReviewLogMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReviewLogUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReviewLogUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReviewLogUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReviewLogUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReviewLogUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := reviewlog.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ReviewLog.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Quality(); ok {
		if err := reviewlog.QualityValidator(v); err != nil {
			return &ValidationError{Name: "quality", err: fmt.Errorf(`ent: validator failed for field "ReviewLog.quality": %w`, err)}
		}
	}
	return nil
}

func (_u *ReviewLogUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reviewlog.Table, reviewlog.Columns, sqlgraph.NewFieldSpec(reviewlog.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(reviewlog.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CardID(); ok {
		_spec.SetField(reviewlog.FieldCardID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCardID(); ok {
		_spec.AddField(reviewlog.FieldCardID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(reviewlog.FieldQuestionID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionID(); ok {
		_spec.AddField(reviewlog.FieldQuestionID, field.TypeInt, value)
	}
	if _u.mutation.QuestionIDCleared() {
		_spec.ClearField(reviewlog.FieldQuestionID, field.TypeInt)
	}
	if value, ok := _u.mutation.UserAnswer(); ok {
		_spec.SetField(reviewlog.FieldUserAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(reviewlog.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(reviewlog.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(reviewlog.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ResponseSeconds(); ok {
		_spec.SetField(reviewlog.FieldResponseSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedResponseSeconds(); ok {
		_spec.AddField(reviewlog.FieldResponseSeconds, field.TypeFloat64, value)
	}
	if _u.mutation.ResponseSecondsCleared() {
		_spec.ClearField(reviewlog.FieldResponseSeconds, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Quality(); ok {
		_spec.SetField(reviewlog.FieldQuality, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuality(); ok {
		_spec.AddField(reviewlog.FieldQuality, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Feedback(); ok {
		_spec.SetField(reviewlog.FieldFeedback, field.TypeString, value)
	}
	if _u.mutation.FeedbackCleared() {
		_spec.ClearField(reviewlog.FieldFeedback, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reviewlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReviewLogUpdateOne is the builder for updating a single ReviewLog entity.
type ReviewLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReviewLogMutation
}

// SetSessionID sets the "session_id" field.
func (_u *ReviewLogUpdateOne) SetSessionID(v string) *ReviewLogUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ReviewLogUpdateOne) SetNillableSessionID(v *string) *ReviewLogUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetCardID sets the "card_id" field.
func (_u *ReviewLogUpdateOne) SetCardID(v int) *ReviewLogUpdateOne {
	_u.mutation.ResetCardID()
	_u.mutation.SetCardID(v)
	return _u
}

// SetNillableCardID sets the "card_id" field if the given value is not nil.
func (_u *ReviewLogUpdateOne) SetNillableCardID(v *int) *ReviewLogUpdateOne {
	if v != nil {
		_u.SetCardID(*v)
	}
	return _u
}

// AddCardID adds value to the "card_id" field.
func (_u *ReviewLogUpdateOne) AddCardID(v int) *ReviewLogUpdateOne {
	_u.mutation.AddCardID(v)
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *ReviewLogUpdateOne) SetQuestionID(v int) *ReviewLogUpdateOne {
	_u.mutation.ResetQuestionID()
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *ReviewLogUpdateOne) SetNillableQuestionID(v *int) *ReviewLogUpdateOne {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// AddQuestionID adds value to the "question_id" field.
func (_u *ReviewLogUpdateOne) AddQuestionID(v int) *ReviewLogUpdateOne {
	_u.mutation.AddQuestionID(v)
	return _u
}

// ClearQuestionID clears the value of the "question_id" field.
func (_u *ReviewLogUpdateOne) ClearQuestionID() *ReviewLogUpdateOne {
	_u.mutation.ClearQuestionID()
	return _u
}

// SetUserAnswer sets the "user_answer" field.
func (_u *ReviewLogUpdateOne) SetUserAnswer(v string) *ReviewLogUpdateOne {
	_u.mutation.SetUserAnswer(v)
	return _u
}

// SetNillableUserAnswer sets the "user_answer" field if the given value is not nil.
func (_u *ReviewLogUpdateOne) SetNillableUserAnswer(v *string) *ReviewLogUpdateOne {
	if v != nil {
		_u.SetUserAnswer(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *ReviewLogUpdateOne) SetCorrect(v bool) *ReviewLogUpdateOne {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *ReviewLogUpdateOne) SetNillableCorrect(v *bool) *ReviewLogUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *ReviewLogUpdateOne) SetConfidence(v float64) *ReviewLogUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *ReviewLogUpdateOne) SetNillableConfidence(v *float64) *ReviewLogUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *ReviewLogUpdateOne) AddConfidence(v float64) *ReviewLogUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetResponseSeconds sets the "response_seconds" field.
func (_u *ReviewLogUpdateOne) SetResponseSeconds(v float64) *ReviewLogUpdateOne {
	_u.mutation.ResetResponseSeconds()
	_u.mutation.SetResponseSeconds(v)
	return _u
}

// SetNillableResponseSeconds sets the "response_seconds" field if the given value is not nil.
func (_u *ReviewLogUpdateOne) SetNillableResponseSeconds(v *float64) *ReviewLogUpdateOne {
	if v != nil {
		_u.SetResponseSeconds(*v)
	}
	return _u
}

// AddResponseSeconds adds value to the "response_seconds" field.
func (_u *ReviewLogUpdateOne) AddResponseSeconds(v float64) *ReviewLogUpdateOne {
	_u.mutation.AddResponseSeconds(v)
	return _u
}

// ClearResponseSeconds clears the value of the "response_seconds" field.
func (_u *ReviewLogUpdateOne) ClearResponseSeconds() *ReviewLogUpdateOne {
	_u.mutation.ClearResponseSeconds()
	return _u
}

// SetQuality sets the "quality" field.
func (_u *ReviewLogUpdateOne) SetQuality(v int) *ReviewLogUpdateOne {
	_u.mutation.ResetQuality()
	_u.mutation.SetQuality(v)
	return _u
}

// SetNillableQuality sets the "quality" field if the given value is not nil.
func (_u *ReviewLogUpdateOne) SetNillableQuality(v *int) *ReviewLogUpdateOne {
	if v != nil {
		_u.SetQuality(*v)
	}
	return _u
}

// AddQuality adds value to the "quality" field.
func (_u *ReviewLogUpdateOne) AddQuality(v int) *ReviewLogUpdateOne {
	_u.mutation.AddQuality(v)
	return _u
}

// SetFeedback sets the "feedback" field.
func (_u *ReviewLogUpdateOne) SetFeedback(v string) *ReviewLogUpdateOne {
	_u.mutation.SetFeedback(v)
	return _u
}

// SetNillableFeedback sets the "feedback" field if the given value is not nil.
func (_u *ReviewLogUpdateOne) SetNillableFeedback(v *string) *ReviewLogUpdateOne {
	if v != nil {
		_u.SetFeedback(*v)
	}
	return _u
}

// ClearFeedback clears the value of the "feedback" field.
func (_u *ReviewLogUpdateOne) ClearFeedback() *ReviewLogUpdateOne {
	_u.mutation.ClearFeedback()
	return _u
}

// Mutation returns the ReviewLogMutation object of the builder.
func (_u *ReviewLogUpdateOne) Mutation() *ReviewLogMutation {
	return _u.mutation
}

// Where appends a list predicates to the ReviewLogUpdate builder.
func (_u *ReviewLogUpdateOne) Where(ps ...predicate.ReviewLog) *ReviewLogUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReviewLogUpdateOne) Select(field string, fields ...string) *ReviewLogUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ReviewLog entity.
func (_u *ReviewLogUpdateOne) Save(ctx context.Context) (*ReviewLog, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReviewLogUpdateOne) SaveX(ctx context.Context) *ReviewLog {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReviewLogUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReviewLogUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReviewLogUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := reviewlog.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ReviewLog.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Quality(); ok {
		if err := reviewlog.QualityValidator(v); err != nil {
			return &ValidationError{Name: "quality", err: fmt.Errorf(`ent: validator failed for field "ReviewLog.quality": %w`, err)}
		}
	}
	return nil
}

func (_u *ReviewLogUpdateOne) sqlSave(ctx context.Context) (_node *ReviewLog, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reviewlog.Table, reviewlog.Columns, sqlgraph.NewFieldSpec(reviewlog.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ReviewLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, reviewlog.FieldID)
		for _, f := range fields {
			if !reviewlog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != reviewlog.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(reviewlog.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CardID(); ok {
		_spec.SetField(reviewlog.FieldCardID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCardID(); ok {
		_spec.AddField(reviewlog.FieldCardID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(reviewlog.FieldQuestionID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionID(); ok {
		_spec.AddField(reviewlog.FieldQuestionID, field.TypeInt, value)
	}
	if _u.mutation.QuestionIDCleared() {
		_spec.ClearField(reviewlog.FieldQuestionID, field.TypeInt)
	}
	if value, ok := _u.mutation.UserAnswer(); ok {
		_spec.SetField(reviewlog.FieldUserAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(reviewlog.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(reviewlog.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(reviewlog.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ResponseSeconds(); ok {
		_spec.SetField(reviewlog.FieldResponseSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedResponseSeconds(); ok {
		_spec.AddField(reviewlog.FieldResponseSeconds, field.TypeFloat64, value)
	}
	if _u.mutation.ResponseSecondsCleared() {
		_spec.ClearField(reviewlog.FieldResponseSeconds, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Quality(); ok {
		_spec.SetField(reviewlog.FieldQuality, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuality(); ok {
		_spec.AddField(reviewlog.FieldQuality, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Feedback(); ok {
		_spec.SetField(reviewlog.FieldFeedback, field.TypeString, value)
	}
	if _u.mutation.FeedbackCleared() {
		_spec.ClearField(reviewlog.FieldFeedback, field.TypeString)
	}
	_node = &ReviewLog{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reviewlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
