// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ankivoice/ankivoice/ent/predicate"
	"github.com/ankivoice/ankivoice/ent/studysession"
)

// StudySessionUpdate is the builder for updating StudySession entities.
type StudySessionUpdate struct {
	config
	hooks    []Hook
	mutation *StudySessionMutation
}

// Where appends a list predicates to the StudySessionUpdate builder.
func (_u *StudySessionUpdate) Where(ps ...predicate.StudySession) *StudySessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *StudySessionUpdate) SetSessionID(v string) *StudySessionUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *StudySessionUpdate) SetNillableSessionID(v *string) *StudySessionUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetMode sets the "mode" field.
func (_u *StudySessionUpdate) SetMode(v string) *StudySessionUpdate {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *StudySessionUpdate) SetNillableMode(v *string) *StudySessionUpdate {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *StudySessionUpdate) SetStartedAt(v time.Time) *StudySessionUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *StudySessionUpdate) SetNillableStartedAt(v *time.Time) *StudySessionUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetEndedAt sets the "ended_at" field.
func (_u *StudySessionUpdate) SetEndedAt(v time.Time) *StudySessionUpdate {
	_u.mutation.SetEndedAt(v)
	return _u
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_u *StudySessionUpdate) SetNillableEndedAt(v *time.Time) *StudySessionUpdate {
	if v != nil {
		_u.SetEndedAt(*v)
	}
	return _u
}

// ClearEndedAt clears the value of the "ended_at" field.
func (_u *StudySessionUpdate) ClearEndedAt() *StudySessionUpdate {
	_u.mutation.ClearEndedAt()
	return _u
}

// SetCardsReviewed sets the "cards_reviewed" field.
func (_u *StudySessionUpdate) SetCardsReviewed(v int) *StudySessionUpdate {
	_u.mutation.ResetCardsReviewed()
	_u.mutation.SetCardsReviewed(v)
	return _u
}

// SetNillableCardsReviewed sets the "cards_reviewed" field if the given value is not nil.
func (_u *StudySessionUpdate) SetNillableCardsReviewed(v *int) *StudySessionUpdate {
	if v != nil {
		_u.SetCardsReviewed(*v)
	}
	return _u
}

// AddCardsReviewed adds value to the "cards_reviewed" field.
func (_u *StudySessionUpdate) AddCardsReviewed(v int) *StudySessionUpdate {
	_u.mutation.AddCardsReviewed(v)
	return _u
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_u *StudySessionUpdate) SetCorrectAnswers(v int) *StudySessionUpdate {
	_u.mutation.ResetCorrectAnswers()
	_u.mutation.SetCorrectAnswers(v)
	return _u
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_u *StudySessionUpdate) SetNillableCorrectAnswers(v *int) *StudySessionUpdate {
	if v != nil {
		_u.SetCorrectAnswers(*v)
	}
	return _u
}

// AddCorrectAnswers adds value to the "correct_answers" field.
func (_u *StudySessionUpdate) AddCorrectAnswers(v int) *StudySessionUpdate {
	_u.mutation.AddCorrectAnswers(v)
	return _u
}

// SetAvgResponseSeconds sets the "avg_response_seconds" field.
func (_u *StudySessionUpdate) SetAvgResponseSeconds(v float64) *StudySessionUpdate {
	_u.mutation.ResetAvgResponseSeconds()
	_u.mutation.SetAvgResponseSeconds(v)
	return _u
}

// SetNillableAvgResponseSeconds sets the "avg_response_seconds" field if the given value is not nil.
func (_u *StudySessionUpdate) SetNillableAvgResponseSeconds(v *float64) *StudySessionUpdate {
	if v != nil {
		_u.SetAvgResponseSeconds(*v)
	}
	return _u
}

// AddAvgResponseSeconds adds value to the "avg_response_seconds" field.
func (_u *StudySessionUpdate) AddAvgResponseSeconds(v float64) *StudySessionUpdate {
	_u.mutation.AddAvgResponseSeconds(v)
	return _u
}

// ClearAvgResponseSeconds clears the value of the "avg_response_seconds" field.
func (_u *StudySessionUpdate) ClearAvgResponseSeconds() *StudySessionUpdate {
	_u.mutation.ClearAvgResponseSeconds()
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *StudySessionUpdate) SetCompleted(v bool) *StudySessionUpdate {
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *StudySessionUpdate) SetNillableCompleted(v *bool) *StudySessionUpdate {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// Mutation returns the StudySessionMutation object of the builder.
func (_u *StudySessionUpdate) Mutation() *StudySessionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StudySessionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StudySessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StudySessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StudySessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StudySessionUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := studysession.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "StudySession.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CardsReviewed(); ok {
		if err := studysession.CardsReviewedValidator(v); err != nil {
			return &ValidationError{Name: "cards_reviewed", err: fmt.Errorf(`ent: validator failed for field "StudySession.cards_reviewed": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CorrectAnswers(); ok {
		if err := studysession.CorrectAnswersValidator(v); err != nil {
			return &ValidationError{Name: "correct_answers", err: fmt.Errorf(`ent: validator failed for field "StudySession.correct_answers": %w`, err)}
		}
	}
	return nil
}

func (_u *StudySessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(studysession.Table, studysession.Columns, sqlgraph.NewFieldSpec(studysession.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(studysession.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(studysession.FieldMode, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(studysession.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndedAt(); ok {
		_spec.SetField(studysession.FieldEndedAt, field.TypeTime, value)
	}
	if _u.mutation.EndedAtCleared() {
		_spec.ClearField(studysession.FieldEndedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CardsReviewed(); ok {
		_spec.SetField(studysession.FieldCardsReviewed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCardsReviewed(); ok {
		_spec.AddField(studysession.FieldCardsReviewed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectAnswers(); ok {
		_spec.SetField(studysession.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectAnswers(); ok {
		_spec.AddField(studysession.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AvgResponseSeconds(); ok {
		_spec.SetField(studysession.FieldAvgResponseSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgResponseSeconds(); ok {
		_spec.AddField(studysession.FieldAvgResponseSeconds, field.TypeFloat64, value)
	}
	if _u.mutation.AvgResponseSecondsCleared() {
		_spec.ClearField(studysession.FieldAvgResponseSeconds, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(studysession.FieldCompleted, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{studysession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StudySessionUpdateOne is the builder for updating a single StudySession entity.
type StudySessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StudySessionMutation
}

// SetSessionID sets the "session_id" field.
func (_u *StudySessionUpdateOne) SetSessionID(v string) *StudySessionUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *StudySessionUpdateOne) SetNillableSessionID(v *string) *StudySessionUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetMode sets the "mode" field.
func (_u *StudySessionUpdateOne) SetMode(v string) *StudySessionUpdateOne {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *StudySessionUpdateOne) SetNillableMode(v *string) *StudySessionUpdateOne {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *StudySessionUpdateOne) SetStartedAt(v time.Time) *StudySessionUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *StudySessionUpdateOne) SetNillableStartedAt(v *time.Time) *StudySessionUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetEndedAt sets the "ended_at" field.
func (_u *StudySessionUpdateOne) SetEndedAt(v time.Time) *StudySessionUpdateOne {
	_u.mutation.SetEndedAt(v)
	return _u
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_u *StudySessionUpdateOne) SetNillableEndedAt(v *time.Time) *StudySessionUpdateOne {
	if v != nil {
		_u.SetEndedAt(*v)
	}
	return _u
}

// ClearEndedAt clears the value of the "ended_at" field.
func (_u *StudySessionUpdateOne) ClearEndedAt() *StudySessionUpdateOne {
	_u.mutation.ClearEndedAt()
	return _u
}

// SetCardsReviewed sets the "cards_reviewed" field.
func (_u *StudySessionUpdateOne) SetCardsReviewed(v int) *StudySessionUpdateOne {
	_u.mutation.ResetCardsReviewed()
	_u.mutation.SetCardsReviewed(v)
	return _u
}

// SetNillableCardsReviewed sets the "cards_reviewed" field if the given value is not nil.
func (_u *StudySessionUpdateOne) SetNillableCardsReviewed(v *int) *StudySessionUpdateOne {
	if v != nil {
		_u.SetCardsReviewed(*v)
	}
	return _u
}

// AddCardsReviewed adds value to the "cards_reviewed" field.
func (_u *StudySessionUpdateOne) AddCardsReviewed(v int) *StudySessionUpdateOne {
	_u.mutation.AddCardsReviewed(v)
	return _u
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_u *StudySessionUpdateOne) SetCorrectAnswers(v int) *StudySessionUpdateOne {
	_u.mutation.ResetCorrectAnswers()
	_u.mutation.SetCorrectAnswers(v)
	return _u
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_u *StudySessionUpdateOne) SetNillableCorrectAnswers(v *int) *StudySessionUpdateOne {
	if v != nil {
		_u.SetCorrectAnswers(*v)
	}
	return _u
}

// AddCorrectAnswers adds value to the "correct_answers" field.
func (_u *StudySessionUpdateOne) AddCorrectAnswers(v int) *StudySessionUpdateOne {
	_u.mutation.AddCorrectAnswers(v)
	return _u
}

// SetAvgResponseSeconds sets the "avg_response_seconds" field.
func (_u *StudySessionUpdateOne) SetAvgResponseSeconds(v float64) *StudySessionUpdateOne {
	_u.mutation.ResetAvgResponseSeconds()
	_u.mutation.SetAvgResponseSeconds(v)
	return _u
}

// SetNillableAvgResponseSeconds sets the "avg_response_seconds" field if the given value is not nil.
func (_u *StudySessionUpdateOne) SetNillableAvgResponseSeconds(v *float64) *StudySessionUpdateOne {
	if v != nil {
		_u.SetAvgResponseSeconds(*v)
	}
	return _u
}

// AddAvgResponseSeconds adds value to the "avg_response_seconds" field.
func (_u *StudySessionUpdateOne) AddAvgResponseSeconds(v float64) *StudySessionUpdateOne {
	_u.mutation.AddAvgResponseSeconds(v)
	return _u
}

// ClearAvgResponseSeconds clears the value of the "avg_response_seconds" field.
func (_u *StudySessionUpdateOne) ClearAvgResponseSeconds() *StudySessionUpdateOne {
	_u.mutation.ClearAvgResponseSeconds()
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *StudySessionUpdateOne) SetCompleted(v bool) *StudySessionUpdateOne {
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *StudySessionUpdateOne) SetNillableCompleted(v *bool) *StudySessionUpdateOne {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// Mutation returns the StudySessionMutation object of the builder.
func (_u *StudySessionUpdateOne) Mutation() *StudySessionMutation {
	return _u.mutation
}

// Where appends a list predicates to the StudySessionUpdate builder.
func (_u *StudySessionUpdateOne) Where(ps ...predicate.StudySession) *StudySessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StudySessionUpdateOne) Select(field string, fields ...string) *StudySessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StudySession entity.
func (_u *StudySessionUpdateOne) Save(ctx context.Context) (*StudySession, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StudySessionUpdateOne) SaveX(ctx context.Context) *StudySession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StudySessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StudySessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StudySessionUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := studysession.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "StudySession.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CardsReviewed(); ok {
		if err := studysession.CardsReviewedValidator(v); err != nil {
			return &ValidationError{Name: "cards_reviewed", err: fmt.Errorf(`ent: validator failed for field "StudySession.cards_reviewed": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CorrectAnswers(); ok {
		if err := studysession.CorrectAnswersValidator(v); err != nil {
			return &ValidationError{Name: "correct_answers", err: fmt.Errorf(`ent: validator failed for field "StudySession.correct_answers": %w`, err)}
		}
	}
	return nil
}

func (_u *StudySessionUpdateOne) sqlSave(ctx context.Context) (_node *StudySession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(studysession.Table, studysession.Columns, sqlgraph.NewFieldSpec(studysession.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StudySession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, studysession.FieldID)
		for _, f := range fields {
			if !studysession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != studysession.FieldID {
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
		_spec.SetField(studysession.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(studysession.FieldMode, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(studysession.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndedAt(); ok {
		_spec.SetField(studysession.FieldEndedAt, field.TypeTime, value)
	}
	if _u.mutation.EndedAtCleared() {
		_spec.ClearField(studysession.FieldEndedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CardsReviewed(); ok {
		_spec.SetField(studysession.FieldCardsReviewed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCardsReviewed(); ok {
		_spec.AddField(studysession.FieldCardsReviewed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectAnswers(); ok {
		_spec.SetField(studysession.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectAnswers(); ok {
		_spec.AddField(studysession.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AvgResponseSeconds(); ok {
		_spec.SetField(studysession.FieldAvgResponseSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgResponseSeconds(); ok {
		_spec.AddField(studysession.FieldAvgResponseSeconds, field.TypeFloat64, value)
	}
	if _u.mutation.AvgResponseSecondsCleared() {
		_spec.ClearField(studysession.FieldAvgResponseSeconds, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(studysession.FieldCompleted, field.TypeBool, value)
	}
	_node = &StudySession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{studysession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
