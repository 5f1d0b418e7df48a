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
	"github.com/ankivoice/ankivoice/ent/card"
	"github.com/ankivoice/ankivoice/ent/predicate"
	"github.com/ankivoice/ankivoice/ent/progress"
)

// ProgressUpdate is the builder for updating Progress entities.
type ProgressUpdate struct {
	config
	hooks    []Hook
	mutation *ProgressMutation
}

// Where appends a list predicates to the ProgressUpdate builder.
func (_u *ProgressUpdate) Where(ps ...predicate.Progress) *ProgressUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProgressUpdate) SetUpdatedAt(v time.Time) *ProgressUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetEaseFactor sets the "ease_factor" field.
func (_u *ProgressUpdate) SetEaseFactor(v float64) *ProgressUpdate {
	_u.mutation.ResetEaseFactor()
	_u.mutation.SetEaseFactor(v)
	return _u
}

// SetNillableEaseFactor sets the "ease_factor" field if the given value is not nil.
func (_u *ProgressUpdate) SetNillableEaseFactor(v *float64) *ProgressUpdate {
	if v != nil {
		_u.SetEaseFactor(*v)
	}
	return _u
}

// AddEaseFactor adds value to the "ease_factor" field.
func (_u *ProgressUpdate) AddEaseFactor(v float64) *ProgressUpdate {
	_u.mutation.AddEaseFactor(v)
	return _u
}

// SetIntervalDays sets the "interval_days" field.
func (_u *ProgressUpdate) SetIntervalDays(v int) *ProgressUpdate {
	_u.mutation.ResetIntervalDays()
	_u.mutation.SetIntervalDays(v)
	return _u
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (_u *ProgressUpdate) SetNillableIntervalDays(v *int) *ProgressUpdate {
	if v != nil {
		_u.SetIntervalDays(*v)
	}
	return _u
}

// AddIntervalDays adds value to the "interval_days" field.
func (_u *ProgressUpdate) AddIntervalDays(v int) *ProgressUpdate {
	_u.mutation.AddIntervalDays(v)
	return _u
}

// SetRepetitions sets the "repetitions" field.
func (_u *ProgressUpdate) SetRepetitions(v int) *ProgressUpdate {
	_u.mutation.ResetRepetitions()
	_u.mutation.SetRepetitions(v)
	return _u
}

// SetNillableRepetitions sets the "repetitions" field if the given value is not nil.
func (_u *ProgressUpdate) SetNillableRepetitions(v *int) *ProgressUpdate {
	if v != nil {
		_u.SetRepetitions(*v)
	}
	return _u
}

// AddRepetitions adds value to the "repetitions" field.
func (_u *ProgressUpdate) AddRepetitions(v int) *ProgressUpdate {
	_u.mutation.AddRepetitions(v)
	return _u
}

// SetTotalReviews sets the "total_reviews" field.
func (_u *ProgressUpdate) SetTotalReviews(v int) *ProgressUpdate {
	_u.mutation.ResetTotalReviews()
	_u.mutation.SetTotalReviews(v)
	return _u
}

// SetNillableTotalReviews sets the "total_reviews" field if the given value is not nil.
func (_u *ProgressUpdate) SetNillableTotalReviews(v *int) *ProgressUpdate {
	if v != nil {
		_u.SetTotalReviews(*v)
	}
	return _u
}

// AddTotalReviews adds value to the "total_reviews" field.
func (_u *ProgressUpdate) AddTotalReviews(v int) *ProgressUpdate {
	_u.mutation.AddTotalReviews(v)
	return _u
}

// SetCorrectReviews sets the "correct_reviews" field.
func (_u *ProgressUpdate) SetCorrectReviews(v int) *ProgressUpdate {
	_u.mutation.ResetCorrectReviews()
	_u.mutation.SetCorrectReviews(v)
	return _u
}

// SetNillableCorrectReviews sets the "correct_reviews" field if the given value is not nil.
func (_u *ProgressUpdate) SetNillableCorrectReviews(v *int) *ProgressUpdate {
	if v != nil {
		_u.SetCorrectReviews(*v)
	}
	return _u
}

// AddCorrectReviews adds value to the "correct_reviews" field.
func (_u *ProgressUpdate) AddCorrectReviews(v int) *ProgressUpdate {
	_u.mutation.AddCorrectReviews(v)
	return _u
}

// SetStreak sets the "streak" field.
func (_u *ProgressUpdate) SetStreak(v int) *ProgressUpdate {
	_u.mutation.ResetStreak()
	_u.mutation.SetStreak(v)
	return _u
}

// SetNillableStreak sets the "streak" field if the given value is not nil.
func (_u *ProgressUpdate) SetNillableStreak(v *int) *ProgressUpdate {
	if v != nil {
		_u.SetStreak(*v)
	}
	return _u
}

// AddStreak adds value to the "streak" field.
func (_u *ProgressUpdate) AddStreak(v int) *ProgressUpdate {
	_u.mutation.AddStreak(v)
	return _u
}

// SetLastReview sets the "last_review" field.
func (_u *ProgressUpdate) SetLastReview(v time.Time) *ProgressUpdate {
	_u.mutation.SetLastReview(v)
	return _u
}

// SetNillableLastReview sets the "last_review" field if the given value is not nil.
func (_u *ProgressUpdate) SetNillableLastReview(v *time.Time) *ProgressUpdate {
	if v != nil {
		_u.SetLastReview(*v)
	}
	return _u
}

// ClearLastReview clears the value of the "last_review" field.
func (_u *ProgressUpdate) ClearLastReview() *ProgressUpdate {
	_u.mutation.ClearLastReview()
	return _u
}

// SetNextReview sets the "next_review" field.
func (_u *ProgressUpdate) SetNextReview(v time.Time) *ProgressUpdate {
	_u.mutation.SetNextReview(v)
	return _u
}

// SetNillableNextReview sets the "next_review" field if the given value is not nil.
func (_u *ProgressUpdate) SetNillableNextReview(v *time.Time) *ProgressUpdate {
	if v != nil {
		_u.SetNextReview(*v)
	}
	return _u
}

// ClearNextReview clears the value of the "next_review" field.
func (_u *ProgressUpdate) ClearNextReview() *ProgressUpdate {
	_u.mutation.ClearNextReview()
	return _u
}

// SetCardID sets the "card" edge to the Card entity by ID.
func (_u *ProgressUpdate) SetCardID(id int) *ProgressUpdate {
	_u.mutation.SetCardID(id)
	return _u
}

// SetCard sets the "card" edge to the Card entity.
func (_u *ProgressUpdate) SetCard(v *Card) *ProgressUpdate {
	return _u.SetCardID(v.ID)
}

// Mutation returns the ProgressMutation object of the builder.
func (_u *ProgressUpdate) Mutation() *ProgressMutation {
	return _u.mutation
}

// ClearCard clears the "card" edge to the Card entity.
func (_u *ProgressUpdate) ClearCard() *ProgressUpdate {
	_u.mutation.ClearCard()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProgressUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProgressUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProgressUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProgressUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProgressUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := progress.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProgressUpdate) check() error {
	if v, ok := _u.mutation.IntervalDays(); ok {
		if err := progress.IntervalDaysValidator(v); err != nil {
			return &ValidationError{Name: "interval_days", err: fmt.Errorf(`ent: validator failed for field "Progress.interval_days": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Repetitions(); ok {
		if err := progress.RepetitionsValidator(v); err != nil {
			return &ValidationError{Name: "repetitions", err: fmt.Errorf(`ent: validator failed for field "Progress.repetitions": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalReviews(); ok {
		if err := progress.TotalReviewsValidator(v); err != nil {
			return &ValidationError{Name: "total_reviews", err: fmt.Errorf(`ent: validator failed for field "Progress.total_reviews": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CorrectReviews(); ok {
		if err := progress.CorrectReviewsValidator(v); err != nil {
			return &ValidationError{Name: "correct_reviews", err: fmt.Errorf(`ent: validator failed for field "Progress.correct_reviews": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Streak(); ok {
		if err := progress.StreakValidator(v); err != nil {
			return &ValidationError{Name: "streak", err: fmt.Errorf(`ent: validator failed for field "Progress.streak": %w`, err)}
		}
	}
	if _u.mutation.CardCleared() && len(_u.mutation.CardIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Progress.card"`)
	}
	return nil
}

func (_u *ProgressUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(progress.Table, progress.Columns, sqlgraph.NewFieldSpec(progress.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(progress.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EaseFactor(); ok {
		_spec.SetField(progress.FieldEaseFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEaseFactor(); ok {
		_spec.AddField(progress.FieldEaseFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.IntervalDays(); ok {
		_spec.SetField(progress.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIntervalDays(); ok {
		_spec.AddField(progress.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Repetitions(); ok {
		_spec.SetField(progress.FieldRepetitions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRepetitions(); ok {
		_spec.AddField(progress.FieldRepetitions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalReviews(); ok {
		_spec.SetField(progress.FieldTotalReviews, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalReviews(); ok {
		_spec.AddField(progress.FieldTotalReviews, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectReviews(); ok {
		_spec.SetField(progress.FieldCorrectReviews, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectReviews(); ok {
		_spec.AddField(progress.FieldCorrectReviews, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Streak(); ok {
		_spec.SetField(progress.FieldStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStreak(); ok {
		_spec.AddField(progress.FieldStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastReview(); ok {
		_spec.SetField(progress.FieldLastReview, field.TypeTime, value)
	}
	if _u.mutation.LastReviewCleared() {
		_spec.ClearField(progress.FieldLastReview, field.TypeTime)
	}
	if value, ok := _u.mutation.NextReview(); ok {
		_spec.SetField(progress.FieldNextReview, field.TypeTime, value)
	}
	if _u.mutation.NextReviewCleared() {
		_spec.ClearField(progress.FieldNextReview, field.TypeTime)
	}
	if _u.mutation.CardCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   progress.CardTable,
			Columns: []string{progress.CardColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(card.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CardIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   progress.CardTable,
			Columns: []string{progress.CardColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(card.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{progress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProgressUpdateOne is the builder for updating a single Progress entity.
type ProgressUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProgressMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProgressUpdateOne) SetUpdatedAt(v time.Time) *ProgressUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetEaseFactor sets the "ease_factor" field.
func (_u *ProgressUpdateOne) SetEaseFactor(v float64) *ProgressUpdateOne {
	_u.mutation.ResetEaseFactor()
	_u.mutation.SetEaseFactor(v)
	return _u
}

// SetNillableEaseFactor sets the "ease_factor" field if the given value is not nil.
func (_u *ProgressUpdateOne) SetNillableEaseFactor(v *float64) *ProgressUpdateOne {
	if v != nil {
		_u.SetEaseFactor(*v)
	}
	return _u
}

// AddEaseFactor adds value to the "ease_factor" field.
func (_u *ProgressUpdateOne) AddEaseFactor(v float64) *ProgressUpdateOne {
	_u.mutation.AddEaseFactor(v)
	return _u
}

// SetIntervalDays sets the "interval_days" field.
func (_u *ProgressUpdateOne) SetIntervalDays(v int) *ProgressUpdateOne {
	_u.mutation.ResetIntervalDays()
	_u.mutation.SetIntervalDays(v)
	return _u
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (_u *ProgressUpdateOne) SetNillableIntervalDays(v *int) *ProgressUpdateOne {
	if v != nil {
		_u.SetIntervalDays(*v)
	}
	return _u
}

// AddIntervalDays adds value to the "interval_days" field.
func (_u *ProgressUpdateOne) AddIntervalDays(v int) *ProgressUpdateOne {
	_u.mutation.AddIntervalDays(v)
	return _u
}

// SetRepetitions sets the "repetitions" field.
func (_u *ProgressUpdateOne) SetRepetitions(v int) *ProgressUpdateOne {
	_u.mutation.ResetRepetitions()
	_u.mutation.SetRepetitions(v)
	return _u
}

// SetNillableRepetitions sets the "repetitions" field if the given value is not nil.
func (_u *ProgressUpdateOne) SetNillableRepetitions(v *int) *ProgressUpdateOne {
	if v != nil {
		_u.SetRepetitions(*v)
	}
	return _u
}

// AddRepetitions adds value to the "repetitions" field.
func (_u *ProgressUpdateOne) AddRepetitions(v int) *ProgressUpdateOne {
	_u.mutation.AddRepetitions(v)
	return _u
}

// SetTotalReviews sets the "total_reviews" field.
func (_u *ProgressUpdateOne) SetTotalReviews(v int) *ProgressUpdateOne {
	_u.mutation.ResetTotalReviews()
	_u.mutation.SetTotalReviews(v)
	return _u
}

// SetNillableTotalReviews sets the "total_reviews" field if the given value is not nil.
func (_u *ProgressUpdateOne) SetNillableTotalReviews(v *int) *ProgressUpdateOne {
	if v != nil {
		_u.SetTotalReviews(*v)
	}
	return _u
}

// AddTotalReviews adds value to the "total_reviews" field.
func (_u *ProgressUpdateOne) AddTotalReviews(v int) *ProgressUpdateOne {
	_u.mutation.AddTotalReviews(v)
	return _u
}

// SetCorrectReviews sets the "correct_reviews" field.
func (_u *ProgressUpdateOne) SetCorrectReviews(v int) *ProgressUpdateOne {
	_u.mutation.ResetCorrectReviews()
	_u.mutation.SetCorrectReviews(v)
	return _u
}

// SetNillableCorrectReviews sets the "correct_reviews" field if the given value is not nil.
func (_u *ProgressUpdateOne) SetNillableCorrectReviews(v *int) *ProgressUpdateOne {
	if v != nil {
		_u.SetCorrectReviews(*v)
	}
	return _u
}

// AddCorrectReviews adds value to the "correct_reviews" field.
func (_u *ProgressUpdateOne) AddCorrectReviews(v int) *ProgressUpdateOne {
	_u.mutation.AddCorrectReviews(v)
	return _u
}

// SetStreak sets the "streak" field.
func (_u *ProgressUpdateOne) SetStreak(v int) *ProgressUpdateOne {
	_u.mutation.ResetStreak()
	_u.mutation.SetStreak(v)
	return _u
}

// SetNillableStreak sets the "streak" field if the given value is not nil.
func (_u *ProgressUpdateOne) SetNillableStreak(v *int) *ProgressUpdateOne {
	if v != nil {
		_u.SetStreak(*v)
	}
	return _u
}

// AddStreak adds value to the "streak" field.
func (_u *ProgressUpdateOne) AddStreak(v int) *ProgressUpdateOne {
	_u.mutation.AddStreak(v)
	return _u
}

// SetLastReview sets the "last_review" field.
func (_u *ProgressUpdateOne) SetLastReview(v time.Time) *ProgressUpdateOne {
	_u.mutation.SetLastReview(v)
	return _u
}

// SetNillableLastReview sets the "last_review" field if the given value is not nil.
func (_u *ProgressUpdateOne) SetNillableLastReview(v *time.Time) *ProgressUpdateOne {
	if v != nil {
		_u.SetLastReview(*v)
	}
	return _u
}

// ClearLastReview clears the value of the "last_review" field.
func (_u *ProgressUpdateOne) ClearLastReview() *ProgressUpdateOne {
	_u.mutation.ClearLastReview()
	return _u
}

// SetNextReview sets the "next_review" field.
func (_u *ProgressUpdateOne) SetNextReview(v time.Time) *ProgressUpdateOne {
	_u.mutation.SetNextReview(v)
	return _u
}

// SetNillableNextReview sets the "next_review" field if the given value is not nil.
func (_u *ProgressUpdateOne) SetNillableNextReview(v *time.Time) *ProgressUpdateOne {
	if v != nil {
		_u.SetNextReview(*v)
	}
	return _u
}

// ClearNextReview clears the value of the "next_review" field.
func (_u *ProgressUpdateOne) ClearNextReview() *ProgressUpdateOne {
	_u.mutation.ClearNextReview()
	return _u
}

// SetCardID sets the "card" edge to the Card entity by ID.
func (_u *ProgressUpdateOne) SetCardID(id int) *ProgressUpdateOne {
	_u.mutation.SetCardID(id)
	return _u
}

// SetCard sets the "card" edge to the Card entity.
func (_u *ProgressUpdateOne) SetCard(v *Card) *ProgressUpdateOne {
	return _u.SetCardID(v.ID)
}

// Mutation returns the ProgressMutation object of the builder.
func (_u *ProgressUpdateOne) Mutation() *ProgressMutation {
	return _u.mutation
}

// ClearCard clears the "card" edge to the Card entity.
func (_u *ProgressUpdateOne) ClearCard() *ProgressUpdateOne {
	_u.mutation.ClearCard()
	return _u
}

// Where appends a list predicates to the ProgressUpdate builder.
func (_u *ProgressUpdateOne) Where(ps ...predicate.Progress) *ProgressUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProgressUpdateOne) Select(field string, fields ...string) *ProgressUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Progress entity.
func (_u *ProgressUpdateOne) Save(ctx context.Context) (*Progress, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProgressUpdateOne) SaveX(ctx context.Context) *Progress {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProgressUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProgressUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProgressUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := progress.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProgressUpdateOne) check() error {
	if v, ok := _u.mutation.IntervalDays(); ok {
		if err := progress.IntervalDaysValidator(v); err != nil {
			return &ValidationError{Name: "interval_days", err: fmt.Errorf(`ent: validator failed for field "Progress.interval_days": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Repetitions(); ok {
		if err := progress.RepetitionsValidator(v); err != nil {
			return &ValidationError{Name: "repetitions", err: fmt.Errorf(`ent: validator failed for field "Progress.repetitions": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalReviews(); ok {
		if err := progress.TotalReviewsValidator(v); err != nil {
			return &ValidationError{Name: "total_reviews", err: fmt.Errorf(`ent: validator failed for field "Progress.total_reviews": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CorrectReviews(); ok {
		if err := progress.CorrectReviewsValidator(v); err != nil {
			return &ValidationError{Name: "correct_reviews", err: fmt.Errorf(`ent: validator failed for field "Progress.correct_reviews": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Streak(); ok {
		if err := progress.StreakValidator(v); err != nil {
			return &ValidationError{Name: "streak", err: fmt.Errorf(`ent: validator failed for field "Progress.streak": %w`, err)}
		}
	}
	if _u.mutation.CardCleared() && len(_u.mutation.CardIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Progress.card"`)
	}
	return nil
}

func (_u *ProgressUpdateOne) sqlSave(ctx context.Context) (_node *Progress, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(progress.Table, progress.Columns, sqlgraph.NewFieldSpec(progress.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Progress.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, progress.FieldID)
		for _, f := range fields {
			if !progress.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != progress.FieldID {
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
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(progress.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EaseFactor(); ok {
		_spec.SetField(progress.FieldEaseFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEaseFactor(); ok {
		_spec.AddField(progress.FieldEaseFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.IntervalDays(); ok {
		_spec.SetField(progress.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIntervalDays(); ok {
		_spec.AddField(progress.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Repetitions(); ok {
		_spec.SetField(progress.FieldRepetitions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRepetitions(); ok {
		_spec.AddField(progress.FieldRepetitions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalReviews(); ok {
		_spec.SetField(progress.FieldTotalReviews, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalReviews(); ok {
		_spec.AddField(progress.FieldTotalReviews, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectReviews(); ok {
		_spec.SetField(progress.FieldCorrectReviews, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectReviews(); ok {
		_spec.AddField(progress.FieldCorrectReviews, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Streak(); ok {
		_spec.SetField(progress.FieldStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStreak(); ok {
		_spec.AddField(progress.FieldStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastReview(); ok {
		_spec.SetField(progress.FieldLastReview, field.TypeTime, value)
	}
	if _u.mutation.LastReviewCleared() {
		_spec.ClearField(progress.FieldLastReview, field.TypeTime)
	}
	if value, ok := _u.mutation.NextReview(); ok {
		_spec.SetField(progress.FieldNextReview, field.TypeTime, value)
	}
	if _u.mutation.NextReviewCleared() {
		_spec.ClearField(progress.FieldNextReview, field.TypeTime)
	}
	if _u.mutation.CardCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   progress.CardTable,
			Columns: []string{progress.CardColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(card.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CardIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   progress.CardTable,
			Columns: []string{progress.CardColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(card.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Progress{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{progress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
