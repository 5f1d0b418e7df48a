// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ankivoice/ankivoice/ent/reviewlog"
)

// ReviewLogCreate is the builder for creating a ReviewLog entity.
type ReviewLogCreate struct {
	config
	mutation *ReviewLogMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *ReviewLogCreate) SetSessionID(v string) *ReviewLogCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetCardID sets the "card_id" field.
func (_c *ReviewLogCreate) SetCardID(v int) *ReviewLogCreate {
	_c.mutation.SetCardID(v)
	return _c
}

// SetQuestionID sets the "question_id" field.
func (_c *ReviewLogCreate) SetQuestionID(v int) *ReviewLogCreate {
	_c.mutation.SetQuestionID(v)
	return _c
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_c *ReviewLogCreate) SetNillableQuestionID(v *int) *ReviewLogCreate {
	if v != nil {
		_c.SetQuestionID(*v)
	}
	return _c
}

// SetUserAnswer sets the "user_answer" field.
func (_c *ReviewLogCreate) SetUserAnswer(v string) *ReviewLogCreate {
	_c.mutation.SetUserAnswer(v)
	return _c
}

// SetCorrect sets the "correct" field.
func (_c *ReviewLogCreate) SetCorrect(v bool) *ReviewLogCreate {
	_c.mutation.SetCorrect(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *ReviewLogCreate) SetConfidence(v float64) *ReviewLogCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetResponseSeconds sets the "response_seconds" field.
func (_c *ReviewLogCreate) SetResponseSeconds(v float64) *ReviewLogCreate {
	_c.mutation.SetResponseSeconds(v)
	return _c
}

// SetNillableResponseSeconds sets the "response_seconds" field if the given value is not nil.
func (_c *ReviewLogCreate) SetNillableResponseSeconds(v *float64) *ReviewLogCreate {
	if v != nil {
		_c.SetResponseSeconds(*v)
	}
	return _c
}

// SetQuality sets the "quality" field.
func (_c *ReviewLogCreate) SetQuality(v int) *ReviewLogCreate {
	_c.mutation.SetQuality(v)
	return _c
}

// SetFeedback sets the "feedback" field.
func (_c *ReviewLogCreate) SetFeedback(v string) *ReviewLogCreate {
	_c.mutation.SetFeedback(v)
	return _c
}

// SetNillableFeedback sets the "feedback" field if the given value is not nil.
func (_c *ReviewLogCreate) SetNillableFeedback(v *string) *ReviewLogCreate {
	if v != nil {
		_c.SetFeedback(*v)
	}
	return _c
}

// SetReviewedAt sets the "reviewed_at" field.
func (_c *ReviewLogCreate) SetReviewedAt(v time.Time) *ReviewLogCreate {
	_c.mutation.SetReviewedAt(v)
	return _c
}

// SetNillableReviewedAt sets the "reviewed_at" field if the given value is not nil.
func (_c *ReviewLogCreate) SetNillableReviewedAt(v *time.Time) *ReviewLogCreate {
	if v != nil {
		_c.SetReviewedAt(*v)
	}
	return _c
}

// Mutation returns the ReviewLogMutation object of the builder.
func (_c *ReviewLogCreate) Mutation() *ReviewLogMutation {
	return _c.mutation
}

// Save creates the ReviewLog in the database.
func (_c *ReviewLogCreate) Save(ctx context.Context) (*ReviewLog, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReviewLogCreate) SaveX(ctx context.Context) *ReviewLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReviewLogCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReviewLogCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ReviewLogCreate) defaults() {
	if _, ok := _c.mutation.ReviewedAt(); !ok {
		v := reviewlog.DefaultReviewedAt()
		_c.mutation.SetReviewedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReviewLogCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "ReviewLog.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := reviewlog.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ReviewLog.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CardID(); !ok {
		return &ValidationError{Name: "card_id", err: errors.New(`ent: missing required field "ReviewLog.card_id"`)}
	}
	if _, ok := _c.mutation.UserAnswer(); !ok {
		return &ValidationError{Name: "user_answer", err: errors.New(`ent: missing required field "ReviewLog.user_answer"`)}
	}
	if _, ok := _c.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "ReviewLog.correct"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "ReviewLog.confidence"`)}
	}
	if _, ok := _c.mutation.Quality(); !ok {
		return &ValidationError{Name: "quality", err: errors.New(`ent: missing required field "ReviewLog.quality"`)}
	}
	if v, ok := _c.mutation.Quality(); ok {
		if err := reviewlog.QualityValidator(v); err != nil {
			return &ValidationError{Name: "quality", err: fmt.Errorf(`ent: validator failed for field "ReviewLog.quality": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ReviewedAt(); !ok {
		return &ValidationError{Name: "reviewed_at", err: errors.New(`ent: missing required field "ReviewLog.reviewed_at"`)}
	}
	return nil
}

func (_c *ReviewLogCreate) sqlSave(ctx context.Context) (*ReviewLog, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ReviewLogCreate) createSpec() (*ReviewLog, *sqlgraph.CreateSpec) {
	var (
		_node = &ReviewLog{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(reviewlog.Table, sqlgraph.NewFieldSpec(reviewlog.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(reviewlog.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.CardID(); ok {
		_spec.SetField(reviewlog.FieldCardID, field.TypeInt, value)
		_node.CardID = value
	}
	if value, ok := _c.mutation.QuestionID(); ok {
		_spec.SetField(reviewlog.FieldQuestionID, field.TypeInt, value)
		_node.QuestionID = value
	}
	if value, ok := _c.mutation.UserAnswer(); ok {
		_spec.SetField(reviewlog.FieldUserAnswer, field.TypeString, value)
		_node.UserAnswer = value
	}
	if value, ok := _c.mutation.Correct(); ok {
		_spec.SetField(reviewlog.FieldCorrect, field.TypeBool, value)
		_node.Correct = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(reviewlog.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.ResponseSeconds(); ok {
		_spec.SetField(reviewlog.FieldResponseSeconds, field.TypeFloat64, value)
		_node.ResponseSeconds = value
	}
	if value, ok := _c.mutation.Quality(); ok {
		_spec.SetField(reviewlog.FieldQuality, field.TypeInt, value)
		_node.Quality = value
	}
	if value, ok := _c.mutation.Feedback(); ok {
		_spec.SetField(reviewlog.FieldFeedback, field.TypeString, value)
		_node.Feedback = value
	}
	if value, ok := _c.mutation.ReviewedAt(); ok {
		_spec.SetField(reviewlog.FieldReviewedAt, field.TypeTime, value)
		_node.ReviewedAt = value
	}
	return _node, _spec
}

// ReviewLogCreateBulk is the builder for creating many ReviewLog entities in bulk.
type ReviewLogCreateBulk struct {
	config
	err      error
	builders []*ReviewLogCreate
}

// Save creates the ReviewLog entities in the database.
func (_c *ReviewLogCreateBulk) Save(ctx context.Context) ([]*ReviewLog, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ReviewLog, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReviewLogMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ReviewLogCreateBulk) SaveX(ctx context.Context) []*ReviewLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReviewLogCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReviewLogCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
