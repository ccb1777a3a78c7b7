// Package controller holds the command handlers that mutate budget and FIRE
// state. Every handler runs validate, mutate, persist, recompute and notify,
// in that order, before returning.
package controller

import (
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/theirongolddev/sbudget/internal/logging"
	"github.com/theirongolddev/sbudget/internal/model"
	"github.com/theirongolddev/sbudget/internal/pipeline"
)

// Validation errors. The user has already been alerted when these are returned.
var (
	ErrInvalidAmount = errors.New("invalid expense amount")
	ErrInvalidIncome = errors.New("invalid income")
	ErrUnknownParam  = errors.New("unknown FIRE parameter")
)

// Messages shown to the user.
const (
	AlertInvalidAmount = "Enter valid amount"
	AlertInvalidIncome = "Enter valid income"
	ConfirmClearAll    = "Clear everything?"
	ConfirmResetFIRE   = "Reset FIRE inputs to defaults?"
)

// Store persists the two state blobs.
type Store interface {
	Load() model.BudgetState
	Save(model.BudgetState) error
	LoadFIRE() model.FIREParameters
	SaveFIRE(model.FIREParameters) error
}

// Prompter asks the user to confirm destructive actions and reports
// validation failures.
type Prompter interface {
	Confirm(message string) bool
	Alert(message string)
}

// Renderer repaints whatever surface shows the derived figures.
type Renderer interface {
	Render(View)
}

// RenderFunc adapts a function to Renderer.
type RenderFunc func(View)

// Render calls f(v).
func (f RenderFunc) Render(v View) { f(v) }

// View is the full derived picture handed to renderers after each change.
type View struct {
	Budget     model.BudgetState
	Summary    model.BudgetSummary
	Entries    []model.ExpenseEntry
	FIRE       model.FIREParameters
	Projection model.FIREProjection
}

// Session owns the in-memory budget and FIRE state for one run.
// It is not safe for concurrent use; callers serialise operations.
type Session struct {
	budget model.BudgetState
	fire   model.FIREParameters

	store     Store
	prompt    Prompter
	renderers []Renderer
	log       logrus.FieldLogger
	now       func() time.Time
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger.
func WithLogger(log logrus.FieldLogger) Option {
	return func(s *Session) { s.log = log }
}

// WithClock overrides the time source used to stamp new expenses.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// WithRenderer registers a renderer.
func WithRenderer(r Renderer) Option {
	return func(s *Session) { s.renderers = append(s.renderers, r) }
}

// Open loads both state blobs from store and returns a ready session.
func Open(store Store, prompt Prompter, opts ...Option) *Session {
	s := &Session{
		store:  store,
		prompt: prompt,
		log:    logging.Discard(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.budget = store.Load()
	s.fire = store.LoadFIRE()
	s.log.WithFields(logrus.Fields{
		logging.FieldCount:  len(s.budget.Expenses),
		logging.FieldAmount: s.budget.Income,
	}).Debug("session loaded")
	return s
}

// AddRenderer registers r for subsequent changes.
func (s *Session) AddRenderer(r Renderer) {
	s.renderers = append(s.renderers, r)
}

// Budget returns the expense and income command handlers.
func (s *Session) Budget() *BudgetController {
	return &BudgetController{s: s}
}

// FIRE returns the FIRE parameter command handlers.
func (s *Session) FIRE() *FIREController {
	return &FIREController{s: s}
}

// View derives the current picture without touching storage.
func (s *Session) View() View {
	state := s.budget.Clone()
	return View{
		Budget:     state,
		Summary:    pipeline.Summarize(state),
		Entries:    pipeline.Entries(state.Expenses),
		FIRE:       s.fire,
		Projection: pipeline.Project(s.fire),
	}
}

// Render pushes the current view to every renderer.
func (s *Session) Render() {
	v := s.View()
	for _, r := range s.renderers {
		r.Render(v)
	}
}

// commitBudget persists the budget state and then re-renders. Renderers run
// even when the save fails so the display matches memory.
func (s *Session) commitBudget(op string) error {
	err := s.store.Save(s.budget)
	if err != nil {
		s.log.WithError(err).WithField(logging.FieldOperation, op).Error("persisting budget")
	}
	s.Render()
	return err
}

func (s *Session) commitFIRE(op string) error {
	err := s.store.SaveFIRE(s.fire)
	if err != nil {
		s.log.WithError(err).WithField(logging.FieldOperation, op).Error("persisting FIRE parameters")
	}
	s.Render()
	return err
}
