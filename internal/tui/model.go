// Package tui renders an interactive review session as a Bubble Tea
// program.
package tui

import (
	"context"
	"time"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/ankivoice/ankivoice/internal/session"
)

type phase int

const (
	phaseLoading phase = iota
	phaseAnswering
	phaseGrading
	phaseFeedback
	phaseSummary
)

// Model is the root Bubble Tea model for one review session.
type Model struct {
	engine *session.Engine
	sess   *session.Session

	input         textinput.Model
	phase         phase
	questionShown time.Time
	result        *session.Result
	summary       *session.Summary
	err           error

	width  int
	height int
}

// New creates the review model.
func New(engine *session.Engine) Model {
	ti := textinput.New()
	ti.Placeholder = "Type your answer..."
	ti.CharLimit = 500
	ti.Focus()

	return Model{
		engine: engine,
		input:  ti,
		phase:  phaseLoading,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.startSession(), m.input.Focus())
}

func (m Model) startSession() tea.Cmd {
	return func() tea.Msg {
		sess, err := m.engine.Start(context.Background(), time.Now())
		return sessionReadyMsg{Session: sess, Err: err}
	}
}

func (m Model) submitAnswer(answer string, responseSeconds float64) tea.Cmd {
	return func() tea.Msg {
		res, err := m.engine.Submit(context.Background(), m.sess, answer, responseSeconds, time.Now())
		return verdictMsg{Result: res, Err: err}
	}
}

func (m Model) finishSession() tea.Cmd {
	return func() tea.Msg {
		sum, err := m.engine.Finish(context.Background(), m.sess, time.Now())
		return summaryMsg{Summary: sum, Err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case sessionReadyMsg:
		if msg.Err != nil {
			m.err = msg.Err
			m.phase = phaseSummary
			return m, nil
		}
		m.sess = msg.Session
		if m.sess.Current() == nil {
			// Nothing due right now.
			return m, m.finishSession()
		}
		m.phase = phaseAnswering
		m.questionShown = time.Now()
		return m, nil

	case verdictMsg:
		if msg.Err != nil {
			m.err = msg.Err
			m.phase = phaseSummary
			return m, nil
		}
		m.result = msg.Result
		m.phase = phaseFeedback
		return m, nil

	case summaryMsg:
		if msg.Err != nil {
			m.err = msg.Err
		}
		m.summary = msg.Summary
		m.phase = phaseSummary
		return m, nil

	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}

	if m.phase == phaseAnswering {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		if m.sess != nil && m.phase != phaseSummary {
			return m, m.finishSession()
		}
		return m, tea.Quit
	}

	switch m.phase {
	case phaseAnswering:
		if key == "enter" {
			answer := m.input.Value()
			if answer == "" {
				return m, nil
			}
			elapsed := time.Since(m.questionShown).Seconds()
			m.phase = phaseGrading
			return m, m.submitAnswer(answer, elapsed)
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd

	case phaseFeedback:
		// Any key continues.
		if m.sess.Current() == nil {
			return m, m.finishSession()
		}
		m.phase = phaseAnswering
		m.result = nil
		m.input.Reset()
		m.questionShown = time.Now()
		return m, nil

	case phaseSummary:
		return m, tea.Quit
	}

	return m, nil
}

// Run starts the review program.
func Run(engine *session.Engine) error {
	p := tea.NewProgram(New(engine))
	_, err := p.Run()
	return err
}
