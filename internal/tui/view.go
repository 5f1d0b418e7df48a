package tui

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	var content string
	switch m.phase {
	case phaseLoading:
		content = dimStyle.Render("Planning session...")
	case phaseAnswering, phaseGrading:
		content = m.viewQuestion()
	case phaseFeedback:
		content = m.viewFeedback()
	case phaseSummary:
		content = m.viewSummary()
	}

	v.SetContent(content)
	return v
}

func (m Model) viewQuestion() string {
	item := m.sess.Current()
	if item == nil {
		return ""
	}

	header := titleStyle.Render("AnkiVoice") + "  " +
		dimStyle.Render(fmt.Sprintf("card %d of %d", m.sess.Answered()+1, len(m.sess.Items)))

	question := questionStyle.Width(max(20, m.width-4)).Render(item.Prompt())

	var footer string
	if m.phase == phaseGrading {
		footer = dimStyle.Render("Grading...")
	} else {
		footer = m.input.View() + "\n" + hintStyle.Render("enter to submit · ctrl+c to end session")
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, "", question, "", footer)
}

func (m Model) viewFeedback() string {
	if m.result == nil {
		return ""
	}

	var verdict string
	if m.result.Verdict.IsCorrect {
		verdict = correctStyle.Render("Correct")
	} else {
		verdict = incorrectStyle.Render("Incorrect")
	}

	var b strings.Builder
	b.WriteString(verdict)
	fmt.Fprintf(&b, "  %s\n", dimStyle.Render(fmt.Sprintf("(quality %d)", m.result.Quality)))

	if m.result.Verdict.Feedback != "" {
		b.WriteString("\n")
		b.WriteString(feedbackStyle.Width(max(20, m.width-4)).Render(m.result.Verdict.Feedback))
		b.WriteString("\n")
	}
	if !m.result.Verdict.IsCorrect && m.result.Verdict.Suggestions != "" {
		b.WriteString("\n")
		b.WriteString(hintStyle.Render(m.result.Verdict.Suggestions))
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "\n%s\n",
		dimStyle.Render(fmt.Sprintf("Next review in %d day(s)", m.result.State.IntervalDays)))
	b.WriteString(hintStyle.Render("press any key to continue"))

	return b.String()
}

func (m Model) viewSummary() string {
	if m.err != nil {
		return incorrectStyle.Render("Session error: ") + m.err.Error() +
			"\n\n" + hintStyle.Render("press any key to exit")
	}
	if m.summary == nil {
		return dimStyle.Render("Closing session...")
	}
	if m.summary.CardsReviewed == 0 {
		return titleStyle.Render("Nothing due") +
			"\n\nAll cards are scheduled for later. Come back soon.\n\n" +
			hintStyle.Render("press any key to exit")
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Session complete"))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Cards reviewed: %d\n", m.summary.CardsReviewed)
	fmt.Fprintf(&b, "Correct:        %d (%.0f%%)\n", m.summary.Correct, m.summary.Accuracy*100)
	if m.summary.AvgResponseSec > 0 {
		fmt.Fprintf(&b, "Avg response:   %.1fs\n", m.summary.AvgResponseSec)
	}
	fmt.Fprintf(&b, "Duration:       %s\n", m.summary.Duration.Round(time.Second))
	b.WriteString("\n")
	b.WriteString(hintStyle.Render("press any key to exit"))

	return b.String()
}
