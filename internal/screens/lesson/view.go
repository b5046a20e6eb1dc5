package lesson

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/satyarth/dappdojo/internal/session"
	"github.com/satyarth/dappdojo/internal/ui/theme"
)

func (s *LessonScreen) View(width, height int) string {
	l := s.session.Lesson()

	contentWidth := width - 4
	if contentWidth < 20 {
		contentWidth = 20
	}
	body := lipgloss.NewStyle().Width(contentWidth)

	var sections []string

	sections = append(sections,
		theme.Title.Width(contentWidth).Render(l.Title),
		"",
		body.Foreground(theme.Text).Render(l.Explanation),
		"",
		theme.SectionHeading.Render("Example Code:"),
		theme.CodeBlock.Width(contentWidth).Render(l.Example),
		"",
		theme.SectionHeading.Render("Your Challenge:"),
		body.Foreground(theme.Text).Render(l.Challenge),
		"",
		s.renderEditor(contentWidth),
	)

	if fb := s.renderFeedback(); fb != "" {
		sections = append(sections, "", fb)
	}

	if s.session.SolutionVisible() {
		sections = append(sections, "",
			theme.SectionHeading.Render("Solution:"),
			theme.CodeBlock.Width(contentWidth).Render(l.Solution),
		)
	}

	sections = append(sections, "", s.renderTermRow())

	if panel := s.renderAssistant(contentWidth); panel != "" {
		sections = append(sections, "", panel)
	}

	if s.notice != "" {
		sections = append(sections, "", theme.Hint.Render(s.notice))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	return lipgloss.NewStyle().Padding(0, 2).Render(content)
}

func (s *LessonScreen) renderEditor(width int) string {
	s.editor.SetWidth(width)
	return s.editor.View()
}

func (s *LessonScreen) renderFeedback() string {
	switch s.session.Feedback() {
	case session.FeedbackAccepted:
		return theme.Correct.Render("🎉 Correct! Great job!")
	case session.FeedbackRejected:
		return theme.Incorrect.Render("🤔 Not quite. Review the explanation and example, then try again!")
	default:
		return ""
	}
}

func (s *LessonScreen) renderTermRow() string {
	label := theme.Hint.Render("Ask about a Web3 term: ")
	return label + s.term.View()
}

func (s *LessonScreen) renderAssistant(width int) string {
	a := s.session.Assistant()
	if !a.Visible {
		return ""
	}

	var b strings.Builder
	b.WriteString(theme.SectionHeading.Render("AI Assistant:"))
	b.WriteString("\n")

	switch a.Status {
	case session.AssistantPending:
		b.WriteString(theme.Pending.Render("Thinking..."))
	case session.AssistantFailed:
		b.WriteString(theme.Incorrect.Render("Error: " + a.ErrMessage))
	case session.AssistantSucceeded:
		b.WriteString(lipgloss.NewStyle().Width(width - 4).Foreground(theme.Text).Render(a.Reply))
	}

	return theme.Card.Width(width).Render(b.String())
}
