package components

import (
	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
)

// CodeEditor wraps bubbles/textarea for multi-line code entry.
type CodeEditor struct {
	Model textarea.Model
}

// NewCodeEditor creates a code editor sized for lesson challenges.
func NewCodeEditor(placeholder string) CodeEditor {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.ShowLineNumbers = true
	ta.SetHeight(8)
	return CodeEditor{Model: ta}
}

// Init returns the initial command.
func (c CodeEditor) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (c CodeEditor) Update(msg tea.Msg) (CodeEditor, tea.Cmd) {
	var cmd tea.Cmd
	c.Model, cmd = c.Model.Update(msg)
	return c, cmd
}

// View renders the editor.
func (c CodeEditor) View() string {
	return c.Model.View()
}

// Value returns the current code text.
func (c CodeEditor) Value() string {
	return c.Model.Value()
}

// SetValue replaces the editor content.
func (c *CodeEditor) SetValue(text string) {
	c.Model.SetValue(text)
}

// SetWidth resizes the editor to the given width.
func (c *CodeEditor) SetWidth(w int) {
	c.Model.SetWidth(w)
}

// Focus gives the editor keyboard focus.
func (c *CodeEditor) Focus() tea.Cmd {
	return c.Model.Focus()
}

// Blur removes keyboard focus.
func (c *CodeEditor) Blur() {
	c.Model.Blur()
}

// Focused reports whether the editor has focus.
func (c CodeEditor) Focused() bool {
	return c.Model.Focused()
}
