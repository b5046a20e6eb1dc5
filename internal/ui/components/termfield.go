package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// TermField wraps bubbles/textinput for the single-line Web3 term input.
type TermField struct {
	Model textinput.Model
}

// NewTermField creates a styled term input.
func NewTermField(placeholder string) TermField {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 64
	return TermField{Model: ti}
}

// Init returns the initial command.
func (t TermField) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (t TermField) Update(msg tea.Msg) (TermField, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the field.
func (t TermField) View() string {
	return t.Model.View()
}

// Value returns the current input value.
func (t TermField) Value() string {
	return t.Model.Value()
}

// SetValue replaces the field content.
func (t *TermField) SetValue(text string) {
	t.Model.SetValue(text)
}

// Focus gives the field keyboard focus.
func (t *TermField) Focus() tea.Cmd {
	return t.Model.Focus()
}

// Blur removes keyboard focus.
func (t *TermField) Blur() {
	t.Model.Blur()
}

// Focused reports whether the field has focus.
func (t TermField) Focused() bool {
	return t.Model.Focused()
}
