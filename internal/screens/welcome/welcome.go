package welcome

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/satyarth/dappdojo/internal/router"
	"github.com/satyarth/dappdojo/internal/screen"
	"github.com/satyarth/dappdojo/internal/ui/theme"
)

const banner = `
 ┌────────────────────────────────────┐
 │  ◇ DappDojo                        │
 │                                    │
 │  Master React for Web3:            │
 │  build the future of the internet  │
 └────────────────────────────────────┘`

// WelcomeScreen shows a splash before transitioning to the lesson screen.
type WelcomeScreen struct {
	lessonFactory func() screen.Screen
	transitioned  bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that will transition to the screen produced
// by lessonFactory on the first key press.
func New(lessonFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{lessonFactory: lessonFactory}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return nil
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if _, ok := msg.(tea.KeyPressMsg); ok {
		return w, w.transition()
	}
	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	next := w.lessonFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	art := lipgloss.NewStyle().Foreground(theme.Primary).Render(banner)
	sub := theme.Subtitle.Render("Your interactive guide to the fundamentals of React for building dApps.")
	hint := theme.Hint.Render("Press any key to begin")

	content := lipgloss.JoinVertical(lipgloss.Center, art, "", sub, "", hint)

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
