package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/satyarth/dappdojo/internal/assist"
	"github.com/satyarth/dappdojo/internal/catalog"
	"github.com/satyarth/dappdojo/internal/router"
	"github.com/satyarth/dappdojo/internal/screen"
	"github.com/satyarth/dappdojo/internal/screens/lesson"
	"github.com/satyarth/dappdojo/internal/screens/welcome"
	"github.com/satyarth/dappdojo/internal/session"
	"github.com/satyarth/dappdojo/internal/store"
	"github.com/satyarth/dappdojo/internal/ui/layout"
)

// Options carries the wired dependencies for the TUI.
type Options struct {
	Catalog   catalog.Catalog
	Gateway   *assist.Gateway
	EventRepo store.EventRepo
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	session *session.Session
	width   int
	height  int
}

func newAppModel(opts Options) AppModel {
	sess := session.New(opts.Catalog)
	splash := welcome.New(func() screen.Screen {
		return lesson.New(sess, opts.Gateway, opts.EventRepo)
	})
	return AppModel{
		router:  router.New(splash),
		session: sess,
	}
}

func (m AppModel) Init() tea.Cmd {
	active := m.router.Active()
	if active == nil {
		return nil
	}
	return active.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()

	if _, ok := active.(*welcome.WelcomeScreen); ok {
		v.SetContent(active.View(m.width, m.height))
		return v
	}

	title := ""
	if active != nil {
		title = active.Title()
	}

	progress := fmt.Sprintf("%d / %d", m.session.Index()+1, m.session.Len())
	header := layout.RenderHeader(title, progress, m.width)

	footerHints := []layout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}}
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = append(provider.KeyHints(), footerHints...)
	}
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
