package cli

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/surveyforge/internal/cli/formatter"
)

// previewModel is a scrollable full-screen pager over generated prompt text.
type previewModel struct {
	title    string
	content  string
	viewport viewport.Model
	ready    bool
}

func newPreviewModel(title, content string) previewModel {
	return previewModel{title: title, content: content}
}

func (m previewModel) Init() tea.Cmd {
	return nil
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		headerHeight := 2
		footerHeight := 1
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-headerHeight-footerHeight)
			m.viewport.SetContent(m.content)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - headerHeight - footerHeight
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m previewModel) View() string {
	if !m.ready {
		return "loading..."
	}
	var b strings.Builder
	b.WriteString(formatter.StyleHeader.Render(strings.ToUpper(m.title)))
	b.WriteString("\n\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(formatter.Dim("↑/↓ scroll · q to quit"))
	return b.String()
}

// runPreview opens content in a full-screen scrollable pager.
func runPreview(title, content string) error {
	p := tea.NewProgram(newPreviewModel(title, content), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
