package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

type model struct {
	cfg      appConfig
	sess     *session
	viewport viewport.Model
	input    textinput.Model
	ready    bool
	width    int
	height   int
	status   string
}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("230")).Background(lipgloss.Color("24")).Padding(0, 1)
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	errStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	currentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("214"))
	errLineStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("160"))
	gutterStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	inputStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("24")).Padding(0, 1)
	paneStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")).Padding(0, 1)
	helpText     = "r exécuter · s pas à pas · x réinitialiser · q quitter"
)

func newModel(cfg appConfig, src source) model {
	vp := viewport.New(80, 10)
	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 4096
	return model{
		cfg:      cfg,
		sess:     newSession(src, cfg.maxSteps),
		viewport: vp,
		input:    ti,
		status:   "prêt",
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) waiting() bool {
	return m.sess.err == nil && m.sess.last.Suspended
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width - 4
		vh := msg.Height/3 - 2
		if vh < 3 {
			vh = 3
		}
		m.viewport.Height = vh
		m.ready = true
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.waiting() {
			if msg.Type == tea.KeyEnter {
				val := m.input.Value()
				m.input.SetValue("")
				m.sess.provide(val)
				m.refresh()
				return m, nil
			}
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "r":
			m.sess.run()
			m.refresh()
			return m, nil
		case "s":
			m.sess.step()
			m.refresh()
			return m, nil
		case "x":
			m.sess.reset()
			m.refresh()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// refresh syncs the output pane, the prompt focus and the status line with
// the session.
func (m *model) refresh() {
	var b strings.Builder
	for _, v := range m.sess.last.Output {
		b.WriteString(v.String())
		b.WriteByte('\n')
	}
	if m.sess.err != nil {
		b.WriteString(errStyle.Render(m.sess.err.Error()))
	}
	content := strings.TrimRight(b.String(), "\n")
	if content == "" {
		content = "(aucune sortie)"
	}
	m.viewport.SetContent(content)
	m.viewport.GotoBottom()

	res := m.sess.last
	switch {
	case m.sess.err != nil:
		m.status = "erreur"
		m.input.Blur()
	case res.Suspended:
		m.status = fmt.Sprintf("Lire %s (ligne %d)", res.PendingVariable, res.Line)
		m.input.Placeholder = res.PendingVariable
		m.input.Focus()
	case res.Completed:
		m.status = "terminé"
		m.input.Blur()
	case m.sess.mode == modeStep:
		m.status = fmt.Sprintf("pas %d (ligne %d)", res.StepCursor, res.Line)
		m.input.Blur()
	default:
		m.status = "prêt"
		m.input.Blur()
	}
}

func (m model) sourceView() string {
	current := 0
	if m.sess.err == nil && !m.sess.last.Completed {
		current = m.sess.last.Line
	}
	errLine := m.sess.errorLine()
	width := len(fmt.Sprint(len(m.sess.lines)))
	rows := make([]string, 0, len(m.sess.lines))
	for i, line := range m.sess.lines {
		n := i + 1
		gutter := gutterStyle.Render(fmt.Sprintf("%*d ", width, n))
		switch n {
		case errLine:
			line = errLineStyle.Render(line)
		case current:
			line = currentStyle.Render(line)
		}
		rows = append(rows, gutter+line)
	}
	return paneStyle.Render(strings.Join(rows, "\n"))
}

func (m model) variablesView() string {
	bindings := m.sess.vm.Bindings()
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(gutterStyle).
		Headers("Variable", "Valeur", "Type")
	for _, b := range bindings {
		t.Row(b.Name, b.Value.String(), b.Value.Kind().String())
	}
	if len(bindings) == 0 {
		t.Row("-", "-", "-")
	}
	return t.String()
}

func (m model) View() string {
	if !m.ready {
		return "initialisation..."
	}
	header := titleStyle.Render(m.sess.src.name) + " " + statusStyle.Render(m.status)
	top := lipgloss.JoinHorizontal(lipgloss.Top, m.sourceView(), " ", m.variablesView())
	parts := []string{header, top, paneStyle.Render(m.viewport.View())}
	if m.waiting() {
		parts = append(parts, inputStyle.Render(m.input.View()))
	}
	parts = append(parts, statusStyle.Render(helpText))
	return strings.Join(parts, "\n")
}
