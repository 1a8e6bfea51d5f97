package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	simaditor "github.com/musaaj/Simaditor"
	"github.com/musaaj/Simaditor/editor"
)

const sample = `<h1>Simaditor</h1>
<p>Type to edit. <b>alt+b</b> bold, <i>alt+i</i> italic, <u>alt+u</u> underline.</p>
<p>alt+1..3 headings, alt+0 paragraph, alt+- list, alt+t table.</p>
<p>alt+m math, alt+s symbol, alt+f image. ctrl+s saves, ctrl+q quits.</p>
<p>Euler: <span latex="e^{i\pi} + 1 = 0"></span></p>`

type model struct {
	editor editor.Model
	prompt *prompt
	last   *editor.ChangeEvent
	path   string
	status string

	width, height int
}

func newModel(path, text string, log *slog.Logger) model {
	p := newPrompt()
	m := model{prompt: p, last: new(editor.ChangeEvent), path: path}
	cfg := editor.Config{
		Text:         text,
		Style:        editor.DefaultStyle(),
		Clipboard:    systemClipboard{},
		SymbolPicker: p,
		MathInput:    p,
		FilePicker:   p,
		Logger:       log,
	}
	m.editor = editor.New(cfg)
	m.editor.Engine().OnChange(func(ev editor.ChangeEvent) {
		*m.last = ev
	})
	return m
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.editor = m.editor.SetSize(msg.Width, editorHeight(msg.Height))
		m.prompt.resize(msg.Width)
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+q":
			return m, tea.Quit
		case "ctrl+s":
			m.status = m.save()
			return m, nil
		}
		m.status = ""
		if m.prompt.active() {
			cmd := m.prompt.update(msg)
			if !m.prompt.active() {
				m.editor = m.editor.Focus()
				m.editor, _ = m.editor.Update(refreshMsg{})
			}
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	if m.prompt.active() && m.editor.Focused() {
		m.editor = m.editor.Blur()
		cmd = tea.Batch(cmd, m.prompt.focus())
	}
	return m, cmd
}

type refreshMsg struct{}

func (m model) save() string {
	if m.path == "" {
		return "no file to save to"
	}
	if err := os.WriteFile(m.path, []byte(m.editor.Engine().GetText()), 0o644); err != nil {
		return "save failed: " + err.Error()
	}
	return "saved " + m.path
}

func (m model) View() string {
	base := m.editor.View()
	if m.prompt.active() {
		base = m.prompt.view(base)
	}
	var status string
	switch {
	case m.status != "":
		status = m.status
	default:
		ev := *m.last
		reasons := make([]string, len(ev.Reasons))
		for i, r := range ev.Reasons {
			reasons[i] = string(r)
		}
		status = fmt.Sprintf("%s  version %d  [%s]  %d bytes",
			simaditor.Banner(), ev.Version, strings.Join(reasons, " "), len(ev.Value))
	}
	return base + "\n" + status
}

func editorHeight(total int) int {
	return max(total-1, 0)
}

func logger() (*slog.Logger, func()) {
	path := os.Getenv("SIMADITOR_LOG")
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}
	}
	return slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})), func() { _ = f.Close() }
}

func main() {
	log, closeLog := logger()
	defer closeLog()

	path, text := "", sample
	if len(os.Args) > 1 {
		path = os.Args[1]
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			text = string(data)
		case os.IsNotExist(err):
			text = ""
		default:
			_, _ = os.Stderr.WriteString(err.Error() + "\n")
			os.Exit(1)
		}
	}

	p := tea.NewProgram(newModel(path, text, log), tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
