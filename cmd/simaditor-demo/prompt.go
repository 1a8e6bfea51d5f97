package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"

	"github.com/musaaj/Simaditor/markup"
)

var errCancelled = errors.New("cancelled")

type promptKind int

const (
	promptNone promptKind = iota
	promptSymbol
	promptMath
	promptFile
)

// prompt answers the editor's picker requests with a one-line input drawn as
// a modal over the editor.
type prompt struct {
	input textinput.Model
	kind  promptKind
	title string
	width int

	symbol func(string, bool)
	math   func(string, bool)
	file   func([]byte, string, error)
}

func newPrompt() *prompt {
	in := textinput.New()
	in.CharLimit = 512
	p := &prompt{input: in}
	p.resize(0)
	return p
}

func (p *prompt) PickSymbol(done func(string, bool)) {
	p.open(promptSymbol, "Insert symbol (or \\name)", "")
	p.symbol = done
}

func (p *prompt) EditMath(initial string, done func(string, bool)) {
	p.open(promptMath, "Math expression", initial)
	p.math = done
}

func (p *prompt) PickFile(done func([]byte, string, error)) {
	p.open(promptFile, "Image file", "")
	p.file = done
}

func (p *prompt) open(kind promptKind, label, value string) {
	p.kind = kind
	p.title = label
	p.input.Prompt = "> "
	p.input.SetValue(value)
	p.input.CursorEnd()
}

func (p *prompt) active() bool { return p.kind != promptNone }

func (p *prompt) focus() tea.Cmd { return p.input.Focus() }

func (p *prompt) update(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEnter:
		p.finish(strings.TrimSpace(p.input.Value()), true)
		return nil
	case tea.KeyEsc:
		p.finish("", false)
		return nil
	}
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return cmd
}

func (p *prompt) finish(value string, ok bool) {
	kind := p.kind
	symbol, math, file := p.symbol, p.math, p.file
	p.kind, p.symbol, p.math, p.file = promptNone, nil, nil, nil
	p.input.Blur()
	p.input.Reset()

	switch kind {
	case promptSymbol:
		if strings.HasPrefix(value, `\`) {
			value = markup.UnicodeMath.RenderMath(value)
		}
		symbol(value, ok && value != "")
	case promptMath:
		math(value, ok && value != "")
	case promptFile:
		if !ok || value == "" {
			file(nil, "", errCancelled)
			return
		}
		data, err := os.ReadFile(value)
		file(data, filepath.Base(value), err)
	}
}

var modalStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)

var (
	modalTitleStyle = lipgloss.NewStyle().Bold(true)
	modalHintStyle  = lipgloss.NewStyle().Faint(true)
)

// resize bounds the modal to the space over the editor.
func (p *prompt) resize(width int) {
	p.width = max(min(width-4, 48), 16)
	p.input.Width = p.width - 6
}

// view draws the open prompt centred over base, the rendered editor.
func (p *prompt) view(base string) string {
	box := modalStyle.Width(p.width).Render(
		modalTitleStyle.Render(p.title) + "\n" +
			p.input.View() + "\n" +
			modalHintStyle.Render("enter accept  esc cancel"),
	)
	return overlay.Composite(box, base, overlay.Center, overlay.Center, 0, 0)
}

// systemClipboard adapts the OS clipboard.
type systemClipboard struct{}

func (systemClipboard) ReadText() (string, error) { return clipboard.ReadAll() }

func (systemClipboard) WriteText(s string) error { return clipboard.WriteAll(s) }
