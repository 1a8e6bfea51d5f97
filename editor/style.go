package editor

import "github.com/charmbracelet/lipgloss"

// Style controls the editor's rendering.
//
// Character formats are derived from Text (or Heading inside headings):
// bold, italic and underline map onto the terminal attributes of the same
// name; superscript and subscript render faint.
type Style struct {
	Text    lipgloss.Style
	Heading lipgloss.Style

	// Marker renders list bullets, heading hashes and quote bars.
	Marker lipgloss.Style
	// Embed renders image and math labels.
	Embed lipgloss.Style
	// Border renders table rules.
	Border lipgloss.Style

	Selection lipgloss.Style
	Cursor    lipgloss.Style
}

func DefaultStyle() Style {
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	return Style{
		Text:      lipgloss.NewStyle(),
		Heading:   lipgloss.NewStyle().Bold(true),
		Marker:    muted,
		Embed:     lipgloss.NewStyle().Foreground(lipgloss.Color("111")),
		Border:    muted,
		Selection: lipgloss.NewStyle().Background(lipgloss.Color("237")),
		Cursor:    lipgloss.NewStyle().Reverse(true),
	}
}
