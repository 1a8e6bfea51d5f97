package editor

import (
	"log/slog"

	"github.com/musaaj/Simaditor/markup"
)

// DefaultImageSize is the width and height of images inserted by the engine.
const DefaultImageSize = 300

// Config configures an Engine and the Model hosting it.
type Config struct {
	// Initial markup, imported through the markup package.
	Text string

	// Tag of blocks the engine creates. Defaults to "p".
	BlockTag string
	// Size of inserted images. Defaults to DefaultImageSize.
	ImageSize int

	// Forwarded to markup.Options.
	Minify       bool
	MathRenderer markup.MathRenderer

	// Rendering options (Model only).
	KeyMap       KeyMap
	Style        Style
	ScrollPolicy ScrollPolicy

	// OnChange is registered before any other change listener.
	OnChange func(ChangeEvent)

	Clipboard    Clipboard
	SymbolPicker SymbolPicker
	MathInput    MathInput
	FilePicker   FilePicker

	Logger *slog.Logger
}

func (c Config) withDefaults() Config {
	if c.BlockTag == "" {
		c.BlockTag = "p"
	}
	if c.ImageSize <= 0 {
		c.ImageSize = DefaultImageSize
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	return c
}
