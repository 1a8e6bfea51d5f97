package markup

import (
	"io"
	"log/slog"

	"github.com/microcosm-cc/bluemonday"
	"github.com/tdewolff/minify/v2"
	minhtml "github.com/tdewolff/minify/v2/html"

	"github.com/musaaj/Simaditor/document"
)

// DefaultImageSize is the width and height given to imported images that
// carry no size.
const DefaultImageSize = 200

// Options configures a Codec. The zero value is usable.
type Options struct {
	// BlockTag is the tag of blocks created for div elements and for inline
	// content found at the top level. Defaults to "p".
	BlockTag string
	// ImageSize is the fallback image width and height. Defaults to
	// DefaultImageSize.
	ImageSize int

	// Minify passes exported markup through an HTML minifier.
	Minify bool
	// Trusted skips the sanitising policy on import.
	Trusted bool

	// Renderer produces the display string of math embeds. Defaults to
	// UnicodeMath.
	Renderer MathRenderer
	Logger   *slog.Logger
}

// Codec imports and exports markup with fixed options.
type Codec struct {
	opts     Options
	policy   *bluemonday.Policy
	minifier *minify.M
}

// New returns a Codec with defaults filled in.
func New(opts Options) *Codec {
	if opts.BlockTag == "" {
		opts.BlockTag = "p"
	}
	if opts.ImageSize <= 0 {
		opts.ImageSize = DefaultImageSize
	}
	if opts.Renderer == nil {
		opts.Renderer = UnicodeMath
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	c := &Codec{opts: opts, policy: Policy}
	if opts.Minify {
		c.minifier = minify.New()
		c.minifier.Add("text/html", &minhtml.Minifier{
			KeepDocumentTags: true,
			KeepEndTags:      true,
			KeepQuotes:       true,
			KeepWhitespace:   true,
		})
	}
	return c
}

// Options returns the options with defaults applied.
func (c *Codec) Options() Options { return c.opts }

var defaultCodec = New(Options{})

// Import parses markup with default options.
func Import(markup string) *document.Tree { return defaultCodec.Import(markup) }

// Export serializes t with default options.
func Export(t *document.Tree) string { return defaultCodec.Export(t) }

// Parse reads all of r and imports it with default options.
func Parse(r io.Reader) (*document.Tree, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return defaultCodec.Import(string(b)), nil
}
