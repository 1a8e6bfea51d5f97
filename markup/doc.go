// Package markup converts between document trees and the portable tag markup
// hosts persist.
//
// Import sanitises raw markup, parses it and rewrites it into a normalized
// tree: images and latex spans become atomic embeds, div becomes the default
// block and inline content at the top level is wrapped into a block. Export
// walks a tree back into markup with escaped text, pixel-sized images and
// math spans carrying both the expression and its rendered display string.
//
// For the documents Export can produce, Import(Export(d)) is structurally
// equal to d (see document.Equal).
package markup
