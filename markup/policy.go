package markup

import (
	"regexp"

	"github.com/microcosm-cc/bluemonday"
)

// Policy is the sanitising policy applied by Import. It extends bluemonday's
// UGC policy with the attributes the editor itself writes.
var Policy *bluemonday.Policy = bluemonday.UGCPolicy()

func init() {
	pxRegexp := regexp.MustCompile(`^\d+(\.\d+)?(px)?$`)
	sizeRegexp := regexp.MustCompile(`^(\d+(\.\d+)?(px|em|rem|%)?|auto)$`)
	floatRegexp := regexp.MustCompile(`^(right|left|none)$`)

	Policy.AllowElements("blockquote", "u", "sup", "sub")
	Policy.AllowAttrs("latex").OnElements("span")

	Policy.AllowDataURIImages()
	Policy.AllowAttrs("width", "height").Matching(pxRegexp).OnElements("img")
	Policy.AllowAttrs("alt").OnElements("img")
	Policy.AllowStyles("width", "height").Matching(sizeRegexp).OnElements("img", "table", "td", "th")

	Policy.AllowStyles("text-align").Matching(bluemonday.CellAlign).Globally()

	Policy.AllowAttrs("border").Matching(bluemonday.Integer).OnElements("table")
	Policy.AllowAttrs("width", "height").Matching(bluemonday.NumberOrPercent).OnElements("table", "td", "th")
	Policy.AllowStyles("float").Matching(floatRegexp).OnElements("table", "img")
}
