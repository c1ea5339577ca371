// Package preview builds the self-contained HTML document the editor shows
// in its sandboxed frame, and decides when that frame must be rebuilt.
package preview

import (
	_ "embed"
	"strings"
)

// documentShell is the frame document around the sketch: the p5.js runtime,
// centering layout, the error trap, and the screenshot bridge. The sketch
// source is spliced into the single slot marker.
//
//go:embed document.html
var documentShell string

const sketchSlot = "{{sketch}}"

// BuildDocument returns a complete HTML document running the given sketch.
// The code is embedded verbatim; the in-frame error trap turns uncaught
// script errors and console.error calls into a visible red message, and the
// message listener answers "screenshot" requests from the parent frame with
// a base64 "screenshotResult".
func BuildDocument(code string) string {
	return strings.Replace(documentShell, sketchSlot, code, 1)
}
