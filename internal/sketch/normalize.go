// Package sketch holds the pure string core of the studio: source
// normalization for change detection, fenced-code extraction from model
// output, and the generation prompt.
package sketch

import (
	"strings"
	"unicode"
)

// Normalize strips /* */ block comments and // line comments from sketch
// source, collapses every remaining whitespace run into a single space, and
// trims the result. The output is used only as a change-detection key:
// two sources with equal normalized forms render identically, so the
// preview is not rebuilt between them.
//
// Total and idempotent: any input produces a string, and normalizing an
// already-normalized string returns it unchanged.
func Normalize(source string) string {
	return collapseSpace(stripComments(source))
}

// stripComments removes comment text without regard to string literals.
// An unterminated comment swallows the rest of the input, matching how an
// editor treats a comment still being typed.
func stripComments(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		if strings.HasPrefix(s[i:], "/*") {
			end := strings.Index(s[i+2:], "*/")
			if end < 0 {
				break
			}
			i += 2 + end + 2
			continue
		}
		if strings.HasPrefix(s[i:], "//") {
			nl := strings.IndexByte(s[i:], '\n')
			if nl < 0 {
				break
			}
			// Keep the newline; it separates the surrounding tokens.
			i += nl
			continue
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}

func collapseSpace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	pendingSpace := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			pendingSpace = true
			continue
		}
		if pendingSpace && b.Len() > 0 {
			b.WriteByte(' ')
		}
		pendingSpace = false
		b.WriteRune(r)
	}
	return b.String()
}
