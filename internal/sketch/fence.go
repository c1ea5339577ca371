package sketch

import (
	"errors"
	"strings"
)

// fenceMarker delimits code blocks in markdown-flavored model output.
const fenceMarker = "```"

// ErrUnbalancedFence reports a response whose fence markers do not pair up.
// Such a response is truncated or malformed model output; callers must treat
// it as a parse failure rather than salvage a partial block.
var ErrUnbalancedFence = errors.New("unbalanced code fence in model response")

// ExtractCode pulls the code payload out of a model response.
//
// A response with no fence markers is returned trimmed, as is. Otherwise the
// response is split on the markers and the fenced bodies (the odd-indexed
// segments) are joined with a newline; a leading "javascript" language-tag
// line is dropped. An odd number of markers means an unterminated block and
// yields ErrUnbalancedFence.
func ExtractCode(text string) (string, error) {
	if !strings.Contains(text, fenceMarker) {
		return strings.TrimSpace(text), nil
	}

	parts := strings.Split(text, fenceMarker)
	// len(parts)-1 markers; open/close pairs require an even count.
	if (len(parts)-1)%2 != 0 {
		return "", ErrUnbalancedFence
	}

	var blocks []string
	for i := 1; i < len(parts); i += 2 {
		blocks = append(blocks, parts[i])
	}
	code := strings.Join(blocks, "\n")

	if first, rest, ok := strings.Cut(code, "\n"); ok && strings.TrimSpace(first) == "javascript" {
		code = rest
	}
	return strings.TrimSpace(code), nil
}
