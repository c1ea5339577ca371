package preview

import (
	"sync"

	"github.com/ziadkadry99/sketchpad/internal/sketch"
)

// Renderer tracks what the preview frame currently shows, keyed on the
// normalized sketch source. Cosmetic edits (comments, whitespace) keep the
// key stable and are suppressed instead of reloading the frame.
type Renderer struct {
	mu      sync.Mutex
	lastKey string
	hasKey  bool
	renders int
}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render returns the document for source and true when the normalized source
// differs from the previously rendered one. When the key is unchanged it
// returns "" and false and the caller keeps the current frame content.
func (r *Renderer) Render(source string) (string, bool) {
	key := sketch.Normalize(source)

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.hasKey && key == r.lastKey {
		return "", false
	}
	r.lastKey = key
	r.hasKey = true
	r.renders++
	return BuildDocument(source), true
}

// Force rebuilds unconditionally. The auto-save path uses it so a save cycle
// always reflects the text as it stands, changed or not.
func (r *Renderer) Force(source string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastKey = sketch.Normalize(source)
	r.hasKey = true
	r.renders++
	return BuildDocument(source)
}

// Renders reports how many times the frame content was reassigned.
func (r *Renderer) Renders() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.renders
}
