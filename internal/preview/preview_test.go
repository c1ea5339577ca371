package preview

import (
	"strings"
	"testing"
)

func TestBuildDocumentEmbedsCodeVerbatim(t *testing.T) {
	code := "let msg = \"<div> && friends\";\nfill('red');\ncircle(200, 200, 50);"
	doc := BuildDocument(code)

	if !strings.Contains(doc, code) {
		t.Error("sketch code was altered on the way into the document")
	}
	if strings.Contains(doc, sketchSlot) {
		t.Error("slot marker survived in the built document")
	}
}

func TestBuildDocumentCarriesRuntimeAndBridge(t *testing.T) {
	doc := BuildDocument("circle(1, 2, 3);")

	for _, want := range []string{
		"p5.min.js",
		"window.onerror",
		"console.error",
		"'screenshot'",
		"screenshotResult",
		"toDataURL",
		"justify-content: center",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("document missing %q", want)
		}
	}
}

func TestBuildDocumentTrapsBeforeSketch(t *testing.T) {
	code := "throwEarly();"
	doc := BuildDocument(code)

	trapAt := strings.Index(doc, "window.onerror")
	codeAt := strings.Index(doc, code)
	if trapAt < 0 || codeAt < 0 {
		t.Fatal("trap or code missing from document")
	}
	if trapAt > codeAt {
		t.Error("error trap must be installed before the sketch runs")
	}
}

func TestRendererSuppressesCosmeticEdits(t *testing.T) {
	r := NewRenderer()

	base := "function draw() { background(220); }"
	doc, rendered := r.Render(base)
	if !rendered || doc == "" {
		t.Fatal("first render must build the document")
	}
	if r.Renders() != 1 {
		t.Fatalf("expected 1 render, got %d", r.Renders())
	}

	cosmetic := "function draw() {\n  // repaint\n  background(220);\n}"
	doc, rendered = r.Render(cosmetic)
	if rendered || doc != "" {
		t.Error("comment-and-whitespace edit must not rebuild the frame")
	}
	if r.Renders() != 1 {
		t.Errorf("render count changed on a cosmetic edit: %d", r.Renders())
	}

	changed := "function draw() { background(0); }"
	if _, rendered = r.Render(changed); !rendered {
		t.Error("a real edit must rebuild the frame")
	}
	if r.Renders() != 2 {
		t.Errorf("expected 2 renders, got %d", r.Renders())
	}
}

func TestRendererRepeatedSameSource(t *testing.T) {
	r := NewRenderer()
	r.Render("circle(1, 2, 3);")
	for i := 0; i < 5; i++ {
		if _, rendered := r.Render("circle(1, 2, 3);"); rendered {
			t.Fatal("identical source must not re-render")
		}
	}
	if r.Renders() != 1 {
		t.Errorf("expected 1 render, got %d", r.Renders())
	}
}

func TestForceAlwaysRebuilds(t *testing.T) {
	r := NewRenderer()
	source := "circle(1, 2, 3);"
	r.Render(source)

	doc := r.Force(source)
	if doc == "" {
		t.Fatal("Force returned an empty document")
	}
	if r.Renders() != 2 {
		t.Errorf("expected 2 renders after Force, got %d", r.Renders())
	}

	// Force also refreshes the key, so a following cosmetic edit stays
	// suppressed.
	if _, rendered := r.Render(source + " // note"); rendered {
		t.Error("cosmetic edit after Force must stay suppressed")
	}
}

func TestRedCircleDocument(t *testing.T) {
	code := "function setup() { createCanvas(400, 400); }\nfunction draw() { background(220); fill('red'); circle(200, 200, 50); }"
	doc := BuildDocument(code)

	if !strings.Contains(doc, "circle(") {
		t.Error("document lost the circle call")
	}
	if !strings.Contains(doc, "fill('red')") {
		t.Error("document lost the red fill")
	}
	if !strings.Contains(doc, "window.onerror") {
		t.Error("document lost the error trap")
	}
}
